// Package render turns one generation buffer into window pixels. The
// presenter walks every output pixel through the inverse camera matrix
// to the grid texel underneath it, the way the reference fragment
// stage sampled the cell buffer from the fullscreen quad.
package render

import (
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"lifelab/internal/core"
)

// Shading intensities. Alive cells render darker than dead ones.
const (
	intensityAlive      float32 = 0.1
	intensityDead       float32 = 0.9
	intensityGridline   float32 = 0.35
	intensityBackground float32 = 0.5

	// gridMargin is the fraction of a cell's footprint on each edge
	// that the overlay claims.
	gridMargin float32 = 0.08
)

// Frame carries the per-presentation parameters: the camera transform,
// the overlay flag, the cursor cell, and an optional pending edit.
type Frame struct {
	Matrix   mgl32.Mat4
	DrawGrid bool

	// Cursor identifies the highlighted cell. Out-of-range
	// coordinates (the app passes -1,-1) highlight nothing.
	CursorX, CursorY int

	// PendingToggle requests a single-cell flip at (ToggleX, ToggleY)
	// before the buffer is sampled.
	PendingToggle    bool
	ToggleX, ToggleY int
}

// Presenter shades a window-sized RGBA frame from a generation buffer.
type Presenter struct {
	winW, winH int
	pix        []byte
	workers    int
}

// NewPresenter allocates a presenter for the given window size.
func NewPresenter(winW, winH int) *Presenter {
	return &Presenter{
		winW:    winW,
		winH:    winH,
		pix:     make([]byte, 4*winW*winH),
		workers: runtime.GOMAXPROCS(0),
	}
}

// Size returns the frame dimensions in pixels.
func (p *Presenter) Size() (int, int) { return p.winW, p.winH }

// Pix returns the RGBA frame produced by the last Render.
func (p *Presenter) Pix() []byte { return p.pix }

// Render shades the frame from buf. A pending toggle is applied to buf
// in full before any shading work starts, so every shaded pixel
// observes the edited generation; the two stages never overlap.
func (p *Presenter) Render(buf *core.Buffer, f Frame) {
	if f.PendingToggle && buf.InBounds(f.ToggleX, f.ToggleY) {
		buf.Flip(f.ToggleX, f.ToggleY)
	}

	inv := f.Matrix.Inv()
	var g errgroup.Group
	g.SetLimit(p.workers)
	rows := (p.winH + p.workers - 1) / p.workers
	for y0 := 0; y0 < p.winH; y0 += rows {
		y1 := min(y0+rows, p.winH)
		g.Go(func() error {
			p.shadeRows(buf, f, inv, y0, y1)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *Presenter) shadeRows(buf *core.Buffer, f Frame, inv mgl32.Mat4, y0, y1 int) {
	w := float32(p.winW)
	h := float32(p.winH)
	for py := y0; py < y1; py++ {
		row := p.pix[4*py*p.winW : 4*(py+1)*p.winW]
		ndcY := (float32(py)+0.5)/h*2 - 1
		for px := 0; px < p.winW; px++ {
			ndcX := (float32(px)+0.5)/w*2 - 1
			q := inv.Mul4x1(mgl32.Vec4{ndcX, ndcY, 0, 1})
			u := (q.X() + 1) / 2
			v := (q.Y() + 1) / 2
			fillGray(row[4*px:], p.shadeTexel(buf, f, u, v))
		}
	}
}

// shadeTexel resolves the intensity of the grid point (u, v), both in
// [0,1) when inside the quad. Precedence: cursor highlight over grid
// overlay over base shading.
func (p *Presenter) shadeTexel(buf *core.Buffer, f Frame, u, v float32) float32 {
	if u < 0 || u >= 1 || v < 0 || v >= 1 {
		return intensityBackground
	}

	cellX := u * float32(buf.W)
	cellY := v * float32(buf.H)
	cx := int(math32.Floor(cellX))
	cy := int(math32.Floor(cellY))
	if cx >= buf.W {
		cx = buf.W - 1
	}
	if cy >= buf.H {
		cy = buf.H - 1
	}

	intensity := intensityDead
	if buf.At(cx, cy) == 1 {
		intensity = intensityAlive
	}

	if f.DrawGrid {
		fx := cellX - float32(cx)
		fy := cellY - float32(cy)
		if fx < gridMargin || fx > 1-gridMargin || fy < gridMargin || fy > 1-gridMargin {
			intensity = intensityGridline
		}
	}

	if cx == f.CursorX && cy == f.CursorY {
		if buf.At(cx, cy) == 1 {
			intensity = (intensityAlive + intensityBackground) / 2
		} else {
			intensity = (intensityDead + intensityBackground) / 2
		}
	}

	return intensity
}
