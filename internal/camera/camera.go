// Package camera holds the interactive view state: pan, zoom, and the
// cursor's position on the grid. The view matrix it produces maps the
// unit presentation quad to normalized device coordinates; the
// presenter inverts the same matrix, so the two stay consistent by
// construction.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"lifelab/internal/core"
)

const (
	zoomFactor = 0.1
	minScale   = 0.5
	maxScale   = 1000
)

// Camera tracks the view transform over a fixed-size grid.
type Camera struct {
	scale  float32
	ratio  float32
	transX float32
	transY float32

	gameW, gameH int
	gameRatio    float64

	screenW, screenH float64
	cursorX, cursorY float64
}

// New constructs a camera for the given grid and window dimensions.
func New(cfg core.Config, screenW, screenH int) *Camera {
	c := &Camera{
		scale:     1,
		gameW:     cfg.Width,
		gameH:     cfg.Height,
		gameRatio: float64(cfg.Width) / float64(cfg.Height),
	}
	c.Resize(screenW, screenH)
	return c
}

// Resize records a new window size and recomputes the aspect
// correction. Zero-sized windows (minimized) are ignored.
func (c *Camera) Resize(screenW, screenH int) {
	if screenW <= 0 || screenH <= 0 {
		return
	}
	c.screenW = float64(screenW)
	c.screenH = float64(screenH)
	c.ratio = float32(c.gameRatio / (c.screenW / c.screenH))
}

// SetCursor records the cursor position in window pixels.
func (c *Camera) SetCursor(x, y float64) {
	c.cursorX = x
	c.cursorY = y
}

// Pan translates the view by a drag delta in window pixels. The
// translation is clamped so the quad can never leave the view
// entirely.
func (c *Camera) Pan(dx, dy float64) {
	c.transX += float32(dx*2/c.screenW) / c.scale
	c.transY += float32(dy*2/c.screenH) / (c.scale / c.ratio)
	c.transX = clamp(c.transX, -1, 1)
	c.transY = clamp(c.transY, -1, 1)
}

// Zoom scales the view by a wheel delta, multiplicative around the
// current scale.
func (c *Camera) Zoom(dy float64) {
	c.scale += float32(dy) * zoomFactor * c.scale
	c.scale = clamp(c.scale, minScale, maxScale)
}

// Scale returns the current zoom level.
func (c *Camera) Scale() float32 { return c.scale }

// Translation returns the current pan offsets.
func (c *Camera) Translation() (float32, float32) { return c.transX, c.transY }

// Matrix returns the view matrix: aspect-corrected scaling applied
// after the pan translation.
func (c *Camera) Matrix() mgl32.Mat4 {
	return mgl32.Scale3D(c.scale, c.scale/c.ratio, 1).
		Mul4(mgl32.Translate3D(c.transX, c.transY, 0))
}

// CursorCell maps the recorded cursor position to grid coordinates.
// The ok result is false when the cursor lies outside the grid.
func (c *Camera) CursorCell() (x, y int, ok bool) {
	scale := float64(c.scale)

	posX := (c.cursorX - c.screenW/2) / (c.screenW * scale)
	posY := (c.cursorY - c.screenH/2) / (c.screenH * scale) * float64(c.ratio)

	posX += float64(c.transX) / -2
	posY += float64(c.transY) / -2

	posX = math.Floor((posX + 0.5) * float64(c.gameW))
	posY = math.Floor((posY + 0.5) * float64(c.gameH))

	if posX < 0 || posX >= float64(c.gameW) || posY < 0 || posY >= float64(c.gameH) {
		return 0, 0, false
	}
	return int(posX), int(posY), true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
