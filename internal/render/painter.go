//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// Painter uploads presenter frames into an ebiten image for display.
type Painter struct {
	w, h int
	img  *ebiten.Image
}

// NewPainter allocates a painter matching the presenter's frame size.
func NewPainter(w, h int) *Painter {
	return &Painter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads the RGBA frame and draws it onto dst.
func (p *Painter) Blit(dst *ebiten.Image, pix []byte) {
	if len(pix) != 4*p.w*p.h {
		return
	}
	p.img.WritePixels(pix)
	dst.DrawImage(p.img, nil)
}
