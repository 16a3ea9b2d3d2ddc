//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMarginX   = 8
	hudLineStep  = 14
	hudFirstLine = 16
)

// HUD renders a small status and key-binding panel over the view.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle flips the HUD visibility.
func (h *HUD) Toggle() {
	h.visible = !h.visible
}

// Draw renders the status lines onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if !h.visible {
		return
	}

	state := "running"
	if st.Paused {
		state = "paused"
	}
	cursor := "--"
	if st.CursorOK {
		cursor = fmt.Sprintf("%d,%d", st.CursorX, st.CursorY)
	}

	lines := []string{
		fmt.Sprintf("gen %d  tps %d  fps %.0f  %s", st.Generation, st.TPS, st.FPS, state),
		fmt.Sprintf("cell %s  grid %v", cursor, st.Grid),
		"space pause  n step  r randomize  c clear",
		"g grid  h hud  drag pan  wheel zoom  rclick flip",
	}

	face := basicfont.Face7x13
	y := hudFirstLine
	for _, line := range lines {
		text.Draw(screen, line, face, hudMarginX+1, y+1, color.Black)
		text.Draw(screen, line, face, hudMarginX, y, color.White)
		y += hudLineStep
	}
}
