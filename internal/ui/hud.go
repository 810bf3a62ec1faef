//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders a one-line status readout over the simulation view.
type HUD struct {
	visible bool
}

// NewHUD constructs a visible HUD.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Toggle flips the HUD visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the status line in the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image, line string) {
	if h == nil || !h.visible || line == "" {
		return
	}
	text.Draw(screen, line, basicfont.Face7x13, 6, 16, color.RGBA{R: 200, G: 60, B: 60, A: 255})
}
