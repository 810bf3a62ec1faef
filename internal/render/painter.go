//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gilhooleyd/wasm-game-of-life/pkg/life"
)

// Painter updates a single RGBA image from universe cell data.
type Painter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int) *Painter {
	p := &Painter{w: w, h: h, buf: make([]byte, 4*w*h)}
	p.img = ebiten.NewImage(w, h)
	return p
}

// Blit uploads the provided cells into the painter image and draws it
// scaled onto dst.
func (p *Painter) Blit(dst *ebiten.Image, cells []life.Cell, alive, dead color.Color, scale int) {
	if len(cells) != p.w*p.h {
		return
	}
	fillCellsRGBA(p.buf, cells, alive, dead)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
