// Package render converts universe state into RGBA pixel buffers for
// the GUI host.
package render

import (
	"image/color"

	"github.com/gilhooleyd/wasm-game-of-life/pkg/life"
)

// fillCellsRGBA converts cell data into RGBA pixels in buf, one pixel
// per cell.
func fillCellsRGBA(buf []byte, cells []life.Cell, alive, dead color.Color) {
	rOn, gOn, bOn, aOn := alive.RGBA()
	rOff, gOff, bOff, aOff := dead.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != life.Dead {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}
