package life

import "strings"

// Glyphs used by Render.
const (
	deadRune  = '◻'
	aliveRune = '◼'
)

// Render returns a textual snapshot of the universe, one line per row
// with every row newline-terminated. It never mutates state, so
// consecutive calls without a Tick return identical output.
func (u *Universe) Render() string {
	var b strings.Builder
	b.Grow((u.w*3 + 1) * u.h) // both glyphs take 3 bytes in UTF-8
	for row := 0; row < u.h; row++ {
		for col := 0; col < u.w; col++ {
			if u.cur[row*u.w+col] == Alive {
				b.WriteRune(aliveRune)
			} else {
				b.WriteRune(deadRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
