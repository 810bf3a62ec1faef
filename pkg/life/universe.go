package life

import (
	"github.com/pkg/errors"
)

// Dimensions used by New.
const (
	DefaultWidth  = 64
	DefaultHeight = 64
)

// ErrInvalidSize reports universe dimensions that cannot hold any cells.
var ErrInvalidSize = errors.New("universe dimensions must be positive")

// Cell is the state of a single grid entry. Dead is the zero value.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// Universe is a toroidal Game of Life grid. Cells are stored row-major,
// index row*width+col. A Universe is not safe for concurrent use; it is
// meant to be owned by a single host loop.
type Universe struct {
	w, h int
	cur  []Cell
	nxt  []Cell
}

// New returns the canonical 64x64 universe seeded with the interleaved
// starter pattern: cell i begins alive when i%2 == 0 or i%7 == 0.
func New() *Universe {
	u, _ := NewSized(DefaultWidth, DefaultHeight)
	seedInterleave(u)
	return u
}

// NewSized returns an empty universe with the provided dimensions.
func NewSized(width, height int) (*Universe, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewSized] %dx%d", width, height)
	}
	cells := make([]Cell, width*height)
	return &Universe{w: width, h: height, cur: cells, nxt: make([]Cell, len(cells))}, nil
}

// Width returns the number of columns.
func (u *Universe) Width() int { return u.w }

// Height returns the number of rows.
func (u *Universe) Height() int { return u.h }

// Cells exposes the current generation as a row-major slice. The slice
// is the live buffer, not a copy; use Snapshot for an independent view.
func (u *Universe) Cells() []Cell { return u.cur }

// Index returns the linear slice index for (row, col).
func (u *Universe) Index(row, col int) int { return row*u.w + col }

// Get returns the state of the cell at (row, col). Out-of-range
// coordinates read as Dead.
func (u *Universe) Get(row, col int) Cell {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return Dead
	}
	return u.cur[row*u.w+col]
}

// Set writes the state of the cell at (row, col). Out-of-range
// coordinates are ignored.
func (u *Universe) Set(row, col int, c Cell) {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return
	}
	u.cur[row*u.w+col] = c
}

// Toggle flips the cell at (row, col).
func (u *Universe) Toggle(row, col int) {
	if row < 0 || row >= u.h || col < 0 || col >= u.w {
		return
	}
	idx := row*u.w + col
	if u.cur[idx] == Alive {
		u.cur[idx] = Dead
	} else {
		u.cur[idx] = Alive
	}
}

// Population returns the number of live cells.
func (u *Universe) Population() int {
	n := 0
	for _, c := range u.cur {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (u *Universe) Clear() {
	for i := range u.cur {
		u.cur[i] = Dead
	}
}

// Snapshot returns an independent copy of the current cell buffer.
func (u *Universe) Snapshot() []Cell {
	return append([]Cell(nil), u.cur...)
}

// Tick advances the universe by one generation. Every neighbor count
// reads the pre-tick grid; the new generation is committed in a single
// buffer swap.
func (u *Universe) Tick() {
	u.stepRows(0, u.h)
	u.cur, u.nxt = u.nxt, u.cur
}

// stepRows writes the next generation of rows [y0, y1) into the back
// buffer. It only reads cur, so disjoint row bands can run concurrently.
func (u *Universe) stepRows(y0, y1 int) {
	w, h := u.w, u.h
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					if u.cur[ny*w+nx] == Alive {
						neighbors++
					}
				}
			}
			idx := y*w + x
			alive := u.cur[idx] == Alive
			u.nxt[idx] = Dead
			if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
				u.nxt[idx] = Alive
			}
		}
	}
}
