package life

import "sort"

// Pattern seeds a universe with a named starting configuration. Apply
// replaces the whole grid; the seed argument only matters for patterns
// with a random component.
type Pattern struct {
	Name        string
	Description string
	Apply       func(u *Universe, seed int64)
}

var patterns = map[string]Pattern{}

// Register adds a pattern to the registry under its name.
func Register(p Pattern) {
	if p.Name == "" || p.Apply == nil {
		return
	}
	patterns[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// Names returns the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// seedInterleave writes the canonical starter pattern used by New.
func seedInterleave(u *Universe) {
	for i := range u.cur {
		if i%2 == 0 || i%7 == 0 {
			u.cur[i] = Alive
		} else {
			u.cur[i] = Dead
		}
	}
}

// placeCentered builds an Apply func that clears the grid and drops the
// given (row, col) offsets roughly centered. Offsets that land outside
// the grid are skipped.
func placeCentered(offsets [][2]int) func(*Universe, int64) {
	return func(u *Universe, _ int64) {
		u.Clear()
		maxRow, maxCol := 0, 0
		for _, o := range offsets {
			if o[0] > maxRow {
				maxRow = o[0]
			}
			if o[1] > maxCol {
				maxCol = o[1]
			}
		}
		originRow := (u.h - maxRow - 1) / 2
		originCol := (u.w - maxCol - 1) / 2
		for _, o := range offsets {
			u.Set(originRow+o[0], originCol+o[1], Alive)
		}
	}
}

func init() {
	Register(Pattern{
		Name:        "default",
		Description: "interleaved starter pattern, every 2nd and 7th cell alive",
		Apply:       func(u *Universe, _ int64) { seedInterleave(u) },
	})
	Register(Pattern{
		Name:        "random",
		Description: "uniform random fill derived from the seed",
		Apply:       func(u *Universe, seed int64) { fillRandom(newRand(seed), u.cur) },
	})
	Register(Pattern{
		Name:        "glider",
		Description: "smallest spaceship, moves one cell down-right every 4 generations",
		Apply:       placeCentered([][2]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}),
	})
	Register(Pattern{
		Name:        "blinker",
		Description: "period-2 oscillator, a row of three cells",
		Apply:       placeCentered([][2]int{{0, 0}, {0, 1}, {0, 2}}),
	})
	Register(Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Apply:       placeCentered([][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}),
	})
	Register(Pattern{
		Name:        "toad",
		Description: "period-2 oscillator, two offset rows of three",
		Apply:       placeCentered([][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}}),
	})
}
