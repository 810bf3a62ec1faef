package life

import "math/rand/v2"

// newRand returns a deterministic generator for the provided seed.
func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// fillRandom fills cells with an even mix of dead and live states.
func fillRandom(r *rand.Rand, cells []Cell) {
	for i := range cells {
		cells[i] = Cell(r.IntN(2))
	}
}
