package life

import (
	"slices"
	"testing"
)

func TestTickParallelMatchesTick(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 4, 7} {
		serial, _ := NewSized(32, 32)
		parallel, _ := NewSized(32, 32)
		random, _ := Lookup("random")
		random.Apply(serial, 11)
		random.Apply(parallel, 11)

		for gen := 0; gen < 10; gen++ {
			serial.Tick()
			parallel.TickParallel(workers)
			if !slices.Equal(serial.Cells(), parallel.Cells()) {
				t.Fatalf("workers=%d diverged at generation %d", workers, gen)
			}
		}
	}
}

func TestTickParallelWithMoreWorkersThanRows(t *testing.T) {
	serial, _ := NewSized(10, 3)
	parallel, _ := NewSized(10, 3)
	random, _ := Lookup("random")
	random.Apply(serial, 5)
	random.Apply(parallel, 5)

	serial.Tick()
	parallel.TickParallel(16)
	if !slices.Equal(serial.Cells(), parallel.Cells()) {
		t.Fatal("oversubscribed parallel tick diverged from serial tick")
	}
}
