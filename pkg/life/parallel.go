package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TickParallel advances one generation like Tick, splitting the rows
// across workers. Workers write disjoint row bands of the back buffer,
// so the result is identical to a serial Tick. A non-positive worker
// count uses one worker per CPU.
func (u *Universe) TickParallel(workers int) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	h := u.h
	rowsPerWorker := (h + workers - 1) / workers

	var eg errgroup.Group
	for i := 0; i < workers; i++ {
		y0 := i * rowsPerWorker
		if y0 >= h {
			break
		}
		y1 := min(y0+rowsPerWorker, h)
		eg.Go(func() error {
			u.stepRows(y0, y1)
			return nil
		})
	}
	_ = eg.Wait() // workers never fail

	u.cur, u.nxt = u.nxt, u.cur
}
