package tui

import "time"

// Pacer converts wall-clock time into a steady number of simulation
// steps per second, independent of the frame rate driving it.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a pacer targeting the given TPS. The accumulator
// starts full so the first call to Advance fires a step immediately.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		tps = 30
	}
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the step rate. Non-positive rates are ignored.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		return
	}
	p.step = time.Second / time.Duration(tps)
}

// TPS returns the current step rate.
func (p *Pacer) TPS() int {
	if p.step <= 0 {
		return 0
	}
	return int(time.Second / p.step)
}

// Advance returns how many steps are due at now.
func (p *Pacer) Advance(now time.Time) int {
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now

	steps := 0
	for p.accumulator >= p.step {
		p.accumulator -= p.step
		steps++
	}
	// Cap the burst after a stall so resume stays responsive.
	if steps > maxBurst {
		steps = maxBurst
		p.accumulator = 0
	}
	return steps
}

const maxBurst = 8
