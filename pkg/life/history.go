package life

import (
	"crypto/md5"
	"fmt"
)

// lookback is how many recent generations Stagnant compares against. It
// bounds the cycle period the detector can recognize.
const lookback = 3

// Fingerprint returns an md5 digest of the current cell buffer.
func (u *Universe) Fingerprint() string {
	h := md5.New()
	for _, c := range u.cur {
		h.Write([]byte{byte(c)})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// CycleDetector keeps a bounded history of universe fingerprints and
// reports when the current state matches a recent one, which catches
// still lifes and short-period oscillators.
type CycleDetector struct {
	history []string
	cap     int
}

// NewCycleDetector returns a detector that remembers up to capacity
// fingerprints. Capacities below the lookback window are raised to it.
func NewCycleDetector(capacity int) *CycleDetector {
	if capacity < lookback {
		capacity = lookback
	}
	return &CycleDetector{cap: capacity}
}

// Observe records the universe's current fingerprint.
func (d *CycleDetector) Observe(u *Universe) {
	d.history = append(d.history, u.Fingerprint())
	if len(d.history) > d.cap {
		d.history = d.history[1:]
	}
}

// Stagnant reports whether the current state matches one of the last few
// observed generations. Call it before Observe for the same generation,
// otherwise the freshly recorded fingerprint matches itself.
func (d *CycleDetector) Stagnant(u *Universe) bool {
	if len(d.history) < lookback {
		return false
	}
	fp := u.Fingerprint()
	for i := len(d.history) - 1; i >= 0 && i >= len(d.history)-lookback; i-- {
		if d.history[i] == fp {
			return true
		}
	}
	return false
}

// Reset drops the recorded history.
func (d *CycleDetector) Reset() {
	d.history = d.history[:0]
}
