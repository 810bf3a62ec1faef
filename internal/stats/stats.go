// Package stats tracks run metrics for the interactive and batch hosts.
package stats

import "time"

// Stats for run monitoring
type Stats struct {
	Generations          int
	Population           int
	GenerationsPerSecond float64
	AveragePopulation    float64
	StartTime            time.Time
}

func New() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one generation. The duration is the wall time the
// generation took; non-positive durations leave the rate untouched.
func (s *Stats) Update(generation, population int, duration time.Duration) {
	s.Generations = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Exponential moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Runtime is the wall time since the stats were created.
func (s *Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

// Series is a bounded sample window for plotting.
type Series struct {
	cap  int
	data []float64
}

// NewSeries returns a window that keeps at most capacity samples.
func NewSeries(capacity int) *Series {
	if capacity < 2 {
		capacity = 2
	}
	return &Series{cap: capacity}
}

// Push appends a sample, dropping the oldest once the window is full.
func (s *Series) Push(v float64) {
	s.data = append(s.data, v)
	if len(s.data) > s.cap {
		s.data = s.data[1:]
	}
}

// Values returns the window contents, oldest first.
func (s *Series) Values() []float64 {
	return s.data
}

func (s *Series) Reset() {
	s.data = nil
}
