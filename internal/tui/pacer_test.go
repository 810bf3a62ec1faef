package tui

import (
	"testing"
	"time"
)

func TestFirstAdvanceFiresImmediately(t *testing.T) {
	p := NewPacer(10)
	now := time.Unix(0, 0)
	if steps := p.Advance(now); steps != 1 {
		t.Fatalf("expected 1 step on first advance, got %d", steps)
	}
}

func TestAdvanceAccumulatesSteps(t *testing.T) {
	p := NewPacer(10)
	now := time.Unix(0, 0)
	p.Advance(now)

	// 250ms at 10 TPS is two and a half steps.
	if steps := p.Advance(now.Add(250 * time.Millisecond)); steps != 2 {
		t.Fatalf("expected 2 steps after 250ms, got %d", steps)
	}
	// The leftover half step completes 50ms later.
	if steps := p.Advance(now.Add(300 * time.Millisecond)); steps != 1 {
		t.Fatalf("expected 1 step after the remainder, got %d", steps)
	}
}

func TestAdvanceCapsBurstAfterStall(t *testing.T) {
	p := NewPacer(100)
	now := time.Unix(0, 0)
	p.Advance(now)

	if steps := p.Advance(now.Add(10 * time.Second)); steps != maxBurst {
		t.Fatalf("expected burst capped at %d, got %d", maxBurst, steps)
	}
	// The stalled backlog is dropped, not replayed.
	if steps := p.Advance(now.Add(10*time.Second + time.Millisecond)); steps != 0 {
		t.Fatalf("expected 0 steps right after the burst, got %d", steps)
	}
}

func TestSetTPS(t *testing.T) {
	p := NewPacer(30)
	if p.TPS() != 30 {
		t.Fatalf("expected 30 TPS, got %d", p.TPS())
	}
	p.SetTPS(60)
	if p.TPS() != 60 {
		t.Fatalf("expected 60 TPS, got %d", p.TPS())
	}
	p.SetTPS(0)
	if p.TPS() != 60 {
		t.Fatalf("non-positive TPS should be ignored, got %d", p.TPS())
	}
}

func TestNewPacerDefaultsBadTPS(t *testing.T) {
	p := NewPacer(-5)
	if p.TPS() != 30 {
		t.Fatalf("expected default 30 TPS, got %d", p.TPS())
	}
}
