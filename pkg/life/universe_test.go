package life

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewSeedsCanonicalPattern(t *testing.T) {
	u := New()

	if u.Width() != DefaultWidth || u.Height() != DefaultHeight {
		t.Fatalf("dimensions %dx%d, expected %dx%d", u.Width(), u.Height(), DefaultWidth, DefaultHeight)
	}
	for i, c := range u.Cells() {
		want := Dead
		if i%2 == 0 || i%7 == 0 {
			want = Alive
		}
		if c != want {
			t.Fatalf("cell %d = %d, expected %d", i, c, want)
		}
	}
}

func TestNewIsDeterministic(t *testing.T) {
	a := New()
	b := New()
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("two fresh universes differ")
	}
}

func TestNewSizedRejectsDegenerateDimensions(t *testing.T) {
	cases := [][2]int{{0, 64}, {64, 0}, {0, 0}, {-3, 8}, {8, -1}}
	for _, c := range cases {
		u, err := NewSized(c[0], c[1])
		if err == nil {
			t.Fatalf("NewSized(%d, %d) succeeded, expected error", c[0], c[1])
		}
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("NewSized(%d, %d) error %v, expected ErrInvalidSize", c[0], c[1], err)
		}
		if u != nil {
			t.Fatalf("NewSized(%d, %d) returned a universe alongside the error", c[0], c[1])
		}
	}
}

func TestCellCountMatchesDimensions(t *testing.T) {
	u, err := NewSized(7, 5)
	if err != nil {
		t.Fatalf("NewSized: %v", err)
	}
	if len(u.Cells()) != 35 {
		t.Fatalf("len(cells) = %d, expected 35", len(u.Cells()))
	}
	for i := 0; i < 3; i++ {
		u.Tick()
	}
	if len(u.Cells()) != 35 || u.Width() != 7 || u.Height() != 5 {
		t.Fatalf("shape changed after ticks: %dx%d, %d cells", u.Width(), u.Height(), len(u.Cells()))
	}
}

func TestGetSetToggle(t *testing.T) {
	u, _ := NewSized(4, 4)

	u.Set(1, 2, Alive)
	if u.Get(1, 2) != Alive {
		t.Fatal("Set/Get round trip lost the cell")
	}
	if u.Cells()[u.Index(1, 2)] != Alive {
		t.Fatal("Index does not address the cell Set wrote")
	}

	u.Toggle(1, 2)
	if u.Get(1, 2) != Dead {
		t.Fatal("Toggle did not kill the live cell")
	}
	u.Toggle(1, 2)
	if u.Get(1, 2) != Alive {
		t.Fatal("Toggle did not revive the dead cell")
	}

	// Out-of-range access neither panics nor mutates.
	u.Set(-1, 0, Alive)
	u.Set(0, 99, Alive)
	u.Toggle(99, 0)
	if u.Get(-1, 0) != Dead || u.Get(0, 99) != Dead {
		t.Fatal("out-of-range reads should be Dead")
	}
	if u.Population() != 1 {
		t.Fatalf("population %d after out-of-range writes, expected 1", u.Population())
	}
}

func TestPopulationAndClear(t *testing.T) {
	u, _ := NewSized(5, 5)
	u.Set(0, 0, Alive)
	u.Set(2, 3, Alive)
	u.Set(4, 4, Alive)
	if u.Population() != 3 {
		t.Fatalf("population %d, expected 3", u.Population())
	}
	u.Clear()
	if u.Population() != 0 {
		t.Fatalf("population %d after Clear, expected 0", u.Population())
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	u, _ := NewSized(3, 3)
	u.Set(1, 1, Alive)
	snap := u.Snapshot()
	u.Set(0, 0, Alive)
	u.Tick()
	if snap[u.Index(0, 0)] != Dead || snap[u.Index(1, 1)] != Alive {
		t.Fatal("snapshot changed along with the universe")
	}
}

func TestRenderIsPureAndIdempotent(t *testing.T) {
	u := New()
	before := u.Snapshot()

	first := u.Render()
	second := u.Render()
	if first != second {
		t.Fatal("consecutive renders differ without a tick")
	}
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("Render mutated the universe")
	}
}

func TestRenderGlyphsAndRowLayout(t *testing.T) {
	u, _ := NewSized(2, 2)
	u.Set(0, 0, Alive)
	u.Set(1, 1, Alive)

	got := u.Render()
	want := "◼◻\n◻◼\n"
	if got != want {
		t.Fatalf("render %q, expected %q", got, want)
	}
	if lines := strings.Count(got, "\n"); lines != 2 {
		t.Fatalf("%d newline-terminated rows, expected 2", lines)
	}
}

func TestLoneCellDies(t *testing.T) {
	u, _ := NewSized(5, 5)
	u.Set(2, 2, Alive)
	u.Tick()
	if u.Population() != 0 {
		t.Fatalf("population %d after tick, expected 0", u.Population())
	}
}

func TestEmptyUniverseStaysEmpty(t *testing.T) {
	u, _ := NewSized(6, 6)
	u.Tick()
	if u.Population() != 0 {
		t.Fatalf("population %d, expected 0", u.Population())
	}
}

func TestFullUniverseDiesOfOvercrowding(t *testing.T) {
	// On a torus every cell of a fully live grid has eight neighbors.
	u, _ := NewSized(4, 4)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			u.Set(row, col, Alive)
		}
	}
	u.Tick()
	if u.Population() != 0 {
		t.Fatalf("population %d after tick, expected 0", u.Population())
	}
}

func TestBlockIsStillLife(t *testing.T) {
	u, _ := NewSized(5, 5)
	u.Set(1, 1, Alive)
	u.Set(1, 2, Alive)
	u.Set(2, 1, Alive)
	u.Set(2, 2, Alive)

	before := u.Snapshot()
	u.Tick()
	u.Tick()
	if !slices.Equal(before, u.Cells()) {
		t.Fatal("block changed across ticks")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	u, _ := NewSized(5, 5)
	u.Set(1, 2, Alive)
	u.Set(2, 2, Alive)
	u.Set(3, 2, Alive)

	u.Tick()

	expects := map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := u.Get(row, col) == Alive
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}

	u.Tick()

	expects = map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			alive := u.Get(row, col) == Alive
			_, shouldBeAlive := expects[[2]int{row, col}]
			if shouldBeAlive != alive {
				t.Fatalf("after second tick cell (%d,%d) alive=%v, expected %v", row, col, alive, shouldBeAlive)
			}
		}
	}
}

func TestGliderTranslatesEveryFourGenerations(t *testing.T) {
	u, _ := NewSized(8, 8)
	for _, o := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}} {
		u.Set(o[0], o[1], Alive)
	}
	before := u.Snapshot()

	for i := 0; i < 4; i++ {
		u.Tick()
	}

	// The glider should reappear shifted one row down and one column
	// right, wrapping at the edges.
	w, h := u.Width(), u.Height()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			src := before[((row-1+h)%h)*w+(col-1+w)%w]
			if u.Get(row, col) != src {
				t.Fatalf("cell (%d,%d) = %d, expected translated %d", row, col, u.Get(row, col), src)
			}
		}
	}
	if u.Population() != 5 {
		t.Fatalf("population %d after 4 ticks, expected 5", u.Population())
	}
}

func TestToroidalWrapAtCorner(t *testing.T) {
	u, _ := NewSized(6, 6)
	// Three live cells adjacent to (0,0) only through the wrapped edges.
	u.Set(5, 5, Alive)
	u.Set(5, 0, Alive)
	u.Set(0, 5, Alive)

	u.Tick()

	if u.Get(0, 0) != Alive {
		t.Fatal("corner cell was not born from wrapped neighbors")
	}
}

func TestTickIsDeterministic(t *testing.T) {
	a := New()
	b := New()
	for i := 0; i < 10; i++ {
		a.Tick()
		b.Tick()
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identically seeded universes diverged")
	}
}
