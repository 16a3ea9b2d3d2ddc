package sim

import (
	"slices"
	"testing"

	"lifelab/internal/core"
)

func newSim(t *testing.T, w, h int) *Simulation {
	t.Helper()
	s, err := New(core.Config{Width: w, Height: h})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func assertAlive(t *testing.T, s *Simulation, expects map[[2]int]bool) {
	t.Helper()
	cfg := s.Config()
	cells := s.Cells()
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			alive := cells[y*cfg.Width+x] == 1
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	if _, err := New(core.Config{Width: 0, Height: 5}); err == nil {
		t.Fatal("zero width must be rejected at construction")
	}
	if _, err := New(core.Config{Width: 5, Height: -1}); err == nil {
		t.Fatal("negative height must be rejected at construction")
	}
}

func TestBlinkerOscillation(t *testing.T) {
	s := newSim(t, 5, 5)
	s.Toggle(1, 2)
	s.Toggle(2, 2)
	s.Toggle(3, 2)

	s.Step()
	assertAlive(t, s, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})

	s.Step()
	assertAlive(t, s, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})
}

func TestIsolatedCellDies(t *testing.T) {
	s := newSim(t, 5, 5)
	s.Toggle(2, 2)

	s.Step()
	assertAlive(t, s, nil)
}

func TestBlockStillLife(t *testing.T) {
	s := newSim(t, 6, 6)
	s.Toggle(2, 2)
	s.Toggle(3, 2)
	s.Toggle(2, 3)
	s.Toggle(3, 3)

	want := append([]uint8(nil), s.Cells()...)
	for i := 0; i < 5; i++ {
		s.Step()
		if !slices.Equal(want, s.Cells()) {
			t.Fatalf("block changed after step %d", i+1)
		}
	}
}

// A blinker standing against the right edge must not interact with the
// left edge: the neighbor topology has no wraparound.
func TestNoWraparound(t *testing.T) {
	s := newSim(t, 5, 5)
	s.Toggle(4, 1)
	s.Toggle(4, 2)
	s.Toggle(4, 3)

	s.Step()
	assertAlive(t, s, map[[2]int]bool{
		{3, 2}: true,
		{4, 2}: true,
	})
}

// A corner cell has at most three candidate neighbors; with all three
// alive it is born, proving none of its counts leak across the edges.
func TestCornerBirth(t *testing.T) {
	s := newSim(t, 4, 4)
	s.Toggle(1, 0)
	s.Toggle(0, 1)
	s.Toggle(1, 1)

	s.Step()
	if s.Front().At(0, 0) != 1 {
		t.Fatal("corner cell with exactly three neighbors must be born")
	}
}

func TestStepDeterminism(t *testing.T) {
	a := newSim(t, 64, 48)
	b := newSim(t, 64, 48)
	a.Randomize(0.125)
	b.Randomize(0.125)

	for i := 0; i < 10; i++ {
		a.Step()
		b.Step()
		if !slices.Equal(a.Cells(), b.Cells()) {
			t.Fatalf("step %d diverged between identical simulations", i+1)
		}
	}
}

// The banded parallel step must agree with a plain sequential
// evaluation of the rule on the same source generation.
func TestStepMatchesSequentialRule(t *testing.T) {
	s := newSim(t, 70, 53) // deliberately not a multiple of the band size
	s.Randomize(7.5)
	w, h := 70, 53

	src := append([]uint8(nil), s.Cells()...)
	want := make([]uint8, len(src))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					sum += int(src[ny*w+nx])
				}
			}
			alive := src[y*w+x] == 1
			if (alive && (sum == 2 || sum == 3)) || (!alive && sum == 3) {
				want[y*w+x] = 1
			}
		}
	}

	s.Step()
	if !slices.Equal(want, s.Cells()) {
		t.Fatal("parallel step disagrees with sequential rule evaluation")
	}
}

func TestToggleIdempotentPair(t *testing.T) {
	s := newSim(t, 16, 16)
	s.Randomize(3.25)
	want := append([]uint8(nil), s.Cells()...)

	if !s.Toggle(5, 7) {
		t.Fatal("in-range toggle must succeed")
	}
	if slices.Equal(want, s.Cells()) {
		t.Fatal("toggle must change the target cell")
	}
	s.Toggle(5, 7)
	if !slices.Equal(want, s.Cells()) {
		t.Fatal("a toggle pair must restore the original board")
	}
}

func TestToggleRejectsOutOfRange(t *testing.T) {
	s := newSim(t, 8, 8)
	want := append([]uint8(nil), s.Cells()...)
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}} {
		if s.Toggle(c[0], c[1]) {
			t.Fatalf("toggle at (%d,%d) must be rejected", c[0], c[1])
		}
	}
	if !slices.Equal(want, s.Cells()) {
		t.Fatal("rejected toggles must leave the board untouched")
	}
}

func TestGenerationCounter(t *testing.T) {
	s := newSim(t, 8, 8)
	s.Step()
	s.Step()
	if s.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", s.Generation())
	}
	s.Randomize(1.5)
	if s.Generation() != 0 {
		t.Fatal("randomize must reset the generation counter")
	}
	s.Step()
	s.Clear()
	if s.Generation() != 0 {
		t.Fatal("clear must reset the generation counter")
	}
}

func TestClearKillsEverything(t *testing.T) {
	s := newSim(t, 12, 12)
	s.Randomize(9.75)
	s.Clear()
	for i, c := range s.Cells() {
		if c != 0 {
			t.Fatalf("cell %d still alive after clear", i)
		}
	}
}
