package life

import (
	"runtime"
	"testing"
)

func TestWorkerCountDefaultsToNumCPU(t *testing.T) {
	want := runtime.NumCPU()
	if want > 100 {
		want = 100
	}

	for _, w := range []int{0, -1} {
		g := NewWithWorkers(100, w)
		if g.workers != want {
			t.Errorf("NewWithWorkers(100, %d) workers = %d, expected %d", w, g.workers, want)
		}
	}

	if g := New(100); g.workers != want {
		t.Errorf("New(100) workers = %d, expected %d", g.workers, want)
	}
}

func TestNewGridAllDead(t *testing.T) {
	g := New(10)

	if g.Size() != 10 {
		t.Errorf("Size() = %d, expected 10", g.Size())
	}
	if g.Population() != 0 {
		t.Errorf("new grid population = %d, expected 0", g.Population())
	}
	if g.Generation() != 0 {
		t.Errorf("new grid generation = %d, expected 0", g.Generation())
	}
}

func TestAliveOutOfRange(t *testing.T) {
	g := New(10)
	g.Set(0, 0, true)

	cases := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}, {-5, -5}, {100, 100}}
	for _, c := range cases {
		if g.Alive(c[0], c[1]) {
			t.Errorf("Alive(%d, %d) = true for out-of-range cell", c[0], c[1])
		}
	}
}

func TestToggle(t *testing.T) {
	g := New(10)

	g.Toggle(4, 7)
	if !g.Alive(4, 7) {
		t.Error("Toggle should turn a dead cell alive")
	}

	// Only that cell changed
	if g.Population() != 1 {
		t.Errorf("population = %d after one toggle, expected 1", g.Population())
	}
	for _, d := range [][2]int{{3, 7}, {5, 7}, {4, 6}, {4, 8}, {3, 6}, {5, 8}, {3, 8}, {5, 6}} {
		if g.Alive(d[0], d[1]) {
			t.Errorf("neighbour (%d, %d) flipped by Toggle", d[0], d[1])
		}
	}

	g.Toggle(4, 7)
	if g.Alive(4, 7) {
		t.Error("second Toggle should kill the cell again")
	}
}

func TestToggleOutOfRangeNoOp(t *testing.T) {
	g := New(10)

	// Should not panic and should not change anything
	g.Toggle(-1, 0)
	g.Toggle(0, -1)
	g.Toggle(10, 5)
	g.Toggle(5, 10)

	if g.Population() != 0 {
		t.Errorf("population = %d after out-of-range toggles, expected 0", g.Population())
	}
}

func TestSeedClassic(t *testing.T) {
	g := New(100)
	c := 50

	offsets := [][2]int{{0, 0}, {-1, -1}, {1, 0}, {1, -1}, {0, 1}}
	g.Seed(offsets)

	if g.Population() != 5 {
		t.Fatalf("population = %d after seed, expected 5", g.Population())
	}
	for _, off := range offsets {
		if !g.Alive(c+off[0], c+off[1]) {
			t.Errorf("seed cell (%d, %d) not alive", c+off[0], c+off[1])
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	offsets := [][2]int{{0, 0}, {1, 1}, {-2, 3}}

	g1 := New(20)
	g2 := New(20)
	g1.Seed(offsets)
	g2.Seed(offsets)

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if g1.Alive(x, y) != g2.Alive(x, y) {
				t.Fatalf("seed mismatch at (%d, %d)", x, y)
			}
		}
	}
}

func TestSeedResetsGeneration(t *testing.T) {
	g := New(10)
	g.Seed([][2]int{{0, 0}, {1, 0}, {-1, 0}})
	g.Step()
	if g.Generation() != 1 {
		t.Fatalf("generation = %d after one step, expected 1", g.Generation())
	}

	g.Seed([][2]int{{0, 0}})
	if g.Generation() != 0 {
		t.Errorf("generation = %d after reseed, expected 0", g.Generation())
	}
}

func TestSeedDropsOutOfRangeOffsets(t *testing.T) {
	g := New(4) // center at (2, 2)
	g.Seed([][2]int{{0, 0}, {100, 100}, {-100, 0}})
	if g.Population() != 1 {
		t.Errorf("population = %d, expected 1 (out-of-range offsets dropped)", g.Population())
	}
}

func TestClear(t *testing.T) {
	g := New(10)
	g.Seed([][2]int{{0, 0}, {1, 0}})
	g.Step()
	g.Clear()

	if g.Population() != 0 {
		t.Errorf("population = %d after Clear, expected 0", g.Population())
	}
	if g.Generation() != 0 {
		t.Errorf("generation = %d after Clear, expected 0", g.Generation())
	}
}
