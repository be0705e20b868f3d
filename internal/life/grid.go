// Package life implements the double-buffered Conway automaton. The grid
// is a fixed N×N board with an absorbing boundary: cells outside the board
// are dead and stay dead, edge cells simply see fewer neighbours. It has no
// dependencies so the rule logic stays pure and testable.
package life

import "runtime"

// Grid holds two full cell buffers and the index of the current one.
// The next generation is always computed from a frozen snapshot of the
// current buffer and then swapped in by flipping the index.
type Grid struct {
	n       int
	cur     int // index of the current buffer, 0 or 1
	cells   [2][]uint8
	gen     uint64
	workers int
}

// New creates an n×n grid with all cells dead and buffer 0 current.
// Step parallelism defaults to the number of CPUs.
func New(n int) *Grid {
	return NewWithWorkers(n, runtime.NumCPU())
}

// NewWithWorkers creates a grid with an explicit step worker count.
// workers < 1 means one band per CPU, same as New.
func NewWithWorkers(n, workers int) *Grid {
	if n < 1 {
		n = 1
	}
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	g := &Grid{n: n, workers: workers}
	g.cells[0] = make([]uint8, n*n)
	g.cells[1] = make([]uint8, n*n)
	return g
}

// Size returns the grid edge length N.
func (g *Grid) Size() int {
	return g.n
}

// Generation returns the number of completed steps since the last seed.
func (g *Grid) Generation() uint64 {
	return g.gen
}

// Alive reports whether the cell at (x, y) is alive in the current buffer.
// Out-of-range coordinates are dead.
func (g *Grid) Alive(x, y int) bool {
	if x < 0 || x >= g.n || y < 0 || y >= g.n {
		return false
	}
	return g.cells[g.cur][y*g.n+x] == 1
}

// Set writes a single cell in the current buffer. Out-of-range coordinates
// are a no-op.
func (g *Grid) Set(x, y int, alive bool) {
	if x < 0 || x >= g.n || y < 0 || y >= g.n {
		return
	}
	v := uint8(0)
	if alive {
		v = 1
	}
	g.cells[g.cur][y*g.n+x] = v
}

// Toggle flips a single cell in the current buffer, used for manual edits
// while paused. Out-of-range coordinates are a no-op.
func (g *Grid) Toggle(x, y int) {
	if x < 0 || x >= g.n || y < 0 || y >= g.n {
		return
	}
	g.cells[g.cur][y*g.n+x] ^= 1
}

// Clear kills every cell in both buffers and resets the generation count.
func (g *Grid) Clear() {
	for b := range g.cells {
		for i := range g.cells[b] {
			g.cells[b][i] = 0
		}
	}
	g.cur = 0
	g.gen = 0
}

// Seed clears the grid and stamps the given cell offsets centered on
// (N/2, N/2) into buffer 0. Offsets that land outside the board are
// dropped. Deterministic: the same offsets always produce the same board.
func (g *Grid) Seed(offsets [][2]int) {
	g.Clear()
	c := g.n / 2
	for _, off := range offsets {
		g.Set(c+off[0], c+off[1], true)
	}
}

// Population counts the live cells in the current buffer.
func (g *Grid) Population() int {
	count := 0
	for _, v := range g.cells[g.cur] {
		if v == 1 {
			count++
		}
	}
	return count
}
