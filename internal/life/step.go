package life

import "sync"

// Step advances the automaton one generation under the standard B3/S23
// rule: a dead cell becomes alive with exactly 3 live neighbours, a live
// cell survives with 2 or 3, otherwise it dies. Neighbour counts use the
// Moore neighbourhood with the absorbing boundary (out-of-range neighbours
// do not count).
//
// The next buffer is computed entirely from the frozen current buffer, in
// parallel row bands. Each worker writes only its own rows of the next
// buffer, so no synchronization beyond the final WaitGroup barrier is
// needed. The current index flips only after every band has finished.
func (g *Grid) Step() {
	cur := g.cells[g.cur]
	nxt := g.cells[1-g.cur]

	var wg sync.WaitGroup
	band := (g.n + g.workers - 1) / g.workers
	for y0 := 0; y0 < g.n; y0 += band {
		y1 := y0 + band
		if y1 > g.n {
			y1 = g.n
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			g.stepRows(cur, nxt, y0, y1)
		}(y0, y1)
	}
	wg.Wait()

	g.cur = 1 - g.cur
	g.gen++
}

// stepRows computes rows [y0, y1) of the next buffer from the current one.
func (g *Grid) stepRows(cur, nxt []uint8, y0, y1 int) {
	n := g.n
	for y := y0; y < y1; y++ {
		for x := 0; x < n; x++ {
			alive := 0
			for dy := -1; dy <= 1; dy++ {
				ny := y + dy
				if ny < 0 || ny >= n {
					continue
				}
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := x + dx
					if nx < 0 || nx >= n {
						continue
					}
					if cur[ny*n+nx] == 1 {
						alive++
					}
				}
			}

			idx := y*n + x
			if cur[idx] == 1 {
				if alive == 2 || alive == 3 {
					nxt[idx] = 1
				} else {
					nxt[idx] = 0
				}
			} else {
				if alive == 3 {
					nxt[idx] = 1
				} else {
					nxt[idx] = 0
				}
			}
		}
	}
}
