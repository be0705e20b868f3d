// Package render turns a grid plus a view into an RGB framebuffer. Every
// output pixel is mapped through the view transform and classified as
// border, alive, or dead. The pass is a pure function of its inputs and
// data-parallel per pixel, so it runs as row bands across workers.
package render

import (
	"runtime"
	"sync"

	"github.com/dkoval/cellscope/internal/core"
	"github.com/dkoval/cellscope/internal/life"
	"github.com/dkoval/cellscope/internal/view"
)

// Theme holds the three pixel colors: light-gray grid lines, pale green
// live cells, dark gray everything else.
type Theme struct {
	Border core.RGB
	Alive  core.RGB
	Dead   core.RGB
}

// DefaultTheme returns the stock color scheme.
func DefaultTheme() Theme {
	return Theme{
		Border: core.Gray(0xcf),
		Alive:  core.RGB{R: 0x7f, G: 0xff, B: 0x7f},
		Dead:   core.Gray(0x3f),
	}
}

// Renderer paints frames into a framebuffer.
type Renderer struct {
	theme   Theme
	workers int
}

// New creates a renderer. workers <= 0 means one band per CPU.
func New(theme Theme, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{theme: theme, workers: workers}
}

// Render fills dst from the grid and view. Color priority per pixel:
// border, then alive, then dead. Pixels that map off the board take the
// dead color as well — the board fades into the background rather than
// getting a distinct out-of-bounds color.
//
// Workers write disjoint rows of dst and read only the frozen grid and
// view, so the bands need no locking.
func (r *Renderer) Render(v *view.View, g *life.Grid, dst *core.Framebuffer) {
	h := dst.Height()

	workers := r.workers
	if workers > h {
		workers = h
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	band := (h + workers - 1) / workers
	for y0 := 0; y0 < h; y0 += band {
		y1 := y0 + band
		if y1 > h {
			y1 = h
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(v, g, dst, y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}

// renderRows paints rows [y0, y1) of dst.
func (r *Renderer) renderRows(v *view.View, g *life.Grid, dst *core.Framebuffer, y0, y1 int) {
	w, h := dst.Width(), dst.Height()
	for y := y0; y < y1; y++ {
		row := dst.Row(y)
		for x := 0; x < w; x++ {
			wx, wy := v.ScreenToWorld(float64(x), float64(y), w, h)
			s := v.SampleWorld(wx, wy)

			switch {
			case s.Border:
				row[x] = r.theme.Border
			case s.InBounds && g.Alive(s.X, s.Y):
				row[x] = r.theme.Alive
			default:
				row[x] = r.theme.Dead
			}
		}
	}
}
