package render

import (
	"testing"

	"github.com/dkoval/cellscope/internal/core"
	"github.com/dkoval/cellscope/internal/life"
	"github.com/dkoval/cellscope/internal/view"
)

// testScene builds a small grid and a framebuffer sized so one terminal
// pixel covers a manageable slice of the world.
func testScene(t *testing.T) (*life.Grid, *view.View, *Renderer, *core.Framebuffer) {
	t.Helper()
	g := life.New(100)
	v := view.New(100)
	r := New(DefaultTheme(), 4)
	fb := core.NewFramebuffer(128, 128)
	return g, v, r, fb
}

func TestRenderAliveCell(t *testing.T) {
	g, v, r, fb := testScene(t)
	theme := DefaultTheme()

	// Make the center cell alive and zoom until one screen pixel covers a
	// small fraction of a cell, so the cell middle is clearly sampled.
	g.Set(50, 50, true)
	v.Zoom = 4 // 1 px = 0.25 world units; CellSize=20 world units per cell

	// Aim the view at the middle of cell (50, 50): world (10, 10)
	v.PanX, v.PanY = 10, 10

	r.Render(v, g, fb)

	center := fb.At(64, 64)
	if center != theme.Alive {
		t.Errorf("center pixel = %v, expected alive color %v", center, theme.Alive)
	}
}

func TestRenderDeadCell(t *testing.T) {
	g, v, r, fb := testScene(t)
	theme := DefaultTheme()

	v.Zoom = 4
	v.PanX, v.PanY = 10, 10 // middle of cell (50, 50), which is dead

	r.Render(v, g, fb)

	if got := fb.At(64, 64); got != theme.Dead {
		t.Errorf("center pixel = %v, expected dead color %v", got, theme.Dead)
	}
}

func TestRenderBorderPriority(t *testing.T) {
	g, v, r, fb := testScene(t)
	theme := DefaultTheme()

	// Even over a live cell, the border band wins.
	g.Set(50, 50, true)
	v.Zoom = 4
	v.PanX, v.PanY = 0.2, 10 // x-fraction 0.01 of cell 50: inside the band

	r.Render(v, g, fb)

	if got := fb.At(64, 64); got != theme.Border {
		t.Errorf("border pixel = %v, expected border color %v", got, theme.Border)
	}
}

func TestRenderOutOfBoundsIsDead(t *testing.T) {
	g, v, r, fb := testScene(t)
	theme := DefaultTheme()

	// Pan far off the board: every pixel is out of bounds and must take
	// the dead/background color, never border or alive.
	g.Set(50, 50, true)
	v.PanX = 1e6

	r.Render(v, g, fb)

	for _, p := range [][2]int{{0, 0}, {64, 64}, {127, 127}, {13, 100}} {
		if got := fb.At(p[0], p[1]); got != theme.Dead {
			t.Errorf("off-board pixel (%d, %d) = %v, expected dead color", p[0], p[1], got)
		}
	}
}

func TestRenderWorkerCountsAgree(t *testing.T) {
	g := life.New(100)
	g.Seed([][2]int{{0, 0}, {-1, -1}, {1, 0}, {1, -1}, {0, 1}})
	v := view.New(100)
	v.Zoom = 2

	serial := New(DefaultTheme(), 1)
	parallel := New(DefaultTheme(), 8)
	fb1 := core.NewFramebuffer(96, 96)
	fb2 := core.NewFramebuffer(96, 96)

	serial.Render(v, g, fb1)
	parallel.Render(v, g, fb2)

	for y := 0; y < 96; y++ {
		for x := 0; x < 96; x++ {
			if fb1.At(x, y) != fb2.At(x, y) {
				t.Fatalf("pixel (%d, %d) differs between 1 and 8 workers", x, y)
			}
		}
	}
}

func BenchmarkRender256(b *testing.B) {
	g := life.New(100)
	g.Seed([][2]int{{0, 0}, {-1, -1}, {1, 0}, {1, -1}, {0, 1}})
	v := view.New(100)
	r := New(DefaultTheme(), 0)
	fb := core.NewFramebuffer(256, 256)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Render(v, g, fb)
	}
}
