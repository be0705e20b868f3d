package view

import (
	"math"
	"testing"
)

const tol = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tol
}

func TestScreenToWorldDefaults(t *testing.T) {
	v := New(100)

	// At zoom 1 and no pan, the screen center pixel maps near world origin
	wx, wy := v.ScreenToWorld(512, 512, 1024, 1024)
	if !almostEqual(wx, 0.5) || !almostEqual(wy, 0.5) {
		t.Errorf("center pixel = (%v, %v), expected (0.5, 0.5)", wx, wy)
	}

	// Top-left pixel
	wx, wy = v.ScreenToWorld(0, 0, 1024, 1024)
	if !almostEqual(wx, -511.5) || !almostEqual(wy, -511.5) {
		t.Errorf("pixel (0,0) = (%v, %v), expected (-511.5, -511.5)", wx, wy)
	}
}

func TestScreenToWorldWithPanZoom(t *testing.T) {
	v := New(100)
	v.PanX, v.PanY = 40, -25
	v.Zoom = 2

	wx, wy := v.ScreenToWorld(100, 200, 1024, 1024)
	wantX := 40 + (100-512+0.5)/2.0
	wantY := -25 + (200-512+0.5)/2.0
	if !almostEqual(wx, wantX) || !almostEqual(wy, wantY) {
		t.Errorf("got (%v, %v), expected (%v, %v)", wx, wy, wantX, wantY)
	}
}

func TestWorldToGridRoundTrip(t *testing.T) {
	// worldToGrid(screenToWorld(px, py)) must be consistent for any
	// pan/zoom: mapping back to world reproduces the same coordinates.
	cases := []struct {
		panX, panY, zoom float64
	}{
		{0, 0, 1},
		{123.4, -56.7, 1},
		{-1000, 2000, 3.5},
		{0.1, 0.2, 0.7},
	}
	n := 100.0

	for _, c := range cases {
		v := New(100)
		v.PanX, v.PanY, v.Zoom = c.panX, c.panY, c.zoom

		for _, px := range []float64{0, 13, 511.5, 1023} {
			wx, wy := v.ScreenToWorld(px, px, 1024, 1024)
			gx, gy := v.WorldToGrid(wx, wy)

			// Invert worldToGrid and compare with the original world point
			backX := (gx - n/2) * CellSize
			backY := (gy - n/2) * CellSize
			if !almostEqual(backX, wx) || !almostEqual(backY, wy) {
				t.Errorf("pan=(%v,%v) zoom=%v px=%v: round trip (%v, %v) != (%v, %v)",
					c.panX, c.panY, c.zoom, px, backX, backY, wx, wy)
			}
		}
	}
}

func TestSampleWorldCells(t *testing.T) {
	v := New(100)

	// World origin lies at the corner of cell (50, 50); sample the middle
	// of that cell instead.
	s := v.SampleWorld(0.5*CellSize, 0.5*CellSize)
	if !s.InBounds {
		t.Fatal("center of cell (50, 50) should be in bounds")
	}
	if s.X != 50 || s.Y != 50 {
		t.Errorf("cell = (%d, %d), expected (50, 50)", s.X, s.Y)
	}
	if s.Border {
		t.Error("cell middle should not be border")
	}
}

func TestSampleWorldBorderBand(t *testing.T) {
	v := New(100)

	tests := []struct {
		name   string
		frac   float64
		border bool
	}{
		{"left edge band", 0.01, true},
		{"just inside left band", 0.06, false},
		{"middle", 0.5, false},
		{"just inside right band", 0.94, false},
		{"right edge band", 0.99, true},
	}

	for _, tt := range tests {
		wx := (tt.frac) * CellSize // inside cell (50, 50), x-fraction tt.frac
		s := v.SampleWorld(wx, 0.5*CellSize)
		if !s.InBounds {
			t.Fatalf("%s: unexpectedly out of bounds", tt.name)
		}
		if s.Border != tt.border {
			t.Errorf("%s: border = %v, expected %v", tt.name, s.Border, tt.border)
		}
	}
}

func TestSampleWorldOutOfBounds(t *testing.T) {
	v := New(100)
	half := 50.0 * CellSize

	for _, w := range [][2]float64{
		{half + 1, 0}, {-half - 1, 0}, {0, half + 1}, {0, -half - 1},
	} {
		s := v.SampleWorld(w[0], w[1])
		if s.InBounds {
			t.Errorf("world (%v, %v) should be off the board", w[0], w[1])
		}
		if s.Border {
			t.Errorf("off-board sample at (%v, %v) must not be border", w[0], w[1])
		}
	}
}

func TestZoomFloor(t *testing.T) {
	v := New(100)

	// Scroll down many times; zoom must never go below the floor.
	for i := 0; i < 100; i++ {
		v.ZoomAt(512, 512, 1024, 1024, -1)
		if v.Zoom < ZoomFloor {
			t.Fatalf("zoom %v fell below floor %v", v.Zoom, ZoomFloor)
		}
	}
}

func TestZoomRejectedLeavesPanUntouched(t *testing.T) {
	v := New(100)
	v.PanX, v.PanY = 7, -3
	v.Zoom = 0.75 // one step above the floor at rate 1.2

	if v.ZoomAt(100, 100, 1024, 1024, -1) {
		t.Fatal("zoom below floor should be rejected")
	}
	if v.PanX != 7 || v.PanY != -3 || v.Zoom != 0.75 {
		t.Errorf("rejected zoom mutated state: pan=(%v,%v) zoom=%v", v.PanX, v.PanY, v.Zoom)
	}
}

func TestZoomInOutSymmetric(t *testing.T) {
	v := New(100)
	v.PanX, v.PanY = 12.5, -8.25
	v.Zoom = 2

	for i := 0; i < 10; i++ {
		if !v.ZoomAt(300, 700, 1024, 1024, +1) {
			t.Fatal("zoom in rejected unexpectedly")
		}
	}
	for i := 0; i < 10; i++ {
		if !v.ZoomAt(300, 700, 1024, 1024, -1) {
			t.Fatal("zoom out rejected unexpectedly")
		}
	}

	if math.Abs(v.Zoom-2) > 1e-9 {
		t.Errorf("zoom = %v after symmetric in/out, expected 2", v.Zoom)
	}
	if math.Abs(v.PanX-12.5) > 1e-6 || math.Abs(v.PanY+8.25) > 1e-6 {
		t.Errorf("pan = (%v, %v) after symmetric in/out, expected (12.5, -8.25)", v.PanX, v.PanY)
	}
}

func TestZoomKeepsPointUnderPointer(t *testing.T) {
	v := New(100)
	v.PanX, v.PanY = 33, -44
	v.Zoom = 1.5

	px, py := 222.0, 888.0
	beforeX, beforeY := v.ScreenToWorld(px, py, 1024, 1024)

	if !v.ZoomAt(px, py, 1024, 1024, +1) {
		t.Fatal("zoom in rejected unexpectedly")
	}

	afterX, afterY := v.ScreenToWorld(px, py, 1024, 1024)

	// The world point under the pointer moves by at most the sub-pixel
	// center offset scale difference.
	if math.Abs(afterX-beforeX) > 0.1 || math.Abs(afterY-beforeY) > 0.1 {
		t.Errorf("point under pointer moved: (%v, %v) -> (%v, %v)",
			beforeX, beforeY, afterX, afterY)
	}
}

func TestPanBy(t *testing.T) {
	v := New(100)
	v.Zoom = 2

	v.PanBy(100, -50)
	if !almostEqual(v.PanX, 50) || !almostEqual(v.PanY, -25) {
		t.Errorf("pan = (%v, %v), expected (50, -25)", v.PanX, v.PanY)
	}
}

func TestPick(t *testing.T) {
	v := New(100)

	// Center pixel is just inside cell (50, 50)
	x, y, ok := v.Pick(512, 512, 1024, 1024)
	if !ok {
		t.Fatal("center pixel should pick a cell")
	}
	if x != 50 || y != 50 {
		t.Errorf("picked (%d, %d), expected (50, 50)", x, y)
	}

	// Pan far away; the same pixel is now off the board
	v.PanX = 1e6
	if _, _, ok := v.Pick(512, 512, 1024, 1024); ok {
		t.Error("pick far off the board should report ok=false")
	}
}
