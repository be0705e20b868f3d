// Package view owns the pan/zoom state and the mapping between screen
// pixels, continuous world coordinates, and discrete grid cells. Grid
// cells have a fixed edge length in world units, so the world space is
// independent of both the zoom level and the output resolution.
package view

import "math"

// Fixed projection constants. The zoom floor exists because zooming out
// further aliases the cell borders away.
const (
	CellSize        = 20.0 // world-unit edge length of one grid cell
	BorderThickness = 0.05 // border band width, as a fraction of a cell
	ZoomRate        = 1.2  // zoom multiplier per scroll tick
	ZoomFloor       = 0.7  // hard lower bound on zoom
)

// View is the camera: a pan offset in world units and a zoom factor.
// Zoom never goes below ZoomFloor; ZoomAt is the only mutation point
// that changes it.
type View struct {
	PanX, PanY float64
	Zoom       float64

	gridN int
}

// New creates a view centered on the grid with zoom 1.
func New(gridN int) *View {
	return &View{Zoom: 1, gridN: gridN}
}

// Sample is the result of sampling a world point against the grid.
type Sample struct {
	Border   bool // point falls in the border band of its cell
	X, Y     int  // cell indices, valid only when InBounds
	InBounds bool
}

// ScreenToWorld maps a pixel (px, py) on a w×h screen to world
// coordinates. The +0.5 samples the pixel center.
func (v *View) ScreenToWorld(px, py float64, w, h int) (wx, wy float64) {
	wx = v.PanX + (px-float64(w)/2+0.5)/v.Zoom
	wy = v.PanY + (py-float64(h)/2+0.5)/v.Zoom
	return wx, wy
}

// WorldToGrid maps world coordinates to continuous grid coordinates,
// with (0, 0) at the top-left corner of cell (0, 0).
func (v *View) WorldToGrid(wx, wy float64) (gx, gy float64) {
	n := float64(v.gridN)
	return wx/CellSize + n/2, wy/CellSize + n/2
}

// SampleWorld classifies a world point: which cell it falls in, whether it
// is within the border band of that cell, and whether it is on the board
// at all. Off-board points return the zero Sample.
func (v *View) SampleWorld(wx, wy float64) Sample {
	gx, gy := v.WorldToGrid(wx, wy)
	n := float64(v.gridN)
	if gx < 0 || gx >= n || gy < 0 || gy >= n {
		return Sample{}
	}

	x := math.Floor(gx)
	y := math.Floor(gy)
	fx := gx - x
	fy := gy - y
	border := fx < BorderThickness || fx > 1-BorderThickness ||
		fy < BorderThickness || fy > 1-BorderThickness

	return Sample{Border: border, X: int(x), Y: int(y), InBounds: true}
}

// ZoomAt zooms in (dir > 0) or out (dir < 0) by ZoomRate about the given
// pixel, so the world point under the pointer stays under the pointer.
// A result below ZoomFloor is rejected: zoom and pan are left untouched
// and false is returned.
func (v *View) ZoomAt(px, py float64, w, h int, dir int) bool {
	if dir == 0 {
		return false
	}
	nz := v.Zoom * ZoomRate
	if dir < 0 {
		nz = v.Zoom / ZoomRate
	}
	if nz < ZoomFloor {
		return false
	}

	v.PanX += (px - float64(w)/2) * (1/v.Zoom - 1/nz)
	v.PanY += (py - float64(h)/2) * (1/v.Zoom - 1/nz)
	v.Zoom = nz
	return true
}

// PanBy translates the view by a screen-pixel delta, scaled into world
// units by the current zoom.
func (v *View) PanBy(dx, dy float64) {
	v.PanX += dx / v.Zoom
	v.PanY += dy / v.Zoom
}

// Pick maps a pixel straight to the grid cell under it. ok is false when
// the pixel is off the board.
func (v *View) Pick(px, py float64, w, h int) (x, y int, ok bool) {
	s := v.SampleWorld(v.ScreenToWorld(px, py, w, h))
	if !s.InBounds {
		return 0, 0, false
	}
	return s.X, s.Y, true
}
