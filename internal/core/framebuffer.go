// Package core provides fundamental types for the simulator: the RGB
// framebuffer the renderer writes into and the input events the controller
// consumes. It contains no external dependencies (especially no Bubble Tea)
// to keep the simulation logic pure and testable.
package core

// Framebuffer is a 2D RGB pixel buffer. The renderer fills it once per
// frame and the presentation layer (terminal, SSH session) displays it.
type Framebuffer struct {
	width  int
	height int
	pix    []RGB // row-major, index = y*width + x
}

// NewFramebuffer creates a buffer of the given dimensions, all pixels black.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]RGB, width*height),
	}
}

// Width returns the buffer width in pixels.
func (f *Framebuffer) Width() int {
	return f.width
}

// Height returns the buffer height in pixels.
func (f *Framebuffer) Height() int {
	return f.height
}

// Resize changes the buffer dimensions, discarding the old contents.
func (f *Framebuffer) Resize(width, height int) {
	if width == f.width && height == f.height {
		return
	}
	f.width = width
	f.height = height
	f.pix = make([]RGB, width*height)
}

// Fill sets every pixel to the given color.
func (f *Framebuffer) Fill(c RGB) {
	for i := range f.pix {
		f.pix[i] = c
	}
}

// Set writes a pixel. Out-of-bounds coordinates are silently ignored.
func (f *Framebuffer) Set(x, y int, c RGB) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pix[y*f.width+x] = c
}

// At returns the pixel at (x, y). Returns black for out-of-bounds
// coordinates.
func (f *Framebuffer) At(x, y int) RGB {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return RGB{}
	}
	return f.pix[y*f.width+x]
}

// Row returns the pixel slice for one row. Render workers write through
// this to avoid per-pixel bounds checks; each worker owns disjoint rows.
// Returns nil for an out-of-range row.
func (f *Framebuffer) Row(y int) []RGB {
	if y < 0 || y >= f.height {
		return nil
	}
	return f.pix[y*f.width : (y+1)*f.width]
}
