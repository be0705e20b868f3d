package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkoval/cellscope/internal/core"
)

// RenderFrame converts a framebuffer to a styled string, two pixel rows
// per terminal row using the upper-half-block glyph: the foreground color
// paints the top pixel, the background the bottom one. Runs of identical
// color pairs are grouped to keep the ANSI escape volume down.
func RenderFrame(fb *core.Framebuffer) string {
	var sb strings.Builder
	sb.Grow(fb.Width()*fb.Height()*4 + fb.Height())

	for y := 0; y+1 < fb.Height(); y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < fb.Width() {
			top := fb.At(x, y)
			bottom := fb.At(x, y+1)

			// Collect consecutive columns with the same color pair
			run := 0
			for x+run < fb.Width() &&
				fb.At(x+run, y) == top && fb.At(x+run, y+1) == bottom {
				run++
			}

			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex()))
			sb.WriteString(style.Render(strings.Repeat("▀", run)))
			x += run
		}
	}
	return sb.String()
}
