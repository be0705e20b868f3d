package core

import (
	"fmt"
	"strings"
)

// RGB is a 24-bit color, one per framebuffer pixel.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a "#rrggbb" string, the form lipgloss and the
// config file both use.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a "#rrggbb" or "rrggbb" color string.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("core: invalid color %q: want rrggbb", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return c, nil
}

// Gray returns a gray color with all three channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}
