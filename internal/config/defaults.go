package config

import (
	_ "embed"
)

//go:embed defaults/cellscope.yaml
var defaultSimYAML []byte

// DefaultSimConfig returns the hardcoded default configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Grid: GridConfig{
			Size:    100,
			Pattern: "classic",
		},
		Render: RenderConfig{
			Resolution: 1024,
			Workers:    0,
			Theme: ThemeConfig{
				Border: "#cfcfcf",
				Alive:  "#7fff7f",
				Dead:   "#3f3f3f",
			},
		},
		Timing: TimingConfig{
			TickIntervalMS: 100,
			FrameRate:      30,
		},
	}
}
