// Package config provides YAML-based configuration loading for the
// simulator. The projection constants (cell size, border thickness, zoom
// rate and floor) are fixed in the view package; config covers the knobs
// that vary per machine or per run.
package config

// SimConfig contains all tunable simulator settings.
type SimConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Render RenderConfig `yaml:"render"`
	Timing TimingConfig `yaml:"timing"`
}

// GridConfig defines the board.
type GridConfig struct {
	Size    int    `yaml:"size"`    // edge length N of the N×N board
	Pattern string `yaml:"pattern"` // seed pattern ID
}

// RenderConfig defines the output buffer and colors.
type RenderConfig struct {
	Resolution int         `yaml:"resolution"` // framebuffer edge for headless rendering
	Workers    int         `yaml:"workers"`    // parallel bands for step/render; 0 = NumCPU
	Theme      ThemeConfig `yaml:"theme"`
}

// ThemeConfig holds the three pixel colors as "#rrggbb" strings.
type ThemeConfig struct {
	Border string `yaml:"border"`
	Alive  string `yaml:"alive"`
	Dead   string `yaml:"dead"`
}

// TimingConfig defines the simulation cadence.
type TimingConfig struct {
	TickIntervalMS int `yaml:"tick_interval_ms"` // wall-clock gap between generations
	FrameRate      int `yaml:"frame_rate"`       // TUI redraw/poll rate
}
