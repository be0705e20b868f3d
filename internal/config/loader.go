package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoval/cellscope/internal/core"
)

// Load loads the simulator configuration.
// Search order: customPath -> ~/.cellscope/configs/cellscope.yaml ->
// ./configs/cellscope.yaml -> embedded default.
func Load(customPath string) (SimConfig, error) {
	var cfg SimConfig

	// Try custom path first; a bad explicit path is an error, not a fallback
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("cellscope.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/cellscope.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSimYAML, &cfg); err != nil {
		return DefaultSimConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cellscope", "configs", filename)
}

// Validate checks the loaded values. Colors are parsed here so a typo in
// the config file fails at startup rather than mid-frame.
func (c SimConfig) Validate() error {
	if c.Grid.Size < 1 {
		return fmt.Errorf("config: grid.size must be positive, got %d", c.Grid.Size)
	}
	if c.Render.Resolution < 1 {
		return fmt.Errorf("config: render.resolution must be positive, got %d", c.Render.Resolution)
	}
	if c.Render.Workers < 0 {
		return fmt.Errorf("config: render.workers must not be negative, got %d", c.Render.Workers)
	}
	if c.Timing.TickIntervalMS < 1 {
		return fmt.Errorf("config: timing.tick_interval_ms must be positive, got %d", c.Timing.TickIntervalMS)
	}
	if c.Timing.FrameRate < 1 {
		return fmt.Errorf("config: timing.frame_rate must be positive, got %d", c.Timing.FrameRate)
	}
	for name, hex := range map[string]string{
		"border": c.Render.Theme.Border,
		"alive":  c.Render.Theme.Alive,
		"dead":   c.Render.Theme.Dead,
	} {
		if _, err := core.ParseHex(hex); err != nil {
			return fmt.Errorf("config: render.theme.%s: %w", name, err)
		}
	}
	return nil
}
