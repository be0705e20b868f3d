package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/cellscope/internal/config"
	"github.com/dkoval/cellscope/internal/pattern"
	"github.com/dkoval/cellscope/internal/platform/tui"
	"github.com/dkoval/cellscope/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Explore the simulation interactively",
	Long: `Open the interactive viewer.

Controls:
  Drag         - Pan
  Scroll       - Zoom about the pointer (floor at 0.7x)
  Right-click  - Toggle a cell (paused only)
  Space        - Pause/resume
  n            - Step one generation (paused only)
  c / r        - Clear / reseed the board (paused only)
  Arrows, +/-  - Keyboard pan and zoom
  Q/Ctrl+C     - Quit

Examples:
  cellscope run
  cellscope run --pattern r-pentomino
  cellscope run --config ./my-cellscope.yaml`,
	Run: runRun,
}

// resolveSetup loads the config and pattern shared by run and sim.
func resolveSetup() (config.SimConfig, pattern.Pattern, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, pattern.Pattern{}, err
	}

	patternID := cfg.Grid.Pattern
	if flagPattern != "" {
		patternID = flagPattern
	}
	pat, err := pattern.Get(patternID)
	if err != nil {
		return cfg, pat, fmt.Errorf("%w (run 'cellscope patterns' to see available patterns)", err)
	}
	return cfg, pat, nil
}

func runRun(cmd *cobra.Command, args []string) {
	cfg, pat, err := resolveSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - the simulator still works
		store = nil
	}

	runErr := tui.Run(cfg, pat, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", runErr)
		os.Exit(1)
	}
}
