// cellscope is an interactive Conway's Game of Life explorer for the
// terminal, with continuous pan/zoom and manual cell editing.
//
// Usage:
//
//	cellscope run               - Explore interactively
//	cellscope sim               - Run generations headless, plot population
//	cellscope patterns          - List available seed patterns
//	cellscope stats             - Show recent session statistics
//	cellscope serve             - Start SSH server for remote exploration
//
// Global flags:
//
//	--config <path>  - Path to a custom YAML config
//	--pattern <id>   - Seed pattern (default: classic)
//	--db <path>      - Sessions database path (default: ~/.cellscope/sessions.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagPattern string
	flagDBPath  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cellscope",
	Short: "Explore Conway's Game of Life in your terminal",
	Long: `cellscope simulates Conway's Game of Life on a fixed board and lets
you fly over it: drag to pan, scroll to zoom, pause and rewrite cells by hand.

Available commands:
  run      - Interactive exploration
  sim      - Headless run with a population plot
  patterns - List seed patterns
  stats    - Recent session statistics
  serve    - SSH server for remote exploration

Examples:
  cellscope run
  cellscope run --pattern glider
  cellscope sim --generations 500
  cellscope serve --ssh :2222
  cellscope stats`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPattern, "pattern", "", "Seed pattern ID (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.cellscope/sessions.db", "Path to sessions database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}
