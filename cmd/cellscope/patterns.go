package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoval/cellscope/internal/pattern"
)

var flagPatternFile string

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List available seed patterns",
	Long: `Shows all built-in seed patterns.

With --file, parses a YAML pattern definition and prints it instead,
useful for checking a pattern file before pointing the config at it.`,
	Run: runPatterns,
}

func init() {
	patternsCmd.Flags().StringVar(&flagPatternFile, "file", "", "Preview a YAML pattern file")
}

func runPatterns(cmd *cobra.Command, args []string) {
	if flagPatternFile != "" {
		previewPatternFile(flagPatternFile)
		return
	}

	infos := pattern.List()

	fmt.Println("Available patterns:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range infos {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Cells", "Name")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "-----", "----")

	for _, p := range infos {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, p.ID, p.Size, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'cellscope run --pattern <id>' to explore one.")
}

func previewPatternFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	p, err := pattern.FromYAML(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s): %d cells\n", p.Name, p.ID, len(p.Cells))
	for _, c := range p.Cells {
		fmt.Printf("  (%d, %d)\n", c.X, c.Y)
	}
}
