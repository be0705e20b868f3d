package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dkoval/cellscope/internal/pattern"
	"github.com/dkoval/cellscope/internal/storage"
)

var (
	flagStatsLimit int
	flagStatsClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [pattern]",
	Short: "Show recorded session statistics",
	Long: `Display statistics from past sessions.

Without arguments, shows the most recent sessions across all patterns.
With a pattern id, shows the best sessions for that pattern ranked by
peak population.

Examples:
  cellscope stats
  cellscope stats glider
  cellscope stats glider --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagStatsLimit, "limit", 10, "Maximum number of sessions to show")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete recorded sessions for the given pattern")
}

func runStats(cmd *cobra.Command, args []string) {
	patternID := ""
	if len(args) == 1 {
		patternID = args[0]
		if !pattern.Exists(patternID) {
			fmt.Fprintf(os.Stderr, "Error: unknown pattern %q\n", patternID)
			fmt.Fprintln(os.Stderr, "Run 'cellscope patterns' to see available patterns.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if patternID == "" {
			fmt.Fprintln(os.Stderr, "Error: --clear requires a pattern id")
			os.Exit(1)
		}
		if err := store.ClearSessions(patternID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing sessions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared sessions for %q.\n", patternID)
		return
	}

	var sessions []storage.SessionEntry
	if patternID == "" {
		sessions, err = store.RecentSessions(flagStatsLimit)
	} else {
		sessions, err = store.SessionsForPattern(patternID, flagStatsLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if patternID == "" {
		fmt.Println("Recent Sessions")
	} else {
		fmt.Printf("Best Sessions - %s\n", patternID)
	}
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'cellscope run' and quit with 'q' to record one.")
		return
	}

	fmt.Printf("  %-12s  %-12s  %-8s  %-8s  %-10s  %s\n",
		"Pattern", "Generations", "Peak", "Final", "Duration", "Date")
	fmt.Printf("  %-12s  %-12s  %-8s  %-8s  %-10s  %s\n",
		"-------", "-----------", "----", "-----", "--------", "----")

	for _, e := range sessions {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		durStr := (time.Duration(e.Duration) * time.Second).String()
		fmt.Printf("  %-12s  %-12d  %-8d  %-8d  %-10s  %s\n",
			e.PatternID, e.Generations, e.PeakPopulation, e.FinalPopulation, durStr, dateStr)
	}

	if patternID != "" {
		peak, err := store.PeakPopulation(patternID)
		if err == nil {
			fmt.Println()
			fmt.Printf("All-time peak population: %d\n", peak)
		}
	}
}
