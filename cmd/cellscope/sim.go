package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/dkoval/cellscope/internal/life"
	"github.com/dkoval/cellscope/internal/storage"
)

var (
	flagGenerations int
	flagPlotHeight  int
	flagSaveSession bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run generations headless and plot the population",
	Long: `Advance the automaton a fixed number of generations without a UI and
print the population-over-time curve.

Examples:
  cellscope sim --generations 500
  cellscope sim --pattern r-pentomino --generations 1000
  cellscope sim --generations 200 --save`,
	Run: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGenerations, "generations", 200, "Number of generations to run")
	simCmd.Flags().IntVar(&flagPlotHeight, "plot-height", 12, "Height of the population plot")
	simCmd.Flags().BoolVar(&flagSaveSession, "save", false, "Record the run in the sessions database")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg, pat, err := resolveSetup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagGenerations < 1 {
		fmt.Fprintln(os.Stderr, "Error: --generations must be positive")
		os.Exit(1)
	}

	g := life.NewWithWorkers(cfg.Grid.Size, cfg.Render.Workers)
	g.Seed(pat.Offsets())

	population := make([]float64, 0, flagGenerations+1)
	population = append(population, float64(g.Population()))
	peak := g.Population()

	for i := 0; i < flagGenerations; i++ {
		g.Step()
		pop := g.Population()
		population = append(population, float64(pop))
		if pop > peak {
			peak = pop
		}
	}

	fmt.Printf("%s: %d generations on a %dx%d board\n\n",
		pat.Name, flagGenerations, cfg.Grid.Size, cfg.Grid.Size)
	fmt.Println(asciigraph.Plot(population,
		asciigraph.Height(flagPlotHeight),
		asciigraph.Caption("population per generation"),
	))
	fmt.Println()
	fmt.Printf("peak population:  %d\n", peak)
	fmt.Printf("final population: %d\n", g.Population())

	if flagSaveSession {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
			return
		}
		defer store.Close()

		if _, err := store.SaveSession(storage.SessionEntry{
			PatternID:       pat.ID,
			Generations:     g.Generation(),
			PeakPopulation:  peak,
			FinalPopulation: g.Population(),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not save session: %v\n", err)
		}
	}
}
