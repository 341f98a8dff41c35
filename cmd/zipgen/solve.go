package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"zippath/puzzle"
)

var (
	solveFile   string
	solveBudget time.Duration
	solveQuiet  bool
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [share-code]",
		Short: "Solve a share code or a saved layout file",
		Long: `Rebuild the layout named by a share code (or read one from a JSON
file) and search for a winning trail.

Examples:
  zipgen solve 6:6:12:5:0.08:spiral:314
  zipgen solve --file layout.json
  zipgen solve --file layout.json --budget 10s --quiet`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Layout JSON file to solve")
	solveCmd.Flags().DurationVar(&solveBudget, "budget", 5*time.Second, "Search budget")
	solveCmd.Flags().BoolVarP(&solveQuiet, "quiet", "q", false, "Report solvable/unsolvable only, exit 1 when unsolvable")

	rootCmd.AddCommand(solveCmd)
}

func loadSolveLayout(args []string) (*puzzle.Layout, error) {
	if solveFile != "" {
		data, err := os.ReadFile(solveFile)
		if err != nil {
			return nil, err
		}
		var l puzzle.Layout
		if err := json.Unmarshal(data, &l); err != nil {
			return nil, fmt.Errorf("decode %s: %w", solveFile, err)
		}
		return &l, nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("need a share code argument or --file")
	}
	cfg, err := puzzle.ParseShareCode(args[0])
	if err != nil {
		return nil, err
	}
	if cfg.Seed == 0 {
		return nil, fmt.Errorf("share code %q has no seed, cannot reproduce the layout", args[0])
	}
	return puzzle.Generate(cfg)
}

func runSolve(cmd *cobra.Command, args []string) error {
	layout, err := loadSolveLayout(args)
	if err != nil {
		return err
	}

	began := time.Now()
	trail, ok := puzzle.Solve(layout, solveBudget)
	took := time.Since(began)

	if !ok {
		if !solveQuiet {
			fmt.Println(layout.String())
		}
		fmt.Printf("no trail found within %s (searched %s)\n", solveBudget, took.Round(time.Millisecond))
		os.Exit(1)
	}

	if solveQuiet {
		fmt.Printf("solvable (%s)\n", took.Round(time.Millisecond))
		return nil
	}

	fmt.Println(layout.String())
	fmt.Printf("solved in %s, trail of %d cells:\n", took.Round(time.Millisecond), len(trail))
	for i, c := range trail {
		if i > 0 {
			fmt.Print(" -> ")
		}
		fmt.Printf("(%d,%d)", c.X, c.Y)
	}
	fmt.Println()
	return nil
}
