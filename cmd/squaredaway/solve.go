package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svw.info/squaredaway/internal/clues"
	"svw.info/squaredaway/internal/generator"
	"svw.info/squaredaway/internal/solver"
)

var flagCheck bool

var solveCmd = &cobra.Command{
	Use:   "solve [grid file]",
	Short: "Solve a puzzle from its own extracted clues",
	Long: `solve reads a text grid over the alphabet {-,1,2,X}, extracts the
shading and erasing clues, reconstructs the picture from the clues
alone, and prints the result. Multi-layer files (LAYER N markers or
blank-line separators) are solved layer by layer.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVar(&flagCheck, "check", false, "diff the solved grid against the input grid")
}

func runSolve(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	grids, err := clues.ParseGrids(string(data))
	if err != nil {
		return err
	}

	engine := solver.EngineByName(flagEngine)
	s := solver.NewTwoPhase(engine)
	gen := generator.NewCheckedGenerator(s)
	ctx := context.Background()

	for i, grid := range grids {
		p, _, err := gen.FromGrid(ctx, grid)
		if err != nil {
			return err
		}
		if len(grids) > 1 {
			fmt.Printf("LAYER %d\n", i+1)
		}
		if flagCheck {
			solved, mismatches, st, err := s.Check(ctx, p, grid)
			if err != nil {
				return fmt.Errorf("layer %d: %w", i+1, err)
			}
			fmt.Println(solved)
			if len(mismatches) == 0 {
				fmt.Printf("ok: clues pin down the picture (nodes=%d passes=%d dur=%v)\n", st.Nodes, st.Passes, st.Duration)
			} else {
				fmt.Printf("note: %d cell(s) differ from the input picture; the clues admit another solution\n", len(mismatches))
			}
		} else {
			solved, st, err := s.Solve(ctx, p)
			if err != nil {
				return fmt.Errorf("layer %d: %w", i+1, err)
			}
			fmt.Println(solved)
			fmt.Printf("nodes=%d passes=%d dur=%v\n", st.Nodes, st.Passes, st.Duration)
		}
		if i < len(grids)-1 {
			fmt.Println()
		}
	}
	return nil
}
