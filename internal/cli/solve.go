package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/heuristic"
	"github.com/SeamusWaldron/cubesolve/internal/pdb"
	"github.com/SeamusWaldron/cubesolve/internal/search"
	"github.com/SeamusWaldron/cubesolve/internal/storage"
)

var (
	solveBudget  int
	solveCache   bool
	solveSimple  bool
	solveHistory bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <input> <output>",
	Short: "Solve a scrambled cube",
	Long: `Solve a scrambled cube described in the input file and write the move
sequence to the output file as a single line of face letters.

The input file holds the unfolded cube net: nine lines, three stickers on
the up/down rows and twelve on the middle rows. On a non-success outcome
(unsolvable within budget, bad input) no output file is written.`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntVar(&solveBudget, "budget", search.DefaultBudget, "Maximum search iterations")
	solveCmd.Flags().BoolVar(&solveCache, "cache", false, "Load/save the pattern database via the database file")
	solveCmd.Flags().BoolVar(&solveSimple, "simple-heuristic", false, "Use the cheaper flat distance heuristic")
	solveCmd.Flags().BoolVar(&solveHistory, "history", false, "Record this solve in the history table")
}

func runSolve(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	inputPath, outputPath := args[0], args[1]

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cube, err := cubesolve.Parse(string(data))
	if err != nil {
		return err
	}

	var db *storage.DB
	if solveCache || solveHistory {
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	start := time.Now()
	database, err := loadOrBuildPDB(db)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%s\n", statusStyle.Render(fmt.Sprintf(
			"pattern database ready: %d states, depth %d (%.1fs)",
			database.Len(), database.DepthLimit(), time.Since(start).Seconds())))
	}

	estimator := heuristic.New(database, heuristic.WithSimpleDistance(solveSimple))
	driver := search.New(database, estimator)
	driver.Budget = solveBudget
	if verbose {
		driver.Progress = func(st search.Status) {
			fmt.Printf("steps %d | queue %d | g/h/f %d/%d/%d | %s\n",
				st.Iterations, st.Frontier, st.G, st.H, st.F, cubesolve.FormatMoves(st.Path))
		}
	}

	result, err := driver.Solve(cube)
	if err != nil {
		if errors.Is(err, search.ErrBudgetExceeded) {
			return fmt.Errorf("no solution within budget (%d iterations): %w", solveBudget, err)
		}
		return err
	}
	solution := result.Solution()

	if err := os.WriteFile(outputPath, []byte(solution), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	elapsed := time.Since(start)
	fmt.Println(titleStyle.Render("Solved"))
	fmt.Printf("  solution:   %s\n", solutionStyle.Render(solution))
	fmt.Printf("  moves:      %d\n", len(result.Moves))
	fmt.Printf("  iterations: %d\n", result.Iterations)
	fmt.Printf("  time:       %s\n", elapsed.Round(time.Millisecond))
	fmt.Printf("  output:     %s\n", outputPath)

	if solveHistory {
		repo := storage.NewSolveRepository(db)
		id, err := repo.Create(inputPath, outputPath, solution, len(result.Moves), result.Iterations, elapsed)
		if err != nil {
			return err
		}
		fmt.Printf("  recorded:   %s\n", id)
	}

	return nil
}

// loadOrBuildPDB returns the pattern database, preferring the cache when
// enabled. A missing or corrupt cache falls back to a fresh build.
func loadOrBuildPDB(db *storage.DB) (*pdb.Database, error) {
	if solveCache && db != nil {
		database, err := storage.LoadPDB(db)
		if err == nil {
			return database, nil
		}
		if !errors.Is(err, storage.ErrNoCache) {
			fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("cache unusable, rebuilding: %v", err)))
		}
	}

	database := pdb.Build()

	if solveCache && db != nil {
		if err := storage.SavePDB(db, database); err != nil {
			return nil, err
		}
	}
	return database, nil
}
