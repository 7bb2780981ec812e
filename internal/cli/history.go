package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded solves",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <solve-id>",
	Short: "Show details of a recorded solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("no recorded solves")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %s  %3d moves  %6d iterations  %s\n",
			s.SolveID[:8],
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.MoveCount,
			s.Iterations,
			s.InputPath)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewSolveRepository(db).Get(args[0])
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Solve " + s.SolveID))
	fmt.Printf("  when:       %s\n", s.CreatedAt.Local().Format(time.RFC1123))
	fmt.Printf("  input:      %s\n", s.InputPath)
	if s.OutputPath != nil {
		fmt.Printf("  output:     %s\n", *s.OutputPath)
	}
	fmt.Printf("  solution:   %s\n", solutionStyle.Render(s.Solution))
	fmt.Printf("  moves:      %d\n", s.MoveCount)
	fmt.Printf("  iterations: %d\n", s.Iterations)
	fmt.Printf("  time:       %dms\n", s.DurationMs)
	return nil
}
