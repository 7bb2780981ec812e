package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve"
)

var showCmd = &cobra.Command{
	Use:   "show <input>",
	Short: "Display a cube description",
	Long:  `Parse a cube description file and render the unfolded net with colored stickers.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cube, err := cubesolve.Parse(string(data))
	if err != nil {
		return err
	}

	fmt.Print(renderNet(cube))
	if cube.IsSolved() {
		fmt.Println(solutionStyle.Render("already solved"))
	}
	return nil
}
