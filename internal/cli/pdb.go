package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolve/internal/pdb"
	"github.com/SeamusWaldron/cubesolve/internal/storage"
)

var pdbCmd = &cobra.Command{
	Use:   "pdb",
	Short: "Manage the pattern database cache",
}

var pdbBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the pattern database and cache it",
	Long: `Build the pattern database by breadth-first search from the solved state
and store it in the database file so later solves skip the build.`,
	RunE: runPDBBuild,
}

var pdbInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show cached pattern database details",
	RunE:  runPDBInfo,
}

func init() {
	rootCmd.AddCommand(pdbCmd)
	pdbCmd.AddCommand(pdbBuildCmd)
	pdbCmd.AddCommand(pdbInfoCmd)
}

func runPDBBuild(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	start := time.Now()
	database := pdb.Build()
	fmt.Printf("built %d states to depth %d in %.1fs\n",
		database.Len(), database.DepthLimit(), time.Since(start).Seconds())

	if err := storage.SavePDB(db, database); err != nil {
		return err
	}
	fmt.Printf("cached in %s\n", db.Path())
	return nil
}

func runPDBInfo(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	database, err := storage.LoadPDB(db)
	if errors.Is(err, storage.ErrNoCache) {
		fmt.Println("no pattern database cached; run 'cubesolve pdb build'")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("states:      %d\n", database.Len())
	fmt.Printf("depth limit: %d\n", database.DepthLimit())
	fmt.Printf("database:    %s\n", db.Path())
	return nil
}
