package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/storage"
)

var (
	dropForce   bool
	dropSeasons []string
)

// dropCmd deletes the snapshot, or selected seasons from it.
var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete the SQLite snapshot, or selected seasons from it",
	Long: `Permanently delete the SQLite snapshot. Commands fall back to the CSVs under
--data until 'iplmetrics import' is run again. With --season, only those
seasons' matches and deliveries are removed from the snapshot.`,
	Args: cobra.NoArgs,
	RunE: runDrop,
}

func init() {
	dropCmd.Flags().BoolVarP(&dropForce, "force", "f", false, "skip confirmation prompt")
	dropCmd.Flags().StringSliceVar(&dropSeasons, "season", nil, "only drop these seasons (repeatable or comma-separated)")
}

func runDrop(cmd *cobra.Command, args []string) error {
	if !dropForce {
		if len(dropSeasons) > 0 {
			fmt.Fprintf(os.Stderr, "This will permanently delete seasons %v from: %s\n", dropSeasons, dbPath)
		} else {
			fmt.Fprintf(os.Stderr, "This will permanently delete: %s\n", dbPath)
		}
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}

	if len(dropSeasons) > 0 {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Snapshot does not exist, nothing to drop.")
			return nil
		}
		db, err := storage.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer db.Close()
		n, err := db.DeleteSeasons(dropSeasons)
		if err != nil {
			return fmt.Errorf("delete seasons: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Deleted %d matches from %s\n", n, dbPath)
		return nil
	}

	if err := os.Remove(dbPath); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(os.Stdout, "Snapshot does not exist, nothing to drop.")
			return nil
		}
		return fmt.Errorf("remove snapshot: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Deleted: %s\n", dbPath)
	return nil
}
