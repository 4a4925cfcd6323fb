package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import [dir]",
	Short: "Import matches.csv and deliveries.csv into the SQLite snapshot",
	Long: `Read matches.csv and deliveries.csv from dir (default --data), validate them,
and replace the contents of the SQLite snapshot at --db. Later commands load
from the snapshot instead of re-parsing the CSVs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	dir := dataDir
	if len(args) == 1 {
		dir = args[0]
	}

	fmt.Fprintf(os.Stdout, "Reading %s...\n", dir)
	ds, err := loader.LoadDir(dir)
	if err != nil {
		return fmt.Errorf("load csv: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.ImportTables(ds.Matches(), ds.Deliveries()); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Imported %d matches and %d deliveries (%d seasons) into %s\n",
		len(ds.Matches()), len(ds.Deliveries()), len(ds.Seasons()), dbPath)
	return nil
}
