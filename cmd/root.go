package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/config"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/storage"
)

// cfg is resolved before any init runs so every command's flag defaults see it.
var cfg = config.Load()

var (
	dataDir  string
	dbPath   string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "iplmetrics",
	Short: "IPL cricket statistics tool",
	Long: `Load IPL match and ball-by-ball data and compute batting, bowling, team,
head-to-head and win-probability metrics.

Data is read from the SQLite snapshot (--db) when one has been imported,
otherwise from matches.csv and deliveries.csv under --data.`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		config.ApplyLogLevel(logLevel)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", cfg.DataDir, "directory holding matches.csv and deliveries.csv")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", cfg.DBPath, "path to SQLite snapshot")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(battingCmd)
	rootCmd.AddCommand(bowlingCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(h2hCmd)
	rootCmd.AddCommand(oddsCmd)
	rootCmd.AddCommand(bowlersCmd)
	rootCmd.AddCommand(rivalryCmd)
	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(vsteamCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(targetsCmd)
	rootCmd.AddCommand(bestCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(dropCmd)
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// openDataset loads the dataset from the SQLite snapshot when it holds data,
// and from the CSV directory otherwise.
func openDataset() (*loader.Dataset, error) {
	if _, err := os.Stat(dbPath); err == nil {
		db, err := storage.Open(dbPath)
		if err != nil {
			return nil, fmt.Errorf("open storage: %w", err)
		}
		defer db.Close()

		ok, err := db.HasData()
		if err != nil {
			return nil, fmt.Errorf("check snapshot: %w", err)
		}
		if ok {
			matches, deliveries, err := db.LoadTables()
			if err != nil {
				return nil, fmt.Errorf("load snapshot: %w", err)
			}
			log.Debug("loading dataset from snapshot", "db", dbPath)
			ds, err := loader.New(matches, deliveries)
			if err != nil {
				return nil, fmt.Errorf("build dataset: %w", err)
			}
			return ds, nil
		}
	}

	log.Debug("loading dataset from csv", "dir", dataDir)
	ds, err := loader.LoadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("load dataset: %w", err)
	}
	return ds, nil
}
