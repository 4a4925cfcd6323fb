package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var targetsN int

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Highest first-innings totals",
	Long:  "List the matches with the highest targets set. The side batting first is derived from the toss.",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	targetsCmd.Flags().IntVarP(&targetsN, "limit", "n", compare.DefaultTopN, "number of matches to show")
}

func runTargets(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	report.PrintTargets(os.Stdout, compare.HighestTargets(ds, targetsN))
	return nil
}
