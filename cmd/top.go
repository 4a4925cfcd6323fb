package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var (
	topMinBalls int
	topN        int
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Batters with the highest career strike rate",
	Args:  cobra.NoArgs,
	RunE:  runTop,
}

func init() {
	topCmd.Flags().IntVar(&topMinBalls, "min-balls", 100, "minimum legal balls faced to qualify")
	topCmd.Flags().IntVarP(&topN, "limit", "n", compare.DefaultTopN, "number of batters to show")
}

func runTop(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	rows, err := compare.TopStrikeRates(ds, topMinBalls, topN)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nTop %d by strike rate (min %d balls)\n\n", len(rows), topMinBalls)
	report.PrintRankedBatters(os.Stdout, rows)
	return nil
}
