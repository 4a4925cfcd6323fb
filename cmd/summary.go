package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/report"
	"github.com/pable/go-ipl-metrics/internal/storage"
)

// summaryCmd is the cobra command for displaying a high-level dataset overview.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the dataset",
	Long: `Display the number of matches and deliveries, the seasons and date span
covered, and every team's all-time result record.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	showSummary(os.Stdout, ds)
	return nil
}

func showSummary(w io.Writer, ds *loader.Dataset) {
	report.PrintOverview(w, overviewOf(ds))
	fmt.Fprintf(w, "--- Teams ---\n\n")
	report.PrintTeamRecords(w, aggregator.AllTeamPerformance(ds))
}

// overviewOf computes the same overview the snapshot reports, from memory.
func overviewOf(ds *loader.Dataset) storage.Overview {
	ov := storage.Overview{
		Matches:    len(ds.Matches()),
		Deliveries: len(ds.Deliveries()),
		Seasons:    ds.Seasons(),
	}
	for _, m := range ds.Matches() {
		if m.Date == "" {
			continue
		}
		if ov.FirstDate == "" || m.Date < ov.FirstDate {
			ov.FirstDate = m.Date
		}
		if m.Date > ov.LastDate {
			ov.LastDate = m.Date
		}
	}
	return ov
}
