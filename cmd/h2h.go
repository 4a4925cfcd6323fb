package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/predict"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var h2hFilter aggregator.Filter

var h2hCmd = &cobra.Command{
	Use:   "h2h <teamA> <teamB>",
	Short: "Head-to-head record between two teams",
	Args:  cobra.ExactArgs(2),
	RunE:  runH2H,
}

var oddsCmd = &cobra.Command{
	Use:   "odds <teamA> <teamB>",
	Short: "Win probability from head-to-head record and recent form",
	Long: `Blend teamA's head-to-head win rate against teamB (70%) with teamA's win
rate over its last five matches (30%).`,
	Args: cobra.ExactArgs(2),
	RunE: runOdds,
}

func init() {
	h2hCmd.Flags().StringVar(&h2hFilter.Season, "season", aggregator.AllSeasons, "season label, or All")
	h2hCmd.Flags().StringVar(&h2hFilter.Venue, "venue", "", "only matches at this venue")
}

func runH2H(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	h, err := aggregator.HeadToHead(ds, args[0], args[1], h2hFilter)
	if err != nil {
		return err
	}
	report.PrintHeadToHead(os.Stdout, h)
	return nil
}

func runOdds(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	p, err := predict.HeadToHeadProbability(ds, args[0], args[1])
	if err != nil {
		return err
	}
	report.PrintH2HProbability(os.Stdout, p)
	return nil
}
