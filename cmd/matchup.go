package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var matchupSeason string

var matchupCmd = &cobra.Command{
	Use:   "matchup <batter> <bowler>",
	Short: "Runs and dismissals for a batter against a bowler",
	Long: `Break down every ball a batter faced from a bowler by season and venue.
--season narrows the season and venue tables; the all-seasons roll-up is
always shown.`,
	Args: cobra.ExactArgs(2),
	RunE: runMatchup,
}

func init() {
	matchupCmd.Flags().StringVar(&matchupSeason, "season", aggregator.AllSeasons, "season label, or All")
}

func runMatchup(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	rep, err := compare.BatsmanVsBowler(ds, args[0], args[1], matchupSeason)
	if err != nil {
		return err
	}
	report.PrintMatchup(os.Stdout, rep)
	return nil
}
