package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/model"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var teamsFilter aggregator.Filter

var teamsCmd = &cobra.Command{
	Use:   "teams [team]",
	Short: "Result records: every team, or one team with filters",
	Long: `Played, won, lost, tied, no-result and win percentage. Without an argument
every team's all-time record is listed; with a team, --season, --opponent and
--venue narrow the matches counted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTeams,
}

func init() {
	teamsCmd.Flags().StringVar(&teamsFilter.Season, "season", aggregator.AllSeasons, "season label, or All")
	teamsCmd.Flags().StringVar(&teamsFilter.Opponent, "opponent", "", "only matches against this team")
	teamsCmd.Flags().StringVar(&teamsFilter.Venue, "venue", "", "only matches at this venue")
}

func runTeams(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		report.PrintTeamRecords(os.Stdout, aggregator.AllTeamPerformance(ds))
		return nil
	}
	rec, err := aggregator.TeamPerformance(ds, args[0], teamsFilter)
	if err != nil {
		return err
	}
	report.PrintTeamRecords(os.Stdout, []model.TeamRecord{rec})
	return nil
}
