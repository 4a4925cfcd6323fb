package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var (
	seasonTeam   string
	seasonPlayer string
)

var seasonCmd = &cobra.Command{
	Use:   "season <season>",
	Short: "Season overview: team totals, top run scorer and top wicket taker",
	Long: `Summarize one season. Team totals are shown unless --player is set; the
leaders can be narrowed to a team's batting (--team) or to one player.`,
	Args: cobra.ExactArgs(1),
	RunE: runSeason,
}

func init() {
	seasonCmd.Flags().StringVar(&seasonTeam, "team", "", "only this batting team")
	seasonCmd.Flags().StringVar(&seasonPlayer, "player", "", "only this player")
}

func runSeason(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	s, err := aggregator.SeasonSummary(ds, args[0], seasonTeam, seasonPlayer)
	if err != nil {
		return err
	}
	report.PrintSeasonSummary(os.Stdout, s)
	return nil
}
