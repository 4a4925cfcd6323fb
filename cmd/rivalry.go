package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var (
	rivalryScorecards bool
	rivalrySeason     string
)

var rivalryCmd = &cobra.Command{
	Use:   "rivalry <teamA> <teamB>",
	Short: "Wins per season between two teams, with optional scorecards",
	Long: `Show how a rivalry developed: wins per season for each side in the matches
between them. With --scorecards, print the head-to-head summary followed by the
innings totals, batters and bowlers of every meeting (narrow with --season).`,
	Args: cobra.ExactArgs(2),
	RunE: runRivalry,
}

func init() {
	rivalryCmd.Flags().BoolVar(&rivalryScorecards, "scorecards", false, "print a scorecard for every meeting")
	rivalryCmd.Flags().StringVar(&rivalrySeason, "season", aggregator.AllSeasons, "season for --scorecards, or All")
}

func runRivalry(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	rows, err := compare.TeamVsTeam(ds, args[0], args[1])
	if err != nil {
		return err
	}
	report.PrintSeasonCounts(os.Stdout, strings.ToUpper(args[0]), strings.ToUpper(args[1]), rows)

	if !rivalryScorecards {
		return nil
	}
	if err := showScorecards(os.Stdout, ds, args[0], args[1], rivalrySeason); err != nil {
		return fmt.Errorf("scorecards: %w", err)
	}
	return nil
}

// showScorecards prints the head-to-head summary for season, then every
// meeting's scorecard.
func showScorecards(w io.Writer, ds *loader.Dataset, a, b, season string) error {
	cards, err := aggregator.Scorecards(ds, a, b, season)
	if err != nil {
		return err
	}
	h, err := aggregator.HeadToHead(ds, a, b, aggregator.Filter{Season: season})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%s v %s, season %s\n\n", a, b, season)
	report.PrintHeadToHead(w, h)
	report.PrintScorecards(w, cards)
	return nil
}
