package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var (
	battingFilter aggregator.Filter
	bowlingFilter aggregator.Filter
)

var battingCmd = &cobra.Command{
	Use:   "batting <player>",
	Short: "Batting aggregate for a player",
	Long: `Innings, runs, balls, boundaries, dismissals, strike rate, average, fifties,
centuries, highest score and player-of-the-match awards, optionally narrowed by
season, team, opponent and venue.

Example:
  iplmetrics batting "V Kohli" --season 2016 --opponent "Mumbai Indians"`,
	Args: cobra.ExactArgs(1),
	RunE: runBatting,
}

var bowlingCmd = &cobra.Command{
	Use:   "bowling <bowler>",
	Short: "Bowling aggregate for a bowler",
	Long: `Overs, wickets, runs conceded, economy, average, strike rate, boundaries
conceded, 3/4/5-wicket hauls and best figures, optionally narrowed by season,
team, opponent and venue.`,
	Args: cobra.ExactArgs(1),
	RunE: runBowling,
}

func init() {
	addFilterFlags(battingCmd, &battingFilter)
	addFilterFlags(bowlingCmd, &bowlingFilter)
}

func runBatting(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	s, err := aggregator.BattingStats(ds, args[0], battingFilter)
	if err != nil {
		return err
	}
	report.PrintBatting(os.Stdout, s)
	return nil
}

func runBowling(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	s, err := aggregator.BowlingStats(ds, args[0], bowlingFilter)
	if err != nil {
		return err
	}
	report.PrintBowling(os.Stdout, s)
	return nil
}
