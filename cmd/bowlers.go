package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var bowlersCmd = &cobra.Command{
	Use:   "bowlers <bowlerA> <bowlerB>",
	Short: "Wickets per season for two bowlers, side by side",
	Long: `Count every wicket that fell while each bowler was bowling in the first two
innings, run-outs included, and join the two series on season. A season where
only one of them bowled shows 0 for the other.`,
	Args: cobra.ExactArgs(2),
	RunE: runBowlers,
}

func runBowlers(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	rows, err := compare.BowlerVsBowler(ds, args[0], args[1])
	if err != nil {
		return err
	}
	report.PrintSeasonCounts(os.Stdout, strings.ToUpper(args[0]), strings.ToUpper(args[1]), rows)
	return nil
}
