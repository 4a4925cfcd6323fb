package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var vsteamCmd = &cobra.Command{
	Use:   "vsteam <opponent> <player> [player]",
	Short: "A player's season-by-season record against a team",
	Long: `Show batting against the opponent's bowlers and bowling against its batters,
season by season. With two players, print both records and a summary of
totals and per-season means.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runVsTeam,
}

func runVsTeam(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	opponent := args[0]
	if len(args) == 2 {
		rec, err := compare.PlayerVsTeam(ds, args[1], opponent)
		if err != nil {
			return err
		}
		report.PrintPlayerVsTeam(os.Stdout, rec)
		return nil
	}
	cmp, err := compare.ComparePlayersVsTeam(ds, args[1], args[2], opponent)
	if err != nil {
		return err
	}
	report.PrintComparison(os.Stdout, cmp)
	return nil
}
