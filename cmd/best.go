package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/model"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var bestInput compare.ChooseBestInput

var bestCmd = &cobra.Command{
	Use:   "best",
	Short: "Pick the better of two batsmen against chosen bowlers",
	Long: `Score each batsman on runs, strike rate and boundaries against up to five
bowlers each, discounted by dismissals, and name the better pick.

Example:
  iplmetrics best --batter1 "V Kohli" --bowlers1 "JJ Bumrah,R Ashwin" \
                  --batter2 "RG Sharma" --bowlers2 "YS Chahal"`,
	Args: cobra.NoArgs,
	RunE: runBest,
}

func init() {
	bestCmd.Flags().StringVar(&bestInput.Batter1, "batter1", "", "first batsman")
	bestCmd.Flags().StringSliceVar(&bestInput.Bowlers1, "bowlers1", nil, "bowlers the first batsman is measured against (comma-separated)")
	bestCmd.Flags().StringVar(&bestInput.Batter2, "batter2", "", "second batsman")
	bestCmd.Flags().StringSliceVar(&bestInput.Bowlers2, "bowlers2", nil, "bowlers the second batsman is measured against (comma-separated)")
}

func runBest(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	res, err := compare.ChooseBest(ds, bestInput)
	if err != nil && !errors.Is(err, model.ErrNoData) {
		return err
	}
	// A batsman with no matchups still prints the side that has data.
	report.PrintPick(os.Stdout, res)
	return err
}
