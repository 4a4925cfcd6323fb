package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/predict"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var predictInput predict.LiveInput

var predictCmd = &cobra.Command{
	Use:   "predict <batting-team> <bowling-team>",
	Short: "Live win probability for a chase in progress",
	Long: `Estimate each side's chance of winning from historical win rates, recent
team and player form, the match situation, home advantage and weather.
A completed chase (20 overs or 10 wickets) is decided by the score alone.

Example:
  iplmetrics predict "Mumbai Indians" "Chennai Super Kings" \
    --city Mumbai --target 151 --score 125 --overs 16 --wickets 2`,
	Args: cobra.ExactArgs(2),
	RunE: runPredict,
}

func init() {
	f := predictCmd.Flags()
	f.StringVar(&predictInput.City, "city", "", "host city")
	f.StringVar(&predictInput.Weather, "weather", predict.WeatherClear, "Clear, Rainy or Humid")
	f.IntVar(&predictInput.Target, "target", 151, "target to chase")
	f.IntVar(&predictInput.Score, "score", 125, "current score")
	f.Float64Var(&predictInput.Overs, "overs", 16, "overs completed")
	f.IntVar(&predictInput.WicketsOut, "wickets", 2, "wickets lost")
}

func runPredict(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	in := predictInput
	in.BattingTeam, in.BowlingTeam = args[0], args[1]
	wp, err := predict.Estimate(ds, in)
	if err != nil {
		return err
	}
	report.PrintWinProbability(os.Stdout, wp)
	return nil
}
