package predict

import (
	"fmt"
	"math"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// Weather conditions accepted by Estimate.
const (
	WeatherClear = "Clear"
	WeatherRainy = "Rainy"
	WeatherHumid = "Humid"
)

// Weathers lists the accepted conditions in menu order.
var Weathers = []string{WeatherClear, WeatherRainy, WeatherHumid}

const (
	maxOvers   = 20
	maxWickets = 10

	weightHistorical = 0.3
	weightForm       = 0.2
	weightPlayers    = 0.2
	weightSituation  = 0.2
	weightExternal   = 0.1

	// Situation ceilings used for min-max scaling.
	runRateCeiling  = 10
	requiredCeiling = 15

	homeAdvantage = 0.55
	awayPenalty   = 0.45
	rainFactor    = 0.55
	dryFactor     = 0.5
	rainBoost     = 1.1
)

// LiveInput is the state of a chase. BattingTeam is the side chasing Target.
type LiveInput struct {
	BattingTeam string
	BowlingTeam string
	City        string
	Weather     string
	Target      int
	Score       int
	Overs       float64
	WicketsOut  int
}

// Validate reports the first invalid field.
func (in LiveInput) Validate() error {
	if err := model.RequireDistinct("teams", in.BattingTeam, in.BowlingTeam); err != nil {
		return err
	}
	switch {
	case in.City == "":
		return model.Invalid("city", "a host city is required")
	case in.Overs < 0 || in.Overs > maxOvers:
		return model.Invalid("overs", fmt.Sprintf("must be between 0 and %d", maxOvers))
	case in.WicketsOut < 0 || in.WicketsOut > maxWickets:
		return model.Invalid("wickets", fmt.Sprintf("must be between 0 and %d", maxWickets))
	case in.Target < 0 || in.Score < 0:
		return model.Invalid("score", "target and score cannot be negative")
	case !slices.Contains(Weathers, in.Weather):
		return model.Invalid("weather", fmt.Sprintf("%q is not one of %v", in.Weather, Weathers))
	}
	return nil
}

// Estimate returns the live win probability for both sides. A finished chase
// (20 overs bowled or 10 wickets down) is decided by the score alone.
func Estimate(ds *loader.Dataset, in LiveInput) (model.WinProbability, error) {
	if err := in.Validate(); err != nil {
		return model.WinProbability{}, err
	}

	wp := model.WinProbability{
		Team1:            in.BattingTeam,
		Team2:            in.BowlingTeam,
		WicketsRemaining: maxWickets - in.WicketsOut,
		Form1:            TeamForm(ds, in.BattingTeam, FormWindow),
		Form2:            TeamForm(ds, in.BowlingTeam, FormWindow),
		Players1:         PlayerForm(ds, in.BattingTeam, FormWindow),
		Players2:         PlayerForm(ds, in.BowlingTeam, FormWindow),
	}
	if in.Overs > 0 {
		wp.RunRate = float64(in.Score) / in.Overs
	}
	if in.Overs < maxOvers {
		wp.RequiredRunRate = float64(in.Target-in.Score) / (maxOvers - in.Overs)
	}

	c := &wp.Contributions
	c.Historical = ratioOr(historicalWinRate(ds, in.BattingTeam), historicalWinRate(ds, in.BowlingTeam)) * weightHistorical
	c.Form = ratioOr(wp.Form1.WinRate, wp.Form2.WinRate) * weightForm

	bat := normalize(wp.Players1.BattingForm,
		math.Min(wp.Players1.BattingForm, wp.Players2.BattingForm),
		math.Max(wp.Players1.BattingForm, wp.Players2.BattingForm))
	bowl := normalize(wp.Players1.BowlingForm,
		math.Min(wp.Players1.BowlingForm, wp.Players2.BowlingForm),
		math.Max(wp.Players1.BowlingForm, wp.Players2.BowlingForm))
	c.PlayerForm = (bat*0.5 + bowl*0.5) * weightPlayers

	c.Situation = (normalize(wp.RunRate, 0, runRateCeiling)*0.4 +
		(1-normalize(wp.RequiredRunRate, 0, requiredCeiling))*0.4 +
		normalize(float64(wp.WicketsRemaining), 0, maxWickets)*0.2) * weightSituation

	home := awayPenalty
	if playsHomeAt(ds, in.BattingTeam, in.City) {
		home = homeAdvantage
	}
	weather := dryFactor
	if in.Weather == WeatherRainy {
		weather = rainFactor
	}
	c.External = (home*0.5 + weather*0.5) * weightExternal

	p1 := clamp01(c.Historical + c.Form + c.PlayerForm + c.Situation + c.External)

	if in.Overs >= maxOvers || in.WicketsOut >= maxWickets {
		wp.Terminal = true
		p1 = 0
		if in.Score >= in.Target {
			p1 = 1
		}
	} else if in.Weather == WeatherRainy {
		p1 = math.Min(1, p1*rainBoost)
	}
	wp.P1 = p1
	wp.P2 = 1 - p1

	log.Debug("live estimate",
		"batting", in.BattingTeam,
		"bowling", in.BowlingTeam,
		"p1", wp.P1,
		"terminal", wp.Terminal,
	)
	return wp, nil
}

// historicalWinRate is wins over matches played across the whole dataset,
// 0.5 for a team with no matches.
func historicalWinRate(ds *loader.Dataset, team string) float64 {
	rec, err := aggregator.TeamPerformance(ds, team, aggregator.Filter{})
	if err != nil || rec.Played == 0 {
		return 0.5
	}
	return float64(rec.Wins) / float64(rec.Played)
}

// playsHomeAt reports whether team has hosted a match (listed as team1) in city.
func playsHomeAt(ds *loader.Dataset, team, city string) bool {
	for _, m := range ds.Matches() {
		if m.Team1 == team && m.City == city {
			return true
		}
	}
	return false
}

// ratioOr returns a/(a+b), or 0.5 when both are zero.
func ratioOr(a, b float64) float64 {
	if a+b <= 0 {
		return 0.5
	}
	return a / (a + b)
}

func normalize(v, lo, hi float64) float64 {
	if hi == lo {
		return 0.5
	}
	return (v - lo) / (hi - lo)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
