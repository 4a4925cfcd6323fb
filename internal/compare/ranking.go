package compare

import (
	"sort"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// DefaultTopN is how many rows a ranking returns when n is not positive.
const DefaultTopN = 10

// TopStrikeRates ranks batters by career strike rate. Batters below minBalls
// legal balls are dropped before ranking; equal strike rates keep name order.
func TopStrikeRates(ds *loader.Dataset, minBalls, n int) ([]model.RankedBatter, error) {
	if minBalls < 1 {
		return nil, model.Invalid("min balls", "must be at least 1")
	}
	if n <= 0 {
		n = DefaultTopN
	}

	type acc struct{ runs, balls int }
	byBatter := make(map[string]*acc)
	for _, d := range ds.Deliveries() {
		a, ok := byBatter[d.Batter]
		if !ok {
			a = &acc{}
			byBatter[d.Batter] = a
		}
		a.runs += d.BatsmanRuns
		if !d.IsWide() {
			a.balls++
		}
	}

	names := make([]string, 0, len(byBatter))
	for name, a := range byBatter {
		if a.balls >= minBalls {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	rate := func(name string) float64 {
		a := byBatter[name]
		return float64(a.runs) / float64(a.balls)
	}
	sort.SliceStable(names, func(i, j int) bool { return rate(names[i]) > rate(names[j]) })

	if len(names) > n {
		names = names[:n]
	}
	out := make([]model.RankedBatter, 0, len(names))
	for _, name := range names {
		a := byBatter[name]
		out = append(out, model.RankedBatter{
			Batter:     name,
			Runs:       a.runs,
			Balls:      a.balls,
			StrikeRate: aggregator.StrikeRate(a.runs, a.balls),
		})
	}
	return out, nil
}

// HighestTargets lists the n matches with the highest first-innings totals
// (target minus one). The side batting first is derived from the toss.
func HighestTargets(ds *loader.Dataset, n int) []model.TargetRow {
	if n <= 0 {
		n = DefaultTopN
	}
	var with []*model.Match
	matches := ds.Matches()
	for i := range matches {
		if matches[i].TargetRuns.Valid {
			with = append(with, &matches[i])
		}
	}
	sort.SliceStable(with, func(i, j int) bool {
		return with[i].TargetRuns.Int64 > with[j].TargetRuns.Int64
	})
	if len(with) > n {
		with = with[:n]
	}

	out := make([]model.TargetRow, 0, len(with))
	for _, m := range with {
		batting := BattingFirst(m)
		out = append(out, model.TargetRow{
			MatchID:      m.ID,
			BattingTeam:  batting,
			Against:      m.Opponent(batting),
			Runs:         int(m.TargetRuns.Int64) - 1,
			Date:         m.Date,
			Venue:        m.Venue,
			City:         m.City,
			Winner:       m.Winner,
			ResultMargin: int(m.ResultMargin.Int64),
			HasMargin:    m.ResultMargin.Valid,
		})
	}
	return out
}

// BattingFirst returns the side that batted first according to the toss.
func BattingFirst(m *model.Match) string {
	tossWinnerBats := m.TossDecision == "bat"
	if m.TossWinner == m.Team1 {
		if tossWinnerBats {
			return m.Team1
		}
		return m.Team2
	}
	if tossWinnerBats {
		return m.Team2
	}
	return m.Team1
}
