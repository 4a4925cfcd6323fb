// Package loadertest builds small hand-made datasets for tests.
package loadertest

import (
	"database/sql"
	"testing"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// Build runs loader.New and fails the test on error.
func Build(t testing.TB, matches []model.Match, deliveries []model.Delivery) *loader.Dataset {
	t.Helper()
	ds, err := loader.New(matches, deliveries)
	if err != nil {
		t.Fatalf("build dataset: %v", err)
	}
	return ds
}

// Match returns a match with the essentials set. Winner may be empty.
func Match(id int, season, date, venue, team1, team2, winner, result string) model.Match {
	return model.Match{
		ID: id, Season: season, Date: date, Venue: venue,
		Team1: team1, Team2: team2, Winner: winner, Result: result,
	}
}

// WithTarget sets target_runs.
func WithTarget(m model.Match, target int) model.Match {
	m.TargetRuns = sql.NullInt64{Int64: int64(target), Valid: true}
	return m
}

// WithMargin sets result_margin.
func WithMargin(m model.Match, margin int) model.Match {
	m.ResultMargin = sql.NullInt64{Int64: int64(margin), Valid: true}
	return m
}

// Ball returns a legal delivery in the given innings with runs off the bat.
func Ball(matchID, inning int, battingTeam, bowlingTeam, batter, bowler string, runs int) model.Delivery {
	return model.Delivery{
		MatchID: matchID, Inning: inning,
		BattingTeam: battingTeam, BowlingTeam: bowlingTeam,
		Batter: batter, Bowler: bowler,
		BatsmanRuns: runs, TotalRuns: runs,
	}
}

// Balls returns one Ball per entry in runs.
func Balls(matchID, inning int, battingTeam, bowlingTeam, batter, bowler string, runs ...int) []model.Delivery {
	out := make([]model.Delivery, 0, len(runs))
	for _, r := range runs {
		out = append(out, Ball(matchID, inning, battingTeam, bowlingTeam, batter, bowler, r))
	}
	return out
}

// Extra turns d into an extra of the given type worth n runs.
func Extra(d model.Delivery, kind string, n int) model.Delivery {
	d.ExtrasType = kind
	d.ExtraRuns = n
	d.TotalRuns = d.BatsmanRuns + n
	return d
}

// Out marks the batter on strike dismissed.
func Out(d model.Delivery, kind string) model.Delivery {
	d.IsWicket = true
	d.PlayerDismissed = d.Batter
	d.DismissalKind = kind
	return d
}
