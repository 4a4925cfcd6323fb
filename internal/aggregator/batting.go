package aggregator

import (
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// BattingStats aggregates a batter's record over the filtered batting view.
// Returns ErrNoData when the batter has no deliveries in the view.
func BattingStats(ds *loader.Dataset, player string, f Filter) (model.BattingStats, error) {
	if player == "" {
		return model.BattingStats{}, model.Invalid("player", "a player is required")
	}
	if err := f.Validate(ds); err != nil {
		return model.BattingStats{}, err
	}

	seasons := make(map[string]bool)
	var rows []model.BattingRow
	for i := range ds.Batting() {
		r := &ds.Batting()[i]
		if !f.batting(r) {
			continue
		}
		seasons[r.Season] = true
		if r.Batter == player {
			rows = append(rows, *r)
		}
	}
	if len(rows) == 0 {
		return model.BattingStats{}, model.NoData("%s has no batting record for this selection", player)
	}

	s := SummarizeBatting(player, rows)
	s.MatchAwards = awardCount(ds.Matches(), player, seasons)
	return s, nil
}

// SummarizeBatting folds one batter's rows into a BattingStats. Milestones
// and the high score come from per-match run totals. MatchAwards is left 0.
func SummarizeBatting(player string, rows []model.BattingRow) model.BattingStats {
	s := model.BattingStats{Player: player}
	perMatch := make(map[int]int)
	for i := range rows {
		r := &rows[i]
		perMatch[r.MatchID] += r.BatsmanRuns
		s.Runs += r.BatsmanRuns
		if !r.IsWide() {
			s.Balls++
		}
		switch r.BatsmanRuns {
		case 4:
			s.Fours++
		case 6:
			s.Sixes++
		}
		if r.IsWicket {
			s.Dismissals++
		}
	}

	s.Innings = len(perMatch)
	s.NotOuts = s.Innings - s.Dismissals
	for _, runs := range perMatch {
		if runs >= 50 {
			s.Fifties++
		}
		if runs >= 100 {
			s.Centuries++
		}
		if runs > s.HighScore {
			s.HighScore = runs
		}
	}
	s.StrikeRate = StrikeRate(s.Runs, s.Balls)
	s.Average = model.Ratio(float64(s.Runs), float64(s.Dismissals))
	return s
}

// StrikeRate is runs per 100 balls, 0 when no balls were faced.
func StrikeRate(runs, balls int) float64 {
	return model.Ratio(float64(runs)*100, float64(balls)).Or(0)
}
