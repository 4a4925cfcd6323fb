package aggregator

import (
	"sort"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// BowlingStats aggregates a bowler's record over the filtered bowling view.
// Returns ErrNoData when the bowler has no deliveries in the view.
func BowlingStats(ds *loader.Dataset, bowler string, f Filter) (model.BowlingStats, error) {
	if bowler == "" {
		return model.BowlingStats{}, model.Invalid("bowler", "a bowler is required")
	}
	if err := f.Validate(ds); err != nil {
		return model.BowlingStats{}, err
	}

	seasons := make(map[string]bool)
	var rows []model.BowlingRow
	for i := range ds.Bowling() {
		r := &ds.Bowling()[i]
		if !f.bowling(r) {
			continue
		}
		seasons[r.Season] = true
		if r.Bowler == bowler {
			rows = append(rows, *r)
		}
	}
	if len(rows) == 0 {
		return model.BowlingStats{}, model.NoData("%s has no bowling record for this selection", bowler)
	}

	s := SummarizeBowling(bowler, rows)
	s.MatchAwards = awardCount(ds.Matches(), bowler, seasons)
	return s, nil
}

// SummarizeBowling folds one bowler's rows into a BowlingStats. Hauls and
// the best figure come from per-match totals. MatchAwards is left 0.
func SummarizeBowling(bowler string, rows []model.BowlingRow) model.BowlingStats {
	s := model.BowlingStats{Bowler: bowler}
	perMatch := make(map[int]*model.Figure)
	for i := range rows {
		r := &rows[i]
		fig, ok := perMatch[r.MatchID]
		if !ok {
			fig = &model.Figure{MatchID: r.MatchID, Date: r.Date}
			perMatch[r.MatchID] = fig
		}
		fig.Runs += r.BowlerRuns
		s.RunsConceded += r.BowlerRuns
		if r.BowlerWicket {
			fig.Wickets++
			s.Wickets++
		}
		if !r.IsWide() {
			s.Balls++
		}
		switch r.BatsmanRuns {
		case 4:
			s.Fours++
		case 6:
			s.Sixes++
		}
	}

	s.Innings = len(perMatch)
	figures := make([]model.Figure, 0, len(perMatch))
	for _, fig := range perMatch {
		if fig.Wickets >= 3 {
			s.ThreeWickets++
		}
		if fig.Wickets >= 4 {
			s.FourWickets++
		}
		if fig.Wickets >= 5 {
			s.FiveWickets++
		}
		figures = append(figures, *fig)
	}
	s.Best = BestFigure(figures)

	s.Overs = float64(s.Balls) / 6
	s.Economy = model.Ratio(float64(s.RunsConceded), s.Overs)
	s.Average = model.Ratio(float64(s.RunsConceded), float64(s.Wickets))
	s.StrikeRate = model.Ratio(float64(s.Balls), float64(s.Wickets))
	return s
}

// BestFigure picks the best single-match figure: most wickets, then fewest
// runs, then the earliest date, then the lowest match id.
func BestFigure(figures []model.Figure) model.Figure {
	if len(figures) == 0 {
		return model.Figure{}
	}
	sorted := append([]model.Figure(nil), figures...)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Wickets != b.Wickets {
			return a.Wickets > b.Wickets
		}
		if a.Runs != b.Runs {
			return a.Runs < b.Runs
		}
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		return a.MatchID < b.MatchID
	})
	return sorted[0]
}
