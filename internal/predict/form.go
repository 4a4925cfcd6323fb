// Package predict holds the heuristic win-probability models: recent team
// and player form, a head-to-head blend, and the live in-match estimator.
// None of it is fitted; the weights are fixed.
package predict

import (
	"sort"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// FormWindow is how many recent matches form is measured over.
const FormWindow = 5

// topFormPlayers is how many batters and bowlers feed player form.
const topFormPlayers = 5

// recentMatches returns team's last n matches, newest first. Matches on the
// same date are ordered by descending id.
func recentMatches(ds *loader.Dataset, team string, n int) []*model.Match {
	var out []*model.Match
	matches := ds.Matches()
	for i := range matches {
		if matches[i].Involves(team) {
			out = append(out, &matches[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date > out[j].Date
		}
		return out[i].ID > out[j].ID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TeamForm summarizes team's last n matches. Rates are divided by n even
// when the team has played fewer, so a short history reads as weaker form.
func TeamForm(ds *loader.Dataset, team string, n int) model.TeamForm {
	if n <= 0 {
		n = FormWindow
	}
	form := model.TeamForm{Team: team}
	recent := recentMatches(ds, team, n)
	form.Matches = len(recent)

	runs, wickets := 0, 0
	for _, m := range recent {
		if m.Winner == team {
			form.Wins++
		}
		for _, d := range ds.DeliveriesFor(m.ID) {
			if d.BattingTeam == team {
				runs += d.TotalRuns
			}
			if d.BowlingTeam == team && d.IsWicket {
				wickets++
			}
		}
	}
	form.WinRate = float64(form.Wins) / float64(n)
	form.AvgRuns = float64(runs) / float64(n)
	form.AvgWickets = float64(wickets) / float64(n)
	return form
}

// PlayerForm ranks team's batters by runs and bowlers by wickets over its
// last n matches. BattingForm is the mean strike rate of the top five
// batters; BowlingForm is the top five bowlers' wickets divided by n.
func PlayerForm(ds *loader.Dataset, team string, n int) model.PlayerForm {
	if n <= 0 {
		n = FormWindow
	}
	form := model.PlayerForm{Team: team}

	batters := make(map[string]*model.FormBatter)
	bowlers := make(map[string]*model.FormBowler)
	for _, m := range recentMatches(ds, team, n) {
		for _, d := range ds.DeliveriesFor(m.ID) {
			switch team {
			case d.BattingTeam:
				b, ok := batters[d.Batter]
				if !ok {
					b = &model.FormBatter{Batter: d.Batter}
					batters[d.Batter] = b
				}
				b.Runs += d.BatsmanRuns
				if !d.IsWide() {
					b.Balls++
				}
			case d.BowlingTeam:
				b, ok := bowlers[d.Bowler]
				if !ok {
					b = &model.FormBowler{Bowler: d.Bowler}
					bowlers[d.Bowler] = b
				}
				b.RunsConceded += d.TotalRuns
				b.Balls++
				if d.IsWicket {
					b.Wickets++
				}
			}
		}
	}

	for _, name := range sortedNames(batters) {
		b := batters[name]
		if b.Balls > 0 {
			b.StrikeRate = model.Round2(float64(b.Runs) / float64(b.Balls) * 100)
		}
		form.TopBatters = append(form.TopBatters, *b)
	}
	sort.SliceStable(form.TopBatters, func(i, j int) bool {
		return form.TopBatters[i].Runs > form.TopBatters[j].Runs
	})
	if len(form.TopBatters) > topFormPlayers {
		form.TopBatters = form.TopBatters[:topFormPlayers]
	}

	for _, name := range sortedNames(bowlers) {
		b := bowlers[name]
		if b.Balls > 0 {
			b.Economy = model.Round2(float64(b.RunsConceded) / (float64(b.Balls) / 6))
		}
		form.TopBowlers = append(form.TopBowlers, *b)
	}
	sort.SliceStable(form.TopBowlers, func(i, j int) bool {
		return form.TopBowlers[i].Wickets > form.TopBowlers[j].Wickets
	})
	if len(form.TopBowlers) > topFormPlayers {
		form.TopBowlers = form.TopBowlers[:topFormPlayers]
	}

	if len(form.TopBatters) > 0 {
		sum := 0.0
		for _, b := range form.TopBatters {
			sum += b.StrikeRate
		}
		form.BattingForm = sum / float64(len(form.TopBatters))
	}
	wickets := 0
	for _, b := range form.TopBowlers {
		wickets += b.Wickets
	}
	form.BowlingForm = float64(wickets) / float64(n)
	return form
}

func sortedNames[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
