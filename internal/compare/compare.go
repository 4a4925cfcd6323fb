// Package compare builds the cross-cutting comparisons on top of the
// aggregator: season-by-season duels, matchups, rankings and the
// choose-the-best pick.
package compare

import (
	"sort"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// BowlerVsBowler returns wickets per season for two bowlers, counting every
// wicket that fell to them in the first two innings (run-outs included).
// Seasons where only one of them bowled are kept with a 0 for the other.
func BowlerVsBowler(ds *loader.Dataset, a, b string) ([]model.SeasonCount, error) {
	if err := model.RequireDistinct("bowlers", a, b); err != nil {
		return nil, err
	}

	wicketsA := make(map[string]int)
	wicketsB := make(map[string]int)
	for i := range ds.Bowling() {
		r := &ds.Bowling()[i]
		if r.Inning != 1 && r.Inning != 2 {
			continue
		}
		var acc map[string]int
		switch r.Bowler {
		case a:
			acc = wicketsA
		case b:
			acc = wicketsB
		default:
			continue
		}
		n := acc[r.Season]
		if r.IsWicket {
			n++
		}
		acc[r.Season] = n
	}
	if len(wicketsA) == 0 || len(wicketsB) == 0 {
		return nil, model.NoData("no bowling found for one or both of %s, %s", a, b)
	}
	return joinSeasons(wicketsA, wicketsB), nil
}

// TeamVsTeam returns wins per season for two teams in the matches between
// them. Every season they met gets a row, zero-filled.
func TeamVsTeam(ds *loader.Dataset, a, b string) ([]model.SeasonCount, error) {
	if err := model.RequireDistinct("teams", a, b); err != nil {
		return nil, err
	}

	winsA := make(map[string]int)
	winsB := make(map[string]int)
	meetings := aggregator.Meetings(ds, a, b, aggregator.Filter{})
	if len(meetings) == 0 {
		return nil, model.NoData("%s and %s never met", a, b)
	}
	for _, m := range meetings {
		wa, wb := winsA[m.Season], winsB[m.Season]
		switch m.Winner {
		case a:
			wa++
		case b:
			wb++
		}
		winsA[m.Season], winsB[m.Season] = wa, wb
	}
	return joinSeasons(winsA, winsB), nil
}

// joinSeasons outer-joins two per-season counts, sorted by season.
func joinSeasons(a, b map[string]int) []model.SeasonCount {
	seasons := make(map[string]bool, len(a)+len(b))
	for s := range a {
		seasons[s] = true
	}
	for s := range b {
		seasons[s] = true
	}
	out := make([]model.SeasonCount, 0, len(seasons))
	for s := range seasons {
		out = append(out, model.SeasonCount{Season: s, A: a[s], B: b[s]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}
