package aggregator

import (
	"fmt"
	"sort"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// SeasonSummary reports one season: per-team batting volume (omitted when a
// player is selected), the season's top run scorer and its top wicket taker.
// team and player are optional.
func SeasonSummary(ds *loader.Dataset, season, team, player string) (model.SeasonSummary, error) {
	if season == "" || season == AllSeasons {
		return model.SeasonSummary{}, model.Invalid("season", "a single season is required")
	}
	if !ds.HasSeason(season) {
		return model.SeasonSummary{}, model.Invalid("season", fmt.Sprintf("%q is not a loaded season", season))
	}

	var bat []model.BattingRow
	for _, r := range ds.Batting() {
		if r.Season != season {
			continue
		}
		if team != "" && r.BattingTeam != team && r.BowlingTeam != team {
			continue
		}
		if player != "" && r.Batter != player {
			continue
		}
		bat = append(bat, r)
	}
	var bowl []model.BowlingRow
	for _, r := range ds.Bowling() {
		if r.Season != season {
			continue
		}
		if team != "" && r.BowlingTeam != team {
			continue
		}
		if player != "" && r.Bowler != player {
			continue
		}
		bowl = append(bowl, r)
	}
	if len(bat) == 0 && len(bowl) == 0 {
		return model.SeasonSummary{}, model.NoData("nothing recorded for season %s with these filters", season)
	}

	sum := model.SeasonSummary{Season: season}
	if player == "" {
		sum.Teams = teamTotals(bat)
	}
	inSeason := map[string]bool{season: true}

	// ---- Top batter: most runs, name order on ties. ----
	batRows := make(map[string][]model.BattingRow)
	for _, r := range bat {
		batRows[r.Batter] = append(batRows[r.Batter], r)
	}
	if name := topBy(batRows, func(rows []model.BattingRow) int {
		n := 0
		for _, r := range rows {
			n += r.BatsmanRuns
		}
		return n
	}); name != "" {
		s := SummarizeBatting(name, batRows[name])
		s.MatchAwards = awardCount(ds.Matches(), name, inSeason)
		sum.TopBatter = &s
	}

	// ---- Top bowler: most credited wickets, name order on ties. ----
	bowlRows := make(map[string][]model.BowlingRow)
	for _, r := range bowl {
		bowlRows[r.Bowler] = append(bowlRows[r.Bowler], r)
	}
	if name := topBy(bowlRows, func(rows []model.BowlingRow) int {
		n := 0
		for _, r := range rows {
			if r.BowlerWicket {
				n++
			}
		}
		return n
	}); name != "" {
		s := SummarizeBowling(name, bowlRows[name])
		s.MatchAwards = awardCount(ds.Matches(), name, inSeason)
		sum.TopBowler = &s
	}
	return sum, nil
}

// topBy returns the key with the highest score, the alphabetically first on ties.
func topBy[R any](groups map[string][]R, score func([]R) int) string {
	names := make([]string, 0, len(groups))
	for k := range groups {
		names = append(names, k)
	}
	sort.Strings(names)
	best, bestScore := "", -1
	for _, name := range names {
		if s := score(groups[name]); s > bestScore {
			best, bestScore = name, s
		}
	}
	return best
}

func teamTotals(rows []model.BattingRow) []model.TeamSeasonTotals {
	type acc struct {
		matches map[int]bool
		runs    int
		wickets int
	}
	byTeam := make(map[string]*acc)
	for _, r := range rows {
		a, ok := byTeam[r.BattingTeam]
		if !ok {
			a = &acc{matches: make(map[int]bool)}
			byTeam[r.BattingTeam] = a
		}
		a.matches[r.MatchID] = true
		a.runs += r.TotalRuns
		if r.IsWicket {
			a.wickets++
		}
	}
	out := make([]model.TeamSeasonTotals, 0, len(byTeam))
	for team, a := range byTeam {
		out = append(out, model.TeamSeasonTotals{Team: team, Matches: len(a.matches), Runs: a.runs, Wickets: a.wickets})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Team < out[j].Team })
	return out
}
