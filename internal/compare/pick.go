package compare

import (
	"fmt"
	"sort"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// MaxPickBowlers caps how many bowlers each batsman can be measured against.
const MaxPickBowlers = 5

// franchiseAliases merges renamed franchises. It only applies to the pick
// comparison; everywhere else raw labels are distinct teams.
var franchiseAliases = map[string]string{
	"Delhi Capitals":              "Delhi Capitals/Delhi Daredevils",
	"Delhi Daredevils":            "Delhi Capitals/Delhi Daredevils",
	"Royal Challengers Bangalore": "Royal Challengers Bangalore/Bengaluru",
	"Royal Challengers Bengaluru": "Royal Challengers Bangalore/Bengaluru",
	"Punjab Kings":                "Punjab Kings/Kings XI Punjab",
	"Kings XI Punjab":             "Punjab Kings/Kings XI Punjab",
	"Rising Pune Supergiant":      "Rising Pune Supergiant/Supergiants",
	"Rising Pune Supergiants":     "Rising Pune Supergiant/Supergiants",
}

// CanonicalTeam maps a franchise label to its merged name.
func CanonicalTeam(team string) string {
	if c, ok := franchiseAliases[team]; ok {
		return c
	}
	return team
}

// PerformanceScore is the pick heuristic. The +1 keeps never-dismissed
// batsmen defined and discounts them against a raw average.
func PerformanceScore(runs int, strikeRate float64, sixes, fours, dismissals int) float64 {
	return (float64(runs)*1.5 + strikeRate + float64(sixes)*10 + float64(fours)*5) / float64(dismissals+1)
}

// ChooseBestInput names two batsmen and the bowlers each is measured against.
type ChooseBestInput struct {
	Batter1  string
	Bowlers1 []string
	Batter2  string
	Bowlers2 []string
}

func (in ChooseBestInput) validate() error {
	if err := model.RequireDistinct("batsmen", in.Batter1, in.Batter2); err != nil {
		return err
	}
	if len(in.Bowlers1) == 0 && len(in.Bowlers2) == 0 {
		return model.Invalid("bowlers", "select at least one bowler")
	}
	if len(in.Bowlers1) > MaxPickBowlers || len(in.Bowlers2) > MaxPickBowlers {
		return model.Invalid("bowlers", fmt.Sprintf("at most %d bowlers per batsman", MaxPickBowlers))
	}
	return nil
}

// ChooseBest scores each batsman against their selected bowlers and picks the
// higher score. When either batsman never faced any of their bowlers the
// partial result is returned together with an ErrNoData-wrapped error and no
// winner is named.
func ChooseBest(ds *loader.Dataset, in ChooseBestInput) (model.PickResult, error) {
	if err := in.validate(); err != nil {
		return model.PickResult{}, err
	}

	res := model.PickResult{
		First:  pick(ds, in.Batter1, in.Bowlers1),
		Second: pick(ds, in.Batter2, in.Bowlers2),
	}
	seen := make(map[string]bool)
	for _, t := range ds.Teams() {
		c := CanonicalTeam(t)
		if !seen[c] {
			seen[c] = true
			res.Teams = append(res.Teams, c)
		}
	}
	sort.Strings(res.Teams)

	if len(res.First.Bowlers) == 0 || len(res.Second.Bowlers) == 0 {
		return res, model.NoData("cannot compare: a batsman has not faced any selected bowler")
	}
	switch {
	case res.First.Score > res.Second.Score:
		res.Winner = res.First.Batter
	case res.Second.Score > res.First.Score:
		res.Winner = res.Second.Batter
	default:
		res.Tie = true
	}
	return res, nil
}

func pick(ds *loader.Dataset, batter string, bowlers []string) model.BatsmanPick {
	p := model.BatsmanPick{Batter: batter}

	selected := make(map[string]bool, len(bowlers))
	var order []string
	for _, b := range bowlers {
		if b != "" && !selected[b] {
			selected[b] = true
			order = append(order, b)
		}
	}

	// bowler -> season -> line
	tables := make(map[string]map[string]*model.MatchupSeason)
	for i := range ds.Bowling() {
		r := &ds.Bowling()[i]
		if r.Batter != batter || !selected[r.Bowler] {
			continue
		}
		seasons, ok := tables[r.Bowler]
		if !ok {
			seasons = make(map[string]*model.MatchupSeason)
			tables[r.Bowler] = seasons
		}
		line, ok := seasons[r.Season]
		if !ok {
			line = &model.MatchupSeason{Season: r.Season}
			seasons[r.Season] = line
		}

		// Every delivery counts as a ball faced here, wides included.
		line.Balls++
		line.Runs += r.BatsmanRuns
		switch r.BatsmanRuns {
		case 4:
			line.Fours++
		case 6:
			line.Sixes++
		}
		if r.IsWicket {
			line.Dismissals++
		}
	}

	for _, bowler := range order {
		seasons, ok := tables[bowler]
		if !ok {
			continue
		}
		t := model.BowlerSeasonTable{Bowler: bowler}
		for _, s := range sortedKeys(seasons) {
			line := *seasons[s]
			t.Seasons = append(t.Seasons, line)
			p.Runs += line.Runs
			p.Balls += line.Balls
			p.Dismissals += line.Dismissals
			p.Sixes += line.Sixes
			p.Fours += line.Fours
		}
		p.Bowlers = append(p.Bowlers, t)
	}

	sr := 0.0
	if p.Balls > 0 {
		sr = float64(p.Runs) / float64(p.Balls) * 100
	}
	p.StrikeRate = model.Round2(sr)
	p.Score = PerformanceScore(p.Runs, sr, p.Sixes, p.Fours, p.Dismissals)
	return p
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
