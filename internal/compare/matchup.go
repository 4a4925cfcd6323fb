package compare

import (
	"errors"
	"sort"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// BatsmanVsBowler breaks down every ball batter faced from bowler by season
// and by venue, plus an all-seasons roll-up. season narrows the season and
// venue tables only. Returns ErrNoData when the two never met, which is
// distinct from a matchup that produced zero runs.
func BatsmanVsBowler(ds *loader.Dataset, batter, bowler, season string) (model.MatchupReport, error) {
	if err := model.RequireDistinct("players", batter, bowler); err != nil {
		return model.MatchupReport{}, err
	}
	if season == "" {
		season = aggregator.AllSeasons
	}
	if err := (aggregator.Filter{Season: season}).Validate(ds); err != nil {
		return model.MatchupReport{}, err
	}

	var rows []*model.BattingRow
	for i := range ds.Batting() {
		r := &ds.Batting()[i]
		if r.Batter == batter && r.Bowler == bowler {
			rows = append(rows, r)
		}
	}
	if len(rows) == 0 {
		return model.MatchupReport{}, model.NoData("%s has never faced %s", batter, bowler)
	}

	rep := model.MatchupReport{Batter: batter, Bowler: bowler, Season: season}
	bySeason := newLineAcc()
	byVenue := newLineAcc()
	allVenues := newLineAcc()
	for _, r := range rows {
		allVenues.add(r.Venue, r)
		rep.TotalRuns += r.BatsmanRuns
		if r.IsWicket {
			rep.TotalOuts++
		}
		if season != aggregator.AllSeasons && r.Season != season {
			continue
		}
		bySeason.add(r.Season, r)
		byVenue.add(r.Venue, r)
	}
	rep.BySeason = bySeason.lines()
	rep.ByVenue = byVenue.lines()
	rep.AllVenues = allVenues.lines()
	return rep, nil
}

type lineAcc map[string]*model.MatchupLine

func newLineAcc() lineAcc { return make(lineAcc) }

func (a lineAcc) add(key string, r *model.BattingRow) {
	l, ok := a[key]
	if !ok {
		l = &model.MatchupLine{Key: key}
		a[key] = l
	}
	l.Runs += r.BatsmanRuns
	if r.IsWicket {
		l.Dismissals++
	}
}

func (a lineAcc) lines() []model.MatchupLine {
	out := make([]model.MatchupLine, 0, len(a))
	for _, l := range a {
		out = append(out, *l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// PlayerVsTeam returns a player's season-by-season batting against opponent's
// bowlers and bowling against opponent's batters. Returns ErrNoData when the
// player never faced or bowled at opponent.
func PlayerVsTeam(ds *loader.Dataset, player, opponent string) (model.PlayerVsTeam, error) {
	if player == "" || opponent == "" {
		return model.PlayerVsTeam{}, model.Invalid("selection", "a player and an opponent team are required")
	}

	bat := make(map[string][]model.BattingRow)
	for _, r := range ds.Batting() {
		if r.Batter == player && r.BowlingTeam == opponent {
			bat[r.Season] = append(bat[r.Season], r)
		}
	}
	bowl := make(map[string][]model.BowlingRow)
	for _, r := range ds.Bowling() {
		if r.Bowler == player && r.BattingTeam == opponent {
			bowl[r.Season] = append(bowl[r.Season], r)
		}
	}
	if len(bat) == 0 && len(bowl) == 0 {
		return model.PlayerVsTeam{}, model.NoData("%s has no record against %s", player, opponent)
	}

	out := model.PlayerVsTeam{Player: player, Opponent: opponent}
	for _, season := range sortedKeys(bat) {
		s := aggregator.SummarizeBatting(player, bat[season])
		out.Batting = append(out.Batting, model.SeasonBatting{
			Season:     season,
			Matches:    s.Innings,
			Runs:       s.Runs,
			Balls:      s.Balls,
			Dismissals: s.Dismissals,
			Fifties:    s.Fifties,
			Centuries:  s.Centuries,
			HighScore:  s.HighScore,
			StrikeRate: model.Ratio(float64(s.Runs)*100, float64(s.Balls)),
			Average:    s.Average,
		})
	}
	for _, season := range sortedKeys(bowl) {
		s := aggregator.SummarizeBowling(player, bowl[season])
		out.Bowling = append(out.Bowling, model.SeasonBowling{
			Season:       season,
			Matches:      s.Innings,
			Wickets:      s.Wickets,
			RunsConceded: s.RunsConceded,
			Balls:        s.Balls,
			Overs:        model.Round2(s.Overs),
			ThreeWickets: s.ThreeWickets,
			FourWickets:  s.FourWickets,
			FiveWickets:  s.FiveWickets,
			Economy:      s.Economy,
			Average:      s.Average,
		})
	}
	return out, nil
}

// ComparePlayersVsTeam puts two players' records against the same opponent
// side by side. A player with no record against opponent gets an empty
// record and N/A means; ErrNoData is returned only when neither has one.
func ComparePlayersVsTeam(ds *loader.Dataset, first, second, opponent string) (model.PlayerComparison, error) {
	if err := model.RequireDistinct("players", first, second); err != nil {
		return model.PlayerComparison{}, err
	}
	if opponent == "" {
		return model.PlayerComparison{}, model.Invalid("opponent", "an opponent team is required")
	}

	var cmp model.PlayerComparison
	missing := 0
	for i, p := range []string{first, second} {
		rec, err := PlayerVsTeam(ds, p, opponent)
		if err != nil {
			if !errors.Is(err, model.ErrNoData) {
				return model.PlayerComparison{}, err
			}
			missing++
			rec = model.PlayerVsTeam{Player: p, Opponent: opponent}
		}
		if i == 0 {
			cmp.First = rec
		} else {
			cmp.Second = rec
		}
		cmp.Summary[i] = Summarize(rec)
	}
	if missing == 2 {
		return model.PlayerComparison{}, model.NoData("neither %s nor %s has a record against %s", first, second, opponent)
	}
	return cmp, nil
}

// Summarize totals runs and wickets and averages the per-season ratios,
// skipping seasons where a ratio was N/A.
func Summarize(rec model.PlayerVsTeam) model.ComparisonSummary {
	sum := model.ComparisonSummary{Player: rec.Player}
	var avg, sr, bavg, econ []model.Stat
	for _, b := range rec.Batting {
		sum.TotalRuns += b.Runs
		avg = append(avg, b.Average)
		sr = append(sr, b.StrikeRate)
	}
	for _, b := range rec.Bowling {
		sum.TotalWickets += b.Wickets
		bavg = append(bavg, b.Average)
		econ = append(econ, b.Economy)
	}
	sum.BattingAverage = model.MeanStats(avg)
	sum.StrikeRate = model.MeanStats(sr)
	sum.BowlingAverage = model.MeanStats(bavg)
	sum.Economy = model.MeanStats(econ)
	return sum
}
