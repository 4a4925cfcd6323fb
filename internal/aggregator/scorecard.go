package aggregator

import (
	"sort"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// Scorecards builds a scorecard for every match the two teams played in
// season, or in every season when season is empty or AllSeasons. Returns
// ErrNoData when they never met in that range.
func Scorecards(ds *loader.Dataset, teamA, teamB, season string) ([]model.Scorecard, error) {
	if err := model.RequireDistinct("teams", teamA, teamB); err != nil {
		return nil, err
	}
	f := Filter{Season: season}
	if err := f.Validate(ds); err != nil {
		return nil, err
	}

	meetings := Meetings(ds, teamA, teamB, f)
	if len(meetings) == 0 {
		if season == "" || season == AllSeasons {
			return nil, model.NoData("%s and %s never met", teamA, teamB)
		}
		return nil, model.NoData("%s and %s did not meet in %s", teamA, teamB, season)
	}
	out := make([]model.Scorecard, 0, len(meetings))
	for _, m := range meetings {
		out = append(out, scorecard(m, ds.DeliveriesFor(m.ID)))
	}
	return out, nil
}

func scorecard(m *model.Match, deliveries []model.Delivery) model.Scorecard {
	sc := model.Scorecard{
		MatchID:      m.ID,
		Date:         m.Date,
		Venue:        m.Venue,
		Winner:       m.Winner,
		Result:       m.Result,
		ResultMargin: int(m.ResultMargin.Int64),
		HasMargin:    m.ResultMargin.Valid,
	}
	for inning := 1; inning <= 2; inning++ {
		var balls []model.Delivery
		for _, d := range deliveries {
			if d.Inning == inning {
				balls = append(balls, d)
			}
		}
		if len(balls) == 0 {
			continue
		}
		sc.Innings = append(sc.Innings, inningsCard(inning, balls))
	}
	return sc
}

func inningsCard(inning int, deliveries []model.Delivery) model.InningsCard {
	card := model.InningsCard{Inning: inning, BattingTeam: deliveries[0].BattingTeam}

	batters := make(map[string]*model.BatterLine)
	bowlers := make(map[string]*model.BowlerLine)
	legal := 0
	for _, d := range deliveries {
		card.Runs += d.TotalRuns
		if d.IsWicket {
			card.Wickets++
		}

		bl, ok := batters[d.Batter]
		if !ok {
			bl = &model.BatterLine{Batter: d.Batter}
			batters[d.Batter] = bl
		}
		bl.Runs += d.BatsmanRuns

		bw, ok := bowlers[d.Bowler]
		if !ok {
			bw = &model.BowlerLine{Bowler: d.Bowler}
			bowlers[d.Bowler] = bw
		}
		bw.RunsConceded += d.TotalRuns
		if d.IsWicket {
			bw.Wickets++
		}

		if !d.IsWide() {
			legal++
			bl.Balls++
			bw.Balls++
		}
	}
	card.Overs = model.OversNotation(legal)

	for _, bl := range batters {
		bl.StrikeRate = StrikeRate(bl.Runs, bl.Balls)
		card.Batters = append(card.Batters, *bl)
	}
	sort.Slice(card.Batters, func(i, j int) bool { return card.Batters[i].Batter < card.Batters[j].Batter })

	for _, bw := range bowlers {
		bw.Overs = model.OversNotation(bw.Balls)
		bw.Economy = model.Ratio(float64(bw.RunsConceded)*6, float64(bw.Balls))
		card.Bowlers = append(card.Bowlers, *bw)
	}
	sort.Slice(card.Bowlers, func(i, j int) bool { return card.Bowlers[i].Bowler < card.Bowlers[j].Bowler })
	return card
}
