package aggregator

import (
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// outcome is a match result from one team's point of view.
type outcome int

const (
	outcomeLoss outcome = iota
	outcomeWin
	outcomeTie
	outcomeNoResult
)

// outcomeFor classifies a match for team. A recorded winner takes precedence
// over a tie (super-over decided), and a tie over a missing winner, so each
// match lands in exactly one bucket.
func outcomeFor(m *model.Match, team string) outcome {
	switch {
	case m.Winner == team:
		return outcomeWin
	case m.Result == model.ResultTie:
		return outcomeTie
	case m.Winner == "":
		return outcomeNoResult
	}
	return outcomeLoss
}

// TeamPerformance computes team's result record over the matches selected by
// f. Only the season, venue and opponent parts of the filter apply.
func TeamPerformance(ds *loader.Dataset, team string, f Filter) (model.TeamRecord, error) {
	if team == "" {
		return model.TeamRecord{}, model.Invalid("team", "a team is required")
	}
	if err := f.Validate(ds); err != nil {
		return model.TeamRecord{}, err
	}
	return teamRecord(ds.Matches(), team, f), nil
}

// AllTeamPerformance returns every team's all-time record, in team order.
func AllTeamPerformance(ds *loader.Dataset) []model.TeamRecord {
	out := make([]model.TeamRecord, 0, len(ds.Teams()))
	for _, team := range ds.Teams() {
		out = append(out, teamRecord(ds.Matches(), team, Filter{}))
	}
	return out
}

func teamRecord(matches []model.Match, team string, f Filter) model.TeamRecord {
	rec := model.TeamRecord{Team: team}
	for i := range matches {
		m := &matches[i]
		if !m.Involves(team) || !f.match(m) {
			continue
		}
		if f.Opponent != "" && m.Opponent(team) != f.Opponent {
			continue
		}
		rec.Played++
		switch outcomeFor(m, team) {
		case outcomeWin:
			rec.Wins++
		case outcomeTie:
			rec.Ties++
		case outcomeNoResult:
			rec.NoResults++
		}
	}
	rec.Losses = rec.Played - rec.Wins - rec.Ties - rec.NoResults
	rec.WinPct = model.Ratio(float64(rec.Wins)*100, float64(rec.Played)).Or(0)
	return rec
}

// HeadToHead compares two teams over the matches they played against each
// other. Returns ErrNoData when they never met in the selection.
func HeadToHead(ds *loader.Dataset, teamA, teamB string, f Filter) (model.HeadToHead, error) {
	if err := model.RequireDistinct("teams", teamA, teamB); err != nil {
		return model.HeadToHead{}, err
	}
	if err := f.Validate(ds); err != nil {
		return model.HeadToHead{}, err
	}

	h := model.HeadToHead{TeamA: teamA, TeamB: teamB}
	for _, m := range Meetings(ds, teamA, teamB, f) {
		h.Matches++
		switch m.Winner {
		case teamA:
			h.WinsA++
		case teamB:
			h.WinsB++
		case "":
			h.NoResults++
		}
		if m.Result == model.ResultTie {
			h.Ties++
		}

		// The side listed as team1 set the target.
		if m.TargetRuns.Valid {
			set := int(m.TargetRuns.Int64) - 1
			if m.Team1 == teamA {
				h.HighestA = max(h.HighestA, set)
			} else {
				h.HighestB = max(h.HighestB, set)
			}
		}
		if m.Result == model.ResultRuns && m.ResultMargin.Valid {
			margin := int(m.ResultMargin.Int64)
			switch m.Winner {
			case teamA:
				h.HighestA = max(h.HighestA, margin)
			case teamB:
				h.HighestB = max(h.HighestB, margin)
			}
		}
	}
	if h.Matches == 0 {
		return model.HeadToHead{}, model.NoData("%s and %s never met in this selection", teamA, teamB)
	}

	pct := func(n int) float64 {
		return model.Ratio(float64(n)*100, float64(h.Matches)).Or(0)
	}
	h.WinPctA = pct(h.WinsA)
	h.WinPctB = pct(h.WinsB)
	h.TiePct = pct(h.Ties)
	h.NoResultPct = pct(h.NoResults)
	return h, nil
}

// Meetings returns the matches between two teams selected by f, in source order.
func Meetings(ds *loader.Dataset, teamA, teamB string, f Filter) []*model.Match {
	var out []*model.Match
	matches := ds.Matches()
	for i := range matches {
		m := &matches[i]
		if m.Involves(teamA) && m.Involves(teamB) && teamA != teamB && f.match(m) {
			out = append(out, m)
		}
	}
	return out
}
