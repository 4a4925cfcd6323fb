// Package aggregator computes batting, bowling, team and head-to-head
// statistics over a loaded Dataset. Every function is a pure re-derivation:
// nothing is cached and the dataset is never modified.
package aggregator

import (
	"fmt"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
)

// AllSeasons selects every season.
const AllSeasons = "All"

// Filter narrows a view. Empty fields match everything.
//
// For batting queries Team is the batting side and Opponent the bowling side;
// for bowling queries it is the other way round.
type Filter struct {
	Season   string
	Team     string
	Opponent string
	Venue    string
}

// Validate checks that the season is a loaded season label (or AllSeasons).
func (f Filter) Validate(ds *loader.Dataset) error {
	if f.Season == "" || f.Season == AllSeasons {
		return nil
	}
	if !ds.HasSeason(f.Season) {
		return model.Invalid("season", fmt.Sprintf("%q is not a loaded season", f.Season))
	}
	return nil
}

func (f Filter) season(s string) bool {
	return f.Season == "" || f.Season == AllSeasons || f.Season == s
}

func (f Filter) venue(v string) bool {
	return f.Venue == "" || f.Venue == v
}

func (f Filter) sides(team, opponent string) bool {
	return (f.Team == "" || f.Team == team) && (f.Opponent == "" || f.Opponent == opponent)
}

func (f Filter) batting(r *model.BattingRow) bool {
	return f.season(r.Season) && f.venue(r.Venue) && f.sides(r.BattingTeam, r.BowlingTeam)
}

func (f Filter) bowling(r *model.BowlingRow) bool {
	return f.season(r.Season) && f.venue(r.Venue) && f.sides(r.BowlingTeam, r.BattingTeam)
}

// match applies the season and venue parts of the filter to a match.
func (f Filter) match(m *model.Match) bool {
	return f.season(m.Season) && f.venue(m.Venue)
}

// awardCount counts player-of-the-match awards within the given seasons.
func awardCount(matches []model.Match, player string, seasons map[string]bool) int {
	n := 0
	for i := range matches {
		if matches[i].PlayerOfMatch == player && seasons[matches[i].Season] {
			n++
		}
	}
	return n
}
