// Package loader reads the match and delivery tables and builds the
// denormalized, read-only Dataset every query runs against.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/pable/go-ipl-metrics/internal/model"
)

// File names expected under a data directory.
const (
	MatchesFile    = "matches.csv"
	DeliveriesFile = "deliveries.csv"
)

// Dataset is the loaded, denormalized dataset. It is never mutated after New
// returns and is safe to share between goroutines.
type Dataset struct {
	matches    []model.Match
	deliveries []model.Delivery
	batting    []model.BattingRow
	bowling    []model.BowlingRow

	byID    map[int]*model.Match
	byMatch map[int][]int // match id -> delivery indexes, in source order

	teams   []string
	players []string
	seasons []string
	venues  []string
	cities  []string
}

// LoadDir reads matches.csv and deliveries.csv from dir.
func LoadDir(dir string) (*Dataset, error) {
	matches, err := readFile(filepath.Join(dir, MatchesFile), ReadMatchesCSV)
	if err != nil {
		return nil, err
	}
	deliveries, err := readFile(filepath.Join(dir, DeliveriesFile), ReadDeliveriesCSV)
	if err != nil {
		return nil, err
	}
	return New(matches, deliveries)
}

func readFile[T any](path string, parse func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	out, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return out, nil
}

// New validates the raw tables and builds the derived views. Any integrity
// violation aborts the load; no partial dataset is returned.
func New(matches []model.Match, deliveries []model.Delivery) (*Dataset, error) {
	if len(matches) == 0 {
		return nil, fmt.Errorf("no matches loaded")
	}

	ds := &Dataset{
		matches:    matches,
		deliveries: deliveries,
		byID:       make(map[int]*model.Match, len(matches)),
		byMatch:    make(map[int][]int, len(matches)),
	}

	teams := make(map[string]bool)
	seasons := make(map[string]bool)
	venues := make(map[string]bool)
	cities := make(map[string]bool)
	for i := range matches {
		m := &matches[i]
		if _, dup := ds.byID[m.ID]; dup {
			return nil, fmt.Errorf("match %d: duplicate id", m.ID)
		}
		if m.Winner != "" && !m.Involves(m.Winner) {
			return nil, fmt.Errorf("match %d: winner %q is neither %q nor %q", m.ID, m.Winner, m.Team1, m.Team2)
		}
		ds.byID[m.ID] = m
		teams[m.Team1] = true
		seasons[m.Season] = true
		if m.Venue != "" {
			venues[m.Venue] = true
		}
		if m.City != "" {
			cities[m.City] = true
		}
	}

	players := make(map[string]bool)
	ds.batting = make([]model.BattingRow, 0, len(deliveries))
	ds.bowling = make([]model.BowlingRow, 0, len(deliveries))
	for i, d := range deliveries {
		m, ok := ds.byID[d.MatchID]
		if !ok {
			return nil, fmt.Errorf("delivery %d: unknown match id %d", i+1, d.MatchID)
		}
		ds.byMatch[d.MatchID] = append(ds.byMatch[d.MatchID], i)
		players[d.Batter] = true
		ds.batting = append(ds.batting, battingRow(d, m))
		ds.bowling = append(ds.bowling, bowlingRow(d, m))
	}

	ds.teams = sortedKeys(teams)
	ds.players = sortedKeys(players)
	ds.seasons = sortedKeys(seasons)
	ds.venues = sortedKeys(venues)
	ds.cities = sortedKeys(cities)

	log.Debug("dataset built",
		"matches", len(matches),
		"deliveries", len(deliveries),
		"teams", len(ds.teams),
		"players", len(ds.players),
		"seasons", len(ds.seasons),
	)
	return ds, nil
}

// battingRow attaches match context and pins the batting side to whichever of
// team1/team2 the raw label names, falling back to team2 otherwise.
func battingRow(d model.Delivery, m *model.Match) model.BattingRow {
	r := model.BattingRow{
		Delivery: d,
		Season:   m.Season,
		Date:     m.Date,
		Venue:    m.Venue,
		Team1:    m.Team1,
		Team2:    m.Team2,
		Winner:   m.Winner,
	}
	if d.BattingTeam == m.Team1 {
		r.BattingTeam, r.BowlingTeam = m.Team1, m.Team2
	} else {
		r.BattingTeam, r.BowlingTeam = m.Team2, m.Team1
	}
	return r
}

// bowlingRow credits the wicket to the bowler only for bowler dismissals and
// strips leg-byes (but not byes) from the runs charged.
func bowlingRow(d model.Delivery, m *model.Match) model.BowlingRow {
	r := model.BowlingRow{
		Delivery:     d,
		Season:       m.Season,
		Date:         m.Date,
		Venue:        m.Venue,
		BowlerWicket: d.IsWicket && model.IsBowlerDismissal(d.DismissalKind),
		BowlerRuns:   d.TotalRuns,
	}
	if d.ExtrasType == model.ExtrasLegByes {
		r.BowlerRuns -= d.ExtraRuns
	}
	return r
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Matches returns the match table in source order.
func (ds *Dataset) Matches() []model.Match { return ds.matches }

// Deliveries returns the raw delivery table in source order.
func (ds *Dataset) Deliveries() []model.Delivery { return ds.deliveries }

// Batting returns the batting view.
func (ds *Dataset) Batting() []model.BattingRow { return ds.batting }

// Bowling returns the bowling view.
func (ds *Dataset) Bowling() []model.BowlingRow { return ds.bowling }

// Teams returns the sorted distinct team1 labels.
func (ds *Dataset) Teams() []string { return ds.teams }

// Players returns the sorted distinct batters. Bowlers who never batted are
// not listed.
func (ds *Dataset) Players() []string { return ds.players }

// Seasons returns the sorted distinct season labels.
func (ds *Dataset) Seasons() []string { return ds.seasons }

// Venues returns the sorted distinct venues.
func (ds *Dataset) Venues() []string { return ds.venues }

// Cities returns the sorted distinct host cities.
func (ds *Dataset) Cities() []string { return ds.cities }

// Match looks up a match by id.
func (ds *Dataset) Match(id int) (*model.Match, bool) {
	m, ok := ds.byID[id]
	return m, ok
}

// DeliveriesFor returns a match's deliveries in source order.
func (ds *Dataset) DeliveriesFor(matchID int) []model.Delivery {
	idx := ds.byMatch[matchID]
	out := make([]model.Delivery, len(idx))
	for i, j := range idx {
		out[i] = ds.deliveries[j]
	}
	return out
}

// HasSeason reports whether season is a loaded season label.
func (ds *Dataset) HasSeason(season string) bool {
	i := sort.SearchStrings(ds.seasons, season)
	return i < len(ds.seasons) && ds.seasons[i] == season
}

// HasTeam reports whether team appears as team1 of any match.
func (ds *Dataset) HasTeam(team string) bool {
	i := sort.SearchStrings(ds.teams, team)
	return i < len(ds.teams) && ds.teams[i] == team
}
