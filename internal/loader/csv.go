package loader

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pable/go-ipl-metrics/internal/model"
)

// Columns the engine cannot work without. The rest default to empty/null.
var requiredMatchColumns = []string{"id", "season", "date", "venue", "team1", "team2", "winner", "result"}

var requiredDeliveryColumns = []string{
	"match_id", "inning", "batting_team", "bowling_team", "over", "ball",
	"batter", "bowler", "batsman_runs", "extra_runs", "total_runs",
	"extras_type", "is_wicket", "dismissal_kind",
}

// row wraps one CSV record with header-based lookup.
type row struct {
	cols   map[string]int
	record []string
	line   int
}

func (r row) str(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	v := strings.TrimSpace(r.record[i])
	if v == "NA" {
		return ""
	}
	return v
}

func (r row) integer(name string) (int, error) {
	v := r.str(name)
	if v == "" {
		return 0, fmt.Errorf("row %d: %s is empty", r.line, name)
	}
	n, err := parseWhole(v)
	if err != nil {
		return 0, fmt.Errorf("row %d: %s: %w", r.line, name, err)
	}
	return int(n), nil
}

func (r row) optInt(name string) (sql.NullInt64, error) {
	v := r.str(name)
	if v == "" {
		return sql.NullInt64{}, nil
	}
	n, err := parseWhole(v)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("row %d: %s: %w", r.line, name, err)
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}

func (r row) optFloat(name string) (sql.NullFloat64, error) {
	v := r.str(name)
	if v == "" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return sql.NullFloat64{}, fmt.Errorf("row %d: %s: %w", r.line, name, err)
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}

// flag accepts 0/1 as well as the Y/N used by the super_over column.
func (r row) flag(name string) (bool, error) {
	switch strings.ToUpper(r.str(name)) {
	case "", "0", "N", "FALSE":
		return false, nil
	case "1", "Y", "TRUE":
		return true, nil
	}
	return false, fmt.Errorf("row %d: %s: unexpected value %q", r.line, name, r.str(name))
}

// parseWhole accepts "140" and "140.0"; exported data often writes integer
// columns with a trailing fraction once a null appears in the column. Any
// other fraction is an error.
func parseWhole(v string) (int64, error) {
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", v)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not a whole number: %q", v)
	}
	return int64(f), nil
}

// eachRow reads the header then calls fn for every record.
func eachRow(r io.Reader, required []string, fn func(row) error) error {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty input: missing header")
		}
		return fmt.Errorf("read header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return fmt.Errorf("missing required column %q", name)
		}
	}

	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		line++
		if err != nil {
			return fmt.Errorf("row %d: %w", line, err)
		}
		if err := fn(row{cols: cols, record: record, line: line}); err != nil {
			return err
		}
	}
}

// ReadMatchesCSV parses the match table.
func ReadMatchesCSV(r io.Reader) ([]model.Match, error) {
	var out []model.Match
	err := eachRow(r, requiredMatchColumns, func(rw row) error {
		m, err := parseMatch(rw)
		if err != nil {
			return err
		}
		out = append(out, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("matches: %w", err)
	}
	return out, nil
}

func parseMatch(rw row) (model.Match, error) {
	var m model.Match
	var err error
	if m.ID, err = rw.integer("id"); err != nil {
		return m, err
	}
	m.Season = rw.str("season")
	if m.Season == "" {
		return m, fmt.Errorf("row %d: season is empty", rw.line)
	}
	m.City = rw.str("city")
	m.Date = rw.str("date")
	m.MatchType = rw.str("match_type")
	m.PlayerOfMatch = rw.str("player_of_match")
	m.Venue = rw.str("venue")
	m.Team1 = rw.str("team1")
	m.Team2 = rw.str("team2")
	if m.Team1 == "" || m.Team2 == "" {
		return m, fmt.Errorf("row %d: team1 and team2 are required", rw.line)
	}
	m.TossWinner = rw.str("toss_winner")
	m.TossDecision = rw.str("toss_decision")
	m.Winner = rw.str("winner")
	m.Result = rw.str("result")
	if m.ResultMargin, err = rw.optInt("result_margin"); err != nil {
		return m, err
	}
	if m.TargetRuns, err = rw.optInt("target_runs"); err != nil {
		return m, err
	}
	if m.TargetOvers, err = rw.optFloat("target_overs"); err != nil {
		return m, err
	}
	if m.SuperOver, err = rw.flag("super_over"); err != nil {
		return m, err
	}
	m.Method = rw.str("method")
	m.Umpire1 = rw.str("umpire1")
	m.Umpire2 = rw.str("umpire2")
	return m, nil
}

// ReadDeliveriesCSV parses the ball-by-ball table.
func ReadDeliveriesCSV(r io.Reader) ([]model.Delivery, error) {
	var out []model.Delivery
	err := eachRow(r, requiredDeliveryColumns, func(rw row) error {
		d, err := parseDelivery(rw)
		if err != nil {
			return err
		}
		out = append(out, d)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("deliveries: %w", err)
	}
	return out, nil
}

func parseDelivery(rw row) (model.Delivery, error) {
	var d model.Delivery
	var err error
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"match_id", &d.MatchID},
		{"inning", &d.Inning},
		{"over", &d.Over},
		{"ball", &d.Ball},
		{"batsman_runs", &d.BatsmanRuns},
		{"extra_runs", &d.ExtraRuns},
		{"total_runs", &d.TotalRuns},
	} {
		if *f.dst, err = rw.integer(f.name); err != nil {
			return d, err
		}
	}
	d.Batter = rw.str("batter")
	d.Bowler = rw.str("bowler")
	if d.Batter == "" || d.Bowler == "" {
		return d, fmt.Errorf("row %d: batter and bowler are required", rw.line)
	}
	d.NonStriker = rw.str("non_striker")
	d.BattingTeam = rw.str("batting_team")
	d.BowlingTeam = rw.str("bowling_team")
	d.ExtrasType = rw.str("extras_type")
	if d.IsWicket, err = rw.flag("is_wicket"); err != nil {
		return d, err
	}
	d.PlayerDismissed = rw.str("player_dismissed")
	d.DismissalKind = rw.str("dismissal_kind")
	d.Fielder = rw.str("fielder")
	return d, nil
}
