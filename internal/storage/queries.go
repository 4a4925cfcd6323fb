package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pable/go-ipl-metrics/internal/model"
)

// Overview summarizes what the snapshot holds.
type Overview struct {
	Matches    int
	Deliveries int
	Seasons    []string
	FirstDate  string
	LastDate   string
}

// ImportTables replaces the snapshot with the given tables in a single
// transaction. Match and delivery order is preserved through the seq columns.
func (db *DB) ImportTables(matches []model.Match, deliveries []model.Delivery) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM deliveries"); err != nil {
		return fmt.Errorf("clear deliveries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("clear matches: %w", err)
	}

	mstmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO matches(
			id, season, city, match_date, match_type, player_of_match, venue,
			team1, team2, toss_winner, toss_decision, winner, result,
			result_margin, target_runs, target_overs, super_over, method,
			umpire1, umpire2, seq
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer mstmt.Close()

	for i, m := range matches {
		_, err = mstmt.Exec(
			m.ID, m.Season, m.City, m.Date, m.MatchType, m.PlayerOfMatch, m.Venue,
			m.Team1, m.Team2, m.TossWinner, m.TossDecision, m.Winner, m.Result,
			m.ResultMargin, m.TargetRuns, m.TargetOvers, boolInt(m.SuperOver), m.Method,
			m.Umpire1, m.Umpire2, i+1,
		)
		if err != nil {
			return fmt.Errorf("insert match %d: %w", m.ID, err)
		}
	}

	dstmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO deliveries(
			seq, match_id, inning, over_no, ball, batter, bowler, non_striker,
			batting_team, bowling_team, batsman_runs, extra_runs, total_runs,
			extras_type, is_wicket, player_dismissed, dismissal_kind, fielder
		) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return err
	}
	defer dstmt.Close()

	for i, d := range deliveries {
		_, err = dstmt.Exec(
			i+1, d.MatchID, d.Inning, d.Over, d.Ball, d.Batter, d.Bowler, d.NonStriker,
			d.BattingTeam, d.BowlingTeam, d.BatsmanRuns, d.ExtraRuns, d.TotalRuns,
			d.ExtrasType, boolInt(d.IsWicket), d.PlayerDismissed, d.DismissalKind, d.Fielder,
		)
		if err != nil {
			return fmt.Errorf("insert delivery %d (match %d): %w", i+1, d.MatchID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	log.Info("snapshot imported", "matches", len(matches), "deliveries", len(deliveries))
	return nil
}

// LoadTables reads both tables back in their original order.
func (db *DB) LoadTables() ([]model.Match, []model.Delivery, error) {
	matches, err := db.loadMatches()
	if err != nil {
		return nil, nil, fmt.Errorf("load matches: %w", err)
	}
	deliveries, err := db.loadDeliveries()
	if err != nil {
		return nil, nil, fmt.Errorf("load deliveries: %w", err)
	}
	return matches, deliveries, nil
}

func (db *DB) loadMatches() ([]model.Match, error) {
	rows, err := db.conn.Query(`
		SELECT id, season, city, match_date, match_type, player_of_match, venue,
		       team1, team2, toss_winner, toss_decision, winner, result,
		       result_margin, target_runs, target_overs, super_over, method,
		       umpire1, umpire2
		FROM matches ORDER BY seq, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Match
	for rows.Next() {
		var m model.Match
		var superOver int
		if err := rows.Scan(&m.ID, &m.Season, &m.City, &m.Date, &m.MatchType, &m.PlayerOfMatch, &m.Venue,
			&m.Team1, &m.Team2, &m.TossWinner, &m.TossDecision, &m.Winner, &m.Result,
			&m.ResultMargin, &m.TargetRuns, &m.TargetOvers, &superOver, &m.Method,
			&m.Umpire1, &m.Umpire2); err != nil {
			return nil, err
		}
		m.SuperOver = superOver != 0
		out = append(out, m)
	}
	return out, rows.Err()
}

func (db *DB) loadDeliveries() ([]model.Delivery, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, inning, over_no, ball, batter, bowler, non_striker,
		       batting_team, bowling_team, batsman_runs, extra_runs, total_runs,
		       extras_type, is_wicket, player_dismissed, dismissal_kind, fielder
		FROM deliveries ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Delivery
	for rows.Next() {
		var d model.Delivery
		var isWicket int
		if err := rows.Scan(&d.MatchID, &d.Inning, &d.Over, &d.Ball, &d.Batter, &d.Bowler, &d.NonStriker,
			&d.BattingTeam, &d.BowlingTeam, &d.BatsmanRuns, &d.ExtraRuns, &d.TotalRuns,
			&d.ExtrasType, &isWicket, &d.PlayerDismissed, &d.DismissalKind, &d.Fielder); err != nil {
			return nil, err
		}
		d.IsWicket = isWicket != 0
		out = append(out, d)
	}
	return out, rows.Err()
}

// HasData reports whether a snapshot has been imported.
func (db *DB) HasData() (bool, error) {
	var count int
	if err := db.conn.QueryRow("SELECT COUNT(1) FROM matches").Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetOverview returns row counts, the stored seasons and the date range.
func (db *DB) GetOverview() (Overview, error) {
	var ov Overview
	var first, last sql.NullString
	err := db.conn.QueryRow(`
		SELECT COUNT(1), MIN(match_date), MAX(match_date) FROM matches`).Scan(&ov.Matches, &first, &last)
	if err != nil {
		return ov, err
	}
	ov.FirstDate, ov.LastDate = first.String, last.String
	if err := db.conn.QueryRow("SELECT COUNT(1) FROM deliveries").Scan(&ov.Deliveries); err != nil {
		return ov, err
	}

	rows, err := db.conn.Query("SELECT DISTINCT season FROM matches ORDER BY season")
	if err != nil {
		return ov, err
	}
	defer rows.Close()
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return ov, err
		}
		ov.Seasons = append(ov.Seasons, s)
	}
	return ov, rows.Err()
}

// DeleteSeasons removes the given seasons and their deliveries, returning the
// number of matches removed.
func (db *DB) DeleteSeasons(seasons []string) (int64, error) {
	if len(seasons) == 0 {
		return 0, nil
	}
	args := make([]any, len(seasons))
	for i, s := range seasons {
		args[i] = s
	}
	ph := placeholders(len(seasons))

	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(fmt.Sprintf(`
		DELETE FROM deliveries WHERE match_id IN (
			SELECT id FROM matches WHERE season IN (%s))`, ph), args...)
	if err != nil {
		return 0, fmt.Errorf("delete deliveries: %w", err)
	}
	res, err := tx.Exec(fmt.Sprintf("DELETE FROM matches WHERE season IN (%s)", ph), args...)
	if err != nil {
		return 0, fmt.Errorf("delete matches: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, tx.Commit()
}

// QueryRaw runs an arbitrary read query and returns column names and the rows
// rendered as strings. NULL becomes an empty string.
func (db *DB) QueryRaw(query string) ([]string, [][]string, error) {
	rows, err := db.conn.Query(query)
	if err != nil {
		return nil, nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, nil, err
	}
	var out [][]string
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, err
		}
		rec := make([]string, len(cols))
		for i, v := range vals {
			rec[i] = v.String
		}
		out = append(out, rec)
	}
	return cols, out, rows.Err()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?,", n-1) + "?"
}
