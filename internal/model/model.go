package model

import "database/sql"

// Result kinds as recorded in the match table.
const (
	ResultRuns     = "runs"
	ResultWickets  = "wickets"
	ResultTie      = "tie"
	ResultNoResult = "no result"
)

// Extras types as recorded in the delivery table.
const (
	ExtrasWides   = "wides"
	ExtrasLegByes = "legbyes"
	ExtrasByes    = "byes"
	ExtrasNoBalls = "noballs"
	ExtrasPenalty = "penalty"
)

// bowlerDismissals are the dismissal kinds credited to the bowler.
// Run-outs, retirements and obstructions go to nobody's bowling figures.
var bowlerDismissals = map[string]bool{
	"caught":            true,
	"bowled":            true,
	"lbw":               true,
	"stumped":           true,
	"caught and bowled": true,
	"hit wicket":        true,
}

// IsBowlerDismissal reports whether a dismissal kind counts as the bowler's wicket.
func IsBowlerDismissal(kind string) bool {
	return bowlerDismissals[kind]
}

// ---- Raw tables ----

// Match is one row of the match-level table.
type Match struct {
	ID            int
	Season        string // e.g. "2007/08", "2019"
	City          string
	Date          string // "YYYY-MM-DD"
	MatchType     string
	PlayerOfMatch string
	Venue         string
	Team1, Team2  string
	TossWinner    string
	TossDecision  string // "bat" or "field"
	Winner        string // empty when there was no result
	Result        string // one of the Result* constants
	ResultMargin  sql.NullInt64
	TargetRuns    sql.NullInt64
	TargetOvers   sql.NullFloat64
	SuperOver     bool
	Method        string // "D/L" when rain-adjusted
	Umpire1       string
	Umpire2       string
}

// Involves reports whether team played in the match.
func (m *Match) Involves(team string) bool {
	return m.Team1 == team || m.Team2 == team
}

// Opponent returns the other side of the match, or "" if team did not play.
func (m *Match) Opponent(team string) string {
	switch team {
	case m.Team1:
		return m.Team2
	case m.Team2:
		return m.Team1
	}
	return ""
}

// Delivery is one ball of the ball-by-ball table.
type Delivery struct {
	MatchID     int
	Inning      int
	Over        int
	Ball        int
	Batter      string
	Bowler      string
	NonStriker  string
	BattingTeam string
	BowlingTeam string

	BatsmanRuns int
	ExtraRuns   int
	TotalRuns   int
	ExtrasType  string // empty when the ball had no extras

	IsWicket        bool
	PlayerDismissed string
	DismissalKind   string
	Fielder         string
}

// IsWide reports whether the ball was a wide. Wides are the only deliveries
// that do not count as a ball faced or bowled.
func (d *Delivery) IsWide() bool {
	return d.ExtrasType == ExtrasWides
}

// ---- Derived views ----

// BattingRow is a delivery joined with its match, with the batting and bowling
// sides normalized against the match's team1/team2.
type BattingRow struct {
	Delivery
	Season string
	Date   string
	Venue  string
	Team1  string
	Team2  string
	Winner string
}

// BowlingRow is a delivery joined with its match season, annotated with the
// bowler-credited wicket flag and the runs charged to the bowler.
type BowlingRow struct {
	Delivery
	Season string
	Date   string
	Venue  string

	BowlerWicket bool
	BowlerRuns   int
}
