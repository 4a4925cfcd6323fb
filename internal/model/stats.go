package model

import "fmt"

// BattingStats is a batter's aggregate over a filtered view.
type BattingStats struct {
	Player      string
	Innings     int
	Runs        int
	Balls       int
	Fours       int
	Sixes       int
	Dismissals  int
	NotOuts     int
	StrikeRate  float64 // 0 when no balls faced
	Average     Stat    // NA when never dismissed
	Fifties     int
	Centuries   int
	HighScore   int
	MatchAwards int
}

// Figure is a bowler's haul in a single match.
type Figure struct {
	MatchID int
	Date    string
	Wickets int
	Runs    int
}

// String formats the figure as "wickets/runs".
func (f Figure) String() string {
	return fmt.Sprintf("%d/%d", f.Wickets, f.Runs)
}

// BowlingStats is a bowler's aggregate over a filtered view.
type BowlingStats struct {
	Bowler       string
	Innings      int
	Balls        int
	Overs        float64 // balls/6, fractional
	Wickets      int
	RunsConceded int
	Economy      Stat
	Average      Stat
	StrikeRate   Stat
	Fours        int
	Sixes        int
	ThreeWickets int
	FourWickets  int
	FiveWickets  int
	Best         Figure
	MatchAwards  int
}

// TeamRecord is a team's result record over a set of matches.
// Wins+Losses+Ties+NoResults always equals Played.
type TeamRecord struct {
	Team      string
	Played    int
	Wins      int
	Losses    int
	Ties      int
	NoResults int
	WinPct    float64
}

// HeadToHead compares two teams over the matches they played each other.
type HeadToHead struct {
	TeamA, TeamB string
	Matches      int
	WinsA, WinsB int
	Ties         int
	NoResults    int
	HighestA     int
	HighestB     int
	WinPctA      float64
	WinPctB      float64
	TiePct       float64
	NoResultPct  float64
}

// TeamSeasonTotals is one batting side's volume in a season.
type TeamSeasonTotals struct {
	Team    string
	Matches int
	Runs    int
	Wickets int
}

// SeasonSummary is the season overview: team totals plus the season's
// leading run scorer and wicket taker.
type SeasonSummary struct {
	Season    string
	Teams     []TeamSeasonTotals // empty when a player filter is applied
	TopBatter *BattingStats
	TopBowler *BowlingStats
}

// BatterLine is one batter's row in an innings scorecard.
type BatterLine struct {
	Batter     string
	Runs       int
	Balls      int
	StrikeRate float64
}

// BowlerLine is one bowler's row in an innings scorecard.
type BowlerLine struct {
	Bowler       string
	RunsConceded int
	Wickets      int
	Balls        int
	Overs        string // cricket notation, e.g. "3.4"
	Economy      Stat   // NA when the bowler sent down only wides
}

// InningsCard is one innings of a scorecard.
type InningsCard struct {
	Inning      int
	BattingTeam string
	Runs        int
	Wickets     int
	Overs       string
	Batters     []BatterLine
	Bowlers     []BowlerLine
}

// Scorecard summarizes a single match.
type Scorecard struct {
	MatchID      int
	Date         string
	Venue        string
	Winner       string
	Result       string
	ResultMargin int
	HasMargin    bool
	Innings      []InningsCard // innings without deliveries are omitted
}

// SeasonCount pairs two subjects' counts for one season.
type SeasonCount struct {
	Season string
	A, B   int
}

// MatchupLine is runs and dismissals for a batter against a bowler, keyed
// by season or venue depending on the table it belongs to.
type MatchupLine struct {
	Key        string
	Runs       int
	Dismissals int
}

// MatchupReport is the batter-vs-bowler breakdown.
type MatchupReport struct {
	Batter, Bowler string
	Season         string // AllSeasons when unfiltered
	BySeason       []MatchupLine
	ByVenue        []MatchupLine // for the selected season, or all seasons
	TotalRuns      int
	TotalOuts      int
	AllVenues      []MatchupLine
}

// SeasonBatting is a player's batting against one opponent in one season.
type SeasonBatting struct {
	Season     string
	Matches    int
	Runs       int
	Balls      int
	Dismissals int
	Fifties    int
	Centuries  int
	HighScore  int
	StrikeRate Stat
	Average    Stat
}

// SeasonBowling is a player's bowling against one opponent in one season.
type SeasonBowling struct {
	Season       string
	Matches      int
	Wickets      int
	RunsConceded int
	Balls        int
	Overs        float64
	ThreeWickets int
	FourWickets  int
	FiveWickets  int
	Economy      Stat
	Average      Stat
}

// PlayerVsTeam is a player's season-by-season record against an opponent.
type PlayerVsTeam struct {
	Player   string
	Opponent string
	Batting  []SeasonBatting
	Bowling  []SeasonBowling
}

// ComparisonSummary condenses a PlayerVsTeam into comparable totals and means.
type ComparisonSummary struct {
	Player         string
	TotalRuns      int
	BattingAverage Stat
	StrikeRate     Stat
	TotalWickets   int
	BowlingAverage Stat
	Economy        Stat
}

// PlayerComparison puts two players side by side against one opponent.
type PlayerComparison struct {
	First, Second PlayerVsTeam
	Summary       [2]ComparisonSummary
}

// RankedBatter is one row of a strike-rate ranking.
type RankedBatter struct {
	Batter     string
	Runs       int
	Balls      int
	StrikeRate float64
}

// MatchupSeason is a batter's per-season record against one bowler.
type MatchupSeason struct {
	Season     string
	Runs       int
	Dismissals int
	Balls      int
	Sixes      int
	Fours      int
}

// BowlerSeasonTable is a batter's breakdown against one selected bowler.
type BowlerSeasonTable struct {
	Bowler  string
	Seasons []MatchupSeason
}

// BatsmanPick is one side of a choose-the-best comparison.
type BatsmanPick struct {
	Batter     string
	Bowlers    []BowlerSeasonTable // only bowlers actually faced
	Runs       int
	Balls      int
	Dismissals int
	Sixes      int
	Fours      int
	StrikeRate float64
	Score      float64
}

// PickResult is the outcome of comparing two batsmen against chosen bowlers.
type PickResult struct {
	First, Second BatsmanPick
	Winner        string // empty on a tie
	Tie           bool
	Teams         []string // team labels with franchise aliases merged
}

// TargetRow is one of the highest first-innings totals.
type TargetRow struct {
	MatchID      int
	BattingTeam  string
	Against      string
	Runs         int // target minus one
	Date         string
	Venue        string
	City         string
	Winner       string
	ResultMargin int
	HasMargin    bool
}

// TeamForm is a team's record over its most recent matches.
type TeamForm struct {
	Team       string
	Matches    int
	Wins       int
	WinRate    float64
	AvgRuns    float64
	AvgWickets float64
}

// FormBatter is a batter's contribution to a team's recent form.
type FormBatter struct {
	Batter     string
	Runs       int
	Balls      int
	StrikeRate float64
}

// FormBowler is a bowler's contribution to a team's recent form.
type FormBowler struct {
	Bowler       string
	Wickets      int
	RunsConceded int
	Balls        int
	Economy      float64
}

// PlayerForm is the top performers of a team's recent matches.
type PlayerForm struct {
	Team        string
	BattingForm float64 // mean strike rate of the top batters
	BowlingForm float64 // top bowlers' wickets per match
	TopBatters  []FormBatter
	TopBowlers  []FormBowler
}

// H2HProbability blends head-to-head and recent form into a win chance.
// Percentages are on a 0-100 scale.
type H2HProbability struct {
	Record        HeadToHead
	H2HWinRate    float64
	RecentWinRate float64
	ProbabilityA  float64
	ProbabilityB  float64
}

// Contributions are the weighted factors of a live estimate.
type Contributions struct {
	Historical float64
	Form       float64
	PlayerForm float64
	Situation  float64
	External   float64
}

// WinProbability is the live estimate for the batting side (Team1) and the
// bowling side (Team2). P1+P2 is always 1.
type WinProbability struct {
	Team1, Team2     string
	P1, P2           float64
	RunRate          float64
	RequiredRunRate  float64
	WicketsRemaining int
	Terminal         bool
	Contributions    Contributions
	Form1, Form2     TeamForm
	Players1         PlayerForm
	Players2         PlayerForm
}
