package aggregator

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/loader/loadertest"
	"github.com/pable/go-ipl-metrics/internal/model"
)

const (
	mi  = "Mumbai Indians"
	csk = "Chennai Super Kings"
	rcb = "Royal Challengers Bangalore"
)

// fixtureTables returns four matches over two seasons:
//
//	1  2019  MI v CSK   MI won by 20 runs, target 181
//	2  2019  CSK v MI   CSK won by 5 wickets, target 150
//	3  2020  MI v RCB   no result
//	4  2020  RCB v MI   tie, MI won the super over
//
// RG Sharma scores 30 (out) then 25 (not out). DL Chahar takes 3/20 then 3/40.
// MS Dhoni is never dismissed. V Kohli faces one dot ball.
func fixtureTables() ([]model.Match, []model.Delivery) {
	m1 := loadertest.WithMargin(loadertest.WithTarget(
		loadertest.Match(1, "2019", "2019-04-01", "Wankhede Stadium", mi, csk, mi, model.ResultRuns), 181), 20)
	m1.PlayerOfMatch = "RG Sharma"
	m2 := loadertest.WithMargin(loadertest.WithTarget(
		loadertest.Match(2, "2019", "2019-04-10", "MA Chidambaram Stadium", csk, mi, csk, model.ResultWickets), 150), 5)
	m2.PlayerOfMatch = "DL Chahar"
	m3 := loadertest.Match(3, "2020", "2020-10-01", "Wankhede Stadium", mi, rcb, "", model.ResultNoResult)
	m4 := loadertest.WithTarget(
		loadertest.Match(4, "2020", "2020-10-05", "M Chinnaswamy Stadium", rcb, mi, mi, model.ResultTie), 160)
	m4.PlayerOfMatch = "RG Sharma"
	m4.SuperOver = true

	var d []model.Delivery
	add := func(ds ...model.Delivery) { d = append(d, ds...) }

	// Match 1, MI batting first.
	add(loadertest.Balls(1, 1, mi, csk, "RG Sharma", "SN Thakur", 6, 6, 6, 6, 6)...)
	add(loadertest.Extra(loadertest.Ball(1, 1, mi, csk, "RG Sharma", "SN Thakur", 0), model.ExtrasWides, 1))
	add(loadertest.Out(loadertest.Ball(1, 1, mi, csk, "RG Sharma", "SN Thakur", 0), "caught"))
	add(loadertest.Balls(1, 1, mi, csk, "Q de Kock", "DL Chahar", 4, 4, 4, 4, 4)...)
	add(loadertest.Out(loadertest.Ball(1, 1, mi, csk, "Q de Kock", "DL Chahar", 0), "bowled"))
	add(loadertest.Out(loadertest.Ball(1, 1, mi, csk, "SA Yadav", "DL Chahar", 0), "lbw"))
	add(loadertest.Out(loadertest.Ball(1, 1, mi, csk, "Ishan Kishan", "DL Chahar", 0), "run out"))
	add(loadertest.Out(loadertest.Ball(1, 1, mi, csk, "KA Pollard", "DL Chahar", 0), "stumped"))

	// Match 2, CSK batting first then MI chasing.
	add(loadertest.Ball(2, 1, csk, mi, "MS Dhoni", "JJ Bumrah", 1))
	add(loadertest.Balls(2, 2, mi, csk, "RG Sharma", "SN Thakur", 6, 6, 6, 6, 1)...)
	add(loadertest.Extra(loadertest.Ball(2, 2, mi, csk, "RG Sharma", "SN Thakur", 0), model.ExtrasLegByes, 1))
	add(loadertest.Balls(2, 2, mi, csk, "Q de Kock", "DL Chahar", 4, 4, 4, 4, 4, 4, 4, 4, 4, 4)...)
	add(loadertest.Out(loadertest.Ball(2, 2, mi, csk, "Q de Kock", "DL Chahar", 0), "caught"))
	add(loadertest.Out(loadertest.Ball(2, 2, mi, csk, "SA Yadav", "DL Chahar", 0), "caught"))
	add(loadertest.Out(loadertest.Ball(2, 2, mi, csk, "KA Pollard", "DL Chahar", 0), "bowled"))

	// Match 4.
	add(loadertest.Ball(4, 1, rcb, mi, "V Kohli", "JJ Bumrah", 0))

	return []model.Match{m1, m2, m3, m4}, d
}

func fixture(t *testing.T) *loader.Dataset {
	t.Helper()
	m, d := fixtureTables()
	return loadertest.Build(t, m, d)
}

// ---- Batting ----

func TestBattingStats_Career(t *testing.T) {
	ds := fixture(t)

	s, err := BattingStats(ds, "RG Sharma", Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Innings)
	assert.Equal(t, 55, s.Runs)
	assert.Equal(t, 12, s.Balls, "wide excluded, leg-bye counted")
	assert.Equal(t, 9, s.Sixes)
	assert.Equal(t, 0, s.Fours)
	assert.Equal(t, 1, s.Dismissals)
	assert.Equal(t, 1, s.NotOuts)
	assert.Equal(t, 458.33, s.StrikeRate)
	assert.Equal(t, model.Of(55), s.Average)
	assert.Equal(t, 30, s.HighScore)
	assert.Equal(t, 2, s.MatchAwards)
}

// 30 in one match plus 25 in another is 55 runs but not a fifty.
func TestBattingStats_MilestonesAreMatchGrouped(t *testing.T) {
	ds := fixture(t)

	s, err := BattingStats(ds, "RG Sharma", Filter{})
	require.NoError(t, err)
	assert.Zero(t, s.Fifties)
	assert.Zero(t, s.Centuries)

	q, err := BattingStats(ds, "Q de Kock", Filter{})
	require.NoError(t, err)
	assert.Equal(t, 60, q.Runs)
	assert.Equal(t, 40, q.HighScore)
	assert.Zero(t, q.Fifties)
}

func TestBattingStats_NeverOutIsNA(t *testing.T) {
	ds := fixture(t)

	s, err := BattingStats(ds, "MS Dhoni", Filter{})
	require.NoError(t, err)
	assert.False(t, s.Average.Valid)
	assert.Equal(t, "N/A", s.Average.String())
	assert.Equal(t, 1, s.NotOuts)
}

func TestBattingStats_ZeroRunsIsNotNoData(t *testing.T) {
	ds := fixture(t)

	s, err := BattingStats(ds, "V Kohli", Filter{})
	require.NoError(t, err)
	assert.Zero(t, s.Runs)
	assert.Zero(t, s.StrikeRate)

	_, err = BattingStats(ds, "AB de Villiers", Filter{})
	assert.True(t, errors.Is(err, model.ErrNoData))
}

func TestBattingStats_StrikeRateIsOrderIndependent(t *testing.T) {
	m, d := fixtureTables()
	want, err := BattingStats(loadertest.Build(t, m, d), "RG Sharma", Filter{})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		shuffled := append([]model.Delivery(nil), d...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := BattingStats(loadertest.Build(t, m, shuffled), "RG Sharma", Filter{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBattingStats_Filters(t *testing.T) {
	ds := fixture(t)

	tests := []struct {
		name       string
		filter     Filter
		wantRuns   int
		wantAwards int
		wantErr    error
	}{
		{"season", Filter{Season: "2019"}, 55, 1, nil},
		{"all sentinel", Filter{Season: AllSeasons}, 55, 2, nil},
		{"venue", Filter{Venue: "Wankhede Stadium"}, 30, 1, nil},
		{"opponent", Filter{Opponent: csk}, 55, 1, nil},
		{"team mismatch", Filter{Team: csk}, 0, 0, model.ErrNoData},
		{"season without innings", Filter{Season: "2020"}, 0, 0, model.ErrNoData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := BattingStats(ds, "RG Sharma", tt.filter)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantRuns, s.Runs)
			assert.Equal(t, tt.wantAwards, s.MatchAwards)
		})
	}
}

func TestFilter_UnknownSeasonIsValidationError(t *testing.T) {
	ds := fixture(t)

	_, err := BattingStats(ds, "RG Sharma", Filter{Season: "1999"})
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "season", verr.Field)

	_, err = BattingStats(ds, "", Filter{})
	require.ErrorAs(t, err, &verr)
}

// ---- Bowling ----

func TestBowlingStats(t *testing.T) {
	ds := fixture(t)

	s, err := BowlingStats(ds, "DL Chahar", Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, s.Innings)
	assert.Equal(t, 6, s.Wickets, "run out not credited")
	assert.Equal(t, 60, s.RunsConceded)
	assert.Equal(t, 22, s.Balls)
	assert.Equal(t, model.Of(16.36), s.Economy)
	assert.Equal(t, model.Of(10), s.Average)
	assert.Equal(t, model.Of(3.67), s.StrikeRate)
	assert.Equal(t, 15, s.Fours)
	assert.Equal(t, 2, s.ThreeWickets)
	assert.Zero(t, s.FourWickets)
	assert.Equal(t, "3/20", s.Best.String())
	assert.Equal(t, 1, s.Best.MatchID)
	assert.Equal(t, 1, s.MatchAwards)
}

func TestBowlingStats_NoWicketsIsNA(t *testing.T) {
	ds := fixture(t)

	s, err := BowlingStats(ds, "JJ Bumrah", Filter{})
	require.NoError(t, err)
	assert.Zero(t, s.Wickets)
	assert.False(t, s.Average.Valid)
	assert.False(t, s.StrikeRate.Valid)
	assert.Equal(t, model.Of(3), s.Economy)
	assert.Equal(t, "0/0", s.Best.String(), "fewest runs wins among wicketless matches")
	assert.Equal(t, 4, s.Best.MatchID)
}

func TestBowlingStats_ChargedRuns(t *testing.T) {
	ds := fixture(t)

	s, err := BowlingStats(ds, "SN Thakur", Filter{})
	require.NoError(t, err)
	assert.Equal(t, 56, s.RunsConceded, "leg-bye excluded, wide included")
	assert.Equal(t, 1, s.Wickets)
	assert.Equal(t, 12, s.Balls)
	assert.Equal(t, "1/31", s.Best.String())
}

func TestBowlingStats_OnlyWidesIsNA(t *testing.T) {
	m := []model.Match{loadertest.Match(1, "2021", "2021-04-09", "Chepauk", mi, rcb, mi, model.ResultWickets)}
	d := []model.Delivery{loadertest.Extra(loadertest.Ball(1, 1, rcb, mi, "V Kohli", "TA Boult", 0), model.ExtrasWides, 5)}
	ds := loadertest.Build(t, m, d)

	s, err := BowlingStats(ds, "TA Boult", Filter{})
	require.NoError(t, err)
	assert.Zero(t, s.Balls)
	assert.False(t, s.Economy.Valid)
	assert.Equal(t, 5, s.RunsConceded)
}

func TestBestFigure_TieBreak(t *testing.T) {
	tests := []struct {
		name    string
		figures []model.Figure
		want    model.Figure
	}{
		{
			name:    "fewest runs among equal wickets",
			figures: []model.Figure{{MatchID: 1, Date: "2019-04-01", Wickets: 3, Runs: 40}, {MatchID: 2, Date: "2019-05-01", Wickets: 3, Runs: 20}},
			want:    model.Figure{MatchID: 2, Date: "2019-05-01", Wickets: 3, Runs: 20},
		},
		{
			name:    "wickets beat runs",
			figures: []model.Figure{{MatchID: 1, Wickets: 2, Runs: 5}, {MatchID: 2, Wickets: 4, Runs: 50}},
			want:    model.Figure{MatchID: 2, Wickets: 4, Runs: 50},
		},
		{
			name:    "earliest date then lowest id",
			figures: []model.Figure{{MatchID: 9, Date: "2020-01-02", Wickets: 1, Runs: 10}, {MatchID: 8, Date: "2020-01-01", Wickets: 1, Runs: 10}, {MatchID: 7, Date: "2020-01-01", Wickets: 1, Runs: 10}},
			want:    model.Figure{MatchID: 7, Date: "2020-01-01", Wickets: 1, Runs: 10},
		},
		{name: "empty", figures: nil, want: model.Figure{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestFigure(tt.figures))
		})
	}
}

// ---- Teams ----

func TestTeamPerformance_Invariant(t *testing.T) {
	ds := fixture(t)

	for _, rec := range AllTeamPerformance(ds) {
		assert.Equal(t, rec.Played, rec.Wins+rec.Losses+rec.Ties+rec.NoResults, rec.Team)
		assert.GreaterOrEqual(t, rec.Losses, 0, rec.Team)
	}

	rec, err := TeamPerformance(ds, mi, Filter{})
	require.NoError(t, err)
	assert.Equal(t, model.TeamRecord{Team: mi, Played: 4, Wins: 2, Losses: 1, NoResults: 1, WinPct: 50}, rec)

	rec, err = TeamPerformance(ds, rcb, Filter{})
	require.NoError(t, err)
	assert.Equal(t, model.TeamRecord{Team: rcb, Played: 2, Ties: 1, NoResults: 1}, rec)

	rec, err = TeamPerformance(ds, mi, Filter{Opponent: csk, Season: "2019"})
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Played)
	assert.Equal(t, 1, rec.Wins)

	rec, err = TeamPerformance(ds, "Deccan Chargers", Filter{})
	require.NoError(t, err)
	assert.Zero(t, rec.Played)
	assert.Zero(t, rec.WinPct)
}

func TestHeadToHead(t *testing.T) {
	ds := fixture(t)

	h, err := HeadToHead(ds, mi, csk, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, h.Matches)
	assert.Equal(t, 1, h.WinsA)
	assert.Equal(t, 1, h.WinsB)
	assert.Equal(t, 180, h.HighestA)
	assert.Equal(t, 149, h.HighestB)
	assert.Equal(t, 50.0, h.WinPctA)

	h, err = HeadToHead(ds, mi, rcb, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, h.Ties)
	assert.Equal(t, 1, h.NoResults)
	assert.Equal(t, 159, h.HighestB)

	_, err = HeadToHead(ds, csk, rcb, Filter{})
	assert.ErrorIs(t, err, model.ErrNoData)

	var verr *model.ValidationError
	_, err = HeadToHead(ds, mi, mi, Filter{})
	assert.ErrorAs(t, err, &verr)
}

// ---- Season and scorecards ----

func TestSeasonSummary(t *testing.T) {
	ds := fixture(t)

	sum, err := SeasonSummary(ds, "2019", "", "")
	require.NoError(t, err)
	require.Len(t, sum.Teams, 2)
	assert.Equal(t, model.TeamSeasonTotals{Team: csk, Matches: 1, Runs: 1, Wickets: 0}, sum.Teams[0])
	assert.Equal(t, mi, sum.Teams[1].Team)
	require.NotNil(t, sum.TopBatter)
	assert.Equal(t, "Q de Kock", sum.TopBatter.Player)
	require.NotNil(t, sum.TopBowler)
	assert.Equal(t, "DL Chahar", sum.TopBowler.Bowler)
	assert.Equal(t, 1, sum.TopBowler.MatchAwards)

	sum, err = SeasonSummary(ds, "2019", "", "MS Dhoni")
	require.NoError(t, err)
	assert.Empty(t, sum.Teams)
	assert.Equal(t, "MS Dhoni", sum.TopBatter.Player)
	assert.Nil(t, sum.TopBowler)

	_, err = SeasonSummary(ds, "2020", "", "MS Dhoni")
	assert.ErrorIs(t, err, model.ErrNoData)

	var verr *model.ValidationError
	_, err = SeasonSummary(ds, AllSeasons, "", "")
	assert.ErrorAs(t, err, &verr)
}

func TestScorecards(t *testing.T) {
	ds := fixture(t)

	cards, err := Scorecards(ds, mi, csk, "2019")
	require.NoError(t, err)
	require.Len(t, cards, 2)

	first := cards[0]
	assert.Equal(t, 1, first.MatchID)
	require.Len(t, first.Innings, 1)
	inn := first.Innings[0]
	assert.Equal(t, mi, inn.BattingTeam)
	assert.Equal(t, 51, inn.Runs)
	assert.Equal(t, 5, inn.Wickets)
	assert.Equal(t, "2.3", inn.Overs)
	require.Len(t, inn.Bowlers, 2)
	assert.Equal(t, model.BowlerLine{Bowler: "DL Chahar", RunsConceded: 20, Wickets: 4, Balls: 9, Overs: "1.3", Economy: model.Of(13.33)}, inn.Bowlers[0])

	assert.Len(t, cards[1].Innings, 2)

	_, err = Scorecards(ds, mi, csk, "2020")
	assert.ErrorIs(t, err, model.ErrNoData)

	var verr *model.ValidationError
	_, err = Scorecards(ds, mi, csk, "1999")
	assert.ErrorAs(t, err, &verr)
}

func TestScorecards_EverySeason(t *testing.T) {
	ds := fixture(t)

	for _, season := range []string{AllSeasons, ""} {
		cards, err := Scorecards(ds, mi, rcb, season)
		require.NoError(t, err, "season %q", season)
		require.Len(t, cards, 2)
		assert.Equal(t, 3, cards[0].MatchID)
		assert.Empty(t, cards[0].Innings, "no deliveries for the washed-out match")
		assert.Equal(t, 4, cards[1].MatchID)
	}

	_, err := Scorecards(ds, csk, rcb, AllSeasons)
	assert.ErrorIs(t, err, model.ErrNoData)
}

func TestScorecards_WidesOnlyBowlerIsNA(t *testing.T) {
	m := loadertest.Match(1, "2019", "2019-04-01", "Wankhede Stadium", mi, csk, mi, model.ResultRuns)
	ds := loadertest.Build(t, []model.Match{m}, []model.Delivery{
		loadertest.Extra(loadertest.Ball(1, 1, mi, csk, "RG Sharma", "SN Thakur", 0), model.ExtrasWides, 1),
		loadertest.Ball(1, 1, mi, csk, "RG Sharma", "DL Chahar", 4),
	})

	cards, err := Scorecards(ds, mi, csk, AllSeasons)
	require.NoError(t, err)
	bowlers := cards[0].Innings[0].Bowlers
	require.Len(t, bowlers, 2)
	assert.Equal(t, "SN Thakur", bowlers[1].Bowler)
	assert.False(t, bowlers[1].Economy.Valid)
	assert.Equal(t, model.Of(24), bowlers[0].Economy)
}
