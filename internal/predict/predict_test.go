package predict

import (
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

func fixture(t *testing.T) *loader.Dataset {
	t.Helper()

	withCity := func(m model.Match, city string) model.Match {
		m.City = city
		return m
	}
	matches := []model.Match{
		withCity(loadertest.Match(1, "2019", "2019-04-01", "Wankhede Stadium", mi, csk, mi, model.ResultRuns), "Mumbai"),
		withCity(loadertest.Match(2, "2019", "2019-04-10", "MA Chidambaram Stadium", csk, mi, csk, model.ResultRuns), "Chennai"),
		withCity(loadertest.Match(3, "2019", "2019-04-20", "Wankhede Stadium", mi, rcb, mi, model.ResultWickets), "Mumbai"),
		withCity(loadertest.Match(4, "2019", "2019-05-01", "MA Chidambaram Stadium", csk, rcb, "", model.ResultNoResult), "Chennai"),
	}

	var d []model.Delivery
	d = append(d, loadertest.Balls(1, 1, mi, csk, "RG Sharma", "DL Chahar", 4, 6)...)
	d = append(d, loadertest.Ball(1, 2, csk, mi, "MS Dhoni", "JJ Bumrah", 1))
	d = append(d, loadertest.Out(loadertest.Ball(1, 2, csk, mi, "MS Dhoni", "JJ Bumrah", 0), "bowled"))

	d = append(d, loadertest.Ball(2, 1, csk, mi, "MS Dhoni", "JJ Bumrah", 6))
	d = append(d, loadertest.Extra(loadertest.Ball(2, 1, csk, mi, "MS Dhoni", "JJ Bumrah", 0), model.ExtrasWides, 1))
	d = append(d, loadertest.Out(loadertest.Ball(2, 2, mi, csk, "RG Sharma", "DL Chahar", 0), "caught"))

	d = append(d, loadertest.Ball(3, 1, mi, rcb, "RG Sharma", "Mohammed Siraj", 2))
	d = append(d, loadertest.Ball(3, 2, rcb, mi, "V Kohli", "JJ Bumrah", 1))

	d = append(d, loadertest.Ball(4, 1, csk, rcb, "MS Dhoni", "Mohammed Siraj", 1))

	return loadertest.Build(t, matches, d)
}

// ---- Form ----

func TestTeamForm(t *testing.T) {
	ds := fixture(t)

	f := TeamForm(ds, mi, FormWindow)
	assert.Equal(t, 3, f.Matches)
	assert.Equal(t, 2, f.Wins)
	assert.InDelta(t, 0.4, f.WinRate, 1e-9, "divided by the window, not matches played")
	assert.InDelta(t, 2.4, f.AvgRuns, 1e-9)
	assert.InDelta(t, 0.2, f.AvgWickets, 1e-9)

	f = TeamForm(ds, mi, 2)
	assert.Equal(t, 2, f.Matches, "most recent first")
	assert.InDelta(t, 0.5, f.WinRate, 1e-9)
	assert.InDelta(t, 1.0, f.AvgRuns, 1e-9)

	f = TeamForm(ds, "Gujarat Titans", FormWindow)
	assert.Zero(t, f.Matches)
	assert.Zero(t, f.WinRate)
}

func TestPlayerForm(t *testing.T) {
	ds := fixture(t)

	f := PlayerForm(ds, mi, FormWindow)
	require.Len(t, f.TopBatters, 1)
	assert.Equal(t, model.FormBatter{Batter: "RG Sharma", Runs: 12, Balls: 4, StrikeRate: 300}, f.TopBatters[0])
	assert.InDelta(t, 300, f.BattingForm, 1e-9)

	require.Len(t, f.TopBowlers, 1)
	assert.Equal(t, model.FormBowler{Bowler: "JJ Bumrah", Wickets: 1, RunsConceded: 9, Balls: 5, Economy: 10.8}, f.TopBowlers[0],
		"wides count as balls bowled")
	assert.InDelta(t, 0.2, f.BowlingForm, 1e-9)

	f = PlayerForm(ds, csk, FormWindow)
	require.Len(t, f.TopBatters, 1)
	assert.Equal(t, 4, f.TopBatters[0].Balls, "wides are not balls faced")
	assert.InDelta(t, 200, f.BattingForm, 1e-9)

	f = PlayerForm(ds, "Gujarat Titans", FormWindow)
	assert.Zero(t, f.BattingForm)
	assert.Zero(t, f.BowlingForm)
}

// ---- Head-to-head ----

func TestHeadToHeadProbability(t *testing.T) {
	ds := fixture(t)

	p, err := HeadToHeadProbability(ds, mi, csk)
	require.NoError(t, err)
	assert.InDelta(t, 50, p.H2HWinRate, 1e-9)
	assert.InDelta(t, 40, p.RecentWinRate, 1e-9)
	assert.Equal(t, 47.0, p.ProbabilityA)
	assert.Equal(t, 53.0, p.ProbabilityB)

	p, err = HeadToHeadProbability(ds, rcb, csk)
	require.NoError(t, err)
	assert.Zero(t, p.ProbabilityA)
	assert.Equal(t, 100.0, p.ProbabilityB)

	_, err = HeadToHeadProbability(ds, mi, "Delhi Capitals")
	assert.ErrorIs(t, err, model.ErrNoData)

	var verr *model.ValidationError
	_, err = HeadToHeadProbability(ds, mi, mi)
	assert.ErrorAs(t, err, &verr)
}

// ---- Live estimate ----

func chase() LiveInput {
	return LiveInput{
		BattingTeam: mi,
		BowlingTeam: csk,
		City:        "Mumbai",
		Weather:     WeatherClear,
		Target:      151,
		Score:       125,
		Overs:       16,
		WicketsOut:  2,
	}
}

func TestEstimate(t *testing.T) {
	ds := fixture(t)

	wp, err := Estimate(ds, chase())
	require.NoError(t, err)
	assert.False(t, wp.Terminal)
	assert.InDelta(t, 7.8125, wp.RunRate, 1e-9)
	assert.InDelta(t, 6.5, wp.RequiredRunRate, 1e-9)
	assert.Equal(t, 8, wp.WicketsRemaining)

	c := wp.Contributions
	assert.InDelta(t, 0.2, c.Historical, 1e-9)
	assert.InDelta(t, 0.4/0.6*0.2, c.Form, 1e-9)
	assert.InDelta(t, 0.15, c.PlayerForm, 1e-9)
	assert.InDelta(t, 0.0525, c.External, 1e-9)
	assert.InDelta(t, 0.675667, wp.P1, 1e-4)
	assert.InDelta(t, 1, wp.P1+wp.P2, 1e-12)
}

func TestEstimate_RainFavoursBattingSide(t *testing.T) {
	ds := fixture(t)

	dry, err := Estimate(ds, chase())
	require.NoError(t, err)
	in := chase()
	in.Weather = WeatherRainy
	wet, err := Estimate(ds, in)
	require.NoError(t, err)

	assert.Greater(t, wet.P1, dry.P1)
	assert.InDelta(t, 1, wet.P1+wet.P2, 1e-12)
}

func TestEstimate_Terminal(t *testing.T) {
	ds := fixture(t)

	tests := []struct {
		name    string
		mutate  func(*LiveInput)
		p1, p2  float64
		weather string
	}{
		{"overs up, short of target", func(in *LiveInput) { in.Overs = 20 }, 0, 1, WeatherClear},
		{"overs up in the rain", func(in *LiveInput) { in.Overs = 20 }, 0, 1, WeatherRainy},
		{"all out", func(in *LiveInput) { in.WicketsOut = 10 }, 0, 1, WeatherClear},
		{"target reached", func(in *LiveInput) { in.Overs = 20; in.Score = 151 }, 1, 0, WeatherRainy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := chase()
			in.Weather = tt.weather
			tt.mutate(&in)
			wp, err := Estimate(ds, in)
			require.NoError(t, err)
			assert.True(t, wp.Terminal)
			assert.Equal(t, tt.p1, wp.P1)
			assert.Equal(t, tt.p2, wp.P2)
		})
	}
}

func TestEstimate_ProbabilitiesStayInRange(t *testing.T) {
	ds := fixture(t)
	rng := rand.New(rand.NewSource(7))
	teams := []string{mi, csk, rcb, "Unknown XI"}

	for i := 0; i < 500; i++ {
		a := teams[rng.Intn(len(teams))]
		b := teams[rng.Intn(len(teams))]
		if a == b {
			continue
		}
		in := LiveInput{
			BattingTeam: a,
			BowlingTeam: b,
			City:        "Mumbai",
			Weather:     Weathers[rng.Intn(len(Weathers))],
			Target:      rng.Intn(260),
			Score:       rng.Intn(260),
			Overs:       float64(rng.Intn(201)) / 10,
			WicketsOut:  rng.Intn(11),
		}
		wp, err := Estimate(ds, in)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, wp.P1, 0.0)
		assert.LessOrEqual(t, wp.P1, 1.0)
		assert.InDelta(t, 1, wp.P1+wp.P2, 1e-12, "%+v", in)
	}
}

func TestLiveInput_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LiveInput)
		field  string
	}{
		{"same teams", func(in *LiveInput) { in.BowlingTeam = mi }, "teams"},
		{"missing team", func(in *LiveInput) { in.BattingTeam = "" }, "teams"},
		{"missing city", func(in *LiveInput) { in.City = "" }, "city"},
		{"overs above 20", func(in *LiveInput) { in.Overs = 20.1 }, "overs"},
		{"negative overs", func(in *LiveInput) { in.Overs = -1 }, "overs"},
		{"eleven wickets", func(in *LiveInput) { in.WicketsOut = 11 }, "wickets"},
		{"negative score", func(in *LiveInput) { in.Score = -1 }, "score"},
		{"unknown weather", func(in *LiveInput) { in.Weather = "Snow" }, "weather"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := chase()
			tt.mutate(&in)
			var verr *model.ValidationError
			require.ErrorAs(t, in.Validate(), &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
	assert.NoError(t, chase().Validate())
}
