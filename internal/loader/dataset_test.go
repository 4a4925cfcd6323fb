package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pable/go-ipl-metrics/internal/model"
)

const matchesCSV = `id,season,city,date,match_type,player_of_match,venue,team1,team2,toss_winner,toss_decision,winner,result,result_margin,target_runs,target_overs,super_over,method,umpire1,umpire2
1,2007/08,Bangalore,2008-04-18,League,BB McCullum,M Chinnaswamy Stadium,Royal Challengers Bangalore,Kolkata Knight Riders,Royal Challengers Bangalore,field,Kolkata Knight Riders,runs,140.0,223.0,20.0,N,NA,Asad Rauf,RE Koertzen
2,2007/08,Chandigarh,2008-04-19,League,MEK Hussey,Punjab Cricket Association Stadium,Kings XI Punjab,Chennai Super Kings,Chennai Super Kings,bat,,no result,NA,NA,NA,N,NA,MR Benson,SL Shastri
`

const deliveriesCSV = `match_id,inning,batting_team,bowling_team,over,ball,batter,bowler,non_striker,batsman_runs,extra_runs,total_runs,extras_type,is_wicket,player_dismissed,dismissal_kind,fielder
1,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,1,SC Ganguly,P Kumar,BB McCullum,0,1,1,legbyes,0,NA,NA,NA
1,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,2,BB McCullum,P Kumar,SC Ganguly,0,0,0,NA,0,NA,NA,NA
1,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,3,BB McCullum,P Kumar,SC Ganguly,0,1,1,wides,0,NA,NA,NA
1,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,4,BB McCullum,P Kumar,SC Ganguly,0,0,0,NA,1,BB McCullum,run out,V Kohli
1,1,Kolkata Knight Riders,Royal Challengers Bangalore,0,5,SC Ganguly,P Kumar,RT Ponting,0,0,0,NA,1,SC Ganguly,caught,JH Kallis
2,1,Bogus Label,Kings XI Punjab,0,1,PA Patel,B Lee,ML Hayden,4,0,4,NA,0,NA,NA,NA
`

func loadFixture(t *testing.T) *Dataset {
	t.Helper()
	matches, err := ReadMatchesCSV(strings.NewReader(matchesCSV))
	require.NoError(t, err)
	deliveries, err := ReadDeliveriesCSV(strings.NewReader(deliveriesCSV))
	require.NoError(t, err)
	ds, err := New(matches, deliveries)
	require.NoError(t, err)
	return ds
}

func TestReadMatchesCSV(t *testing.T) {
	matches, err := ReadMatchesCSV(strings.NewReader(matchesCSV))
	require.NoError(t, err)
	require.Len(t, matches, 2)

	m := matches[0]
	assert.Equal(t, 1, m.ID)
	assert.Equal(t, "2007/08", m.Season)
	assert.Equal(t, "Kolkata Knight Riders", m.Winner)
	assert.True(t, m.ResultMargin.Valid)
	assert.Equal(t, int64(140), m.ResultMargin.Int64)
	assert.Equal(t, int64(223), m.TargetRuns.Int64)
	assert.False(t, m.SuperOver)
	assert.Empty(t, m.Method, "NA parses as empty")

	nr := matches[1]
	assert.Empty(t, nr.Winner)
	assert.False(t, nr.ResultMargin.Valid)
	assert.False(t, nr.TargetRuns.Valid)
	assert.Equal(t, model.ResultNoResult, nr.Result)
}

func TestReadCSVFailures(t *testing.T) {
	tests := []struct {
		name    string
		read    func() error
		wantErr string
	}{
		{
			name: "missing column",
			read: func() error {
				_, err := ReadMatchesCSV(strings.NewReader("id,season\n1,2008\n"))
				return err
			},
			wantErr: `missing required column "date"`,
		},
		{
			name: "malformed number",
			read: func() error {
				bad := strings.Replace(deliveriesCSV, "0,2,BB McCullum", "0,x,BB McCullum", 1)
				_, err := ReadDeliveriesCSV(strings.NewReader(bad))
				return err
			},
			wantErr: "row 3: ball",
		},
		{
			name: "fractional runs",
			read: func() error {
				bad := strings.Replace(deliveriesCSV, "SC Ganguly,0,0,0,NA,0,NA", "SC Ganguly,4.9,0,4.9,NA,0,NA", 1)
				_, err := ReadDeliveriesCSV(strings.NewReader(bad))
				return err
			},
			wantErr: `row 3: batsman_runs: not a whole number: "4.9"`,
		},
		{
			name: "empty input",
			read: func() error {
				_, err := ReadDeliveriesCSV(strings.NewReader(""))
				return err
			},
			wantErr: "missing header",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.read()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRejectsIntegrityViolations(t *testing.T) {
	matches, err := ReadMatchesCSV(strings.NewReader(matchesCSV))
	require.NoError(t, err)

	_, err = New(matches, []model.Delivery{{MatchID: 99, Batter: "a", Bowler: "b"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown match id 99")

	bad := append([]model.Match(nil), matches...)
	bad[0].Winner = "Mumbai Indians"
	_, err = New(bad, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "neither")

	dup := append([]model.Match(nil), matches[0], matches[0])
	_, err = New(dup, nil)
	require.Error(t, err)

	_, err = New(nil, nil)
	require.Error(t, err)
}

func TestDerivedViews(t *testing.T) {
	ds := loadFixture(t)

	assert.Equal(t, []string{"Kings XI Punjab", "Royal Challengers Bangalore"}, ds.Teams())
	assert.Equal(t, []string{"BB McCullum", "PA Patel", "SC Ganguly"}, ds.Players())
	assert.Equal(t, []string{"2007/08"}, ds.Seasons())
	assert.Equal(t, []string{"Bangalore", "Chandigarh"}, ds.Cities())
	assert.True(t, ds.HasSeason("2007/08"))
	assert.False(t, ds.HasSeason("2020"))

	bat := ds.Batting()
	require.Len(t, bat, 6)
	// Match 1: KKR is team2 so the normalized batting side is team2.
	assert.Equal(t, "Kolkata Knight Riders", bat[0].BattingTeam)
	assert.Equal(t, "Royal Challengers Bangalore", bat[0].BowlingTeam)
	// A label matching neither side falls back to team2.
	assert.Equal(t, "Chennai Super Kings", bat[5].BattingTeam)
	assert.Equal(t, "Kings XI Punjab", bat[5].BowlingTeam)

	bowl := ds.Bowling()
	assert.Equal(t, 0, bowl[0].BowlerRuns, "leg-byes are not charged to the bowler")
	assert.Equal(t, 1, bowl[2].BowlerRuns, "wides are charged to the bowler")
	assert.False(t, bowl[3].BowlerWicket, "run out is not the bowler's wicket")
	assert.True(t, bowl[4].BowlerWicket)

	assert.Len(t, ds.DeliveriesFor(1), 5)
	assert.Empty(t, ds.DeliveriesFor(42))
}

func TestLoadDirIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, MatchesFile), []byte(matchesCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DeliveriesFile), []byte(deliveriesCSV), 0o644))

	a, err := LoadDir(dir)
	require.NoError(t, err)
	b, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, a.Batting(), b.Batting())
	assert.Equal(t, a.Players(), b.Players())

	_, err = LoadDir(t.TempDir())
	require.Error(t, err)
}
