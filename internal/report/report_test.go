package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pable/go-ipl-metrics/internal/model"
)

func TestPrintBatting_NeverDismissed(t *testing.T) {
	var buf bytes.Buffer
	PrintBatting(&buf, model.BattingStats{Player: "RG Sharma", Innings: 2, Runs: 55, Balls: 12, StrikeRate: 458.33, Average: model.NA()})

	out := buf.String()
	assert.Contains(t, out, "RG Sharma")
	assert.Contains(t, out, "458.33")
	assert.Contains(t, out, "N/A")
}

func TestPrintBowling_NoBestFigure(t *testing.T) {
	var buf bytes.Buffer
	PrintBowling(&buf, model.BowlingStats{Bowler: "JJ Bumrah", Balls: 22, Economy: model.Of(3), Average: model.NA(), StrikeRate: model.NA()})

	out := buf.String()
	assert.Contains(t, out, "3.4", "overs in cricket notation")
	assert.Contains(t, out, "—")
}

func TestPrintTargets_MissingMargin(t *testing.T) {
	var buf bytes.Buffer
	PrintTargets(&buf, []model.TargetRow{
		{MatchID: 1, BattingTeam: "Mumbai Indians", Against: "Chennai Super Kings", Runs: 223, Date: "2019-04-03", Venue: "Wankhede Stadium", Winner: "Mumbai Indians", ResultMargin: 37, HasMargin: true},
		{MatchID: 2, BattingTeam: "Chennai Super Kings", Against: "Mumbai Indians", Runs: 201, Date: "2019-05-01", Venue: "Chepauk"},
	})

	out := buf.String()
	assert.Contains(t, out, "223")
	assert.Contains(t, out, "37")
	assert.Contains(t, out, "—")
}

func TestPrintSeasonCounts_Totals(t *testing.T) {
	var buf bytes.Buffer
	PrintSeasonCounts(&buf, "DL CHAHAR", "JJ BUMRAH", []model.SeasonCount{
		{Season: "2018", A: 2},
		{Season: "2019", A: 1, B: 4},
	})
	assert.Contains(t, buf.String(), "TOTAL")
}

func TestPrintWinProbability_Terminal(t *testing.T) {
	var buf bytes.Buffer
	PrintWinProbability(&buf, model.WinProbability{
		Team1: "Mumbai Indians", Team2: "Chennai Super Kings",
		P1: 0, P2: 1, Terminal: true,
	})

	out := buf.String()
	assert.Contains(t, out, "decided by the score")
	assert.Contains(t, out, "Chennai Super Kings: 100%")
	assert.NotContains(t, out, "SITUATION")
}
