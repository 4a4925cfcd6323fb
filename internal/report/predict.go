package report

import (
	"fmt"
	"io"

	"github.com/pable/go-ipl-metrics/internal/model"
)

// PrintTeamForm prints a team's recent results and top performers.
func PrintTeamForm(w io.Writer, f model.TeamForm, p model.PlayerForm) {
	fmt.Fprintf(w, "\n%s recent form: win rate %.2f, avg runs %.0f, avg wickets %.1f (last %d)\n",
		f.Team, f.WinRate, f.AvgRuns, f.AvgWickets, f.Matches)

	bat := newTable(w)
	bat.Header("BATTER", "RUNS", "BALLS", "SR")
	for _, b := range p.TopBatters {
		bat.Append(b.Batter, itoa(b.Runs), itoa(b.Balls), f2(b.StrikeRate))
	}
	bat.Render()

	bowl := newTable(w)
	bowl.Header("BOWLER", "WKTS", "RUNS", "BALLS", "ECON")
	for _, b := range p.TopBowlers {
		bowl.Append(b.Bowler, itoa(b.Wickets), itoa(b.RunsConceded), itoa(b.Balls), f2(b.Economy))
	}
	bowl.Render()
}

// PrintH2HProbability prints the head-to-head record and the blended odds.
func PrintH2HProbability(w io.Writer, p model.H2HProbability) {
	PrintHeadToHead(w, p.Record)
	fmt.Fprintf(w, "\nHead-to-head win rate: %.2f%%  |  %s recent form: %.2f%%\n",
		p.H2HWinRate, p.Record.TeamA, p.RecentWinRate)

	table := newTable(w)
	table.Header(p.Record.TeamA, p.Record.TeamB)
	table.Append(f2(p.ProbabilityA), f2(p.ProbabilityB))
	table.Render()
}

// PrintWinProbability prints both sides' form, the factor breakdown and the
// final percentages.
func PrintWinProbability(w io.Writer, wp model.WinProbability) {
	PrintTeamForm(w, wp.Form1, wp.Players1)
	PrintTeamForm(w, wp.Form2, wp.Players2)

	fmt.Fprintf(w, "\nRun rate %.2f  |  Required %.2f  |  Wickets left %d\n",
		wp.RunRate, wp.RequiredRunRate, wp.WicketsRemaining)
	if wp.Terminal {
		fmt.Fprintln(w, "Innings complete: decided by the score")
	} else {
		c := wp.Contributions
		table := newTable(w)
		table.Header("HISTORY", "FORM", "PLAYERS", "SITUATION", "EXTERNAL")
		table.Append(f2(c.Historical), f2(c.Form), f2(c.PlayerForm), f2(c.Situation), f2(c.External))
		table.Render()
	}

	fmt.Fprintf(w, "\n%s: %.0f%%\n%s: %.0f%%\n", wp.Team1, wp.P1*100, wp.Team2, wp.P2*100)
}
