package report

import (
	"fmt"
	"io"

	"github.com/pable/go-ipl-metrics/internal/model"
)

// PrintSeasonCounts prints a season-joined duel; labels name the A and B columns.
func PrintSeasonCounts(w io.Writer, labelA, labelB string, rows []model.SeasonCount) {
	table := newTable(w)
	table.Header("SEASON", labelA, labelB)
	totalA, totalB := 0, 0
	for _, r := range rows {
		table.Append(r.Season, itoa(r.A), itoa(r.B))
		totalA += r.A
		totalB += r.B
	}
	table.Append("TOTAL", itoa(totalA), itoa(totalB))
	table.Render()
}

func printMatchupLines(w io.Writer, keyHeader string, lines []model.MatchupLine) {
	table := newTable(w)
	table.Header(keyHeader, "RUNS", "OUTS")
	for _, l := range lines {
		table.Append(l.Key, itoa(l.Runs), itoa(l.Dismissals))
	}
	table.Render()
}

// PrintMatchup prints the batter-vs-bowler breakdown.
func PrintMatchup(w io.Writer, r model.MatchupReport) {
	fmt.Fprintf(w, "\n%s vs %s  (season: %s)\n\n", r.Batter, r.Bowler, r.Season)
	printMatchupLines(w, "SEASON", r.BySeason)
	printMatchupLines(w, "VENUE", r.ByVenue)
	fmt.Fprintf(w, "\nAll seasons: %d runs, %d dismissals\n\n", r.TotalRuns, r.TotalOuts)
	printMatchupLines(w, "VENUE", r.AllVenues)
}

// PrintPlayerVsTeam prints the per-season batting and bowling tables.
func PrintPlayerVsTeam(w io.Writer, rec model.PlayerVsTeam) {
	fmt.Fprintf(w, "\n%s vs %s\n", rec.Player, rec.Opponent)
	if len(rec.Batting) == 0 && len(rec.Bowling) == 0 {
		fmt.Fprintln(w, "  no record")
		return
	}
	if len(rec.Batting) > 0 {
		fmt.Fprintln(w, "\nBatting")
		table := newTable(w)
		table.Header("SEASON", "M", "RUNS", "BALLS", "OUT", "50s", "100s", "HS", "SR", "AVG")
		for _, b := range rec.Batting {
			table.Append(
				b.Season,
				itoa(b.Matches),
				itoa(b.Runs),
				itoa(b.Balls),
				itoa(b.Dismissals),
				itoa(b.Fifties),
				itoa(b.Centuries),
				itoa(b.HighScore),
				b.StrikeRate.String(),
				b.Average.String(),
			)
		}
		table.Render()
	}
	if len(rec.Bowling) > 0 {
		fmt.Fprintln(w, "\nBowling")
		table := newTable(w)
		table.Header("SEASON", "M", "WKTS", "RUNS", "BALLS", "OVERS", "3W", "4W", "5W", "ECON", "AVG")
		for _, b := range rec.Bowling {
			table.Append(
				b.Season,
				itoa(b.Matches),
				itoa(b.Wickets),
				itoa(b.RunsConceded),
				itoa(b.Balls),
				f2(b.Overs),
				itoa(b.ThreeWickets),
				itoa(b.FourWickets),
				itoa(b.FiveWickets),
				b.Economy.String(),
				b.Average.String(),
			)
		}
		table.Render()
	}
}

// PrintComparison prints both players' records and the summary table.
func PrintComparison(w io.Writer, c model.PlayerComparison) {
	PrintPlayerVsTeam(w, c.First)
	PrintPlayerVsTeam(w, c.Second)

	fmt.Fprintln(w, "\nSummary")
	table := newTable(w)
	table.Header("PLAYER", "RUNS", "BAT AVG", "SR", "WKTS", "BOWL AVG", "ECON")
	for _, s := range c.Summary {
		table.Append(
			s.Player,
			itoa(s.TotalRuns),
			s.BattingAverage.String(),
			s.StrikeRate.String(),
			itoa(s.TotalWickets),
			s.BowlingAverage.String(),
			s.Economy.String(),
		)
	}
	table.Render()
}

// PrintRankedBatters prints a strike-rate ranking.
func PrintRankedBatters(w io.Writer, rows []model.RankedBatter) {
	table := newTable(w)
	table.Header("#", "BATTER", "RUNS", "BALLS", "SR")
	for i, r := range rows {
		table.Append(itoa(i+1), r.Batter, itoa(r.Runs), itoa(r.Balls), f2(r.StrikeRate))
	}
	table.Render()
}

// PrintTargets prints the highest first-innings totals.
func PrintTargets(w io.Writer, rows []model.TargetRow) {
	table := newTable(w)
	table.Header("#", "DATE", "TEAM", "AGAINST", "SCORE", "VENUE", "CITY", "WINNER", "MARGIN")
	for i, r := range rows {
		margin := "—"
		if r.HasMargin {
			margin = itoa(r.ResultMargin)
		}
		table.Append(
			itoa(i+1),
			r.Date,
			r.BattingTeam,
			r.Against,
			itoa(r.Runs),
			r.Venue,
			orDash(r.City),
			orDash(r.Winner),
			margin,
		)
	}
	table.Render()
}

func printPick(w io.Writer, p model.BatsmanPick) {
	fmt.Fprintf(w, "\n%s\n", p.Batter)
	if len(p.Bowlers) == 0 {
		fmt.Fprintln(w, "  has not faced any selected bowler")
		return
	}
	for _, b := range p.Bowlers {
		fmt.Fprintf(w, "\n  vs %s\n", b.Bowler)
		table := newTable(w)
		table.Header("SEASON", "RUNS", "OUTS", "BALLS", "6s", "4s")
		for _, s := range b.Seasons {
			table.Append(s.Season, itoa(s.Runs), itoa(s.Dismissals), itoa(s.Balls), itoa(s.Sixes), itoa(s.Fours))
		}
		table.Render()
	}
	fmt.Fprintf(w, "  Total: %d runs off %d balls, %d outs, SR %.2f, score %.2f\n",
		p.Runs, p.Balls, p.Dismissals, p.StrikeRate, p.Score)
}

// PrintPick prints both batsmen's breakdowns and the verdict.
func PrintPick(w io.Writer, r model.PickResult) {
	printPick(w, r.First)
	printPick(w, r.Second)
	switch {
	case r.Tie:
		fmt.Fprintf(w, "\nVerdict: %s and %s are level\n", r.First.Batter, r.Second.Batter)
	case r.Winner != "":
		fmt.Fprintf(w, "\nVerdict: %s is the better pick\n", r.Winner)
	}
}
