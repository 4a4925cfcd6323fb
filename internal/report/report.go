// Package report renders engine results as terminal tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/pable/go-ipl-metrics/internal/model"
	"github.com/pable/go-ipl-metrics/internal/storage"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

func itoa(n int) string { return strconv.Itoa(n) }

func f2(v float64) string { return fmt.Sprintf("%.2f", v) }

func pct(v float64) string { return fmt.Sprintf("%.0f%%", v) }

// orDash renders an empty label as an em dash.
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// PrintOverview prints the snapshot header used by `summary`.
func PrintOverview(w io.Writer, o storage.Overview) {
	span := "—"
	if o.FirstDate != "" {
		span = o.FirstDate + " → " + o.LastDate
	}
	fmt.Fprintf(w, "\nMatches: %d  |  Deliveries: %d  |  Seasons: %d  |  Span: %s\n",
		o.Matches, o.Deliveries, len(o.Seasons), span)
	if len(o.Seasons) > 0 {
		fmt.Fprintf(w, "Seasons: %s\n", strings.Join(o.Seasons, ", "))
	}
	fmt.Fprintln(w)
}

// PrintBatting prints a single batter's aggregate.
func PrintBatting(w io.Writer, s model.BattingStats) {
	fmt.Fprintf(w, "\nBatting: %s\n\n", s.Player)
	table := newTable(w)
	table.Header("INN", "RUNS", "BALLS", "4s", "6s", "OUT", "NO", "SR", "AVG", "50s", "100s", "HS", "POM")
	table.Append(
		itoa(s.Innings),
		itoa(s.Runs),
		itoa(s.Balls),
		itoa(s.Fours),
		itoa(s.Sixes),
		itoa(s.Dismissals),
		itoa(s.NotOuts),
		f2(s.StrikeRate),
		s.Average.String(),
		itoa(s.Fifties),
		itoa(s.Centuries),
		itoa(s.HighScore),
		itoa(s.MatchAwards),
	)
	table.Render()
}

// PrintBowling prints a single bowler's aggregate.
func PrintBowling(w io.Writer, s model.BowlingStats) {
	fmt.Fprintf(w, "\nBowling: %s\n\n", s.Bowler)
	table := newTable(w)
	table.Header("INN", "OVERS", "WKTS", "RUNS", "ECON", "AVG", "SR", "4s", "6s", "3W", "4W", "5W", "BEST", "POM")
	best := "—"
	if s.Best.MatchID != 0 {
		best = s.Best.String()
	}
	table.Append(
		itoa(s.Innings),
		model.OversNotation(s.Balls),
		itoa(s.Wickets),
		itoa(s.RunsConceded),
		s.Economy.String(),
		s.Average.String(),
		s.StrikeRate.String(),
		itoa(s.Fours),
		itoa(s.Sixes),
		itoa(s.ThreeWickets),
		itoa(s.FourWickets),
		itoa(s.FiveWickets),
		best,
		itoa(s.MatchAwards),
	)
	table.Render()
}

// PrintTeamRecords prints one row per team.
func PrintTeamRecords(w io.Writer, recs []model.TeamRecord) {
	table := newTable(w)
	table.Header("TEAM", "P", "W", "L", "T", "NR", "WIN%")
	for _, r := range recs {
		table.Append(
			r.Team,
			itoa(r.Played),
			itoa(r.Wins),
			itoa(r.Losses),
			itoa(r.Ties),
			itoa(r.NoResults),
			pct(r.WinPct),
		)
	}
	table.Render()
}

// PrintHeadToHead prints the head-to-head record with one column per team.
func PrintHeadToHead(w io.Writer, h model.HeadToHead) {
	table := newTable(w)
	table.Header(" ", h.TeamA, h.TeamB)
	table.Append("Matches", itoa(h.Matches), itoa(h.Matches))
	table.Append("Won", pct(h.WinPctA), pct(h.WinPctB))
	table.Append("Lost", pct(h.WinPctB), pct(h.WinPctA))
	table.Append("Tied", pct(h.TiePct), pct(h.TiePct))
	table.Append("No result", pct(h.NoResultPct), pct(h.NoResultPct))
	table.Append("Highest score", itoa(h.HighestA), itoa(h.HighestB))
	table.Render()
}

// PrintSeasonSummary prints team totals (when present) and the leaders.
func PrintSeasonSummary(w io.Writer, s model.SeasonSummary) {
	fmt.Fprintf(w, "\nSeason %s\n\n", s.Season)
	if len(s.Teams) > 0 {
		table := newTable(w)
		table.Header("TEAM", "MATCHES", "RUNS", "WKTS LOST")
		for _, t := range s.Teams {
			table.Append(t.Team, itoa(t.Matches), itoa(t.Runs), itoa(t.Wickets))
		}
		table.Render()
	}
	if s.TopBatter != nil {
		PrintBatting(w, *s.TopBatter)
	}
	if s.TopBowler != nil {
		PrintBowling(w, *s.TopBowler)
	}
}

// PrintScorecards prints each match header followed by its innings tables.
func PrintScorecards(w io.Writer, cards []model.Scorecard) {
	for _, c := range cards {
		result := orDash(c.Winner)
		if c.HasMargin {
			result = fmt.Sprintf("%s by %d %s", c.Winner, c.ResultMargin, c.Result)
		}
		fmt.Fprintf(w, "\nMatch %d  |  %s  |  %s  |  %s\n", c.MatchID, c.Date, c.Venue, result)
		for _, in := range c.Innings {
			fmt.Fprintf(w, "\nInnings %d: %s %d/%d (%s ov)\n", in.Inning, in.BattingTeam, in.Runs, in.Wickets, in.Overs)

			bat := newTable(w)
			bat.Header("BATTER", "R", "B", "SR")
			for _, b := range in.Batters {
				bat.Append(b.Batter, itoa(b.Runs), itoa(b.Balls), f2(b.StrikeRate))
			}
			bat.Render()

			bowl := newTable(w)
			bowl.Header("BOWLER", "O", "R", "W", "ECON")
			for _, b := range in.Bowlers {
				bowl.Append(b.Bowler, b.Overs, itoa(b.RunsConceded), itoa(b.Wickets), b.Economy.String())
			}
			bowl.Render()
		}
	}
}
