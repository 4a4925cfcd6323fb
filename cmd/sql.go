package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/storage"
)

var sqlCmd = &cobra.Command{
	Use:   "sql <query>",
	Short: "Run a raw SQL query against the imported snapshot",
	Long: `Run an arbitrary SQL query against the SQLite snapshot and print results as a table.

Schema overview:
  matches(id, season, city, match_date, match_type, player_of_match, venue,
    team1, team2, toss_winner, toss_decision, winner, result, result_margin,
    target_runs, target_overs, super_over, method, umpire1, umpire2, seq)
  deliveries(seq, match_id, inning, over_no, ball, batter, bowler, non_striker,
    batting_team, bowling_team, batsman_runs, extra_runs, total_runs, extras_type,
    is_wicket, player_dismissed, dismissal_kind, fielder)

Note: season is stored as TEXT. Use quotes: WHERE season = '2016'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSQL,
}

func runSQL(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	cols, rows, err := db.QueryRaw(query)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("(no rows)")
		return nil
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignRight}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))

	colsAny := make([]any, len(cols))
	for i, c := range cols {
		colsAny[i] = c
	}
	table.Header(colsAny...)

	for _, row := range rows {
		rowAny := make([]any, len(row))
		for i, v := range row {
			rowAny[i] = v
		}
		table.Append(rowAny...)
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n(%d rows)\n", len(rows))
	return nil
}

