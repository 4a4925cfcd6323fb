package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/compare"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
	"github.com/pable/go-ipl-metrics/internal/predict"
	"github.com/pable/go-ipl-metrics/internal/report"
)

var (
	cPrompt   = color.New(color.FgCyan, color.Bold)
	cMuted    = color.New(color.Faint)
	cError    = color.New(color.FgRed, color.Bold)
	cWarn     = color.New(color.FgYellow)
	cHeader   = color.New(color.FgCyan, color.Bold)
	cCmd      = color.New(color.FgYellow, color.Bold)
	cGreeting = color.New(color.Bold)
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive dashboard",
	Long:  "Load the dataset once and pick analyses from a menu. Type 'menu' to list them again.",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

// field is one prompted input. An empty answer takes def.
type field struct {
	label string
	def   string
}

// menuItem is one dashboard entry; run receives the answers in field order.
type menuItem struct {
	name   string
	title  string
	fields []field
	run    func(ds *loader.Dataset, in []string) error
}

func runShell(_ *cobra.Command, _ []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}

	cGreeting.Println("IPL analysis dashboard")
	cMuted.Printf("%d matches, %d seasons, %d teams loaded\n", len(ds.Matches()), len(ds.Seasons()), len(ds.Teams()))
	fmt.Println()

	items := menuItems()
	shellMenu(items)

	in := bufio.NewScanner(os.Stdin)
	for {
		cPrompt.Print("iplmetrics")
		cMuted.Print("> ")
		if !in.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}

		switch line {
		case "exit", "quit":
			return nil
		case "menu", "help":
			shellMenu(items)
			continue
		case "summary":
			showSummary(os.Stdout, ds)
			continue
		}
		if what, ok := strings.CutPrefix(line, "list "); ok {
			if err := showList(os.Stdout, ds, strings.TrimSpace(what)); err != nil {
				cError.Fprintf(os.Stderr, "error: %v\n", err)
			}
			continue
		}

		item, ok := findItem(items, line)
		if !ok {
			cWarn.Fprintf(os.Stderr, "unknown choice %q, type 'menu'\n", line)
			continue
		}
		answers, ok := ask(in, item.fields)
		if !ok {
			fmt.Println()
			break
		}
		shellReport(item.run(ds, answers))
	}
	return nil
}

func shellMenu(items []menuItem) {
	fmt.Println()
	for i, it := range items {
		fmt.Print("  ")
		cCmd.Printf("%2d  %-10s", i+1, it.name)
		fmt.Println(it.title)
	}
	fmt.Println()
	cMuted.Println("  also: summary, list <teams|players|seasons|venues|cities>, menu, exit")
	fmt.Println()
}

func findItem(items []menuItem, choice string) (menuItem, bool) {
	if n, err := strconv.Atoi(choice); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1], true
		}
		return menuItem{}, false
	}
	for _, it := range items {
		if it.name == choice {
			return it, true
		}
	}
	return menuItem{}, false
}

// ask prompts for each field. It returns false when input ends.
func ask(in *bufio.Scanner, fields []field) ([]string, bool) {
	answers := make([]string, len(fields))
	for i, f := range fields {
		cPrompt.Printf("  %s", f.label)
		if f.def != "" {
			cMuted.Printf(" [%s]", f.def)
		}
		fmt.Print(": ")
		if !in.Scan() {
			return nil, false
		}
		answers[i] = strings.TrimSpace(in.Text())
		if answers[i] == "" {
			answers[i] = f.def
		}
	}
	return answers, true
}

// shellReport prints a failed analysis without leaving the session.
func shellReport(err error) {
	var verr *model.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr):
		cWarn.Fprintf(os.Stderr, "%v\n", err)
	case errors.Is(err, model.ErrNoData):
		cMuted.Fprintf(os.Stderr, "%v\n", err)
	default:
		cError.Fprintf(os.Stderr, "error: %v\n", err)
	}
}

// showForm prints team's form over its last n matches. A team counts as
// present when it played on either side.
func showForm(w io.Writer, ds *loader.Dataset, team string, n int) error {
	form := predict.TeamForm(ds, team, n)
	if form.Matches == 0 {
		return model.NoData("no matches for team %q", team)
	}
	report.PrintTeamForm(w, form, predict.PlayerForm(ds, team, n))
	return nil
}

func atoi(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, model.Invalid(field, fmt.Sprintf("%q is not a whole number", s))
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func menuItems() []menuItem {
	w := os.Stdout
	all := aggregator.AllSeasons
	return []menuItem{
		{
			name: "rivalry", title: "Team vs team growth",
			fields: []field{{"Team 1", ""}, {"Team 2", ""}, {"Scorecards for season (a season, All, or 'no')", "no"}},
			run: func(ds *loader.Dataset, in []string) error {
				rows, err := compare.TeamVsTeam(ds, in[0], in[1])
				if err != nil {
					return err
				}
				cHeader.Println("\n--- Wins per season ---")
				report.PrintSeasonCounts(w, strings.ToUpper(in[0]), strings.ToUpper(in[1]), rows)
				if in[2] == "no" {
					return nil
				}
				return showScorecards(w, ds, in[0], in[1], in[2])
			},
		},
		{
			name: "bowlers", title: "Bowler comparison",
			fields: []field{{"Bowler 1", ""}, {"Bowler 2", ""}},
			run: func(ds *loader.Dataset, in []string) error {
				rows, err := compare.BowlerVsBowler(ds, in[0], in[1])
				if err != nil {
					return err
				}
				report.PrintSeasonCounts(w, strings.ToUpper(in[0]), strings.ToUpper(in[1]), rows)
				return nil
			},
		},
		{
			name: "season", title: "Season stats",
			fields: []field{{"Season", ""}, {"Team", ""}, {"Player", ""}},
			run: func(ds *loader.Dataset, in []string) error {
				s, err := aggregator.SeasonSummary(ds, in[0], in[1], in[2])
				if err != nil {
					return err
				}
				report.PrintSeasonSummary(w, s)
				return nil
			},
		},
		{
			name: "odds", title: "Winning probability (head-to-head)",
			fields: []field{{"Team 1", ""}, {"Team 2", ""}},
			run: func(ds *loader.Dataset, in []string) error {
				p, err := predict.HeadToHeadProbability(ds, in[0], in[1])
				if err != nil {
					return err
				}
				report.PrintH2HProbability(w, p)
				return nil
			},
		},
		{
			name: "top", title: "Top batsmen by strike rate",
			fields: []field{{"Minimum balls faced", "100"}},
			run: func(ds *loader.Dataset, in []string) error {
				minBalls, err := atoi("min balls", in[0])
				if err != nil {
					return err
				}
				rows, err := compare.TopStrikeRates(ds, minBalls, compare.DefaultTopN)
				if err != nil {
					return err
				}
				report.PrintRankedBatters(w, rows)
				return nil
			},
		},
		{
			name: "targets", title: "Highest targets set",
			fields: []field{{"How many", strconv.Itoa(compare.DefaultTopN)}},
			run: func(ds *loader.Dataset, in []string) error {
				n, err := atoi("count", in[0])
				if err != nil {
					return err
				}
				report.PrintTargets(w, compare.HighestTargets(ds, n))
				return nil
			},
		},
		{
			name: "vsteam", title: "Player vs team",
			fields: []field{{"Opponent team", ""}, {"Player", ""}, {"Second player (optional)", ""}},
			run: func(ds *loader.Dataset, in []string) error {
				if in[2] == "" {
					rec, err := compare.PlayerVsTeam(ds, in[1], in[0])
					if err != nil {
						return err
					}
					report.PrintPlayerVsTeam(w, rec)
					return nil
				}
				cmp, err := compare.ComparePlayersVsTeam(ds, in[1], in[2], in[0])
				if err != nil {
					return err
				}
				report.PrintComparison(w, cmp)
				return nil
			},
		},
		{
			name: "teams", title: "Overall team performance",
			fields: []field{{"Team (blank for all)", ""}, {"Season", all}},
			run: func(ds *loader.Dataset, in []string) error {
				if in[0] == "" {
					report.PrintTeamRecords(w, aggregator.AllTeamPerformance(ds))
					return nil
				}
				rec, err := aggregator.TeamPerformance(ds, in[0], aggregator.Filter{Season: in[1]})
				if err != nil {
					return err
				}
				report.PrintTeamRecords(w, []model.TeamRecord{rec})
				return nil
			},
		},
		{
			name: "predict", title: "Live match prediction",
			fields: []field{
				{"Batting team", ""}, {"Bowling team", ""}, {"Host city", ""},
				{"Weather (Clear, Rainy, Humid)", predict.WeatherClear},
				{"Target", "151"}, {"Score", "125"}, {"Overs completed", "16"}, {"Wickets out", "2"},
			},
			run: func(ds *loader.Dataset, in []string) error {
				live := predict.LiveInput{BattingTeam: in[0], BowlingTeam: in[1], City: in[2], Weather: in[3]}
				var err error
				if live.Target, err = atoi("target", in[4]); err != nil {
					return err
				}
				if live.Score, err = atoi("score", in[5]); err != nil {
					return err
				}
				if live.Overs, err = strconv.ParseFloat(in[6], 64); err != nil {
					return model.Invalid("overs", fmt.Sprintf("%q is not a number", in[6]))
				}
				if live.WicketsOut, err = atoi("wickets", in[7]); err != nil {
					return err
				}
				wp, err := predict.Estimate(ds, live)
				if err != nil {
					return err
				}
				report.PrintWinProbability(w, wp)
				return nil
			},
		},
		{
			name: "matchup", title: "Batsman vs bowler",
			fields: []field{{"Batsman", ""}, {"Bowler", ""}, {"Season", all}},
			run: func(ds *loader.Dataset, in []string) error {
				rep, err := compare.BatsmanVsBowler(ds, in[0], in[1], in[2])
				if err != nil {
					return err
				}
				report.PrintMatchup(w, rep)
				return nil
			},
		},
		{
			name: "best", title: "Choose the best",
			fields: []field{
				{"Batsman 1", ""}, {"Bowlers for batsman 1 (comma-separated)", ""},
				{"Batsman 2", ""}, {"Bowlers for batsman 2 (comma-separated)", ""},
			},
			run: func(ds *loader.Dataset, in []string) error {
				res, err := compare.ChooseBest(ds, compare.ChooseBestInput{
					Batter1: in[0], Bowlers1: splitList(in[1]),
					Batter2: in[2], Bowlers2: splitList(in[3]),
				})
				if err != nil && !errors.Is(err, model.ErrNoData) {
					return err
				}
				report.PrintPick(w, res)
				return err
			},
		},
		{
			name: "batting", title: "Batting stats",
			fields: []field{{"Player", ""}, {"Season", all}, {"Opponent", ""}, {"Venue", ""}},
			run: func(ds *loader.Dataset, in []string) error {
				s, err := aggregator.BattingStats(ds, in[0], aggregator.Filter{Season: in[1], Opponent: in[2], Venue: in[3]})
				if err != nil {
					return err
				}
				report.PrintBatting(w, s)
				return nil
			},
		},
		{
			name: "bowling", title: "Bowling stats",
			fields: []field{{"Bowler", ""}, {"Season", all}, {"Opponent", ""}, {"Venue", ""}},
			run: func(ds *loader.Dataset, in []string) error {
				s, err := aggregator.BowlingStats(ds, in[0], aggregator.Filter{Season: in[1], Opponent: in[2], Venue: in[3]})
				if err != nil {
					return err
				}
				report.PrintBowling(w, s)
				return nil
			},
		},
		{
			name: "form", title: "Recent team form",
			fields: []field{{"Team", ""}, {"Matches", strconv.Itoa(predict.FormWindow)}},
			run: func(ds *loader.Dataset, in []string) error {
				n, err := atoi("matches", in[1])
				if err != nil {
					return err
				}
				return showForm(w, ds, in[0], n)
			},
		},
		{
			name: "h2h", title: "Head-to-head record",
			fields: []field{{"Team 1", ""}, {"Team 2", ""}, {"Season", all}},
			run: func(ds *loader.Dataset, in []string) error {
				h, err := aggregator.HeadToHead(ds, in[0], in[1], aggregator.Filter{Season: in[2]})
				if err != nil {
					return err
				}
				report.PrintHeadToHead(w, h)
				return nil
			},
		},
	}
}
