package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
	"github.com/pable/go-ipl-metrics/internal/loader"
	"github.com/pable/go-ipl-metrics/internal/model"
	"github.com/pable/go-ipl-metrics/internal/predict"
)

const analyzeSystemPrompt = `You are an IPL cricket analyst. You are given structured statistics computed
from the IPL ball-by-ball dataset and a question from the user.

Rules:
- Answer ONLY from the data provided. Never invent or estimate statistics.
- Always cite specific numbers when making a claim.
- If the data is insufficient to answer confidently, say so explicitly.
- Be concise. Prefer comparisons across seasons or opponents over general commentary.

Metrics glossary:
- Strike rate: runs per 100 legal balls faced (wides excluded).
- Batting average: runs per dismissal. "N/A" means never dismissed in the selection.
- Economy: runs conceded per over. Byes count against the bowler; leg-byes do not.
- Bowling average: runs conceded per wicket. Strike rate (bowling): balls per wicket.
- Wickets credited to bowlers exclude run outs and other fielding dismissals.
- Best figures are "wickets/runs" in a single match.
- Form: results over the team's last five matches.`

var (
	analyzeModel  string
	analyzeAPIKey string
	analyzeSeason string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "AI-powered grounded analysis (requires ANTHROPIC_API_KEY)",
}

var analyzePlayerCmd = &cobra.Command{
	Use:   "player <name> <question>",
	Short: "Analyze a player's batting and bowling with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzePlayer,
}

var analyzeTeamCmd = &cobra.Command{
	Use:   "team <team> <question>",
	Short: "Analyze a team's record, form and rivalries with AI",
	Args:  cobra.ExactArgs(2),
	RunE:  runAnalyzeTeam,
}

func init() {
	analyzeCmd.PersistentFlags().StringVar(&analyzeModel, "model", cfg.Analyze.Model, "Anthropic model to use")
	analyzeCmd.PersistentFlags().StringVar(&analyzeAPIKey, "api-key", "", "Anthropic API key (falls back to $ANTHROPIC_API_KEY)")

	analyzePlayerCmd.Flags().StringVar(&analyzeSeason, "season", aggregator.AllSeasons, "restrict the aggregate to one season")

	analyzeCmd.AddCommand(analyzePlayerCmd)
	analyzeCmd.AddCommand(analyzeTeamCmd)
}

func runAnalyzePlayer(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	contextJSON, err := buildPlayerContext(ds, args[0], analyzeSeason)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, contextJSON, args[1])
}

func runAnalyzeTeam(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	doc, err := teamProfile(ds, args[0])
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("build context: %w", err)
	}
	return callAnthropic(cmd.Context(), analyzeAPIKey, analyzeModel, string(b), args[1])
}

// buildPlayerContext serialises a player's aggregate and per-season numbers
// into compact JSON. Either discipline may be absent.
func buildPlayerContext(ds *loader.Dataset, player, season string) (string, error) {
	f := aggregator.Filter{Season: season}
	bat, batErr := aggregator.BattingStats(ds, player, f)
	bowl, bowlErr := aggregator.BowlingStats(ds, player, f)
	if batErr != nil && bowlErr != nil {
		if errors.Is(batErr, model.ErrNoData) && errors.Is(bowlErr, model.ErrNoData) {
			return "", model.NoData("no batting or bowling found for %s", player)
		}
		return "", batErr
	}

	doc := map[string]interface{}{
		"subject": "player",
		"player":  player,
		"season":  season,
	}
	if batErr == nil {
		doc["batting"] = battingEntry(bat)
	}
	if bowlErr == nil {
		doc["bowling"] = bowlingEntry(bowl)
	}

	var seasons []map[string]interface{}
	for _, s := range ds.Seasons() {
		if season != aggregator.AllSeasons && season != "" && s != season {
			continue
		}
		entry := map[string]interface{}{"season": s}
		if b, err := aggregator.BattingStats(ds, player, aggregator.Filter{Season: s}); err == nil {
			entry["batting"] = battingEntry(b)
		}
		if b, err := aggregator.BowlingStats(ds, player, aggregator.Filter{Season: s}); err == nil {
			entry["bowling"] = bowlingEntry(b)
		}
		if len(entry) > 1 {
			seasons = append(seasons, entry)
		}
	}
	doc["by_season"] = seasons

	b, err := json.Marshal(doc)
	return string(b), err
}

func battingEntry(s model.BattingStats) map[string]interface{} {
	return map[string]interface{}{
		"innings":     s.Innings,
		"runs":        s.Runs,
		"balls":       s.Balls,
		"fours":       s.Fours,
		"sixes":       s.Sixes,
		"dismissals":  s.Dismissals,
		"strike_rate": s.StrikeRate,
		"average":     s.Average,
		"fifties":     s.Fifties,
		"centuries":   s.Centuries,
		"high_score":  s.HighScore,
		"awards":      s.MatchAwards,
	}
}

func bowlingEntry(s model.BowlingStats) map[string]interface{} {
	return map[string]interface{}{
		"innings":       s.Innings,
		"overs":         model.OversNotation(s.Balls),
		"wickets":       s.Wickets,
		"runs_conceded": s.RunsConceded,
		"economy":       s.Economy,
		"average":       s.Average,
		"strike_rate":   s.StrikeRate,
		"three_wickets": s.ThreeWickets,
		"four_wickets":  s.FourWickets,
		"five_wickets":  s.FiveWickets,
		"best":          s.Best.String(),
		"awards":        s.MatchAwards,
	}
}

// teamProfile gathers a team's all-time and per-season records, recent form
// and head-to-head records against every side it has met.
func teamProfile(ds *loader.Dataset, team string) (map[string]interface{}, error) {
	rec, err := aggregator.TeamPerformance(ds, team, aggregator.Filter{})
	if err != nil {
		return nil, err
	}
	if rec.Played == 0 {
		return nil, model.NoData("%s has not played a match", team)
	}

	form := predict.TeamForm(ds, team, predict.FormWindow)
	players := predict.PlayerForm(ds, team, predict.FormWindow)

	var seasons []map[string]interface{}
	for _, s := range ds.Seasons() {
		r, err := aggregator.TeamPerformance(ds, team, aggregator.Filter{Season: s})
		if err != nil || r.Played == 0 {
			continue
		}
		seasons = append(seasons, map[string]interface{}{
			"season": s, "played": r.Played, "wins": r.Wins, "losses": r.Losses,
			"ties": r.Ties, "no_results": r.NoResults, "win_pct": r.WinPct,
		})
	}

	var rivals []map[string]interface{}
	for _, other := range ds.Teams() {
		if other == team {
			continue
		}
		h, err := aggregator.HeadToHead(ds, team, other, aggregator.Filter{})
		if err != nil {
			continue
		}
		rivals = append(rivals, map[string]interface{}{
			"opponent": other, "matches": h.Matches, "wins": h.WinsA, "losses": h.WinsB,
			"ties": h.Ties, "no_results": h.NoResults, "highest": h.HighestA, "opponent_highest": h.HighestB,
		})
	}

	var batters []map[string]interface{}
	for _, b := range players.TopBatters {
		batters = append(batters, map[string]interface{}{
			"batter": b.Batter, "runs": b.Runs, "balls": b.Balls, "strike_rate": b.StrikeRate,
		})
	}
	var bowlers []map[string]interface{}
	for _, b := range players.TopBowlers {
		bowlers = append(bowlers, map[string]interface{}{
			"bowler": b.Bowler, "wickets": b.Wickets, "runs_conceded": b.RunsConceded, "economy": b.Economy,
		})
	}

	return map[string]interface{}{
		"subject": "team",
		"team":    team,
		"overall": map[string]interface{}{
			"played": rec.Played, "wins": rec.Wins, "losses": rec.Losses,
			"ties": rec.Ties, "no_results": rec.NoResults, "win_pct": rec.WinPct,
		},
		"recent_form": map[string]interface{}{
			"matches":      form.Matches,
			"win_rate":     model.Round2(form.WinRate),
			"avg_runs":     model.Round2(form.AvgRuns),
			"avg_wickets":  model.Round2(form.AvgWickets),
			"batting_form": model.Round2(players.BattingForm),
			"bowling_form": model.Round2(players.BowlingForm),
			"top_batters":  batters,
			"top_bowlers":  bowlers,
		},
		"by_season":    seasons,
		"head_to_head": rivals,
	}, nil
}

// callAnthropic streams a response from the Anthropic API and prints it to stdout.
func callAnthropic(ctx context.Context, apiKey, modelID, dataJSON, question string) error {
	if apiKey == "" {
		apiKey = cfg.Analyze.APIKey
	}
	if apiKey == "" {
		return fmt.Errorf("no API key: set ANTHROPIC_API_KEY or use --api-key")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	userMsg := fmt.Sprintf("DATA:\n%s\n\nQUESTION: %s", dataJSON, question)

	fmt.Fprintln(os.Stdout, "\n─── AI Analysis ─────────────────────────────────────")

	stream := client.Messages.NewStreaming(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: analyzeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMsg)),
		},
	})

	for stream.Next() {
		evt := stream.Current()
		if evt.Type == "content_block_delta" {
			delta := evt.AsContentBlockDelta()
			if delta.Delta.Type == "text_delta" {
				fmt.Fprint(os.Stdout, delta.Delta.AsTextDelta().Text)
			}
		}
	}
	fmt.Fprintln(os.Stdout, "\n─────────────────────────────────────────────────────")

	if err := stream.Err(); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "401") || strings.Contains(errStr, "authentication") {
			return fmt.Errorf("API authentication failed, check your API key")
		}
		return fmt.Errorf("streaming error: %w", err)
	}
	return nil
}
