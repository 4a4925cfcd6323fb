package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/aggregator"
)

// addFilterFlags binds the common selection flags to f.
func addFilterFlags(c *cobra.Command, f *aggregator.Filter) {
	c.Flags().StringVar(&f.Season, "season", aggregator.AllSeasons, "season label, or All")
	c.Flags().StringVar(&f.Team, "team", "", "only deliveries where this team batted (batting) or bowled (bowling)")
	c.Flags().StringVar(&f.Opponent, "opponent", "", "only deliveries against this team")
	c.Flags().StringVar(&f.Venue, "venue", "", "only matches at this venue")
}
