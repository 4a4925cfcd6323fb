package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-ipl-metrics/internal/loader"
)

var listCmd = &cobra.Command{
	Use:       "list <teams|players|seasons|venues|cities>",
	Short:     "List the catalog values accepted by other commands",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"teams", "players", "seasons", "venues", "cities"},
	RunE:      runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	return showList(os.Stdout, ds, args[0])
}

func showList(w io.Writer, ds *loader.Dataset, what string) error {
	var values []string
	switch strings.ToLower(what) {
	case "teams":
		values = ds.Teams()
	case "players":
		values = ds.Players()
	case "seasons":
		values = ds.Seasons()
	case "venues":
		values = ds.Venues()
	case "cities":
		values = ds.Cities()
	default:
		return fmt.Errorf("unknown catalog %q: want teams, players, seasons, venues or cities", what)
	}
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
	fmt.Fprintf(w, "(%d %s)\n", len(values), what)
	return nil
}
