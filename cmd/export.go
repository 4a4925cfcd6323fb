package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <team>",
	Short: "Export a team profile as JSON",
	Long: `Write a team's all-time and per-season records, recent team and player form,
and head-to-head records against every opponent as a JSON document. This is
the same profile 'analyze team' sends to the model.

Example:
  iplmetrics export "Kolkata Knight Riders" --out kkr.json`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file path (default: stdout)")
}

func runExport(_ *cobra.Command, args []string) error {
	ds, err := openDataset()
	if err != nil {
		return err
	}
	doc, err := teamProfile(ds, args[0])
	if err != nil {
		return err
	}
	doc["generated_at"] = time.Now().UTC().Format(time.RFC3339)

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	b = append(b, '\n')

	if exportOut == "" {
		_, err = os.Stdout.Write(b)
		return err
	}
	if err := os.WriteFile(exportOut, b, 0644); err != nil {
		return fmt.Errorf("write %s: %w", exportOut, err)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", exportOut)
	return nil
}
