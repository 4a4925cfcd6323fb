// Package main is the entry point for the iplmetrics CLI tool, which loads
// IPL ball-by-ball data and computes player, team and match statistics.
package main

import "github.com/pable/go-ipl-metrics/cmd"

func main() {
	cmd.Execute()
}
