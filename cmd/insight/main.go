// Package main is the entry point for the Insight CLI.
// Insight CLI provides command-line access to Team Insight,
// an analytics dashboard for Backlog projects, tasks and teams.
package main

import (
	"os"

	"github.com/team-insight/insight-cli/internal/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
