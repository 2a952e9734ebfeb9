// Package cmd provides the command-line interface for the Insight CLI.
// It contains all cobra commands and their implementations.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/team-insight/insight-cli/internal/di"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"
)

// RootCommand represents the root CLI command
type RootCommand struct {
	container *di.Container
	cmd       *cobra.Command

	// Subcommands
	loginCmd    *LoginCommand
	logoutCmd   *LogoutCommand
	whoamiCmd   *WhoAmICommand
	projectsCmd *ProjectsCommand
	tasksCmd    *TasksCommand
	teamsCmd    *TeamsCommand
	usersCmd    *UsersCommand
}

// NewRootCommand creates a new root command
func NewRootCommand() *RootCommand {
	r := &RootCommand{}

	r.cmd = &cobra.Command{
		Use:   "insight",
		Short: "Insight CLI - Command line interface for Team Insight",
		Long: `Insight CLI is a command-line tool for the Team Insight analytics service.

Team Insight syncs your Backlog projects, tasks and teams and exposes
workload and progress data for your organisation.

To get started, run:
  insight login          - Authenticate with your Backlog account
  insight projects list  - View your synced projects`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return r.initialize(cmd)
		},
	}

	// Global flags
	r.cmd.PersistentFlags().StringP("output", "o", "text", "Output format (text, json)")
	r.cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	r.loginCmd = NewLoginCommand(r)
	r.logoutCmd = NewLogoutCommand(r)
	r.whoamiCmd = NewWhoAmICommand(r)
	r.projectsCmd = NewProjectsCommand(r)
	r.tasksCmd = NewTasksCommand(r)
	r.teamsCmd = NewTeamsCommand(r)
	r.usersCmd = NewUsersCommand(r)

	r.cmd.AddCommand(r.loginCmd.Command())
	r.cmd.AddCommand(r.logoutCmd.Command())
	r.cmd.AddCommand(r.whoamiCmd.Command())
	r.cmd.AddCommand(r.projectsCmd.Command())
	r.cmd.AddCommand(r.tasksCmd.Command())
	r.cmd.AddCommand(r.teamsCmd.Command())
	r.cmd.AddCommand(r.usersCmd.Command())

	return r
}

// initialize sets up the DI container
func (r *RootCommand) initialize(cmd *cobra.Command) error {
	// Skip if container is already set (e.g., for testing)
	if r.container != nil {
		return nil
	}

	debug, _ := cmd.Flags().GetBool("debug")

	var err error
	r.container, err = di.NewContainer(debug)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return nil
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command returns the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Container returns the DI container
func (r *RootCommand) Container() *di.Container {
	return r.container
}

// SetContainer sets a custom container (for testing)
func (r *RootCommand) SetContainer(c *di.Container) {
	r.container = c
}

// Execute is the main entry point for the CLI
func Execute() error {
	root := NewRootCommand()
	return root.Execute()
}

// ExitWithError prints an error message and exits with code 1
func ExitWithError(msg string, err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	}
	os.Exit(1)
}
