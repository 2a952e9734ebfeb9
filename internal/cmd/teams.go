package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// TeamsCommand represents the teams command group
type TeamsCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	listCmd   *TeamsListCommand
	createCmd *TeamsCreateCommand
	updateCmd *TeamsUpdateCommand
	deleteCmd *TeamsDeleteCommand
}

// NewTeamsCommand creates a new teams command
func NewTeamsCommand(root *RootCommand) *TeamsCommand {
	t := &TeamsCommand{
		root: root,
	}

	t.cmd = &cobra.Command{
		Use:   "teams",
		Short: "Manage teams",
		Long: `Manage Team Insight teams.

Examples:
  insight teams list
  insight teams create
  insight teams update <team-id> --name "Platform"
  insight teams delete <team-id>`,
	}

	t.listCmd = NewTeamsListCommand(t)
	t.createCmd = NewTeamsCreateCommand(t)
	t.updateCmd = NewTeamsUpdateCommand(t)
	t.deleteCmd = NewTeamsDeleteCommand(t)

	t.cmd.AddCommand(t.listCmd.Command())
	t.cmd.AddCommand(t.createCmd.Command())
	t.cmd.AddCommand(t.updateCmd.Command())
	t.cmd.AddCommand(t.deleteCmd.Command())

	return t
}

// Command returns the underlying cobra command
func (t *TeamsCommand) Command() *cobra.Command {
	return t.cmd
}

// Root returns the root command
func (t *TeamsCommand) Root() *RootCommand {
	return t.root
}

// TeamsListCommand represents the teams list command
type TeamsListCommand struct {
	parent *TeamsCommand
	cmd    *cobra.Command
}

// NewTeamsListCommand creates a new teams list command
func NewTeamsListCommand(parent *TeamsCommand) *TeamsListCommand {
	l := &TeamsListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List all teams",
		RunE:  l.Run,
	}

	return l
}

// Command returns the underlying cobra command
func (l *TeamsListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the teams list command
func (l *TeamsListCommand) Run(cmd *cobra.Command, args []string) error {
	teamService := l.parent.Root().Container().TeamService()

	teams, err := teamService.ListTeams(cmd.Context())
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "" {
		outputFormat, _ = cmd.Parent().Parent().PersistentFlags().GetString("output")
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(teams)
	}

	if len(teams) == 0 {
		fmt.Println("No teams found.")
		fmt.Println("\nCreate a new team with: insight teams create")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tMEMBERS\tDESCRIPTION")
	fmt.Fprintln(w, "--\t----\t-------\t-----------")

	for _, team := range teams {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n",
			team.ID,
			team.Name,
			team.MemberCount,
			team.Description,
		)
	}

	return w.Flush()
}

// TeamsCreateCommand represents the teams create command
type TeamsCreateCommand struct {
	parent *TeamsCommand
	cmd    *cobra.Command
}

// NewTeamsCreateCommand creates a new teams create command
func NewTeamsCreateCommand(parent *TeamsCommand) *TeamsCreateCommand {
	c := &TeamsCreateCommand{
		parent: parent,
	}

	c.cmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new team",
		Long: `Create a new team. Prompts for any fields not given as flags.

Examples:
  insight teams create
  insight teams create --name "Platform" --description "Platform engineering"`,
		RunE: c.Run,
	}

	c.cmd.Flags().String("name", "", "Team name")
	c.cmd.Flags().String("description", "", "Team description")

	return c
}

// Command returns the underlying cobra command
func (c *TeamsCreateCommand) Command() *cobra.Command {
	return c.cmd
}

// Run executes the teams create command
func (c *TeamsCreateCommand) Run(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	if name == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Team name:",
		}, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if description == "" && !cmd.Flags().Changed("description") {
		if err := survey.AskOne(&survey.Input{
			Message: "Description (optional):",
		}, &description); err != nil {
			return err
		}
	}

	teamService := c.parent.Root().Container().TeamService()

	team, err := teamService.CreateTeam(cmd.Context(), &iface.TeamInput{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Team \"%s\" created (ID: %s)\n", team.Name, team.ID)
	return nil
}

// TeamsUpdateCommand represents the teams update command
type TeamsUpdateCommand struct {
	parent *TeamsCommand
	cmd    *cobra.Command
}

// NewTeamsUpdateCommand creates a new teams update command
func NewTeamsUpdateCommand(parent *TeamsCommand) *TeamsUpdateCommand {
	u := &TeamsUpdateCommand{
		parent: parent,
	}

	u.cmd = &cobra.Command{
		Use:   "update <team-id>",
		Short: "Update a team",
		Long: `Update a team's name or description.

Examples:
  insight teams update team-123 --name "Platform"
  insight teams update team-123 --description "Platform engineering"`,
		Args: cobra.ExactArgs(1),
		RunE: u.Run,
	}

	u.cmd.Flags().String("name", "", "New team name")
	u.cmd.Flags().String("description", "", "New team description")

	return u
}

// Command returns the underlying cobra command
func (u *TeamsUpdateCommand) Command() *cobra.Command {
	return u.cmd
}

// Run executes the teams update command
func (u *TeamsUpdateCommand) Run(cmd *cobra.Command, args []string) error {
	teamID := args[0]

	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")

	if name == "" && description == "" {
		return fmt.Errorf("nothing to update: pass --name and/or --description")
	}

	teamService := u.parent.Root().Container().TeamService()

	team, err := teamService.UpdateTeam(cmd.Context(), teamID, &iface.TeamInput{
		Name:        name,
		Description: description,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Team \"%s\" updated.\n", team.Name)
	return nil
}

// TeamsDeleteCommand represents the teams delete command
type TeamsDeleteCommand struct {
	parent *TeamsCommand
	cmd    *cobra.Command
}

// NewTeamsDeleteCommand creates a new teams delete command
func NewTeamsDeleteCommand(parent *TeamsCommand) *TeamsDeleteCommand {
	d := &TeamsDeleteCommand{
		parent: parent,
	}

	d.cmd = &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a team",
		Long: `Delete a team by ID.

Examples:
  insight teams delete team-123
  insight teams delete team-123 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: d.Run,
	}

	d.cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return d
}

// Command returns the underlying cobra command
func (d *TeamsDeleteCommand) Command() *cobra.Command {
	return d.cmd
}

// Run executes the teams delete command
func (d *TeamsDeleteCommand) Run(cmd *cobra.Command, args []string) error {
	teamID := args[0]

	skipConfirm, _ := cmd.Flags().GetBool("yes")

	if !skipConfirm {
		var confirm bool
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Are you sure you want to delete team %q?", teamID),
			Default: false,
		}, &confirm); err != nil {
			return err
		}

		if !confirm {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	teamService := d.parent.Root().Container().TeamService()

	if err := teamService.DeleteTeam(cmd.Context(), teamID); err != nil {
		return err
	}

	fmt.Printf("✓ Team %q deleted.\n", teamID)
	return nil
}
