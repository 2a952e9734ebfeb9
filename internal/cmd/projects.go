package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// ProjectsCommand represents the projects command group
type ProjectsCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	listCmd *ProjectsListCommand
	getCmd  *ProjectsGetCommand
}

// NewProjectsCommand creates a new projects command
func NewProjectsCommand(root *RootCommand) *ProjectsCommand {
	p := &ProjectsCommand{
		root: root,
	}

	p.cmd = &cobra.Command{
		Use:   "projects",
		Short: "Manage synced Backlog projects",
		Long: `View projects synced from Backlog into Team Insight.

Examples:
  insight projects list
  insight projects get <project-id>`,
	}

	p.listCmd = NewProjectsListCommand(p)
	p.getCmd = NewProjectsGetCommand(p)

	p.cmd.AddCommand(p.listCmd.Command())
	p.cmd.AddCommand(p.getCmd.Command())

	return p
}

// Command returns the underlying cobra command
func (p *ProjectsCommand) Command() *cobra.Command {
	return p.cmd
}

// Root returns the root command
func (p *ProjectsCommand) Root() *RootCommand {
	return p.root
}

// ProjectsListCommand represents the projects list command
type ProjectsListCommand struct {
	parent *ProjectsCommand
	cmd    *cobra.Command
}

// NewProjectsListCommand creates a new projects list command
func NewProjectsListCommand(parent *ProjectsCommand) *ProjectsListCommand {
	l := &ProjectsListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List all synced projects",
		Long: `List all Backlog projects synced into Team Insight.

Examples:
  insight projects list
  insight projects list -o json`,
		RunE: l.Run,
	}

	return l
}

// Command returns the underlying cobra command
func (l *ProjectsListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the projects list command
func (l *ProjectsListCommand) Run(cmd *cobra.Command, args []string) error {
	projectService := l.parent.Root().Container().ProjectService()

	projects, err := projectService.ListProjects(cmd.Context())
	if err != nil {
		return err
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "" {
		outputFormat, _ = cmd.Parent().Parent().PersistentFlags().GetString("output")
	}

	switch outputFormat {
	case "json":
		return l.outputJSON(projects)
	default:
		return l.outputTable(projects)
	}
}

// outputJSON outputs projects in JSON format
func (l *ProjectsListCommand) outputJSON(projects []iface.Project) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(projects)
}

// outputTable outputs projects in table format
func (l *ProjectsListCommand) outputTable(projects []iface.Project) error {
	if len(projects) == 0 {
		fmt.Println("No projects found.")
		fmt.Println("\nProjects appear here once Backlog sync has run.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tNAME\tOPEN\tIN PROGRESS\tRESOLVED\tSYNCED")
	fmt.Fprintln(w, "--\t---\t----\t----\t-----------\t--------\t------")

	for _, p := range projects {
		synced := "-"
		if !p.SyncedAt.IsZero() {
			synced = p.SyncedAt.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
			p.ID,
			p.Key,
			p.Name,
			p.TaskCounts.Open,
			p.TaskCounts.InProgress,
			p.TaskCounts.Resolved,
			synced,
		)
	}

	return w.Flush()
}

// ProjectsGetCommand represents the projects get command
type ProjectsGetCommand struct {
	parent *ProjectsCommand
	cmd    *cobra.Command
}

// NewProjectsGetCommand creates a new projects get command
func NewProjectsGetCommand(parent *ProjectsCommand) *ProjectsGetCommand {
	g := &ProjectsGetCommand{
		parent: parent,
	}

	g.cmd = &cobra.Command{
		Use:   "get <project-id>",
		Short: "Get a project by ID",
		Long: `Get detailed information about a specific project.

Examples:
  insight projects get 5f809f2f-0787-40ca-9a43-a3a59edb5400
  insight projects get 5f809f2f-0787-40ca-9a43-a3a59edb5400 -o json`,
		Args: cobra.ExactArgs(1),
		RunE: g.Run,
	}

	return g
}

// Command returns the underlying cobra command
func (g *ProjectsGetCommand) Command() *cobra.Command {
	return g.cmd
}

// Run executes the projects get command
func (g *ProjectsGetCommand) Run(cmd *cobra.Command, args []string) error {
	projectID := args[0]

	projectService := g.parent.Root().Container().ProjectService()

	project, err := projectService.GetProject(cmd.Context(), projectID)
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
		return encoder.Encode(project)
	}

	fmt.Printf("ID:          %s\n", project.ID)
	fmt.Printf("Key:         %s\n", project.Key)
	fmt.Printf("Name:        %s\n", project.Name)
	if project.Description != "" {
		fmt.Printf("Description: %s\n", project.Description)
	}
	fmt.Printf("Tasks:       %d open, %d in progress, %d resolved, %d closed\n",
		project.TaskCounts.Open,
		project.TaskCounts.InProgress,
		project.TaskCounts.Resolved,
		project.TaskCounts.Closed,
	)
	if !project.SyncedAt.IsZero() {
		fmt.Printf("Last sync:   %s\n", project.SyncedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
