package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	iface "github.com/team-insight/insight-cli/internal/service/interface"
)

// TasksCommand represents the tasks command group
type TasksCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	listCmd *TasksListCommand
}

// NewTasksCommand creates a new tasks command
func NewTasksCommand(root *RootCommand) *TasksCommand {
	t := &TasksCommand{
		root: root,
	}

	t.cmd = &cobra.Command{
		Use:   "tasks",
		Short: "View synced Backlog tasks",
		Long: `View tasks synced from Backlog into Team Insight.

Examples:
  insight tasks list
  insight tasks list --project PROJ-1 --status open`,
	}

	t.listCmd = NewTasksListCommand(t)
	t.cmd.AddCommand(t.listCmd.Command())

	return t
}

// Command returns the underlying cobra command
func (t *TasksCommand) Command() *cobra.Command {
	return t.cmd
}

// Root returns the root command
func (t *TasksCommand) Root() *RootCommand {
	return t.root
}

// TasksListCommand represents the tasks list command
type TasksListCommand struct {
	parent *TasksCommand
	cmd    *cobra.Command
}

// NewTasksListCommand creates a new tasks list command
func NewTasksListCommand(parent *TasksCommand) *TasksListCommand {
	l := &TasksListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List synced tasks, optionally filtered by project, assignee or status.

Examples:
  insight tasks list
  insight tasks list --project proj-123
  insight tasks list --assignee alice --status in_progress`,
		RunE: l.Run,
	}

	l.cmd.Flags().String("project", "", "Filter by project ID")
	l.cmd.Flags().String("assignee", "", "Filter by assignee")
	l.cmd.Flags().String("status", "", "Filter by status (open, in_progress, resolved, closed)")

	return l
}

// Command returns the underlying cobra command
func (l *TasksListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the tasks list command
func (l *TasksListCommand) Run(cmd *cobra.Command, args []string) error {
	taskService := l.parent.Root().Container().TaskService()

	projectID, _ := cmd.Flags().GetString("project")
	assignee, _ := cmd.Flags().GetString("assignee")
	status, _ := cmd.Flags().GetString("status")

	tasks, err := taskService.ListTasks(cmd.Context(), iface.TaskFilter{
		ProjectID: projectID,
		Assignee:  assignee,
		Status:    status,
	})
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
		return encoder.Encode(tasks)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tSTATUS\tASSIGNEE\tPRIORITY\tDUE")
	fmt.Fprintln(w, "---\t-----\t------\t--------\t--------\t---")

	for _, task := range tasks {
		assignee := task.Assignee
		if assignee == "" {
			assignee = "-"
		}
		due := task.DueDate
		if due == "" {
			due = "-"
		}
		priority := task.Priority
		if priority == "" {
			priority = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.Key,
			task.Title,
			task.Status,
			assignee,
			priority,
			due,
		)
	}

	return w.Flush()
}
