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

// userRoles lists the assignable account roles
var userRoles = []string{"admin", "member", "viewer"}

// UsersCommand represents the users command group
type UsersCommand struct {
	root *RootCommand
	cmd  *cobra.Command

	listCmd   *UsersListCommand
	createCmd *UsersCreateCommand
	updateCmd *UsersUpdateCommand
	deleteCmd *UsersDeleteCommand
}

// NewUsersCommand creates a new users command
func NewUsersCommand(root *RootCommand) *UsersCommand {
	u := &UsersCommand{
		root: root,
	}

	u.cmd = &cobra.Command{
		Use:   "users",
		Short: "Manage user accounts",
		Long: `Manage Team Insight user accounts.

Examples:
  insight users list
  insight users create
  insight users update <user-id> --role admin
  insight users delete <user-id>`,
	}

	u.listCmd = NewUsersListCommand(u)
	u.createCmd = NewUsersCreateCommand(u)
	u.updateCmd = NewUsersUpdateCommand(u)
	u.deleteCmd = NewUsersDeleteCommand(u)

	u.cmd.AddCommand(u.listCmd.Command())
	u.cmd.AddCommand(u.createCmd.Command())
	u.cmd.AddCommand(u.updateCmd.Command())
	u.cmd.AddCommand(u.deleteCmd.Command())

	return u
}

// Command returns the underlying cobra command
func (u *UsersCommand) Command() *cobra.Command {
	return u.cmd
}

// Root returns the root command
func (u *UsersCommand) Root() *RootCommand {
	return u.root
}

// UsersListCommand represents the users list command
type UsersListCommand struct {
	parent *UsersCommand
	cmd    *cobra.Command
}

// NewUsersListCommand creates a new users list command
func NewUsersListCommand(parent *UsersCommand) *UsersListCommand {
	l := &UsersListCommand{
		parent: parent,
	}

	l.cmd = &cobra.Command{
		Use:   "list",
		Short: "List all user accounts",
		RunE:  l.Run,
	}

	return l
}

// Command returns the underlying cobra command
func (l *UsersListCommand) Command() *cobra.Command {
	return l.cmd
}

// Run executes the users list command
func (l *UsersListCommand) Run(cmd *cobra.Command, args []string) error {
	userService := l.parent.Root().Container().UserService()

	users, err := userService.ListUsers(cmd.Context())
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
		return encoder.Encode(users)
	}

	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tTEAMS")
	fmt.Fprintln(w, "--\t----\t-----\t----\t-----")

	for _, user := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
			user.ID,
			user.Name,
			user.Email,
			user.Role,
			len(user.TeamIDs),
		)
	}

	return w.Flush()
}

// UsersCreateCommand represents the users create command
type UsersCreateCommand struct {
	parent *UsersCommand
	cmd    *cobra.Command
}

// NewUsersCreateCommand creates a new users create command
func NewUsersCreateCommand(parent *UsersCommand) *UsersCreateCommand {
	c := &UsersCreateCommand{
		parent: parent,
	}

	c.cmd = &cobra.Command{
		Use:   "create",
		Short: "Create a new user account",
		Long: `Create a new user account. Prompts for any fields not given as flags.

Examples:
  insight users create
  insight users create --name "Alice" --email alice@example.com --role member`,
		RunE: c.Run,
	}

	c.cmd.Flags().String("name", "", "User name")
	c.cmd.Flags().String("email", "", "User email")
	c.cmd.Flags().String("role", "", "User role (admin, member, viewer)")

	return c
}

// Command returns the underlying cobra command
func (c *UsersCreateCommand) Command() *cobra.Command {
	return c.cmd
}

// Run executes the users create command
func (c *UsersCreateCommand) Run(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	role, _ := cmd.Flags().GetString("role")

	if name == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Name:",
		}, &name, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if email == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Email:",
		}, &email, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	if role == "" {
		if err := survey.AskOne(&survey.Select{
			Message: "Role:",
			Options: userRoles,
			Default: "member",
		}, &role); err != nil {
			return err
		}
	}

	userService := c.parent.Root().Container().UserService()

	user, err := userService.CreateUser(cmd.Context(), &iface.UserInput{
		Name:  name,
		Email: email,
		Role:  role,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ User \"%s\" created (ID: %s)\n", user.Name, user.ID)
	return nil
}

// UsersUpdateCommand represents the users update command
type UsersUpdateCommand struct {
	parent *UsersCommand
	cmd    *cobra.Command
}

// NewUsersUpdateCommand creates a new users update command
func NewUsersUpdateCommand(parent *UsersCommand) *UsersUpdateCommand {
	u := &UsersUpdateCommand{
		parent: parent,
	}

	u.cmd = &cobra.Command{
		Use:   "update <user-id>",
		Short: "Update a user account",
		Long: `Update a user's name, email or role.

Examples:
  insight users update user-123 --role admin
  insight users update user-123 --name "Alice B." --email alice.b@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: u.Run,
	}

	u.cmd.Flags().String("name", "", "New user name")
	u.cmd.Flags().String("email", "", "New user email")
	u.cmd.Flags().String("role", "", "New user role (admin, member, viewer)")

	return u
}

// Command returns the underlying cobra command
func (u *UsersUpdateCommand) Command() *cobra.Command {
	return u.cmd
}

// Run executes the users update command
func (u *UsersUpdateCommand) Run(cmd *cobra.Command, args []string) error {
	userID := args[0]

	name, _ := cmd.Flags().GetString("name")
	email, _ := cmd.Flags().GetString("email")
	role, _ := cmd.Flags().GetString("role")

	if name == "" && email == "" && role == "" {
		return fmt.Errorf("nothing to update: pass --name, --email and/or --role")
	}

	userService := u.parent.Root().Container().UserService()

	user, err := userService.UpdateUser(cmd.Context(), userID, &iface.UserInput{
		Name:  name,
		Email: email,
		Role:  role,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ User \"%s\" updated.\n", user.Name)
	return nil
}

// UsersDeleteCommand represents the users delete command
type UsersDeleteCommand struct {
	parent *UsersCommand
	cmd    *cobra.Command
}

// NewUsersDeleteCommand creates a new users delete command
func NewUsersDeleteCommand(parent *UsersCommand) *UsersDeleteCommand {
	d := &UsersDeleteCommand{
		parent: parent,
	}

	d.cmd = &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Long: `Delete a user account by ID.

Examples:
  insight users delete user-123
  insight users delete user-123 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: d.Run,
	}

	d.cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")

	return d
}

// Command returns the underlying cobra command
func (d *UsersDeleteCommand) Command() *cobra.Command {
	return d.cmd
}

// Run executes the users delete command
func (d *UsersDeleteCommand) Run(cmd *cobra.Command, args []string) error {
	userID := args[0]

	skipConfirm, _ := cmd.Flags().GetBool("yes")

	if !skipConfirm {
		fmt.Printf("\n⚠️  WARNING: You are about to delete user %s.\n", userID)
		fmt.Println("  This action is IRREVERSIBLE. The account will be permanently deleted.")

		var confirm bool
		if err := survey.AskOne(&survey.Confirm{
			Message: fmt.Sprintf("Are you sure you want to delete user %q?", userID),
			Default: false,
		}, &confirm); err != nil {
			return err
		}

		if !confirm {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	userService := d.parent.Root().Container().UserService()

	if err := userService.DeleteUser(cmd.Context(), userID); err != nil {
		return err
	}

	fmt.Printf("✓ User %q deleted.\n", userID)
	return nil
}
