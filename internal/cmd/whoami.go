package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// WhoAmICommand represents the whoami command
type WhoAmICommand struct {
	root *RootCommand
	cmd  *cobra.Command
}

// NewWhoAmICommand creates a new whoami command
func NewWhoAmICommand(root *RootCommand) *WhoAmICommand {
	w := &WhoAmICommand{
		root: root,
	}

	w.cmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show the currently authenticated user",
		Long: `Show the identity of the current Team Insight session.

When no session exists this reports "not logged in" without error.

Example:
  insight whoami`,
		RunE: w.Run,
	}

	return w
}

// Command returns the underlying cobra command
func (w *WhoAmICommand) Command() *cobra.Command {
	return w.cmd
}

// Run executes the whoami command
func (w *WhoAmICommand) Run(cmd *cobra.Command, args []string) error {
	authService := w.root.Container().AuthService()

	identity, err := authService.WhoAmI(cmd.Context())
	if err != nil {
		return err
	}

	if identity == nil {
		fmt.Println("Not logged in. Run 'insight login' to authenticate.")
		return nil
	}

	outputFormat, _ := cmd.Flags().GetString("output")
	if outputFormat == "" {
		outputFormat, _ = cmd.Root().PersistentFlags().GetString("output")
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(identity)
	}

	fmt.Printf("Logged in as %s <%s> (role: %s)\n", identity.Name, identity.Email, identity.Role)
	return nil
}
