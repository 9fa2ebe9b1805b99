// Package history implements the "history" command group.
package history

import "github.com/spf13/cobra"

// NewCommand returns the "history" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "View and manage connection history",
		Long: "View the local log of connection attempts and prune old entries.\n\n" +
			"History is stored in ~/.ssh-roads/history.db. Disable it with\n" +
			"'ssh-roads config set history off'.",
		SilenceUsage: true,
	}

	cmd.AddCommand(ListCommand())
	cmd.AddCommand(PruneCommand())

	return cmd
}
