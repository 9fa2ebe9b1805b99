// Package config implements the "config" command group.
package config

import (
	"ssh-roads/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage ssh-roads settings",
		Long: "View and modify persistent ssh-roads settings.\n\n" +
			"Settings are stored at ~/.ssh-roads/settings.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
