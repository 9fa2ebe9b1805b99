package cmd

import (
	"fmt"
	"os"

	cfgcmd "ssh-roads/cmd/commands/config"
	"ssh-roads/cmd/commands/history"
	"ssh-roads/cmd/commands/server"
	"ssh-roads/internal/tui/styles"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the command tree. Running it without a subcommand
// shows the server menu.
func NewRootCommand(opts server.Options) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "ssh-roads [route]",
		Short: "Pick a server from a menu and connect to it",
		Long: `ssh-roads reads a list of servers from servers.json, prints them as a
menu and opens an interactive session on the one you pick.

servers.json and .env are looked up in ~/.ssh-roads first and then in the
current directory. Any field value starting with "$" is replaced by the
environment variable of that name.

Quick start:
  ssh-roads                # show the menu and ask for a route
  ssh-roads web1           # show the menu and connect to web1
  ssh-roads list           # print the menu only
  ssh-roads check          # find mistakes in servers.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.RunMenu(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(server.SSHCommand(opts))
	cmd.AddCommand(server.ListCommand())
	cmd.AddCommand(server.CheckCommand())
	cmd.AddCommand(history.NewCommand())
	cmd.AddCommand(cfgcmd.NewCommand())

	return cmd
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	root := NewRootCommand(server.Options{})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), styles.ErrorLine(err))
		os.Exit(1)
	}
}
