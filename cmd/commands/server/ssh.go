package server

import (
	"time"

	"ssh-roads/internal/connect"
	"ssh-roads/internal/history"
	"ssh-roads/internal/menu"
	"ssh-roads/internal/placeholder"
	"ssh-roads/internal/servers"
	"ssh-roads/internal/tui"

	"github.com/spf13/cobra"
)

// SSHCommand returns a cobra.Command that connects straight to a route
// without printing the menu.
func SSHCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ssh <route>",
		Short: "Connect to a server without showing the menu",
		Long: `Connect to the server whose key matches <route>.

Password entries are logged in through expect(1) when it is installed, and
through an interactive ssh otherwise. gcp entries use 'gcloud compute ssh'.

Examples:
  ssh-roads ssh web1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := loadServers(cmd)
			if err != nil {
				return err
			}
			return Connect(cmd, opts, set, args[0])
		},
		SilenceUsage: true,
	}

	return cmd
}

// RunMenu prints the menu, asks for a route when none was given, and
// connects. It backs the root command.
func RunMenu(cmd *cobra.Command, opts Options, args []string) error {
	set, err := loadServers(cmd)
	if err != nil {
		return err
	}

	resolver := placeholder.New(cmd.ErrOrStderr())
	menu.Present(cmd.OutOrStdout(), set.Servers, resolver)

	var route string
	if len(args) > 0 {
		route = args[0]
	} else {
		route, err = tui.PromptRoute(opts.stdin(), cmd.OutOrStdout(), set.Keys())
		if err != nil {
			return err
		}
	}

	return Connect(cmd, opts, set, route)
}

// Connect dispatches route and records the attempt in the history.
func Connect(cmd *cobra.Command, opts Options, set *servers.File, route string) error {
	prefs := loadPrefs(cmd)

	d := &connect.Dispatcher{
		Runner:        opts.runner(),
		Resolver:      placeholder.New(cmd.ErrOrStderr()),
		Out:           cmd.OutOrStdout(),
		ExpectTimeout: prefs.ExpectTimeoutSeconds(),
	}

	start := time.Now()
	target, err := d.Connect(cmd.Context(), set, route)

	if prefs.HistoryEnabled() {
		history.Record(history.NewEntry(cmd.CommandPath(), route, target.Name, target.ConnType.String(), start, err))
	}
	return err
}
