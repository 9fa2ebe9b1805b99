// Package server implements the commands that read servers.json: the
// connect flow, list and check.
package server

import (
	"fmt"
	"io"
	"os"

	"ssh-roads/internal/config"
	"ssh-roads/internal/connect"
	"ssh-roads/internal/servers"
	"ssh-roads/internal/tui/styles"

	"github.com/spf13/cobra"
)

// Options carries the process-level collaborators of the connect flow so
// tests can swap them out.
type Options struct {
	// Runner starts ssh, expect and gcloud. Defaults to connect.ExecRunner.
	Runner connect.Runner

	// Stdin is read for the route when none is given. Defaults to os.Stdin.
	Stdin *os.File
}

func (o Options) runner() connect.Runner {
	if o.Runner != nil {
		return o.Runner
	}
	return connect.ExecRunner{}
}

func (o Options) stdin() *os.File {
	if o.Stdin != nil {
		return o.Stdin
	}
	return os.Stdin
}

// loadServers loads .env and then servers.json. A broken .env is reported
// as a warning; a broken servers.json is fatal.
func loadServers(cmd *cobra.Command) (*servers.File, error) {
	if err := servers.LoadEnv(); err != nil {
		warn(cmd.ErrOrStderr(), err.Error())
	}

	set, err := servers.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return set, nil
}

// loadPrefs returns the saved preferences, or zero values when the
// settings file cannot be read.
func loadPrefs(cmd *cobra.Command) *config.Config {
	cfg, err := config.Load()
	if err != nil {
		warn(cmd.ErrOrStderr(), err.Error())
		return &config.Config{}
	}
	return cfg
}

func warn(w io.Writer, msg string) {
	fmt.Fprintln(w, styles.WarningText.Render("Warning: "+msg))
}
