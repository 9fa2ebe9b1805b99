package server

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"ssh-roads/internal/config"
	"ssh-roads/internal/connect"
	"ssh-roads/internal/database"
	"ssh-roads/internal/servers"

	"github.com/spf13/cobra"
)

const fixtureJSON = `{
  "servers": [
    {"key": "a", "name": "Box", "ip": "1.2.3.4", "port": "22", "conn_type": "password", "user": "u", "comment": "", "pswd": "$MYPASS"},
    {"key": "b", "name": "Backup", "ip": "5.6.7.8", "port": "2222", "conn_type": "password", "user": "root", "comment": "nightly", "pswd": "plain"},
    {"key": "g", "name": "VM", "ip": "", "port": "", "conn_type": "gcp", "user": "ops", "comment": "", "gcp_project": "proj", "gcp_zone": "europe-west1-b", "gcp_vm_name": "vm-1"},
    {"key": "f", "name": "Files", "ip": "9.9.9.9", "port": "21", "conn_type": "ftp", "user": "x", "comment": ""}
  ]
}`

// recordingRunner captures commands instead of executing them.
type recordingRunner struct {
	calls   []connect.Command
	results []error
}

func (r *recordingRunner) Run(_ context.Context, c connect.Command) error {
	r.calls = append(r.calls, c)
	if len(r.results) == 0 {
		return nil
	}
	err := r.results[0]
	r.results = r.results[1:]
	return err
}

// isolate points HOME, the working directory and every persisted path at
// fresh temp locations and writes content as servers.json.
func isolate(t *testing.T, content string) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	dir := t.TempDir()
	path := filepath.Join(dir, servers.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write servers.json: %v", err)
	}
	servers.SetPath(path)
	t.Cleanup(servers.ResetPath)

	database.SetPath(filepath.Join(dir, "history.db"))
	t.Cleanup(database.ResetPath)

	config.SetPath(filepath.Join(dir, "settings.json"))
	t.Cleanup(config.ResetPath)

	return dir
}

// stdinWith returns a regular file holding content, standing in for a
// piped stdin.
func stdinWith(t *testing.T, content string) *os.File {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stdin")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write stdin: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open stdin: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

// execute wires output buffers into cmd, runs it with args and returns
// what was written to stdout and stderr along with the error.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

// menuCommand mirrors the root command's wiring of RunMenu.
func menuCommand(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:  "ssh-roads [route]",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunMenu(cmd, opts, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
