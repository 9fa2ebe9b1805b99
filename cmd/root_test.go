package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ssh-roads/cmd/commands/server"
	"ssh-roads/internal/config"
	"ssh-roads/internal/connect"
	"ssh-roads/internal/database"
	"ssh-roads/internal/domain"
	"ssh-roads/internal/servers"
)

type recordingRunner struct {
	calls []connect.Command
}

func (r *recordingRunner) Run(_ context.Context, c connect.Command) error {
	r.calls = append(r.calls, c)
	return nil
}

func setup(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
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
	content := `{"servers": [
		{"key": "a", "name": "Box", "ip": "1.2.3.4", "port": 22, "conn_type": "password", "user": "u", "comment": "", "pswd": "x"},
		{"key": "list", "name": "Shadowed", "ip": "5.6.7.8", "port": "22", "conn_type": "password", "user": "u", "comment": ""}
	]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write servers.json: %v", err)
	}
	servers.SetPath(path)
	t.Cleanup(servers.ResetPath)
	database.SetPath(filepath.Join(dir, "history.db"))
	t.Cleanup(database.ResetPath)
	config.SetPath(filepath.Join(dir, "settings.json"))
	t.Cleanup(config.ResetPath)
}

func run(t *testing.T, opts server.Options, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand(opts)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_RouteArgument(t *testing.T) {
	setup(t)
	runner := &recordingRunner{}

	out, err := run(t, server.Options{Runner: runner}, "a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "You chose Box 1.2.3.4") {
		t.Errorf("expected confirmation line, got:\n%s", out)
	}
	if len(runner.calls) != 1 || runner.calls[0].Name != connect.ExpectBinary {
		t.Errorf("expected one expect call, got %+v", runner.calls)
	}
}

func TestRoot_SubcommandShadowsRoute(t *testing.T) {
	setup(t)
	runner := &recordingRunner{}

	out, err := run(t, server.Options{Runner: runner}, "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected list to run without connecting, got %+v", runner.calls)
	}
	if !strings.Contains(out, "Shadowed") {
		t.Errorf("expected menu output, got:\n%s", out)
	}
}

func TestRoot_SSHSubcommandReachesShadowedRoute(t *testing.T) {
	setup(t)
	runner := &recordingRunner{}

	if _, err := run(t, server.Options{Runner: runner}, "ssh", "list"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected one call, got %d", len(runner.calls))
	}
}

func TestRoot_UnknownRoute(t *testing.T) {
	setup(t)

	_, err := run(t, server.Options{Runner: &recordingRunner{}}, "nope")
	if !errors.Is(err, domain.ErrServerNotFound) {
		t.Fatalf("expected ErrServerNotFound, got %v", err)
	}
}

func TestRoot_TooManyArgs(t *testing.T) {
	setup(t)

	if _, err := run(t, server.Options{Runner: &recordingRunner{}}, "a", "b"); err == nil {
		t.Fatal("expected error for two routes")
	}
}
