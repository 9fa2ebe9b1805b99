package config

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"ssh-roads/internal/config"
)

// setupTestConfig points the config package at a temp file.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	config.SetPath(path)
	t.Cleanup(config.ResetPath)
	return path
}

// execConfig creates the config command, wires up output buffers, runs with the
// given args, and returns what was written to stdout and stderr.
func execConfig(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestSet_History(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "history", "off")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"off"`) {
		t.Errorf("expected confirmation with value, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.History != "off" {
		t.Errorf("expected History %q, got %q", "off", cfg.History)
	}
}

func TestSet_History_CaseInsensitive(t *testing.T) {
	setupTestConfig(t)

	stdout, stderr := execConfig(t, "set", "HISTORY", "OFF")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, `"off"`) {
		t.Errorf("expected normalized value, got: %s", stdout)
	}
}

func TestSet_History_InvalidValue(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "history", "sometimes")

	if !strings.Contains(stderr, "must be on or off") {
		t.Errorf("expected validation error, got: %s", stderr)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.History != "" {
		t.Errorf("invalid value was persisted: %q", cfg.History)
	}
}

func TestSet_ExpectTimeout(t *testing.T) {
	setupTestConfig(t)

	execConfig(t, "set", "expect-timeout", "30")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ExpectTimeoutSeconds() != 30 {
		t.Errorf("expected 30 seconds, got %d", cfg.ExpectTimeoutSeconds())
	}
}

func TestSet_ExpectTimeout_Negative(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "expect-timeout", "-3")

	if !strings.Contains(stderr, "whole number of seconds") {
		t.Errorf("expected validation error, got: %s", stderr)
	}
}

func TestSet_Clear(t *testing.T) {
	path := setupTestConfig(t)

	if err := (&config.Config{ExpectTimeout: "30"}).SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	stdout, _ := execConfig(t, "set", "expect-timeout")
	if !strings.Contains(stdout, "cleared") {
		t.Errorf("expected cleared message, got: %s", stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.ExpectTimeout != "" {
		t.Errorf("expected empty ExpectTimeout, got %q", cfg.ExpectTimeout)
	}
}

func TestSet_UnknownKey(t *testing.T) {
	setupTestConfig(t)

	_, stderr := execConfig(t, "set", "bogus-key", "value")

	if !strings.Contains(stderr, "unknown configuration key") {
		t.Errorf("expected 'unknown configuration key' error, got: %s", stderr)
	}
}
