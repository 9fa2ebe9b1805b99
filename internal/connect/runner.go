package connect

import (
	"context"
	"os"
	"os/exec"
)

// Command is an external process invocation.
type Command struct {
	Name string
	Args []string

	// Env holds KEY=VALUE pairs appended to the parent environment.
	// Secrets travel here, never in Args.
	Env []string
}

// Runner starts a Command attached to the terminal and waits for it.
// Implementations return an error wrapping exec.ErrNotFound when the
// executable is not on PATH.
type Runner interface {
	Run(ctx context.Context, c Command) error
}

// ExecRunner runs commands with os/exec, inheriting stdin, stdout and
// stderr so the child owns the terminal until it exits.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	return cmd.Run()
}
