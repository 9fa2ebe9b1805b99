// Package connect launches the external program that opens a session to a
// configured server.
//
// Password entries are driven through expect(1) so the password is typed
// for the user; gcp entries go through `gcloud compute ssh`. The dispatcher
// never talks SSH itself and never retries: the result is the exit status
// of the one child process it starts.
package connect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"

	"ssh-roads/internal/domain"
	"ssh-roads/internal/placeholder"
	"ssh-roads/internal/servers"
	"ssh-roads/internal/tui/styles"
)

// Executables looked up on PATH.
const (
	SSHBinary    = "ssh"
	ExpectBinary = "expect"
	GCloudBinary = "gcloud"
)

// Dispatcher resolves a route key and starts the matching connection.
type Dispatcher struct {
	Runner   Runner
	Resolver *placeholder.Resolver

	// Out receives the "You chose ..." confirmation line.
	Out io.Writer

	// ExpectTimeout, when positive, overrides expect's default wait for the
	// password prompt (in seconds).
	ExpectTimeout int
}

// Target is a server entry with every placeholder resolved.
type Target struct {
	Key      string
	Name     string
	Host     string
	Port     int
	User     string
	ConnType domain.ConnType
}

// Address returns host[:port] for display.
func (t Target) Address() string {
	return placeholder.Address(t.Host, t.Port)
}

// Connect looks up routeKey in set and runs the connection for it.
// It returns the resolved target alongside the error so callers can
// record what was attempted.
func (d *Dispatcher) Connect(ctx context.Context, set *servers.File, routeKey string) (Target, error) {
	server, err := set.Find(routeKey)
	if err != nil {
		return Target{Key: routeKey}, err
	}

	target := d.resolve(server)
	if d.Out != nil {
		fmt.Fprintln(d.Out,
			styles.Chosen.Render("You chose"),
			styles.ServerName.Render(target.Name),
			styles.Address.Render(target.Address()),
		)
	}

	switch server.ConnType.Kind {
	case domain.ConnPassword:
		err = d.connectPassword(ctx, server, target)
	case domain.ConnGCP:
		err = d.connectGCP(ctx, server, target)
	default: // domain.ConnUnsupported
		err = fmt.Errorf("%w %q", domain.ErrUnknownConnType, server.ConnType.Raw)
	}
	return target, err
}

func (d *Dispatcher) resolve(s domain.Server) Target {
	return Target{
		Key:      s.Key,
		Name:     d.Resolver.Resolve(s.Name),
		Host:     d.Resolver.Resolve(s.IP),
		Port:     d.Resolver.Port(s.Port),
		User:     d.Resolver.Resolve(s.User),
		ConnType: s.ConnType,
	}
}

// connectPassword runs the expect script, falling back to a plain
// interactive ssh only when expect itself is not installed.
func (d *Dispatcher) connectPassword(ctx context.Context, s domain.Server, t Target) error {
	password := d.Resolver.Resolve(s.Password)

	err := d.Runner.Run(ctx, ExpectCommand(t, password, d.ExpectTimeout))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, exec.ErrNotFound):
		if err := d.Runner.Run(ctx, SSHCommand(t)); err != nil {
			return fmt.Errorf("%w: ssh: %w", domain.ErrConnectionFailed, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: ssh via expect: %w", domain.ErrConnectionFailed, err)
	}
}

func (d *Dispatcher) connectGCP(ctx context.Context, s domain.Server, t Target) error {
	project := d.Resolver.Resolve(s.GCPProject)
	zone := d.Resolver.Resolve(s.GCPZone)
	vm := d.Resolver.Resolve(s.GCPVMName)

	if err := d.Runner.Run(ctx, GCloudCommand(t.User, project, zone, vm)); err != nil {
		return fmt.Errorf("%w: gcloud compute ssh: %w", domain.ErrConnectionFailed, err)
	}
	return nil
}

// SSHCommand builds the interactive ssh invocation used when expect is
// unavailable. The user types the password at ssh's own prompt.
func SSHCommand(t Target) Command {
	return Command{
		Name: SSHBinary,
		Args: []string{
			"-p", strconv.Itoa(t.Port),
			"-o", "StrictHostKeyChecking=no",
			t.User + "@" + t.Host,
		},
	}
}

// GCloudCommand builds the `gcloud compute ssh` invocation.
func GCloudCommand(user, project, zone, vm string) Command {
	return Command{
		Name: GCloudBinary,
		Args: []string{
			"compute", "ssh",
			"--project", project,
			"--zone", zone,
			user + "@" + vm,
		},
	}
}
