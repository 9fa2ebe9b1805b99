// Package placeholder resolves "$NAME" values in servers.json against the
// process environment.
//
// A missing variable is never an error: a warning is written and the
// literal placeholder is returned, so half-configured entries still show
// up in the menu.
package placeholder

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"ssh-roads/internal/domain"
	"ssh-roads/internal/tui/styles"
)

// Prefix marks a value as an environment variable reference.
const Prefix = "$"

// Resolver substitutes placeholders. The zero value looks nothing up and
// discards warnings.
type Resolver struct {
	// LookupEnv reports the value of an environment variable.
	LookupEnv func(key string) (string, bool)

	// Warn receives one line per unresolved placeholder.
	Warn io.Writer
}

// New returns a Resolver backed by os.LookupEnv that warns to w.
func New(w io.Writer) *Resolver {
	return &Resolver{LookupEnv: os.LookupEnv, Warn: w}
}

// Resolve returns v with a leading placeholder substituted. Values that do
// not start with Prefix are returned unchanged.
func (r *Resolver) Resolve(v string) string {
	name, ok := strings.CutPrefix(v, Prefix)
	if !ok {
		return v
	}
	if r != nil && r.LookupEnv != nil {
		if val, found := r.LookupEnv(name); found {
			return val
		}
	}
	r.warnf("Warning: Environment variable %s not found", name)
	return v
}

// Port resolves v and parses it as a TCP port. Anything that is not a
// valid port number yields domain.DefaultPort.
func (r *Resolver) Port(v string) int {
	p, err := strconv.ParseUint(r.Resolve(v), 10, 16)
	if err != nil {
		return domain.DefaultPort
	}
	return int(p)
}

// Address formats host and port for display. The default port is omitted.
func Address(host string, port int) string {
	if port == domain.DefaultPort {
		return host
	}
	return fmt.Sprintf("%s:%d", host, port)
}

func (r *Resolver) warnf(format string, args ...any) {
	if r == nil || r.Warn == nil {
		return
	}
	fmt.Fprintln(r.Warn, styles.WarningText.Render(fmt.Sprintf(format, args...)))
}
