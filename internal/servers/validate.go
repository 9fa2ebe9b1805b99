package servers

import (
	"fmt"

	"ssh-roads/internal/domain"
)

// Problem describes one questionable entry in servers.json.
type Problem struct {
	// Index is the zero-based position of the entry in the file.
	Index int
	Key   string
	Msg   string
}

func (p Problem) String() string {
	return fmt.Sprintf("entry %d (%q): %s", p.Index+1, p.Key, p.Msg)
}

// Validate reports entries that cannot be connected to or that are shadowed
// by an earlier entry. It does not change how Find behaves.
func (f *File) Validate() []Problem {
	if f == nil {
		return nil
	}

	var problems []Problem
	seen := make(map[string]int, len(f.Servers))

	for i, s := range f.Servers {
		add := func(format string, args ...any) {
			problems = append(problems, Problem{Index: i, Key: s.Key, Msg: fmt.Sprintf(format, args...)})
		}

		if s.Key == "" {
			add("missing key")
		} else if prev, dup := seen[s.Key]; dup {
			add("duplicate key; entry %d is used instead", prev+1)
		} else {
			seen[s.Key] = i
		}

		switch s.ConnType.Kind {
		case domain.ConnPassword:
			if s.IP == "" {
				add("missing ip")
			}
			if s.User == "" {
				add("missing user")
			}
		case domain.ConnGCP:
			if s.GCPProject == "" {
				add("missing gcp_project")
			}
			if s.GCPZone == "" {
				add("missing gcp_zone")
			}
			if s.GCPVMName == "" {
				add("missing gcp_vm_name")
			}
		case domain.ConnUnsupported:
			add("unknown connection type %q", s.ConnType.Raw)
		}
	}
	return problems
}
