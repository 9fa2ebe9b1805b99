package domain

import "encoding/json"

// ConnKind enumerates the connection methods ssh-roads knows how to launch.
type ConnKind int

const (
	// ConnUnsupported is any conn_type value not listed below. The original
	// string is kept in ConnType.Raw for error messages.
	ConnUnsupported ConnKind = iota
	ConnPassword
	ConnGCP
)

// ConnType is the parsed conn_type of a server entry.
type ConnType struct {
	Kind ConnKind
	Raw  string
}

// ParseConnType maps a conn_type string to its ConnType. Matching is exact.
func ParseConnType(s string) ConnType {
	switch s {
	case "password":
		return ConnType{Kind: ConnPassword, Raw: s}
	case "gcp":
		return ConnType{Kind: ConnGCP, Raw: s}
	default:
		return ConnType{Kind: ConnUnsupported, Raw: s}
	}
}

// String returns the conn_type as written in servers.json.
func (c ConnType) String() string { return c.Raw }

// Supported reports whether c names a known connection method.
func (c ConnType) Supported() bool { return c.Kind != ConnUnsupported }

// MarshalJSON writes the raw conn_type string back out.
func (c ConnType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Raw)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ConnType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ParseConnType(s)
	return nil
}
