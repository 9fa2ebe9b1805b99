package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// DefaultPort is used whenever a server's port is missing or unparseable.
const DefaultPort = 22

// Server is a single entry in servers.json.
//
// Every string field may hold a "$NAME" placeholder; placeholders are
// resolved against the environment at use time, never at load time.
type Server struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"`
	IP       string   `json:"ip"`
	Port     string   `json:"port"`
	ConnType ConnType `json:"conn_type"`
	User     string   `json:"user"`
	Comment  string   `json:"comment"`

	// Password authentication.
	Password string `json:"pswd,omitempty"`

	// Cloud proxy (gcloud compute ssh).
	GCPProject string `json:"gcp_project,omitempty"`
	GCPZone    string `json:"gcp_zone,omitempty"`
	GCPVMName  string `json:"gcp_vm_name,omitempty"`
}

// serverJSON mirrors Server but accepts both the snake_case names used by
// servers.json and their camelCase spellings. Port is decoded loosely so
// that `"port": 2222` and `"port": "2222"` both load.
type serverJSON struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	IP       string          `json:"ip"`
	Port     json.RawMessage `json:"port"`
	User     string          `json:"user"`
	Comment  string          `json:"comment"`
	ConnType string          `json:"conn_type"`
	Pswd     string          `json:"pswd"`

	GCPProject string `json:"gcp_project"`
	GCPZone    string `json:"gcp_zone"`
	GCPVMName  string `json:"gcp_vm_name"`

	ConnTypeAlt   string `json:"connType"`
	PasswordAlt   string `json:"password"`
	GCPProjectAlt string `json:"gcpProject"`
	GCPZoneAlt    string `json:"gcpZone"`
	GCPVMNameAlt  string `json:"gcpVmName"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Server) UnmarshalJSON(data []byte) error {
	var raw serverJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	port, err := decodePort(raw.Port)
	if err != nil {
		return fmt.Errorf("server %q: %w", raw.Key, err)
	}

	*s = Server{
		Key:        raw.Key,
		Name:       raw.Name,
		IP:         raw.IP,
		Port:       port,
		ConnType:   ParseConnType(first(raw.ConnType, raw.ConnTypeAlt)),
		User:       raw.User,
		Comment:    raw.Comment,
		Password:   first(raw.Pswd, raw.PasswordAlt),
		GCPProject: first(raw.GCPProject, raw.GCPProjectAlt),
		GCPZone:    first(raw.GCPZone, raw.GCPZoneAlt),
		GCPVMName:  first(raw.GCPVMName, raw.GCPVMNameAlt),
	}
	return nil
}

func decodePort(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", fmt.Errorf("port must be a string or a number, got %s", raw)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return "", fmt.Errorf("port must be an integer, got %s", raw)
	}
	return n.String(), nil
}

func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
