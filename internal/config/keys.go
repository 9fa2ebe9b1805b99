package config

import (
	"fmt"
	"strconv"
	"strings"
)

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "expect-timeout").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set applies a value for this key to the given Config (in memory only;
	// the caller is responsible for calling Save).
	Set func(cfg *Config, value string)

	// Validate rejects values Set must not store. Nil accepts anything.
	Validate func(value string) error
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "history",
		Description: "Record connection attempts in ~/.ssh-roads/history.db (on|off)",
		Get:         func(cfg *Config) string { return cfg.History },
		Set:         func(cfg *Config, v string) { cfg.History = v },
		Validate:    validateOnOff,
	},
	{
		Name:        "expect-timeout",
		Description: "Seconds to wait for the ssh password prompt (empty = expect default)",
		Get:         func(cfg *Config) string { return cfg.ExpectTimeout },
		Set:         func(cfg *Config, v string) { cfg.ExpectTimeout = v },
		Validate:    validateSeconds,
	},
}

func validateOnOff(v string) error {
	switch v {
	case "on", "off", "":
		return nil
	}
	return fmt.Errorf("invalid value %q: must be on or off", v)
}

func validateSeconds(v string) error {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("invalid value %q: must be a whole number of seconds", v)
	}
	return nil
}

// Apply validates value and stores it on cfg.
func (k *KeySpec) Apply(cfg *Config, value string) error {
	if k.Validate != nil {
		if err := k.Validate(value); err != nil {
			return fmt.Errorf("%s: %w", k.Name, err)
		}
	}
	k.Set(cfg, value)
	return nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	if len(Keys) == 0 {
		return ""
	}

	// Find the longest key name for alignment.
	maxLen := 0
	for _, k := range Keys {
		if len(k.Name) > maxLen {
			maxLen = len(k.Name)
		}
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}
