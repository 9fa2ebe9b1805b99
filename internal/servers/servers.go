// Package servers loads the server list from servers.json.
//
// Files are looked up first in ~/.ssh-roads (a global install) and then in
// the current working directory (handy during development). The list is
// read once per run and never written back.
package servers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"ssh-roads/internal/domain"

	"github.com/joho/godotenv"
)

const (
	// AppDir is the directory under the user's home that holds ssh-roads files.
	AppDir = ".ssh-roads"

	// FileName is the server list file name.
	FileName = "servers.json"

	// EnvFileName is the optional dotenv file loaded before placeholders are resolved.
	EnvFileName = ".env"
)

// pathOverride, when non-empty, replaces the resolved servers.json path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the servers.json path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override. Intended for testing.
func ResetPath() { pathOverride = "" }

// File is the parsed contents of servers.json.
type File struct {
	Servers []domain.Server `json:"servers"`
}

// ResourcePath returns ~/.ssh-roads/<filename> when that file exists, and
// ./<filename> otherwise. The local path is returned even when it does not
// exist so the caller's read reports a useful error.
func ResourcePath(filename string) string {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		global := filepath.Join(home, AppDir, filename)
		if _, err := os.Stat(global); err == nil {
			return global
		}
	}
	return filename
}

// Path returns the servers.json path that Load would read.
func Path() string {
	if pathOverride != "" {
		return pathOverride
	}
	return ResourcePath(FileName)
}

// LoadEnv loads the .env file found by ResourcePath into the process
// environment. Variables that are already set win. A missing file is not
// an error.
func LoadEnv() error {
	path := ResourcePath(EnvFileName)
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Load reads servers.json from Path.
func Load() (*File, error) {
	return LoadFrom(Path())
}

// LoadFrom reads and parses the server list at path.
func LoadFrom(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrConfigRead, path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w %s: %w", domain.ErrConfigParse, path, err)
	}
	return &f, nil
}

// Find returns the first server whose key equals key exactly.
func (f *File) Find(key string) (domain.Server, error) {
	if f != nil {
		for _, s := range f.Servers {
			if s.Key == key {
				return s, nil
			}
		}
	}
	return domain.Server{}, fmt.Errorf("%w: %s", domain.ErrServerNotFound, key)
}

// Keys returns the route keys in file order, duplicates included.
func (f *File) Keys() []string {
	if f == nil {
		return nil
	}
	keys := make([]string, len(f.Servers))
	for i, s := range f.Servers {
		keys[i] = s.Key
	}
	return keys
}
