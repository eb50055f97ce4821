package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/habitrack/internal/storage/postgres"
	"github.com/julianstephens/habitrack/internal/storage/sqlite"
)

// Kind names a storage backend.
type Kind string

const (
	KindJSON     Kind = "json"
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// KindOf classifies a config value: PostgreSQL URLs, then *.json files, then
// anything else as a SQLite database path.
func KindOf(config string) Kind {
	switch {
	case postgres.IsConnString(config):
		return KindPostgres
	case strings.EqualFold(filepath.Ext(config), ".json"):
		return KindJSON
	default:
		return KindSQLite
	}
}

// NewProvider returns the store for config. File paths have a leading ~
// expanded; PostgreSQL URLs carrying a password are rejected unless
// trusted is set, which callers use for values read from the environment
// or the OS keyring.
func NewProvider(config string, trusted bool) (Provider, error) {
	switch KindOf(config) {
	case KindPostgres:
		if !trusted {
			if _, err := postgres.ValidateConnString(config); err != nil {
				return nil, err
			}
		}
		return postgres.New(config), nil
	case KindJSON:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return NewJSONStore(path), nil
	default:
		path, err := ExpandPath(config)
		if err != nil {
			return nil, err
		}
		return sqlite.NewStore(path), nil
	}
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", errors.New("config path cannot be empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
