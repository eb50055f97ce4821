package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/migration"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage/codec"
	"github.com/julianstephens/habitrack/migrations"
)

// Store keeps each state section as a JSON blob in the kv_state table.
type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.Migrate(logMigration); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed a fresh profile unless one survived from an earlier init.
	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM kv_state WHERE key = ?", codec.SectionUser).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect state: %w", err)
	}
	if count == 0 {
		if err := s.Save(models.DefaultState(time.Now())); err != nil {
			return fmt.Errorf("failed to save default state: %w", err)
		}
	}
	return nil
}

func (s *Store) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	// One connection keeps writes serialized.
	db.SetMaxOpenConns(1)
	s.db = db
	return nil
}

func (s *Store) Load() (models.State, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); os.IsNotExist(err) {
			return models.State{}, codec.ErrNotInitialized
		}
		if err := s.open(); err != nil {
			return models.State{}, err
		}
	}

	runner, err := s.runner()
	if err != nil {
		return models.State{}, err
	}
	if err := runner.ValidateVersion(); err != nil {
		return models.State{}, err
	}

	rows, err := s.db.Query("SELECT key, value FROM kv_state")
	if err != nil {
		return models.State{}, fmt.Errorf("failed to read state: %w", err)
	}
	defer rows.Close()

	sections := codec.Sections{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.State{}, fmt.Errorf("failed to scan state: %w", err)
		}
		sections[key] = []byte(value)
	}
	if err := rows.Err(); err != nil {
		return models.State{}, fmt.Errorf("failed to read state: %w", err)
	}

	state, err := codec.Decode(sections)
	state.Version = constants.StateVersion
	return state, err
}

func (s *Store) Save(state models.State) error {
	if s.db == nil {
		return codec.ErrNotInitialized
	}

	sections, err := codec.Encode(state)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for _, key := range []string{codec.SectionUser, codec.SectionHabits} {
		_, err := tx.Exec(`
			INSERT INTO kv_state (key, value, updated_at) VALUES (?, ?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
		`, key, string(sections[key]), now)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() (*migration.Runner, error) {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS, migration.DialectSQLite), nil
}

// Migrate applies pending schema migrations and reports how many ran.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	if err := s.open(); err != nil {
		return 0, err
	}
	runner, err := s.runner()
	if err != nil {
		return 0, err
	}
	return runner.ApplyMigrations(logFn)
}

// SchemaStatus returns the recorded and the latest known schema versions.
func (s *Store) SchemaStatus() (current, latest int, err error) {
	if err := s.open(); err != nil {
		return 0, 0, err
	}
	r, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	if current, err = r.GetCurrentVersion(); err != nil {
		return 0, 0, err
	}
	if latest, err = r.GetLatestVersion(); err != nil {
		return 0, 0, err
	}
	return current, latest, nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB returns the underlying connection, nil before Init or Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func logMigration(msg string) {
	logger.Info(msg)
}
