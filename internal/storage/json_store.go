package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage/codec"
)

// document is the on-disk layout. Sections stay raw so one bad section does
// not prevent the other from loading.
type document struct {
	Version int             `json:"version"`
	User    json.RawMessage `json:"user,omitempty"`
	Habits  json.RawMessage `json:"habits,omitempty"`
}

// JSONStore keeps the state in a single pretty-printed JSON file.
type JSONStore struct {
	mu   sync.RWMutex
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.writeLocked(models.DefaultState(time.Now()))
}

func (s *JSONStore) Load() (models.State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.State{}, ErrNotInitialized
		}
		return models.State{}, fmt.Errorf("failed to read storage: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		state, _ := codec.Decode(nil)
		state.Version = constants.StateVersion
		return state, fmt.Errorf("%w: %s: %v", ErrCorruptState, s.path, err)
	}

	state, err := codec.Decode(codec.Sections{
		codec.SectionUser:   doc.User,
		codec.SectionHabits: doc.Habits,
	})
	state.Version = doc.Version
	return state, err
}

func (s *JSONStore) Save(state models.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(state)
}

func (s *JSONStore) writeLocked(state models.State) error {
	sections, err := codec.Encode(state)
	if err != nil {
		return err
	}
	doc := document{
		Version: constants.StateVersion,
		User:    sections[codec.SectionUser],
		Habits:  sections[codec.SectionHabits],
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	// Write next to the target and rename so a crash never leaves a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Join(fmt.Errorf("failed to write storage: %w", err), os.Remove(tmp))
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
