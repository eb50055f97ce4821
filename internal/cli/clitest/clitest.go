// Package clitest builds command contexts backed by temporary stores.
package clitest

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/clock"
	"github.com/julianstephens/habitrack/internal/storage"
	"github.com/julianstephens/habitrack/internal/storage/sqlite"
)

// Start is the fake clock's initial time, a Monday evening.
var Start = time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)

type Env struct {
	Ctx   *cli.Context
	Out   *bytes.Buffer
	Clock *clock.FakeClock
}

// NewJSON returns an opened context over an initialized JSON store.
func NewJSON(t *testing.T) *Env {
	t.Helper()
	return newEnv(t, storage.NewJSONStore(filepath.Join(t.TempDir(), "habitrack.json")))
}

// NewSQLite returns an opened context over an initialized SQLite store.
func NewSQLite(t *testing.T) *Env {
	t.Helper()
	return newEnv(t, sqlite.NewStore(filepath.Join(t.TempDir(), "habitrack.db")))
}

func newEnv(t *testing.T, store storage.Provider) *Env {
	t.Helper()
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	env := &Env{Out: &bytes.Buffer{}, Clock: clock.NewFakeClock(Start)}
	env.Ctx = &cli.Context{Store: store, Clock: env.Clock, Out: env.Out}
	if err := env.Ctx.Open(); err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	return env
}

// Output returns everything written so far and resets the buffer.
func (e *Env) Output() string {
	s := e.Out.String()
	e.Out.Reset()
	return s
}
