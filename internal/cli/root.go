package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/julianstephens/habitrack/internal/backup"
	"github.com/julianstephens/habitrack/internal/clock"
	"github.com/julianstephens/habitrack/internal/ledger"
	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage"
	"github.com/julianstephens/habitrack/internal/storage/postgres"
)

// ErrFileStoreOnly is returned by commands that work on a store file.
var ErrFileStoreOnly = errors.New("this command only supports file-backed storage (SQLite or JSON)")

// Context is handed to every command's Run method.
type Context struct {
	Store    storage.Provider
	Ledger   *ledger.Ledger
	Clock    clock.Clock
	Notifier ledger.Notifier
	Out      io.Writer
	// Debug is set from the global --debug flag
	Debug bool
}

// Open loads the ledger from the store unless it is already open.
func (c *Context) Open() error {
	if c.Ledger != nil {
		return nil
	}

	opts := []ledger.Option{ledger.WithClock(c.clock())}
	if c.Notifier != nil {
		opts = append(opts, ledger.WithNotifier(c.Notifier))
	}

	l, err := ledger.Open(c.Store, opts...)
	if err != nil {
		return err
	}
	c.Ledger = l
	return nil
}

func (c *Context) clock() clock.Clock {
	if c.Clock == nil {
		return clock.System()
	}
	return c.Clock
}

// Now returns the current time from the context clock.
func (c *Context) Now() time.Time {
	return c.clock().Now()
}

func (c *Context) out() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// Printf writes formatted command output.
func (c *Context) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out(), format, args...)
}

// Println writes a line of command output.
func (c *Context) Println(args ...interface{}) {
	fmt.Fprintln(c.out(), args...)
}

// Writer exposes the output stream for encoders.
func (c *Context) Writer() io.Writer {
	return c.out()
}

// IsFileStore reports whether the store lives in a local file.
func (c *Context) IsFileStore() bool {
	_, remote := c.Store.(*postgres.Store)
	return !remote
}

// BackupManager returns the backup manager for a file-backed store.
func (c *Context) BackupManager() (*backup.Manager, error) {
	if !c.IsFileStore() {
		return nil, ErrFileStoreOnly
	}
	return backup.NewManager(c.Store.GetConfigPath()), nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr, err := c.BackupManager()
	if err != nil {
		logger.Debug("Skipping automatic backup", "reason", err)
		return
	}
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ResolveHabit finds a habit by ID or case-insensitive name.
func (c *Context) ResolveHabit(ref string) (models.Habit, error) {
	h, err := c.Ledger.FindHabit(strings.TrimSpace(ref))
	if errors.Is(err, ledger.ErrHabitNotFound) {
		return models.Habit{}, fmt.Errorf("habit %q not found", ref)
	}
	return h, err
}

// FormatValue renders a habit value without trailing zeros.
func FormatValue(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
