package system

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/validation"
)

// schemaStore is implemented by the database-backed stores.
type schemaStore interface {
	SchemaStatus() (current, latest int, err error)
	Migrate(logFn func(string)) (int, error)
}

// skipError marks a check that could not run.
type skipError struct{ reason string }

func (e skipError) Error() string { return e.reason }

func skip(reason string) error { return skipError{reason: reason} }

type DoctorCmd struct{}

type check struct {
	name    string
	warning bool
	run     func() error
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	ctx.Println("Running diagnostics...")
	ctx.Println()

	var state models.State
	reachable := false

	checks := []check{
		{name: "Store reachable", run: func() error {
			s, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			state, reachable = s, true
			return nil
		}},
		{name: "Schema version", run: func() error {
			if !reachable {
				return skip("store not reachable")
			}
			return checkSchemaVersion(ctx)
		}},
		{name: "Migrations complete", run: func() error {
			if !reachable {
				return skip("store not reachable")
			}
			return checkMigrationsComplete(ctx)
		}},
		{name: "Backups present", warning: true, run: func() error {
			return checkBackupsPresent(ctx)
		}},
		{name: "Data validation", run: func() error {
			if !reachable {
				return skip("store not reachable")
			}
			result := validation.New().ValidateState(state)
			if result.HasConflicts() {
				return fmt.Errorf("%d problem(s) found, run 'habitrack validate' for details", len(result.Conflicts))
			}
			return nil
		}},
		{name: "Clock/timezone", run: checkClockTimezone},
	}

	failures := 0
	for _, c := range checks {
		err := c.run()
		var skipped skipError
		switch {
		case err == nil:
			ctx.Printf("✓ %s: OK\n", c.name)
		case errors.As(err, &skipped):
			ctx.Printf("⊘ %s: SKIPPED (%s)\n", c.name, skipped.reason)
		case c.warning:
			ctx.Printf("⚠ %s: WARNING\n", c.name)
			ctx.Printf("   %v\n", err)
		default:
			ctx.Printf("❌ %s: FAIL\n", c.name)
			ctx.Printf("   Error: %v\n", err)
			failures++
		}
	}

	ctx.Println()
	if failures > 0 {
		return fmt.Errorf("doctor found %d failing check(s)", failures)
	}
	ctx.Println("All checks passed.")
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	s, ok := ctx.Store.(schemaStore)
	if !ok {
		return skip("JSON store has no schema")
	}
	current, latest, err := s.SchemaStatus()
	if err != nil {
		return err
	}
	if current > latest {
		return fmt.Errorf("schema version %d is newer than this build supports (%d), upgrade habitrack", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	s, ok := ctx.Store.(schemaStore)
	if !ok {
		return skip("JSON store has no schema")
	}
	current, latest, err := s.SchemaStatus()
	if err != nil {
		return err
	}
	if current < latest {
		return fmt.Errorf("%d migration(s) pending, run 'habitrack migrate'", latest-current)
	}
	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr, err := ctx.BackupManager()
	if errors.Is(err, cli.ErrFileStoreOnly) {
		return skip("remote store")
	}
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found in %s, run 'habitrack backup create'", mgr.BackupDir())
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 {
		return fmt.Errorf("system clock looks wrong: %s", now.Format(time.RFC3339))
	}
	if name, _ := now.Zone(); name == "" {
		return errors.New("local timezone has no name")
	}
	return nil
}
