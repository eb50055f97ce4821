package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing store before initializing."`
	Source string `help:"Store path, connection string or export file to import data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.removeExisting(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	ctx.Printf("Initialized habitrack storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		ctx.Printf("Importing data from: %s\n", c.Source)
		if err := c.importData(ctx); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}
	}
	return nil
}

func (c *InitCmd) removeExisting(ctx *cli.Context) error {
	if !ctx.IsFileStore() {
		return errors.New("--force is only supported for file-backed storage")
	}

	path := ctx.Store.GetConfigPath()
	if c.Source != "" {
		absPath, err1 := filepath.Abs(path)
		absSource, err2 := filepath.Abs(c.Source)
		if err1 == nil && err2 == nil && absPath == absSource {
			return fmt.Errorf("cannot use --force when source and destination are the same: %s", path)
		}
	}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("failed to access existing store: %w", err)
	}

	if err := ctx.Store.Close(); err != nil {
		return fmt.Errorf("failed to close existing store: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete existing store: %w", err)
	}
	ctx.Printf("Deleted existing store at: %s\n", path)
	return nil
}

// importData copies the full state of the source into the new store. An
// export file is read like a JSON store.
func (c *InitCmd) importData(ctx *cli.Context) error {
	source, err := storage.NewProvider(c.Source, false)
	if err != nil {
		return err
	}
	defer source.Close()

	state, err := source.Load()
	if err != nil && !errors.Is(err, storage.ErrCorruptState) {
		return fmt.Errorf("failed to load source: %w", err)
	}
	if err != nil {
		ctx.Printf("  Warning: %v\n", err)
	}

	state.Version = constants.StateVersion
	if err := ctx.Store.Save(state); err != nil {
		return fmt.Errorf("failed to save imported state: %w", err)
	}

	logs := 0
	for _, h := range state.Habits {
		logs += len(h.Logs)
	}
	ctx.Printf("  Imported %d habits with %d check-ins\n", len(state.Habits), logs)
	return nil
}
