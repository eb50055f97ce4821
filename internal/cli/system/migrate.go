package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/habitrack/internal/cli"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	s, ok := ctx.Store.(schemaStore)
	if !ok {
		return errors.New("migrate command only supports SQLite and PostgreSQL storage")
	}

	count, err := s.Migrate(func(msg string) {
		ctx.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		ctx.Println("No migrations to apply. Database is up to date.")
	} else {
		ctx.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
