package system

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Repair problems that can be fixed automatically."`
}

func (c *ValidateCmd) Run(ctx *cli.Context) error {
	v := validation.New()
	state := ctx.Ledger.State()

	result := v.ValidateState(state)
	ctx.Println(strings.TrimSuffix(result.FormatReport(), "\n"))
	if !result.HasConflicts() || !c.Fix {
		return nil
	}

	ctx.PerformAutomaticBackup()

	fixed, actions := v.Fix(state)
	if len(actions) == 0 {
		ctx.Println("\nNothing could be fixed automatically.")
		return nil
	}
	// The command exits right after, so the open ledger never sees the
	// repaired state.
	if err := ctx.Store.Save(fixed); err != nil {
		return fmt.Errorf("failed to save repaired state: %w", err)
	}

	ctx.Println("\nApplied fixes:")
	for _, a := range actions {
		ctx.Printf("  - %s\n", a.Action)
	}
	return nil
}
