package system

import (
	"github.com/julianstephens/habitrack/internal/cli"
)

// ResetCmd deletes every habit. The profile and preferences are kept.
type ResetCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *cli.Context) error {
	n := len(ctx.Ledger.Habits())

	ok, err := cli.Confirm(c.Yes,
		"Delete all habits?",
		"Every habit, check-in and badge is removed. Your profile is kept and a backup is taken first.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Reset cancelled.")
		return nil
	}

	ctx.PerformAutomaticBackup()
	ctx.Ledger.ResetAll()
	ctx.Printf("✓ Removed %d habit(s)\n", n)
	return nil
}
