package system

import (
	"fmt"

	"github.com/julianstephens/habitrack/internal/cli"
)

// RemindCmd sends the reminders due now. It is meant to run from cron or a
// systemd timer every few minutes.
type RemindCmd struct {
	DryRun bool `help:"Print due reminders instead of sending them."`
}

func (c *RemindCmd) Run(ctx *cli.Context) error {
	now := ctx.Now()

	if c.DryRun {
		due := ctx.Ledger.DueReminders(now)
		if len(due) == 0 {
			ctx.Println("No reminders due.")
		}
		for _, d := range due {
			ctx.Println("[DryRun] " + d.Message())
		}
		return nil
	}

	if !ctx.Ledger.User().Preferences.Notifications {
		return nil
	}

	sent, err := ctx.Ledger.SendDueReminders(now)
	if err != nil {
		return fmt.Errorf("sent %d reminder(s) before failing: %w", sent, err)
	}
	if ctx.Debug {
		ctx.Printf("Sent %d reminder(s)\n", sent)
	}
	return nil
}
