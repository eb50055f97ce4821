package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/cli/backups"
	"github.com/julianstephens/habitrack/internal/cli/habits"
	"github.com/julianstephens/habitrack/internal/cli/settings"
	"github.com/julianstephens/habitrack/internal/cli/stats"
	"github.com/julianstephens/habitrack/internal/cli/system"
	"github.com/julianstephens/habitrack/internal/clock"
	"github.com/julianstephens/habitrack/internal/constants"
	apperrors "github.com/julianstephens/habitrack/internal/errors"
	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/notifier"
	"github.com/julianstephens/habitrack/internal/storage"
	"github.com/julianstephens/habitrack/internal/storage/postgres"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store path (.db for SQLite, .json for a JSON file) or PostgreSQL connection string. Passwords must not be embedded here; use HABITRACK_DB_CONNECTION or the OS keyring instead." env:"HABITRACK_CONFIG"`
	Debug   bool   `help:"Enable debug logging to stderr." env:"HABITRACK_DEBUG"`

	Init     system.InitCmd      `cmd:"" help:"Initialize habitrack storage."`
	Migrate  system.MigrateCmd   `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd    `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd       `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit    habits.HabitCmd     `cmd:"" help:"Manage habits."`
	Checkin  habits.CheckInCmd   `cmd:"" name:"checkin" help:"Log a value for a habit."`
	Today    habits.TodayCmd     `cmd:"" help:"Show today's progress."`
	Stats    stats.StatsCmd      `cmd:"" help:"Show overall statistics."`
	Insights stats.InsightsCmd   `cmd:"" help:"Show insights about your habits."`
	Export   stats.ExportCmd     `cmd:"" help:"Export the profile and habits as JSON."`
	Reset    system.ResetCmd     `cmd:"" help:"Delete all habits."`
	Profile  settings.ProfileCmd `cmd:"" help:"Show or update the user profile."`
	Prefs    settings.PrefsCmd   `cmd:"" help:"Show or update preferences."`
	Validate system.ValidateCmd  `cmd:"" help:"Check stored data for problems."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Keyring system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Remind  system.RemindCmd  `cmd:"" hidden:"" help:"Send due reminders (run periodically)."`
}

// Commands that manage the store themselves and must not open the ledger.
var skipOpen = map[string]bool{
	"init":    true,
	"migrate": true,
	"doctor":  true,
	"keyring": true,
	"backup":  true,
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Personal habit tracker with streaks, badges and insights"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	resolved := cli.ResolveConfig(CLI.Config)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(resolved.Value)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Resolved store config", "source", resolved.Source)

	store, err := storage.NewProvider(resolved.Value, resolved.Trusted())
	if errors.Is(err, postgres.ErrEmbeddedCredentials) {
		apperrors.Fatalf("PostgreSQL connection strings with embedded passwords are not allowed in --config.\n" +
			"       Use 'habitrack keyring set' or the " + constants.EnvDBConnection + " environment variable instead.")
	}
	apperrors.Fatal(err)
	defer store.Close()

	appCtx := &cli.Context{
		Store:    store,
		Clock:    clock.System(),
		Notifier: notifier.New(),
		Debug:    CLI.Debug,
	}

	command := strings.Fields(ctx.Command())[0]
	if !skipOpen[command] {
		if err := appCtx.Open(); err != nil {
			store.Close()
			apperrors.Fatal(err)
		}
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}

// configDir is where the log file lives: next to a file store, or the user
// config directory for a remote store.
func configDir(config string) string {
	if storage.KindOf(config) != storage.KindPostgres {
		if path, err := storage.ExpandPath(config); err == nil {
			return filepath.Dir(path)
		}
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, constants.AppName)
	}
	return "."
}
