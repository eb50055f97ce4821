package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitrack/internal/cli/clitest"
	"github.com/julianstephens/habitrack/internal/ledger"
)

func ptr[T any](v T) *T { return &v }

func TestProfileCmdShow(t *testing.T) {
	env := clitest.NewJSON(t)

	require.NoError(t, (&ProfileCmd{}).Run(env.Ctx))
	out := env.Output()
	assert.Contains(t, out, "Name:    Habit Tracker")
	assert.Contains(t, out, "Email:   (not set)")
}

func TestProfileCmdUpdate(t *testing.T) {
	env := clitest.NewJSON(t)

	require.NoError(t, (&ProfileCmd{Name: ptr("Ada"), Email: ptr("ada@example.com")}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "Profile updated successfully.")

	user := env.Ctx.Ledger.User()
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)

	err := (&ProfileCmd{Email: ptr("not-an-email")}).Run(env.Ctx)
	assert.True(t, errors.Is(err, ledger.ErrInvalidProfile))
	assert.Equal(t, "ada@example.com", env.Ctx.Ledger.User().Email)
}

func TestPrefsCmd(t *testing.T) {
	env := clitest.NewJSON(t)

	require.NoError(t, (&PrefsCmd{}).Run(env.Ctx))
	out := env.Output()
	assert.Contains(t, out, "Theme:          light")
	assert.Contains(t, out, "Notifications:  true")
	assert.Contains(t, out, "Week starts on: monday")

	require.NoError(t, (&PrefsCmd{Notifications: ptr(false), WeekStart: ptr("sunday")}).Run(env.Ctx))
	prefs := env.Ctx.Ledger.User().Preferences
	assert.False(t, prefs.Notifications)
	assert.Equal(t, "sunday", prefs.WeekStart)
	assert.Equal(t, "light", prefs.Theme)

	err := (&PrefsCmd{Theme: ptr("sepia")}).Run(env.Ctx)
	assert.True(t, errors.Is(err, ledger.ErrInvalidPreferences))
	assert.Equal(t, "light", env.Ctx.Ledger.User().Preferences.Theme)
}

func TestPrefsCmdToggleTheme(t *testing.T) {
	env := clitest.NewJSON(t)

	require.NoError(t, (&PrefsCmd{ToggleTheme: true}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "Theme switched to dark.")

	require.NoError(t, (&PrefsCmd{ToggleTheme: true}).Run(env.Ctx))
	assert.Contains(t, env.Output(), "Theme switched to light.")
}
