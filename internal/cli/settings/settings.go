package settings

import (
	"github.com/dustin/go-humanize"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/ledger"
	"github.com/julianstephens/habitrack/internal/models"
)

type ProfileCmd struct {
	Name   *string `help:"Display name."`
	Email  *string `help:"Email address (empty to clear)."`
	Avatar *string `help:"Avatar URL or emoji."`
}

func (c *ProfileCmd) Run(ctx *cli.Context) error {
	if c.Name == nil && c.Email == nil && c.Avatar == nil {
		printProfile(ctx, ctx.Ledger.User())
		return nil
	}

	user, err := ctx.Ledger.UpdateProfile(ledger.ProfileUpdate{Name: c.Name, Email: c.Email, Avatar: c.Avatar})
	if err != nil {
		return err
	}
	ctx.Println("Profile updated successfully.")
	printProfile(ctx, user)
	return nil
}

func printProfile(ctx *cli.Context, u models.UserProfile) {
	email := u.Email
	if email == "" {
		email = "(not set)"
	}
	ctx.Println("Profile:")
	ctx.Printf("  Name:    %s\n", u.Name)
	ctx.Printf("  Email:   %s\n", email)
	if u.Avatar != "" {
		ctx.Printf("  Avatar:  %s\n", u.Avatar)
	}
	ctx.Printf("  Joined:  %s\n", humanize.RelTime(u.JoinDate, ctx.Now(), "ago", "from now"))
}

type PrefsCmd struct {
	Theme         *string `help:"Color theme (light or dark)."`
	Notifications *bool   `help:"Enable or disable notifications." negatable:""`
	WeekStart     *string `help:"First day of the week (monday or sunday)."`
	ToggleTheme   bool    `help:"Switch between the light and dark themes."`
}

func (c *PrefsCmd) Run(ctx *cli.Context) error {
	if c.ToggleTheme {
		user := ctx.Ledger.ToggleTheme()
		ctx.Printf("Theme switched to %s.\n", user.Preferences.Theme)
		return nil
	}

	prefs := ctx.Ledger.User().Preferences
	if c.Theme == nil && c.Notifications == nil && c.WeekStart == nil {
		printPrefs(ctx, prefs)
		return nil
	}

	if c.Theme != nil {
		prefs.Theme = *c.Theme
	}
	if c.Notifications != nil {
		prefs.Notifications = *c.Notifications
	}
	if c.WeekStart != nil {
		prefs.WeekStart = *c.WeekStart
	}

	user, err := ctx.Ledger.UpdatePreferences(prefs)
	if err != nil {
		return err
	}
	ctx.Println("Preferences updated successfully.")
	printPrefs(ctx, user.Preferences)
	return nil
}

func printPrefs(ctx *cli.Context, p models.Preferences) {
	ctx.Println("Preferences:")
	ctx.Printf("  Theme:          %s\n", p.Theme)
	ctx.Printf("  Notifications:  %v\n", p.Notifications)
	ctx.Printf("  Week starts on: %s\n", p.WeekStart)
}
