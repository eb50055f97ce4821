package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitrack/internal/constants"
)

// Preferences holds the user's presentation settings
type Preferences struct {
	Theme         string `json:"theme"`         // light or dark
	Notifications bool   `json:"notifications"` // whether badge and reminder notifications are sent
	WeekStart     string `json:"week_start"`    // monday or sunday
}

func (p *Preferences) Validate() error {
	if p.Theme != constants.ThemeLight && p.Theme != constants.ThemeDark {
		return fmt.Errorf("invalid theme %q (expected light or dark)", p.Theme)
	}
	if p.WeekStart != constants.WeekStartMonday && p.WeekStart != constants.WeekStartSunday {
		return fmt.Errorf("invalid week start %q (expected monday or sunday)", p.WeekStart)
	}
	return nil
}

// UserProfile is independent of habits and is persisted next to them
type UserProfile struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Avatar      string      `json:"avatar"`
	JoinDate    time.Time   `json:"join_date"`
	Preferences Preferences `json:"preferences"`
}

// DefaultPreferences returns the preferences of a fresh install.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         constants.DefaultTheme,
		Notifications: constants.DefaultNotificationsEnabled,
		WeekStart:     constants.DefaultWeekStart,
	}
}

// DefaultUserProfile returns the profile of a fresh install joined at now.
func DefaultUserProfile(now time.Time) UserProfile {
	return UserProfile{
		ID:          uuid.New().String(),
		Name:        constants.DefaultProfileName,
		JoinDate:    now,
		Preferences: DefaultPreferences(),
	}
}

// ApplyDefaultPreferences fills preference values missing from older documents.
func ApplyDefaultPreferences(p *Preferences) {
	if p.Theme == "" {
		p.Theme = constants.DefaultTheme
	}
	if p.WeekStart == "" {
		p.WeekStart = constants.DefaultWeekStart
	}
}
