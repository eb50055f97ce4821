package ledger

import (
	"net/mail"
	"strings"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
)

// ProfileUpdate lists the profile fields to change. Nil fields are left alone.
type ProfileUpdate struct {
	Name   *string
	Email  *string
	Avatar *string
}

// UpdateProfile applies u to the profile. The name cannot be blank and a
// non-empty email must parse as an address.
func (l *Ledger) UpdateProfile(u ProfileUpdate) (models.UserProfile, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.state.User
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return models.UserProfile{}, invalid(ErrInvalidProfile, "name", "cannot be empty")
		}
		next.Name = name
	}
	if u.Email != nil {
		email := strings.TrimSpace(*u.Email)
		if email != "" {
			if _, err := mail.ParseAddress(email); err != nil {
				return models.UserProfile{}, invalid(ErrInvalidProfile, "email", err.Error())
			}
		}
		next.Email = email
	}
	if u.Avatar != nil {
		next.Avatar = strings.TrimSpace(*u.Avatar)
	}

	l.state.User = next
	l.persist()
	return next, nil
}

// UpdatePreferences replaces the preferences after validating them.
func (l *Ledger) UpdatePreferences(p models.Preferences) (models.UserProfile, error) {
	if err := p.Validate(); err != nil {
		return models.UserProfile{}, invalid(ErrInvalidPreferences, "preferences", err.Error())
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.state.User.Preferences = p
	l.persist()
	return l.state.User, nil
}

// ToggleTheme switches between the light and dark themes.
func (l *Ledger) ToggleTheme() models.UserProfile {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.User.Preferences.Theme == constants.ThemeDark {
		l.state.User.Preferences.Theme = constants.ThemeLight
	} else {
		l.state.User.Preferences.Theme = constants.ThemeDark
	}
	l.persist()
	return l.state.User
}
