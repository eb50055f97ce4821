// Package codec converts the persisted state to and from its two independent
// sections, "user" and "habits". A section that cannot be decoded is replaced
// by its zero value so the other section still loads.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/habitrack/internal/models"
)

const (
	SectionUser   = "user"
	SectionHabits = "habits"
)

var (
	// ErrCorruptState reports that at least one section failed to decode.
	ErrCorruptState = errors.New("corrupt state")
	// ErrNotInitialized is returned when loading a store that was never created.
	ErrNotInitialized = errors.New("storage not initialized, run 'habitrack init' first")
)

// Sections holds the raw JSON of each section. A nil entry means the section
// was never written.
type Sections map[string][]byte

// Encode serializes each section of the state.
func Encode(state models.State) (Sections, error) {
	user, err := json.Marshal(state.User)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize user: %w", err)
	}
	habits := state.Habits
	if habits == nil {
		habits = []models.Habit{}
	}
	habitsData, err := json.Marshal(habits)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize habits: %w", err)
	}
	return Sections{SectionUser: user, SectionHabits: habitsData}, nil
}

// Decode rebuilds the state from its sections. Missing sections decode to
// their zero value without error. Sections that fail to parse also decode to
// their zero value, and the returned error wraps ErrCorruptState naming them.
func Decode(sections Sections) (models.State, error) {
	var state models.State
	var errs []error

	if raw := sections[SectionUser]; len(raw) > 0 {
		var user models.UserProfile
		if err := json.Unmarshal(raw, &user); err != nil {
			errs = append(errs, fmt.Errorf("%w: section %q: %v", ErrCorruptState, SectionUser, err))
		} else {
			state.User = user
		}
	}

	if raw := sections[SectionHabits]; len(raw) > 0 {
		var habits []models.Habit
		if err := json.Unmarshal(raw, &habits); err != nil {
			errs = append(errs, fmt.Errorf("%w: section %q: %v", ErrCorruptState, SectionHabits, err))
		} else {
			state.Habits = habits
		}
	}

	Normalize(&state)
	return state, errors.Join(errs...)
}

// Normalize replaces nil slices with empty ones so a decoded state encodes the
// same way as a fresh one.
func Normalize(state *models.State) {
	if state.Habits == nil {
		state.Habits = []models.Habit{}
	}
	for i := range state.Habits {
		h := &state.Habits[i]
		if h.Logs == nil {
			h.Logs = []models.HabitLog{}
		}
		if h.Badges == nil {
			h.Badges = []models.Badge{}
		}
	}
	models.ApplyDefaultPreferences(&state.User.Preferences)
}
