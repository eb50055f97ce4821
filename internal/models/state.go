package models

import (
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
)

// State is the full persisted document: the profile and every habit with the
// logs and badges it owns.
type State struct {
	Version int         `json:"version"`
	User    UserProfile `json:"user"`
	Habits  []Habit     `json:"habits"`
}

// DefaultState returns the empty state of a fresh install.
func DefaultState(now time.Time) State {
	return State{
		Version: constants.StateVersion,
		User:    DefaultUserProfile(now),
		Habits:  []Habit{},
	}
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	c := s
	c.Habits = make([]Habit, len(s.Habits))
	for i, h := range s.Habits {
		c.Habits[i] = h.Clone()
	}
	return c
}
