package models

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/utils"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// Valid reports whether f is one of the known frequency modes.
func (f Frequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyCustom:
		return true
	default:
		return false
	}
}

type Level string

const (
	LevelNovice  Level = "Novice"
	LevelRegular Level = "Regular"
	LevelPro     Level = "Pro"
	LevelMaster  Level = "Master"
)

// LevelFor maps a streak length onto its tier. It has no other input, so the
// level of a habit can always be re-derived from its streak.
func LevelFor(streak int) Level {
	switch {
	case streak < constants.RegularStreakThreshold:
		return LevelNovice
	case streak < constants.ProStreakThreshold:
		return LevelRegular
	case streak < constants.MasterStreakThreshold:
		return LevelPro
	default:
		return LevelMaster
	}
}

// HabitLog represents a single day's observation of a habit
type HabitLog struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"` // midnight of the logged day
	Value     float64   `json:"value"`
	Notes     string    `json:"notes,omitempty"`
	Completed bool      `json:"completed"`
}

// Badge represents an achievement earned by a habit
type Badge struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Acquired    time.Time `json:"acquired"`
}

// Habit represents a tracked recurring behaviour with a numeric daily goal
type Habit struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Icon       string         `json:"icon"`
	Unit       string         `json:"unit"`
	Goal       float64        `json:"goal"`
	Frequency  Frequency      `json:"frequency"`
	CustomDays []time.Weekday `json:"custom_days,omitempty"`
	Color      string         `json:"color"`
	Streak     int            `json:"streak"`
	// StreakDay is the day of the check-in that last moved the streak and
	// StreakBase the streak as it stood before that check-in.
	StreakDay   *time.Time `json:"streak_day,omitempty"`
	StreakBase  int        `json:"streak_base,omitempty"`
	Logs        []HabitLog `json:"logs"`
	Badges      []Badge    `json:"badges"`
	Created     time.Time  `json:"created"`
	LastUpdated time.Time  `json:"last_updated"`
	Reminder    *Reminder  `json:"reminder,omitempty"`
}

// Level returns the tier derived from the current streak.
func (h Habit) Level() Level {
	return LevelFor(h.Streak)
}

// MarshalJSON writes the derived level next to the stored fields. The level is
// never read back; it is recomputed from the streak on load.
func (h Habit) MarshalJSON() ([]byte, error) {
	type habitAlias Habit
	return json.Marshal(struct {
		habitAlias
		Level Level `json:"level"`
	}{habitAlias(h), h.Level()})
}

// LogIndex returns the index of the log recorded for the given day, or -1.
func (h Habit) LogIndex(day time.Time) int {
	day = utils.StartOfDay(day)
	for i, log := range h.Logs {
		if utils.StartOfDay(log.Date).Equal(day) {
			return i
		}
	}
	return -1
}

// HasBadge reports whether a badge with the given name has been earned.
func (h Habit) HasBadge(name string) bool {
	for _, b := range h.Badges {
		if b.Name == name {
			return true
		}
	}
	return false
}

// IsCompletion reports whether value meets the goal under the habit's
// frequency. Only daily habits complete on a per-day check-in.
func (h Habit) IsCompletion(value float64) bool {
	return h.Frequency == FrequencyDaily && value >= h.Goal
}

// Clone returns a deep copy so callers cannot mutate ledger-owned slices.
func (h Habit) Clone() Habit {
	c := h
	if h.CustomDays != nil {
		c.CustomDays = append([]time.Weekday(nil), h.CustomDays...)
	}
	if h.StreakDay != nil {
		day := *h.StreakDay
		c.StreakDay = &day
	}
	c.Logs = append(make([]HabitLog, 0, len(h.Logs)), h.Logs...)
	c.Badges = append(make([]Badge, 0, len(h.Badges)), h.Badges...)
	if h.Reminder != nil {
		r := h.Reminder.Clone()
		c.Reminder = &r
	}
	return c
}

// HabitSpec holds the user-supplied fields of a new habit
type HabitSpec struct {
	Name       string
	Icon       string
	Unit       string
	Goal       float64
	Frequency  Frequency
	CustomDays []time.Weekday
	Color      string
	Reminder   *Reminder
}

func (s *HabitSpec) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	if math.IsNaN(s.Goal) || math.IsInf(s.Goal, 0) || s.Goal <= 0 {
		return fmt.Errorf("goal must be a positive number")
	}
	if !s.Frequency.Valid() {
		return fmt.Errorf("invalid frequency %q (expected daily, weekly or custom)", s.Frequency)
	}
	if s.Frequency == FrequencyCustom && len(s.CustomDays) == 0 {
		return fmt.Errorf("weekdays must be specified for custom frequency")
	}
	if s.Reminder != nil {
		if err := s.Reminder.Validate(); err != nil {
			return fmt.Errorf("invalid reminder: %w", err)
		}
	}
	return nil
}

// ApplyDefaults fills presentation fields the user left empty.
func (s *HabitSpec) ApplyDefaults() {
	if s.Icon == "" {
		s.Icon = constants.DefaultHabitIcon
	}
	if s.Color == "" {
		s.Color = constants.DefaultHabitColor
	}
	if s.Unit == "" {
		s.Unit = constants.DefaultHabitUnit
	}
	if s.Frequency == "" {
		s.Frequency = FrequencyDaily
	}
}
