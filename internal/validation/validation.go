// Package validation checks a persisted state document for integrity problems
// that the ledger would never produce itself but that hand edits, partial
// writes or restored backups can introduce.
package validation

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/utils"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictDuplicateHabitID   ConflictType = "duplicate_habit_id"
	ConflictDuplicateHabitName ConflictType = "duplicate_habit_name"
	ConflictInvalidHabit       ConflictType = "invalid_habit"
	ConflictDuplicateLogDay    ConflictType = "duplicate_log_day"
	ConflictInvalidLogValue    ConflictType = "invalid_log_value"
	ConflictFutureLog          ConflictType = "future_log"
	ConflictDuplicateBadge     ConflictType = "duplicate_badge"
	ConflictNegativeStreak     ConflictType = "negative_streak"
	ConflictInvalidReminder    ConflictType = "invalid_reminder"
	ConflictInvalidPreferences ConflictType = "invalid_preferences"
)

// Conflict represents a single detected problem
type Conflict struct {
	Type        ConflictType
	Description string
	HabitIDs    []string
	Date        string // YYYY-MM-DD, for log conflicts
}

// Fixable reports whether Fix knows how to repair this kind of conflict.
func (c Conflict) Fixable() bool {
	switch c.Type {
	case ConflictDuplicateLogDay, ConflictDuplicateBadge, ConflictNegativeStreak:
		return true
	default:
		return false
	}
}

// Result contains all detected conflicts
type Result struct {
	Conflicts []Conflict
}

// HasConflicts returns true if there are any conflicts
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No problems detected."
	}

	var b strings.Builder
	b.WriteString("Problems detected:\n")
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "- %s", c.Description)
		if c.Fixable() {
			b.WriteString(" (fixable)")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FixAction records one repair made by Fix
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

// Validator checks state documents. Logs dated after the day of now are
// reported as future logs.
type Validator struct {
	now func() time.Time
}

func New() *Validator {
	return &Validator{now: time.Now}
}

// ValidateState runs every check against state.
func (v *Validator) ValidateState(state models.State) Result {
	result := Result{Conflicts: []Conflict{}}

	if err := state.User.Preferences.Validate(); err != nil {
		result.Conflicts = append(result.Conflicts, Conflict{
			Type:        ConflictInvalidPreferences,
			Description: fmt.Sprintf("Profile preferences are invalid: %v", err),
		})
	}

	result.Conflicts = append(result.Conflicts, duplicateHabits(state.Habits)...)

	today := utils.StartOfDay(v.now())
	for _, h := range state.Habits {
		result.Conflicts = append(result.Conflicts, v.validateHabit(h, today)...)
	}
	return result
}

func duplicateHabits(habits []models.Habit) []Conflict {
	var conflicts []Conflict

	ids := make(map[string][]string)
	names := make(map[string][]string)
	display := make(map[string]string)
	for _, h := range habits {
		ids[h.ID] = append(ids[h.ID], h.Name)
		key := strings.ToLower(strings.TrimSpace(h.Name))
		if key == "" {
			continue
		}
		names[key] = append(names[key], h.ID)
		if _, ok := display[key]; !ok {
			display[key] = h.Name
		}
	}

	for _, id := range sortedKeys(ids) {
		if len(ids[id]) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateHabitID,
				Description: fmt.Sprintf("Habit ID %q is shared by %d habits: %s", id, len(ids[id]), strings.Join(ids[id], ", ")),
				HabitIDs:    []string{id},
			})
		}
	}
	for _, key := range sortedKeys(names) {
		if len(names[key]) > 1 {
			conflicts = append(conflicts, Conflict{
				Type:        ConflictDuplicateHabitName,
				Description: fmt.Sprintf("Duplicate habit name: \"%s\" (IDs: %v)", display[key], names[key]),
				HabitIDs:    names[key],
			})
		}
	}
	return conflicts
}

func (v *Validator) validateHabit(h models.Habit, today time.Time) []Conflict {
	var conflicts []Conflict
	add := func(t ConflictType, date, format string, args ...interface{}) {
		conflicts = append(conflicts, Conflict{
			Type:        t,
			Description: fmt.Sprintf(format, args...),
			HabitIDs:    []string{h.ID},
			Date:        date,
		})
	}

	spec := models.HabitSpec{Name: h.Name, Goal: h.Goal, Frequency: h.Frequency, CustomDays: h.CustomDays}
	if err := spec.Validate(); err != nil {
		add(ConflictInvalidHabit, "", "Habit \"%s\" is invalid: %v", h.Name, err)
	}

	if h.Streak < 0 {
		add(ConflictNegativeStreak, "", "Habit \"%s\" has a negative streak (%d)", h.Name, h.Streak)
	}

	if h.Reminder != nil {
		if err := h.Reminder.Validate(); err != nil {
			add(ConflictInvalidReminder, "", "Habit \"%s\" has an invalid reminder: %v", h.Name, err)
		}
	}

	seenDays := make(map[string]int)
	for _, log := range h.Logs {
		date := log.Date.Format(constants.DateFormat)
		seenDays[date]++

		if math.IsNaN(log.Value) || math.IsInf(log.Value, 0) || log.Value < 0 {
			add(ConflictInvalidLogValue, date, "Habit \"%s\" has an invalid value %v on %s", h.Name, log.Value, date)
		}
		if utils.StartOfDay(log.Date).After(today) {
			add(ConflictFutureLog, date, "Habit \"%s\" has a log dated in the future (%s)", h.Name, date)
		}
	}
	for _, date := range sortedKeys(seenDays) {
		if seenDays[date] > 1 {
			add(ConflictDuplicateLogDay, date, "Habit \"%s\" has %d logs on %s", h.Name, seenDays[date], date)
		}
	}

	badges := make(map[string]int)
	for _, b := range h.Badges {
		badges[b.Name]++
	}
	for _, name := range sortedKeys(badges) {
		if badges[name] > 1 {
			add(ConflictDuplicateBadge, "", "Habit \"%s\" holds the \"%s\" badge %d times", h.Name, name, badges[name])
		}
	}

	return conflicts
}

// Fix repairs the fixable conflicts in a copy of state: duplicate log days
// keep the last log recorded, duplicate badges keep the earliest award and
// negative streaks are reset to zero.
func (v *Validator) Fix(state models.State) (models.State, []FixAction) {
	fixed := state.Clone()
	var actions []FixAction

	for i := range fixed.Habits {
		h := &fixed.Habits[i]
		for _, c := range v.validateHabit(*h, utils.StartOfDay(v.now())) {
			switch c.Type {
			case ConflictNegativeStreak:
				h.Streak = 0
				h.StreakBase = 0
				actions = append(actions, FixAction{Action: fmt.Sprintf("Reset streak of \"%s\" to 0", h.Name), SourceConflict: c})
			case ConflictDuplicateLogDay:
				h.Logs = dedupeLogs(h.Logs, c.Date)
				actions = append(actions, FixAction{Action: fmt.Sprintf("Kept the last log of \"%s\" on %s", h.Name, c.Date), SourceConflict: c})
			case ConflictDuplicateBadge:
				h.Badges = dedupeBadges(h.Badges)
				actions = append(actions, FixAction{Action: fmt.Sprintf("Removed duplicate badges from \"%s\"", h.Name), SourceConflict: c})
			}
		}
	}
	return fixed, actions
}

func dedupeLogs(logs []models.HabitLog, date string) []models.HabitLog {
	last := -1
	for i, log := range logs {
		if log.Date.Format(constants.DateFormat) == date {
			last = i
		}
	}

	out := make([]models.HabitLog, 0, len(logs))
	for i, log := range logs {
		if log.Date.Format(constants.DateFormat) == date && i != last {
			continue
		}
		out = append(out, log)
	}
	return out
}

func dedupeBadges(badges []models.Badge) []models.Badge {
	earliest := make(map[string]models.Badge)
	var order []string
	for _, b := range badges {
		prev, ok := earliest[b.Name]
		if !ok {
			order = append(order, b.Name)
		}
		if !ok || b.Acquired.Before(prev.Acquired) {
			earliest[b.Name] = b
		}
	}

	out := make([]models.Badge, 0, len(order))
	for _, name := range order {
		out = append(out, earliest[name])
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
