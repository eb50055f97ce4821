package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/utils"
)

type Reminder struct {
	ID      string         `json:"id"`
	Time    string         `json:"time"` // HH:MM format
	Days    []time.Weekday `json:"days"`
	Enabled bool           `json:"enabled"`
}

func (r *Reminder) Validate() error {
	if r.Time == "" {
		return fmt.Errorf("reminder time cannot be empty")
	}
	if !utils.ValidateTimeFormat(r.Time) {
		return fmt.Errorf("invalid time format %q (expected HH:MM)", r.Time)
	}
	if len(r.Days) == 0 {
		return fmt.Errorf("reminder needs at least one weekday")
	}
	return nil
}

// IsDue reports whether the reminder should fire at now: it must be enabled,
// scheduled for now's weekday, and now must fall within the grace window that
// starts at the reminder time.
func (r *Reminder) IsDue(now time.Time) bool {
	if !r.Enabled {
		return false
	}

	scheduledToday := false
	for _, wd := range r.Days {
		if wd == now.Weekday() {
			scheduledToday = true
			break
		}
	}
	if !scheduledToday {
		return false
	}

	t, err := time.Parse(constants.TimeFormat, r.Time)
	if err != nil {
		return false
	}
	at := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if now.Before(at) {
		return false
	}
	return now.Sub(at) <= constants.ReminderGraceMin*time.Minute
}

// FormatDays returns a human-readable description of the reminder's weekdays
func (r *Reminder) FormatDays() string {
	if len(r.Days) == 7 {
		return "Every day"
	}
	days := make([]string, len(r.Days))
	for i, wd := range r.Days {
		days[i] = wd.String()[:3]
	}
	return strings.Join(days, ", ")
}

func (r Reminder) Clone() Reminder {
	c := r
	c.Days = append([]time.Weekday(nil), r.Days...)
	return c
}
