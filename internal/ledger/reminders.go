package ledger

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/models"
)

// DueReminder pairs a habit with its reminder that is due.
type DueReminder struct {
	HabitID   string
	HabitName string
	Icon      string
	Reminder  models.Reminder
}

// Message is the notification text for the reminder.
func (d DueReminder) Message() string {
	return fmt.Sprintf("%s Time to check in: %s", d.Icon, d.HabitName)
}

// DueReminders lists habits whose reminder is due at now and which have no
// log for now's day yet.
func (l *Ledger) DueReminders(now time.Time) []DueReminder {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var due []DueReminder
	for _, h := range l.state.Habits {
		if h.Reminder == nil || !h.Reminder.IsDue(now) {
			continue
		}
		if h.LogIndex(now) >= 0 {
			continue
		}
		due = append(due, DueReminder{
			HabitID:   h.ID,
			HabitName: h.Name,
			Icon:      h.Icon,
			Reminder:  h.Reminder.Clone(),
		})
	}
	return due
}

// SendDueReminders notifies each due reminder and returns how many were sent.
// Nothing is sent while notifications are disabled or no notifier is set.
func (l *Ledger) SendDueReminders(now time.Time) (int, error) {
	if l.notifier == nil || !l.User().Preferences.Notifications {
		return 0, nil
	}

	sent := 0
	for _, d := range l.DueReminders(now) {
		if err := l.notifier.Notify(d.Message()); err != nil {
			return sent, fmt.Errorf("failed to send reminder for %s: %w", d.HabitName, err)
		}
		logger.Debug("Reminder sent", "habit", d.HabitName)
		sent++
	}
	return sent, nil
}
