package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/utils"
)

// CheckIn records value for the calendar day containing day, taken in the
// clock's location. An existing log for that day is overwritten in place;
// otherwise a new log is appended. The streak and badges are then re-evaluated
// and the state persisted.
//
// Nothing changes when value is negative or not finite, or the habit is unknown.
func (l *Ledger) CheckIn(habitID string, day time.Time, value float64, notes string) (models.Habit, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return models.Habit{}, invalid(ErrInvalidValue, "value", "must be a finite number")
	}
	if value < 0 {
		return models.Habit{}, invalid(ErrInvalidValue, "value", "must not be negative")
	}
	day = utils.StartOfDay(day.In(l.now().Location()))

	l.mu.Lock()
	i := l.indexOf(habitID)
	if i < 0 {
		l.mu.Unlock()
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}

	h := &l.state.Habits[i]
	completed := h.IsCompletion(value)
	recordLog(h, day, value, notes, completed)

	now := l.now()
	transition := evaluateStreak(h, day, completed)
	var awarded []models.Badge
	if transition.Evaluated {
		transition.Habit = h.Clone()
		awarded = evaluateBadges(l.rules, h, transition, now)
	}
	h.LastUpdated = now

	l.persist()
	result := h.Clone()
	l.mu.Unlock()

	logger.Debug("Check-in recorded",
		"habit", result.Name,
		"day", day.Format("2006-01-02"),
		"value", value,
		"completed", completed,
		"streak", result.Streak,
		"level", result.Level(),
	)

	messages := make([]string, 0, len(awarded))
	for _, b := range awarded {
		logger.Info("Badge awarded", "habit", result.Name, "badge", b.Name)
		messages = append(messages, BadgeMessage(b, result.Name))
	}
	l.notify(messages)

	return result, nil
}

// recordLog overwrites the log for day or appends a new one.
func recordLog(h *models.Habit, day time.Time, value float64, notes string, completed bool) {
	if idx := h.LogIndex(day); idx >= 0 {
		log := &h.Logs[idx]
		log.Value = value
		log.Notes = notes
		log.Completed = completed
		return
	}
	h.Logs = append(h.Logs, models.HabitLog{
		ID:        uuid.New().String(),
		Date:      day,
		Value:     value,
		Notes:     notes,
		Completed: completed,
	})
}
