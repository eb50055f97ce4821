package ledger

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/models"
)

// CreateHabit validates spec and appends a new habit with no logs, a zero
// streak and no badges. Names must be unique, ignoring case.
func (l *Ledger) CreateHabit(spec models.HabitSpec) (models.Habit, error) {
	spec.Name = strings.TrimSpace(spec.Name)
	spec.ApplyDefaults()
	if err := spec.Validate(); err != nil {
		return models.Habit{}, invalid(ErrInvalidHabit, "habit", err.Error())
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.findByNameLocked(spec.Name); ok {
		return models.Habit{}, invalid(ErrInvalidHabit, "name", fmt.Sprintf("a habit named %q already exists", spec.Name))
	}

	now := l.now()
	habit := models.Habit{
		ID:          uuid.New().String(),
		Name:        spec.Name,
		Icon:        spec.Icon,
		Unit:        spec.Unit,
		Goal:        spec.Goal,
		Frequency:   spec.Frequency,
		CustomDays:  spec.CustomDays,
		Color:       spec.Color,
		Logs:        []models.HabitLog{},
		Badges:      []models.Badge{},
		Created:     now,
		LastUpdated: now,
	}
	if spec.Reminder != nil {
		r := spec.Reminder.Clone()
		if r.ID == "" {
			r.ID = uuid.New().String()
		}
		habit.Reminder = &r
	}

	l.state.Habits = append(l.state.Habits, habit)
	l.persist()

	logger.Debug("Habit created", "id", habit.ID, "name", habit.Name)
	return habit.Clone(), nil
}

// DeleteHabit removes the habit together with its logs and badges.
func (l *Ledger) DeleteHabit(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	name := l.state.Habits[i].Name
	l.state.Habits = append(l.state.Habits[:i], l.state.Habits[i+1:]...)
	l.persist()

	logger.Debug("Habit deleted", "id", id, "name", name)
	return nil
}

// FindHabit resolves a habit by ID or, failing that, by case-insensitive name.
func (l *Ledger) FindHabit(ref string) (models.Habit, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(ref); i >= 0 {
		return l.state.Habits[i].Clone(), nil
	}
	if h, ok := l.findByNameLocked(ref); ok {
		return h.Clone(), nil
	}
	return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, ref)
}

func (l *Ledger) findByNameLocked(name string) (models.Habit, bool) {
	name = strings.TrimSpace(name)
	for _, h := range l.state.Habits {
		if strings.EqualFold(h.Name, name) {
			return h, true
		}
	}
	return models.Habit{}, false
}

// ResetAll deletes every habit. The profile and preferences are kept.
func (l *Ledger) ResetAll() {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.state.Habits)
	l.state.Habits = []models.Habit{}
	l.persist()

	logger.Info("All habits reset", "removed", n)
}
