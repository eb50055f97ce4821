// Package ledger owns the habit state: it records check-ins, moves streaks,
// awards badges and answers analytics queries. Every mutation is handed to the
// storage provider as a full snapshot.
package ledger

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/julianstephens/habitrack/internal/clock"
	"github.com/julianstephens/habitrack/internal/logger"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage"
)

// Notifier delivers user-facing messages such as badge awards.
type Notifier interface {
	Notify(text string) error
}

type Ledger struct {
	mu       sync.RWMutex
	state    models.State
	store    storage.Provider
	clock    clock.Clock
	notifier Notifier
	rules    []BadgeRule
}

type Option func(*Ledger)

// WithClock replaces the system clock.
func WithClock(c clock.Clock) Option {
	return func(l *Ledger) {
		l.clock = c
	}
}

// WithNotifier sets where badge notifications go. Without one they are only logged.
func WithNotifier(n Notifier) Option {
	return func(l *Ledger) {
		l.notifier = n
	}
}

// WithBadgeRules adds rules evaluated after the default ones.
func WithBadgeRules(rules ...BadgeRule) Option {
	return func(l *Ledger) {
		l.rules = append(l.rules, rules...)
	}
}

// Open loads the state from store and returns a ledger that persists to it.
// A corrupt section is logged and replaced by its default so the ledger still opens.
func Open(store storage.Provider, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store: store,
		clock: clock.System(),
		rules: DefaultBadgeRules(),
	}
	for _, opt := range opts {
		opt(l)
	}

	state, err := store.Load()
	if err != nil {
		if !errors.Is(err, storage.ErrCorruptState) {
			return nil, fmt.Errorf("failed to load state: %w", err)
		}
		logger.Warn("Recovered from corrupt state, falling back to defaults", "error", err)
	}

	if state.User.ID == "" {
		state.User = models.DefaultUserProfile(l.clock.Now())
	}
	if state.Habits == nil {
		state.Habits = []models.Habit{}
	}
	l.state = state
	return l, nil
}

// persist hands a snapshot to the store. Failures are logged and the
// in-memory change stands. Callers hold the write lock.
func (l *Ledger) persist() {
	if err := l.store.Save(l.state.Clone()); err != nil {
		logger.Warn("Failed to persist state", "error", err)
	}
}

// notify sends each message if the user has notifications enabled. It must
// be called without holding the lock.
func (l *Ledger) notify(messages []string) {
	if len(messages) == 0 {
		return
	}
	l.mu.RLock()
	enabled := l.state.User.Preferences.Notifications
	l.mu.RUnlock()

	for _, msg := range messages {
		logger.Info("Notification", "message", msg)
		if !enabled || l.notifier == nil {
			continue
		}
		if err := l.notifier.Notify(msg); err != nil {
			logger.Warn("Failed to send notification", "error", err)
		}
	}
}

func (l *Ledger) now() time.Time {
	return l.clock.Now()
}

// indexOf returns the position of the habit with id, or -1.
func (l *Ledger) indexOf(id string) int {
	for i := range l.state.Habits {
		if l.state.Habits[i].ID == id {
			return i
		}
	}
	return -1
}

// Habits returns a copy of every habit in creation order.
func (l *Ledger) Habits() []models.Habit {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.habitsLocked()
}

func (l *Ledger) habitsLocked() []models.Habit {
	out := make([]models.Habit, len(l.state.Habits))
	for i, h := range l.state.Habits {
		out[i] = h.Clone()
	}
	return out
}

// Habit returns a copy of the habit with id.
func (l *Ledger) Habit(id string) (models.Habit, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.indexOf(id)
	if i < 0 {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrHabitNotFound, id)
	}
	return l.state.Habits[i].Clone(), nil
}

// User returns the profile.
func (l *Ledger) User() models.UserProfile {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.User
}

// State returns a deep copy of everything the ledger holds.
func (l *Ledger) State() models.State {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.state.Clone()
}
