package ledger

import (
	"fmt"
)

func (l *Ledger) CompletionRate() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return CompletionRate(l.state.Habits)
}

func (l *Ledger) LongestStreak() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return LongestStreak(l.state.Habits)
}

func (l *Ledger) TotalCheckIns() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return TotalCheckIns(l.state.Habits)
}

func (l *Ledger) Summary() Summary {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Summarize(l.state.Habits)
}

// ChartSeries returns the habit's last n days ending today.
func (l *Ledger) ChartSeries(habitID string, n int) ([]ChartPoint, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.indexOf(habitID)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}
	return ChartSeries(l.state.Habits[i], n, l.now()), nil
}

func (l *Ledger) WeeklyCompletionCounts() []DayCompletion {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return WeeklyCompletionCounts(l.state.Habits, l.now())
}

func (l *Ledger) HabitCompletionRate(habitID string) (int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	i := l.indexOf(habitID)
	if i < 0 {
		return 0, fmt.Errorf("%w: %s", ErrHabitNotFound, habitID)
	}
	return HabitCompletionRate(l.state.Habits[i]), nil
}

func (l *Ledger) Insights() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return Insights(l.state.Habits)
}
