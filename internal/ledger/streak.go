package ledger

import (
	"time"

	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/utils"
)

// NextStreak returns the streak that follows prev after a check-in.
func NextStreak(prev int, completed bool) int {
	if completed {
		return prev + 1
	}
	return 0
}

// StreakTransition is the evaluator's output for one check-in. Badge rules
// read it to decide whether they fire.
type StreakTransition struct {
	Habit     models.Habit
	Day       time.Time
	Completed bool
	Previous  int
	Current   int
	Evaluated bool // false for back-dated check-ins, which leave the streak alone
}

// evaluateStreak moves h's streak for a check-in on day.
//
// The streak is evaluated from the value it had before the latest check-in
// day, so re-logging that day replaces its effect instead of stacking on top.
// A check-in for a later day starts a new evaluation from the current streak.
// Check-ins for days before the latest one only update the log.
func evaluateStreak(h *models.Habit, day time.Time, completed bool) StreakTransition {
	t := StreakTransition{Day: day, Completed: completed, Previous: h.Streak, Current: h.Streak}

	var base int
	switch {
	case h.StreakDay == nil:
		base = h.Streak
	case utils.SameDay(day, *h.StreakDay):
		base = h.StreakBase
	case day.After(*h.StreakDay):
		base = h.Streak
	default:
		return t
	}

	if h.StreakDay == nil || !utils.SameDay(day, *h.StreakDay) {
		d := day
		h.StreakDay = &d
		h.StreakBase = base
	}

	h.Streak = NextStreak(base, completed)
	t.Previous = base
	t.Current = h.Streak
	t.Evaluated = true
	return t
}
