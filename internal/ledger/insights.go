package ledger

import (
	"fmt"
	"sort"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
)

// FallbackInsight is shown when no rule has anything to say.
const FallbackInsight = "Keep tracking your habits consistently to see insights here."

// insightRule inspects all habits and returns zero or more messages.
type insightRule func(habits []models.Habit) []string

// insightRules run in order and every message they produce is kept.
var insightRules = []insightRule{
	overallPraise,
	overallStruggle,
	habitTrends,
	tooFewHabits,
}

// Insights derives human-readable observations from the habits.
func Insights(habits []models.Habit) []string {
	var out []string
	for _, rule := range insightRules {
		out = append(out, rule(habits)...)
	}
	if len(out) == 0 {
		return []string{FallbackInsight}
	}
	return out
}

func overallPraise(habits []models.Habit) []string {
	if CompletionRate(habits) >= constants.InsightHighCompletionRate {
		return []string{"You're doing great! You've completed over 80% of your habit check-ins."}
	}
	return nil
}

func overallStruggle(habits []models.Habit) []string {
	if CompletionRate(habits) < constants.InsightLowCompletionRate {
		return []string{"You're struggling a bit with consistency. Try focusing on fewer habits."}
	}
	return nil
}

func habitTrends(habits []models.Habit) []string {
	var out []string
	for _, h := range habits {
		recent := RecentLogs(h, constants.InsightRecentLogWindow)
		if len(recent) == 0 {
			continue
		}
		completed := countCompleted(recent)
		rate := float64(completed) / float64(len(recent)) * 100

		switch {
		case len(recent) >= constants.InsightPraiseMinLogs && completed == len(recent):
			out = append(out, fmt.Sprintf("Great job maintaining your \"%s\" streak!", h.Name))
		case len(recent) >= constants.InsightStruggleMinLogs && rate < constants.InsightStruggleRate:
			out = append(out, fmt.Sprintf("You're struggling with \"%s\". Consider adjusting your goal to make it more achievable.", h.Name))
		}
	}
	return out
}

func tooFewHabits(habits []models.Habit) []string {
	if len(habits) < constants.InsightMinHabitsSuggestion {
		return []string{"Try adding more habits to track for a more comprehensive view of your wellbeing."}
	}
	return nil
}

// RecentLogs returns up to n of h's logs, most recent day first. h is not modified.
func RecentLogs(h models.Habit, n int) []models.HabitLog {
	logs := append([]models.HabitLog(nil), h.Logs...)
	sort.SliceStable(logs, func(i, j int) bool {
		return logs[i].Date.After(logs[j].Date)
	})
	if len(logs) > n {
		logs = logs[:n]
	}
	return logs
}
