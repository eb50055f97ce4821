package ledger

import (
	"math"
	"time"

	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/utils"
)

// ChartPoint is one day of a habit's value series.
type ChartPoint struct {
	Day   string    `json:"day"` // short weekday label
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
	Goal  float64   `json:"goal"`
}

// DayCompletion counts the habits completed on one day.
type DayCompletion struct {
	Day       string    `json:"day"`
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Total     int       `json:"total"`
}

// Summary bundles the dashboard statistics.
type Summary struct {
	Habits         int `json:"habits" yaml:"habits"`
	CompletionRate int `json:"completion_rate" yaml:"completion_rate"`
	TotalCheckIns  int `json:"total_check_ins" yaml:"total_check_ins"`
	LongestStreak  int `json:"longest_streak" yaml:"longest_streak"`
}

// percent rounds part/whole*100 half away from zero, 0 for an empty whole.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

func countCompleted(logs []models.HabitLog) int {
	n := 0
	for _, log := range logs {
		if log.Completed {
			n++
		}
	}
	return n
}

// CompletionRate is the percentage of all logs that are completed.
func CompletionRate(habits []models.Habit) int {
	total, completed := 0, 0
	for _, h := range habits {
		total += len(h.Logs)
		completed += countCompleted(h.Logs)
	}
	return percent(completed, total)
}

// HabitCompletionRate is the percentage of one habit's logs that are completed.
func HabitCompletionRate(h models.Habit) int {
	return percent(countCompleted(h.Logs), len(h.Logs))
}

// LongestStreak is the highest current streak, 0 without habits.
func LongestStreak(habits []models.Habit) int {
	longest := 0
	for _, h := range habits {
		longest = max(longest, h.Streak)
	}
	return longest
}

// TotalCheckIns counts logs across all habits.
func TotalCheckIns(habits []models.Habit) int {
	total := 0
	for _, h := range habits {
		total += len(h.Logs)
	}
	return total
}

func Summarize(habits []models.Habit) Summary {
	return Summary{
		Habits:         len(habits),
		CompletionRate: CompletionRate(habits),
		TotalCheckIns:  TotalCheckIns(habits),
		LongestStreak:  LongestStreak(habits),
	}
}

// ChartSeries returns one point per day for the n days ending today, oldest
// first. Days without a log have value 0.
func ChartSeries(h models.Habit, n int, today time.Time) []ChartPoint {
	days := utils.LastDays(today, n)
	points := make([]ChartPoint, len(days))
	for i, day := range days {
		value := 0.0
		if idx := h.LogIndex(day); idx >= 0 {
			value = h.Logs[idx].Value
		}
		points[i] = ChartPoint{
			Day:   day.Format(constants.ShortWeekdayFormat),
			Date:  day,
			Value: value,
			Goal:  h.Goal,
		}
	}
	return points
}

// WeeklyCompletionCounts returns, for each of the 7 days ending today, how many
// habits have a completed log that day. Total is the current habit count for
// every day, including days before some habits existed.
func WeeklyCompletionCounts(habits []models.Habit, today time.Time) []DayCompletion {
	days := utils.LastDays(today, constants.ChartPeriodWeek)
	out := make([]DayCompletion, len(days))
	for i, day := range days {
		completed := 0
		for _, h := range habits {
			if idx := h.LogIndex(day); idx >= 0 && h.Logs[idx].Completed {
				completed++
			}
		}
		out[i] = DayCompletion{
			Day:       day.Format(constants.ShortWeekdayFormat),
			Date:      day,
			Completed: completed,
			Total:     len(habits),
		}
	}
	return out
}
