package ledger

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/habitrack/internal/models"
)

func logsOf(completed ...bool) []models.HabitLog {
	logs := make([]models.HabitLog, len(completed))
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range completed {
		logs[i] = models.HabitLog{Date: base.AddDate(0, 0, i), Completed: c}
	}
	return logs
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		habits []models.Habit
		want   int
	}{
		{name: "no habits", habits: nil, want: 0},
		{name: "habits without logs", habits: []models.Habit{{}, {}}, want: 0},
		{name: "all completed", habits: []models.Habit{{Logs: logsOf(true, true)}}, want: 100},
		{name: "two of three", habits: []models.Habit{{Logs: logsOf(true, true, false)}}, want: 67},
		{name: "half rounds up", habits: []models.Habit{{Logs: logsOf(true)}, {Logs: logsOf(false, false, false, false, false, false, false)}}, want: 13},
		{
			name:   "across habits",
			habits: []models.Habit{{Logs: logsOf(true, false)}, {Logs: logsOf(true, true)}},
			want:   75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionRate(tt.habits))
		})
	}
}

func TestHabitCompletionRate(t *testing.T) {
	assert.Equal(t, 0, HabitCompletionRate(models.Habit{}))
	assert.Equal(t, 33, HabitCompletionRate(models.Habit{Logs: logsOf(true, false, false)}))
}

func TestLongestStreakAndTotals(t *testing.T) {
	assert.Equal(t, 0, LongestStreak(nil))

	habits := []models.Habit{
		{Streak: 3, Logs: logsOf(true, true, true)},
		{Streak: 11, Logs: logsOf(true)},
		{Streak: 0},
	}
	assert.Equal(t, 11, LongestStreak(habits))
	assert.Equal(t, 4, TotalCheckIns(habits))

	want := Summary{Habits: 3, CompletionRate: 100, TotalCheckIns: 4, LongestStreak: 11}
	if diff := cmp.Diff(want, Summarize(habits)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}
}

func TestChartSeries(t *testing.T) {
	today := time.Date(2026, 3, 8, 15, 30, 0, 0, time.UTC) // Sunday
	h := models.Habit{
		Goal: 8,
		Logs: []models.HabitLog{
			{Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), Value: 9},
			{Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Value: 4},
			{Date: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), Value: 100}, // outside the window
		},
	}

	got := ChartSeries(h, 7, today)

	want := []ChartPoint{
		{Day: "Mon", Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Value: 0, Goal: 8},
		{Day: "Tue", Date: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC), Value: 0, Goal: 8},
		{Day: "Wed", Date: time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), Value: 0, Goal: 8},
		{Day: "Thu", Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), Value: 4, Goal: 8},
		{Day: "Fri", Date: time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), Value: 0, Goal: 8},
		{Day: "Sat", Date: time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), Value: 0, Goal: 8},
		{Day: "Sun", Date: time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC), Value: 9, Goal: 8},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ChartSeries() mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, ChartSeries(h, 30, today), 30)
	assert.Empty(t, ChartSeries(h, 0, today))
	assert.Empty(t, ChartSeries(h, -3, today))
	assert.Len(t, ChartSeries(models.Habit{Goal: 1}, 7, today), 7, "habit without logs still gets a dense series")
}

func TestWeeklyCompletionCounts(t *testing.T) {
	today := time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC)
	d := func(day int) time.Time { return time.Date(2026, 3, day, 0, 0, 0, 0, time.UTC) }

	habits := []models.Habit{
		{Logs: []models.HabitLog{{Date: d(8), Completed: true}, {Date: d(7), Completed: true}}},
		{Logs: []models.HabitLog{{Date: d(8), Completed: true}, {Date: d(6), Completed: false}}},
		{},
	}

	got := WeeklyCompletionCounts(habits, today)
	if assert.Len(t, got, 7) {
		assert.Equal(t, DayCompletion{Day: "Sun", Date: d(8), Completed: 2, Total: 3}, got[6])
		assert.Equal(t, 1, got[5].Completed)
		assert.Equal(t, 0, got[4].Completed)
		for _, day := range got {
			assert.Equal(t, 3, day.Total)
		}
	}
}
