package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/habitrack/internal/clock"
	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/ledger"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/storage"
	"github.com/julianstephens/habitrack/internal/tui/components/habitlist"
)

func newTestModel(t *testing.T) (Model, *ledger.Ledger, *clock.FakeClock) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "habitrack.json"))
	require.NoError(t, store.Init())
	fc := clock.NewFakeClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC))
	l, err := ledger.Open(store, ledger.WithClock(fc))
	require.NoError(t, err)
	return NewModel(l, fc), l, fc
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestTabCycle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, StateDashboard, m.state)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, StateHabits, m.state)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, StateInsights, m.state)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, StateDashboard, m.state)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, StateInsights, m.state)
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, cmd := update(t, m, keyPress('q'))
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}

func TestPeriodToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Equal(t, constants.ChartPeriodWeek, m.period)
	m, _ = update(t, m, keyPress('p'))
	assert.Equal(t, constants.ChartPeriodMonth, m.period)
	m, _ = update(t, m, keyPress('p'))
	assert.Equal(t, constants.ChartPeriodWeek, m.period)
}

func TestThemeToggle(t *testing.T) {
	m, l, _ := newTestModel(t)
	before := l.User().Preferences.Theme

	m, _ = update(t, m, keyPress('t'))
	after := l.User().Preferences.Theme
	assert.NotEqual(t, before, after)
	assert.Contains(t, m.status, "Theme switched to "+after)
}

func TestCompleteFromList(t *testing.T) {
	m, l, _ := newTestModel(t)
	h, err := l.CreateHabit(models.HabitSpec{Name: "Water", Icon: "💧", Goal: 8, Unit: "glasses"})
	require.NoError(t, err)
	m.refresh()
	m.state = StateHabits

	m, cmd := update(t, m, keyPress('x'))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, habitlist.CompleteMsg{ID: h.ID}, msg)

	m, _ = update(t, m, msg)
	got, err := l.Habit(h.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Streak)
	assert.Contains(t, m.status, "✓ Logged 8 glasses for Water (streak 1, Novice)")
}

func TestWeekStreakAwardsBadgeStatus(t *testing.T) {
	m, l, fc := newTestModel(t)
	h, err := l.CreateHabit(models.HabitSpec{Name: "Run", Goal: 1})
	require.NoError(t, err)
	for i := 0; i < 6; i++ {
		_, err := l.CheckIn(h.ID, fc.Now(), 1, "")
		require.NoError(t, err)
		fc.AdvanceDays(1)
	}
	m.refresh()

	m, _ = update(t, m, habitlist.CompleteMsg{ID: h.ID})
	assert.Contains(t, m.status, "streak 7, Pro")
	assert.Contains(t, m.status, `You earned the "Week Warrior" badge!`)
}

func TestSubmitHabitForm(t *testing.T) {
	m, l, _ := newTestModel(t)
	m.habitForm = &HabitFormModel{
		Name:         "Stretch",
		Goal:         "10",
		Unit:         "minutes",
		Frequency:    string(models.FrequencyCustom),
		Days:         "mon,wed",
		ReminderTime: "07:30",
	}

	h, err := m.submitHabitForm()
	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Monday, time.Wednesday}, h.CustomDays)
	require.NotNil(t, h.Reminder)
	assert.Equal(t, "07:30", h.Reminder.Time)
	assert.Len(t, l.Habits(), 1)

	m.habitForm = &HabitFormModel{Name: "Bad", Goal: "abc", Frequency: string(models.FrequencyDaily)}
	_, err = m.submitHabitForm()
	assert.Error(t, err)
}

func TestSubmitCheckIn(t *testing.T) {
	m, l, _ := newTestModel(t)
	h, err := l.CreateHabit(models.HabitSpec{Name: "Water", Goal: 8})
	require.NoError(t, err)

	m.checkInForm = &CheckInFormModel{HabitID: h.ID, Value: "3", Notes: " morning "}
	got, err := m.submitCheckIn()
	require.NoError(t, err)
	idx := got.LogIndex(m.clock.Now())
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, 3.0, got.Logs[idx].Value)
	assert.Equal(t, "morning", got.Logs[idx].Notes)
	assert.False(t, got.Logs[idx].Completed)
}

func TestConfirmDelete(t *testing.T) {
	m, l, _ := newTestModel(t)
	h, err := l.CreateHabit(models.HabitSpec{Name: "Read", Goal: 1})
	require.NoError(t, err)
	m.refresh()

	m, _ = update(t, m, habitlist.DeleteHabitMsg{ID: h.ID})
	assert.Equal(t, StateConfirmDelete, m.state)
	assert.Contains(t, m.View(), `Delete "Read"`)

	m, _ = update(t, m, keyPress('n'))
	assert.Equal(t, StateHabits, m.state)
	assert.Len(t, l.Habits(), 1)

	m, _ = update(t, m, habitlist.DeleteHabitMsg{ID: h.ID})
	m, _ = update(t, m, keyPress('y'))
	assert.Equal(t, StateHabits, m.state)
	assert.Empty(t, l.Habits())
	assert.Equal(t, "Habit deleted.", m.status)
}

func TestViews(t *testing.T) {
	m, l, fc := newTestModel(t)
	h, err := l.CreateHabit(models.HabitSpec{Name: "Water", Goal: 8})
	require.NoError(t, err)
	_, err = l.CheckIn(h.ID, fc.Now(), 8, "")
	require.NoError(t, err)
	m.refresh()

	out := m.View()
	assert.Contains(t, out, "Completion")
	assert.Contains(t, out, "This week")

	m.state = StateHabits
	assert.Contains(t, m.View(), "Water last 7 days")

	m.state = StateInsights
	assert.Contains(t, m.View(), "💡")
}

func TestEscLeavesForm(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, habitlist.AddHabitMsg{})
	assert.Equal(t, StateAddHabit, m.state)
	require.NotNil(t, m.habitForm)
	assert.Equal(t, "1", m.habitForm.Goal)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, StateHabits, m.state)
}

func TestBarClampsRatio(t *testing.T) {
	tests := []struct {
		name        string
		part, whole float64
		want        int
	}{
		{"half", 5, 10, 5},
		{"empty", 0, 10, 0},
		{"over goal", 15, 10, 10},
		{"huge value", 1e300, 1, 10},
		{"tiny goal", 1, 1e-300, 10},
		{"no goal", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bar(tt.part, tt.whole, 10)
			assert.Equal(t, tt.want, strings.Count(got, "█"))
			assert.Equal(t, 10-tt.want, strings.Count(got, "░"))
		})
	}
}
