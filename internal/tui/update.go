package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case StateAddHabit, StateCheckIn:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, max(msg.Height-16, 5))
		return m, nil

	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{Goal: "1", Frequency: string(models.FrequencyDaily)}
		m.form = NewHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.CheckInMsg:
		h, err := m.ledger.Habit(msg.ID)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.checkInForm = &CheckInFormModel{HabitID: h.ID, Value: cli.FormatValue(h.Goal)}
		m.form = NewCheckInForm(m.checkInForm, h)
		m.state = StateCheckIn
		return m, m.form.Init()

	case habitlist.CompleteMsg:
		h, err := m.ledger.Habit(msg.ID)
		if err == nil {
			_, err = m.checkIn(h, h.Goal, "")
		}
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		}
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Period):
			if m.period == constants.ChartPeriodWeek {
				m.period = constants.ChartPeriodMonth
			} else {
				m.period = constants.ChartPeriodWeek
			}
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			profile := m.ledger.ToggleTheme()
			m.status = fmt.Sprintf("Theme switched to %s.", profile.Preferences.Theme)
			return m, nil
		}
	}

	if m.state == StateHabits {
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.finishForm()
	case huh.StateAborted:
		m.state = StateHabits
	}
	return m, cmd
}

// finishForm applies a completed form and returns to the habit list.
func (m *Model) finishForm() {
	defer func() { m.state = StateHabits }()

	switch m.state {
	case StateAddHabit:
		h, err := m.submitHabitForm()
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return
		}
		m.refresh()
		m.status = fmt.Sprintf("Added habit: %s %s", h.Icon, h.Name)
	case StateCheckIn:
		before, err := m.ledger.Habit(m.checkInForm.HabitID)
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return
		}
		after, err := m.submitCheckIn()
		if err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
			return
		}
		m.afterCheckIn(before, after)
	}
}

func (m *Model) checkIn(h models.Habit, value float64, notes string) (models.Habit, error) {
	after, err := m.ledger.CheckIn(h.ID, m.clock.Now(), value, notes)
	if err != nil {
		return h, err
	}
	m.afterCheckIn(h, after)
	return after, nil
}

func (m *Model) afterCheckIn(before, after models.Habit) {
	m.refresh()
	m.status = fmt.Sprintf("✓ Logged %s %s for %s (streak %d, %s)",
		cli.FormatValue(after.Logs[after.LogIndex(m.clock.Now())].Value), after.Unit, after.Name, after.Streak, after.Level())
	for _, b := range after.Badges {
		if !before.HasBadge(b.Name) {
			m.status += fmt.Sprintf("\n🏆 %s You earned the %q badge!", b.Icon, b.Name)
		}
	}
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.ledger.DeleteHabit(m.habitToDeleteID); err != nil {
			m.status = fmt.Sprintf("Error: %v", err)
		} else {
			m.refresh()
			m.status = "Habit deleted."
		}
		m.habitToDeleteID = ""
		m.state = StateHabits
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.state = StateHabits
	}
	return m, nil
}
