package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitrack/internal/clock"
	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/ledger"
	"github.com/julianstephens/habitrack/internal/tui/components/habitlist"
)

type SessionState int

const (
	StateDashboard SessionState = iota
	StateHabits
	StateInsights
	StateAddHabit
	StateCheckIn
	StateConfirmDelete
)

// tabCount is the number of states reachable with tab.
const tabCount = 3

type HabitFormModel struct {
	Name         string
	Icon         string
	Goal         string
	Unit         string
	Frequency    string
	Days         string
	ReminderTime string
}

type CheckInFormModel struct {
	HabitID string
	Value   string
	Notes   string
}

type Model struct {
	ledger          *ledger.Ledger
	clock           clock.Clock
	state           SessionState
	keys            KeyMap
	help            help.Model
	habitList       habitlist.Model
	form            *huh.Form
	habitForm       *HabitFormModel
	checkInForm     *CheckInFormModel
	habitToDeleteID string
	period          int
	status          string
	formError       string
	quitting        bool
	width           int
	height          int
}

func NewModel(l *ledger.Ledger, c clock.Clock) Model {
	if c == nil {
		c = clock.System()
	}
	return Model{
		ledger:    l,
		clock:     c,
		state:     StateDashboard,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		habitList: habitlist.New(l.Habits(), c.Now(), 80, 20),
		period:    constants.ChartPeriodWeek,
	}
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits:
		hk := habitlist.DefaultKeyMap()
		keys = append(keys, hk.Add, hk.CheckIn, hk.Complete, hk.Delete, m.keys.Period)
	case StateDashboard:
		keys = append(keys, m.keys.Theme)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	hk := habitlist.DefaultKeyMap()
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{hk.Add, hk.CheckIn, hk.Complete, hk.Delete},
		{m.keys.Period, m.keys.Theme},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh reloads the habit list after a ledger mutation.
func (m *Model) refresh() {
	m.habitList.SetHabits(m.ledger.Habits(), m.clock.Now())
}
