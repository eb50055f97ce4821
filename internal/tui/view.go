package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/constants"
)

const chartWidth = 24

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateDashboard:
		content = m.viewDashboard()
	case StateHabits:
		content = m.viewHabits()
	case StateInsights:
		content = m.viewInsights()
	case StateAddHabit, StateCheckIn:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs(), content}
	if m.status != "" {
		parts = append(parts, docStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Dashboard", "Habits", "Insights"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// bar renders a horizontal bar of width cells filled to part/whole.
func bar(part, whole float64, width int) string {
	filled := 0
	if whole > 0 {
		filled = int(min(max(part/whole, 0), 1) * float64(width))
	}
	return barStyle.Render(strings.Repeat("█", filled)) + emptyBarStyle.Render(strings.Repeat("░", width-filled))
}

func stat(label string, value string) string {
	return statStyle.Render(lipgloss.JoinVertical(lipgloss.Left, labelStyle.Render(label), value))
}

func (m Model) viewDashboard() string {
	s := m.ledger.Summary()
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		stat("Habits", fmt.Sprintf("%d", s.Habits)),
		stat("Completion", fmt.Sprintf("%d%%", s.CompletionRate)),
		stat("Check-ins", fmt.Sprintf("%d", s.TotalCheckIns)),
		stat("Best streak", fmt.Sprintf("%d", s.LongestStreak)),
	)

	var b strings.Builder
	b.WriteString("This week\n")
	for _, d := range m.ledger.WeeklyCompletionCounts() {
		fmt.Fprintf(&b, "%s %s %d/%d\n", d.Day, bar(float64(d.Completed), float64(d.Total), chartWidth), d.Completed, d.Total)
	}

	user := m.ledger.User()
	footer := labelStyle.Render(fmt.Sprintf("%s · theme %s", user.Name, user.Preferences.Theme))
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, stats, "", b.String(), footer))
}

func (m Model) viewHabits() string {
	list := m.habitList.View()
	h, ok := m.habitList.Selected()
	if !ok {
		return docStyle.Render(list)
	}

	points, err := m.ledger.ChartSeries(h.ID, m.period)
	if err != nil {
		return docStyle.Render(list)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s last %d days\n", h.Name, m.period)
	for _, p := range points {
		mark := " "
		if p.Goal > 0 && p.Value >= p.Goal {
			mark = successStyle.Render("✓")
		}
		fmt.Fprintf(&b, "%s %s %s %s\n", p.Date.Format("01/02"), bar(p.Value, p.Goal, chartWidth), mark, cli.FormatValue(p.Value))
	}
	if len(h.Badges) > 0 {
		b.WriteString("\nBadges:")
		for _, badge := range h.Badges {
			fmt.Fprintf(&b, " %s %s", badge.Icon, badge.Name)
		}
		b.WriteString("\n")
	}

	if m.period == constants.ChartPeriodMonth {
		return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, list, b.String()))
	}
	return docStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", b.String()))
}

func (m Model) viewInsights() string {
	insights := m.ledger.Insights()
	if len(insights) == 0 {
		return docStyle.Render(warningStyle.Render("No insights yet. Keep checking in!"))
	}

	var b strings.Builder
	for _, text := range insights {
		fmt.Fprintf(&b, "💡 %s\n", text)
	}
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDeleteID
	if h, err := m.ledger.Habit(m.habitToDeleteID); err == nil {
		name = h.Name
	}
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q with all its logs and badges?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
