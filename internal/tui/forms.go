package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/utils"
)

func validateNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return errors.New("must be a number")
	}
	if v < 0 {
		return errors.New("must not be negative")
	}
	return nil
}

func NewHabitForm(hf *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&hf.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Placeholder("💧").
				Value(&hf.Icon),
			huh.NewInput().
				Title("Daily goal").
				Value(&hf.Goal).
				Validate(validateNumber),
			huh.NewInput().
				Title("Unit").
				Placeholder("glasses").
				Value(&hf.Unit),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Custom days", string(models.FrequencyCustom)),
				).
				Value(&hf.Frequency),
			huh.NewInput().
				Title("Custom days").
				Description("Only used with custom frequency, e.g. mon,wed,fri").
				Value(&hf.Days),
			huh.NewInput().
				Title("Reminder time").
				Description("HH:MM, leave empty for no reminder").
				Value(&hf.ReminderTime),
		),
	).WithTheme(huh.ThemeDracula())
}

func NewCheckInForm(cf *CheckInFormModel, h models.Habit) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("%s %s: value (%s)", h.Icon, h.Name, h.Unit)).
				Value(&cf.Value).
				Validate(validateNumber),
			huh.NewText().
				Title("Notes").
				Value(&cf.Notes),
		),
	).WithTheme(huh.ThemeDracula())
}

// submitHabitForm creates the habit described by the form.
func (m *Model) submitHabitForm() (models.Habit, error) {
	hf := m.habitForm
	goal, err := strconv.ParseFloat(strings.TrimSpace(hf.Goal), 64)
	if err != nil {
		return models.Habit{}, fmt.Errorf("invalid goal: %w", err)
	}

	spec := models.HabitSpec{
		Name:      hf.Name,
		Icon:      hf.Icon,
		Unit:      hf.Unit,
		Goal:      goal,
		Frequency: models.Frequency(hf.Frequency),
	}
	if spec.Frequency == models.FrequencyCustom {
		days, err := utils.ParseWeekdays(hf.Days)
		if err != nil {
			return models.Habit{}, err
		}
		spec.CustomDays = days
	}
	if t := strings.TrimSpace(hf.ReminderTime); t != "" {
		days, _ := utils.ParseWeekdays("all")
		spec.Reminder = &models.Reminder{Time: t, Days: days, Enabled: true}
	}

	return m.ledger.CreateHabit(spec)
}

// submitCheckIn records the check-in described by the form for today.
func (m *Model) submitCheckIn() (models.Habit, error) {
	cf := m.checkInForm
	value, err := strconv.ParseFloat(strings.TrimSpace(cf.Value), 64)
	if err != nil {
		return models.Habit{}, fmt.Errorf("invalid value: %w", err)
	}
	return m.ledger.CheckIn(cf.HabitID, m.clock.Now(), value, strings.TrimSpace(cf.Notes))
}
