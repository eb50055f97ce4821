package habits

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/models"
	"github.com/julianstephens/habitrack/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Show   HabitShowCmd   `cmd:"" help:"Show a habit with its chart and badges."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit with its logs and badges."`
}

type HabitAddCmd struct {
	Name         string  `arg:"" help:"Habit name."`
	Goal         float64 `help:"Daily goal." default:"1"`
	Unit         string  `help:"Unit of the goal, e.g. glasses."`
	Icon         string  `help:"Emoji shown next to the habit."`
	Color        string  `help:"Display color as a hex string."`
	Frequency    string  `help:"How often the habit is tracked." enum:"daily,weekly,custom" default:"daily"`
	Days         string  `help:"Weekdays for custom frequency (e.g. mon,wed,fri)."`
	ReminderTime string  `help:"Reminder time in HH:MM format."`
	ReminderDays string  `help:"Weekdays the reminder fires on." default:"all"`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	spec := models.HabitSpec{
		Name:      c.Name,
		Icon:      c.Icon,
		Unit:      c.Unit,
		Goal:      c.Goal,
		Frequency: models.Frequency(c.Frequency),
		Color:     c.Color,
	}

	if c.Days != "" {
		days, err := utils.ParseWeekdays(c.Days)
		if err != nil {
			return err
		}
		spec.CustomDays = days
	}

	if c.ReminderTime != "" {
		days, err := utils.ParseWeekdays(c.ReminderDays)
		if err != nil {
			return err
		}
		spec.Reminder = &models.Reminder{Time: c.ReminderTime, Days: days, Enabled: true}
	}

	habit, err := ctx.Ledger.CreateHabit(spec)
	if err != nil {
		return err
	}

	ctx.Printf("Added habit: %s %s (goal %s %s, %s)\n", habit.Icon, habit.Name, cli.FormatValue(habit.Goal), habit.Unit, habit.Frequency)
	if habit.Reminder != nil {
		ctx.Printf("  Reminder at %s on %s\n", habit.Reminder.Time, habit.Reminder.FormatDays())
	}
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
	habits := ctx.Ledger.Habits()
	if len(habits) == 0 {
		ctx.Println("No habits found. Add one with 'habitrack habit add'.")
		return nil
	}

	today := ctx.Now()
	for _, h := range habits {
		status := "[ ]"
		if i := h.LogIndex(today); i >= 0 {
			status = "[~]"
			if h.Logs[i].Completed {
				status = "[x]"
			}
		}
		ctx.Printf("%s %s %-24s streak %3d  %-8s  goal %s %s\n",
			status, h.Icon, h.Name, h.Streak, h.Level(), cli.FormatValue(h.Goal), h.Unit)
	}
	return nil
}

type HabitShowCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
	Days int    `help:"Chart period in days (7 or 30)." default:"7"`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	if c.Days != constants.ChartPeriodWeek && c.Days != constants.ChartPeriodMonth {
		return fmt.Errorf("invalid chart period %d (expected %d or %d)", c.Days, constants.ChartPeriodWeek, constants.ChartPeriodMonth)
	}
	h, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}
	rate, err := ctx.Ledger.HabitCompletionRate(h.ID)
	if err != nil {
		return err
	}
	points, err := ctx.Ledger.ChartSeries(h.ID, c.Days)
	if err != nil {
		return err
	}

	now := ctx.Now()
	ctx.Printf("%s %s\n", h.Icon, h.Name)
	ctx.Printf("  Goal:       %s %s (%s)\n", cli.FormatValue(h.Goal), h.Unit, describeFrequency(h))
	ctx.Printf("  Streak:     %d (%s)\n", h.Streak, h.Level())
	ctx.Printf("  Completion: %d%% of %d check-ins\n", rate, len(h.Logs))
	ctx.Printf("  Created:    %s\n", humanize.RelTime(h.Created, now, "ago", "from now"))
	if h.Reminder != nil {
		state := "on"
		if !h.Reminder.Enabled {
			state = "off"
		}
		ctx.Printf("  Reminder:   %s, %s (%s)\n", h.Reminder.Time, h.Reminder.FormatDays(), state)
	}

	ctx.Printf("\nLast %d days:\n", c.Days)
	ctx.Printf("%s", cli.RenderChart(points))

	if len(h.Badges) > 0 {
		ctx.Println("\nBadges:")
		for _, b := range h.Badges {
			ctx.Printf("  %s %s, earned %s\n", b.Icon, b.Name, humanize.RelTime(b.Acquired, now, "ago", "from now"))
		}
	}
	return nil
}

func describeFrequency(h models.Habit) string {
	if h.Frequency != models.FrequencyCustom {
		return string(h.Frequency)
	}
	days := make([]string, len(h.CustomDays))
	for i, wd := range h.CustomDays {
		days[i] = wd.String()[:3]
	}
	return "custom: " + strings.Join(days, ", ")
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name or ID."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	h, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	ok, err := cli.Confirm(c.Yes,
		fmt.Sprintf("Delete %q?", h.Name),
		fmt.Sprintf("This removes %d check-ins and %d badges.", len(h.Logs), len(h.Badges)))
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Delete cancelled.")
		return nil
	}

	if err := ctx.Ledger.DeleteHabit(h.ID); err != nil {
		return err
	}
	ctx.Printf("Deleted habit: %s\n", h.Name)
	return nil
}

// CheckInCmd records the value of a habit for a day.
type CheckInCmd struct {
	Name  string  `arg:"" help:"Habit name or ID."`
	Value float64 `arg:"" help:"Value achieved for the day."`
	Date  string  `help:"Date in YYYY-MM-DD format (default: today)."`
	Note  string  `help:"Optional note for this check-in."`
}

func (c *CheckInCmd) Run(ctx *cli.Context) error {
	before, err := ctx.ResolveHabit(c.Name)
	if err != nil {
		return err
	}

	day := ctx.Now()
	if c.Date != "" {
		day, err = utils.ParseDateInLocation(c.Date, day.Location())
		if err != nil {
			return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", c.Date)
		}
	}

	after, err := ctx.Ledger.CheckIn(before.ID, day, c.Value, c.Note)
	if err != nil {
		return err
	}

	status := "goal not met"
	if i := after.LogIndex(day); i >= 0 && after.Logs[i].Completed {
		status = "goal met"
	}
	ctx.Printf("✓ Logged %s %s for %s on %s (%s)\n",
		cli.FormatValue(c.Value), after.Unit, after.Name, day.Format(constants.DateFormat), status)
	ctx.Printf("  Streak: %d (%s)\n", after.Streak, after.Level())

	for _, b := range newBadges(before, after) {
		ctx.Printf("🏆 %s You earned the %q badge!\n", b.Icon, b.Name)
	}
	return nil
}

func newBadges(before, after models.Habit) []models.Badge {
	var earned []models.Badge
	for _, b := range after.Badges {
		if !before.HasBadge(b.Name) {
			earned = append(earned, b)
		}
	}
	return earned
}

// TodayCmd lists today's progress for every habit.
type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	habits := ctx.Ledger.Habits()
	if len(habits) == 0 {
		ctx.Println("No habits found.")
		return nil
	}

	today := ctx.Now()
	ctx.Printf("Habits for %s:\n\n", today.Format(constants.DateFormat))
	completed := 0
	for _, h := range habits {
		value := 0.0
		mark := "[ ]"
		if i := h.LogIndex(today); i >= 0 {
			value = h.Logs[i].Value
			if h.Logs[i].Completed {
				mark = "[x]"
				completed++
			}
		}
		ctx.Printf("%s %s %s  %s/%s %s\n", mark, h.Icon, h.Name, cli.FormatValue(value), cli.FormatValue(h.Goal), h.Unit)
	}
	ctx.Printf("\nCompleted: %d/%d\n", completed, len(habits))
	return nil
}

