package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitrack/internal/cli"
	"github.com/julianstephens/habitrack/internal/constants"
	"github.com/julianstephens/habitrack/internal/ledger"
)

type habitRate struct {
	Name           string `json:"name" yaml:"name"`
	Streak         int    `json:"streak" yaml:"streak"`
	Level          string `json:"level" yaml:"level"`
	CompletionRate int    `json:"completion_rate" yaml:"completion_rate"`
}

type weekDay struct {
	Day       string `json:"day" yaml:"day"`
	Date      string `json:"date" yaml:"date"`
	Completed int    `json:"completed" yaml:"completed"`
	Total     int    `json:"total" yaml:"total"`
}

type report struct {
	ledger.Summary `yaml:",inline"`
	PerHabit       []habitRate `json:"per_habit" yaml:"per_habit"`
	Week           []weekDay   `json:"week" yaml:"week"`
}

type StatsCmd struct {
	Format string `help:"Output format." enum:"text,json,yaml" default:"text"`
}

func (c *StatsCmd) Run(ctx *cli.Context) error {
	r := buildReport(ctx.Ledger)

	switch c.Format {
	case "json":
		enc := json.NewEncoder(ctx.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(ctx.Writer())
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode stats: %w", err)
		}
		return enc.Close()
	default:
		printText(ctx, r)
		return nil
	}
}

func buildReport(l *ledger.Ledger) report {
	r := report{Summary: l.Summary(), PerHabit: []habitRate{}, Week: []weekDay{}}
	for _, h := range l.Habits() {
		r.PerHabit = append(r.PerHabit, habitRate{
			Name:           h.Name,
			Streak:         h.Streak,
			Level:          string(h.Level()),
			CompletionRate: ledger.HabitCompletionRate(h),
		})
	}
	for _, d := range l.WeeklyCompletionCounts() {
		r.Week = append(r.Week, weekDay{
			Day:       d.Day,
			Date:      d.Date.Format(constants.DateFormat),
			Completed: d.Completed,
			Total:     d.Total,
		})
	}
	return r
}

func printText(ctx *cli.Context, r report) {
	ctx.Printf("Habits:          %d\n", r.Habits)
	ctx.Printf("Completion rate: %d%%\n", r.CompletionRate)
	ctx.Printf("Total check-ins: %d\n", r.TotalCheckIns)
	ctx.Printf("Longest streak:  %d\n", r.LongestStreak)

	if len(r.PerHabit) > 0 {
		ctx.Println("\nPer habit:")
		for _, h := range r.PerHabit {
			ctx.Printf("  %-24s %3d%%  streak %d (%s)\n", h.Name, h.CompletionRate, h.Streak, h.Level)
		}
	}

	ctx.Println("\nThis week:")
	for _, d := range r.Week {
		ctx.Printf("  %s %s  %d/%d\n", d.Day, d.Date, d.Completed, d.Total)
	}
}

type InsightsCmd struct{}

func (c *InsightsCmd) Run(ctx *cli.Context) error {
	for _, insight := range ctx.Ledger.Insights() {
		ctx.Printf("💡 %s\n", insight)
	}
	return nil
}

type ExportCmd struct {
	Dir    string `help:"Directory to write the export file to." default:"." type:"path"`
	Stdout bool   `help:"Write the export to stdout instead of a file."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	if c.Stdout {
		return ctx.Ledger.Export(ctx.Writer())
	}

	var buf strings.Builder
	if err := ctx.Ledger.Export(&buf); err != nil {
		return err
	}

	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(c.Dir, ledger.ExportFileName(ctx.Now()))
	if err := os.WriteFile(path, []byte(buf.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	ctx.Printf("✓ Exported %d habits to %s\n", len(ctx.Ledger.Habits()), path)
	return nil
}
