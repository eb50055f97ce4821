package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/julianstephens/habitrack/internal/cli/clitest"
	"github.com/julianstephens/habitrack/internal/ledger"
	"github.com/julianstephens/habitrack/internal/models"
)

func seed(t *testing.T, env *clitest.Env) {
	t.Helper()
	l := env.Ctx.Ledger
	water, err := l.CreateHabit(models.HabitSpec{Name: "Water", Goal: 8, Unit: "glasses"})
	require.NoError(t, err)
	read, err := l.CreateHabit(models.HabitSpec{Name: "Read", Goal: 20, Unit: "pages"})
	require.NoError(t, err)

	day := env.Clock.Now()
	for i := 0; i < 3; i++ {
		_, err = l.CheckIn(water.ID, day, 8, "")
		require.NoError(t, err)
		day = day.AddDate(0, 0, -1)
	}
	_, err = l.CheckIn(read.ID, env.Clock.Now(), 5, "")
	require.NoError(t, err)
}

func TestStatsCmdText(t *testing.T) {
	env := clitest.NewJSON(t)
	seed(t, env)

	require.NoError(t, (&StatsCmd{Format: "text"}).Run(env.Ctx))
	out := env.Output()

	assert.Contains(t, out, "Habits:          2")
	assert.Contains(t, out, "Completion rate: 75%")
	assert.Contains(t, out, "Total check-ins: 4")
	assert.Contains(t, out, "Longest streak:  1")
	assert.Contains(t, out, "Water")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "Mon 2026-03-02  1/2")
}

func TestStatsCmdJSON(t *testing.T) {
	env := clitest.NewJSON(t)
	seed(t, env)

	require.NoError(t, (&StatsCmd{Format: "json"}).Run(env.Ctx))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Out.Bytes(), &got))
	assert.Equal(t, 2.0, got["habits"])
	assert.Equal(t, 75.0, got["completion_rate"])
	assert.Equal(t, 4.0, got["total_check_ins"])
	assert.Len(t, got["per_habit"], 2)
	assert.Len(t, got["week"], 7)
}

func TestStatsCmdYAML(t *testing.T) {
	env := clitest.NewJSON(t)
	seed(t, env)

	require.NoError(t, (&StatsCmd{Format: "yaml"}).Run(env.Ctx))

	var got struct {
		Habits         int `yaml:"habits"`
		CompletionRate int `yaml:"completion_rate"`
		PerHabit       []struct {
			Name string `yaml:"name"`
		} `yaml:"per_habit"`
	}
	require.NoError(t, yaml.Unmarshal(env.Out.Bytes(), &got))
	assert.Equal(t, 2, got.Habits)
	assert.Equal(t, 75, got.CompletionRate)
	require.Len(t, got.PerHabit, 2)
	assert.Equal(t, "Water", got.PerHabit[0].Name)
}

func TestStatsCmdEmpty(t *testing.T) {
	env := clitest.NewJSON(t)

	require.NoError(t, (&StatsCmd{Format: "text"}).Run(env.Ctx))
	out := env.Output()
	assert.Contains(t, out, "Completion rate: 0%")
	assert.NotContains(t, out, "Per habit:")
}

func TestInsightsCmd(t *testing.T) {
	env := clitest.NewJSON(t)

	require.NoError(t, (&InsightsCmd{}).Run(env.Ctx))
	out := env.Output()
	assert.Contains(t, out, "💡 Try adding more habits")
}

func TestExportCmd(t *testing.T) {
	env := clitest.NewJSON(t)
	seed(t, env)
	dir := filepath.Join(t.TempDir(), "exports")

	require.NoError(t, (&ExportCmd{Dir: dir}).Run(env.Ctx))
	path := filepath.Join(dir, "habittrack_export_2026-03-02.json")
	assert.Contains(t, env.Output(), "Exported 2 habits to "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc ledger.ExportDocument
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Len(t, doc.Habits, 2)
	assert.Equal(t, env.Ctx.Ledger.User().ID, doc.User.ID)
}

func TestExportCmdStdout(t *testing.T) {
	env := clitest.NewJSON(t)
	seed(t, env)

	require.NoError(t, (&ExportCmd{Stdout: true}).Run(env.Ctx))
	assert.Contains(t, env.Out.String(), `"habits": [`)
	assert.Contains(t, env.Out.String(), `"level": "Novice"`)
}
