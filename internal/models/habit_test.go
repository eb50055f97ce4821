package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		streak int
		want   Level
	}{
		{0, LevelNovice},
		{2, LevelNovice},
		{3, LevelRegular},
		{6, LevelRegular},
		{7, LevelPro},
		{13, LevelPro},
		{14, LevelMaster},
		{100, LevelMaster},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.streak); got != tt.want {
			t.Errorf("LevelFor(%d) = %s, want %s", tt.streak, got, tt.want)
		}
	}
}

func TestHabitMarshalIncludesLevel(t *testing.T) {
	h := Habit{ID: "h1", Name: "Water", Streak: 7, Logs: []HabitLog{}, Badges: []Badge{}}

	data, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), `"level":"Pro"`) {
		t.Errorf("marshalled habit missing level: %s", data)
	}
	if !strings.Contains(string(data), `"name":"Water"`) {
		t.Errorf("marshalled habit missing fields: %s", data)
	}

	// A stale level in the document is ignored; the streak decides.
	stale := strings.Replace(string(data), `"level":"Pro"`, `"level":"Master"`, 1)
	var back Habit
	if err := json.Unmarshal([]byte(stale), &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Level() != LevelPro {
		t.Errorf("Level() after load = %s, want Pro", back.Level())
	}
}

func TestHabitLogIndex(t *testing.T) {
	loc := time.UTC
	h := Habit{Logs: []HabitLog{
		{ID: "a", Date: time.Date(2026, 1, 1, 0, 0, 0, 0, loc)},
		{ID: "b", Date: time.Date(2026, 1, 2, 0, 0, 0, 0, loc)},
	}}

	if got := h.LogIndex(time.Date(2026, 1, 2, 18, 45, 0, 0, loc)); got != 1 {
		t.Errorf("LogIndex() = %d, want 1", got)
	}
	if got := h.LogIndex(time.Date(2026, 1, 3, 0, 0, 0, 0, loc)); got != -1 {
		t.Errorf("LogIndex() = %d, want -1", got)
	}
}

func TestIsCompletion(t *testing.T) {
	tests := []struct {
		name  string
		freq  Frequency
		value float64
		want  bool
	}{
		{name: "daily at goal", freq: FrequencyDaily, value: 8, want: true},
		{name: "daily above goal", freq: FrequencyDaily, value: 9.5, want: true},
		{name: "daily below goal", freq: FrequencyDaily, value: 7.9, want: false},
		{name: "weekly never", freq: FrequencyWeekly, value: 100, want: false},
		{name: "custom never", freq: FrequencyCustom, value: 100, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Habit{Goal: 8, Frequency: tt.freq}
			if got := h.IsCompletion(tt.value); got != tt.want {
				t.Errorf("IsCompletion(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestHabitClone(t *testing.T) {
	day := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := Habit{
		CustomDays: []time.Weekday{time.Monday},
		StreakDay:  &day,
		Logs:       []HabitLog{{ID: "a", Value: 1}},
		Badges:     []Badge{{Name: "Week Warrior"}},
		Reminder:   &Reminder{Time: "08:00", Days: []time.Weekday{time.Friday}},
	}

	c := h.Clone()
	c.CustomDays[0] = time.Sunday
	*c.StreakDay = day.AddDate(0, 0, 1)
	c.Logs[0].Value = 99
	c.Badges[0].Name = "changed"
	c.Reminder.Days[0] = time.Saturday

	if h.CustomDays[0] != time.Monday || !h.StreakDay.Equal(day) || h.Logs[0].Value != 1 ||
		h.Badges[0].Name != "Week Warrior" || h.Reminder.Days[0] != time.Friday {
		t.Errorf("Clone() shares memory with the original: %+v", h)
	}
}

func TestHabitSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    HabitSpec
		wantErr string
	}{
		{name: "valid", spec: HabitSpec{Name: "Water", Goal: 8, Frequency: FrequencyDaily}},
		{name: "blank name", spec: HabitSpec{Name: "  ", Goal: 8, Frequency: FrequencyDaily}, wantErr: "name"},
		{name: "negative goal", spec: HabitSpec{Name: "Water", Goal: -1, Frequency: FrequencyDaily}, wantErr: "goal"},
		{name: "bad frequency", spec: HabitSpec{Name: "Water", Goal: 1, Frequency: "monthly"}, wantErr: "frequency"},
		{name: "custom without days", spec: HabitSpec{Name: "Water", Goal: 1, Frequency: FrequencyCustom}, wantErr: "weekdays"},
		{
			name:    "custom with days",
			spec:    HabitSpec{Name: "Water", Goal: 1, Frequency: FrequencyCustom, CustomDays: []time.Weekday{time.Tuesday}},
			wantErr: "",
		},
		{
			name:    "reminder without days",
			spec:    HabitSpec{Name: "Water", Goal: 1, Frequency: FrequencyDaily, Reminder: &Reminder{Time: "08:00"}},
			wantErr: "reminder",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestHabitSpecApplyDefaults(t *testing.T) {
	s := HabitSpec{Name: "Water", Goal: 8}
	s.ApplyDefaults()
	if s.Frequency != FrequencyDaily || s.Icon == "" || s.Color == "" || s.Unit == "" {
		t.Errorf("ApplyDefaults() left empty fields: %+v", s)
	}

	custom := HabitSpec{Name: "Water", Goal: 8, Icon: "💧", Unit: "glasses", Frequency: FrequencyWeekly}
	custom.ApplyDefaults()
	if custom.Icon != "💧" || custom.Unit != "glasses" || custom.Frequency != FrequencyWeekly {
		t.Errorf("ApplyDefaults() overwrote user values: %+v", custom)
	}
}
