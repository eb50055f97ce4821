package utils

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", -5*3600)
	in := time.Date(2026, 3, 14, 23, 59, 59, 999, loc)
	got := StartOfDay(in)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("StartOfDay() changed location to %v", got.Location())
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			name: "same day different times",
			a:    time.Date(2026, 1, 5, 1, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 5, 22, 30, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "adjacent days",
			a:    time.Date(2026, 1, 5, 23, 59, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 6, 0, 1, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLastDays(t *testing.T) {
	today := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)

	days := LastDays(today, 3)
	if len(days) != 3 {
		t.Fatalf("expected 3 days, got %d", len(days))
	}
	want := []time.Time{
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	for i := range want {
		if !days[i].Equal(want[i]) {
			t.Errorf("day %d = %v, want %v", i, days[i], want[i])
		}
	}

	if got := LastDays(today, 0); len(got) != 0 {
		t.Errorf("expected no days for n=0, got %d", len(got))
	}
}

func TestParseDateInLocation(t *testing.T) {
	loc := time.FixedZone("test", 9*3600)
	got, err := ParseDateInLocation("2026-07-04", loc)
	if err != nil {
		t.Fatalf("ParseDateInLocation() error = %v", err)
	}
	want := time.Date(2026, 7, 4, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("ParseDateInLocation() = %v, want %v", got, want)
	}

	if _, err := ParseDateInLocation("2026/07/04", loc); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestParseWeekdays(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []time.Weekday
		wantErr bool
	}{
		{name: "short names", input: "mon,wed,fri", want: []time.Weekday{time.Monday, time.Wednesday, time.Friday}},
		{name: "long names with spaces", input: "Saturday, sunday", want: []time.Weekday{time.Saturday, time.Sunday}},
		{name: "numbers", input: "0,6", want: []time.Weekday{time.Sunday, time.Saturday}},
		{name: "duplicates collapse", input: "mon,monday,1", want: []time.Weekday{time.Monday}},
		{name: "all", input: "all", want: []time.Weekday{0, 1, 2, 3, 4, 5, 6}},
		{name: "invalid name", input: "funday", wantErr: true},
		{name: "out of range number", input: "7", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWeekdays(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseWeekdays() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseWeekdays() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("ParseWeekdays()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidateTimeFormat(t *testing.T) {
	tests := map[string]bool{
		"07:30": true,
		"23:59": true,
		"00:00": true,
		"24:00": false,
		"7:3":   false,
		"":      false,
		"noon":  false,
	}
	for in, want := range tests {
		if got := ValidateTimeFormat(in); got != want {
			t.Errorf("ValidateTimeFormat(%q) = %v, want %v", in, got, want)
		}
	}
}
