package clock

import (
	"testing"
	"time"
)

func TestFakeClock(t *testing.T) {
	start := time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)
	c := NewFakeClock(start)

	if !c.Now().Equal(start) {
		t.Fatalf("Now() = %v, want %v", c.Now(), start)
	}

	c.Advance(90 * time.Minute)
	if want := start.Add(90 * time.Minute); !c.Now().Equal(want) {
		t.Errorf("after Advance, Now() = %v, want %v", c.Now(), want)
	}

	c.AdvanceDays(1)
	if got := c.Now(); got.Month() != time.February || got.Day() != 1 {
		t.Errorf("after AdvanceDays, Now() = %v, want Feb 1", got)
	}

	later := time.Date(2027, 5, 5, 0, 0, 0, 0, time.UTC)
	c.Set(later)
	if !c.Now().Equal(later) {
		t.Errorf("after Set, Now() = %v, want %v", c.Now(), later)
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	got := System().Now()
	if got.Before(before) {
		t.Errorf("System().Now() = %v, earlier than %v", got, before)
	}
}
