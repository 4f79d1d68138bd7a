package timefmt

import (
	"testing"
	"time"
)

func TestDayLabel(t *testing.T) {
	d := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	if got := DayLabel(d); got != "Tue 03/03/2026" {
		t.Errorf("DayLabel() = %q, want %q", got, "Tue 03/03/2026")
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		hour, min int
		want      string
	}{
		{9, 0, "9:00 AM"},
		{12, 30, "12:30 PM"},
		{0, 5, "12:05 AM"},
		{21, 0, "9:00 PM"},
	}
	for _, c := range cases {
		ts := time.Date(2026, time.March, 3, c.hour, c.min, 0, 0, time.UTC)
		if got := Clock(ts); got != c.want {
			t.Errorf("Clock(%02d:%02d) = %q, want %q", c.hour, c.min, got, c.want)
		}
	}
}

func TestClockRange(t *testing.T) {
	start := time.Date(2026, time.March, 3, 12, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 3, 15, 0, 0, 0, time.UTC)
	if got := ClockRange(start, end); got != "12:00 PM - 3:00 PM" {
		t.Errorf("ClockRange() = %q", got)
	}
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want float64
	}{
		{3 * time.Hour, 3.0},
		{90 * time.Minute, 1.5},
		{100 * time.Minute, 1.67},
		{0, 0},
	}
	for _, c := range cases {
		if got := RoundHours(c.d); got != c.want {
			t.Errorf("RoundHours(%v) = %v, want %v", c.d, got, c.want)
		}
	}
}
