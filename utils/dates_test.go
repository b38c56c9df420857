package utils

import (
	"testing"
	"time"
)

func TestBeginningOfDay(t *testing.T) {
	moment := time.Date(2025, time.June, 3, 17, 45, 12, 999, time.Local)
	got := BeginningOfDay(moment)
	want := time.Date(2025, time.June, 3, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("BeginningOfDay = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	end := time.Date(2025, time.June, 10, 9, 0, 0, 0, time.Local)

	cases := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"same day different clocks", time.Date(2025, time.June, 10, 23, 59, 0, 0, time.Local), 0},
		{"five days ago", time.Date(2025, time.June, 5, 22, 0, 0, 0, time.Local), 5},
		{"six days ago", time.Date(2025, time.June, 4, 1, 0, 0, 0, time.Local), 6},
		{"future start is negative", time.Date(2025, time.June, 11, 0, 0, 0, 0, time.Local), -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.start, end); got != tc.want {
				t.Fatalf("DaysBetween = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestParseClock(t *testing.T) {
	if hour, minute, ok := ParseClock("08:30"); !ok || hour != 8 || minute != 30 {
		t.Fatalf("ParseClock(08:30) = (%d, %d, %v)", hour, minute, ok)
	}
	if _, _, ok := ParseClock("25:00"); ok {
		t.Fatal("ParseClock should reject hour 25")
	}
	if _, _, ok := ParseClock("morning"); ok {
		t.Fatal("ParseClock should reject non-clock strings")
	}
}
