package display

import (
	"testing"
	"time"
)

func TestWindDirection(t *testing.T) {
	cases := map[float64]string{
		0:      "N",
		11.24:  "N",
		11.25:  "NNE",
		90:     "E",
		180:    "S",
		247:    "WSW",
		270:    "W",
		348.75: "N",
		359:    "N",
		360:    "N",
		-90:    "W",
	}
	for deg, want := range cases {
		if got := WindDirection(deg); got != want {
			t.Fatalf("WindDirection(%v): expected %s, got %s", deg, want, got)
		}
	}
}

func TestIconURL(t *testing.T) {
	if got := IconURL("10d", 2); got != "https://openweathermap.org/img/wn/10d@2x.png" {
		t.Fatalf("unexpected url %s", got)
	}
	if got := IconURL("01n", 0); got != "https://openweathermap.org/img/wn/01n@2x.png" {
		t.Fatalf("expected default size 2, got %s", got)
	}
}

func TestLocalClock(t *testing.T) {
	// 2024-03-01 06:40 UTC
	if got := LocalClock(1709275200, 0); got != "06:40 AM" {
		t.Fatalf("expected 06:40 AM, got %s", got)
	}
	if got := LocalClock(1709275200, 9*3600); got != "03:40 PM" {
		t.Fatalf("expected 03:40 PM at UTC+9, got %s", got)
	}
}

func TestDayLabel(t *testing.T) {
	now := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)

	cases := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC), "Today"},
		{time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "Tomorrow"},
		{time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), "Sun, Mar 3"},
	}
	for _, tc := range cases {
		if got := DayLabel(tc.at.Unix(), now, time.UTC); got != tc.want {
			t.Fatalf("expected %s, got %s", tc.want, got)
		}
	}

	// At UTC+5 "now" is already Mar 2.
	east := time.FixedZone("UTC+5", 5*3600)
	if got := DayLabel(time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC).Unix(), now, east); got != "Today" {
		t.Fatalf("expected Today at UTC+5, got %s", got)
	}
}
