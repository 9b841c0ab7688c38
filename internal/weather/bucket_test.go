package weather

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestBucketizeForecastTwoDays(t *testing.T) {
	// Day 1: 8 samples climbing from 10°C, day 2: 8 samples climbing from 12°C.
	samples := append(hourlySamples(testBase, 8, 10), hourlySamples(testBase.AddDate(0, 0, 1), 8, 12)...)
	if len(samples) != 16 {
		t.Fatalf("fixture: expected 16 samples, got %d", len(samples))
	}

	days, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}

	if days[0].Dt != testBase.Unix() {
		t.Fatalf("expected day 1 anchored at first sample, got %d", days[0].Dt)
	}
	if days[1].Dt != testBase.AddDate(0, 0, 1).Unix() {
		t.Fatalf("expected day 2 anchored at its first sample, got %d", days[1].Dt)
	}

	// Pick-first, not a roll-up: the true daily max would be 18.
	if days[0].TempMin != 10 || days[0].TempMax != 11 {
		t.Fatalf("expected day 1 to carry the first sample's 10/11, got %d/%d", days[0].TempMin, days[0].TempMax)
	}
	if days[1].TempMin != 12 || days[1].TempMax != 13 {
		t.Fatalf("expected day 2 to carry the first sample's 12/13, got %d/%d", days[1].TempMin, days[1].TempMax)
	}
}

func TestBucketizeForecastEmpty(t *testing.T) {
	for _, in := range [][]RawSample{nil, {}} {
		days, err := BucketizeForecast(in, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if days == nil || len(days) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", days)
		}
	}
}

func TestBucketizeForecastCapsAtSevenDays(t *testing.T) {
	var samples []RawSample
	for d := 0; d < 10; d++ {
		samples = append(samples, hourlySamples(testBase.AddDate(0, 0, d), 8, float64(d))...)
	}

	days, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != MaxForecastDays {
		t.Fatalf("expected %d days, got %d", MaxForecastDays, len(days))
	}
	if last := days[len(days)-1]; last.Dt != testBase.AddDate(0, 0, 6).Unix() {
		t.Fatalf("expected last day to be the seventh, got %d", last.Dt)
	}
}

func TestBucketizeForecastStopsAfterSevenDays(t *testing.T) {
	var samples []RawSample
	for d := 0; d < 7; d++ {
		samples = append(samples, sample(testBase.AddDate(0, 0, d), 1, 2))
	}
	// Never looked at once seven days are out.
	samples = append(samples, RawSample{})

	days, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("expected trailing samples to be ignored, got %v", err)
	}
	if len(days) != MaxForecastDays {
		t.Fatalf("expected %d days, got %d", MaxForecastDays, len(days))
	}
}

func TestBucketizeForecastLengthMatchesDistinctDays(t *testing.T) {
	for n := 0; n <= 9; n++ {
		var samples []RawSample
		for d := 0; d < n; d++ {
			samples = append(samples, hourlySamples(testBase.AddDate(0, 0, d), 3, 5)...)
		}
		days, err := BucketizeForecast(samples, time.UTC)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := n
		if want > MaxForecastDays {
			want = MaxForecastDays
		}
		if len(days) != want {
			t.Fatalf("%d distinct days: expected %d entries, got %d", n, want, len(days))
		}
	}
}

func TestBucketizeForecastKeepsInputOrder(t *testing.T) {
	day1 := hourlySamples(testBase, 2, 0)
	day2 := hourlySamples(testBase.AddDate(0, 0, 1), 2, 10)
	day3 := hourlySamples(testBase.AddDate(0, 0, 2), 2, 20)

	samples := append(append(append([]RawSample{}, day2...), day1...), day3...)
	days, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []int{days[0].TempMin, days[1].TempMin, days[2].TempMin}
	want := []int{10, 0, 20}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected first-seen order %v, got %v", want, got)
	}
}

func TestBucketizeForecastIsIdempotent(t *testing.T) {
	samples := append(hourlySamples(testBase, 8, 10), hourlySamples(testBase.AddDate(0, 0, 1), 8, 12)...)

	first, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output, got %+v and %+v", first, second)
	}
}

func TestBucketizeForecastZoneMovesBoundaries(t *testing.T) {
	late := testBase.Add(22 * time.Hour)  // Mar 1 22:00 UTC
	early := testBase.Add(25 * time.Hour) // Mar 2 01:00 UTC
	samples := []RawSample{sample(late, 1, 2), sample(early, 3, 4)}

	utcDays, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(utcDays) != 2 {
		t.Fatalf("expected 2 UTC days, got %d", len(utcDays))
	}

	// At UTC+5 both samples fall on Mar 2.
	eastDays, err := BucketizeForecast(samples, time.FixedZone("UTC+5", 5*3600))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(eastDays) != 1 || eastDays[0].TempMin != 1 {
		t.Fatalf("expected 1 day picked from the 22:00 sample, got %+v", eastDays)
	}
}

func TestBucketizeForecastMalformedPickedSample(t *testing.T) {
	samples := append(hourlySamples(testBase, 8, 10), hourlySamples(testBase.AddDate(0, 0, 1), 8, 12)...)
	samples[8].Weather = nil

	days, err := BucketizeForecast(samples, time.UTC)
	if days != nil {
		t.Fatalf("expected no partial output, got %+v", days)
	}
	var me *MalformedResponseError
	if !errors.As(err, &me) {
		t.Fatalf("expected MalformedResponseError, got %v", err)
	}
	if me.Field != "list[8].weather" {
		t.Fatalf("expected field list[8].weather, got %q", me.Field)
	}
}

func TestBucketizeForecastMissingTimestamp(t *testing.T) {
	samples := hourlySamples(testBase, 3, 10)
	samples[2].Dt = nil

	_, err := BucketizeForecast(samples, time.UTC)
	var me *MalformedResponseError
	if !errors.As(err, &me) || me.Field != "list[2].dt" {
		t.Fatalf("expected malformed list[2].dt, got %v", err)
	}
}

func TestBucketizeForecastSkipsLaterSamplesOfSeenDay(t *testing.T) {
	samples := hourlySamples(testBase, 4, 10)
	// Only the first sample of a day is normalized.
	samples[3].Main = nil

	days, err := BucketizeForecast(samples, time.UTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(days))
	}
}

func TestDayKey(t *testing.T) {
	ts := testBase.Add(23 * time.Hour).Unix()
	if got := DayKey(ts, time.UTC); got != "2024-03-01" {
		t.Fatalf("expected 2024-03-01, got %s", got)
	}
	if got := DayKey(ts, time.FixedZone("", 3600)); got != "2024-03-02" {
		t.Fatalf("expected 2024-03-02, got %s", got)
	}
}

func TestParseDayBoundary(t *testing.T) {
	cases := []struct {
		in     string
		offset int
		want   string // zone name of the resolved location
	}{
		{"utc", 3600, "UTC"},
		{"UTC", 0, "UTC"},
		{"location", 19800, "UTC+5"},
		{"location", -18000, "UTC-5"},
	}
	for _, tc := range cases {
		b, err := ParseDayBoundary(tc.in)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.in, err)
		}
		if got := b.Zone(tc.offset).String(); got != tc.want {
			t.Fatalf("%s/%d: expected zone %s, got %s", tc.in, tc.offset, tc.want, got)
		}
	}

	local, err := ParseDayBoundary("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if local.Zone(3600) != time.Local || local.String() != "local" {
		t.Fatalf("expected host local zone by default, got %s", local)
	}

	loc, err := ParseDayBoundary("location")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, off := time.Unix(0, 0).In(loc.Zone(19800)).Zone()
	if off != 19800 {
		t.Fatalf("expected offset 19800, got %d", off)
	}

	if _, err := ParseDayBoundary("Not/AZone"); err == nil {
		t.Fatalf("expected error for unknown zone")
	}
}
