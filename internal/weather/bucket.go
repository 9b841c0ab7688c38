package weather

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const dayKeyLayout = "2006-01-02"

// BucketizeForecast collapses chronological 3-hourly samples into at most
// MaxForecastDays entries, one per calendar day in zone. Each day is the
// first sample seen for it; later samples of the same day are ignored.
// A nil zone means UTC.
func BucketizeForecast(samples []RawSample, zone *time.Location) ([]ForecastDay, error) {
	if zone == nil {
		zone = time.UTC
	}

	days := make([]ForecastDay, 0, MaxForecastDays)
	seen := make(map[string]struct{}, MaxForecastDays)

	for i, s := range samples {
		if len(days) >= MaxForecastDays {
			break
		}
		if s.Dt == nil {
			return nil, &MalformedResponseError{
				Op:    "forecast sample",
				Field: fmt.Sprintf("list[%d].dt", i),
				Err:   errors.New("missing timestamp"),
			}
		}

		key := DayKey(*s.Dt, zone)
		if _, ok := seen[key]; ok {
			continue
		}

		day, err := NormalizeSample(s)
		if err != nil {
			var me *MalformedResponseError
			if errors.As(err, &me) && me.Field != "" {
				me.Field = fmt.Sprintf("list[%d].%s", i, me.Field)
			}
			return nil, err
		}
		seen[key] = struct{}{}
		days = append(days, day)
	}

	return days, nil
}

// DayKey renders an epoch timestamp as the calendar date it falls on in zone.
func DayKey(epoch int64, zone *time.Location) string {
	return time.Unix(epoch, 0).In(zone).Format(dayKeyLayout)
}

// DayBoundary decides which clock draws the line between forecast days.
type DayBoundary struct {
	mode string
	zone *time.Location
}

const (
	boundaryLocal    = "local"
	boundaryUTC      = "utc"
	boundaryLocation = "location"
)

// ParseDayBoundary accepts "local" (host clock, the dashboard's historical
// behavior), "utc", "location" (the forecast city's UTC offset) or an IANA
// zone name.
func ParseDayBoundary(s string) (DayBoundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", boundaryLocal:
		return DayBoundary{mode: boundaryLocal, zone: time.Local}, nil
	case boundaryUTC:
		return DayBoundary{mode: boundaryUTC, zone: time.UTC}, nil
	case boundaryLocation:
		return DayBoundary{mode: boundaryLocation}, nil
	}

	zone, err := time.LoadLocation(strings.TrimSpace(s))
	if err != nil {
		return DayBoundary{}, fmt.Errorf("unknown day boundary %q: %w", s, err)
	}
	return DayBoundary{mode: zone.String(), zone: zone}, nil
}

// FixedDayBoundary always buckets in zone.
func FixedDayBoundary(zone *time.Location) DayBoundary {
	return DayBoundary{mode: zone.String(), zone: zone}
}

// Zone returns the bucketing zone for a forecast whose city sits at
// utcOffset seconds from UTC.
func (b DayBoundary) Zone(utcOffset int) *time.Location {
	if b.mode == boundaryLocation {
		return time.FixedZone(fmt.Sprintf("UTC%+d", utcOffset/3600), utcOffset)
	}
	if b.zone == nil {
		return time.Local
	}
	return b.zone
}

func (b DayBoundary) String() string {
	if b.mode == "" {
		return boundaryLocal
	}
	return b.mode
}
