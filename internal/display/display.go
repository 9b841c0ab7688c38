// Package display holds presentation helpers the dashboard UI relies on.
// None of it feeds back into the normalized data.
package display

import (
	"fmt"
	"math"
	"time"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection buckets degrees into one of 16 compass labels.
func WindDirection(deg float64) string {
	i := int(math.Round(deg/22.5)) % 16
	if i < 0 {
		i += 16
	}
	return compassPoints[i]
}

// IconURL returns the provider's image URL for an icon code at size (1, 2 or 4).
func IconURL(icon string, size int) string {
	if size <= 0 {
		size = 2
	}
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@%dx.png", icon, size)
}

// LocalClock renders epoch seconds as wall-clock time at the location's UTC offset.
func LocalClock(epoch int64, offsetSeconds int) string {
	zone := time.FixedZone("", offsetSeconds)
	return time.Unix(epoch, 0).In(zone).Format("03:04 PM")
}

// DayLabel names a forecast day relative to now: "Today", "Tomorrow" or
// a short date such as "Mon, Jan 2".
func DayLabel(dt int64, now time.Time, zone *time.Location) string {
	if zone == nil {
		zone = time.Local
	}
	day := time.Unix(dt, 0).In(zone)
	today := now.In(zone)

	y, m, d := day.Date()
	ty, tm, td := today.Date()
	if y == ty && m == tm && d == td {
		return "Today"
	}
	tomorrow := today.AddDate(0, 0, 1)
	my, mm, md := tomorrow.Date()
	if y == my && m == mm && d == md {
		return "Tomorrow"
	}
	return day.Format("Mon, Jan 2")
}
