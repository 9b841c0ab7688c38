package weather

import (
	"strings"
	"testing"
	"time"
)

const londonCurrentJSON = `{
  "coord": {"lon": -0.1257, "lat": 51.5085},
  "weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
  "base": "stations",
  "main": {"temp": 21.5, "feels_like": -2.5, "temp_min": 18.49, "temp_max": 23.51, "pressure": 1012, "humidity": 81},
  "visibility": 9500,
  "wind": {"speed": 4.12, "deg": 247},
  "clouds": {"all": 75},
  "dt": 1709290800,
  "sys": {"type": 2, "id": 2075535, "country": "GB", "sunrise": 1709275200, "sunset": 1709315400},
  "timezone": 0,
  "id": 2643743,
  "name": "London",
  "cod": 200
}`

var testBase = time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

// sample builds a well-formed forecast sample at dt.
func sample(dt time.Time, tempMin, tempMax float64) RawSample {
	return RawSample{
		Dt: ptr(dt.Unix()),
		Main: &RawSampleMain{
			TempMin:  ptr(tempMin),
			TempMax:  ptr(tempMax),
			Humidity: ptr(60),
		},
		Weather: []RawCondition{{
			Main:        ptr("Clouds"),
			Description: ptr("scattered clouds"),
			Icon:        ptr("03d"),
		}},
		Clouds: &RawClouds{All: ptr(40)},
		Wind:   &RawSampleWind{Speed: ptr(3.6)},
		Pop:    ptr(0.2),
	}
}

// hourlySamples returns n samples 3 hours apart starting at start, with
// temperatures climbing one degree per sample.
func hourlySamples(start time.Time, n int, firstTemp float64) []RawSample {
	out := make([]RawSample, 0, n)
	for i := 0; i < n; i++ {
		t := firstTemp + float64(i)
		out = append(out, sample(start.Add(time.Duration(i)*3*time.Hour), t, t+1))
	}
	return out
}

func mustDecodeCurrent(t *testing.T, body string) RawCurrent {
	t.Helper()
	raw, err := DecodeCurrent(strings.NewReader(body))
	if err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return raw
}
