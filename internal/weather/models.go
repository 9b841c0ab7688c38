package weather

import (
	"strconv"
	"strings"
)

// MaxForecastDays caps the number of daily entries a forecast may hold.
const MaxForecastDays = 7

// Condition is the upstream condition triple (group, description, icon code).
// JSON names are flattened into the owning reading.
type Condition struct {
	Main        string `json:"weather_main"`
	Description string `json:"weather_description"`
	Icon        string `json:"weather_icon"`
}

// Location identifies what the caller asked for: a city name or coordinates.
// Coordinates win when both are set.
type Location struct {
	City string   `json:"city,omitempty"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

// HasCoords reports whether both coordinates are present.
func (l Location) HasCoords() bool {
	return l.Lat != nil && l.Lon != nil
}

// Key returns a canonical string key for indexing this location in caches.
func (l Location) Key() string {
	if l.HasCoords() {
		return "coords:" + strconv.FormatFloat(*l.Lat, 'f', 4, 64) + "," + strconv.FormatFloat(*l.Lon, 'f', 4, 64)
	}
	return "city:" + strings.ToLower(strings.TrimSpace(l.City))
}

// String is used in log lines.
func (l Location) String() string {
	if l.HasCoords() {
		return strconv.FormatFloat(*l.Lat, 'f', 4, 64) + "," + strconv.FormatFloat(*l.Lon, 'f', 4, 64)
	}
	return l.City
}

// Validate checks that a location can be sent upstream.
func (l Location) Validate() error {
	if l.HasCoords() {
		return nil
	}
	if strings.TrimSpace(l.City) == "" {
		return ErrNoLocation
	}
	return nil
}

// CityLocation is a shorthand for a city query.
func CityLocation(city string) Location {
	return Location{City: city}
}

// CoordsLocation is a shorthand for a coordinate query.
func CoordsLocation(lat, lon float64) Location {
	return Location{Lat: &lat, Lon: &lon}
}

// WeatherReading is the canonical current-conditions snapshot.
// Temperatures are whole degrees Celsius, visibility is kilometers.
type WeatherReading struct {
	Name      string `json:"name"`
	Country   string `json:"country"`
	Temp      int    `json:"temp"`
	FeelsLike int    `json:"feels_like"`
	TempMin   int    `json:"temp_min"`
	TempMax   int    `json:"temp_max"`
	Humidity  int    `json:"humidity"`
	Pressure  int    `json:"pressure"`

	Visibility float64 `json:"visibility"`
	WindSpeed  float64 `json:"wind_speed"`
	WindDeg    float64 `json:"wind_deg"`

	Condition

	Clouds   int   `json:"clouds"`
	Dt       int64 `json:"dt"`
	Sunrise  int64 `json:"sunrise"`
	Sunset   int64 `json:"sunset"`
	Timezone int   `json:"timezone"` // UTC offset in seconds
}

// ForecastDay is one calendar day of the forecast, taken from the first
// sample observed for that day.
type ForecastDay struct {
	Dt      int64 `json:"dt"`
	TempMin int   `json:"temp_min"`
	TempMax int   `json:"temp_max"`

	Condition

	Humidity  int     `json:"humidity"`
	WindSpeed float64 `json:"wind_speed"`
	Clouds    int     `json:"clouds"`
	Pop       int     `json:"pop"` // percent, 0-100
}

// Forecast is the daily forecast for a location along with the city
// metadata the upstream feed carries.
type Forecast struct {
	City     string        `json:"city"`
	Country  string        `json:"country"`
	Timezone int           `json:"timezone"`
	Days     []ForecastDay `json:"days"`
}

// ForecastSummary holds the stats shown under the daily forecast.
type ForecastSummary struct {
	Days        int `json:"days"`
	AvgHumidity int `json:"avg_humidity"`
	AvgWind     int `json:"avg_wind"`
}

// Alert is a government weather alert as relayed by the provider.
type Alert struct {
	SenderName  string   `json:"sender_name"`
	Event       string   `json:"event"`
	Start       int64    `json:"start"`
	End         int64    `json:"end"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
