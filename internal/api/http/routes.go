package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-dashboard/internal/display"
	"github.com/i474232898/weather-dashboard/internal/recommend"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var validate = validator.New()

// now is swapped in tests.
var now = time.Now

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		reading, err := service.Current(c.UserContext(), loc)
		if err != nil {
			return upstreamError(err, "current weather")
		}

		return c.JSON(reading)
	})

	v1.Get("/weather/forecast", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		forecast, err := service.Forecast(c.UserContext(), loc)
		if err != nil {
			return upstreamError(err, "forecast")
		}

		return c.JSON(fiber.Map{
			"city":     forecast.City,
			"country":  forecast.Country,
			"timezone": forecast.Timezone,
			"days":     forecast.Days,
			"summary":  weather.SummarizeForecast(forecast.Days),
		})
	})

	v1.Get("/weather/dashboard", func(c *fiber.Ctx) error {
		loc, err := parseLocationQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		dash, err := service.Dashboard(c.UserContext(), loc)
		if err != nil {
			return upstreamError(err, "weather")
		}

		return c.JSON(newDashboardView(dash, service.DayZone(dash.Forecast.Timezone), now()))
	})

	v1.Get("/weather/alerts", func(c *fiber.Ctx) error {
		q := alertsQuery{Lat: c.Query("lat"), Lon: c.Query("lon")}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		lat, _ := strconv.ParseFloat(q.Lat, 64)
		lon, _ := strconv.ParseFloat(q.Lon, 64)

		return c.JSON(fiber.Map{
			"alerts": service.Alerts(c.UserContext(), lat, lon),
		})
	})
}

// locationQuery holds query parameters for identifying a location:
// a city name, or both coordinates.
type locationQuery struct {
	City string `validate:"required_without_all=Lat Lon"`
	Lat  string `validate:"required_with=Lon,omitempty,latitude"`
	Lon  string `validate:"required_with=Lat,omitempty,longitude"`
}

func (l locationQuery) toLocation() weather.Location {
	if l.Lat != "" && l.Lon != "" {
		lat, _ := strconv.ParseFloat(l.Lat, 64)
		lon, _ := strconv.ParseFloat(l.Lon, 64)
		return weather.CoordsLocation(lat, lon)
	}
	return weather.CityLocation(l.City)
}

func parseLocationQuery(c *fiber.Ctx) (weather.Location, error) {
	q := locationQuery{
		City: c.Query("city"),
		Lat:  c.Query("lat"),
		Lon:  c.Query("lon"),
	}

	if err := validate.Struct(q); err != nil {
		return weather.Location{}, err
	}

	return q.toLocation(), nil
}

// alertsQuery holds query parameters for the alerts endpoint.
type alertsQuery struct {
	Lat string `validate:"required,latitude"`
	Lon string `validate:"required,longitude"`
}

// upstreamError maps service failures to HTTP errors.
func upstreamError(err error, what string) error {
	var (
		te *weather.TransportError
		me *weather.MalformedResponseError
	)
	switch {
	case errors.Is(err, weather.ErrNoLocation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case weather.IsNotFound(err):
		return fiber.NewError(fiber.StatusNotFound, "location not found")
	case errors.As(err, &te):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider unavailable")
	case errors.As(err, &me):
		return fiber.NewError(fiber.StatusBadGateway, "weather provider sent an unusable response")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch "+what)
	}
}

type currentDisplay struct {
	WindDirection string `json:"wind_direction"`
	IconURL       string `json:"icon_url"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
}

type forecastDayView struct {
	weather.ForecastDay
	Label   string `json:"label"`
	IconURL string `json:"icon_url"`
}

type dashboardView struct {
	Current       weather.WeatherReading  `json:"current"`
	Display       currentDisplay          `json:"display"`
	Advice        recommend.Advice        `json:"advice"`
	Forecast      []forecastDayView       `json:"forecast"`
	Summary       weather.ForecastSummary `json:"summary"`
	ForecastError string                  `json:"forecast_error,omitempty"`
}

func newDashboardView(d weather.Dashboard, zone *time.Location, at time.Time) dashboardView {
	cur := d.Current
	view := dashboardView{
		Current: cur,
		Display: currentDisplay{
			WindDirection: display.WindDirection(cur.WindDeg),
			IconURL:       display.IconURL(cur.Icon, 4),
			Sunrise:       display.LocalClock(cur.Sunrise, cur.Timezone),
			Sunset:        display.LocalClock(cur.Sunset, cur.Timezone),
		},
		Advice:   recommend.Classify(cur),
		Forecast: make([]forecastDayView, 0, len(d.Forecast.Days)),
		Summary:  weather.SummarizeForecast(d.Forecast.Days),
	}

	for _, day := range d.Forecast.Days {
		view.Forecast = append(view.Forecast, forecastDayView{
			ForecastDay: day,
			Label:       display.DayLabel(day.Dt, at, zone),
			IconURL:     display.IconURL(day.Icon, 2),
		})
	}

	if d.ForecastError != nil {
		view.ForecastError = "forecast unavailable"
	}
	return view
}
