package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

const (
	DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultOneCallURL         = "https://api.openweathermap.org/data/3.0/onecall"
)

// OpenWeatherConfig configures the OpenWeatherMap provider.
type OpenWeatherConfig struct {
	APIKey     string
	BaseURL    string // current and forecast endpoints live under it
	OneCallURL string // alerts

	MaxRetries    int
	RetryInterval time.Duration // first backoff step
	RatePerSec    float64       // outbound request budget; 0 disables limiting
}

// OpenWeatherProvider implements weather.Provider and weather.AlertProvider
// for OpenWeatherMap.
type OpenWeatherProvider struct {
	name       string
	apiKey     string
	baseURL    string
	oneCallURL string
	httpCfg    HTTPClientConfig
	circuit    *gobreaker.CircuitBreaker
}

func NewOpenWeatherProvider(client *http.Client, cfg OpenWeatherConfig) *OpenWeatherProvider {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultOpenWeatherBaseURL
	}
	oneCallURL := cfg.OneCallURL
	if oneCallURL == "" {
		oneCallURL = DefaultOneCallURL
	}
	retryInterval := cfg.RetryInterval
	if retryInterval <= 0 {
		retryInterval = 500 * time.Millisecond
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}

	return &OpenWeatherProvider{
		name:       "openweathermap",
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		oneCallURL: oneCallURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      retries,
				InitialInterval: retryInterval,
				MaxInterval:     5 * time.Second,
			},
			Limiter: newLimiter(cfg.RatePerSec),
		},
		circuit: cb,
	}
}

func (p *OpenWeatherProvider) Name() string {
	return p.name
}

// FetchCurrent calls /weather for a city name or coordinates.
func (p *OpenWeatherProvider) FetchCurrent(ctx context.Context, loc weather.Location) (weather.RawCurrent, error) {
	resp, err := p.get(ctx, p.baseURL+"/weather", p.locationValues(loc))
	if err != nil {
		return weather.RawCurrent{}, err
	}
	defer resp.Body.Close()

	return weather.DecodeCurrent(resp.Body)
}

// FetchForecast calls /forecast (5 days of 3-hourly samples).
func (p *OpenWeatherProvider) FetchForecast(ctx context.Context, loc weather.Location) (weather.RawForecast, error) {
	resp, err := p.get(ctx, p.baseURL+"/forecast", p.locationValues(loc))
	if err != nil {
		return weather.RawForecast{}, err
	}
	defer resp.Body.Close()

	return weather.DecodeForecast(resp.Body)
}

// FetchAlerts calls the One Call endpoint with everything but alerts excluded.
func (p *OpenWeatherProvider) FetchAlerts(ctx context.Context, lat, lon float64) ([]weather.Alert, error) {
	values := url.Values{}
	values.Set("lat", formatCoord(lat))
	values.Set("lon", formatCoord(lon))
	values.Set("exclude", "current,minutely,hourly,daily")

	resp, err := p.get(ctx, p.oneCallURL, values)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Alerts []weather.Alert `json:"alerts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &weather.MalformedResponseError{Op: "alerts", Err: err}
	}
	if payload.Alerts == nil {
		return []weather.Alert{}, nil
	}
	return payload.Alerts, nil
}

func (p *OpenWeatherProvider) locationValues(loc weather.Location) url.Values {
	values := url.Values{}
	if loc.HasCoords() {
		values.Set("lat", formatCoord(*loc.Lat))
		values.Set("lon", formatCoord(*loc.Lon))
	} else {
		values.Set("q", strings.TrimSpace(loc.City))
	}
	values.Set("units", "metric")
	return values
}

func (p *OpenWeatherProvider) get(ctx context.Context, endpoint string, values url.Values) (*http.Response, error) {
	if p.apiKey == "" {
		return nil, &weather.TransportError{Provider: p.name, Err: fmt.Errorf("openweather api key is not configured")}
	}
	values.Set("appid", p.apiKey)

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", endpoint, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return nil, &weather.TransportError{Provider: p.name, StatusCode: statusCode(err), Err: err}
	}
	return resp, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
