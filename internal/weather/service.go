package weather

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"
)

var errNoProvider = errors.New("no weather provider configured")

// Service fetches from the provider, normalizes, and caches results.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	provider Provider
	cache    Cache
	boundary DayBoundary
}

// NewService creates a new Service. cache may be nil to disable caching.
func NewService(provider Provider, cache Cache, boundary DayBoundary) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		boundary: boundary,
	}
}

// Dashboard bundles what the dashboard page shows for one location.
// A forecast failure does not hide the current conditions.
type Dashboard struct {
	Current       WeatherReading
	Forecast      Forecast
	ForecastError error
}

// Current returns current conditions, served from cache while fresh.
func (s *Service) Current(ctx context.Context, loc Location) (WeatherReading, error) {
	if err := loc.Validate(); err != nil {
		return WeatherReading{}, err
	}
	if s.cache != nil {
		if r, ok := s.cache.GetCurrent(loc); ok {
			log.Printf("DEBUG: current weather cache hit for %s", loc)
			return r, nil
		}
	}
	return s.fetchCurrent(ctx, loc)
}

// Forecast returns the daily forecast, served from cache while fresh.
func (s *Service) Forecast(ctx context.Context, loc Location) (Forecast, error) {
	if err := loc.Validate(); err != nil {
		return Forecast{}, err
	}
	if s.cache != nil {
		if f, ok := s.cache.GetForecast(loc); ok {
			log.Printf("DEBUG: forecast cache hit for %s", loc)
			return f, nil
		}
	}
	return s.fetchForecast(ctx, loc)
}

// Dashboard fetches current conditions and the forecast concurrently.
func (s *Service) Dashboard(ctx context.Context, loc Location) (Dashboard, error) {
	if err := loc.Validate(); err != nil {
		return Dashboard{}, err
	}

	var (
		wg          sync.WaitGroup
		current     WeatherReading
		currentErr  error
		forecast    Forecast
		forecastErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		current, currentErr = s.Current(ctx, loc)
	}()
	go func() {
		defer wg.Done()
		forecast, forecastErr = s.Forecast(ctx, loc)
	}()
	wg.Wait()

	if currentErr != nil {
		return Dashboard{}, currentErr
	}
	if forecastErr != nil {
		log.Printf("WARN: forecast unavailable for %s: %v", loc, forecastErr)
	}

	return Dashboard{
		Current:       current,
		Forecast:      forecast,
		ForecastError: forecastErr,
	}, nil
}

// Refresh re-fetches current conditions and forecast for loc, bypassing and
// then repopulating the cache.
func (s *Service) Refresh(ctx context.Context, loc Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := s.fetchCurrent(ctx, loc)
		record(err)
	}()
	go func() {
		defer wg.Done()
		_, err := s.fetchForecast(ctx, loc)
		record(err)
	}()
	wg.Wait()

	return errors.Join(errs...)
}

// DayZone returns the zone forecast days are split in for a city at
// utcOffset seconds from UTC.
func (s *Service) DayZone(utcOffset int) *time.Location {
	return s.boundary.Zone(utcOffset)
}

// Alerts returns active weather alerts for the coordinates. Alerts are best
// effort: provider failures are logged and yield an empty list.
func (s *Service) Alerts(ctx context.Context, lat, lon float64) []Alert {
	ap, ok := s.provider.(AlertProvider)
	if !ok {
		return []Alert{}
	}

	alerts, err := ap.FetchAlerts(ctx, lat, lon)
	if err != nil {
		log.Printf("WARN: weather alerts not available for %.4f,%.4f: %v", lat, lon, err)
		return []Alert{}
	}
	if alerts == nil {
		return []Alert{}
	}
	return alerts
}

func (s *Service) fetchCurrent(ctx context.Context, loc Location) (WeatherReading, error) {
	if s.provider == nil {
		return WeatherReading{}, errNoProvider
	}

	raw, err := s.provider.FetchCurrent(ctx, loc)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("current weather for %s: %w", loc, err)
	}

	reading, err := NormalizeCurrent(raw)
	if err != nil {
		log.Printf("ERROR: provider %s sent unusable current weather for %s: %v", s.provider.Name(), loc, err)
		return WeatherReading{}, fmt.Errorf("current weather for %s: %w", loc, err)
	}

	if s.cache != nil {
		s.cache.PutCurrent(loc, reading)
	}
	return reading, nil
}

func (s *Service) fetchForecast(ctx context.Context, loc Location) (Forecast, error) {
	if s.provider == nil {
		return Forecast{}, errNoProvider
	}

	raw, err := s.provider.FetchForecast(ctx, loc)
	if err != nil {
		return Forecast{}, fmt.Errorf("forecast for %s: %w", loc, err)
	}

	if err := checkPayload("forecast", raw); err != nil {
		log.Printf("ERROR: provider %s sent unusable forecast for %s: %v", s.provider.Name(), loc, err)
		return Forecast{}, fmt.Errorf("forecast for %s: %w", loc, err)
	}

	offset := *raw.City.Timezone
	days, err := BucketizeForecast(raw.List, s.boundary.Zone(offset))
	if err != nil {
		log.Printf("ERROR: provider %s sent unusable forecast for %s: %v", s.provider.Name(), loc, err)
		return Forecast{}, fmt.Errorf("forecast for %s: %w", loc, err)
	}

	forecast := Forecast{
		City:     raw.City.Name,
		Country:  raw.City.Country,
		Timezone: offset,
		Days:     days,
	}

	if s.cache != nil {
		s.cache.PutForecast(loc, forecast)
	}
	return forecast, nil
}
