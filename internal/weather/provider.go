package weather

import (
	"context"
)

// Provider abstracts the upstream weather API. It returns decoded but not
// yet normalized documents.
type Provider interface {
	Name() string
	FetchCurrent(ctx context.Context, loc Location) (RawCurrent, error)
	FetchForecast(ctx context.Context, loc Location) (RawForecast, error)
}

// AlertProvider is implemented by providers that can relay weather alerts.
type AlertProvider interface {
	FetchAlerts(ctx context.Context, lat, lon float64) ([]Alert, error)
}

// Cache is the contract the in-memory cache must satisfy. Lookups miss once
// an entry is older than the cache's staleness window.
type Cache interface {
	GetCurrent(loc Location) (WeatherReading, bool)
	PutCurrent(loc Location, reading WeatherReading)
	GetForecast(loc Location) (Forecast, bool)
	PutForecast(loc Location, forecast Forecast)
}
