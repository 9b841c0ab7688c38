package store

import (
	"sync"
	"time"

	"github.com/i474232898/weather-dashboard/internal/weather"
)

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// MemoryCache is a concurrency-safe in-memory implementation of weather.Cache.
// Entries are served until they are older than staleAfter.
type MemoryCache struct {
	mu sync.RWMutex

	// key: location key
	current  map[string]entry[weather.WeatherReading]
	forecast map[string]entry[weather.Forecast]

	// retention configuration
	staleAfter time.Duration // 0 = never stale
	maxEntries int           // per kind, 0 = unlimited

	now func() time.Time
}

// NewMemoryCache creates a new MemoryCache.
// If maxEntries is <= 0, it is treated as unlimited.
func NewMemoryCache(staleAfter time.Duration, maxEntries int) *MemoryCache {
	return &MemoryCache{
		current:    make(map[string]entry[weather.WeatherReading]),
		forecast:   make(map[string]entry[weather.Forecast]),
		staleAfter: staleAfter,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// GetCurrent returns the cached reading for loc if it is still fresh.
func (c *MemoryCache) GetCurrent(loc weather.Location) (weather.WeatherReading, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.current[loc.Key()]
	if !ok || c.stale(e.storedAt) {
		return weather.WeatherReading{}, false
	}
	return e.value, true
}

// PutCurrent stores a reading for loc and enforces capacity.
func (c *MemoryCache) PutCurrent(loc weather.Location, reading weather.WeatherReading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.current[loc.Key()] = entry[weather.WeatherReading]{value: reading, storedAt: c.now()}
	evict(c.current, c.maxEntries, c.now(), c.staleAfter)
}

// GetForecast returns the cached forecast for loc if it is still fresh.
func (c *MemoryCache) GetForecast(loc weather.Location) (weather.Forecast, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.forecast[loc.Key()]
	if !ok || c.stale(e.storedAt) {
		return weather.Forecast{}, false
	}
	// Days is shared with the cache; hand out a copy.
	f := e.value
	f.Days = append([]weather.ForecastDay(nil), e.value.Days...)
	return f, true
}

// PutForecast stores a forecast for loc and enforces capacity.
func (c *MemoryCache) PutForecast(loc weather.Location, forecast weather.Forecast) {
	forecast.Days = append([]weather.ForecastDay(nil), forecast.Days...)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.forecast[loc.Key()] = entry[weather.Forecast]{value: forecast, storedAt: c.now()}
	evict(c.forecast, c.maxEntries, c.now(), c.staleAfter)
}

// Len returns the number of cached readings and forecasts, stale ones included.
func (c *MemoryCache) Len() (current, forecast int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.current), len(c.forecast)
}

func (c *MemoryCache) stale(storedAt time.Time) bool {
	return c.staleAfter > 0 && c.now().Sub(storedAt) > c.staleAfter
}

// evict drops stale entries, then the oldest ones until m fits in limit.
func evict[T any](m map[string]entry[T], limit int, now time.Time, staleAfter time.Duration) {
	if staleAfter > 0 {
		for k, e := range m {
			if now.Sub(e.storedAt) > staleAfter {
				delete(m, k)
			}
		}
	}

	for limit > 0 && len(m) > limit {
		var (
			oldestKey string
			oldestAt  time.Time
		)
		for k, e := range m {
			if oldestKey == "" || e.storedAt.Before(oldestAt) {
				oldestKey, oldestAt = k, e.storedAt
			}
		}
		delete(m, oldestKey)
	}
}
