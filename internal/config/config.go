package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

type AppConfig struct {
	OpenWeatherAPIKey  string
	OpenWeatherBaseURL string
	OneCallURL         string

	// Outbound calls.
	HTTPTimeout  time.Duration
	FetchRetries int
	RatePerSec   float64

	// Cache.
	CacheStaleAfter time.Duration // how long a fetched result is served
	CacheMaxEntries int           // per kind (0 = unlimited)

	// RefreshInterval controls how often tracked cities are re-fetched.
	RefreshInterval time.Duration

	// Cities kept warm in the cache.
	TrackedCities []weather.Location

	// DayBoundary decides which clock splits forecast days.
	DayBoundary weather.DayBoundary

	Port string
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is applied first when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.OpenWeatherBaseURL = getenvDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5")
	cfg.OneCallURL = getenvDefault("OPENWEATHER_ONECALL_URL", "https://api.openweathermap.org/data/3.0/onecall")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	cfg.FetchRetries = getenvInt("FETCH_RETRIES", 2)
	if cfg.FetchRetries < 0 {
		return nil, fmt.Errorf("invalid FETCH_RETRIES: must not be negative")
	}
	cfg.RatePerSec = getenvFloat("RATE_LIMIT_PER_SEC", 1)

	// Results stay fresh for 10 minutes by default.
	if cfg.CacheStaleAfter, err = getenvDuration("CACHE_STALE_AFTER", "10m"); err != nil {
		return nil, err
	}
	cfg.CacheMaxEntries = getenvInt("CACHE_MAX_ENTRIES", 256)

	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}

	for _, city := range common.SplitList(os.Getenv("TRACKED_CITIES")) {
		cfg.TrackedCities = append(cfg.TrackedCities, weather.CityLocation(city))
	}

	boundary, err := weather.ParseDayBoundary(getenvDefault("DAY_BOUNDARY", "local"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAY_BOUNDARY: %w", err)
	}
	cfg.DayBoundary = boundary

	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
