package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/store"
	"github.com/i474232898/weather-dashboard/internal/weather"
	"github.com/i474232898/weather-dashboard/internal/weather/providers"
)

var rootCmd = &cobra.Command{
	Use:   "weatherdash",
	Short: "weatherdash serves current conditions, daily forecasts and weather advice",
	Long: `weatherdash is the backend of the weather dashboard. It fetches current
conditions and a 5-day/3-hour forecast from OpenWeatherMap, collapses the
forecast into one entry per day, and derives recommendations from the result.

Configuration comes from the environment (or a .env file):
  OPENWEATHER_API_KEY   provider key (required)
  DAY_BOUNDARY          local|utc|location|<IANA zone> (default: local)

Quick start:
  weatherdash serve                 # HTTP API on $PORT (default 8080)
  weatherdash current London        # current conditions as a table
  weatherdash forecast --lat 48.85 --lon 2.35`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildService resolves config and wires provider, cache and service.
func buildService() (*config.AppConfig, *weather.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := providers.NewOpenWeatherProvider(httpClient, providers.OpenWeatherConfig{
		APIKey:     cfg.OpenWeatherAPIKey,
		BaseURL:    cfg.OpenWeatherBaseURL,
		OneCallURL: cfg.OneCallURL,
		MaxRetries: cfg.FetchRetries,
		RatePerSec: cfg.RatePerSec,
	})

	cache := store.NewMemoryCache(cfg.CacheStaleAfter, cfg.CacheMaxEntries)

	return cfg, weather.NewService(provider, cache, cfg.DayBoundary), nil
}
