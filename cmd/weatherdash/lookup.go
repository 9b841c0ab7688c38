package main

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-dashboard/internal/render"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

var lookupFlags struct {
	Lat     float64
	Lon     float64
	JSON    bool
	Timeout time.Duration
}

var currentCmd = &cobra.Command{
	Use:   "current [city]",
	Short: "Show current conditions for a city or coordinates",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := lookupLocation(cmd, args)
		if err != nil {
			return err
		}
		_, service, err := buildService()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), lookupFlags.Timeout)
		defer cancel()

		reading, err := service.Current(ctx, loc)
		if err != nil {
			return err
		}
		if lookupFlags.JSON {
			return render.JSON(cmd.OutOrStdout(), reading)
		}
		return render.Current(cmd.OutOrStdout(), reading)
	},
}

var forecastCmd = &cobra.Command{
	Use:   "forecast [city]",
	Short: "Show the daily forecast for a city or coordinates",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := lookupLocation(cmd, args)
		if err != nil {
			return err
		}
		_, service, err := buildService()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), lookupFlags.Timeout)
		defer cancel()

		forecast, err := service.Forecast(ctx, loc)
		if err != nil {
			return err
		}
		if lookupFlags.JSON {
			return render.JSON(cmd.OutOrStdout(), forecast)
		}
		return render.Forecast(cmd.OutOrStdout(), forecast, service.DayZone(forecast.Timezone), time.Now())
	},
}

// lookupLocation reads the city from the arguments, or the --lat/--lon pair.
// Multi-word city names may be passed unquoted.
func lookupLocation(cmd *cobra.Command, args []string) (weather.Location, error) {
	latSet := cmd.Flags().Changed("lat")
	lonSet := cmd.Flags().Changed("lon")

	switch {
	case latSet && lonSet:
		return weather.CoordsLocation(lookupFlags.Lat, lookupFlags.Lon), nil
	case latSet || lonSet:
		return weather.Location{}, errors.New("--lat and --lon must be given together")
	case len(args) > 0:
		return weather.CityLocation(strings.Join(args, " ")), nil
	default:
		return weather.Location{}, weather.ErrNoLocation
	}
}

func init() {
	for _, c := range []*cobra.Command{currentCmd, forecastCmd} {
		f := c.Flags()
		f.Float64Var(&lookupFlags.Lat, "lat", 0, "latitude (requires --lon)")
		f.Float64Var(&lookupFlags.Lon, "lon", 0, "longitude (requires --lat)")
		f.BoolVar(&lookupFlags.JSON, "json", false, "print JSON instead of a table")
		f.DurationVar(&lookupFlags.Timeout, "timeout", 30*time.Second, "overall lookup timeout")
		rootCmd.AddCommand(c)
	}
}
