// Package render formats weather results for the terminal.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/i474232898/weather-dashboard/internal/display"
	"github.com/i474232898/weather-dashboard/internal/recommend"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Current writes the current conditions and the advice derived from them.
func Current(w io.Writer, r weather.WeatherReading) error {
	advice := recommend.Classify(r)

	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"FIELD", "VALUE"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColWidth(80)
	tw.SetAutoWrapText(true)

	tw.AppendBulk([][]string{
		{"Location", fmt.Sprintf("%s, %s", r.Name, r.Country)},
		{"Conditions", fmt.Sprintf("%s (%s)", r.Main, r.Description)},
		{"Temperature", fmt.Sprintf("%d°C (feels like %d°C)", r.Temp, r.FeelsLike)},
		{"Low / High", fmt.Sprintf("%d°C / %d°C", r.TempMin, r.TempMax)},
		{"Humidity", fmt.Sprintf("%d%%", r.Humidity)},
		{"Pressure", fmt.Sprintf("%d hPa", r.Pressure)},
		{"Visibility", fmt.Sprintf("%.1f km", r.Visibility)},
		{"Wind", fmt.Sprintf("%g m/s %s", r.WindSpeed, display.WindDirection(r.WindDeg))},
		{"Clouds", fmt.Sprintf("%d%%", r.Clouds)},
		{"Sunrise", display.LocalClock(r.Sunrise, r.Timezone)},
		{"Sunset", display.LocalClock(r.Sunset, r.Timezone)},
		{"Mood", fmt.Sprintf("%s %s", advice.Mood.Emoji, advice.Mood.Label)},
		{"Advice", advice.Text},
		{"UV / Air / Comfort", fmt.Sprintf("%s / %s / %s", advice.Badges.UVIndex, advice.Badges.AirQuality, advice.Badges.Comfort)},
	})
	tw.Render()
	return nil
}

// Forecast writes one row per forecast day followed by the summary line.
func Forecast(w io.Writer, f weather.Forecast, zone *time.Location, now time.Time) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader([]string{"DAY", "CONDITIONS", "LOW", "HIGH", "RAIN", "HUMIDITY", "WIND"})
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})
	tw.SetAutoWrapText(false)

	for _, d := range f.Days {
		tw.Append([]string{
			display.DayLabel(d.Dt, now, zone),
			d.Description,
			fmt.Sprintf("%d°C", d.TempMin),
			fmt.Sprintf("%d°C", d.TempMax),
			fmt.Sprintf("%d%%", d.Pop),
			fmt.Sprintf("%d%%", d.Humidity),
			fmt.Sprintf("%.0f m/s", d.WindSpeed),
		})
	}
	tw.Render()

	s := weather.SummarizeForecast(f.Days)
	_, err := fmt.Fprintf(w, "%s, %s: %d days, avg humidity %d%%, avg wind %d m/s\n",
		f.City, f.Country, s.Days, s.AvgHumidity, s.AvgWind)
	return err
}
