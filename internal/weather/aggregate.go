package weather

import "math"

// SummarizeForecast combines the daily entries into the stats strip shown
// under the forecast. Humidity and wind are averaged and rounded.
func SummarizeForecast(days []ForecastDay) ForecastSummary {
	if len(days) == 0 {
		return ForecastSummary{}
	}

	var (
		sumHumidity float64
		sumWind     float64
	)

	for _, d := range days {
		sumHumidity += float64(d.Humidity)
		sumWind += d.WindSpeed
	}

	n := float64(len(days))

	return ForecastSummary{
		Days:        len(days),
		AvgHumidity: int(math.Round(sumHumidity / n)),
		AvgWind:     int(math.Round(sumWind / n)),
	}
}
