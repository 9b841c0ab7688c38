package weather

import "math"

// NormalizeCurrent maps a /weather payload to a WeatherReading.
// A payload missing any consumed field fails as a whole.
func NormalizeCurrent(raw RawCurrent) (WeatherReading, error) {
	if err := checkPayload("current", raw); err != nil {
		return WeatherReading{}, err
	}

	return WeatherReading{
		Name:       *raw.Name,
		Country:    *raw.Sys.Country,
		Temp:       roundTemp(*raw.Main.Temp),
		FeelsLike:  roundTemp(*raw.Main.FeelsLike),
		TempMin:    roundTemp(*raw.Main.TempMin),
		TempMax:    roundTemp(*raw.Main.TempMax),
		Humidity:   *raw.Main.Humidity,
		Pressure:   *raw.Main.Pressure,
		Visibility: *raw.Visibility / 1000,
		WindSpeed:  *raw.Wind.Speed,
		WindDeg:    *raw.Wind.Deg,
		Condition:  conditionOf(raw.Weather[0]),
		Clouds:     *raw.Clouds.All,
		Dt:         *raw.Dt,
		Sunrise:    *raw.Sys.Sunrise,
		Sunset:     *raw.Sys.Sunset,
		Timezone:   *raw.Timezone,
	}, nil
}

// NormalizeSample maps one forecast sample to a ForecastDay.
func NormalizeSample(raw RawSample) (ForecastDay, error) {
	if err := checkPayload("forecast sample", raw); err != nil {
		return ForecastDay{}, err
	}

	return ForecastDay{
		Dt:        *raw.Dt,
		TempMin:   roundTemp(*raw.Main.TempMin),
		TempMax:   roundTemp(*raw.Main.TempMax),
		Condition: conditionOf(raw.Weather[0]),
		Humidity:  *raw.Main.Humidity,
		WindSpeed: *raw.Wind.Speed,
		Clouds:    *raw.Clouds.All,
		Pop:       int(math.Round(*raw.Pop * 100)),
	}, nil
}

// roundTemp rounds to whole degrees; halves go away from zero (-2.5 -> -3).
func roundTemp(v float64) int {
	return int(math.Round(v))
}

func conditionOf(c RawCondition) Condition {
	return Condition{
		Main:        *c.Main,
		Description: *c.Description,
		Icon:        *c.Icon,
	}
}
