// Package recommend turns a normalized reading into the dashboard's advice:
// a recommendation sentence, a mood, activity suggestions and comfort badges.
// Each output is an ordered rule table; the first matching rule wins and the
// last rule always matches.
package recommend

import (
	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/weather"
)

// Mood is a one-word feel for the day.
type Mood struct {
	Emoji string `json:"emoji"`
	Label string `json:"label"`
}

// Badges are the coarse comfort indicators shown under the advice.
type Badges struct {
	UVIndex    string `json:"uv_index"`
	AirQuality string `json:"air_quality"`
	Comfort    string `json:"comfort"`
}

// Advice is everything the classifier derives from one reading.
type Advice struct {
	Text       string   `json:"recommendation"`
	Mood       Mood     `json:"mood"`
	Activities []string `json:"activities"`
	Badges     Badges   `json:"badges"`
}

type rule[T any] struct {
	when func(weather.WeatherReading) bool
	then T
}

func always(weather.WeatherReading) bool { return true }

func condition(groups ...string) func(weather.WeatherReading) bool {
	return func(r weather.WeatherReading) bool {
		return common.OneOf(r.Main, groups...)
	}
}

func conditionBetween(group string, lo, hi int) func(weather.WeatherReading) bool {
	return func(r weather.WeatherReading) bool {
		return common.OneOf(r.Main, group) && r.Temp >= lo && r.Temp <= hi
	}
}

var textRules = []rule[string]{
	{condition("Rain", "Drizzle"), "Don't forget your umbrella! It's a great day to stay cozy indoors with a warm drink."},
	{condition("Snow"), "Bundle up warm! Perfect weather for hot cocoa and winter activities."},
	{condition("Thunderstorm"), "Stay safe indoors! It's a powerful storm out there. Perfect time for indoor activities."},
	{func(r weather.WeatherReading) bool { return r.Temp >= 25 }, "Beautiful weather! Perfect for outdoor activities. Don't forget sunscreen and stay hydrated."},
	{func(r weather.WeatherReading) bool { return r.Temp <= 0 }, "It's freezing out there! Layer up and limit outdoor exposure. Stay warm!"},
	{func(r weather.WeatherReading) bool { return r.WindSpeed > 10 }, "It's quite windy! Secure loose items and be careful when walking or driving."},
	{func(r weather.WeatherReading) bool { return r.Humidity > 80 }, "High humidity today! Stay cool and hydrated. Light, breathable clothing recommended."},
	{always, "Great weather today! Perfect for any outdoor plans you might have."},
}

var moodRules = []rule[Mood]{
	{conditionBetween("Clear", 20, 28), Mood{"☀️", "Perfect"}},
	{conditionBetween("Clouds", 15, 25), Mood{"⛅", "Pleasant"}},
	{condition("Rain"), Mood{"🌧️", "Cozy"}},
	{condition("Snow"), Mood{"❄️", "Magical"}},
	{func(r weather.WeatherReading) bool { return r.Temp >= 30 }, Mood{"🔥", "Hot"}},
	{func(r weather.WeatherReading) bool { return r.Temp <= 0 }, Mood{"🧊", "Freezing"}},
	{always, Mood{"🌤️", "Nice"}},
}

var activityRules = []rule[[]string]{
	{conditionBetween("Clear", 20, 30), []string{"Perfect for hiking", "Great for outdoor picnic", "Ideal for photography", "Beach day vibes"}},
	{condition("Rain", "Drizzle"), []string{"Cozy indoor reading", "Movie marathon time", "Hot soup cooking", "Board game session"}},
	{condition("Snow"), []string{"Winter photography", "Hot chocolate time", "Indoor crafts", "Warm blanket day"}},
	{func(r weather.WeatherReading) bool { return r.Temp >= 30 }, []string{"Stay hydrated", "Air conditioning time", "Swimming pool visit", "Iced drinks recommended"}},
	{func(r weather.WeatherReading) bool { return r.Temp <= 5 }, []string{"Layer up warm", "Hot drinks essential", "Indoor activities", "Fireplace time"}},
	{always, []string{"Perfect for walking", "Great for outdoor sports", "Comfortable weather", "Enjoy the day"}},
}

func pick[T any](rules []rule[T], r weather.WeatherReading) T {
	for _, rl := range rules {
		if rl.when(r) {
			return rl.then
		}
	}
	var zero T
	return zero
}

// Text returns the recommendation sentence.
func Text(r weather.WeatherReading) string {
	return pick(textRules, r)
}

// MoodOf returns the day's mood.
func MoodOf(r weather.WeatherReading) Mood {
	return pick(moodRules, r)
}

// Activities returns suggested activities, in display order.
func Activities(r weather.WeatherReading) []string {
	return append([]string(nil), pick(activityRules, r)...)
}

// BadgesOf grades UV exposure from temperature, air quality from visibility
// and comfort from humidity.
func BadgesOf(r weather.WeatherReading) Badges {
	b := Badges{UVIndex: "Low", AirQuality: "Poor", Comfort: "Comfortable"}

	switch {
	case r.Temp > 25:
		b.UVIndex = "High"
	case r.Temp > 15:
		b.UVIndex = "Medium"
	}

	switch {
	case r.Visibility > 8:
		b.AirQuality = "Good"
	case r.Visibility > 5:
		b.AirQuality = "Fair"
	}

	switch {
	case r.Humidity > 70:
		b.Comfort = "Humid"
	case r.Humidity < 30:
		b.Comfort = "Dry"
	}

	return b
}

// Classify runs every table against r.
func Classify(r weather.WeatherReading) Advice {
	return Advice{
		Text:       Text(r),
		Mood:       MoodOf(r),
		Activities: Activities(r),
		Badges:     BadgesOf(r),
	}
}
