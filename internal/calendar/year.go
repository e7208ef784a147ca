// Package calendar generates the school year the simulation core consumes:
// day count, break windows, and weather-day flags. Generation is fully
// deterministic from an explicit seed; the core only reads the calendar and
// increments the current day.
package calendar

import (
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// WeatherKind is the day's dominant weather.
type WeatherKind uint8

const (
	WeatherClear WeatherKind = iota
	WeatherRain
	WeatherStorm
	WeatherSnow
)

// WeatherName returns a human-readable weather label.
func WeatherName(w WeatherKind) string {
	switch w {
	case WeatherRain:
		return "rain"
	case WeatherStorm:
		return "storm"
	case WeatherSnow:
		return "snow"
	default:
		return "clear"
	}
}

// Break is a no-school window within the year, inclusive on both ends.
type Break struct {
	Name     string `json:"name"`
	StartDay int    `json:"start_day"`
	EndDay   int    `json:"end_day"`
}

// SchoolYear is the calendar value threaded through the game state.
type SchoolYear struct {
	Seed       int64         `json:"seed"`
	TotalDays  int           `json:"total_days"`
	CurrentDay int           `json:"current_day"` // 1-based
	Breaks     []Break       `json:"breaks"`
	Weather    []WeatherKind `json:"weather"` // Indexed by day-1
}

// GenConfig holds calendar generation parameters.
type GenConfig struct {
	Seed      int64
	TotalDays int
}

// DefaultGenConfig returns a standard 180-day school year.
func DefaultGenConfig(seed int64) GenConfig {
	return GenConfig{Seed: seed, TotalDays: 180}
}

// Generate creates a complete school year. Two independent noise layers
// (temperature, precipitation) plus a seasonal cosine produce the per-day
// weather; breaks sit at fixed fractions of the year.
func Generate(cfg GenConfig) SchoolYear {
	total := cfg.TotalDays
	if total <= 0 {
		total = 180
	}

	tempNoise := opensimplex.NewNormalized(cfg.Seed)
	precipNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	weather := make([]WeatherKind, total)
	for d := 0; d < total; d++ {
		x := float64(d) * 0.15

		// Season curve: warm at the start and end of the year (fall, late
		// spring), coldest around the midpoint (winter).
		season := math.Cos(2 * math.Pi * float64(d) / float64(total))
		temp := 0.5 + 0.35*season + 0.3*(tempNoise.Eval2(x, 0)-0.5)
		precip := precipNoise.Eval2(x, 7)

		switch {
		case precip > 0.72 && temp < 0.35:
			weather[d] = WeatherSnow
		case precip > 0.85:
			weather[d] = WeatherStorm
		case precip > 0.65:
			weather[d] = WeatherRain
		default:
			weather[d] = WeatherClear
		}
	}

	return SchoolYear{
		Seed:       cfg.Seed,
		TotalDays:  total,
		CurrentDay: 1,
		Breaks: []Break{
			{Name: "fall break", StartDay: total * 2 / 9, EndDay: total*2/9 + 2},
			{Name: "winter break", StartDay: total / 2, EndDay: total/2 + 9},
			{Name: "spring break", StartDay: total * 7 / 9, EndDay: total*7/9 + 4},
		},
		Weather: weather,
	}
}

// WeatherOn returns the weather for a 1-based day, clear when out of range.
func (y *SchoolYear) WeatherOn(day int) WeatherKind {
	if day < 1 || day > len(y.Weather) {
		return WeatherClear
	}
	return y.Weather[day-1]
}

// OnBreak reports whether a 1-based day falls within a break window.
func (y *SchoolYear) OnBreak(day int) bool {
	for _, b := range y.Breaks {
		if day >= b.StartDay && day <= b.EndDay {
			return true
		}
	}
	return false
}

// Advance increments the current day, clamped at the configured total.
func (y *SchoolYear) Advance() {
	if y.CurrentDay < y.TotalDays {
		y.CurrentDay++
	}
}

// Clone returns a deep copy of the school year.
func (y SchoolYear) Clone() SchoolYear {
	out := y
	out.Breaks = append([]Break(nil), y.Breaks...)
	out.Weather = append([]WeatherKind(nil), y.Weather...)
	return out
}
