package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(DefaultGenConfig(42))
	b := Generate(DefaultGenConfig(42))
	assert.Equal(t, a, b)

	c := Generate(DefaultGenConfig(43))
	assert.NotEqual(t, a.Weather, c.Weather, "different seeds should differ somewhere")
}

func TestGenerateShape(t *testing.T) {
	y := Generate(DefaultGenConfig(7))
	assert.Equal(t, 180, y.TotalDays)
	assert.Equal(t, 1, y.CurrentDay)
	assert.Len(t, y.Weather, 180)
	require.Len(t, y.Breaks, 3)
	for _, b := range y.Breaks {
		assert.NotEmpty(t, b.Name)
		assert.LessOrEqual(t, b.StartDay, b.EndDay)
		assert.LessOrEqual(t, b.EndDay, y.TotalDays)
	}
}

func TestGenerateDefaultsZeroTotal(t *testing.T) {
	y := Generate(GenConfig{Seed: 1})
	assert.Equal(t, 180, y.TotalDays)
}

func TestWeatherOnOutOfRange(t *testing.T) {
	y := Generate(DefaultGenConfig(7))
	assert.Equal(t, WeatherClear, y.WeatherOn(0))
	assert.Equal(t, WeatherClear, y.WeatherOn(-3))
	assert.Equal(t, WeatherClear, y.WeatherOn(181))
	assert.Equal(t, y.Weather[0], y.WeatherOn(1))
}

func TestOnBreak(t *testing.T) {
	y := Generate(DefaultGenConfig(7))
	winter := y.Breaks[1]
	assert.True(t, y.OnBreak(winter.StartDay))
	assert.True(t, y.OnBreak(winter.EndDay))
	assert.False(t, y.OnBreak(winter.EndDay+1))
	assert.False(t, y.OnBreak(1))
}

func TestAdvanceClampsAtTotal(t *testing.T) {
	y := Generate(GenConfig{Seed: 1, TotalDays: 3})
	y.Advance()
	y.Advance()
	assert.Equal(t, 3, y.CurrentDay)
	y.Advance()
	assert.Equal(t, 3, y.CurrentDay, "current day never passes the total")
}

func TestCloneIsDeep(t *testing.T) {
	y := Generate(GenConfig{Seed: 1, TotalDays: 10})
	c := y.Clone()
	c.Weather[0] = WeatherSnow + 1
	c.Breaks[0].Name = "changed"
	assert.NotEqual(t, c.Weather[0], y.Weather[0])
	assert.NotEqual(t, "changed", y.Breaks[0].Name)
}
