package weather

import (
	"fmt"
	"math"
	"time"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/validation"
)

// ForecastHorizonDays is the furthest day ahead the forecast endpoint covers
const ForecastHorizonDays = 16

// DayWeather is the weather summary for one calendar date
type DayWeather struct {
	Date          string
	TempMax       float64
	TempMin       float64
	Precipitation float64
	WeatherCode   int
}

// WeatherMap holds day summaries keyed by YYYY-MM-DD
type WeatherMap map[string]DayWeather

// Condition is the display form of a weather code
type Condition struct {
	Code        int
	Emoji       string
	Description string
}

// ConditionFor maps a weather code onto its condition. Ranges are inclusive
// upper bounds checked in order.
func ConditionFor(code int) Condition {
	switch {
	case code == 0:
		return Condition{Code: code, Emoji: "☀️", Description: "Clear"}
	case code <= 3:
		return Condition{Code: code, Emoji: "⛅", Description: "Partly Cloudy"}
	case code <= 48:
		return Condition{Code: code, Emoji: "☁️", Description: "Cloudy"}
	case code <= 67:
		return Condition{Code: code, Emoji: "🌧️", Description: "Rain"}
	case code <= 77:
		return Condition{Code: code, Emoji: "🌨️", Description: "Snow"}
	case code <= 82:
		return Condition{Code: code, Emoji: "🌧️", Description: "Rain Showers"}
	case code <= 86:
		return Condition{Code: code, Emoji: "🌨️", Description: "Snow Showers"}
	default:
		return Condition{Code: code, Emoji: "⛈️", Description: "Thunderstorm"}
	}
}

// Condition returns the display condition of the day
func (d DayWeather) Condition() Condition {
	return ConditionFor(d.WeatherCode)
}

// ValidateCoordinates checks latitude and longitude ranges
func ValidateCoordinates(coords ports.Coordinates) error {
	if !validation.IsValidLatitude(coords.Latitude) {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if !validation.IsValidLongitude(coords.Longitude) {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// RoundCoordinate rounds to the 4 decimals used for cache and record keys
func RoundCoordinate(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// roundHalfUp rounds x.5 towards positive infinity
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

func fromProvider(d ports.DailyWeatherData) DayWeather {
	return DayWeather{
		Date:          d.Date,
		TempMax:       roundHalfUp(d.TempMax),
		TempMin:       roundHalfUp(d.TempMin),
		Precipitation: d.Precipitation,
		WeatherCode:   d.WeatherCode,
	}
}

func fromRecord(r *ports.WeatherRecord) DayWeather {
	return DayWeather{
		Date:          r.Date,
		TempMax:       r.TempMax,
		TempMin:       r.TempMin,
		Precipitation: r.Precipitation,
		WeatherCode:   r.WeatherCode,
	}
}

func (d DayWeather) toRecord(coords ports.Coordinates) *ports.WeatherRecord {
	return &ports.WeatherRecord{
		Date:          d.Date,
		Latitude:      RoundCoordinate(coords.Latitude),
		Longitude:     RoundCoordinate(coords.Longitude),
		TempMax:       d.TempMax,
		TempMin:       d.TempMin,
		Precipitation: d.Precipitation,
		WeatherCode:   d.WeatherCode,
		LastUpdated:   time.Now(),
	}
}

// daysAhead counts whole calendar days from today to target, rounding partial days up
func daysAhead(today, target time.Time) int {
	return int(math.Ceil(target.Sub(today).Hours() / 24))
}

func localDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
