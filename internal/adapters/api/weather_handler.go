package api

import (
	"net/http"
	"strconv"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/core/calendar"
	"weathertodo.app/internal/core/weather"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

// DayWeatherResponse represents the weather of one day
type DayWeatherResponse struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
	Emoji         string  `json:"emoji"`
	Description   string  `json:"description"`
}

// ConditionResponse is the display form of a weather code
type ConditionResponse struct {
	Code        int    `json:"code"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// WeatherMonthResponse holds the forecast keyed by date. Alert is set when the
// forecast could not be fetched.
type WeatherMonthResponse struct {
	Days  map[string]DayWeatherResponse `json:"days"`
	Alert string                        `json:"alert,omitempty"`
}

func newDayWeatherResponse(d weather.DayWeather) DayWeatherResponse {
	cond := d.Condition()
	return DayWeatherResponse{
		Date:          d.Date,
		TempMax:       d.TempMax,
		TempMin:       d.TempMin,
		Precipitation: d.Precipitation,
		WeatherCode:   d.WeatherCode,
		Emoji:         cond.Emoji,
		Description:   cond.Description,
	}
}

// getWeatherMonth handles GET /api/weather/month requests
func (s *HTTPServerAdapter) getWeatherMonth(c *gin.Context) {
	coords, err := requireCoordinates(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	days, err := s.weatherUseCase.GetWeatherForMonth(c.Request.Context(), coords)
	resp := WeatherMonthResponse{Days: make(map[string]DayWeatherResponse, len(days))}
	if err != nil {
		if !errors.IsExternalAPIError(err) {
			s.handleError(c, err)
			return
		}
		slog.Warn("Forecast unavailable", "error", err, "lat", coords.Latitude, "lon", coords.Longitude)
		resp.Alert = calendar.WeatherAlert
	}

	for key, day := range days {
		resp.Days[key] = newDayWeatherResponse(day)
	}
	c.JSON(http.StatusOK, resp)
}

// getWeatherDay handles GET /api/weather/day requests
func (s *HTTPServerAdapter) getWeatherDay(c *gin.Context) {
	coords, err := requireCoordinates(c)
	if err != nil {
		s.handleError(c, err)
		return
	}
	date, err := queryDate(c, "date")
	if err != nil {
		s.handleError(c, err)
		return
	}

	day, err := s.weatherUseCase.GetWeatherForDate(c.Request.Context(), coords, date)
	if err != nil {
		slog.Error("Weather use case error", "error", err, "date", date.Format(validation.DateLayout))
		s.handleError(c, err)
		return
	}

	if day == nil {
		c.JSON(http.StatusOK, gin.H{"date": date.Format(validation.DateLayout), "weather": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": day.Date, "weather": newDayWeatherResponse(*day)})
}

// getWeatherHistory handles GET /api/weather/history requests
func (s *HTTPServerAdapter) getWeatherHistory(c *gin.Context) {
	coords, err := requireCoordinates(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	days, err := s.weatherUseCase.GetHistory(c.Request.Context(), coords, c.Query("start"), c.Query("end"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	history := make([]DayWeatherResponse, 0, len(days))
	for _, d := range days {
		history = append(history, newDayWeatherResponse(d))
	}
	c.JSON(http.StatusOK, gin.H{"days": history})
}

// getWeatherCondition handles GET /api/weather/condition/:code requests
func (s *HTTPServerAdapter) getWeatherCondition(c *gin.Context) {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		s.handleError(c, errors.NewValidationError("code must be an integer"))
		return
	}

	cond := weather.ConditionFor(code)
	c.JSON(http.StatusOK, ConditionResponse{Code: cond.Code, Emoji: cond.Emoji, Description: cond.Description})
}
