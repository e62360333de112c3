package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/ports"
)

// DayCellResponse is one day of the calendar grid
type DayCellResponse struct {
	Date    string              `json:"date"`
	Day     int                 `json:"day"`
	IsToday bool                `json:"is_today"`
	Todos   DateStatsResponse   `json:"todos"`
	Weather *DayWeatherResponse `json:"weather,omitempty"`
}

// CalendarResponse is a month grid with todos and weather merged per date
type CalendarResponse struct {
	Year          int               `json:"year"`
	Month         int               `json:"month"`
	LeadingBlanks int               `json:"leading_blanks"`
	Days          []DayCellResponse `json:"days"`
	Alert         string            `json:"alert,omitempty"`
}

// getCalendar handles GET /api/calendar requests
func (s *HTTPServerAdapter) getCalendar(c *gin.Context) {
	year, month, err := queryYearMonth(c, time.Now())
	if err != nil {
		s.handleError(c, err)
		return
	}

	var coordsPtr *ports.Coordinates
	coords, ok, err := queryCoordinates(c)
	if err != nil {
		s.handleError(c, err)
		return
	}
	if ok {
		coordsPtr = &coords
	}

	grid, err := s.calendarUseCase.BuildMonth(c.Request.Context(), c.Query("user_id"), year, month, coordsPtr)
	if err != nil {
		s.handleError(c, err)
		return
	}

	resp := CalendarResponse{
		Year:          grid.Year,
		Month:         int(grid.Month),
		LeadingBlanks: grid.LeadingBlanks,
		Days:          make([]DayCellResponse, 0, len(grid.Days)),
		Alert:         grid.Alert,
	}
	for _, cell := range grid.Days {
		day := DayCellResponse{
			Date:    cell.Date,
			Day:     cell.Day,
			IsToday: cell.IsToday,
			Todos: DateStatsResponse{
				Total:     cell.Todos.Total,
				Completed: cell.Todos.Completed,
				Due:       cell.Todos.Due,
				Overdue:   cell.Todos.Overdue,
			},
		}
		if cell.Weather != nil {
			w := newDayWeatherResponse(*cell.Weather)
			day.Weather = &w
		}
		resp.Days = append(resp.Days, day)
	}
	c.JSON(http.StatusOK, resp)
}
