package api

import (
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/core/statistics"
	"weathertodo.app/pkg/errors"
)

// DateStatsResponse is the bucket of one calendar date
type DateStatsResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Due       int `json:"due"`
	Overdue   int `json:"overdue"`
}

// DashboardResponse represents the statistics snapshot of a user
type DashboardResponse struct {
	Total          int                          `json:"total"`
	Completed      int                          `json:"completed"`
	Pending        int                          `json:"pending"`
	Overdue        int                          `json:"overdue"`
	Today          int                          `json:"today"`
	ThisWeek       int                          `json:"this_week"`
	ThisMonth      int                          `json:"this_month"`
	CompletionRate float64                      `json:"completion_rate"`
	ByDate         map[string]DateStatsResponse `json:"by_date"`
	ByPriority     map[string]int               `json:"by_priority"`
	ByCategory     map[string]int               `json:"by_category"`
	ComputedAt     time.Time                    `json:"computed_at"`
}

// TrendPointResponse is one day of the completion trend
type TrendPointResponse struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

func newDateStatsResponses(byDate map[string]statistics.DateStats) map[string]DateStatsResponse {
	out := make(map[string]DateStatsResponse, len(byDate))
	for key, st := range byDate {
		out[key] = DateStatsResponse{Total: st.Total, Completed: st.Completed, Due: st.Due, Overdue: st.Overdue}
	}
	return out
}

// getDashboardStats handles GET /api/stats/dashboard requests
func (s *HTTPServerAdapter) getDashboardStats(c *gin.Context) {
	userID := c.Query("user_id")

	snap, err := s.statisticsUseCase.GetDashboardStats(c.Request.Context(), userID)
	if err != nil {
		slog.Error("Dashboard statistics error", "error", err, "user_id", userID)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, DashboardResponse{
		Total:          snap.Total,
		Completed:      snap.Completed,
		Pending:        snap.Pending,
		Overdue:        snap.Overdue,
		Today:          snap.Today,
		ThisWeek:       snap.ThisWeek,
		ThisMonth:      snap.ThisMonth,
		CompletionRate: snap.CompletionRate,
		ByDate:         newDateStatsResponses(snap.ByDate),
		ByPriority:     snap.ByPriority,
		ByCategory:     snap.ByCategory,
		ComputedAt:     snap.ComputedAt,
	})
}

// getMonthStats handles GET /api/stats/month requests
func (s *HTTPServerAdapter) getMonthStats(c *gin.Context) {
	year, month, err := queryYearMonth(c, time.Now())
	if err != nil {
		s.handleError(c, err)
		return
	}

	byDate, err := s.statisticsUseCase.GetTodosForMonth(c.Request.Context(), c.Query("user_id"), year, month)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": int(month), "by_date": newDateStatsResponses(byDate)})
}

// getRangeStats handles GET /api/stats/range requests
func (s *HTTPServerAdapter) getRangeStats(c *gin.Context) {
	start, err := queryDate(c, "start")
	if err != nil {
		s.handleError(c, err)
		return
	}
	end, err := queryDate(c, "end")
	if err != nil {
		s.handleError(c, err)
		return
	}

	byDate, err := s.statisticsUseCase.GetTodosByDateRange(c.Request.Context(), c.Query("user_id"), start, end)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"by_date": newDateStatsResponses(byDate)})
}

// getCompletionTrend handles GET /api/stats/trend requests
func (s *HTTPServerAdapter) getCompletionTrend(c *gin.Context) {
	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			s.handleError(c, errors.NewValidationError("days must be a positive integer"))
			return
		}
		days = parsed
	}

	points, err := s.statisticsUseCase.GetCompletionTrend(c.Request.Context(), c.Query("user_id"), days)
	if err != nil {
		s.handleError(c, err)
		return
	}

	trend := make([]TrendPointResponse, 0, len(points))
	for _, p := range points {
		trend = append(trend, TrendPointResponse{Date: p.Date, Completed: p.Completed, Total: p.Total})
	}
	c.JSON(http.StatusOK, gin.H{"trend": trend})
}

// getOverdueCount handles GET /api/stats/overdue requests
func (s *HTTPServerAdapter) getOverdueCount(c *gin.Context) {
	count, err := s.statisticsUseCase.GetOverdueCount(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"overdue": count})
}

// getTodayTodos handles GET /api/stats/today requests
func (s *HTTPServerAdapter) getTodayTodos(c *gin.Context) {
	todos, err := s.statisticsUseCase.GetTodayTodos(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"todos": newTodoResponses(todos)})
}
