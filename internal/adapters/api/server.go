// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/core/calendar"
	"weathertodo.app/internal/core/location"
	"weathertodo.app/internal/core/statistics"
	"weathertodo.app/internal/core/todo"
	"weathertodo.app/internal/core/weather"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router              *gin.Engine
	config              ServerConfig
	todoUseCase         TodoUseCase
	statisticsUseCase   StatisticsUseCase
	weatherUseCase      WeatherUseCase
	calendarUseCase     CalendarUseCase
	locationUseCase     LocationUseCase
	metricsCollector    MetricsCollector
	metricsHandler      http.Handler
	systemHealthChecker ports.SystemHealthChecker
}

// Use case interfaces that the HTTP adapter depends on
type TodoUseCase interface {
	Create(ctx context.Context, userID string, params todo.CreateParams) (*todo.Todo, error)
	Update(ctx context.Context, id string, params todo.UpdateParams) (*todo.Todo, error)
	Get(ctx context.Context, id string) (*todo.Todo, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, params todo.ListParams) ([]*todo.Todo, int64, error)
	ListByDate(ctx context.Context, userID string, date time.Time) ([]*todo.Todo, error)
	ToggleStatus(ctx context.Context, view *todo.ListView, id string) (*todo.Todo, error)
}

type StatisticsUseCase interface {
	GetDashboardStats(ctx context.Context, userID string) (statistics.Snapshot, error)
	GetTodosByDateRange(ctx context.Context, userID string, start, end time.Time) (map[string]statistics.DateStats, error)
	GetTodosForMonth(ctx context.Context, userID string, year int, month time.Month) (map[string]statistics.DateStats, error)
	GetCompletionTrend(ctx context.Context, userID string, days int) ([]statistics.TrendPoint, error)
	GetOverdueCount(ctx context.Context, userID string) (int64, error)
	GetTodayTodos(ctx context.Context, userID string) ([]*todo.Todo, error)
}

type WeatherUseCase interface {
	GetWeatherForDate(ctx context.Context, coords ports.Coordinates, date time.Time) (*weather.DayWeather, error)
	GetWeatherForMonth(ctx context.Context, coords ports.Coordinates) (weather.WeatherMap, error)
	GetHistory(ctx context.Context, coords ports.Coordinates, startDate, endDate string) ([]weather.DayWeather, error)
}

type CalendarUseCase interface {
	BuildMonth(ctx context.Context, userID string, year int, month time.Month, coords *ports.Coordinates) (*calendar.Month, error)
}

type LocationUseCase interface {
	Resolve(ctx context.Context, userID string, locator ports.DeviceLocator) (*location.Resolution, error)
	UseCurrentLocation(ctx context.Context, userID string, locator ports.DeviceLocator) (*location.ResolvedLocation, error)
	SelectCity(ctx context.Context, userID string, city location.City) (*location.ResolvedLocation, error)
	GetCachedLocation(ctx context.Context, userID string) (*location.ResolvedLocation, error)
	ClearLocation(ctx context.Context, userID string) error
	SearchCities(ctx context.Context, query string) ([]location.City, error)
}

type MetricsCollector interface {
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config              ServerConfig
	TodoUseCase         TodoUseCase
	StatisticsUseCase   StatisticsUseCase
	WeatherUseCase      WeatherUseCase
	CalendarUseCase     CalendarUseCase
	LocationUseCase     LocationUseCase
	MetricsCollector    MetricsCollector
	MetricsHandler      http.Handler
	SystemHealthChecker ports.SystemHealthChecker
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server options: %w", err)
	}
	if err := RegisterValidators(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	server := &HTTPServerAdapter{
		router:              router,
		config:              opts.Config,
		todoUseCase:         opts.TodoUseCase,
		statisticsUseCase:   opts.StatisticsUseCase,
		weatherUseCase:      opts.WeatherUseCase,
		calendarUseCase:     opts.CalendarUseCase,
		locationUseCase:     opts.LocationUseCase,
		metricsCollector:    opts.MetricsCollector,
		metricsHandler:      opts.MetricsHandler,
		systemHealthChecker: opts.SystemHealthChecker,
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.TodoUseCase == nil {
		return errors.NewValidationError("todo use case is required")
	}
	if opts.StatisticsUseCase == nil {
		return errors.NewValidationError("statistics use case is required")
	}
	if opts.WeatherUseCase == nil {
		return errors.NewValidationError("weather use case is required")
	}
	if opts.CalendarUseCase == nil {
		return errors.NewValidationError("calendar use case is required")
	}
	if opts.LocationUseCase == nil {
		return errors.NewValidationError("location use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.MetricsHandler == nil {
		return errors.NewValidationError("metrics handler is required")
	}
	if opts.SystemHealthChecker == nil {
		return errors.NewValidationError("system health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes
func (s *HTTPServerAdapter) setupRoutes() {
	api := s.router.Group("/api")
	{
		todos := api.Group("/todos")
		todos.POST("", s.createTodo)
		todos.GET("", s.listTodos)
		todos.POST("/toggle", s.toggleTodo)
		todos.GET("/:id", s.getTodo)
		todos.PUT("/:id", s.updateTodo)
		todos.DELETE("/:id", s.deleteTodo)

		stats := api.Group("/stats")
		stats.GET("/dashboard", s.getDashboardStats)
		stats.GET("/month", s.getMonthStats)
		stats.GET("/range", s.getRangeStats)
		stats.GET("/trend", s.getCompletionTrend)
		stats.GET("/overdue", s.getOverdueCount)
		stats.GET("/today", s.getTodayTodos)

		weatherGroup := api.Group("/weather")
		weatherGroup.GET("/month", s.getWeatherMonth)
		weatherGroup.GET("/day", s.getWeatherDay)
		weatherGroup.GET("/history", s.getWeatherHistory)
		weatherGroup.GET("/condition/:code", s.getWeatherCondition)

		api.GET("/calendar", s.getCalendar)

		loc := api.Group("/location")
		loc.GET("", s.getCachedLocation)
		loc.DELETE("", s.clearLocation)
		loc.POST("/resolve", s.resolveLocation)
		loc.POST("/current", s.useCurrentLocation)
		loc.POST("/select", s.selectCity)
		loc.GET("/cities", s.filterCities)
		loc.GET("/search", s.searchCities)

		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(s.metricsHandler))
	s.router.GET("/health", s.getHealth)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
