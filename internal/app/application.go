package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/adapters/api"
	"weathertodo.app/internal/adapters/infrastructure"
	"weathertodo.app/internal/config"
	"weathertodo.app/internal/core/calendar"
	"weathertodo.app/internal/core/location"
	"weathertodo.app/internal/core/statistics"
	"weathertodo.app/internal/core/todo"
	"weathertodo.app/internal/core/weather"
	"weathertodo.app/internal/ports"
)

type Application struct {
	config *config.Config

	// Use Cases
	todoUseCase       *todo.UseCase
	statisticsUseCase *statistics.UseCase
	weatherUseCase    *weather.UseCase
	locationUseCase   *location.UseCase
	calendarUseCase   *calendar.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps      *DependencyContainer
	ports     *ports.ApplicationPorts
	stopWatch func()
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	deps, err := NewDependencyContainer(cfg)
	if err != nil {
		return nil, fmt.Errorf("create dependency container: %w", err)
	}

	app, err := NewApplicationWithDependencies(cfg, deps)
	if err != nil {
		_ = deps.Cleanup()
		return nil, err
	}
	return app, nil
}

// NewApplicationWithDependencies creates an application over an existing container
func NewApplicationWithDependencies(cfg *config.Config, deps *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   deps,
		ports:  deps.ApplicationPorts(),
	}

	if err := app.initializeUseCases(); err != nil {
		return nil, fmt.Errorf("initialize use cases: %w", err)
	}

	if err := app.initializeAdapters(); err != nil {
		return nil, fmt.Errorf("initialize adapters: %w", err)
	}

	return app, nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	statisticsUseCase, err := statistics.NewUseCase(statistics.UseCaseDependencies{
		Repository: a.ports.TodoRepository,
		ChangeFeed: a.ports.ChangeFeed,
		Config:     a.ports.ConfigProvider,
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create statistics use case: %w", err)
	}
	a.statisticsUseCase = statisticsUseCase

	// Local writes reach the statistics cache even when the change feed drops them
	todoUseCase, err := todo.NewUseCase(todo.UseCaseDependencies{
		Repository: a.ports.TodoRepository,
		ChangeFeed: a.ports.ChangeFeed,
		Listeners:  []ports.ChangeHandler{a.statisticsUseCase.HandleChange},
		Logger:     a.ports.Logger,
		Metrics:    a.ports.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create todo use case: %w", err)
	}
	a.todoUseCase = todoUseCase

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: a.ports.WeatherProvider,
		Cache:           a.ports.WeatherCache,
		Records:         a.ports.WeatherRecords,
		Config:          a.ports.ConfigProvider,
		Logger:          a.ports.Logger,
		Metrics:         a.ports.WeatherMetrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}
	a.weatherUseCase = weatherUseCase

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		Geocoding: a.ports.Geocoding,
		Store:     a.ports.KeyValueStore,
		Config:    a.ports.ConfigProvider,
		Logger:    a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create location use case: %w", err)
	}
	a.locationUseCase = locationUseCase

	calendarUseCase, err := calendar.NewUseCase(calendar.UseCaseDependencies{
		Todos:   a.statisticsUseCase,
		Weather: a.weatherUseCase,
		Logger:  a.ports.Logger,
	})
	if err != nil {
		return fmt.Errorf("create calendar use case: %w", err)
	}
	a.calendarUseCase = calendarUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		WeatherMetrics: a.ports.WeatherMetrics,
		Config:         a.ports.ConfigProvider,
		Feed:           a.deps.ChangeFeedStats(),
	})

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		Checkers:       a.deps.HealthCheckers(),
		ConfigProvider: a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		TodoUseCase:         a.todoUseCase,
		StatisticsUseCase:   a.statisticsUseCase,
		WeatherUseCase:      a.weatherUseCase,
		CalendarUseCase:     a.calendarUseCase,
		LocationUseCase:     a.locationUseCase,
		MetricsCollector:    metricsCollector,
		MetricsHandler:      a.deps.Metrics().Handler(),
		SystemHealthChecker: systemHealthChecker,
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// Start subscribes the statistics cache to the change feed and serves HTTP
// until the server is shut down
func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if err := a.StartWatching(ctx); err != nil {
		return err
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// StartWatching invalidates dashboard snapshots on todo changes
func (a *Application) StartWatching(ctx context.Context) error {
	if a.stopWatch != nil {
		return nil
	}

	stop, err := a.statisticsUseCase.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch todo changes: %w", err)
	}
	a.stopWatch = stop
	slog.Info("Statistics watching todo changes")
	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.stopWatch != nil {
		a.stopWatch()
		a.stopWatch = nil
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	if err := a.deps.Cleanup(); err != nil {
		slog.Warn("Error closing connections", "error", err)
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetTodoUseCase returns the todo use case for testing
func (a *Application) GetTodoUseCase() *todo.UseCase {
	return a.todoUseCase
}

// GetStatisticsUseCase returns the statistics use case for testing
func (a *Application) GetStatisticsUseCase() *statistics.UseCase {
	return a.statisticsUseCase
}
