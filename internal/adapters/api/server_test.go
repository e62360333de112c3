package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/core/calendar"
	"weathertodo.app/internal/core/location"
	"weathertodo.app/internal/core/statistics"
	"weathertodo.app/internal/core/todo"
	"weathertodo.app/internal/core/weather"
	"weathertodo.app/internal/mocks"
	"weathertodo.app/internal/ports"
)

var fixedNow = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

type stubMetricsCollector struct {
	metrics map[string]interface{}
	err     error
}

func (s *stubMetricsCollector) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	return s.metrics, s.err
}

type stubHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (s *stubHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

// testServer is a fully wired server over real use cases and mocked ports
type testServer struct {
	router    *gin.Engine
	repo      *mocks.TodoRepository
	feed      *mocks.TodoChangeFeed
	provider  *mocks.WeatherProvider
	records   *mocks.WeatherRecordRepository
	geocoding *mocks.GeocodingProvider
	store     *mocks.KeyValueStore
	health    *stubHealthChecker
}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	args := []interface{}{mock.Anything}
	for i := 0; i < 8; i++ {
		mockLogger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Info(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Error(args[0], args[1:]...).Maybe()
		args = append(args, mock.Anything)
	}
	return mockLogger
}

func setupTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	ts := &testServer{
		repo:      mocks.NewTodoRepository(t),
		feed:      mocks.NewTodoChangeFeed(t),
		provider:  mocks.NewWeatherProvider(t),
		records:   mocks.NewWeatherRecordRepository(t),
		geocoding: mocks.NewGeocodingProvider(t),
		store:     mocks.NewKeyValueStore(t),
		health: &stubHealthChecker{results: map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
		}},
	}
	ts.feed.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(ports.WeatherConfig{ForecastDays: 16}).Maybe()
	config.EXPECT().GetGeocodingConfig().Return(ports.GeocodingConfig{ResultCount: 10}).Maybe()
	config.EXPECT().GetStatisticsConfig().Return(ports.StatisticsConfig{
		DashboardLimit: 10000,
		RangeLimit:     1000,
		TrendDays:      7,
		MaxTrendDays:   365,
	}).Maybe()

	metrics := mocks.NewMetricsRecorder(t)
	metrics.EXPECT().RecordChangeEvent(mock.Anything).Return().Maybe()
	metrics.EXPECT().RecordStatisticsComputation(mock.Anything).Return().Maybe()

	logger := setupLoggerMock(t)
	now := func() time.Time { return fixedNow }

	todoUseCase, err := todo.NewUseCase(todo.UseCaseDependencies{
		Repository: ts.repo,
		ChangeFeed: ts.feed,
		Logger:     logger,
		Metrics:    metrics,
	})
	require.NoError(t, err)

	statsUseCase, err := statistics.NewUseCase(statistics.UseCaseDependencies{
		Repository: ts.repo,
		ChangeFeed: ts.feed,
		Config:     config,
		Logger:     logger,
		Metrics:    metrics,
		Now:        now,
	})
	require.NoError(t, err)

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: ts.provider,
		Cache:           mocks.NewWeatherCache(t),
		Records:         ts.records,
		Config:          config,
		Logger:          logger,
		Metrics:         mocks.NewWeatherMetrics(t),
		Now:             now,
	})
	require.NoError(t, err)

	calendarUseCase, err := calendar.NewUseCase(calendar.UseCaseDependencies{
		Todos:   statsUseCase,
		Weather: weatherUseCase,
		Logger:  logger,
		Now:     now,
	})
	require.NoError(t, err)

	locationUseCase, err := location.NewUseCase(location.UseCaseDependencies{
		Geocoding: ts.geocoding,
		Store:     ts.store,
		Config:    config,
		Logger:    logger,
		Now:       now,
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:            ServerConfig{Port: 8080},
		TodoUseCase:       todoUseCase,
		StatisticsUseCase: statsUseCase,
		WeatherUseCase:    weatherUseCase,
		CalendarUseCase:   calendarUseCase,
		LocationUseCase:   locationUseCase,
		MetricsCollector: &stubMetricsCollector{metrics: map[string]interface{}{
			"statistics": map[string]interface{}{"cached_snapshots": 0},
		}},
		MetricsHandler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "weathertodo_change_events_total 0\n")
		}),
		SystemHealthChecker: ts.health,
	})
	require.NoError(t, err)

	ts.router = server.GetRouter()
	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func TestNewHTTPServerAdapter_MissingDependencies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	_, err := NewHTTPServerAdapter(ServerOptions{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "todo use case is required")
}

func TestServerOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(o *ServerOptions)
		message string
	}{
		{"NoStatistics", func(o *ServerOptions) { o.StatisticsUseCase = nil }, "statistics use case is required"},
		{"NoWeather", func(o *ServerOptions) { o.WeatherUseCase = nil }, "weather use case is required"},
		{"NoCalendar", func(o *ServerOptions) { o.CalendarUseCase = nil }, "calendar use case is required"},
		{"NoLocation", func(o *ServerOptions) { o.LocationUseCase = nil }, "location use case is required"},
		{"NoMetricsCollector", func(o *ServerOptions) { o.MetricsCollector = nil }, "metrics collector is required"},
		{"NoMetricsHandler", func(o *ServerOptions) { o.MetricsHandler = nil }, "metrics handler is required"},
		{"NoHealthChecker", func(o *ServerOptions) { o.SystemHealthChecker = nil }, "system health checker is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := ServerOptions{
				TodoUseCase:         &todo.UseCase{},
				StatisticsUseCase:   &statistics.UseCase{},
				WeatherUseCase:      &weather.UseCase{},
				CalendarUseCase:     &calendar.UseCase{},
				LocationUseCase:     &location.UseCase{},
				MetricsCollector:    &stubMetricsCollector{},
				MetricsHandler:      http.NotFoundHandler(),
				SystemHealthChecker: &stubHealthChecker{},
			}
			require.NoError(t, opts.Validate())

			tt.mutate(&opts)
			err := opts.Validate()

			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestServer_Health(t *testing.T) {
	t.Run("Healthy", func(t *testing.T) {
		ts := setupTestServer(t)

		w := ts.do(http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]interface{}
		decodeBody(t, w, &body)
		assert.Equal(t, "healthy", body["status"])
		assert.Contains(t, body["components"], "database")
	})

	t.Run("OneComponentDown", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.health.results["cache"] = ports.HealthStatus{Component: "cache", Status: "unhealthy", Error: "connection refused"}

		w := ts.do(http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var body map[string]interface{}
		decodeBody(t, w, &body)
		assert.Equal(t, "unhealthy", body["status"])
	})
}

func TestServer_Metrics(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodGet, "/api/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	decodeBody(t, w, &body)
	assert.Contains(t, body, "statistics")

	w = ts.do(http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "weathertodo_change_events_total")
}
