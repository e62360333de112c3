package weather

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/mocks"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

var (
	dhaka    = ports.Coordinates{Latitude: 23.8103, Longitude: 90.4125}
	fixedNow = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
)

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

type testDeps struct {
	provider *mocks.WeatherProvider
	cache    *mocks.WeatherCache
	records  *mocks.WeatherRecordRepository
	metrics  *mocks.WeatherMetrics
}

func newTestUseCase(t *testing.T, cfg ports.WeatherConfig) (*UseCase, testDeps) {
	deps := testDeps{
		provider: mocks.NewWeatherProvider(t),
		cache:    mocks.NewWeatherCache(t),
		records:  mocks.NewWeatherRecordRepository(t),
		metrics:  mocks.NewWeatherMetrics(t),
	}

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetWeatherConfig().Return(cfg).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		WeatherProvider: deps.provider,
		Cache:           deps.cache,
		Records:         deps.records,
		Config:          config,
		Logger:          setupLoggerMock(t),
		Metrics:         deps.metrics,
		Now:             func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return uc, deps
}

func forecastFixture() []ports.DailyWeatherData {
	days := make([]ports.DailyWeatherData, 0, 16)
	for i := 0; i < 16; i++ {
		days = append(days, ports.DailyWeatherData{
			Date:          fixedNow.AddDate(0, 0, i).Format("2006-01-02"),
			TempMax:       20.4 + float64(i),
			TempMin:       10.5,
			Precipitation: float64(i * 5),
			WeatherCode:   i,
		})
	}
	return days
}

func TestUseCase_GetWeatherForMonth_CacheMissThenProvider(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{EnableCache: true, CacheTTL: 30 * time.Minute, ForecastDays: 16})

	deps.cache.EXPECT().Get(mock.Anything, "forecast:23.8103:90.4125:16").
		Return(nil, errors.NewNotFoundError("cache miss"))
	deps.provider.EXPECT().GetForecast(mock.Anything, dhaka, 16).Return(forecastFixture(), nil)
	deps.cache.EXPECT().Set(mock.Anything, "forecast:23.8103:90.4125:16", forecastFixture(), 30*time.Minute).Return(nil)

	weatherMap, err := uc.GetWeatherForMonth(context.Background(), dhaka)

	require.NoError(t, err)
	assert.Len(t, weatherMap, 16)
	first := weatherMap["2025-04-10"]
	assert.Equal(t, 20.0, first.TempMax)
	assert.Equal(t, 11.0, first.TempMin)
	assert.Equal(t, 0, first.WeatherCode)
	assert.Equal(t, 75.0, weatherMap["2025-04-25"].Precipitation)
}

func TestUseCase_GetWeatherForMonth_CacheHit(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{EnableCache: true, ForecastDays: 16})

	deps.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(forecastFixture()[:3], nil)

	weatherMap, err := uc.GetWeatherForMonth(context.Background(), dhaka)

	require.NoError(t, err)
	assert.Len(t, weatherMap, 3)
}

func TestUseCase_GetWeatherForMonth_FailureYieldsEmptyMap(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{EnableCache: false, ForecastDays: 16})

	deps.provider.EXPECT().GetForecast(mock.Anything, dhaka, 16).
		Return(nil, errors.NewExternalAPIError("Open-Meteo returned status 502", nil)).Once()

	weatherMap, err := uc.GetWeatherForMonth(context.Background(), dhaka)

	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
	assert.NotNil(t, weatherMap)
	assert.Empty(t, weatherMap)
}

func TestUseCase_GetWeatherForMonth_InvalidCoordinates(t *testing.T) {
	uc, _ := newTestUseCase(t, ports.WeatherConfig{})

	weatherMap, err := uc.GetWeatherForMonth(context.Background(), ports.Coordinates{Latitude: 100})

	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, weatherMap)
}

func TestUseCase_GetWeatherForDate_PastUsesArchive(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{ForecastDays: 16})

	deps.provider.EXPECT().GetArchive(mock.Anything, dhaka, "2025-03-01").Return([]ports.DailyWeatherData{
		{Date: "2025-03-01", TempMax: 29.6, TempMin: 17.2, WeatherCode: 2},
	}, nil)

	day, err := uc.GetWeatherForDate(context.Background(), dhaka, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, 30.0, day.TempMax)
	assert.Equal(t, 17.0, day.TempMin)
	assert.Equal(t, 0.0, day.Precipitation)
}

func TestUseCase_GetWeatherForDate_TodayUsesArchive(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{ForecastDays: 16})

	deps.provider.EXPECT().GetArchive(mock.Anything, dhaka, "2025-04-10").Return([]ports.DailyWeatherData{}, nil)

	day, err := uc.GetWeatherForDate(context.Background(), dhaka, fixedNow.Add(5*time.Hour))

	require.NoError(t, err)
	assert.Nil(t, day)
}

func TestUseCase_GetWeatherForDate_FutureUsesForecastPosition(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{EnableCache: false, ForecastDays: 16})

	deps.provider.EXPECT().GetForecast(mock.Anything, dhaka, 16).Return(forecastFixture(), nil)

	day, err := uc.GetWeatherForDate(context.Background(), dhaka, fixedNow.AddDate(0, 0, 3))

	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, "2025-04-13", day.Date)
	assert.Equal(t, 3, day.WeatherCode)
}

func TestUseCase_GetWeatherForDate_BeyondHorizonReturnsNothing(t *testing.T) {
	uc, _ := newTestUseCase(t, ports.WeatherConfig{ForecastDays: 16})

	day, err := uc.GetWeatherForDate(context.Background(), dhaka, fixedNow.AddDate(0, 0, 20))

	assert.NoError(t, err)
	assert.Nil(t, day)
}

func TestUseCase_GetWeatherForDate_ProviderError(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{EnableCache: false, ForecastDays: 16})

	deps.provider.EXPECT().GetForecast(mock.Anything, dhaka, 16).Return(nil, assert.AnError)

	day, err := uc.GetWeatherForDate(context.Background(), dhaka, fixedNow.AddDate(0, 0, 1))

	assert.Nil(t, day)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestUseCase_PersistsRecordsWhenEnabled(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{EnableCache: false, ForecastDays: 2, PersistRecords: true})

	deps.provider.EXPECT().GetForecast(mock.Anything, dhaka, 2).Return(forecastFixture()[:2], nil)
	deps.records.EXPECT().Save(mock.Anything, mock.MatchedBy(func(r *ports.WeatherRecord) bool {
		return r.Latitude == 23.8103 && r.Longitude == 90.4125
	})).Return(true, nil).Twice()

	_, err := uc.GetWeatherForMonth(context.Background(), dhaka)

	require.NoError(t, err)
}

func TestUseCase_GetHistory(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{})

	deps.records.EXPECT().FindRange(mock.Anything, "2025-04-01", "2025-04-03", dhaka).Return([]*ports.WeatherRecord{
		{Date: "2025-04-02", TempMax: 30, WeatherCode: 3},
		{Date: "2025-04-01", TempMax: 28, WeatherCode: 0},
	}, nil)

	days, err := uc.GetHistory(context.Background(), dhaka, "2025-04-01", "2025-04-03")

	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "2025-04-01", days[0].Date)
	assert.Equal(t, "2025-04-02", days[1].Date)
}

func TestUseCase_GetHistory_InvalidRange(t *testing.T) {
	uc, _ := newTestUseCase(t, ports.WeatherConfig{})

	_, err := uc.GetHistory(context.Background(), dhaka, "2025-04-03", "2025-04-01")

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCase_GetStoredDay_NotFoundIsNil(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{})

	deps.records.EXPECT().FindByDate(mock.Anything, "2025-04-01", dhaka).
		Return(nil, errors.NewNotFoundError("weather record not found"))

	day, err := uc.GetStoredDay(context.Background(), dhaka, "2025-04-01")

	assert.NoError(t, err)
	assert.Nil(t, day)
}

func TestUseCase_GetCacheMetrics(t *testing.T) {
	uc, deps := newTestUseCase(t, ports.WeatherConfig{})

	deps.metrics.EXPECT().GetCacheMetrics().Return(ports.CacheStats{Hits: 3, Misses: 1, TotalOps: 4, HitRatio: 0.75}, nil)

	stats, err := uc.GetCacheMetrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Hits)
}

func TestUseCase_Constructor_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*UseCaseDependencies)
		errMsg string
	}{
		{"MissingProvider", func(d *UseCaseDependencies) { d.WeatherProvider = nil }, "weather provider is required"},
		{"MissingCache", func(d *UseCaseDependencies) { d.Cache = nil }, "cache is required"},
		{"MissingRecords", func(d *UseCaseDependencies) { d.Records = nil }, "weather record repository is required"},
		{"MissingConfig", func(d *UseCaseDependencies) { d.Config = nil }, "config is required"},
		{"MissingLogger", func(d *UseCaseDependencies) { d.Logger = nil }, "logger is required"},
		{"MissingMetrics", func(d *UseCaseDependencies) { d.Metrics = nil }, "metrics is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := UseCaseDependencies{
				WeatherProvider: mocks.NewWeatherProvider(t),
				Cache:           mocks.NewWeatherCache(t),
				Records:         mocks.NewWeatherRecordRepository(t),
				Config:          mocks.NewConfigProvider(t),
				Logger:          mocks.NewLogger(t),
				Metrics:         mocks.NewWeatherMetrics(t),
			}
			tt.mutate(&deps)

			uc, err := NewUseCase(deps)

			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
