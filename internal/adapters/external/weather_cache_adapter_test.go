package external

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

// Interface compliance verification
var _ ports.WeatherCache = (*WeatherCacheAdapter)(nil)

func TestWeatherCacheAdapter_RoundTripThroughProviders(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	redisCache, err := NewRedisCacheProviderAdapter(redisConfig, nil)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	providers := map[string]ports.CacheProvider{
		"MemoryCache": NewMemoryCacheProvider(nil),
		"RedisCache":  redisCache,
	}

	days := []ports.DailyWeatherData{
		{Date: "2025-04-10", TempMax: 33.4, TempMin: 24.9, Precipitation: 10, WeatherCode: 1},
		{Date: "2025-04-11", TempMax: 34.1, TempMin: 25.2, WeatherCode: 3},
	}

	for name, provider := range providers {
		t.Run(name, func(t *testing.T) {
			cache := NewWeatherCacheAdapter(provider)
			ctx := context.Background()

			_, err := cache.Get(ctx, "forecast:23.8103:90.4125:16")
			assert.True(t, errors.IsNotFoundError(err))

			require.NoError(t, cache.Set(ctx, "forecast:23.8103:90.4125:16", days, time.Minute))

			cached, err := cache.Get(ctx, "forecast:23.8103:90.4125:16")
			require.NoError(t, err)
			assert.Equal(t, days, cached)

			stats := cache.GetStats()
			assert.Equal(t, int64(1), stats.Hits)
			assert.Equal(t, int64(1), stats.Misses)
		})
	}
}

func TestWeatherCacheAdapter_ErrorHandling(t *testing.T) {
	ctx := context.Background()

	t.Run("NilDays", func(t *testing.T) {
		cache := NewWeatherCacheAdapter(NewMemoryCacheProvider(nil))

		err := cache.Set(ctx, "k", nil, time.Minute)

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("CorruptedEntry", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		provider.EXPECT().Get(mock.Anything, "k").Return([]byte("not-json"), nil)

		_, err := NewWeatherCacheAdapter(provider).Get(ctx, "k")

		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, errors.ErrorTypeCache, appErr.Type)
	})

	t.Run("ProviderWithoutStats", func(t *testing.T) {
		stats := NewWeatherCacheAdapter(mocks.NewCacheProvider(t)).GetStats()

		assert.Zero(t, stats.TotalOps)
	})
}

func TestWeatherMetricsAdapter(t *testing.T) {
	cache := NewWeatherCacheAdapter(NewMemoryCacheProvider(nil))
	chain := NewWeatherProviderChain(nil, &testWeatherProvider{name: "open-meteo"})

	metrics := NewWeatherMetricsAdapter(cache, chain, true)

	info := metrics.GetProviderInfo()
	assert.Equal(t, true, info["cache_enabled"])
	assert.Equal(t, []string{"open-meteo"}, info["provider_order"])

	stats, err := metrics.GetCacheMetrics()
	require.NoError(t, err)
	assert.Zero(t, stats.TotalOps)
}
