package external

import (
	"context"
	"encoding/json"
	"time"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// WeatherCacheAdapter bridges generic CacheProvider to the forecast-window WeatherCache
type WeatherCacheAdapter struct {
	cacheProvider ports.CacheProvider
}

// NewWeatherCacheAdapter creates a weather cache adapter using generic cache provider
func NewWeatherCacheAdapter(cacheProvider ports.CacheProvider) *WeatherCacheAdapter {
	return &WeatherCacheAdapter{
		cacheProvider: cacheProvider,
	}
}

// Get retrieves a cached forecast window
func (w *WeatherCacheAdapter) Get(ctx context.Context, key string) ([]ports.DailyWeatherData, error) {
	data, err := w.cacheProvider.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var days []ports.DailyWeatherData
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, errors.NewCacheError("failed to deserialize weather data", err)
	}

	return days, nil
}

// Set stores a forecast window
func (w *WeatherCacheAdapter) Set(ctx context.Context, key string, days []ports.DailyWeatherData, ttl time.Duration) error {
	if days == nil {
		return errors.NewValidationError("weather data cannot be nil")
	}

	data, err := json.Marshal(days)
	if err != nil {
		return errors.NewCacheError("failed to serialize weather data", err)
	}

	return w.cacheProvider.Set(ctx, key, data, ttl)
}

// GetStats reports the underlying provider statistics when it keeps any
func (w *WeatherCacheAdapter) GetStats() ports.CacheStats {
	if withStats, ok := w.cacheProvider.(ports.CacheMetrics); ok {
		return withStats.GetStats()
	}
	return ports.CacheStats{LastUpdated: time.Now()}
}
