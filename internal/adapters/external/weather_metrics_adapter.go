package external

import (
	"time"

	"weathertodo.app/internal/ports"
)

// ProviderInfoSource describes a weather provider setup
type ProviderInfoSource interface {
	GetProviderInfo() map[string]interface{}
}

// WeatherMetricsAdapter implements WeatherMetrics port
type WeatherMetricsAdapter struct {
	cache        ports.WeatherCache
	providers    ProviderInfoSource
	cacheEnabled bool
}

// NewWeatherMetricsAdapter creates a new weather metrics adapter
func NewWeatherMetricsAdapter(cache ports.WeatherCache, providers ProviderInfoSource, cacheEnabled bool) ports.WeatherMetrics {
	return &WeatherMetricsAdapter{
		cache:        cache,
		providers:    providers,
		cacheEnabled: cacheEnabled,
	}
}

// GetProviderInfo returns provider information
func (m *WeatherMetricsAdapter) GetProviderInfo() map[string]interface{} {
	result := map[string]interface{}{
		"status":        "active",
		"cache_enabled": m.cacheEnabled,
	}
	for key, value := range m.providers.GetProviderInfo() {
		result[key] = value
	}
	return result
}

// GetCacheMetrics returns cache performance metrics
func (m *WeatherMetricsAdapter) GetCacheMetrics() (ports.CacheStats, error) {
	if cacheWithStats, ok := m.cache.(interface{ GetStats() ports.CacheStats }); ok {
		return cacheWithStats.GetStats(), nil
	}

	return ports.CacheStats{
		LastUpdated: time.Now(),
	}, nil
}
