package infrastructure

import (
	"context"

	"weathertodo.app/internal/ports"
)

// ChangeFeedStats is implemented by feeds that can count their subscribers
type ChangeFeedStats interface {
	Subscribers() int
}

// MetricsCollectorAdapter builds the JSON metrics document of the HTTP adapter
type MetricsCollectorAdapter struct {
	weatherMetrics ports.WeatherMetrics
	config         ports.ConfigProvider
	feed           ChangeFeedStats
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	WeatherMetrics ports.WeatherMetrics
	Config         ports.ConfigProvider
	// Feed is optional
	Feed ChangeFeedStats
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	return &MetricsCollectorAdapter{
		weatherMetrics: config.WeatherMetrics,
		config:         config.Config,
		feed:           config.Feed,
	}
}

// GetMetrics returns weather provider, cache and change feed figures
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := map[string]interface{}{}

	if m.weatherMetrics != nil {
		metrics["weather"] = m.weatherMetrics.GetProviderInfo()

		if cacheStats, err := m.weatherMetrics.GetCacheMetrics(); err == nil {
			metrics["cache"] = map[string]interface{}{
				"hits":      cacheStats.Hits,
				"misses":    cacheStats.Misses,
				"total_ops": cacheStats.TotalOps,
				"hit_ratio": cacheStats.HitRatio,
				"updated":   cacheStats.LastUpdated,
			}
		}
	}

	if m.config != nil {
		stats := m.config.GetStatisticsConfig()
		metrics["statistics"] = map[string]interface{}{
			"dashboard_limit": stats.DashboardLimit,
			"range_limit":     stats.RangeLimit,
			"trend_days":      stats.TrendDays,
		}
	}

	if m.feed != nil {
		metrics["change_feed"] = map[string]interface{}{
			"subscribers": m.feed.Subscribers(),
		}
	}

	return metrics, nil
}
