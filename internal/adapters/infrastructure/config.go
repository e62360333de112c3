package infrastructure

import (
	"time"

	"weathertodo.app/internal/config"
	"weathertodo.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetWeatherConfig returns weather lookup configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		EnableCache:    c.config.Weather.EnableCache,
		CacheTTL:       time.Duration(c.config.Weather.CacheTTLMinutes) * time.Minute,
		ForecastDays:   c.config.Weather.ForecastDays,
		PersistRecords: c.config.Weather.PersistRecords,
	}
}

// GetGeocodingConfig returns city search configuration
func (c *ConfigProviderAdapter) GetGeocodingConfig() ports.GeocodingConfig {
	return ports.GeocodingConfig{
		ResultCount: c.config.Geocoding.ResultCount,
	}
}

// GetStatisticsConfig returns statistics query limits
func (c *ConfigProviderAdapter) GetStatisticsConfig() ports.StatisticsConfig {
	return ports.StatisticsConfig{
		DashboardLimit: c.config.Statistics.DashboardLimit,
		RangeLimit:     c.config.Statistics.RangeLimit,
		TrendDays:      c.config.Statistics.TrendDays,
		MaxTrendDays:   c.config.Statistics.MaxTrendDays,
		SnapshotMaxAge: time.Duration(c.config.Statistics.SnapshotMaxAgeSeconds) * time.Second,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetDatabaseConfig returns database configuration without credentials
func (c *ConfigProviderAdapter) GetDatabaseConfig() ports.DatabaseConfig {
	return ports.DatabaseConfig{
		Driver:     string(c.config.Database.Driver),
		Host:       c.config.Database.Host,
		Port:       c.config.Database.Port,
		Name:       c.config.Database.Name,
		SQLitePath: c.config.Database.SQLitePath,
	}
}

// GetCacheConfig returns cache configuration
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	return ports.CacheConfig{
		Type:      c.config.Cache.Type.String(),
		RedisAddr: c.config.Cache.Redis.Addr,
	}
}

// GetChangeFeedConfig returns change feed configuration
func (c *ConfigProviderAdapter) GetChangeFeedConfig() ports.ChangeFeedConfig {
	return ports.ChangeFeedConfig{
		Type:    c.config.ChangeFeed.Type.String(),
		Channel: c.config.ChangeFeed.Channel,
	}
}
