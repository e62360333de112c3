package ports

import "time"

// WeatherConfig represents weather lookup configuration
type WeatherConfig struct {
	EnableCache    bool
	CacheTTL       time.Duration
	ForecastDays   int
	PersistRecords bool
}

// GeocodingConfig represents city search configuration
type GeocodingConfig struct {
	ResultCount int
}

// StatisticsConfig represents limits applied to statistics queries
type StatisticsConfig struct {
	DashboardLimit int
	RangeLimit     int
	TrendDays      int
	MaxTrendDays   int
	// SnapshotMaxAge of zero keeps snapshots until invalidated or the day changes
	SnapshotMaxAge time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// DatabaseConfig represents database configuration
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       int
	Name       string
	SQLitePath string
}

// CacheConfig represents cache configuration
type CacheConfig struct {
	Type      string
	RedisAddr string
}

// ChangeFeedConfig represents change feed configuration
type ChangeFeedConfig struct {
	Type    string
	Channel string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetGeocodingConfig() GeocodingConfig
	GetStatisticsConfig() StatisticsConfig
	GetServerConfig() ServerConfig
	GetDatabaseConfig() DatabaseConfig
	GetCacheConfig() CacheConfig
	GetChangeFeedConfig() ChangeFeedConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsRecorder defines the contract for operational metrics
type MetricsRecorder interface {
	RecordExternalCall(provider, operation string, success bool, duration time.Duration)
	RecordCacheHit(cacheType string)
	RecordCacheMiss(cacheType string)
	RecordStatisticsComputation(source string)
	RecordChangeEvent(kind string)
}
