package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weathertodo.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 1440
	maxPortNumber       = 65535
	maxForecastDays     = 16
	maxGeocodingResults = 10
	maxQueryLimit       = 10000
)

// Config represents the application configuration structure
type Config struct {
	Server     ServerConfig     `split_words:"true"`
	Log        LogConfig        `split_words:"true"`
	Database   DatabaseConfig   `split_words:"true"`
	TodoStore  TodoStoreConfig  `split_words:"true"`
	Weather    WeatherConfig    `split_words:"true"`
	Geocoding  GeocodingConfig  `split_words:"true"`
	Cache      CacheConfig      `split_words:"true"`
	ChangeFeed ChangeFeedConfig `split_words:"true"`
	Statistics StatisticsConfig `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

// DatabaseDriver selects the gorm dialector
type DatabaseDriver string

const (
	DatabaseDriverPostgres DatabaseDriver = "postgres"
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"
)

type DatabaseConfig struct {
	Driver     DatabaseDriver `envconfig:"DB_DRIVER" default:"postgres"`
	Host       string         `envconfig:"DB_HOST" default:"localhost"`
	Port       int            `envconfig:"DB_PORT" default:"5432"`
	User       string         `envconfig:"DB_USER" default:"postgres"`
	Password   string         `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string         `envconfig:"DB_NAME" default:"weathertodo"`
	SSLMode    string         `envconfig:"DB_SSL_MODE" default:"disable"`
	SQLitePath string         `envconfig:"DB_SQLITE_PATH" default:"weathertodo.db"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// TodoStoreType selects the todo document store backend
type TodoStoreType string

const (
	TodoStoreSQL     TodoStoreType = "sql"
	TodoStoreMongoDB TodoStoreType = "mongodb"
)

type TodoStoreConfig struct {
	Type          TodoStoreType `envconfig:"TODO_STORE" default:"sql"`
	MongoURI      string        `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string        `envconfig:"MONGO_DATABASE" default:"weathertodo"`
}

type WeatherConfig struct {
	ForecastBaseURL         string `envconfig:"WEATHER_FORECAST_BASE_URL" default:"https://api.open-meteo.com/v1"`
	ArchiveBaseURL          string `envconfig:"WEATHER_ARCHIVE_BASE_URL" default:"https://archive-api.open-meteo.com/v1"`
	// Optional mirror tried when the primary Open-Meteo endpoints fail
	FallbackForecastBaseURL string `envconfig:"WEATHER_FALLBACK_FORECAST_BASE_URL" default:""`
	FallbackArchiveBaseURL  string `envconfig:"WEATHER_FALLBACK_ARCHIVE_BASE_URL" default:""`
	ForecastDays            int    `envconfig:"WEATHER_FORECAST_DAYS" default:"16"`
	TimeoutSeconds          int    `envconfig:"WEATHER_TIMEOUT_SECONDS" default:"10"`
	EnableCache             bool   `envconfig:"WEATHER_ENABLE_CACHE" default:"true"`
	CacheTTLMinutes         int    `envconfig:"WEATHER_CACHE_TTL_MINUTES" default:"30"`
	PersistRecords          bool   `envconfig:"WEATHER_PERSIST_RECORDS" default:"false"`
	EnableLogging           bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath             string `envconfig:"WEATHER_LOG_FILE_PATH" default:"logs/weather_providers.log"`
}

type GeocodingConfig struct {
	BaseURL     string `envconfig:"GEOCODING_BASE_URL" default:"https://geocoding-api.open-meteo.com/v1"`
	ResultCount int    `envconfig:"GEOCODING_RESULT_COUNT" default:"10"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type  CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	Redis RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

// ChangeFeedConfig selects how todo change notifications are distributed.
// The redis feed reuses the cache Redis connection settings.
type ChangeFeedConfig struct {
	Type    CacheType `envconfig:"CHANGE_FEED_TYPE" default:"memory"`
	Channel string    `envconfig:"CHANGE_FEED_CHANNEL" default:"todos.documents"`
}

type StatisticsConfig struct {
	DashboardLimit int `envconfig:"STATS_DASHBOARD_LIMIT" default:"10000"`
	RangeLimit     int `envconfig:"STATS_RANGE_LIMIT" default:"1000"`
	TrendDays      int `envconfig:"STATS_TREND_DAYS" default:"7"`
	MaxTrendDays   int `envconfig:"STATS_MAX_TREND_DAYS" default:"365"`
	// Cached dashboard snapshots older than this are recomputed even without a change event
	SnapshotMaxAgeSeconds int `envconfig:"STATS_SNAPSHOT_MAX_AGE_SECONDS" default:"300"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.TodoStore.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Geocoding.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.ChangeFeed.Validate(&c.Cache); err != nil {
		return err
	}
	if err := c.Statistics.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	switch d.Driver {
	case DatabaseDriverSQLite:
		if d.SQLitePath == "" {
			return errors.NewConfigurationError("DB_SQLITE_PATH cannot be empty when DB_DRIVER is sqlite", nil)
		}
		return nil
	case DatabaseDriverPostgres:
	default:
		return errors.NewConfigurationError("DB_DRIVER must be one of: postgres, sqlite", nil)
	}

	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (t *TodoStoreConfig) Validate() error {
	switch t.Type {
	case TodoStoreSQL:
		return nil
	case TodoStoreMongoDB:
		if !strings.HasPrefix(t.MongoURI, "mongodb://") && !strings.HasPrefix(t.MongoURI, "mongodb+srv://") {
			return errors.NewConfigurationError("MONGO_URI must start with mongodb:// or mongodb+srv://", nil)
		}
		if t.MongoDatabase == "" {
			return errors.NewConfigurationError("MONGO_DATABASE cannot be empty", nil)
		}
		return nil
	default:
		return errors.NewConfigurationError("TODO_STORE must be one of: sql, mongodb", nil)
	}
}

func (w *WeatherConfig) Validate() error {
	if err := validateBaseURL("WEATHER_FORECAST_BASE_URL", w.ForecastBaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("WEATHER_ARCHIVE_BASE_URL", w.ArchiveBaseURL); err != nil {
		return err
	}
	if w.FallbackForecastBaseURL != "" || w.FallbackArchiveBaseURL != "" {
		if err := validateBaseURL("WEATHER_FALLBACK_FORECAST_BASE_URL", w.FallbackForecastBaseURL); err != nil {
			return err
		}
		if err := validateBaseURL("WEATHER_FALLBACK_ARCHIVE_BASE_URL", w.FallbackArchiveBaseURL); err != nil {
			return err
		}
	}
	if w.ForecastDays < 1 || w.ForecastDays > maxForecastDays {
		return errors.NewConfigurationError("WEATHER_FORECAST_DAYS must be between 1 and 16", nil)
	}
	if w.TimeoutSeconds < 1 {
		return errors.NewConfigurationError("WEATHER_TIMEOUT_SECONDS must be at least 1 second", nil)
	}
	if w.CacheTTLMinutes < 1 || w.CacheTTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("WEATHER_CACHE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}
	return nil
}

func (g *GeocodingConfig) Validate() error {
	if err := validateBaseURL("GEOCODING_BASE_URL", g.BaseURL); err != nil {
		return err
	}
	if g.ResultCount < 1 || g.ResultCount > maxGeocodingResults {
		return errors.NewConfigurationError("GEOCODING_RESULT_COUNT must be between 1 and 10", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (f *ChangeFeedConfig) Validate(cache *CacheConfig) error {
	if !f.Type.IsValid() {
		return errors.NewConfigurationError("CHANGE_FEED_TYPE must be one of: memory, redis", nil)
	}
	if f.Channel == "" {
		return errors.NewConfigurationError("CHANGE_FEED_CHANNEL cannot be empty", nil)
	}
	if f.Type == CacheTypeRedis && cache.Type != CacheTypeRedis {
		return cache.Redis.Validate()
	}
	return nil
}

func (s *StatisticsConfig) Validate() error {
	if s.DashboardLimit < 1 || s.DashboardLimit > maxQueryLimit {
		return errors.NewConfigurationError("STATS_DASHBOARD_LIMIT must be between 1 and 10000", nil)
	}
	if s.RangeLimit < 1 || s.RangeLimit > maxQueryLimit {
		return errors.NewConfigurationError("STATS_RANGE_LIMIT must be between 1 and 10000", nil)
	}
	if s.TrendDays < 1 {
		return errors.NewConfigurationError("STATS_TREND_DAYS must be at least 1", nil)
	}
	if s.MaxTrendDays < s.TrendDays {
		return errors.NewConfigurationError("STATS_MAX_TREND_DAYS must not be below STATS_TREND_DAYS", nil)
	}
	if s.SnapshotMaxAgeSeconds < 0 {
		return errors.NewConfigurationError("STATS_SNAPSHOT_MAX_AGE_SECONDS must not be negative", nil)
	}
	return nil
}

func validateBaseURL(name, value string) error {
	if value == "" {
		return errors.NewConfigurationError(name+" cannot be empty", nil)
	}
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return errors.NewConfigurationError(name+" must start with http:// or https://", nil)
	}
	return nil
}
