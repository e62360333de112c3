package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertodo.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "info", config.Log.Level)
		assert.Equal(t, DatabaseDriverPostgres, config.Database.Driver)
		assert.Equal(t, "localhost", config.Database.Host)
		assert.Equal(t, 5432, config.Database.Port)
		assert.Equal(t, "weathertodo", config.Database.Name)
		assert.Equal(t, TodoStoreSQL, config.TodoStore.Type)
		assert.Equal(t, "https://api.open-meteo.com/v1", config.Weather.ForecastBaseURL)
		assert.Equal(t, "https://archive-api.open-meteo.com/v1", config.Weather.ArchiveBaseURL)
		assert.Equal(t, 16, config.Weather.ForecastDays)
		assert.True(t, config.Weather.EnableCache)
		assert.False(t, config.Weather.PersistRecords)
		assert.Equal(t, "https://geocoding-api.open-meteo.com/v1", config.Geocoding.BaseURL)
		assert.Equal(t, 10, config.Geocoding.ResultCount)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, CacheTypeMemory, config.ChangeFeed.Type)
		assert.Equal(t, "todos.documents", config.ChangeFeed.Channel)
		assert.Equal(t, 10000, config.Statistics.DashboardLimit)
		assert.Equal(t, 1000, config.Statistics.RangeLimit)
		assert.Equal(t, 7, config.Statistics.TrendDays)
		assert.Equal(t, 365, config.Statistics.MaxTrendDays)
		assert.Equal(t, 300, config.Statistics.SnapshotMaxAgeSeconds)
	})

	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()

		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))
		require.NoError(t, os.Setenv("DB_DRIVER", "sqlite"))
		require.NoError(t, os.Setenv("DB_SQLITE_PATH", "/tmp/todos.db"))
		require.NoError(t, os.Setenv("TODO_STORE", "mongodb"))
		require.NoError(t, os.Setenv("MONGO_URI", "mongodb://mongo:27017"))
		require.NoError(t, os.Setenv("WEATHER_FORECAST_DAYS", "7"))
		require.NoError(t, os.Setenv("WEATHER_PERSIST_RECORDS", "true"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6379"))
		require.NoError(t, os.Setenv("CHANGE_FEED_TYPE", "redis"))
		require.NoError(t, os.Setenv("STATS_TREND_DAYS", "14"))

		config, err := LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, config.Server.Port)
		assert.Equal(t, "debug", config.Log.Level)
		assert.Equal(t, DatabaseDriverSQLite, config.Database.Driver)
		assert.Equal(t, "/tmp/todos.db", config.Database.SQLitePath)
		assert.Equal(t, TodoStoreMongoDB, config.TodoStore.Type)
		assert.Equal(t, "mongodb://mongo:27017", config.TodoStore.MongoURI)
		assert.Equal(t, 7, config.Weather.ForecastDays)
		assert.True(t, config.Weather.PersistRecords)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, "redis:6379", config.Cache.Redis.Addr)
		assert.Equal(t, CacheTypeRedis, config.ChangeFeed.Type)
		assert.Equal(t, 14, config.Statistics.TrendDays)
	})

	t.Run("InvalidForecastDays", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("WEATHER_FORECAST_DAYS", "17"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "WEATHER_FORECAST_DAYS")
	})

	t.Run("FallbackRequiresBothURLs", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("WEATHER_FALLBACK_FORECAST_BASE_URL", "http://localhost:8081/v1"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "WEATHER_FALLBACK_ARCHIVE_BASE_URL")
	})

	t.Run("GetDSN", func(t *testing.T) {
		dbConfig := DatabaseConfig{
			Host:     "test-host",
			Port:     5432,
			User:     "test-user",
			Password: "test-password",
			Name:     "test-db",
			SSLMode:  "require",
		}

		expectedDSN := "host=test-host port=5432 user=test-user password=test-password dbname=test-db sslmode=require"
		assert.Equal(t, expectedDSN, dbConfig.GetDSN())
	})
}

func TestConfig_SectionValidation(t *testing.T) {
	tests := []struct {
		name     string
		validate func() error
		contains string
	}{
		{
			name:     "unknown database driver",
			validate: (&DatabaseConfig{Driver: "mysql"}).Validate,
			contains: "DB_DRIVER",
		},
		{
			name: "invalid ssl mode",
			validate: (&DatabaseConfig{
				Driver: DatabaseDriverPostgres, Host: "h", Port: 5432, User: "u", Name: "n", SSLMode: "prefer",
			}).Validate,
			contains: "DB_SSL_MODE",
		},
		{
			name:     "unknown todo store",
			validate: (&TodoStoreConfig{Type: "dynamo"}).Validate,
			contains: "TODO_STORE",
		},
		{
			name:     "mongo uri without scheme",
			validate: (&TodoStoreConfig{Type: TodoStoreMongoDB, MongoURI: "localhost", MongoDatabase: "db"}).Validate,
			contains: "MONGO_URI",
		},
		{
			name:     "geocoding result count above limit",
			validate: (&GeocodingConfig{BaseURL: "https://example.com", ResultCount: 11}).Validate,
			contains: "GEOCODING_RESULT_COUNT",
		},
		{
			name:     "unknown cache type",
			validate: (&CacheConfig{Type: CacheTypeUnknown}).Validate,
			contains: "CACHE_TYPE",
		},
		{
			name:     "redis db out of range",
			validate: (&RedisConfig{Addr: "localhost:6379", DB: 16, DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1}).Validate,
			contains: "REDIS_DB",
		},
		{
			name:     "dashboard limit too high",
			validate: (&StatisticsConfig{DashboardLimit: 10001, RangeLimit: 1, TrendDays: 1}).Validate,
			contains: "STATS_DASHBOARD_LIMIT",
		},
		{
			name:     "max trend days below default trend",
			validate: (&StatisticsConfig{DashboardLimit: 1, RangeLimit: 1, TrendDays: 7, MaxTrendDays: 3}).Validate,
			contains: "STATS_MAX_TREND_DAYS",
		},
		{
			name:     "negative snapshot max age",
			validate: (&StatisticsConfig{DashboardLimit: 1, RangeLimit: 1, TrendDays: 1, MaxTrendDays: 1, SnapshotMaxAgeSeconds: -1}).Validate,
			contains: "STATS_SNAPSHOT_MAX_AGE_SECONDS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.validate()
			require.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestChangeFeedConfig_RedisRequiresRedisSettings(t *testing.T) {
	feed := ChangeFeedConfig{Type: CacheTypeRedis, Channel: "todos"}
	cache := CacheConfig{Type: CacheTypeMemory, Redis: RedisConfig{Addr: ""}}

	err := feed.Validate(&cache)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_ADDR")
}

func TestCacheTypeFromString(t *testing.T) {
	assert.Equal(t, CacheTypeMemory, CacheTypeFromString("memory"))
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("memcached"))
	assert.Equal(t, "redis", CacheTypeRedis.String())
}
