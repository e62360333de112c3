package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"weathertodo.app/internal/adapters/database"
	"weathertodo.app/internal/adapters/external"
	"weathertodo.app/internal/adapters/infrastructure"
	"weathertodo.app/internal/config"
	"weathertodo.app/internal/ports"
)

type DependencyContainer struct {
	config  *config.Config
	db      *gorm.DB
	mongo   *mongo.Client
	redis   *redis.Client
	metrics *infrastructure.PrometheusMetrics
	ports   *ports.ApplicationPorts

	feedStats      infrastructure.ChangeFeedStats
	healthCheckers map[string]ports.HealthChecker
}

func NewDependencyContainer(cfg *config.Config) (*DependencyContainer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	container := &DependencyContainer{
		config:         cfg,
		metrics:        infrastructure.NewPrometheusMetrics(),
		healthCheckers: make(map[string]ports.HealthChecker),
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	slog.Info("Initializing database connection...", "driver", c.config.Database.Driver)

	var dialector gorm.Dialector
	switch c.config.Database.Driver {
	case config.DatabaseDriverSQLite:
		dialector = sqlite.Open(c.config.Database.SQLitePath)
	default:
		dialector = postgres.Open(c.config.Database.GetDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	c.healthCheckers["database"] = infrastructure.NewDatabaseHealthChecker(db)
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(
		&database.TodoModel{},
		&database.KeyValueModel{},
		&database.WeatherRecordModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts() error {
	slog.Info("Initializing ports...")

	logger := infrastructure.NewSlogLoggerAdapter(slog.Default())
	configProvider := infrastructure.NewConfigProviderAdapter(c.config)

	todoRepo, err := c.createTodoRepository()
	if err != nil {
		return err
	}

	changeFeed, err := c.createChangeFeed(logger)
	if err != nil {
		return err
	}

	cacheProvider, err := external.NewCacheProviderFactory(c.metrics).CreateCacheProvider(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache provider", "error", err)
		return fmt.Errorf("create cache provider: %w", err)
	}
	slog.Info("Cache provider initialized",
		"type", c.config.Cache.Type.String(),
		"redis_addr", c.config.Cache.Redis.Addr)

	var pinger infrastructure.Pinger
	if p, ok := cacheProvider.(infrastructure.Pinger); ok {
		pinger = p
	}
	c.healthCheckers["cache"] = infrastructure.NewCacheHealthChecker(c.config.Cache.Type.String(), pinger)

	weatherCache := external.NewWeatherCacheAdapter(cacheProvider)
	providerChain := c.createWeatherProviders(logger)
	c.healthCheckers["weather_api"] = infrastructure.NewWeatherAPIHealthChecker(providerChain)

	weatherMetrics := external.NewWeatherMetricsAdapter(weatherCache, providerChain, c.config.Weather.EnableCache)

	geocoding := external.NewOpenMeteoGeocodingAdapter(external.OpenMeteoGeocodingParams{
		BaseURL: c.config.Geocoding.BaseURL,
		Timeout: time.Duration(c.config.Weather.TimeoutSeconds) * time.Second,
		Logger:  logger,
		Metrics: c.metrics,
	})

	var cacheMetrics ports.CacheMetrics
	if m, ok := cacheProvider.(ports.CacheMetrics); ok {
		cacheMetrics = m
	}

	c.ports = &ports.ApplicationPorts{
		// Todos
		TodoRepository: todoRepo,
		ChangeFeed:     changeFeed,

		// Weather
		WeatherProvider: providerChain,
		WeatherCache:    weatherCache,
		WeatherRecords:  database.NewWeatherRecordRepositoryAdapter(c.db),
		WeatherMetrics:  weatherMetrics,

		// Location
		Geocoding:     geocoding,
		KeyValueStore: database.NewKeyValueRepositoryAdapter(c.db),

		// Cache
		CacheProvider: cacheProvider,
		CacheMetrics:  cacheMetrics,

		// Infrastructure
		ConfigProvider: configProvider,
		Logger:         logger,
		Metrics:        c.metrics,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) createTodoRepository() (ports.TodoRepository, error) {
	if c.config.TodoStore.Type != config.TodoStoreMongoDB {
		return database.NewTodoRepositoryAdapter(c.db), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := external.ConnectMongo(ctx, c.config.TodoStore.MongoURI)
	if err != nil {
		return nil, fmt.Errorf("connect todo store: %w", err)
	}
	c.mongo = client

	repo := external.NewMongoTodoRepositoryAdapter(client.Database(c.config.TodoStore.MongoDatabase))
	if err := repo.EnsureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure todo indexes: %w", err)
	}

	c.healthCheckers["todo_store"] = infrastructure.NewMongoHealthChecker(client)
	slog.Info("Todo store initialized", "type", "mongodb", "database", c.config.TodoStore.MongoDatabase)
	return repo, nil
}

func (c *DependencyContainer) createChangeFeed(logger ports.Logger) (ports.TodoChangeFeed, error) {
	switch c.config.ChangeFeed.Type {
	case config.CacheTypeRedis:
		client, err := external.NewRedisClient(&c.config.Cache.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect change feed: %w", err)
		}
		c.redis = client

		feed, err := external.NewRedisChangeFeedAdapter(client, c.config.ChangeFeed.Channel, logger)
		if err != nil {
			return nil, fmt.Errorf("create change feed: %w", err)
		}
		slog.Info("Change feed initialized", "type", "redis", "channel", c.config.ChangeFeed.Channel)
		return feed, nil
	default:
		feed := infrastructure.NewMemoryChangeFeed()
		c.feedStats = feed
		slog.Info("Change feed initialized", "type", "memory")
		return feed, nil
	}
}

// createWeatherProviders builds the Open-Meteo chain: the primary endpoints,
// then the fallback mirror when one is configured.
func (c *DependencyContainer) createWeatherProviders(logger ports.Logger) *external.WeatherProviderChain {
	weatherCfg := c.config.Weather
	timeout := time.Duration(weatherCfg.TimeoutSeconds) * time.Second

	// Provider traffic goes to its own file when configured
	var providerLogger ports.Logger = logger
	if weatherCfg.EnableLogging && weatherCfg.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(weatherCfg.LogFilePath, c.config.Log.Level)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			providerLogger = fileLogger
			slog.Info("File logging enabled", "path", weatherCfg.LogFilePath)
		}
	}

	wrap := func(p ports.WeatherProvider) ports.WeatherProvider {
		if !weatherCfg.EnableLogging {
			return p
		}
		return external.NewWeatherProviderLoggingDecorator(p, providerLogger, c.metrics)
	}

	providers := []ports.WeatherProvider{
		wrap(external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
			Name:            "open-meteo",
			ForecastBaseURL: weatherCfg.ForecastBaseURL,
			ArchiveBaseURL:  weatherCfg.ArchiveBaseURL,
			Timeout:         timeout,
			Logger:          logger,
		})),
	}

	if weatherCfg.FallbackForecastBaseURL != "" {
		providers = append(providers, wrap(external.NewOpenMeteoProviderAdapter(external.OpenMeteoProviderParams{
			Name:            "open-meteo-fallback",
			ForecastBaseURL: weatherCfg.FallbackForecastBaseURL,
			ArchiveBaseURL:  weatherCfg.FallbackArchiveBaseURL,
			Timeout:         timeout,
			Logger:          logger,
		})))
	}

	slog.Info("Weather providers initialized", "count", len(providers))
	return external.NewWeatherProviderChain(logger, providers...)
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Metrics returns the Prometheus recorder shared by all adapters
func (c *DependencyContainer) Metrics() *infrastructure.PrometheusMetrics {
	return c.metrics
}

// HealthCheckers returns the component checkers keyed by component name
func (c *DependencyContainer) HealthCheckers() map[string]ports.HealthChecker {
	return c.healthCheckers
}

// ChangeFeedStats is nil unless the in-process feed is in use
func (c *DependencyContainer) ChangeFeedStats() infrastructure.ChangeFeedStats {
	return c.feedStats
}

// NewTestDependencyContainer wires a private in-memory SQLite database with
// the in-process cache and change feed
func NewTestDependencyContainer() (*DependencyContainer, error) {
	return NewDependencyContainer(TestConfig("http://127.0.0.1:1/v1"))
}

// TestConfig points every Open-Meteo endpoint at openMeteoURL and uses only
// in-process backends
func TestConfig(openMeteoURL string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080},
		Log:    config.LogConfig{Level: "info"},
		Database: config.DatabaseConfig{
			Driver:     config.DatabaseDriverSQLite,
			SQLitePath: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		},
		TodoStore: config.TodoStoreConfig{Type: config.TodoStoreSQL},
		Weather: config.WeatherConfig{
			ForecastBaseURL: openMeteoURL,
			ArchiveBaseURL:  openMeteoURL,
			ForecastDays:    16,
			TimeoutSeconds:  2,
			EnableCache:     true,
			CacheTTLMinutes: 30,
			PersistRecords:  true,
			EnableLogging:   true,
		},
		Geocoding: config.GeocodingConfig{
			BaseURL:     openMeteoURL,
			ResultCount: 10,
		},
		Cache:      config.CacheConfig{Type: config.CacheTypeMemory},
		ChangeFeed: config.ChangeFeedConfig{Type: config.CacheTypeMemory, Channel: "todos.documents"},
		Statistics: config.StatisticsConfig{
			DashboardLimit:        10000,
			RangeLimit:            1000,
			TrendDays:             7,
			MaxTrendDays:          365,
			SnapshotMaxAgeSeconds: 300,
		},
	}
}

// Cleanup closes database and broker connections
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if c.redis != nil {
		keep(c.redis.Close())
	}
	if closer, ok := c.portsCache().(interface{ Close() error }); ok {
		keep(closer.Close())
	}
	if c.mongo != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		keep(c.mongo.Disconnect(ctx))
		cancel()
	}
	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			keep(db.Close())
		}
	}
	return firstErr
}

func (c *DependencyContainer) portsCache() ports.CacheProvider {
	if c.ports == nil {
		return nil
	}
	return c.ports.CacheProvider
}
