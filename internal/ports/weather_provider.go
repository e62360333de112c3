package ports

import (
	"context"
	"time"
)

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DailyWeatherData represents a single day of weather from a provider
type DailyWeatherData struct {
	Date          string  `json:"date"`
	TempMax       float64 `json:"temp_max"`
	TempMin       float64 `json:"temp_min"`
	Precipitation float64 `json:"precipitation"`
	WeatherCode   int     `json:"weather_code"`
}

// WeatherProvider defines the contract for daily weather data providers
type WeatherProvider interface {
	GetForecast(ctx context.Context, coords Coordinates, days int) ([]DailyWeatherData, error)
	GetArchive(ctx context.Context, coords Coordinates, date string) ([]DailyWeatherData, error)
	GetProviderName() string
}

// WeatherCache defines the contract for caching forecast windows
type WeatherCache interface {
	Get(ctx context.Context, key string) ([]DailyWeatherData, error)
	Set(ctx context.Context, key string, days []DailyWeatherData, ttl time.Duration) error
}

// WeatherRecord is a persisted day of weather for a rounded location
type WeatherRecord struct {
	ID            uint
	Date          string
	Latitude      float64
	Longitude     float64
	TempMax       float64
	TempMin       float64
	Precipitation float64
	WeatherCode   int
	LastUpdated   time.Time
}

// WeatherRecordRepository defines the contract for weather history persistence
type WeatherRecordRepository interface {
	Save(ctx context.Context, record *WeatherRecord) (changed bool, err error)
	FindByDate(ctx context.Context, date string, coords Coordinates) (*WeatherRecord, error)
	FindRange(ctx context.Context, startDate, endDate string, coords Coordinates) ([]*WeatherRecord, error)
}

// WeatherMetrics defines the contract for weather provider metrics
type WeatherMetrics interface {
	GetProviderInfo() map[string]interface{}
	GetCacheMetrics() (CacheStats, error)
}
