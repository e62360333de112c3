package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	// Todos
	TodoRepository TodoRepository
	ChangeFeed     TodoChangeFeed

	// Weather
	WeatherProvider WeatherProvider
	WeatherCache    WeatherCache
	WeatherRecords  WeatherRecordRepository
	WeatherMetrics  WeatherMetrics

	// Location
	Geocoding     GeocodingProvider
	KeyValueStore KeyValueStore

	// Cache
	CacheProvider CacheProvider
	CacheMetrics  CacheMetrics

	// Infrastructure
	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsRecorder
	Database       interface{}
}
