package external

import (
	"context"
	"time"

	"weathertodo.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured
// logging and external call metrics
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	metrics  ports.MetricsRecorder
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers. metrics may be nil.
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger, metrics ports.MetricsRecorder) *WeatherProviderLoggingDecorator {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
		metrics:  metrics,
	}
}

// GetForecast wraps the forecast call with structured logging
func (d *WeatherProviderLoggingDecorator) GetForecast(ctx context.Context, coords ports.Coordinates, days int) ([]ports.DailyWeatherData, error) {
	return d.observe("forecast", coords, []ports.Field{ports.F("days", days)}, func() ([]ports.DailyWeatherData, error) {
		return d.provider.GetForecast(ctx, coords, days)
	})
}

// GetArchive wraps the archive call with structured logging
func (d *WeatherProviderLoggingDecorator) GetArchive(ctx context.Context, coords ports.Coordinates, date string) ([]ports.DailyWeatherData, error) {
	return d.observe("archive", coords, []ports.Field{ports.F("date", date)}, func() ([]ports.DailyWeatherData, error) {
		return d.provider.GetArchive(ctx, coords, date)
	})
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// GetProviderInfo passes through the wrapped provider description
func (d *WeatherProviderLoggingDecorator) GetProviderInfo() map[string]interface{} {
	info := map[string]interface{}{}
	if source, ok := d.provider.(ProviderInfoSource); ok {
		info = source.GetProviderInfo()
	}
	info["logging_enabled"] = true
	return info
}

func (d *WeatherProviderLoggingDecorator) observe(operation string, coords ports.Coordinates, extra []ports.Field, call func() ([]ports.DailyWeatherData, error)) ([]ports.DailyWeatherData, error) {
	providerName := d.provider.GetProviderName()

	fields := append([]ports.Field{
		ports.F("provider", providerName),
		ports.F("operation", operation),
		ports.F("latitude", coords.Latitude),
		ports.F("longitude", coords.Longitude),
	}, extra...)

	d.logger.Info("Weather API request started", append(fields, ports.F("event", "request"))...)

	startTime := time.Now()
	days, err := call()
	duration := time.Since(startTime)

	if d.metrics != nil {
		d.metrics.RecordExternalCall(providerName, operation, err == nil, duration)
	}

	if err != nil {
		d.logger.Error("Weather API request failed", append(fields,
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))...)
		return nil, err
	}

	d.logger.Info("Weather API request completed", append(fields,
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("days_returned", len(days)))...)

	return days, nil
}
