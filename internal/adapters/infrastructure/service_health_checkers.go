package infrastructure

import (
	"context"

	"weathertodo.app/internal/ports"
)

// ProviderInfoSource describes the configured weather providers
type ProviderInfoSource interface {
	GetProviderInfo() map[string]interface{}
}

// WeatherAPIHealthChecker reports the configured weather provider chain.
// It does not call the upstream API.
type WeatherAPIHealthChecker struct {
	providers ProviderInfoSource
}

// NewWeatherAPIHealthChecker creates a new weather API health checker
func NewWeatherAPIHealthChecker(providers ProviderInfoSource) *WeatherAPIHealthChecker {
	return &WeatherAPIHealthChecker{providers: providers}
}

// Check verifies that at least one weather provider is configured
func (w *WeatherAPIHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherAPI",
		Status:    "healthy",
		Details:   map[string]interface{}{},
	}

	if w.providers == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		return status
	}

	info := w.providers.GetProviderInfo()
	status.Details["providers"] = info["provider_order"]
	if total, ok := info["total_providers"].(int); ok && total == 0 {
		status.Status = "unhealthy"
		status.Error = "no weather providers configured"
	}
	return status
}

// Pinger is a backend that can report its reachability
type Pinger interface {
	Ping(ctx context.Context) error
}

// CacheHealthChecker checks the configured cache backend. A nil pinger means
// an in-process cache which is always reachable.
type CacheHealthChecker struct {
	cacheType string
	pinger    Pinger
}

// NewCacheHealthChecker creates a cache health checker
func NewCacheHealthChecker(cacheType string, pinger Pinger) *CacheHealthChecker {
	return &CacheHealthChecker{cacheType: cacheType, pinger: pinger}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Status:    "healthy",
		Details:   map[string]interface{}{"type": c.cacheType},
	}

	if c.pinger == nil {
		return status
	}
	if err := c.pinger.Ping(ctx); err != nil {
		status.Status = "unhealthy"
		status.Error = err.Error()
	}
	return status
}
