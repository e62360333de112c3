package external

import (
	"context"
	"fmt"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// WeatherProviderChain implements Chain of Responsibility over weather providers.
// Each call tries the providers in order until one succeeds.
type WeatherProviderChain struct {
	providers []ports.WeatherProvider
	logger    ports.Logger
}

// NewWeatherProviderChain creates a failover chain. Nil providers are skipped.
func NewWeatherProviderChain(logger ports.Logger, providers ...ports.WeatherProvider) *WeatherProviderChain {
	chain := &WeatherProviderChain{logger: logger}
	for _, provider := range providers {
		if provider != nil {
			chain.providers = append(chain.providers, provider)
		}
	}
	return chain
}

// GetForecast asks each provider for the forecast window in turn
func (c *WeatherProviderChain) GetForecast(ctx context.Context, coords ports.Coordinates, days int) ([]ports.DailyWeatherData, error) {
	return c.try(ctx, "forecast", func(p ports.WeatherProvider) ([]ports.DailyWeatherData, error) {
		return p.GetForecast(ctx, coords, days)
	})
}

// GetArchive asks each provider for a recorded day in turn
func (c *WeatherProviderChain) GetArchive(ctx context.Context, coords ports.Coordinates, date string) ([]ports.DailyWeatherData, error) {
	return c.try(ctx, "archive", func(p ports.WeatherProvider) ([]ports.DailyWeatherData, error) {
		return p.GetArchive(ctx, coords, date)
	})
}

// GetProviderName returns the name of the first provider in the chain
func (c *WeatherProviderChain) GetProviderName() string {
	if len(c.providers) == 0 {
		return "none"
	}
	return c.providers[0].GetProviderName()
}

func (c *WeatherProviderChain) try(ctx context.Context, operation string, call func(ports.WeatherProvider) ([]ports.DailyWeatherData, error)) ([]ports.DailyWeatherData, error) {
	if len(c.providers) == 0 {
		return nil, errors.NewExternalAPIError("no weather providers configured", nil)
	}

	var lastErr error
	for i, provider := range c.providers {
		providerName := provider.GetProviderName()

		if c.logger != nil {
			c.logger.Debug("Trying weather provider",
				ports.F("provider", providerName),
				ports.F("operation", operation),
				ports.F("attempt", i+1))
		}

		days, err := call(provider)
		if err == nil {
			return days, nil
		}
		// a rejected request fails the same way everywhere
		if errors.IsValidationError(err) || ctx.Err() != nil {
			return nil, err
		}

		lastErr = err
		if c.logger != nil {
			c.logger.Warn("Weather provider failed, trying next",
				ports.F("provider", providerName),
				ports.F("operation", operation),
				ports.F("error", err.Error()))
		}
	}

	if c.logger != nil {
		c.logger.Error("All weather providers failed",
			ports.F("operation", operation),
			ports.F("providers_tried", len(c.providers)),
			ports.F("last_error", lastErr.Error()))
	}

	return nil, fmt.Errorf("all weather providers failed (tried %d providers): %w", len(c.providers), lastErr)
}

// GetProviderInfo returns information about configured providers
func (c *WeatherProviderChain) GetProviderInfo() map[string]interface{} {
	providerNames := make([]string, len(c.providers))
	for i, provider := range c.providers {
		providerNames[i] = provider.GetProviderName()
	}

	return map[string]interface{}{
		"total_providers":  len(c.providers),
		"provider_order":   providerNames,
		"chain_enabled":    true,
		"fallback_enabled": len(c.providers) > 1,
	}
}
