package external

import (
	"fmt"

	"weathertodo.app/internal/config"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

type CacheProviderFactory struct {
	metrics ports.MetricsRecorder
}

// NewCacheProviderFactory creates a factory whose providers report hits and
// misses to metrics. metrics may be nil.
func NewCacheProviderFactory(metrics ports.MetricsRecorder) *CacheProviderFactory {
	return &CacheProviderFactory{metrics: metrics}
}

func (f *CacheProviderFactory) CreateCacheProvider(cfg *config.CacheConfig) (ports.CacheProvider, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		return NewMemoryCacheProvider(f.metrics), nil
	case config.CacheTypeRedis:
		provider, err := NewRedisCacheProviderAdapter(&cfg.Redis, f.metrics)
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
