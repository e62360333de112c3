package external

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/config"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

func TestCacheProviderFactory_CreateCacheProvider(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	factory := NewCacheProviderFactory(nil)

	tests := []struct {
		name         string
		config       *config.CacheConfig
		expectError  bool
		expectedType ports.CacheProvider
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
		},
		{
			name:         "MemoryCache",
			config:       &config.CacheConfig{Type: config.CacheTypeMemory},
			expectedType: &MemoryCacheProvider{},
		},
		{
			name:         "RedisCache",
			config:       &config.CacheConfig{Type: config.CacheTypeRedis, Redis: *redisConfig},
			expectedType: &RedisCacheProviderAdapter{},
		},
		{
			name: "RedisUnreachable",
			config: &config.CacheConfig{Type: config.CacheTypeRedis, Redis: config.RedisConfig{
				Addr: "invalid:address:port", DialTimeout: 1, ReadTimeout: 1, WriteTimeout: 1,
			}},
			expectError: true,
		},
		{
			name:        "UnknownCacheType",
			config:      &config.CacheConfig{Type: config.CacheTypeUnknown},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := factory.CreateCacheProvider(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, provider)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, provider)
			assert.IsType(t, tt.expectedType, provider)
		})
	}
}

func TestCacheProviderFactory_UnknownTypeIsConfigurationError(t *testing.T) {
	_, err := NewCacheProviderFactory(nil).CreateCacheProvider(&config.CacheConfig{})

	assert.True(t, errors.IsConfigurationError(err))
}
