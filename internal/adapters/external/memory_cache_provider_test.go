package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/mocks"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

func TestMemoryCacheProvider_Operations(t *testing.T) {
	cache := NewMemoryCacheProvider(nil)
	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

		value, err := cache.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("v"), value)
	})

	t.Run("StoredValueIsCopied", func(t *testing.T) {
		original := []byte("abc")
		require.NoError(t, cache.Set(ctx, "copy", original, time.Minute))
		original[0] = 'z'

		value, err := cache.Get(ctx, "copy")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(value))
	})

	t.Run("Miss", func(t *testing.T) {
		_, err := cache.Get(ctx, "missing")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("DeletePrefix", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "forecast:1", []byte("1"), time.Minute))
		require.NoError(t, cache.Set(ctx, "forecast:2", []byte("2"), time.Minute))

		removed, err := cache.DeletePrefix(ctx, "forecast:")
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		exists, err := cache.Exists(ctx, "forecast:1")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("Clear", func(t *testing.T) {
		require.NoError(t, cache.Clear(ctx))
		assert.Equal(t, 0, cache.Len())
	})
}

func TestMemoryCacheProvider_ExpiredEntriesAreDropped(t *testing.T) {
	cache := NewMemoryCacheProvider(nil)
	now := time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))

	now = now.Add(2 * time.Minute)

	exists, err := cache.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = cache.Get(ctx, "k")
	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryCacheProvider_ValidationErrors(t *testing.T) {
	cache := NewMemoryCacheProvider(nil)
	ctx := context.Background()

	_, err := cache.Get(ctx, "")
	assert.True(t, errors.IsValidationError(err))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", nil, time.Minute)))
	assert.True(t, errors.IsValidationError(cache.Set(ctx, "k", []byte("v"), -time.Second)))
	assert.True(t, errors.IsValidationError(cache.Delete(ctx, "")))
}

func TestMemoryCacheProvider_Metrics(t *testing.T) {
	metrics := mocks.NewMetricsRecorder(t)
	metrics.EXPECT().RecordCacheHit("memory").Once()
	metrics.EXPECT().RecordCacheMiss("memory").Once()

	cache := NewMemoryCacheProvider(metrics)
	ctx := context.Background()

	_, _ = cache.Get(ctx, "missing")
	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	_, _ = cache.Get(ctx, "k")

	stats := cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 0.5, stats.HitRatio)
}

func TestMemoryCacheProvider_InterfaceCompliance(t *testing.T) {
	var _ ports.CacheProvider = (*MemoryCacheProvider)(nil)
	var _ ports.CacheMetrics = (*MemoryCacheProvider)(nil)
}
