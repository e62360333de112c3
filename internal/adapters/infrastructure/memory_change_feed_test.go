package infrastructure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

var _ ports.TodoChangeFeed = (*MemoryChangeFeed)(nil)

func TestMemoryChangeFeed_FanOut(t *testing.T) {
	feed := NewMemoryChangeFeed()
	ctx := context.Background()

	var first, second []ports.ChangeEvent
	unsubFirst, err := feed.Subscribe(ctx, func(e ports.ChangeEvent) { first = append(first, e) })
	require.NoError(t, err)
	unsubSecond, err := feed.Subscribe(ctx, func(e ports.ChangeEvent) { second = append(second, e) })
	require.NoError(t, err)
	defer unsubSecond()

	event := ports.NewChangeEvent(ports.ChangeUpdate, ports.TodoData{ID: "todo-1", UserID: "user-1"})
	require.NoError(t, feed.Publish(ctx, event))

	unsubFirst()
	require.NoError(t, feed.Publish(ctx, event))

	assert.Len(t, first, 1)
	assert.Len(t, second, 2)
	assert.True(t, second[0].Updated())
	assert.Equal(t, 1, feed.Subscribers())
}

func TestMemoryChangeFeed_ContextCancellationUnsubscribes(t *testing.T) {
	feed := NewMemoryChangeFeed()
	ctx, cancel := context.WithCancel(context.Background())

	_, err := feed.Subscribe(ctx, func(ports.ChangeEvent) {})
	require.NoError(t, err)
	require.Equal(t, 1, feed.Subscribers())

	cancel()

	assert.Eventually(t, func() bool { return feed.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestMemoryChangeFeed_Errors(t *testing.T) {
	feed := NewMemoryChangeFeed()

	_, err := feed.Subscribe(context.Background(), nil)
	assert.True(t, errors.IsValidationError(err))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, feed.Publish(ctx, ports.ChangeEvent{}), context.Canceled)
}

func TestMemoryChangeFeed_UnsubscribeTwice(t *testing.T) {
	feed := NewMemoryChangeFeed()

	unsubscribe, err := feed.Subscribe(context.Background(), func(ports.ChangeEvent) {})
	require.NoError(t, err)

	unsubscribe()
	assert.NotPanics(t, unsubscribe)
	assert.Equal(t, 0, feed.Subscribers())
}
