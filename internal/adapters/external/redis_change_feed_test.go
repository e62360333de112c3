package external

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

func newTestChangeFeed(t *testing.T) (*RedisChangeFeedAdapter, *redis.Client) {
	t.Helper()

	_, redisConfig := setupMockRedis(t)
	client, err := NewRedisClient(redisConfig)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	feed, err := NewRedisChangeFeedAdapter(client, "todos", setupLoggerMock(t))
	require.NoError(t, err)
	return feed, client
}

func TestNewRedisChangeFeedAdapter_Validation(t *testing.T) {
	_, err := NewRedisChangeFeedAdapter(nil, "todos", nil)
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewRedisChangeFeedAdapter(redis.NewClient(&redis.Options{}), "", nil)
	assert.True(t, errors.IsConfigurationError(err))
}

func TestRedisChangeFeedAdapter_PublishSubscribe(t *testing.T) {
	feed, _ := newTestChangeFeed(t)
	ctx := context.Background()

	received := make(chan ports.ChangeEvent, 1)
	unsubscribe, err := feed.Subscribe(ctx, func(event ports.ChangeEvent) {
		received <- event
	})
	require.NoError(t, err)
	defer unsubscribe()

	todo := ports.TodoData{ID: "todo-1", UserID: "user-1", Title: "Buy milk", Status: "pending"}
	require.NoError(t, feed.Publish(ctx, ports.NewChangeEvent(ports.ChangeCreate, todo)))

	select {
	case event := <-received:
		assert.True(t, event.Created())
		assert.Equal(t, "todo-1", event.Payload.ID)
		assert.Contains(t, event.Events, "todos.documents.todo-1.create")
	case <-time.After(2 * time.Second):
		t.Fatal("change event was not delivered")
	}
}

func TestRedisChangeFeedAdapter_MalformedMessageIsDropped(t *testing.T) {
	feed, client := newTestChangeFeed(t)
	ctx := context.Background()

	received := make(chan ports.ChangeEvent, 2)
	unsubscribe, err := feed.Subscribe(ctx, func(event ports.ChangeEvent) {
		received <- event
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.NoError(t, client.Publish(ctx, "todos", "{broken").Err())
	require.NoError(t, feed.Publish(ctx, ports.NewChangeEvent(ports.ChangeDelete, ports.TodoData{ID: "todo-2"})))

	select {
	case event := <-received:
		assert.True(t, event.Deleted())
		assert.Equal(t, "todo-2", event.Payload.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("change event was not delivered")
	}
}

func TestRedisChangeFeedAdapter_UnsubscribeIsIdempotent(t *testing.T) {
	feed, _ := newTestChangeFeed(t)

	unsubscribe, err := feed.Subscribe(context.Background(), func(ports.ChangeEvent) {})
	require.NoError(t, err)

	unsubscribe()
	assert.NotPanics(t, unsubscribe)
}

func TestRedisChangeFeedAdapter_NilHandler(t *testing.T) {
	feed, _ := newTestChangeFeed(t)

	_, err := feed.Subscribe(context.Background(), nil)

	assert.True(t, errors.IsValidationError(err))
}
