package external

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-redis/redis/v8"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// RedisChangeFeedAdapter implements TodoChangeFeed port over Redis pub/sub
type RedisChangeFeedAdapter struct {
	client  *redis.Client
	channel string
	logger  ports.Logger
}

// NewRedisChangeFeedAdapter creates a change feed publishing on channel
func NewRedisChangeFeedAdapter(client *redis.Client, channel string, logger ports.Logger) (*RedisChangeFeedAdapter, error) {
	if client == nil {
		return nil, errors.NewConfigurationError("redis client cannot be nil", nil)
	}
	if channel == "" {
		return nil, errors.NewConfigurationError("change feed channel cannot be empty", nil)
	}

	return &RedisChangeFeedAdapter{
		client:  client,
		channel: channel,
		logger:  logger,
	}, nil
}

// Publish sends event to every subscriber of the channel
func (f *RedisChangeFeedAdapter) Publish(ctx context.Context, event ports.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errors.NewValidationError("failed to encode change event")
	}

	if err := f.client.Publish(ctx, f.channel, payload).Err(); err != nil {
		return errors.NewExternalAPIError("failed to publish change event", err)
	}
	return nil
}

// Subscribe delivers events to handler until unsubscribe is called or ctx ends.
// The subscription is confirmed before Subscribe returns.
func (f *RedisChangeFeedAdapter) Subscribe(ctx context.Context, handler ports.ChangeHandler) (func(), error) {
	if handler == nil {
		return nil, errors.NewValidationError("change handler cannot be nil")
	}

	pubsub := f.client.Subscribe(ctx, f.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.NewExternalAPIError("failed to subscribe to change feed", err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	messages := pubsub.Channel()

	go func() {
		defer close(done)
		for {
			select {
			case <-subCtx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				f.dispatch(msg.Payload, handler)
			}
		}
	}()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			cancel()
			if err := pubsub.Close(); err != nil && f.logger != nil {
				f.logger.Warn("Failed to close change feed subscription", ports.F("error", err))
			}
			<-done
		})
	}
	return unsubscribe, nil
}

func (f *RedisChangeFeedAdapter) dispatch(payload string, handler ports.ChangeHandler) {
	var event ports.ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		if f.logger != nil {
			f.logger.Warn("Dropping malformed change event", ports.F("channel", f.channel), ports.F("error", err))
		}
		return
	}
	handler(event)
}
