package infrastructure

import (
	"context"
	"sync"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// MemoryChangeFeed implements the TodoChangeFeed port inside one process.
// Handlers run synchronously on the publishing goroutine.
type MemoryChangeFeed struct {
	mutex    sync.RWMutex
	nextID   int
	handlers map[int]ports.ChangeHandler
}

// NewMemoryChangeFeed creates an empty feed
func NewMemoryChangeFeed() *MemoryChangeFeed {
	return &MemoryChangeFeed{
		handlers: make(map[int]ports.ChangeHandler),
	}
}

func (f *MemoryChangeFeed) Publish(ctx context.Context, event ports.ChangeEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mutex.RLock()
	handlers := make([]ports.ChangeHandler, 0, len(f.handlers))
	for _, h := range f.handlers {
		handlers = append(handlers, h)
	}
	f.mutex.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

// Subscribe registers handler until unsubscribe is called or ctx ends
func (f *MemoryChangeFeed) Subscribe(ctx context.Context, handler ports.ChangeHandler) (func(), error) {
	if handler == nil {
		return nil, errors.NewValidationError("change handler cannot be nil")
	}

	f.mutex.Lock()
	id := f.nextID
	f.nextID++
	f.handlers[id] = handler
	f.mutex.Unlock()

	stop := make(chan struct{})
	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			close(stop)
			f.mutex.Lock()
			delete(f.handlers, id)
			f.mutex.Unlock()
		})
	}

	go func() {
		select {
		case <-ctx.Done():
			unsubscribe()
		case <-stop:
		}
	}()

	return unsubscribe, nil
}

// Subscribers reports how many handlers are registered
func (f *MemoryChangeFeed) Subscribers() int {
	f.mutex.RLock()
	defer f.mutex.RUnlock()
	return len(f.handlers)
}
