package todo

import (
	"context"
	"sync"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// ListView is the locally displayed list a toggle is applied to before the
// store confirms it.
type ListView struct {
	mu    sync.RWMutex
	items []Todo
}

// NewListView copies todos into a new view
func NewListView(todos []*Todo) *ListView {
	items := make([]Todo, 0, len(todos))
	for _, t := range todos {
		items = append(items, *t)
	}
	return &ListView{items: items}
}

// Items returns a snapshot of the view
func (v *ListView) Items() []Todo {
	v.mu.RLock()
	defer v.mu.RUnlock()

	items := make([]Todo, len(v.items))
	copy(items, v.items)
	return items
}

// Find returns a copy of the item with the given ID
func (v *ListView) Find(id string) (Todo, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	for _, item := range v.items {
		if item.ID == id {
			return item, true
		}
	}
	return Todo{}, false
}

// setStatus replaces the status of an item and returns the previous one
func (v *ListView) setStatus(id string, status Status) (Status, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.items {
		if v.items[i].ID == id {
			previous := v.items[i].Status
			v.items[i].Status = status
			return previous, true
		}
	}
	return StatusUnknown, false
}

func (v *ListView) replace(todo *Todo) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.items {
		if v.items[i].ID == todo.ID {
			v.items[i] = *todo
			return
		}
	}
}

// ToggleStatus flips the status of a todo in the view immediately, then asks
// the store to persist it. On failure the view is reverted and the error returned.
func (uc *UseCase) ToggleStatus(ctx context.Context, view *ListView, id string) (*Todo, error) {
	current, ok := view.Find(id)
	if !ok {
		return nil, errors.NewNotFoundError("todo not found in view")
	}

	next := current.Status.Toggled()
	previous, _ := view.setStatus(id, next)

	updated, err := uc.SetStatus(ctx, id, next)
	if err != nil {
		view.setStatus(id, previous)
		uc.logger.Warn("Reverted optimistic status toggle",
			ports.F("id", id),
			ports.F("status", previous.String()),
			ports.F("error", err))
		return nil, err
	}

	view.replace(updated)
	return updated, nil
}
