package ports

import (
	"context"
	"fmt"
	"strings"
)

// Change kinds appended to todo document event names
const (
	ChangeCreate = "create"
	ChangeUpdate = "update"
	ChangeDelete = "delete"
)

// ChangeEvent is a realtime notification about a todo document.
// Events follow the "todos.documents.<id>.<kind>" naming convention.
type ChangeEvent struct {
	Events  []string `json:"events"`
	Payload TodoData `json:"payload"`
}

// NewChangeEvent builds an event for a single change kind
func NewChangeEvent(kind string, todo TodoData) ChangeEvent {
	return ChangeEvent{
		Events: []string{
			fmt.Sprintf("todos.documents.%s.%s", todo.ID, kind),
			fmt.Sprintf("todos.documents.*.%s", kind),
		},
		Payload: todo,
	}
}

// Created reports whether the event carries a create notification
func (e ChangeEvent) Created() bool { return e.has(ChangeCreate) }

// Updated reports whether the event carries an update notification
func (e ChangeEvent) Updated() bool { return e.has(ChangeUpdate) }

// Deleted reports whether the event carries a delete notification
func (e ChangeEvent) Deleted() bool { return e.has(ChangeDelete) }

func (e ChangeEvent) has(kind string) bool {
	for _, name := range e.Events {
		if strings.HasSuffix(name, "."+kind) {
			return true
		}
	}
	return false
}

// ChangeHandler receives change events
type ChangeHandler func(event ChangeEvent)

// TodoChangeFeed defines the contract for realtime todo notifications
type TodoChangeFeed interface {
	Publish(ctx context.Context, event ChangeEvent) error
	Subscribe(ctx context.Context, handler ChangeHandler) (unsubscribe func(), err error)
}
