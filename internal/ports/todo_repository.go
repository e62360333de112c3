package ports

import (
	"context"
	"time"
)

// TodoData represents a todo document for persistence
type TodoData struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Details   string    `json:"details,omitempty"`
	Status    string    `json:"status"`
	Priority  string    `json:"priority,omitempty"`
	Category  string    `json:"category,omitempty"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoFilter narrows a todo listing. Zero values are ignored.
// DateFrom is inclusive (>=), DateTo is inclusive (<=), DateBefore is exclusive (<).
type TodoFilter struct {
	UserID     string
	Status     string
	Date       *time.Time
	DateFrom   *time.Time
	DateTo     *time.Time
	DateBefore *time.Time
	Limit      int
}

// TodoRepository defines the contract for the todo document store
type TodoRepository interface {
	Create(ctx context.Context, todo *TodoData) error
	Update(ctx context.Context, todo *TodoData) error
	Get(ctx context.Context, id string) (*TodoData, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter TodoFilter) ([]*TodoData, int64, error)
}
