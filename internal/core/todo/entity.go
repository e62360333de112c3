package todo

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/validation"
)

// Todo represents a single dated task owned by a user
type Todo struct {
	ID        string
	UserID    string
	Title     string
	Details   string
	Status    Status
	Priority  Priority
	Category  string
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status represents the completion state of a todo
type Status int

const (
	StatusUnknown Status = iota
	StatusPending
	StatusCompleted
)

// String returns the string representation of status
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// IsValid checks if the status value is valid
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Toggled returns the opposite status
func (s Status) Toggled() Status {
	if s == StatusCompleted {
		return StatusPending
	}
	return StatusCompleted
}

// StatusFromString converts string to Status enum
func StatusFromString(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pending":
		return StatusPending
	case "completed":
		return StatusCompleted
	default:
		return StatusUnknown
	}
}

// UnmarshalJSON implements json.Unmarshaler interface
func (s *Status) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = StatusFromString(str)
	return nil
}

// MarshalJSON implements json.Marshaler interface
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalText implements encoding.TextUnmarshaler for form parsing
func (s *Status) UnmarshalText(text []byte) error {
	*s = StatusFromString(string(text))
	return nil
}

// Priority represents todo urgency. PriorityNone marks records without one.
type Priority int

const (
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

// String returns the string representation of priority
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return ""
	}
}

// IsValid checks if the priority value is one of low, medium, high
func (p Priority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// PriorityFromString converts string to Priority enum
func PriorityFromString(s string) Priority {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return PriorityLow
	case "medium":
		return PriorityMedium
	case "high":
		return PriorityHigh
	default:
		return PriorityNone
	}
}

// UnmarshalJSON implements json.Unmarshaler interface
func (p *Priority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = PriorityFromString(str)
	return nil
}

// MarshalJSON implements json.Marshaler interface
func (p Priority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalText implements encoding.TextUnmarshaler for form parsing
func (p *Priority) UnmarshalText(text []byte) error {
	*p = PriorityFromString(string(text))
	return nil
}

// NewTodo creates a todo with a generated ID and default status and priority
func NewTodo(userID string, params CreateParams) *Todo {
	now := time.Now()
	todo := &Todo{
		ID:        uuid.New().String(),
		UserID:    strings.TrimSpace(userID),
		Title:     strings.TrimSpace(params.Title),
		Details:   strings.TrimSpace(params.Details),
		Status:    params.Status,
		Priority:  params.Priority,
		Category:  strings.TrimSpace(params.Category),
		Date:      DateOnly(params.Date),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !todo.Status.IsValid() {
		todo.Status = StatusPending
	}
	if !todo.Priority.IsValid() {
		todo.Priority = PriorityMedium
	}
	return todo
}

// DateKey returns the YYYY-MM-DD component used for calendar grouping
func (t *Todo) DateKey() string {
	return t.Date.Format(validation.DateLayout)
}

// IsCompleted checks if the todo is completed
func (t *Todo) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsValid validates todo data
func (t *Todo) IsValid() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title is required")
	}
	if t.Date.IsZero() {
		return errors.New("date is required")
	}
	if !t.Status.IsValid() {
		return errors.New("status must be pending or completed")
	}
	if t.Priority != PriorityNone && !t.Priority.IsValid() {
		return errors.New("priority must be low, medium or high")
	}
	return nil
}

// DateOnly drops the time-of-day, keeping the calendar date in UTC
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date or an RFC 3339 timestamp, keeping only its date
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(validation.DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errors.New("date must be YYYY-MM-DD or RFC 3339")
	}
	return DateOnly(t), nil
}

// FromData converts a stored document into a todo
func FromData(data *ports.TodoData) *Todo {
	return &Todo{
		ID:        data.ID,
		UserID:    data.UserID,
		Title:     data.Title,
		Details:   data.Details,
		Status:    StatusFromString(data.Status),
		Priority:  PriorityFromString(data.Priority),
		Category:  data.Category,
		Date:      DateOnly(data.Date),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// FromDataList converts stored documents into todos
func FromDataList(data []*ports.TodoData) []*Todo {
	todos := make([]*Todo, 0, len(data))
	for _, d := range data {
		todos = append(todos, FromData(d))
	}
	return todos
}

// ToData converts a todo into its stored document form
func (t *Todo) ToData() *ports.TodoData {
	return &ports.TodoData{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Details:   t.Details,
		Status:    t.Status.String(),
		Priority:  t.Priority.String(),
		Category:  t.Category,
		Date:      t.Date,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
