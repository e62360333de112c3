package todo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

type UseCase struct {
	repo      ports.TodoRepository
	feed      ports.TodoChangeFeed
	listeners []ports.ChangeHandler
	logger    ports.Logger
	metrics   ports.MetricsRecorder
}

type UseCaseDependencies struct {
	Repository ports.TodoRepository
	ChangeFeed ports.TodoChangeFeed
	// Listeners are called in-process after every successful write,
	// whether or not the change feed accepted the event.
	Listeners []ports.ChangeHandler
	Logger    ports.Logger
	Metrics   ports.MetricsRecorder
}

// CreateParams holds the fields accepted when creating a todo.
// Zero Status and Priority fall back to pending and medium.
type CreateParams struct {
	Title    string
	Details  string
	Status   Status
	Priority Priority
	Category string
	Date     time.Time
}

// UpdateParams holds a partial update. Nil fields are left unchanged.
type UpdateParams struct {
	Title    *string
	Details  *string
	Status   *Status
	Priority *Priority
	Category *string
	Date     *time.Time
}

// ListParams narrows a todo listing
type ListParams struct {
	UserID string
	Status Status
	Date   *time.Time
	Start  *time.Time
	End    *time.Time
	Limit  int
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("todo repository is required")
	}
	if deps.ChangeFeed == nil {
		return nil, errors.NewValidationError("change feed is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		repo:      deps.Repository,
		feed:      deps.ChangeFeed,
		listeners: deps.Listeners,
		logger:    deps.Logger,
		metrics:   deps.Metrics,
	}, nil
}

func (uc *UseCase) validateCreateParams(userID string, params CreateParams) error {
	if !validation.IsNotEmpty(userID) {
		return errors.NewValidationError("user is required")
	}
	if !validation.IsNotEmpty(params.Title) {
		return errors.NewValidationError("title is required")
	}
	if params.Date.IsZero() {
		return errors.NewValidationError("date is required")
	}
	if params.Status != StatusUnknown && !params.Status.IsValid() {
		return errors.NewValidationError("invalid status")
	}
	if params.Priority != PriorityNone && !params.Priority.IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}

func (uc *UseCase) Create(ctx context.Context, userID string, params CreateParams) (*Todo, error) {
	if err := uc.validateCreateParams(userID, params); err != nil {
		return nil, err
	}

	todo := NewTodo(userID, params)
	if err := uc.repo.Create(ctx, todo.ToData()); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}

	uc.logger.Debug("Todo created",
		ports.F("id", todo.ID),
		ports.F("user_id", todo.UserID),
		ports.F("date", todo.DateKey()))

	uc.publish(ctx, ports.ChangeCreate, todo)
	return todo, nil
}

func (uc *UseCase) Update(ctx context.Context, id string, params UpdateParams) (*Todo, error) {
	if !validation.IsNotEmpty(id) {
		return nil, errors.NewValidationError("id is required")
	}
	if err := params.validate(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo %s: %w", id, err)
	}

	todo := FromData(existing)
	params.applyTo(todo)
	todo.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, todo.ToData()); err != nil {
		return nil, fmt.Errorf("update todo %s: %w", id, err)
	}

	uc.logger.Debug("Todo updated",
		ports.F("id", todo.ID),
		ports.F("status", todo.Status.String()))

	uc.publish(ctx, ports.ChangeUpdate, todo)
	return todo, nil
}

// SetStatus updates only the status of a todo
func (uc *UseCase) SetStatus(ctx context.Context, id string, status Status) (*Todo, error) {
	return uc.Update(ctx, id, UpdateParams{Status: &status})
}

func (uc *UseCase) Get(ctx context.Context, id string) (*Todo, error) {
	if !validation.IsNotEmpty(id) {
		return nil, errors.NewValidationError("id is required")
	}

	data, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get todo %s: %w", id, err)
	}
	return FromData(data), nil
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if !validation.IsNotEmpty(id) {
		return errors.NewValidationError("id is required")
	}

	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("get todo %s: %w", id, err)
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}

	uc.logger.Debug("Todo deleted", ports.F("id", id))
	uc.publish(ctx, ports.ChangeDelete, FromData(existing))
	return nil
}

func (uc *UseCase) List(ctx context.Context, params ListParams) ([]*Todo, int64, error) {
	filter := ports.TodoFilter{
		UserID:   strings.TrimSpace(params.UserID),
		Date:     params.Date,
		DateFrom: params.Start,
		DateTo:   params.End,
		Limit:    params.Limit,
	}
	if params.Status.IsValid() {
		filter.Status = params.Status.String()
	}

	data, total, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list todos: %w", err)
	}
	return FromDataList(data), total, nil
}

// ListByDate returns the todos of a user due on the given calendar date
func (uc *UseCase) ListByDate(ctx context.Context, userID string, date time.Time) ([]*Todo, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	if date.IsZero() {
		return nil, errors.NewValidationError("date is required")
	}

	day := DateOnly(date)
	todos, _, err := uc.List(ctx, ListParams{UserID: userID, Date: &day})
	if err != nil {
		return nil, err
	}
	return todos, nil
}

// publish notifies local listeners and feed subscribers. The write has
// already succeeded, so feed failures are only logged.
func (uc *UseCase) publish(ctx context.Context, kind string, todo *Todo) {
	event := ports.NewChangeEvent(kind, *todo.ToData())
	for _, listener := range uc.listeners {
		listener(event)
	}
	if err := uc.feed.Publish(ctx, event); err != nil {
		uc.logger.Warn("Failed to publish todo change",
			ports.F("id", todo.ID),
			ports.F("kind", kind),
			ports.F("error", err))
		return
	}
	uc.metrics.RecordChangeEvent(kind)
}

func (p UpdateParams) validate() error {
	if p.Title != nil && !validation.IsNotEmpty(*p.Title) {
		return errors.NewValidationError("title is required")
	}
	if p.Date != nil && p.Date.IsZero() {
		return errors.NewValidationError("date is required")
	}
	if p.Status != nil && !p.Status.IsValid() {
		return errors.NewValidationError("invalid status")
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return errors.NewValidationError("invalid priority")
	}
	return nil
}

func (p UpdateParams) applyTo(todo *Todo) {
	if p.Title != nil {
		todo.Title = strings.TrimSpace(*p.Title)
	}
	if p.Details != nil {
		todo.Details = strings.TrimSpace(*p.Details)
	}
	if p.Status != nil {
		todo.Status = *p.Status
	}
	if p.Priority != nil {
		todo.Priority = *p.Priority
	}
	if p.Category != nil {
		todo.Category = strings.TrimSpace(*p.Category)
	}
	if p.Date != nil {
		todo.Date = DateOnly(*p.Date)
	}
}
