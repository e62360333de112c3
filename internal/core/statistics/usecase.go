package statistics

import (
	"context"
	"fmt"
	"sync"
	"time"

	"weathertodo.app/internal/core/todo"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

// DefaultMaxTrendDays bounds trend queries when no limit is configured
const DefaultMaxTrendDays = 365

type UseCase struct {
	repo    ports.TodoRepository
	feed    ports.TodoChangeFeed
	config  ports.ConfigProvider
	logger  ports.Logger
	metrics ports.MetricsRecorder
	now     func() time.Time

	mu        sync.Mutex
	snapshots map[string]Snapshot
	// generations is bumped per user on every invalidation. epoch is bumped
	// when an event cannot be attributed to a user.
	generations map[string]uint64
	epoch       uint64
}

type UseCaseDependencies struct {
	Repository ports.TodoRepository
	ChangeFeed ports.TodoChangeFeed
	Config     ports.ConfigProvider
	Logger     ports.Logger
	Metrics    ports.MetricsRecorder
	// Now defaults to time.Now
	Now func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("todo repository is required")
	}
	if deps.ChangeFeed == nil {
		return nil, errors.NewValidationError("change feed is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		repo:        deps.Repository,
		feed:        deps.ChangeFeed,
		config:      deps.Config,
		logger:      deps.Logger,
		metrics:     deps.Metrics,
		now:         now,
		snapshots:   make(map[string]Snapshot),
		generations: make(map[string]uint64),
	}, nil
}

// GetDashboardStats returns the user's snapshot, recomputing it when a change
// invalidated it or it was computed on an earlier day.
func (uc *UseCase) GetDashboardStats(ctx context.Context, userID string) (Snapshot, error) {
	if !validation.IsNotEmpty(userID) {
		return Snapshot{}, errors.NewValidationError("user is required")
	}

	now := uc.now()
	cfg := uc.config.GetStatisticsConfig()

	uc.mu.Lock()
	cached, ok := uc.snapshots[userID]
	generation, epoch := uc.generations[userID], uc.epoch
	uc.mu.Unlock()

	if ok && fresh(cached, now, cfg.SnapshotMaxAge) {
		uc.logger.Debug("Dashboard snapshot served from cache", ports.F("user_id", userID))
		return cached, nil
	}

	limit := cfg.DashboardLimit
	data, _, err := uc.repo.List(ctx, ports.TodoFilter{UserID: userID, Limit: limit})
	if err != nil {
		uc.logger.Error("Failed to fetch todos for dashboard",
			ports.F("user_id", userID),
			ports.F("error", err))
		return Snapshot{}, fmt.Errorf("fetch todos for dashboard: %w", err)
	}

	snapshot := Calculate(todo.FromDataList(data), now)
	uc.metrics.RecordStatisticsComputation("dashboard")

	uc.mu.Lock()
	if uc.generations[userID] == generation && uc.epoch == epoch {
		uc.snapshots[userID] = snapshot
	} else {
		uc.logger.Debug("Discarding stale dashboard snapshot", ports.F("user_id", userID))
	}
	uc.mu.Unlock()

	uc.logger.Debug("Dashboard snapshot computed",
		ports.F("user_id", userID),
		ports.F("total", snapshot.Total),
		ports.F("completion_rate", snapshot.CompletionRate))
	return snapshot, nil
}

// fresh reports whether a cached snapshot may still be served. Snapshots
// expire at the end of their day and, when maxAge is set, after maxAge.
func fresh(snap Snapshot, now time.Time, maxAge time.Duration) bool {
	if !sameDay(snap.ComputedAt, now) {
		return false
	}
	return maxAge <= 0 || now.Sub(snap.ComputedAt) < maxAge
}

// Invalidate drops the cached snapshot of a user, or of every user when userID is empty
func (uc *UseCase) Invalidate(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if userID == "" {
		uc.epoch++
		uc.snapshots = make(map[string]Snapshot)
		return
	}
	uc.generations[userID]++
	delete(uc.snapshots, userID)
}

// HandleChange invalidates the snapshot of the user owning the changed todo
func (uc *UseCase) HandleChange(event ports.ChangeEvent) {
	if !event.Created() && !event.Updated() && !event.Deleted() {
		return
	}
	uc.Invalidate(event.Payload.UserID)
}

// Watch subscribes to todo changes. The returned func unsubscribes.
func (uc *UseCase) Watch(ctx context.Context) (func(), error) {
	unsubscribe, err := uc.feed.Subscribe(ctx, uc.HandleChange)
	if err != nil {
		return nil, fmt.Errorf("subscribe to todo changes: %w", err)
	}
	return unsubscribe, nil
}

// GetTodosByDateRange buckets the user's todos dated within [start, end]
func (uc *UseCase) GetTodosByDateRange(ctx context.Context, userID string, start, end time.Time) (map[string]DateStats, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	if end.Before(start) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	from, to := storeDay(start), storeDay(end)
	limit := uc.config.GetStatisticsConfig().RangeLimit
	data, _, err := uc.repo.List(ctx, ports.TodoFilter{
		UserID:   userID,
		DateFrom: &from,
		DateTo:   &to,
		Limit:    limit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch todos by date range: %w", err)
	}

	uc.metrics.RecordStatisticsComputation("range")
	return GroupByDate(todo.FromDataList(data)), nil
}

// GetTodosForMonth buckets the user's todos for a calendar month
func (uc *UseCase) GetTodosForMonth(ctx context.Context, userID string, year int, month time.Month) (map[string]DateStats, error) {
	if month < time.January || month > time.December {
		return nil, errors.NewValidationError("month must be between 1 and 12")
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return uc.GetTodosByDateRange(ctx, userID, first, last)
}

// GetCompletionTrend returns per-day completion counts for the last days days.
// A non-positive days uses the configured default.
func (uc *UseCase) GetCompletionTrend(ctx context.Context, userID string, days int) ([]TrendPoint, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	cfg := uc.config.GetStatisticsConfig()
	if days <= 0 {
		days = cfg.TrendDays
	}
	maxDays := cfg.MaxTrendDays
	if maxDays <= 0 {
		maxDays = DefaultMaxTrendDays
	}
	if days > maxDays {
		return nil, errors.NewValidationError(fmt.Sprintf("days must not exceed %d", maxDays))
	}

	now := uc.now()
	to := storeDay(now)
	from := to.AddDate(0, 0, -(days - 1))
	data, _, err := uc.repo.List(ctx, ports.TodoFilter{
		UserID:   userID,
		DateFrom: &from,
		DateTo:   &to,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch todos for trend: %w", err)
	}

	uc.metrics.RecordStatisticsComputation("trend")
	return Trend(todo.FromDataList(data), now, days), nil
}

// GetOverdueCount counts pending todos dated before today
func (uc *UseCase) GetOverdueCount(ctx context.Context, userID string) (int64, error) {
	if !validation.IsNotEmpty(userID) {
		return 0, errors.NewValidationError("user is required")
	}

	today := storeDay(uc.now())
	_, total, err := uc.repo.List(ctx, ports.TodoFilter{
		UserID:     userID,
		Status:     todo.StatusPending.String(),
		DateBefore: &today,
	})
	if err != nil {
		return 0, fmt.Errorf("count overdue todos: %w", err)
	}
	return total, nil
}

// GetTodayTodos returns the user's todos dated today
func (uc *UseCase) GetTodayTodos(ctx context.Context, userID string) ([]*todo.Todo, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}

	today := storeDay(uc.now())
	data, _, err := uc.repo.List(ctx, ports.TodoFilter{UserID: userID, Date: &today})
	if err != nil {
		return nil, fmt.Errorf("fetch today's todos: %w", err)
	}
	return todo.FromDataList(data), nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
