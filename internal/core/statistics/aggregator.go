// Package statistics summarizes todo lists into dashboard snapshots and
// per-date calendar buckets.
package statistics

import (
	"time"

	"weathertodo.app/internal/core/todo"
	"weathertodo.app/pkg/validation"
)

// DateStats is the per-date bucket for one calendar date.
// Overdue is only filled by Calculate.
type DateStats struct {
	Total     int
	Completed int
	Due       int
	Overdue   int
}

// Snapshot is an immutable dashboard summary. Its maps must not be modified.
type Snapshot struct {
	Total          int
	Completed      int
	Pending        int
	Overdue        int
	Today          int
	ThisWeek       int
	ThisMonth      int
	CompletionRate float64
	ByDate         map[string]DateStats
	ByPriority     map[string]int
	ByCategory     map[string]int
	ComputedAt     time.Time
}

// TrendPoint is the completion count for one day of a trend window
type TrendPoint struct {
	Date      string
	Completed int
	Total     int
}

// Calculate summarizes todos in a single pass relative to now.
// The today, week and month counters are cumulative: a todo due today also
// counts toward the week and the month.
func Calculate(todos []*todo.Todo, now time.Time) Snapshot {
	today := midnight(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	snapshot := Snapshot{
		Total:      len(todos),
		ByDate:     make(map[string]DateStats),
		ByPriority: make(map[string]int),
		ByCategory: make(map[string]int),
		ComputedAt: now,
	}

	for _, t := range todos {
		due := dueDate(t, today.Location())
		key := t.DateKey()
		bucket := snapshot.ByDate[key]
		bucket.Total++

		if t.IsCompleted() {
			snapshot.Completed++
			bucket.Completed++
		} else {
			snapshot.Pending++
			bucket.Due++
			if due.Before(today) {
				snapshot.Overdue++
				bucket.Overdue++
			}
		}
		snapshot.ByDate[key] = bucket

		if !due.Before(today) && due.Before(tomorrow) {
			snapshot.Today++
		}
		if !due.Before(weekStart) {
			snapshot.ThisWeek++
		}
		if !due.Before(monthStart) {
			snapshot.ThisMonth++
		}

		if t.Priority.IsValid() {
			snapshot.ByPriority[t.Priority.String()]++
		}
		if t.Category != "" {
			snapshot.ByCategory[t.Category]++
		}
	}

	if snapshot.Total > 0 {
		snapshot.CompletionRate = float64(snapshot.Completed) / float64(snapshot.Total) * 100
	}

	return snapshot
}

// GroupByDate buckets todos by date key without overdue tracking
func GroupByDate(todos []*todo.Todo) map[string]DateStats {
	grouped := make(map[string]DateStats)
	for _, t := range todos {
		key := t.DateKey()
		bucket := grouped[key]
		bucket.Total++
		if t.IsCompleted() {
			bucket.Completed++
		} else {
			bucket.Due++
		}
		grouped[key] = bucket
	}
	return grouped
}

// Trend counts todos per day for the days ending at today, oldest first.
// Days without todos are present with zero counts.
func Trend(todos []*todo.Todo, today time.Time, days int) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}

	start := midnight(today).AddDate(0, 0, -(days - 1))
	points := make([]TrendPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		key := start.AddDate(0, 0, i).Format(validation.DateLayout)
		points[i] = TrendPoint{Date: key}
		index[key] = i
	}

	for _, t := range todos {
		i, ok := index[t.DateKey()]
		if !ok {
			continue
		}
		points[i].Total++
		if t.IsCompleted() {
			points[i].Completed++
		}
	}
	return points
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// dueDate places the todo's calendar date at midnight in loc
func dueDate(t *todo.Todo, loc *time.Location) time.Time {
	y, m, d := t.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// storeDay converts a local calendar date to the UTC midnight stored on todos
func storeDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
