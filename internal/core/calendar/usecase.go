package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"weathertodo.app/internal/core/statistics"
	"weathertodo.app/internal/core/weather"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

// WeatherAlert is shown when the month view is rendered without weather
const WeatherAlert = "Failed to fetch weather data"

// TodoSource provides per-date todo buckets for a month
type TodoSource interface {
	GetTodosForMonth(ctx context.Context, userID string, year int, month time.Month) (map[string]statistics.DateStats, error)
}

// WeatherSource provides the forecast window keyed by date
type WeatherSource interface {
	GetWeatherForMonth(ctx context.Context, coords ports.Coordinates) (weather.WeatherMap, error)
}

// DayCell is one day of the month grid
type DayCell struct {
	Date    string
	Day     int
	IsToday bool
	Todos   statistics.DateStats
	Weather *weather.DayWeather
}

// Month is a rendered month grid. LeadingBlanks is the weekday of the first
// day with Sunday as zero.
type Month struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Days          []DayCell
	Alert         string
}

type UseCase struct {
	todos   TodoSource
	weather WeatherSource
	logger  ports.Logger
	now     func() time.Time
}

type UseCaseDependencies struct {
	Todos   TodoSource
	Weather WeatherSource
	Logger  ports.Logger
	// Now defaults to time.Now
	Now func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Todos == nil {
		return nil, errors.NewValidationError("todo source is required")
	}
	if deps.Weather == nil {
		return nil, errors.NewValidationError("weather source is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		todos:   deps.Todos,
		weather: deps.Weather,
		logger:  deps.Logger,
		now:     now,
	}, nil
}

// BuildMonth fetches the month's todo buckets and, when coords is set, the
// forecast window concurrently and merges them by date key. A weather failure
// degrades to cells without weather and an alert; a todo failure is returned.
func (uc *UseCase) BuildMonth(ctx context.Context, userID string, year int, month time.Month, coords *ports.Coordinates) (*Month, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	if month < time.January || month > time.December {
		return nil, errors.NewValidationError("month must be between 1 and 12")
	}

	var (
		buckets    map[string]statistics.DateStats
		weatherMap weather.WeatherMap
		weatherErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		buckets, err = uc.todos.GetTodosForMonth(gctx, userID, year, month)
		if err != nil {
			return fmt.Errorf("fetch month todos: %w", err)
		}
		return nil
	})
	if coords != nil {
		g.Go(func() error {
			// weather failures never cancel the todo fetch
			weatherMap, weatherErr = uc.weather.GetWeatherForMonth(gctx, *coords)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := uc.grid(year, month, buckets, weatherMap)
	if weatherErr != nil {
		uc.logger.Warn("Rendering month without weather",
			ports.F("user_id", userID),
			ports.F("error", weatherErr))
		result.Alert = WeatherAlert
	}
	return result, nil
}

func (uc *UseCase) grid(year int, month time.Month, buckets map[string]statistics.DateStats, weatherMap weather.WeatherMap) *Month {
	now := uc.now()
	todayKey := now.Format(validation.DateLayout)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	result := &Month{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(first.Weekday()),
		Days:          make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		key := first.AddDate(0, 0, day-1).Format(validation.DateLayout)
		cell := DayCell{
			Date:    key,
			Day:     day,
			IsToday: key == todayKey,
			Todos:   buckets[key],
		}
		if w, ok := weatherMap[key]; ok {
			cell.Weather = &w
		}
		result.Days = append(result.Days, cell)
	}
	return result
}
