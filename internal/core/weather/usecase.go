package weather

import (
	"context"
	"fmt"
	"sort"
	"time"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	cache           ports.WeatherCache
	records         ports.WeatherRecordRepository
	config          ports.ConfigProvider
	logger          ports.Logger
	metrics         ports.WeatherMetrics
	now             func() time.Time
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Cache           ports.WeatherCache
	Records         ports.WeatherRecordRepository
	Config          ports.ConfigProvider
	Logger          ports.Logger
	Metrics         ports.WeatherMetrics
	// Now defaults to time.Now
	Now func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Records == nil {
		return nil, errors.NewValidationError("weather record repository is required")
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
		weatherProvider: deps.WeatherProvider,
		cache:           deps.Cache,
		records:         deps.Records,
		config:          deps.Config,
		logger:          deps.Logger,
		metrics:         deps.Metrics,
		now:             now,
	}, nil
}

// GetWeatherForDate looks up one calendar date. Past dates and today use the
// archive, later dates the forecast. Dates beyond the forecast horizon yield
// nil without an error.
func (uc *UseCase) GetWeatherForDate(ctx context.Context, coords ports.Coordinates, date time.Time) (*DayWeather, error) {
	if err := ValidateCoordinates(coords); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	if date.IsZero() {
		return nil, errors.NewValidationError("date is required")
	}

	now := uc.now()
	today := localDay(now, now.Location())
	target := localDay(date, now.Location())
	dateKey := target.Format(validation.DateLayout)

	if !target.After(today) {
		return uc.getArchivedDay(ctx, coords, dateKey)
	}

	if ahead := daysAhead(today, target); ahead > ForecastHorizonDays {
		uc.logger.Warn("Date is beyond the forecast horizon",
			ports.F("date", dateKey),
			ports.F("days_ahead", ahead))
		return nil, nil
	}

	days, err := uc.getForecast(ctx, coords)
	if err != nil {
		return nil, fmt.Errorf("get forecast for %s: %w", dateKey, err)
	}

	for _, day := range days {
		if day.Date == dateKey {
			uc.persist(ctx, coords, []DayWeather{day})
			return &day, nil
		}
	}

	uc.logger.Debug("Date missing from forecast response", ports.F("date", dateKey))
	return nil, nil
}

// GetWeatherForMonth returns the forecast window as a date-keyed map. On
// failure the map is empty and the error describes what to alert about.
func (uc *UseCase) GetWeatherForMonth(ctx context.Context, coords ports.Coordinates) (WeatherMap, error) {
	if err := ValidateCoordinates(coords); err != nil {
		return WeatherMap{}, errors.NewValidationError("invalid weather request: " + err.Error())
	}

	days, err := uc.getForecast(ctx, coords)
	if err != nil {
		uc.logger.Error("Failed to fetch weather data",
			ports.F("latitude", coords.Latitude),
			ports.F("longitude", coords.Longitude),
			ports.F("error", err))
		return WeatherMap{}, err
	}

	weatherMap := make(WeatherMap, len(days))
	for _, day := range days {
		weatherMap[day.Date] = day
	}

	uc.persist(ctx, coords, days)
	return weatherMap, nil
}

// GetHistory reads persisted days for a location within [startDate, endDate]
func (uc *UseCase) GetHistory(ctx context.Context, coords ports.Coordinates, startDate, endDate string) ([]DayWeather, error) {
	if err := ValidateCoordinates(coords); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	if !validation.IsValidDateKey(startDate) || !validation.IsValidDateKey(endDate) {
		return nil, errors.NewValidationError("start and end must be YYYY-MM-DD dates")
	}
	if endDate < startDate {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	rounded := roundCoordinates(coords)
	records, err := uc.records.FindRange(ctx, startDate, endDate, rounded)
	if err != nil {
		return nil, fmt.Errorf("find weather history: %w", err)
	}

	days := make([]DayWeather, 0, len(records))
	for _, r := range records {
		days = append(days, fromRecord(r))
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// GetStoredDay reads one persisted day, nil when none was saved
func (uc *UseCase) GetStoredDay(ctx context.Context, coords ports.Coordinates, date string) (*DayWeather, error) {
	if err := ValidateCoordinates(coords); err != nil {
		return nil, errors.NewValidationError("invalid weather request: " + err.Error())
	}
	if !validation.IsValidDateKey(date) {
		return nil, errors.NewValidationError("date must be a YYYY-MM-DD date")
	}

	record, err := uc.records.FindByDate(ctx, date, roundCoordinates(coords))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find weather record: %w", err)
	}

	day := fromRecord(record)
	return &day, nil
}

func (uc *UseCase) getArchivedDay(ctx context.Context, coords ports.Coordinates, dateKey string) (*DayWeather, error) {
	data, err := uc.weatherProvider.GetArchive(ctx, coords, dateKey)
	if err != nil {
		return nil, wrapProviderError("weather archive lookup failed", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	day := fromProvider(data[0])
	if day.Date == "" {
		day.Date = dateKey
	}
	uc.persist(ctx, coords, []DayWeather{day})
	return &day, nil
}

func (uc *UseCase) getForecast(ctx context.Context, coords ports.Coordinates) ([]DayWeather, error) {
	cfg := uc.config.GetWeatherConfig()
	days := cfg.ForecastDays
	if days <= 0 || days > ForecastHorizonDays {
		days = ForecastHorizonDays
	}

	if !cfg.EnableCache {
		return uc.getForecastFromProvider(ctx, coords, days)
	}

	cacheKey := forecastCacheKey(coords, days)
	cached, err := uc.cache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		uc.logger.Debug("Forecast found in cache", ports.F("key", cacheKey))
		return convertDays(cached), nil
	}

	data, err := uc.weatherProvider.GetForecast(ctx, coords, days)
	if err != nil {
		return nil, wrapProviderError("weather forecast lookup failed", err)
	}

	if cacheErr := uc.cache.Set(ctx, cacheKey, data, cfg.CacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache forecast",
			ports.F("key", cacheKey),
			ports.F("error", cacheErr))
	}

	return convertDays(data), nil
}

func (uc *UseCase) getForecastFromProvider(ctx context.Context, coords ports.Coordinates, days int) ([]DayWeather, error) {
	data, err := uc.weatherProvider.GetForecast(ctx, coords, days)
	if err != nil {
		return nil, wrapProviderError("weather forecast lookup failed", err)
	}
	return convertDays(data), nil
}

// persist stores fetched days when record keeping is enabled. Failures are logged only.
func (uc *UseCase) persist(ctx context.Context, coords ports.Coordinates, days []DayWeather) {
	if !uc.config.GetWeatherConfig().PersistRecords || len(days) == 0 {
		return
	}

	saved := 0
	for _, day := range days {
		changed, err := uc.records.Save(ctx, day.toRecord(coords))
		if err != nil {
			uc.logger.Warn("Failed to persist weather record",
				ports.F("date", day.Date),
				ports.F("error", err))
			continue
		}
		if changed {
			saved++
		}
	}

	uc.logger.Debug("Weather records persisted",
		ports.F("received", len(days)),
		ports.F("changed", saved))
}

func (uc *UseCase) GetProviderInfo(ctx context.Context) map[string]interface{} {
	return uc.metrics.GetProviderInfo()
}

func (uc *UseCase) GetCacheMetrics(ctx context.Context) (ports.CacheStats, error) {
	metrics, err := uc.metrics.GetCacheMetrics()
	if err != nil {
		return ports.CacheStats{}, fmt.Errorf("get cache metrics: %w", err)
	}
	return metrics, nil
}

func wrapProviderError(message string, err error) error {
	if errors.IsExternalAPIError(err) || errors.IsValidationError(err) {
		return err
	}
	return errors.NewExternalAPIError(message, err)
}

func convertDays(data []ports.DailyWeatherData) []DayWeather {
	days := make([]DayWeather, 0, len(data))
	for _, d := range data {
		days = append(days, fromProvider(d))
	}
	return days
}

func roundCoordinates(coords ports.Coordinates) ports.Coordinates {
	return ports.Coordinates{
		Latitude:  RoundCoordinate(coords.Latitude),
		Longitude: RoundCoordinate(coords.Longitude),
	}
}

func forecastCacheKey(coords ports.Coordinates, days int) string {
	return fmt.Sprintf("forecast:%.4f:%.4f:%d", coords.Latitude, coords.Longitude, days)
}
