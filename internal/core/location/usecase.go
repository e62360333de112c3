package location

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

type UseCase struct {
	geocoding ports.GeocodingProvider
	store     ports.KeyValueStore
	config    ports.ConfigProvider
	logger    ports.Logger
	now       func() time.Time
}

type UseCaseDependencies struct {
	Geocoding ports.GeocodingProvider
	Store     ports.KeyValueStore
	Config    ports.ConfigProvider
	Logger    ports.Logger
	// Now defaults to time.Now
	Now func() time.Time
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoding == nil {
		return nil, errors.NewValidationError("geocoding provider is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("key-value store is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &UseCase{
		geocoding: deps.Geocoding,
		store:     deps.Store,
		config:    deps.Config,
		logger:    deps.Logger,
		now:       now,
	}, nil
}

// Resolve picks the location to use: a live fix when permission is already
// granted, then the cached location, then an interactive permission request.
// When all fail the resolution asks for a manual pick.
func (uc *UseCase) Resolve(ctx context.Context, userID string, locator ports.DeviceLocator) (*Resolution, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	if locator == nil {
		return nil, errors.NewValidationError("device locator is required")
	}

	enabled, err := locator.ServicesEnabled(ctx)
	if err != nil {
		uc.logger.Warn("Location services check failed", ports.F("error", err))
		enabled = false
	}

	if enabled {
		status, err := locator.PermissionStatus(ctx)
		if err != nil {
			uc.logger.Warn("Location permission check failed", ports.F("error", err))
		} else if status == ports.PermissionGranted {
			if loc := uc.liveFix(ctx, userID, locator); loc != nil {
				return &Resolution{Source: SourceGPS, Location: loc}, nil
			}
		}
	}

	cached, err := uc.load(ctx, userID)
	if err != nil {
		uc.logger.Warn("Failed to read cached location", ports.F("user_id", userID), ports.F("error", err))
	}
	if cached != nil {
		uc.logger.Debug("Using cached location", ports.F("user_id", userID), ports.F("name", cached.Name))
		return &Resolution{Source: SourceCache, Location: cached}, nil
	}

	if enabled {
		status, err := locator.RequestPermission(ctx)
		if err != nil {
			uc.logger.Warn("Location permission request failed", ports.F("error", err))
		} else if status == ports.PermissionGranted {
			if loc := uc.liveFix(ctx, userID, locator); loc != nil {
				return &Resolution{Source: SourceGPS, Location: loc}, nil
			}
		}
	}

	uc.logger.Debug("Location needs manual selection", ports.F("user_id", userID))
	return &Resolution{
		Source:               SourceManual,
		NeedsManualSelection: true,
		Cities:               PopularCities(),
	}, nil
}

// UseCurrentLocation requests permission, takes a live fix and replaces the cache
func (uc *UseCase) UseCurrentLocation(ctx context.Context, userID string, locator ports.DeviceLocator) (*ResolvedLocation, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	if locator == nil {
		return nil, errors.NewValidationError("device locator is required")
	}

	status, err := locator.RequestPermission(ctx)
	if err != nil || status != ports.PermissionGranted {
		return nil, errors.NewPermissionError("Location permission not granted")
	}

	coords, err := locator.CurrentPosition(ctx)
	if err != nil || coords == nil {
		return nil, errors.NewExternalAPIError("Failed to get current location", err)
	}
	if !validCoordinates(*coords) {
		return nil, errors.NewValidationError("device coordinates are out of range")
	}

	loc := &ResolvedLocation{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Name:      uc.placeName(ctx, locator, *coords),
		CachedAt:  uc.now(),
	}
	if err := uc.save(ctx, userID, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// SelectCity replaces the cached location with a picked city
func (uc *UseCase) SelectCity(ctx context.Context, userID string, city City) (*ResolvedLocation, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}
	if !validation.IsNotEmpty(city.Name) {
		return nil, errors.NewValidationError("city name is required")
	}
	if !validCoordinates(city.Coordinates()) {
		return nil, errors.NewValidationError("city coordinates are out of range")
	}

	loc := &ResolvedLocation{
		Latitude:  city.Latitude,
		Longitude: city.Longitude,
		Name:      strings.TrimSpace(city.Name),
		CachedAt:  uc.now(),
	}
	if err := uc.save(ctx, userID, loc); err != nil {
		return nil, err
	}

	uc.logger.Debug("City selected", ports.F("user_id", userID), ports.F("name", loc.Name))
	return loc, nil
}

// GetCachedLocation returns the user's cached location
func (uc *UseCase) GetCachedLocation(ctx context.Context, userID string) (*ResolvedLocation, error) {
	if !validation.IsNotEmpty(userID) {
		return nil, errors.NewValidationError("user is required")
	}

	loc, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, errors.NewNotFoundError("no cached location")
	}
	return loc, nil
}

// ClearLocation forgets the user's cached location
func (uc *UseCase) ClearLocation(ctx context.Context, userID string) error {
	if !validation.IsNotEmpty(userID) {
		return errors.NewValidationError("user is required")
	}
	if err := uc.store.Remove(ctx, cacheKey(userID)); err != nil {
		return fmt.Errorf("remove cached location: %w", err)
	}
	return nil
}

// SearchCities queries the geocoding service by free-text name
func (uc *UseCase) SearchCities(ctx context.Context, query string) ([]City, error) {
	query, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("Please enter a city name")
	}

	count := uc.config.GetGeocodingConfig().ResultCount
	results, err := uc.geocoding.SearchCities(ctx, query, count)
	if err != nil {
		uc.logger.Error("City search failed", ports.F("query", query), ports.F("error", err))
		return nil, errors.NewExternalAPIError("Failed to search cities", err)
	}

	cities := make([]City, 0, len(results))
	for _, r := range results {
		cities = append(cities, cityFromSearch(r))
	}
	return cities, nil
}

func (uc *UseCase) liveFix(ctx context.Context, userID string, locator ports.DeviceLocator) *ResolvedLocation {
	coords, err := locator.CurrentPosition(ctx)
	if err != nil || coords == nil {
		uc.logger.Warn("Live location fix failed", ports.F("user_id", userID), ports.F("error", err))
		return nil
	}
	if !validCoordinates(*coords) {
		uc.logger.Warn("Live location fix out of range",
			ports.F("user_id", userID),
			ports.F("latitude", coords.Latitude),
			ports.F("longitude", coords.Longitude))
		return nil
	}

	loc := &ResolvedLocation{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
		Name:      uc.placeName(ctx, locator, *coords),
		CachedAt:  uc.now(),
	}
	if err := uc.save(ctx, userID, loc); err != nil {
		uc.logger.Warn("Failed to cache live location", ports.F("user_id", userID), ports.F("error", err))
	}
	return loc
}

func (uc *UseCase) placeName(ctx context.Context, locator ports.DeviceLocator, coords ports.Coordinates) string {
	name, err := locator.PlaceName(ctx, coords)
	if err != nil || strings.TrimSpace(name) == "" {
		return DefaultPlaceName
	}
	return name
}

func (uc *UseCase) load(ctx context.Context, userID string) (*ResolvedLocation, error) {
	raw, err := uc.store.Get(ctx, cacheKey(userID))
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cached location: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var loc ResolvedLocation
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, errors.NewDatabaseError("failed to decode cached location", err)
	}
	return &loc, nil
}

func (uc *UseCase) save(ctx context.Context, userID string, loc *ResolvedLocation) error {
	raw, err := json.Marshal(loc)
	if err != nil {
		return errors.NewValidationError("failed to encode location")
	}
	if err := uc.store.Set(ctx, cacheKey(userID), raw); err != nil {
		return fmt.Errorf("cache location: %w", err)
	}
	return nil
}

func validCoordinates(c ports.Coordinates) bool {
	return validation.IsValidLatitude(c.Latitude) && validation.IsValidLongitude(c.Longitude)
}

func cacheKey(userID string) string {
	return "location:" + userID
}
