package location

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/mocks"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

var fixedNow = time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)

func setupLoggerMock(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)
	args := []interface{}{mock.Anything}
	for i := 0; i < 8; i++ {
		mockLogger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Info(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		mockLogger.EXPECT().Error(args[0], args[1:]...).Maybe()
		args = append(args, mock.Anything)
	}
	return mockLogger
}

type testDeps struct {
	geocoding *mocks.GeocodingProvider
	store     *mocks.KeyValueStore
	locator   *mocks.DeviceLocator
}

func newTestUseCase(t *testing.T) (*UseCase, testDeps) {
	deps := testDeps{
		geocoding: mocks.NewGeocodingProvider(t),
		store:     mocks.NewKeyValueStore(t),
		locator:   mocks.NewDeviceLocator(t),
	}

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetGeocodingConfig().Return(ports.GeocodingConfig{ResultCount: 10}).Maybe()

	uc, err := NewUseCase(UseCaseDependencies{
		Geocoding: deps.geocoding,
		Store:     deps.store,
		Config:    config,
		Logger:    setupLoggerMock(t),
		Now:       func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return uc, deps
}

func cachedBlob(t *testing.T, loc ResolvedLocation) []byte {
	raw, err := json.Marshal(loc)
	require.NoError(t, err)
	return raw
}

func TestResolve_GrantedUsesLiveFixAndCachesIt(t *testing.T) {
	uc, deps := newTestUseCase(t)
	fix := &ports.Coordinates{Latitude: 23.81, Longitude: 90.41}

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(true, nil)
	deps.locator.EXPECT().PermissionStatus(mock.Anything).Return(ports.PermissionGranted, nil)
	deps.locator.EXPECT().CurrentPosition(mock.Anything).Return(fix, nil)
	deps.locator.EXPECT().PlaceName(mock.Anything, *fix).Return("Dhaka", nil)

	var stored []byte
	deps.store.EXPECT().Set(mock.Anything, "location:user-1", mock.Anything).
		Run(func(_ context.Context, _ string, value []byte) { stored = value }).
		Return(nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.Equal(t, SourceGPS, res.Source)
	assert.False(t, res.NeedsManualSelection)
	assert.Equal(t, "Dhaka", res.Location.Name)

	var persisted ResolvedLocation
	require.NoError(t, json.Unmarshal(stored, &persisted))
	assert.Equal(t, 23.81, persisted.Latitude)
	assert.True(t, persisted.CachedAt.Equal(fixedNow))
}

func TestResolve_DeniedFallsBackToCache(t *testing.T) {
	uc, deps := newTestUseCase(t)
	cached := ResolvedLocation{Latitude: 51.5074, Longitude: -0.1278, Name: "London, UK", CachedAt: fixedNow.AddDate(-1, 0, 0)}

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(true, nil)
	deps.locator.EXPECT().PermissionStatus(mock.Anything).Return(ports.PermissionDenied, nil)
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(cachedBlob(t, cached), nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.Equal(t, SourceCache, res.Source)
	assert.Equal(t, "London, UK", res.Location.Name)
}

func TestResolve_NoCacheRequestsPermission(t *testing.T) {
	uc, deps := newTestUseCase(t)
	fix := &ports.Coordinates{Latitude: 35.6762, Longitude: 139.6503}

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(true, nil)
	deps.locator.EXPECT().PermissionStatus(mock.Anything).Return(ports.PermissionUndetermined, nil)
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(nil, errors.NewNotFoundError("key not found"))
	deps.locator.EXPECT().RequestPermission(mock.Anything).Return(ports.PermissionGranted, nil)
	deps.locator.EXPECT().CurrentPosition(mock.Anything).Return(fix, nil)
	deps.locator.EXPECT().PlaceName(mock.Anything, *fix).Return("", nil)
	deps.store.EXPECT().Set(mock.Anything, "location:user-1", mock.Anything).Return(nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.Equal(t, SourceGPS, res.Source)
	assert.Equal(t, DefaultPlaceName, res.Location.Name)
}

func TestResolve_EverythingFailsNeedsManualSelection(t *testing.T) {
	uc, deps := newTestUseCase(t)

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(true, nil)
	deps.locator.EXPECT().PermissionStatus(mock.Anything).Return(ports.PermissionUndetermined, nil)
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(nil, errors.NewNotFoundError("key not found"))
	deps.locator.EXPECT().RequestPermission(mock.Anything).Return(ports.PermissionDenied, nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.Equal(t, SourceManual, res.Source)
	assert.True(t, res.NeedsManualSelection)
	assert.Nil(t, res.Location)
	assert.Len(t, res.Cities, 20)
}

func TestResolve_GPSFixFailureFallsBackToCache(t *testing.T) {
	uc, deps := newTestUseCase(t)
	cached := ResolvedLocation{Latitude: 1, Longitude: 2, Name: "Somewhere"}

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(true, nil)
	deps.locator.EXPECT().PermissionStatus(mock.Anything).Return(ports.PermissionGranted, nil)
	deps.locator.EXPECT().CurrentPosition(mock.Anything).Return(nil, errors.NewExternalAPIError("no fix", nil))
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(cachedBlob(t, cached), nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.Equal(t, SourceCache, res.Source)
}

func TestResolve_ServicesDisabledSkipsPermission(t *testing.T) {
	uc, deps := newTestUseCase(t)

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(false, nil)
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(nil, nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.True(t, res.NeedsManualSelection)
}

func TestResolve_OutOfRangeFixIsNotCached(t *testing.T) {
	uc, deps := newTestUseCase(t)
	cached := ResolvedLocation{Latitude: 51.5074, Longitude: -0.1278, Name: "London, UK"}

	deps.locator.EXPECT().ServicesEnabled(mock.Anything).Return(true, nil)
	deps.locator.EXPECT().PermissionStatus(mock.Anything).Return(ports.PermissionGranted, nil)
	deps.locator.EXPECT().CurrentPosition(mock.Anything).Return(&ports.Coordinates{Latitude: 500, Longitude: 10}, nil)
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(cachedBlob(t, cached), nil)

	res, err := uc.Resolve(context.Background(), "user-1", deps.locator)

	require.NoError(t, err)
	assert.Equal(t, SourceCache, res.Source)
	assert.Equal(t, "London, UK", res.Location.Name)
	deps.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCurrentLocation_OutOfRangeFixRejected(t *testing.T) {
	uc, deps := newTestUseCase(t)
	deps.locator.EXPECT().RequestPermission(mock.Anything).Return(ports.PermissionGranted, nil)
	deps.locator.EXPECT().CurrentPosition(mock.Anything).Return(&ports.Coordinates{Latitude: 10, Longitude: -181}, nil)

	_, err := uc.UseCurrentLocation(context.Background(), "user-1", deps.locator)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	deps.store.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestSelectCity_ReplacesCache(t *testing.T) {
	uc, deps := newTestUseCase(t)
	paris := PopularCities()[4]

	deps.store.EXPECT().Set(mock.Anything, "location:user-1", mock.MatchedBy(func(raw []byte) bool {
		var loc ResolvedLocation
		return json.Unmarshal(raw, &loc) == nil && loc.Name == "Paris, France" && loc.Latitude == 48.8566
	})).Return(nil)

	loc, err := uc.SelectCity(context.Background(), "user-1", paris)

	require.NoError(t, err)
	assert.Equal(t, "Paris, France", loc.Name)
}

func TestSelectCity_InvalidCoordinates(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.SelectCity(context.Background(), "user-1", City{Name: "Nowhere", Latitude: 123})

	assert.True(t, errors.IsValidationError(err))
}

func TestUseCurrentLocation_PermissionDenied(t *testing.T) {
	uc, deps := newTestUseCase(t)
	deps.locator.EXPECT().RequestPermission(mock.Anything).Return(ports.PermissionDenied, nil)

	_, err := uc.UseCurrentLocation(context.Background(), "user-1", deps.locator)

	assert.True(t, errors.IsPermissionError(err))
}

func TestGetCachedLocation_NotFound(t *testing.T) {
	uc, deps := newTestUseCase(t)
	deps.store.EXPECT().Get(mock.Anything, "location:user-1").Return(nil, errors.NewNotFoundError("key not found"))

	_, err := uc.GetCachedLocation(context.Background(), "user-1")

	assert.True(t, errors.IsNotFoundError(err))
}

func TestSearchCities(t *testing.T) {
	t.Run("BlankQuery", func(t *testing.T) {
		uc, _ := newTestUseCase(t)

		_, err := uc.SearchCities(context.Background(), "  ")

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.Contains(t, err.Error(), "Please enter a city name")
	})

	t.Run("MapsResults", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.geocoding.EXPECT().SearchCities(mock.Anything, "Berlin", 10).Return([]ports.CityData{
			{Name: "Berlin", Country: "Germany", Admin1: "Land Berlin", Latitude: 52.52437, Longitude: 13.41053},
		}, nil)

		cities, err := uc.SearchCities(context.Background(), " Berlin ")

		require.NoError(t, err)
		require.Len(t, cities, 1)
		assert.Equal(t, "Berlin, Germany", cities[0].Name)
		assert.Equal(t, "Land Berlin", cities[0].Admin1)
	})

	t.Run("ProviderFailure", func(t *testing.T) {
		uc, deps := newTestUseCase(t)
		deps.geocoding.EXPECT().SearchCities(mock.Anything, "Berlin", 10).Return(nil, assert.AnError)

		_, err := uc.SearchCities(context.Background(), "Berlin")

		assert.True(t, errors.IsExternalAPIError(err))
		assert.Contains(t, err.Error(), "Failed to search cities")
	})
}
