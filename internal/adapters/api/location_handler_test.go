package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/core/location"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

func TestLocationHandler_Resolve(t *testing.T) {
	t.Run("GrantedUsesDevicePosition", func(t *testing.T) {
		ts := setupTestServer(t)
		var stored []byte
		ts.store.EXPECT().Set(mock.Anything, "location:user-1", mock.Anything).
			Run(func(_ context.Context, _ string, value []byte) { stored = value }).
			Return(nil)

		body := `{"user_id":"user-1","device":{"services_enabled":true,"permission":"granted","latitude":23.81,"longitude":90.41,"place_name":"Dhaka"}}`
		w := ts.do(http.MethodPost, "/api/location/resolve", body)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp ResolutionResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "gps", resp.Source)
		require.NotNil(t, resp.Location)
		assert.Equal(t, "Dhaka", resp.Location.Name)
		assert.False(t, resp.NeedsManualSelection)

		var cached location.ResolvedLocation
		require.NoError(t, json.Unmarshal(stored, &cached))
		assert.Equal(t, 90.41, cached.Longitude)
	})

	t.Run("DeniedWithoutCacheNeedsManualSelection", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.store.EXPECT().Get(mock.Anything, "location:user-1").Return(nil, errors.NewNotFoundError("key not found"))

		body := `{"user_id":"user-1","device":{"services_enabled":true,"permission":"denied"}}`
		w := ts.do(http.MethodPost, "/api/location/resolve", body)

		require.Equal(t, http.StatusOK, w.Code)
		var resp ResolutionResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "manual", resp.Source)
		assert.True(t, resp.NeedsManualSelection)
		assert.Nil(t, resp.Location)
		assert.Len(t, resp.Cities, 20)
	})

	t.Run("MissingUser", func(t *testing.T) {
		ts := setupTestServer(t)

		w := ts.do(http.MethodPost, "/api/location/resolve", `{"device":{}}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocationHandler_Current(t *testing.T) {
	t.Run("PromptDenied", func(t *testing.T) {
		ts := setupTestServer(t)

		body := `{"user_id":"user-1","device":{"services_enabled":true,"permission":"undetermined","prompt_answer":"denied"}}`
		w := ts.do(http.MethodPost, "/api/location/current", body)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("PromptGranted", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.store.EXPECT().Set(mock.Anything, "location:user-1", mock.Anything).Return(nil)

		body := `{"user_id":"user-1","device":{"services_enabled":true,"prompt_answer":"granted","latitude":35.6762,"longitude":139.6503}}`
		w := ts.do(http.MethodPost, "/api/location/current", body)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp LocationResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, location.DefaultPlaceName, resp.Name)
		assert.True(t, resp.CachedAt.Equal(fixedNow))
	})
}

func TestLocationHandler_SelectCity(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.store.EXPECT().Set(mock.Anything, "location:user-1", mock.Anything).Return(nil)

		body := `{"user_id":"user-1","city":{"city":"Paris","name":"Paris, France","latitude":48.8566,"longitude":2.3522}}`
		w := ts.do(http.MethodPost, "/api/location/select", body)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp LocationResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "Paris, France", resp.Name)
		assert.Equal(t, 48.8566, resp.Latitude)
	})

	t.Run("LatitudeOutOfRange", func(t *testing.T) {
		ts := setupTestServer(t)

		body := `{"user_id":"user-1","city":{"name":"Nowhere","latitude":123,"longitude":0}}`
		w := ts.do(http.MethodPost, "/api/location/select", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLocationHandler_Cached(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.store.EXPECT().Get(mock.Anything, "location:user-1").Return(nil, errors.NewNotFoundError("key not found"))

		w := ts.do(http.MethodGet, "/api/location?user_id=user-1", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Found", func(t *testing.T) {
		ts := setupTestServer(t)
		raw, err := json.Marshal(location.ResolvedLocation{Latitude: 1.3521, Longitude: 103.8198, Name: "Singapore", CachedAt: fixedNow})
		require.NoError(t, err)
		ts.store.EXPECT().Get(mock.Anything, "location:user-1").Return(raw, nil)

		w := ts.do(http.MethodGet, "/api/location?user_id=user-1", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp LocationResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "Singapore", resp.Name)
	})

	t.Run("Clear", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.store.EXPECT().Remove(mock.Anything, "location:user-1").Return(nil)

		w := ts.do(http.MethodDelete, "/api/location?user_id=user-1", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestLocationHandler_Cities(t *testing.T) {
	ts := setupTestServer(t)

	w := ts.do(http.MethodGet, "/api/location/cities?q=usa", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Cities []CityPayload `json:"cities"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Cities, 2)
	assert.Equal(t, "New York", resp.Cities[0].City)
}

func TestLocationHandler_Search(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.geocoding.EXPECT().SearchCities(mock.Anything, "Berlin", 10).Return([]ports.CityData{
			{Name: "Berlin", Country: "Germany", Admin1: "Land Berlin", Latitude: 52.52437, Longitude: 13.41053},
		}, nil)

		w := ts.do(http.MethodGet, "/api/location/search?q=Berlin", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp struct {
			Cities []CityPayload `json:"cities"`
		}
		decodeBody(t, w, &resp)
		require.Len(t, resp.Cities, 1)
		assert.Equal(t, "Berlin, Germany", resp.Cities[0].Name)
	})

	t.Run("BlankQuery", func(t *testing.T) {
		ts := setupTestServer(t)

		w := ts.do(http.MethodGet, "/api/location/search?q=+", "")

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "Please enter a city name", resp.Error)
	})

	t.Run("ProviderDown", func(t *testing.T) {
		ts := setupTestServer(t)
		ts.geocoding.EXPECT().SearchCities(mock.Anything, "Berlin", 10).Return(nil, assert.AnError)

		w := ts.do(http.MethodGet, "/api/location/search?q=Berlin", "")

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
