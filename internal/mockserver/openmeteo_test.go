package mockserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 4, 10, 9, 0, 0, 0, time.UTC)

func get(t *testing.T, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := NewOpenMeteoRouter(func() time.Time { return fixedNow })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestForecast(t *testing.T) {
	w := get(t, "/v1/forecast?latitude=51.5&longitude=-0.12&forecast_days=16")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Daily DailyBlock `json:"daily"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Daily.Time, 16)
	assert.Equal(t, "2025-04-10", resp.Daily.Time[0])
	assert.Equal(t, "2025-04-25", resp.Daily.Time[15])
	assert.Len(t, resp.Daily.WeatherCode, 16)

	again := get(t, "/v1/forecast?latitude=51.5&longitude=-0.12&forecast_days=16")
	assert.Equal(t, w.Body.String(), again.Body.String())
}

func TestForecast_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		status int
	}{
		{"MissingCoordinates", "/v1/forecast", http.StatusBadRequest},
		{"TooManyDays", "/v1/forecast?latitude=1&longitude=1&forecast_days=17", http.StatusBadRequest},
		{"NullIsland", "/v1/forecast?latitude=0&longitude=0", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, get(t, tt.target).Code)
		})
	}
}

func TestArchive(t *testing.T) {
	w := get(t, "/v1/archive?latitude=23.81&longitude=90.41&start_date=2025-03-01&end_date=2025-03-03")

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Daily DailyBlock `json:"daily"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2025-03-01", "2025-03-02", "2025-03-03"}, resp.Daily.Time)

	assert.Equal(t, http.StatusBadRequest,
		get(t, "/v1/archive?latitude=1&longitude=1&start_date=2025-03-03&end_date=2025-03-01").Code)
}

func TestSearch(t *testing.T) {
	t.Run("PrefixMatch", func(t *testing.T) {
		w := get(t, "/v1/search?name=lon&count=1")

		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Results []GeocodingResult `json:"results"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "United Kingdom", resp.Results[0].Country)
	})

	t.Run("NoMatchOmitsResults", func(t *testing.T) {
		w := get(t, "/v1/search?name=atlantis")

		require.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "results")
	})

	t.Run("ServerError", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, get(t, "/v1/search?name=servererror").Code)
	})
}
