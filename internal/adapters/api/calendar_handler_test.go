package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

func TestCalendarHandler(t *testing.T) {
	monthTodos := func(ts *testServer) {
		ts.repo.EXPECT().List(mock.Anything, mock.MatchedBy(func(f ports.TodoFilter) bool {
			return f.DateFrom.Equal(utcDay(2025, 4, 1)) && f.DateTo.Equal(utcDay(2025, 4, 30))
		})).Return([]*ports.TodoData{
			todoData("a", "completed", utcDay(2025, 4, 10)),
			todoData("b", "pending", utcDay(2025, 4, 10)),
		}, 2, nil)
	}

	t.Run("WithoutCoordinates", func(t *testing.T) {
		ts := setupTestServer(t)
		monthTodos(ts)

		w := ts.do(http.MethodGet, "/api/calendar?user_id=user-1&year=2025&month=4", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp CalendarResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, 2025, resp.Year)
		assert.Equal(t, 4, resp.Month)
		// April 1st 2025 is a Tuesday
		assert.Equal(t, 2, resp.LeadingBlanks)
		require.Len(t, resp.Days, 30)
		assert.Empty(t, resp.Alert)

		tenth := resp.Days[9]
		assert.Equal(t, "2025-04-10", tenth.Date)
		assert.True(t, tenth.IsToday)
		assert.Equal(t, 2, tenth.Todos.Total)
		assert.Equal(t, 1, tenth.Todos.Completed)
		assert.Nil(t, tenth.Weather)
	})

	t.Run("MergesWeather", func(t *testing.T) {
		ts := setupTestServer(t)
		monthTodos(ts)
		ts.provider.EXPECT().GetForecast(mock.Anything, london, 16).Return(forecastFixture(), nil)

		w := ts.do(http.MethodGet, "/api/calendar?user_id=user-1&year=2025&month=4&lat=51.5074&lon=-0.1278", "")

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp CalendarResponse
		decodeBody(t, w, &resp)
		assert.Nil(t, resp.Days[8].Weather)
		require.NotNil(t, resp.Days[9].Weather)
		assert.Equal(t, 18.0, resp.Days[9].Weather.TempMax)
		require.NotNil(t, resp.Days[24].Weather)
		assert.Nil(t, resp.Days[25].Weather)
	})

	t.Run("WeatherFailureKeepsTodos", func(t *testing.T) {
		ts := setupTestServer(t)
		monthTodos(ts)
		ts.provider.EXPECT().GetForecast(mock.Anything, london, 16).
			Return(nil, errors.NewExternalAPIError("timeout", nil))

		w := ts.do(http.MethodGet, "/api/calendar?user_id=user-1&year=2025&month=4&lat=51.5074&lon=-0.1278", "")

		require.Equal(t, http.StatusOK, w.Code)
		var resp CalendarResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, "Failed to fetch weather data", resp.Alert)
		assert.Equal(t, 2, resp.Days[9].Todos.Total)
	})

	t.Run("MissingUser", func(t *testing.T) {
		ts := setupTestServer(t)

		w := ts.do(http.MethodGet, "/api/calendar?year=2025&month=4", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
