package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
	"weathertodo.app/pkg/validation"
)

// queryCoordinates reads lat and lon. ok is false when both are absent.
func queryCoordinates(c *gin.Context) (coords ports.Coordinates, ok bool, err error) {
	rawLat, rawLon := strings.TrimSpace(c.Query("lat")), strings.TrimSpace(c.Query("lon"))
	if rawLat == "" && rawLon == "" {
		return ports.Coordinates{}, false, nil
	}

	lat, latErr := strconv.ParseFloat(rawLat, 64)
	lon, lonErr := strconv.ParseFloat(rawLon, 64)
	if latErr != nil || lonErr != nil {
		return ports.Coordinates{}, false, errors.NewValidationError("lat and lon must be numbers")
	}
	return ports.Coordinates{Latitude: lat, Longitude: lon}, true, nil
}

// requireCoordinates is queryCoordinates with both values mandatory
func requireCoordinates(c *gin.Context) (ports.Coordinates, error) {
	coords, ok, err := queryCoordinates(c)
	if err != nil {
		return coords, err
	}
	if !ok {
		return coords, errors.NewValidationError("lat and lon parameters are required")
	}
	return coords, nil
}

func queryDate(c *gin.Context, name string) (time.Time, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return time.Time{}, errors.NewValidationError(name + " parameter is required")
	}
	date, err := time.Parse(validation.DateLayout, raw)
	if err != nil {
		return time.Time{}, errors.NewValidationError(name + " must be YYYY-MM-DD")
	}
	return date, nil
}

// queryYearMonth reads year and month, defaulting to the current month
func queryYearMonth(c *gin.Context, now time.Time) (int, time.Month, error) {
	year, month := now.Year(), now.Month()

	if raw := c.Query("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1 {
			return 0, 0, errors.NewValidationError("year must be a positive integer")
		}
		year = y
	}
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, errors.NewValidationError("month must be between 1 and 12")
		}
		month = time.Month(m)
	}
	return year, month, nil
}
