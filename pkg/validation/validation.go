package validation

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date key format used across the service
const DateLayout = "2006-01-02"

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsValidDateKey reports whether s is a YYYY-MM-DD calendar date
func IsValidDateKey(s string) bool {
	_, err := time.Parse(DateLayout, strings.TrimSpace(s))
	return err == nil
}

// IsValidLatitude checks the WGS84 latitude range
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// IsValidLongitude checks the WGS84 longitude range
func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
