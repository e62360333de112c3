package ports

import "context"

// CityData is a geocoding search candidate
type CityData struct {
	Name      string
	Country   string
	Admin1    string
	Latitude  float64
	Longitude float64
}

// GeocodingProvider defines the contract for free-text city search
type GeocodingProvider interface {
	SearchCities(ctx context.Context, query string, count int) ([]CityData, error)
}

// PermissionStatus mirrors the device location permission states
type PermissionStatus string

const (
	PermissionGranted      PermissionStatus = "granted"
	PermissionDenied       PermissionStatus = "denied"
	PermissionUndetermined PermissionStatus = "undetermined"
)

// DeviceLocator defines the contract for device location services
type DeviceLocator interface {
	ServicesEnabled(ctx context.Context) (bool, error)
	PermissionStatus(ctx context.Context) (PermissionStatus, error)
	RequestPermission(ctx context.Context) (PermissionStatus, error)
	CurrentPosition(ctx context.Context) (*Coordinates, error)
	PlaceName(ctx context.Context, coords Coordinates) (string, error)
}

// KeyValueStore defines the contract for string-keyed JSON blob persistence
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
