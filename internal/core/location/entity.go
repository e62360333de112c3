package location

import (
	"fmt"
	"strings"
	"time"

	"weathertodo.app/internal/ports"
)

// DefaultPlaceName labels a GPS fix that could not be reverse geocoded
const DefaultPlaceName = "Current Location"

// City is a selectable place
type City struct {
	City      string
	Name      string
	Latitude  float64
	Longitude float64
	Admin1    string
}

// Coordinates returns the city position
func (c City) Coordinates() ports.Coordinates {
	return ports.Coordinates{Latitude: c.Latitude, Longitude: c.Longitude}
}

// ResolvedLocation is the single current location of a user
type ResolvedLocation struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Name      string    `json:"name"`
	CachedAt  time.Time `json:"cached_at"`
}

// Coordinates returns the resolved position
func (l ResolvedLocation) Coordinates() ports.Coordinates {
	return ports.Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

// Source tells where a resolution came from
type Source int

const (
	SourceUnknown Source = iota
	SourceGPS
	SourceCache
	SourceManual
)

// String returns the string representation of source
func (s Source) String() string {
	switch s {
	case SourceGPS:
		return "gps"
	case SourceCache:
		return "cache"
	case SourceManual:
		return "manual"
	default:
		return "unknown"
	}
}

// Resolution is the outcome of resolving a location. When NeedsManualSelection
// is set Location is nil and Cities holds the list to pick from.
type Resolution struct {
	Source               Source
	Location             *ResolvedLocation
	NeedsManualSelection bool
	Cities               []City
}

var popularCities = []City{
	{City: "Dhaka", Name: "Dhaka, Bangladesh", Latitude: 23.8103, Longitude: 90.4125},
	{City: "New York", Name: "New York, USA", Latitude: 40.7128, Longitude: -74.006},
	{City: "London", Name: "London, UK", Latitude: 51.5074, Longitude: -0.1278},
	{City: "Tokyo", Name: "Tokyo, Japan", Latitude: 35.6762, Longitude: 139.6503},
	{City: "Paris", Name: "Paris, France", Latitude: 48.8566, Longitude: 2.3522},
	{City: "Dubai", Name: "Dubai, UAE", Latitude: 25.2048, Longitude: 55.2708},
	{City: "Sydney", Name: "Sydney, Australia", Latitude: -33.8688, Longitude: 151.2093},
	{City: "Singapore", Name: "Singapore", Latitude: 1.3521, Longitude: 103.8198},
	{City: "Mumbai", Name: "Mumbai, India", Latitude: 19.076, Longitude: 72.8777},
	{City: "Los Angeles", Name: "Los Angeles, USA", Latitude: 34.0522, Longitude: -118.2437},
	{City: "Toronto", Name: "Toronto, Canada", Latitude: 43.6532, Longitude: -79.3832},
	{City: "Berlin", Name: "Berlin, Germany", Latitude: 52.52, Longitude: 13.405},
	{City: "Beijing", Name: "Beijing, China", Latitude: 39.9042, Longitude: 116.4074},
	{City: "Moscow", Name: "Moscow, Russia", Latitude: 55.7558, Longitude: 37.6173},
	{City: "Istanbul", Name: "Istanbul, Turkey", Latitude: 41.0082, Longitude: 28.9784},
	{City: "Bangkok", Name: "Bangkok, Thailand", Latitude: 13.7563, Longitude: 100.5018},
	{City: "Hong Kong", Name: "Hong Kong", Latitude: 22.3193, Longitude: 114.1694},
	{City: "Seoul", Name: "Seoul, South Korea", Latitude: 37.5665, Longitude: 126.978},
	{City: "Mexico City", Name: "Mexico City, Mexico", Latitude: 19.4326, Longitude: -99.1332},
	{City: "São Paulo", Name: "São Paulo, Brazil", Latitude: -23.5505, Longitude: -46.6333},
}

// PopularCities returns a copy of the fixed manual-selection list
func PopularCities() []City {
	cities := make([]City, len(popularCities))
	copy(cities, popularCities)
	return cities
}

// FilterCities keeps cities whose name contains query, ignoring case.
// A blank query returns cities unchanged.
func FilterCities(query string, cities []City) []City {
	if strings.TrimSpace(query) == "" {
		return cities
	}

	needle := strings.ToLower(query)
	filtered := make([]City, 0, len(cities))
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func cityFromSearch(data ports.CityData) City {
	name := data.Name
	if data.Country != "" {
		name = fmt.Sprintf("%s, %s", data.Name, data.Country)
	}
	return City{
		City:      data.Name,
		Name:      name,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Admin1:    data.Admin1,
	}
}
