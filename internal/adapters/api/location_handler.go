package api

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weathertodo.app/internal/adapters/external"
	"weathertodo.app/internal/core/location"
	"weathertodo.app/pkg/errors"
)

// DeviceLocationRequest carries the reported device state of a user
type DeviceLocationRequest struct {
	UserID string                `json:"user_id" binding:"required"`
	Device external.DeviceReport `json:"device"`
}

// SelectCityRequest represents a city picked from a list or search
type SelectCityRequest struct {
	UserID string      `json:"user_id" binding:"required"`
	City   CityPayload `json:"city" binding:"required"`
}

// CityPayload represents a city in requests and responses
type CityPayload struct {
	City      string  `json:"city,omitempty"`
	Name      string  `json:"name" binding:"required"`
	Latitude  float64 `json:"latitude" binding:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" binding:"gte=-180,lte=180"`
	Admin1    string  `json:"admin1,omitempty"`
}

// LocationResponse represents a resolved location
type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Name      string    `json:"name"`
	CachedAt  time.Time `json:"cached_at"`
}

// ResolutionResponse is the outcome of a resolve request
type ResolutionResponse struct {
	Source               string            `json:"source"`
	Location             *LocationResponse `json:"location,omitempty"`
	NeedsManualSelection bool              `json:"needs_manual_selection"`
	Cities               []CityPayload     `json:"cities,omitempty"`
}

func newLocationResponse(loc *location.ResolvedLocation) *LocationResponse {
	if loc == nil {
		return nil
	}
	return &LocationResponse{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		Name:      loc.Name,
		CachedAt:  loc.CachedAt,
	}
}

func newCityPayloads(cities []location.City) []CityPayload {
	out := make([]CityPayload, 0, len(cities))
	for _, c := range cities {
		out = append(out, CityPayload{City: c.City, Name: c.Name, Latitude: c.Latitude, Longitude: c.Longitude, Admin1: c.Admin1})
	}
	return out
}

// resolveLocation handles POST /api/location/resolve requests
func (s *HTTPServerAdapter) resolveLocation(c *gin.Context) {
	var req DeviceLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	locator := external.NewReportedDeviceLocator(req.Device)
	res, err := s.locationUseCase.Resolve(c.Request.Context(), req.UserID, locator)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResolutionResponse{
		Source:               res.Source.String(),
		Location:             newLocationResponse(res.Location),
		NeedsManualSelection: res.NeedsManualSelection,
		Cities:               newCityPayloads(res.Cities),
	})
}

// useCurrentLocation handles POST /api/location/current requests
func (s *HTTPServerAdapter) useCurrentLocation(c *gin.Context) {
	var req DeviceLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	loc, err := s.locationUseCase.UseCurrentLocation(c.Request.Context(), req.UserID, external.NewReportedDeviceLocator(req.Device))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLocationResponse(loc))
}

// selectCity handles POST /api/location/select requests
func (s *HTTPServerAdapter) selectCity(c *gin.Context) {
	var req SelectCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid request format"))
		return
	}

	city := location.City{
		City:      req.City.City,
		Name:      req.City.Name,
		Latitude:  req.City.Latitude,
		Longitude: req.City.Longitude,
		Admin1:    req.City.Admin1,
	}
	loc, err := s.locationUseCase.SelectCity(c.Request.Context(), req.UserID, city)
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLocationResponse(loc))
}

// getCachedLocation handles GET /api/location requests
func (s *HTTPServerAdapter) getCachedLocation(c *gin.Context) {
	loc, err := s.locationUseCase.GetCachedLocation(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newLocationResponse(loc))
}

// clearLocation handles DELETE /api/location requests
func (s *HTTPServerAdapter) clearLocation(c *gin.Context) {
	if err := s.locationUseCase.ClearLocation(c.Request.Context(), c.Query("user_id")); err != nil {
		s.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// filterCities handles GET /api/location/cities requests
func (s *HTTPServerAdapter) filterCities(c *gin.Context) {
	cities := location.FilterCities(c.Query("q"), location.PopularCities())
	c.JSON(http.StatusOK, gin.H{"cities": newCityPayloads(cities)})
}

// searchCities handles GET /api/location/search requests
func (s *HTTPServerAdapter) searchCities(c *gin.Context) {
	cities, err := s.locationUseCase.SearchCities(c.Request.Context(), c.Query("q"))
	if err != nil {
		slog.Error("City search error", "error", err)
		s.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cities": newCityPayloads(cities)})
}
