package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weathertodo.app/internal/ports"
	"weathertodo.app/pkg/errors"
)

// OpenMeteoGeocodingAdapter implements GeocodingProvider port for the Open-Meteo geocoding API
type OpenMeteoGeocodingAdapter struct {
	baseURL string
	client  HTTPClient
	logger  ports.Logger
	metrics ports.MetricsRecorder
}

// OpenMeteoGeocodingParams holds parameters for creating the geocoding adapter
type OpenMeteoGeocodingParams struct {
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
	Metrics ports.MetricsRecorder
}

// GeocodingResponse represents the response from the geocoding search endpoint
type GeocodingResponse struct {
	Results []struct {
		Name      string  `json:"name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
	} `json:"results"`
}

// NewOpenMeteoGeocodingAdapter creates a new geocoding adapter
func NewOpenMeteoGeocodingAdapter(params OpenMeteoGeocodingParams) ports.GeocodingProvider {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = "https://geocoding-api.open-meteo.com/v1"
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &OpenMeteoGeocodingAdapter{
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
		metrics: params.Metrics,
	}
}

// SearchCities looks up places by free-text name
func (g *OpenMeteoGeocodingAdapter) SearchCities(ctx context.Context, name string, count int) ([]ports.CityData, error) {
	if name == "" {
		return nil, errors.NewValidationError("city name cannot be empty")
	}
	if count < 1 {
		count = 10
	}

	query := url.Values{}
	query.Set("name", name)
	query.Set("count", strconv.Itoa(count))
	query.Set("language", "en")
	query.Set("format", "json")

	start := time.Now()
	cities, err := g.search(ctx, g.baseURL+"/search?"+query.Encode())
	if g.metrics != nil {
		g.metrics.RecordExternalCall("open-meteo-geocoding", "search", err == nil, time.Since(start))
	}
	if err != nil {
		if g.logger != nil {
			g.logger.Error("Geocoding search failed", ports.F("query", name), ports.F("error", err.Error()))
		}
		return nil, err
	}

	return cities, nil
}

func (g *OpenMeteoGeocodingAdapter) search(ctx context.Context, requestURL string) ([]ports.CityData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build geocoding request", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call geocoding API", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && g.logger != nil {
			g.logger.Warn("Failed to close geocoding response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("geocoding API returned status %d", resp.StatusCode), nil)
	}

	var apiResp GeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode geocoding response", err)
	}

	cities := make([]ports.CityData, 0, len(apiResp.Results))
	for _, r := range apiResp.Results {
		cities = append(cities, ports.CityData{
			Name:      r.Name,
			Country:   r.Country,
			Admin1:    r.Admin1,
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		})
	}
	return cities, nil
}
