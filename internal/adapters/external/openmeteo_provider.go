// Package external provides adapters for external services
// These adapters implement ports for weather data, geocoding, caches and messaging.
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

const openMeteoDailyFields = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,weathercode"

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenMeteoProviderAdapter implements WeatherProvider port for Open-Meteo
type OpenMeteoProviderAdapter struct {
	name            string
	forecastBaseURL string
	archiveBaseURL  string
	client          HTTPClient
	logger          ports.Logger
}

// OpenMeteoProviderParams holds parameters for creating the Open-Meteo provider
type OpenMeteoProviderParams struct {
	Name            string
	ForecastBaseURL string
	ArchiveBaseURL  string
	Timeout         time.Duration
	Client          HTTPClient
	Logger          ports.Logger
}

// OpenMeteoDailyResponse represents the daily block of an Open-Meteo response.
// Any value may be null.
type OpenMeteoDailyResponse struct {
	Daily struct {
		Time             []string   `json:"time"`
		TempMax          []*float64 `json:"temperature_2m_max"`
		TempMin          []*float64 `json:"temperature_2m_min"`
		PrecipitationMax []*float64 `json:"precipitation_probability_max"`
		WeatherCode      []*float64 `json:"weathercode"`
	} `json:"daily"`
}

// NewOpenMeteoProviderAdapter creates a new Open-Meteo provider adapter
func NewOpenMeteoProviderAdapter(params OpenMeteoProviderParams) *OpenMeteoProviderAdapter {
	forecastBaseURL := params.ForecastBaseURL
	if forecastBaseURL == "" {
		forecastBaseURL = "https://api.open-meteo.com/v1"
	}
	archiveBaseURL := params.ArchiveBaseURL
	if archiveBaseURL == "" {
		archiveBaseURL = "https://archive-api.open-meteo.com/v1"
	}
	name := params.Name
	if name == "" {
		name = "open-meteo"
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: timeout}
	}

	return &OpenMeteoProviderAdapter{
		name:            name,
		forecastBaseURL: forecastBaseURL,
		archiveBaseURL:  archiveBaseURL,
		client:          client,
		logger:          params.Logger,
	}
}

// GetForecast retrieves up to days days of forecast starting today
func (p *OpenMeteoProviderAdapter) GetForecast(ctx context.Context, coords ports.Coordinates, days int) ([]ports.DailyWeatherData, error) {
	if days < 1 {
		return nil, errors.NewValidationError("forecast days must be positive")
	}

	query := p.baseQuery(coords)
	query.Set("forecast_days", strconv.Itoa(days))

	return p.fetchDaily(ctx, p.forecastBaseURL+"/forecast?"+query.Encode())
}

// GetArchive retrieves the recorded weather for a single date
func (p *OpenMeteoProviderAdapter) GetArchive(ctx context.Context, coords ports.Coordinates, date string) ([]ports.DailyWeatherData, error) {
	if date == "" {
		return nil, errors.NewValidationError("date cannot be empty")
	}

	query := p.baseQuery(coords)
	query.Set("start_date", date)
	query.Set("end_date", date)

	return p.fetchDaily(ctx, p.archiveBaseURL+"/archive?"+query.Encode())
}

// GetProviderName returns the name of this weather provider
func (p *OpenMeteoProviderAdapter) GetProviderName() string {
	return p.name
}

func (p *OpenMeteoProviderAdapter) baseQuery(coords ports.Coordinates) url.Values {
	query := url.Values{}
	query.Set("latitude", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("longitude", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("daily", openMeteoDailyFields)
	query.Set("timezone", "auto")
	return query
}

func (p *OpenMeteoProviderAdapter) fetchDaily(ctx context.Context, requestURL string) ([]ports.DailyWeatherData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build Open-Meteo request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call Open-Meteo", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && p.logger != nil {
			p.logger.Warn("Failed to close Open-Meteo response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusBadRequest {
			return nil, errors.NewValidationError("Open-Meteo rejected the request")
		}
		return nil, errors.NewExternalAPIError(fmt.Sprintf("Open-Meteo returned status %d", resp.StatusCode), nil)
	}

	var apiResp OpenMeteoDailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode Open-Meteo response", err)
	}

	return apiResp.days(), nil
}

func (r *OpenMeteoDailyResponse) days() []ports.DailyWeatherData {
	days := make([]ports.DailyWeatherData, 0, len(r.Daily.Time))
	for i, date := range r.Daily.Time {
		days = append(days, ports.DailyWeatherData{
			Date:          date,
			TempMax:       valueAt(r.Daily.TempMax, i),
			TempMin:       valueAt(r.Daily.TempMin, i),
			Precipitation: valueAt(r.Daily.PrecipitationMax, i),
			WeatherCode:   int(valueAt(r.Daily.WeatherCode, i)),
		})
	}
	return days
}

// valueAt treats missing and null entries as zero
func valueAt(values []*float64, i int) float64 {
	if i >= len(values) || values[i] == nil {
		return 0
	}
	return *values[i]
}
