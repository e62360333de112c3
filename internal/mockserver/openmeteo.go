// Package mockserver serves deterministic Open-Meteo forecast, archive and
// geocoding responses for local runs and tests
package mockserver

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// DailyBlock mirrors the daily section of an Open-Meteo response
type DailyBlock struct {
	Time             []string  `json:"time"`
	TempMax          []float64 `json:"temperature_2m_max"`
	TempMin          []float64 `json:"temperature_2m_min"`
	PrecipitationMax []float64 `json:"precipitation_probability_max"`
	WeatherCode      []int     `json:"weathercode"`
}

// GeocodingResult is one entry of a city search
type GeocodingResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1,omitempty"`
}

var cities = []GeocodingResult{
	{Name: "Berlin", Latitude: 52.52437, Longitude: 13.41053, Country: "Germany", Admin1: "Land Berlin"},
	{Name: "Bern", Latitude: 46.94809, Longitude: 7.44744, Country: "Switzerland", Admin1: "Bern"},
	{Name: "Chittagong", Latitude: 22.3384, Longitude: 91.83168, Country: "Bangladesh", Admin1: "Chittagong"},
	{Name: "Dhaka", Latitude: 23.7104, Longitude: 90.40744, Country: "Bangladesh", Admin1: "Dhaka"},
	{Name: "London", Latitude: 51.50853, Longitude: -0.12574, Country: "United Kingdom", Admin1: "England"},
	{Name: "London", Latitude: 42.98339, Longitude: -81.23304, Country: "Canada", Admin1: "Ontario"},
	{Name: "Paris", Latitude: 48.85341, Longitude: 2.3488, Country: "France", Admin1: "Île-de-France"},
}

// weatherCodes cycles through one code of every condition band
var weatherCodes = []int{0, 2, 45, 61, 71, 80, 85, 95}

// NewOpenMeteoRouter returns a router answering /v1/forecast, /v1/archive and
// /v1/search. Coordinates 0,0 and the city name "servererror" fail with 500.
// now supplies the first forecast day and defaults to time.Now.
func NewOpenMeteoRouter(now func() time.Time) *gin.Engine {
	if now == nil {
		now = time.Now
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.GET("/forecast", func(c *gin.Context) {
		lat, lon, ok := coordinates(c)
		if !ok {
			return
		}

		days, err := strconv.Atoi(c.DefaultQuery("forecast_days", "7"))
		if err != nil || days < 1 || days > 16 {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "Invalid forecast_days"})
			return
		}

		start := now().UTC()
		c.JSON(http.StatusOK, gin.H{"daily": daily(lat, lon, start, days)})
	})

	v1.GET("/archive", func(c *gin.Context) {
		lat, lon, ok := coordinates(c)
		if !ok {
			return
		}

		start, err1 := time.Parse(dateLayout, c.Query("start_date"))
		end, err2 := time.Parse(dateLayout, c.Query("end_date"))
		if err1 != nil || err2 != nil || end.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "Invalid date range"})
			return
		}

		days := int(end.Sub(start).Hours()/24) + 1
		c.JSON(http.StatusOK, gin.H{"daily": daily(lat, lon, start, days)})
	})

	v1.GET("/search", func(c *gin.Context) {
		name := strings.ToLower(strings.TrimSpace(c.Query("name")))
		if name == "servererror" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": true, "reason": "Internal server error"})
			return
		}

		count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
		if err != nil || count < 1 {
			count = 10
		}

		var results []GeocodingResult
		for _, city := range cities {
			if name != "" && strings.HasPrefix(strings.ToLower(city.Name), name) {
				results = append(results, city)
			}
			if len(results) == count {
				break
			}
		}

		// Open-Meteo omits the results key when nothing matched
		if len(results) == 0 {
			c.JSON(http.StatusOK, gin.H{"generationtime_ms": 0.1})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	})

	return r
}

func coordinates(c *gin.Context) (float64, float64, bool) {
	lat, err1 := strconv.ParseFloat(c.Query("latitude"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("longitude"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": true, "reason": "latitude and longitude are required"})
		return 0, 0, false
	}
	if lat == 0 && lon == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": true, "reason": "Internal server error"})
		return 0, 0, false
	}
	return lat, lon, true
}

// daily derives stable values from the position and the day offset
func daily(lat, lon float64, start time.Time, days int) DailyBlock {
	block := DailyBlock{
		Time:             make([]string, 0, days),
		TempMax:          make([]float64, 0, days),
		TempMin:          make([]float64, 0, days),
		PrecipitationMax: make([]float64, 0, days),
		WeatherCode:      make([]int, 0, days),
	}

	base := 30 - math.Abs(lat)/3
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		seed := (day.YearDay() + int(math.Abs(lon))) % len(weatherCodes)

		block.Time = append(block.Time, day.Format(dateLayout))
		block.TempMax = append(block.TempMax, math.Round((base+float64(seed))*10)/10)
		block.TempMin = append(block.TempMin, math.Round((base-8+float64(seed)/2)*10)/10)
		block.PrecipitationMax = append(block.PrecipitationMax, float64(seed*12))
		block.WeatherCode = append(block.WeatherCode, weatherCodes[seed])
	}
	return block
}
