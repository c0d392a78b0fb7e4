package weather

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vitality/internal/models"
)

const baseURL = "https://api.open-meteo.com/v1/forecast"

// fetchTimeout bounds the provider call so a slow upstream degrades to
// the fallback reading instead of blocking a recommendation.
const fetchTimeout = 10 * time.Second

// Provider supplies a current weather reading on demand.
type Provider interface {
	Current() (models.WeatherReading, error)
}

// OpenMeteoClient is a Provider backed by the Open-Meteo API.
type OpenMeteoClient struct {
	client    *http.Client
	latitude  float64
	longitude float64
}

// NewOpenMeteoClient creates a client pinned to one location.
func NewOpenMeteoClient(latitude, longitude float64) *OpenMeteoClient {
	return &OpenMeteoClient{
		client:    &http.Client{Timeout: fetchTimeout},
		latitude:  latitude,
		longitude: longitude,
	}
}

type currentResponse struct {
	Current struct {
		Time               string   `json:"time"`
		Temperature2m      *float64 `json:"temperature_2m"`
		RelativeHumidity2m *float64 `json:"relative_humidity_2m"`
		WeatherCode        int      `json:"weather_code"`
	} `json:"current"`
}

// BuildURL builds the current-conditions request URL.
func (c *OpenMeteoClient) BuildURL() string {
	return fmt.Sprintf("%s?latitude=%.4f&longitude=%.4f&timezone=auto&temperature_unit=celsius&current=temperature_2m,relative_humidity_2m,weather_code",
		baseURL, c.latitude, c.longitude)
}

// Current fetches the current conditions for the client's location.
func (c *OpenMeteoClient) Current() (models.WeatherReading, error) {
	resp, err := c.client.Get(c.BuildURL())
	if err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return models.WeatherReading{}, fmt.Errorf("API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var decoded currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return models.WeatherReading{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if decoded.Current.Temperature2m == nil || decoded.Current.RelativeHumidity2m == nil {
		return models.WeatherReading{}, fmt.Errorf("incomplete current conditions in response")
	}

	return models.WeatherReading{
		Temperature: *decoded.Current.Temperature2m,
		Humidity:    *decoded.Current.RelativeHumidity2m,
		Condition:   ConditionText(decoded.Current.WeatherCode),
		FetchedAt:   time.Now(),
	}, nil
}

// FallbackReading is assumed when the provider fails: a mild cloudy
// day, so recommendations degrade instead of erroring.
func FallbackReading() models.WeatherReading {
	return models.WeatherReading{
		Temperature: 25,
		Humidity:    60,
		Condition:   "Cloudy",
		FetchedAt:   time.Now(),
	}
}

// ConditionText maps a WMO weather code to the free-text condition
// label the classifier consumes.
func ConditionText(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code >= 1 && code <= 3:
		return "Cloudy"
	case code == 45 || code == 48:
		return "Fog"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67:
		return "Rain"
	case code >= 71 && code <= 77:
		return "Snow"
	case code >= 80 && code <= 82:
		return "Rain showers"
	case code == 85 || code == 86:
		return "Snow showers"
	case code >= 95 && code <= 99:
		return "Thunderstorm"
	default:
		return "Cloudy"
	}
}
