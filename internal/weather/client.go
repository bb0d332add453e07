// Package weather fetches current conditions from the Open-Meteo forecast
// API. The recommendation engine only uses weather for a small additive
// bonus, so every failure path degrades to a fallback context instead of
// surfacing an error to the user.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
)

// DefaultBaseURL is the public Open-Meteo endpoint (no API key required)
const DefaultBaseURL = "https://api.open-meteo.com"

// Client is an HTTP client for the forecast provider
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Observation is the raw provider reading: a WMO condition code plus the
// current temperature in Fahrenheit
type Observation struct {
	Code  int     `json:"code"`
	TempF float64 `json:"temp_f"`
}

// currentWeatherResponse mirrors the provider's response shape
type currentWeatherResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

// New creates a weather client against the default endpoint
func New() *Client {
	return NewWithBaseURL(DefaultBaseURL)
}

// NewWithBaseURL creates a weather client against a custom endpoint (tests)
func NewWithBaseURL(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Current fetches the current observation for the given coordinates
func (c *Client) Current(ctx context.Context, latitude, longitude float64) (*Observation, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", latitude))
	q.Set("longitude", fmt.Sprintf("%.4f", longitude))
	q.Set("current_weather", "true")
	q.Set("temperature_unit", "fahrenheit")

	reqURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach forecast provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("forecast request failed (%d): %s", resp.StatusCode, string(body))
	}

	var parsed currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	return &Observation{
		Code:  parsed.CurrentWeather.WeatherCode,
		TempF: parsed.CurrentWeather.Temperature,
	}, nil
}

// Context fetches and classifies the current weather, falling back to the
// mild/72°F context on any error
func (c *Client) Context(ctx context.Context, latitude, longitude float64) recommend.WeatherContext {
	obs, err := c.Current(ctx, latitude, longitude)
	if err != nil {
		return recommend.FallbackWeather()
	}
	return recommend.WeatherContext{
		Condition: recommend.ClassifyWeather(obs.Code, obs.TempF),
		TempF:     obs.TempF,
	}
}
