package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.17&longitude=20.97&hourly=temperature_2m,precipitation_probability,cloud_cover,visibility,weather_code&timezone=GMT&forecast_days=7
const (
	baseForecastURL = "https://api.open-meteo.com/v1/forecast"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseForecastURL,
	}
}

// GetForecast fetches the hourly forecast for the given coordinates. Times in
// the response are GMT so they line up with the flight's UTC instants.
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	hourlyVars := []string{
		"temperature_2m",
		"precipitation_probability",
		"cloud_cover",
		"visibility",
		"weather_code",
	}

	q := u.Query()
	q.Set("latitude", fmt.Sprintf("%f", latitude))
	q.Set("longitude", fmt.Sprintf("%f", longitude))
	q.Set("hourly", strings.Join(hourlyVars, ","))
	q.Set("timezone", "GMT")
	q.Set("forecast_days", "7")
	q.Set("timeformat", "iso8601")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &apiResp, nil
}
