package weather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"sunflight/internal/config"
	"sunflight/internal/providers/openmeteo"
	"sunflight/internal/providers/weatherapi"
)

type mockWeatherAPIProvider struct {
	resp *weatherapi.ForecastAPIResponse
	err  error
}

func (m *mockWeatherAPIProvider) GetForecast(ctx context.Context, latitude, longitude float64, date string) (*weatherapi.ForecastAPIResponse, error) {
	return m.resp, m.err
}

type mockOpenMeteoProvider struct {
	resp *openmeteo.ForecastAPIResponse
	err  error
}

func (m *mockOpenMeteoProvider) GetForecast(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error) {
	return m.resp, m.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(provider, apiKey string) *config.Config {
	return &config.Config{
		Weather: config.WeatherConfig{
			Provider:       provider,
			APIKey:         apiKey,
			TimeoutSeconds: 5,
		},
	}
}

func weatherAPIResponseFor(at time.Time, clouds, precip, visKm float64) *weatherapi.ForecastAPIResponse {
	utc := at.UTC()
	hour := weatherapi.Hour{
		Time:         utc.Format("2006-01-02 15:04"),
		TempC:        18,
		Cloud:        clouds,
		ChanceOfRain: precip,
		VisKm:        visKm,
	}
	hour.Condition.Text = "Partly cloudy"

	resp := &weatherapi.ForecastAPIResponse{}
	resp.Forecast.ForecastDay = []weatherapi.ForecastDay{
		{
			Date:  utc.Format("2006-01-02"),
			Astro: weatherapi.Astro{Sunrise: "04:14 AM", Sunset: "09:01 PM"},
			Hour:  []weatherapi.Hour{hour},
		},
	}
	return resp
}

func TestEvaluate_UsesWeatherAPIForecast(t *testing.T) {
	at := time.Date(2025, 6, 21, 18, 0, 0, 0, time.UTC)
	svc := NewWeatherServiceWithProviders(
		&mockWeatherAPIProvider{resp: weatherAPIResponseFor(at, 10, 0, 10)},
		&mockOpenMeteoProvider{err: errors.New("should not be called")},
		testConfig("weatherapi", "test-key"),
		testLogger(),
	)

	conditions := svc.Evaluate(context.Background(), 52.17, 20.97, at)

	if conditions.FromFallback {
		t.Error("FromFallback = true, want live forecast")
	}
	if conditions.Provider != "weatherapi" {
		t.Errorf("provider = %q, want weatherapi", conditions.Provider)
	}
	if conditions.ViewingScore != 100 {
		t.Errorf("viewing score = %v, want 100 for clear conditions", conditions.ViewingScore)
	}
	if conditions.QualityDescription != "excellent" {
		t.Errorf("quality = %q, want excellent", conditions.QualityDescription)
	}
	if conditions.SunriseTime != "04:14 AM" || conditions.SunsetTime != "09:01 PM" {
		t.Errorf("sun calendar = %q/%q, want the forecast day's astro times", conditions.SunriseTime, conditions.SunsetTime)
	}
}

func TestEvaluate_UsesOpenMeteoForecast(t *testing.T) {
	at := time.Date(2025, 6, 21, 18, 0, 0, 0, time.UTC)
	resp := &openmeteo.ForecastAPIResponse{
		Hourly: openmeteo.Hourly{
			Time:                     []string{"2025-06-21T17:00", "2025-06-21T18:00"},
			Temperature2M:            []float64{20, 19},
			PrecipitationProbability: []float64{10, 90},
			CloudCover:               []float64{20, 90},
			Visibility:               []float64{20000, 500},
			WeatherCode:              []int{1, 61},
		},
	}

	svc := NewWeatherServiceWithProviders(
		&mockWeatherAPIProvider{err: errors.New("should not be called")},
		&mockOpenMeteoProvider{resp: resp},
		testConfig("openmeteo", ""),
		testLogger(),
	)

	conditions := svc.Evaluate(context.Background(), 52.17, 20.97, at)

	if conditions.FromFallback {
		t.Error("FromFallback = true, want live forecast")
	}
	if conditions.Provider != "openmeteo" {
		t.Errorf("provider = %q, want openmeteo", conditions.Provider)
	}
	if conditions.CloudsPercent != 90 {
		t.Errorf("clouds = %v, want the 18:00 value 90", conditions.CloudsPercent)
	}
	if conditions.VisibilityKm != 0.5 {
		t.Errorf("visibility = %v km, want 0.5", conditions.VisibilityKm)
	}
	// 100 - 70 (clouds) - 40 (precip) - 50 (visibility) clamps to 0.
	if conditions.ViewingScore != 0 {
		t.Errorf("viewing score = %v, want 0", conditions.ViewingScore)
	}
	if conditions.Description != "rain" {
		t.Errorf("description = %q, want rain for WMO code 61", conditions.Description)
	}
}

func TestEvaluate_FallsBackOnProviderError(t *testing.T) {
	svc := NewWeatherServiceWithProviders(
		&mockWeatherAPIProvider{err: errors.New("connection refused")},
		&mockOpenMeteoProvider{},
		testConfig("weatherapi", "test-key"),
		testLogger(),
	)

	at := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	conditions := svc.Evaluate(context.Background(), 52.17, 20.97, at)

	if !conditions.FromFallback {
		t.Fatal("FromFallback = false, want default estimate")
	}
	if conditions.Provider != "default" {
		t.Errorf("provider = %q, want default", conditions.Provider)
	}
	if conditions.ViewingScore < 0 || conditions.ViewingScore > 100 {
		t.Errorf("viewing score = %v, want in [0, 100]", conditions.ViewingScore)
	}
}

func TestEvaluate_FallsBackWithoutAPIKey(t *testing.T) {
	svc := NewWeatherServiceWithProviders(
		&mockWeatherAPIProvider{},
		&mockOpenMeteoProvider{},
		testConfig("weatherapi", ""),
		testLogger(),
	)

	conditions := svc.Evaluate(context.Background(), 52.17, 20.97, time.Now())
	if !conditions.FromFallback {
		t.Error("FromFallback = false, want default estimate without an API key")
	}
}

func TestEvaluate_FallsBackOnMissingForecastHour(t *testing.T) {
	at := time.Date(2025, 6, 21, 18, 0, 0, 0, time.UTC)
	// Forecast covers a different day entirely.
	resp := weatherAPIResponseFor(at.Add(48*time.Hour), 10, 0, 10)

	svc := NewWeatherServiceWithProviders(
		&mockWeatherAPIProvider{resp: resp},
		&mockOpenMeteoProvider{},
		testConfig("weatherapi", "test-key"),
		testLogger(),
	)

	conditions := svc.Evaluate(context.Background(), 52.17, 20.97, at)
	if !conditions.FromFallback {
		t.Error("FromFallback = false, want default estimate for a gap in the forecast")
	}
}

func TestDefaultEstimate_Deterministic(t *testing.T) {
	at := time.Date(2025, 7, 10, 6, 0, 0, 0, time.UTC)

	a := defaultEstimate(52.17, at)
	b := defaultEstimate(52.17, at)
	if a != b {
		t.Errorf("identical inputs produced %+v and %+v", a, b)
	}
}

func TestDefaultEstimate_ClimateBands(t *testing.T) {
	tests := []struct {
		name     string
		latitude float64
		at       time.Time
		check    func(t *testing.T, obs observation)
	}{
		{
			name:     "tropical wet season",
			latitude: 10,
			at:       time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC),
			check: func(t *testing.T, obs observation) {
				if obs.clouds != 70 || obs.precip != 60 {
					t.Errorf("got clouds %v precip %v, want 70/60", obs.clouds, obs.precip)
				}
			},
		},
		{
			name:     "polar winter",
			latitude: 70,
			at:       time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC),
			check: func(t *testing.T, obs observation) {
				if obs.tempC != -15 {
					t.Errorf("got temp %v, want -15", obs.tempC)
				}
			},
		},
		{
			name:     "temperate summer",
			latitude: 52,
			at:       time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC),
			check: func(t *testing.T, obs observation) {
				if obs.description != "mostly sunny" {
					t.Errorf("got description %q, want mostly sunny", obs.description)
				}
			},
		},
		{
			name:     "morning clears the sky",
			latitude: 52,
			at:       time.Date(2025, 6, 15, 6, 0, 0, 0, time.UTC),
			check: func(t *testing.T, obs observation) {
				if obs.clouds != 10 {
					t.Errorf("got clouds %v, want 10 after the morning adjustment", obs.clouds)
				}
				if obs.description != "morning mostly sunny" {
					t.Errorf("got description %q, want morning prefix", obs.description)
				}
			},
		},
		{
			name:     "evening adds clouds",
			latitude: 52,
			at:       time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC),
			check: func(t *testing.T, obs observation) {
				if obs.clouds != 40 {
					t.Errorf("got clouds %v, want 40 after the evening adjustment", obs.clouds)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, defaultEstimate(tt.latitude, tt.at))
		})
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name        string
		obs         observation
		wantScore   float64
		wantQuality string
	}{
		{
			name:        "clear sky",
			obs:         observation{clouds: 0, precip: 0, visKm: 10},
			wantScore:   100,
			wantQuality: "excellent",
		},
		{
			name:        "light clouds",
			obs:         observation{clouds: 30, precip: 0, visKm: 10},
			wantScore:   90,
			wantQuality: "excellent",
		},
		{
			name:        "overcast",
			obs:         observation{clouds: 85, precip: 0, visKm: 10},
			wantScore:   30,
			wantQuality: "poor",
		},
		{
			name:        "rainy and hazy",
			obs:         observation{clouds: 65, precip: 60, visKm: 4},
			wantScore:   0,
			wantQuality: "very poor",
		},
		{
			name:        "moderate mix",
			obs:         observation{clouds: 45, precip: 35, visKm: 7},
			wantScore:   45,
			wantQuality: "moderate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := score(tt.obs)
			if got.ViewingScore != tt.wantScore {
				t.Errorf("viewing score = %v, want %v", got.ViewingScore, tt.wantScore)
			}
			if got.QualityDescription != tt.wantQuality {
				t.Errorf("quality = %q, want %q", got.QualityDescription, tt.wantQuality)
			}
		})
	}
}
