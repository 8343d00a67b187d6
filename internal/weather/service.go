// Package weather evaluates viewing conditions at a point and time, backed by
// a remote forecast provider with a deterministic fallback estimate.
package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sunflight/internal/config"
	"sunflight/internal/providers/openmeteo"
	"sunflight/internal/providers/weatherapi"
)

// ForecastProvider fetches an hourly forecast from WeatherAPI.com.
type ForecastProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64, date string) (*weatherapi.ForecastAPIResponse, error)
}

// OpenMeteoProvider fetches an hourly forecast from Open-Meteo.
type OpenMeteoProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

// Service evaluates weather conditions for sun viewing. Evaluate never fails:
// provider errors are absorbed into the deterministic default estimate.
type Service interface {
	Evaluate(ctx context.Context, latitude, longitude float64, at time.Time) *Conditions
}

type weatherService struct {
	weatherAPI ForecastProvider
	openMeteo  OpenMeteoProvider
	cfg        *config.Config
	logger     *slog.Logger
}

// NewWeatherService creates a weather service with real provider clients.
func NewWeatherService(cfg *config.Config, logger *slog.Logger) Service {
	return NewWeatherServiceWithProviders(
		weatherapi.NewClient(cfg.Weather.APIKey),
		openmeteo.NewClient(),
		cfg,
		logger,
	)
}

// NewWeatherServiceWithProviders creates a weather service with custom
// providers. This is useful for testing with mock providers.
func NewWeatherServiceWithProviders(
	weatherAPI ForecastProvider,
	openMeteo OpenMeteoProvider,
	cfg *config.Config,
	logger *slog.Logger,
) Service {
	return &weatherService{
		weatherAPI: weatherAPI,
		openMeteo:  openMeteo,
		cfg:        cfg,
		logger:     logger.With("component", "weather-service"),
	}
}

// Evaluate returns scored viewing conditions for the given coordinates and
// instant. This is the single fallback decision point: any provider failure,
// timeout or gap in the forecast switches to the default estimate.
func (s *weatherService) Evaluate(ctx context.Context, latitude, longitude float64, at time.Time) *Conditions {
	obs, err := s.fetch(ctx, latitude, longitude, at)
	fromFallback := false
	if err != nil {
		s.logger.Warn("weather provider unavailable, using default estimate",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		obs = defaultEstimate(latitude, at)
		fromFallback = true
	}

	conditions := score(obs)
	conditions.FromFallback = fromFallback
	return conditions
}

// fetch queries the configured provider for the forecast hour closest to the
// requested instant.
func (s *weatherService) fetch(ctx context.Context, latitude, longitude float64, at time.Time) (observation, error) {
	switch s.cfg.Weather.Provider {
	case "openmeteo":
		return s.fetchOpenMeteo(ctx, latitude, longitude, at)
	default:
		return s.fetchWeatherAPI(ctx, latitude, longitude, at)
	}
}

func (s *weatherService) fetchWeatherAPI(ctx context.Context, latitude, longitude float64, at time.Time) (observation, error) {
	if s.cfg.Weather.APIKey == "" {
		return observation{}, fmt.Errorf("no WeatherAPI key configured")
	}

	utc := at.UTC()
	date := utc.Format("2006-01-02")

	resp, err := s.weatherAPI.GetForecast(ctx, latitude, longitude, date)
	if err != nil {
		return observation{}, fmt.Errorf("failed to get forecast: %w", err)
	}

	for _, day := range resp.Forecast.ForecastDay {
		if day.Date != date {
			continue
		}
		for _, hour := range day.Hour {
			parsed, err := time.Parse("2006-01-02 15:04", hour.Time)
			if err != nil {
				continue
			}
			if parsed.Hour() != utc.Hour() {
				continue
			}
			return observation{
				provider:    "weatherapi",
				clouds:      hour.Cloud,
				precip:      hour.ChanceOfRain,
				visKm:       hour.VisKm,
				tempC:       hour.TempC,
				description: hour.Condition.Text,
				sunrise:     day.Astro.Sunrise,
				sunset:      day.Astro.Sunset,
			}, nil
		}
	}

	return observation{}, fmt.Errorf("no forecast hour for %s", utc.Format(time.RFC3339))
}

func (s *weatherService) fetchOpenMeteo(ctx context.Context, latitude, longitude float64, at time.Time) (observation, error) {
	resp, err := s.openMeteo.GetForecast(ctx, latitude, longitude)
	if err != nil {
		return observation{}, fmt.Errorf("failed to get forecast: %w", err)
	}

	utc := at.UTC()
	target := utc.Format("2006-01-02T15") // hourly resolution

	for i, stamp := range resp.Hourly.Time {
		if len(stamp) < 13 || stamp[:13] != target {
			continue
		}
		if i >= len(resp.Hourly.CloudCover) ||
			i >= len(resp.Hourly.PrecipitationProbability) ||
			i >= len(resp.Hourly.Visibility) ||
			i >= len(resp.Hourly.Temperature2M) {
			break
		}
		description := "unknown"
		if i < len(resp.Hourly.WeatherCode) {
			description = weatherCodeDescription(resp.Hourly.WeatherCode[i])
		}
		return observation{
			provider:    "openmeteo",
			clouds:      resp.Hourly.CloudCover[i],
			precip:      resp.Hourly.PrecipitationProbability[i],
			visKm:       resp.Hourly.Visibility[i] / 1000,
			tempC:       resp.Hourly.Temperature2M[i],
			description: description,
		}, nil
	}

	return observation{}, fmt.Errorf("no forecast hour for %s", utc.Format(time.RFC3339))
}

// score rates an observation for sun viewing. Cloud cover dominates, then
// precipitation and visibility.
func score(obs observation) *Conditions {
	viewing := 100.0

	switch {
	case obs.clouds > 80:
		viewing -= 70
	case obs.clouds > 60:
		viewing -= 50
	case obs.clouds > 40:
		viewing -= 30
	case obs.clouds > 20:
		viewing -= 10
	}

	switch {
	case obs.precip > 80:
		viewing -= 40
	case obs.precip > 50:
		viewing -= 25
	case obs.precip > 30:
		viewing -= 15
	}

	switch {
	case obs.visKm < 1:
		viewing -= 50
	case obs.visKm < 5:
		viewing -= 30
	case obs.visKm < 8:
		viewing -= 10
	}

	viewing = max(0, min(100, viewing))

	quality := "excellent"
	switch {
	case viewing < 20:
		quality = "very poor"
	case viewing < 40:
		quality = "poor"
	case viewing < 60:
		quality = "moderate"
	case viewing < 80:
		quality = "good"
	}

	return &Conditions{
		Provider:             obs.provider,
		CloudsPercent:        obs.clouds,
		PrecipitationPercent: obs.precip,
		VisibilityKm:         obs.visKm,
		TemperatureC:         obs.tempC,
		Description:          obs.description,
		SunriseTime:          obs.sunrise,
		SunsetTime:           obs.sunset,
		ViewingScore:         viewing,
		QualityDescription:   quality,
	}
}

// weatherCodeDescription maps the common WMO weather codes Open-Meteo returns
// to short descriptions.
func weatherCodeDescription(code int) string {
	switch {
	case code == 0:
		return "clear sky"
	case code <= 3:
		return "partly cloudy"
	case code <= 48:
		return "fog"
	case code <= 57:
		return "drizzle"
	case code <= 67:
		return "rain"
	case code <= 77:
		return "snow"
	case code <= 82:
		return "rain showers"
	case code <= 86:
		return "snow showers"
	default:
		return "thunderstorm"
	}
}
