package sunscan

import (
	"errors"
	"math"
	"testing"
	"time"

	"sunflight/internal/config"
	"sunflight/internal/types"
)

var testScoringConfig = config.ScoringConfig{
	OptimalAltitudeDeg: 5,
	HalfWidthDeg:       10,
	DirectionalBonus:   20,
	ProbeMinutes:       30,
}

var warsaw = types.NewGeoPoint(52.1657, 20.9671)

// stationary builds a trajectory that stays over one point, so horizon
// crossings depend on time alone.
func stationary(point types.GeoPoint, elapsedHours ...float64) []types.TrajectorySample {
	samples := make([]types.TrajectorySample, 0, len(elapsedHours))
	for i, h := range elapsedHours {
		samples = append(samples, types.TrajectorySample{
			Position:     point,
			AltitudeM:    10000,
			ElapsedHours: h,
			Fraction:     float64(i) / float64(len(elapsedHours)-1),
		})
	}
	return samples
}

func TestDetectEvents_Sunrise(t *testing.T) {
	s := NewScanner(testScoringConfig)

	// Warsaw sunrise on the summer solstice is around 02:14 UTC.
	departure := time.Date(2025, 6, 21, 1, 30, 0, 0, time.UTC)
	trajectory := stationary(warsaw, 0, 1.5)

	events := s.DetectEvents(trajectory, departure)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	event := events[0]
	if event.Kind != Sunrise {
		t.Errorf("kind = %q, want %q", event.Kind, Sunrise)
	}

	start := departure
	end := departure.Add(90 * time.Minute)
	if !event.Instant.After(start) || !event.Instant.Before(end) {
		t.Errorf("instant %v not strictly between samples %v and %v", event.Instant, start, end)
	}
	if math.Abs(event.Location.Latitude-warsaw.Latitude) > 1e-6 {
		t.Errorf("event latitude = %v, want %v for a stationary trajectory", event.Location.Latitude, warsaw.Latitude)
	}
}

func TestDetectEvents_Sunset(t *testing.T) {
	s := NewScanner(testScoringConfig)

	// Warsaw sunset on the summer solstice is around 19:01 UTC.
	departure := time.Date(2025, 6, 21, 18, 30, 0, 0, time.UTC)
	trajectory := stationary(warsaw, 0, 1.5)

	events := s.DetectEvents(trajectory, departure)
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Kind != Sunset {
		t.Errorf("kind = %q, want %q", events[0].Kind, Sunset)
	}
}

func TestDetectEvents_NoCrossing(t *testing.T) {
	s := NewScanner(testScoringConfig)

	// Full daylight over the whole window.
	departure := time.Date(2025, 6, 21, 10, 0, 0, 0, time.UTC)
	trajectory := stationary(warsaw, 0, 1, 2)

	if events := s.DetectEvents(trajectory, departure); len(events) != 0 {
		t.Errorf("got %d events in uninterrupted daylight, want 0", len(events))
	}
}

func TestBestMoment_EmptyTrajectory(t *testing.T) {
	s := NewScanner(testScoringConfig)

	_, _, err := s.BestMoment(nil, time.Now(), types.PreferSunset)
	if !errors.Is(err, ErrEmptyTrajectory) {
		t.Errorf("BestMoment() error = %v, want ErrEmptyTrajectory", err)
	}
}

func TestBestMoment_PrefersSunNearOptimalAltitude(t *testing.T) {
	s := NewScanner(testScoringConfig)

	// 15:30 UTC: sun high (~29 deg). 18:15 UTC: sun a few degrees above the
	// horizon. 20:00 UTC: sun already set.
	departure := time.Date(2025, 6, 21, 15, 30, 0, 0, time.UTC)
	trajectory := stationary(warsaw, 0, 2.75, 4.5)

	idx, sun, err := s.BestMoment(trajectory, departure, types.PreferSunset)
	if err != nil {
		t.Fatalf("BestMoment() error = %v", err)
	}
	if idx != 1 {
		t.Fatalf("best index = %d, want 1", idx)
	}
	if !sun.AboveHorizon() {
		t.Errorf("best moment sun altitude = %v, want above horizon", sun.AltitudeDeg)
	}
	if sun.AltitudeDeg > 15 {
		t.Errorf("best moment sun altitude = %v, want low on the horizon", sun.AltitudeDeg)
	}
}

func TestBestMoment_ImminentSunriseBeatsDeepNight(t *testing.T) {
	s := NewScanner(testScoringConfig)

	// Midnight versus twenty minutes before sunrise; the probe sees the sun
	// up shortly after the second sample.
	departure := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)
	trajectory := stationary(warsaw, 0, 1.9)

	idx, sun, err := s.BestMoment(trajectory, departure, types.PreferSunrise)
	if err != nil {
		t.Fatalf("BestMoment() error = %v", err)
	}
	if idx != 1 {
		t.Errorf("best index = %d, want 1", idx)
	}
	if sun.AboveHorizon() {
		t.Errorf("best moment sun altitude = %v, want still below horizon", sun.AltitudeDeg)
	}
}

func TestBestMoment_TieKeepsEarliestSample(t *testing.T) {
	s := NewScanner(testScoringConfig)

	// Both samples deep in the night score identically.
	departure := time.Date(2025, 6, 21, 23, 0, 0, 0, time.UTC)
	trajectory := stationary(warsaw, 0, 0.5)

	idx, _, err := s.BestMoment(trajectory, departure, types.PreferSunset)
	if err != nil {
		t.Fatalf("BestMoment() error = %v", err)
	}
	if idx != 0 {
		t.Errorf("best index = %d, want 0 on a tie", idx)
	}
}
