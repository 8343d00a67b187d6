// Package sunscan walks a flight trajectory looking for sunrise and sunset
// events and for the single best viewing moment under a stated preference.
package sunscan

import (
	"errors"
	"math"
	"time"

	"sunflight/internal/config"
	"sunflight/internal/solar"
	"sunflight/internal/types"
)

// EventKind names a horizon crossing.
type EventKind string

const (
	Sunrise EventKind = "sunrise"
	Sunset  EventKind = "sunset"
)

// SunEvent is a horizon crossing detected between two adjacent trajectory
// samples, with its time and location interpolated to the crossing.
type SunEvent struct {
	Kind     EventKind      `json:"kind"`
	Instant  time.Time      `json:"instant"`
	Location types.GeoPoint `json:"location"`
}

// ErrEmptyTrajectory is returned when a scan is requested over no samples.
var ErrEmptyTrajectory = errors.New("trajectory is empty")

const (
	// Fixed scores for samples where the sun is below the horizon: a high
	// reward when the preferred event is imminent, a low penalty otherwise.
	scoreImminent     = 75.0
	scoreBelowHorizon = -10.0

	// Decay per degree outside the scoring half-width.
	slopeBeyondWindow = 2.0
)

// Scanner scores trajectory samples for sun-viewing quality.
type Scanner struct {
	optimalAltitudeDeg float64
	halfWidthDeg       float64
	directionalBonus   float64
	probe              time.Duration
}

// NewScanner creates a scanner with the given scoring heuristics.
func NewScanner(cfg config.ScoringConfig) *Scanner {
	return &Scanner{
		optimalAltitudeDeg: cfg.OptimalAltitudeDeg,
		halfWidthDeg:       cfg.HalfWidthDeg,
		directionalBonus:   cfg.DirectionalBonus,
		probe:              time.Duration(cfg.ProbeMinutes) * time.Minute,
	}
}

// DetectEvents returns every sunrise and sunset crossed along the trajectory,
// in flight order. The crossing instant and location are found by linear
// interpolation between the two samples bracketing the visibility flip. No
// event is invented when the sun never crosses the horizon.
func (s *Scanner) DetectEvents(trajectory []types.TrajectorySample, departure time.Time) []SunEvent {
	var events []SunEvent

	for i := 1; i < len(trajectory); i++ {
		prev := trajectory[i-1]
		cur := trajectory[i]

		prevTime := departure.Add(hours(prev.ElapsedHours))
		curTime := departure.Add(hours(cur.ElapsedHours))

		prevSun := solar.At(prev.Position, prev.AltitudeM, prevTime)
		curSun := solar.At(cur.Position, cur.AltitudeM, curTime)

		if prevSun.AboveHorizon() == curSun.AboveHorizon() {
			continue
		}

		kind := Sunrise
		if prevSun.AboveHorizon() {
			kind = Sunset
		}

		// Linear zero crossing of the sun's altitude between the samples.
		fraction := 0.5
		if delta := curSun.AltitudeDeg - prevSun.AltitudeDeg; delta != 0 {
			fraction = (0 - prevSun.AltitudeDeg) / delta
		}

		events = append(events, SunEvent{
			Kind:    kind,
			Instant: prevTime.Add(time.Duration(fraction * float64(curTime.Sub(prevTime)))),
			Location: types.GeoPoint{
				Latitude:  lerp(prev.Position.Latitude, cur.Position.Latitude, fraction),
				Longitude: lerp(prev.Position.Longitude, cur.Position.Longitude, fraction),
			},
		})
	}

	return events
}

// BestMoment scores every trajectory sample for viewing quality under the
// preference and returns the index and sun position of the winner. Ties keep
// the earliest sample.
func (s *Scanner) BestMoment(trajectory []types.TrajectorySample, departure time.Time, preference types.SunPreference) (int, solar.Position, error) {
	if len(trajectory) == 0 {
		return 0, solar.Position{}, ErrEmptyTrajectory
	}

	positions := make([]solar.Position, len(trajectory))
	for i, sample := range trajectory {
		positions[i] = solar.At(sample.Position, sample.AltitudeM, departure.Add(hours(sample.ElapsedHours)))
	}

	bestIdx := 0
	bestScore := math.Inf(-1)

	for i, sample := range trajectory {
		score := s.scoreSample(sample, positions[i], preference)

		// Directional bonus, endpoints excluded: a rising sun rewards a
		// sunrise preference, a setting sun rewards sunset.
		if i > 0 && i < len(trajectory)-1 {
			trend := positions[i].AltitudeDeg - positions[i-1].AltitudeDeg
			if (preference == types.PreferSunrise && trend > 0) ||
				(preference == types.PreferSunset && trend < 0) {
				score += s.directionalBonus
			}
		}

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	return bestIdx, positions[bestIdx], nil
}

// scoreSample rates a single sample. Below the horizon the score depends on
// whether the preferred event is imminent; above it the score peaks at the
// optimal altitude and decays with distance from it.
func (s *Scanner) scoreSample(sample types.TrajectorySample, sun solar.Position, preference types.SunPreference) float64 {
	if !sun.AboveHorizon() {
		// Probe the same point shifted in time: just before a sunrise the
		// sun will be up shortly after, just after a sunset it was up
		// shortly before.
		probeAt := sun.Instant.Add(s.probe)
		if preference == types.PreferSunset {
			probeAt = sun.Instant.Add(-s.probe)
		}
		if solar.At(sample.Position, sample.AltitudeM, probeAt).AboveHorizon() {
			return scoreImminent
		}
		return scoreBelowHorizon
	}

	dist := math.Abs(sun.AltitudeDeg - s.optimalAltitudeDeg)
	if dist <= s.halfWidthDeg {
		return 100 - dist*(50/s.halfWidthDeg)
	}
	return math.Max(0, 50-(dist-s.halfWidthDeg)*slopeBeyondWindow)
}

func hours(h float64) time.Duration {
	return time.Duration(h * float64(time.Hour))
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
