package route

import (
	"errors"
	"fmt"
	"math"

	"sunflight/internal/config"
	"sunflight/internal/types"
)

// EarthRadiusKm is the mean Earth radius of the spherical model.
const EarthRadiusKm = 6371.0

// ErrTooFewSamples is returned when a trajectory of fewer than two samples
// is requested.
var ErrTooFewSamples = errors.New("trajectory needs at least two samples")

// Synthesizer produces physically plausible flight trajectories between two
// airports using a simplified climb/cruise/descent performance model. No
// wind, no routing constraints.
type Synthesizer struct {
	cruiseSpeedKmh  float64
	cruiseAltitudeM float64
	climbRateMs     float64
	descentRateMs   float64
	groundOpsHours  float64
}

// NewSynthesizer creates a synthesizer from the flight performance config.
func NewSynthesizer(cfg config.FlightConfig) *Synthesizer {
	return &Synthesizer{
		cruiseSpeedKmh:  cfg.CruiseSpeedKmh,
		cruiseAltitudeM: cfg.CruiseAltitudeM,
		climbRateMs:     cfg.ClimbRateMs,
		descentRateMs:   cfg.DescentRateMs,
		groundOpsHours:  cfg.GroundOpsHours,
	}
}

// EstimateDuration returns the estimated flight duration in hours for the
// given great-circle distance, including a fixed ground-operations allowance.
func (s *Synthesizer) EstimateDuration(distanceKm float64) float64 {
	return distanceKm/s.cruiseSpeedKmh + s.groundOpsHours
}

// Synthesize computes an ordered trajectory of sampleCount points between
// departure and arrival. Samples are evenly spaced in time; the altitude
// profile follows climb, cruise and descent phases at the configured rates.
// A departure equal to the arrival collapses every sample onto that point.
func (s *Synthesizer) Synthesize(departure, arrival types.GeoPoint, sampleCount int) ([]types.TrajectorySample, error) {
	if sampleCount < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, sampleCount)
	}

	distanceKm := Haversine(departure, arrival)
	totalHours := s.EstimateDuration(distanceKm)

	// Phase durations from the fixed vertical rates.
	climbHours := s.cruiseAltitudeM / (s.climbRateMs * 3600)
	descentHours := s.cruiseAltitudeM / (s.descentRateMs * 3600)

	// On short hops there is no time to reach cruise altitude. Scale the
	// climb and descent down proportionally so the profile stays continuous.
	peakAltitudeM := s.cruiseAltitudeM
	if climbHours+descentHours > totalHours {
		scale := totalHours / (climbHours + descentHours)
		climbHours *= scale
		descentHours *= scale
		peakAltitudeM *= scale
	}
	cruiseHours := totalHours - climbHours - descentHours

	// Ground distance covered per phase; climb and descent average half the
	// cruise speed (trapezoidal approximation).
	climbKm := climbHours * s.cruiseSpeedKmh / 2
	descentKm := descentHours * s.cruiseSpeedKmh / 2
	cruiseKm := distanceKm - climbKm - descentKm

	samples := make([]types.TrajectorySample, 0, sampleCount)
	for i := 0; i < sampleCount; i++ {
		fraction := float64(i) / float64(sampleCount-1)
		elapsed := totalHours * fraction

		var altitudeM, distFraction float64
		switch {
		case elapsed <= climbHours && climbHours > 0:
			phase := elapsed / climbHours
			altitudeM = peakAltitudeM * phase
			if distanceKm > 0 {
				distFraction = (climbKm / distanceKm) * phase
			}
		case elapsed >= totalHours-descentHours && descentHours > 0:
			phase := (elapsed - (totalHours - descentHours)) / descentHours
			altitudeM = peakAltitudeM * (1 - phase)
			if distanceKm > 0 {
				distFraction = (climbKm+cruiseKm)/distanceKm + (descentKm/distanceKm)*phase
			}
		default:
			altitudeM = peakAltitudeM
			if cruiseHours > 0 && distanceKm > 0 {
				phase := (elapsed - climbHours) / cruiseHours
				distFraction = (climbKm + cruiseKm*phase) / distanceKm
			}
		}

		// The duration model pads short hops with ground-ops time, which can
		// push the per-phase distance estimate past the route ends.
		distFraction = math.Min(1, math.Max(0, distFraction))

		samples = append(samples, types.TrajectorySample{
			Position:     IntermediatePoint(departure, arrival, distFraction),
			AltitudeM:    altitudeM,
			ElapsedHours: elapsed,
			Fraction:     fraction,
		})
	}

	return samples, nil
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b types.GeoPoint) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}

// IntermediatePoint returns the point at the given fraction of the great
// circle from a to b, by spherical interpolation of the unit vectors.
func IntermediatePoint(a, b types.GeoPoint, fraction float64) types.GeoPoint {
	lat1 := radians(a.Latitude)
	lon1 := radians(a.Longitude)
	lat2 := radians(b.Latitude)
	lon2 := radians(b.Longitude)

	// Angular distance via the spherical law of cosines.
	cosD := math.Sin(lat1)*math.Sin(lat2) + math.Cos(lat1)*math.Cos(lat2)*math.Cos(lon1-lon2)
	if cosD > 1 {
		cosD = 1
	}
	if cosD < -1 {
		cosD = -1
	}
	d := math.Acos(cosD)

	// Coincident endpoints: the interpolation weights divide by sin(d), and
	// acos rounding keeps d around 1e-8 even for identical points. Anything
	// under a meter collapses onto a.
	if d < 1e-7 {
		return a
	}

	wa := math.Sin((1-fraction)*d) / math.Sin(d)
	wb := math.Sin(fraction*d) / math.Sin(d)

	x := wa*math.Cos(lat1)*math.Cos(lon1) + wb*math.Cos(lat2)*math.Cos(lon2)
	y := wa*math.Cos(lat1)*math.Sin(lon1) + wb*math.Cos(lat2)*math.Sin(lon2)
	z := wa*math.Sin(lat1) + wb*math.Sin(lat2)

	return types.GeoPoint{
		Latitude:  degrees(math.Atan2(z, math.Sqrt(x*x+y*y))),
		Longitude: degrees(math.Atan2(y, x)),
	}
}

// InitialBearing returns the initial great-circle bearing from a to b in
// degrees clockwise from north, in [0, 360).
func InitialBearing(a, b types.GeoPoint) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Mod(degrees(math.Atan2(y, x))+360, 360)
}

// BearingAt returns the local flight bearing at the given sample, taken
// between its neighbors and clamped at the trajectory ends.
func BearingAt(samples []types.TrajectorySample, idx int) float64 {
	before := samples[clampIndex(idx-1, len(samples))]
	after := samples[clampIndex(idx+1, len(samples))]
	return InitialBearing(before.Position, after.Position)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}
	return i
}

var compassNames = [8]string{"north", "northeast", "east", "southeast", "south", "southwest", "west", "northwest"}

// CompassName maps a bearing in degrees to one of the 8 compass names.
func CompassName(bearing float64) string {
	idx := int(math.Round(bearing/45)) % 8
	if idx < 0 {
		idx += 8
	}
	return compassNames[idx]
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
