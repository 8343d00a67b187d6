// Package solar computes the apparent position of the sun with a closed-form
// low-precision ephemeris. Accuracy is a fraction of a degree, which is enough
// for seat recommendation but not for navigation or astronomy.
package solar

import (
	"math"
	"time"

	"sunflight/internal/types"
)

// Position is the sun's apparent position for one observer and instant.
type Position struct {
	Instant     time.Time `json:"instant"`
	AltitudeDeg float64   `json:"altitude_deg"`
	AzimuthDeg  float64   `json:"azimuth_deg"`
}

// AboveHorizon reports whether the sun is geometrically above the horizon.
func (p Position) AboveHorizon() bool {
	return p.AltitudeDeg > 0
}

// At returns the sun's position as seen from the given point at the given
// instant. It is a pure function: no network, no state, identical inputs
// always produce identical outputs.
//
// The model ignores atmospheric refraction, parallax, and the horizon dip at
// flight altitude; altitudeM is accepted for interface symmetry but does not
// enter the computation.
func At(point types.GeoPoint, altitudeM float64, instant time.Time) Position {
	_ = altitudeM

	utc := instant.UTC()
	jd := julianDay(utc)

	// Julian centuries since J2000.0
	T := (jd - 2451545.0) / 36525.0

	// Sun's geometric mean longitude and mean anomaly (degrees)
	L0 := math.Mod(280.46646+T*(36000.76983+T*0.0003032), 360.0)
	if L0 < 0 {
		L0 += 360
	}
	M := math.Mod(357.52911+T*(35999.05029-0.0001537*T), 360.0)
	if M < 0 {
		M += 360
	}
	Mrad := radians(M)

	// Equation of center
	C := math.Sin(Mrad)*(1.914602-T*(0.004817+0.000014*T)) +
		math.Sin(2*Mrad)*(0.019993-0.000101*T) +
		math.Sin(3*Mrad)*0.000289

	// True longitude and declination
	trueLong := radians(L0 + C)
	obliquity := radians(23.0 + (26.0+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60.0)/60.0)
	declination := math.Asin(math.Sin(obliquity) * math.Sin(trueLong))

	// Equation of time (minutes), 4-term approximation
	e := 0.016708634 - T*(0.000042037+0.0000001267*T)
	y := math.Tan(obliquity/2) * math.Tan(obliquity/2)
	L0rad := radians(L0)
	eqTime := 4 * degrees(y*math.Sin(2*L0rad)-
		2*e*math.Sin(Mrad)+
		4*e*y*math.Sin(Mrad)*math.Cos(2*L0rad)-
		0.5*y*y*math.Sin(4*L0rad)-
		1.25*e*e*math.Sin(2*Mrad))

	// True solar time in minutes, longitude contributing 4 min per degree
	// (15 degrees per hour), then the hour angle from solar noon.
	minutes := float64(utc.Hour())*60 + float64(utc.Minute()) + float64(utc.Second())/60
	trueSolarMinutes := math.Mod(minutes+eqTime+4*point.Longitude, 1440)
	if trueSolarMinutes < 0 {
		trueSolarMinutes += 1440
	}
	hourAngle := trueSolarMinutes/4 - 180

	// Horizontal coordinates
	latRad := radians(point.Latitude)
	haRad := radians(hourAngle)

	sinAlt := math.Sin(latRad)*math.Sin(declination) +
		math.Cos(latRad)*math.Cos(declination)*math.Cos(haRad)
	altitude := math.Asin(sinAlt)

	cosAz := (math.Sin(declination) - math.Sin(latRad)*sinAlt) /
		(math.Cos(latRad) * math.Cos(altitude))
	// Clamp to prevent domain errors
	if cosAz > 1 {
		cosAz = 1
	}
	if cosAz < -1 {
		cosAz = -1
	}
	azimuth := degrees(math.Acos(cosAz))

	// The acos above loses the east/west sign; a positive hour angle means
	// the sun is west of the meridian. Known to drift slightly near solar
	// noon at high latitudes.
	if hourAngle > 0 {
		azimuth = 360.0 - azimuth
	}

	return Position{
		Instant:     instant,
		AltitudeDeg: degrees(altitude),
		AzimuthDeg:  math.Mod(azimuth, 360),
	}
}

// julianDay converts a UTC time to a Julian day number, treating January and
// February as months 13 and 14 of the prior year and applying the Gregorian
// leap-year correction.
func julianDay(t time.Time) float64 {
	year := t.Year()
	month := int(t.Month())
	day := t.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := year / 100
	b := 2 - a + a/4

	jd := float64(int(365.25*float64(year+4716))) +
		float64(int(30.6001*float64(month+1))) +
		float64(day+b) - 1524.5

	dayFraction := (float64(t.Hour()) + float64(t.Minute())/60.0 + float64(t.Second())/3600.0) / 24.0
	return jd + dayFraction
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}
