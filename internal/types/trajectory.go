package types

// TrajectorySample is one point of a synthesized flight trajectory.
// Samples are immutable once produced and ordered by increasing
// ElapsedHours and Fraction.
type TrajectorySample struct {
	Position     GeoPoint `json:"position"`
	AltitudeM    float64  `json:"altitude_m"`
	ElapsedHours float64  `json:"elapsed_hours"`
	Fraction     float64  `json:"fraction"`
}

// SunPreference selects which horizon event the traveler wants to see.
type SunPreference string

const (
	PreferSunrise SunPreference = "sunrise"
	PreferSunset  SunPreference = "sunset"
)

// Valid reports whether the preference is one of the enumerated values.
func (p SunPreference) Valid() bool {
	return p == PreferSunrise || p == PreferSunset
}
