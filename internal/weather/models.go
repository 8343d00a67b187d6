package weather

// Conditions describes the weather at one place and time, scored for
// sun-viewing quality.
type Conditions struct {
	Provider             string  `json:"provider"`
	CloudsPercent        float64 `json:"clouds_percent"`
	PrecipitationPercent float64 `json:"precipitation_percent"`
	VisibilityKm         float64 `json:"visibility_km"`
	TemperatureC         float64 `json:"temperature_c"`
	Description          string  `json:"description"`

	// Local sunrise/sunset clock times for the forecast day, when the
	// provider supplies them.
	SunriseTime string `json:"sunrise_time,omitempty"`
	SunsetTime  string `json:"sunset_time,omitempty"`

	// ViewingScore rates the conditions for watching a sunrise or sunset,
	// 0 (hopeless) to 100 (perfect).
	ViewingScore       float64 `json:"viewing_score"`
	QualityDescription string  `json:"quality_description"`

	// FromFallback marks conditions produced by the deterministic estimate
	// rather than a live forecast.
	FromFallback bool `json:"from_fallback"`
}

// observation is raw provider output before scoring.
type observation struct {
	provider    string
	clouds      float64
	precip      float64
	visKm       float64
	tempC       float64
	description string
	sunrise     string
	sunset      string
}
