package openmeteo

// ForecastAPIResponse is the subset of the Open-Meteo forecast response that
// the service reads.
type ForecastAPIResponse struct {
	Timezone string `json:"timezone"`
	Hourly   Hourly `json:"hourly"`
}

type Hourly struct {
	Time                     []string  `json:"time"` // "2006-01-02T15:04"
	Temperature2M            []float64 `json:"temperature_2m"`
	PrecipitationProbability []float64 `json:"precipitation_probability"`
	CloudCover               []float64 `json:"cloud_cover"`
	Visibility               []float64 `json:"visibility"` // meters
	WeatherCode              []int     `json:"weather_code"`
}
