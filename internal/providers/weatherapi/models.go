package weatherapi

// ForecastAPIResponse is the subset of the WeatherAPI.com forecast response
// that the service reads.
type ForecastAPIResponse struct {
	Forecast struct {
		ForecastDay []ForecastDay `json:"forecastday"`
	} `json:"forecast"`
}

type ForecastDay struct {
	Date  string `json:"date"`
	Astro Astro  `json:"astro"`
	Hour  []Hour `json:"hour"`
}

// Astro is the day's sun calendar, in the location's local clock time.
type Astro struct {
	Sunrise string `json:"sunrise"` // "04:14 AM"
	Sunset  string `json:"sunset"`  // "09:01 PM"
}

type Hour struct {
	Time         string  `json:"time"` // "2006-01-02 15:04"
	TempC        float64 `json:"temp_c"`
	Cloud        float64 `json:"cloud"`          // percent
	ChanceOfRain float64 `json:"chance_of_rain"` // percent
	VisKm        float64 `json:"vis_km"`
	Condition    struct {
		Text string `json:"text"`
	} `json:"condition"`
}
