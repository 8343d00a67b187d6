package weather

import "time"

// defaultEstimate produces a deterministic weather estimate from latitude and
// season alone, for when no forecast provider is reachable. The same inputs
// always produce the same output.
func defaultEstimate(latitude float64, at time.Time) observation {
	month := int(at.UTC().Month())
	hour := at.UTC().Hour()

	isSummer := month >= 5 && month <= 8
	isWinter := month == 12 || month == 1 || month == 2

	// Crude climate bands by latitude.
	isTropical := latitude >= -23.5 && latitude <= 23.5
	isPolar := latitude >= 66.5 || latitude <= -66.5

	obs := observation{
		provider:    "default",
		clouds:      30,
		precip:      20,
		visKm:       10,
		tempC:       20,
		description: "partly cloudy",
	}

	switch {
	case isTropical:
		obs.tempC = 28
		if month >= 6 && month <= 9 {
			// Wet season in much of the tropics.
			obs.clouds = 70
			obs.precip = 60
			obs.visKm = 5
			obs.description = "rain showers"
		}
	case isPolar:
		if isWinter {
			obs.tempC = -15
			obs.clouds = 40
			obs.description = "snow showers"
		} else {
			obs.tempC = 5
			obs.clouds = 60
			obs.description = "cloudy"
		}
	default: // temperate
		if isSummer {
			obs.tempC = 25
			obs.clouds = 30
			obs.description = "mostly sunny"
		} else if isWinter {
			obs.tempC = 0
			obs.clouds = 70
			obs.precip = 40
			obs.description = "snow or rain"
		}
	}

	// Mornings tend to be clearer, evenings cloudier.
	switch {
	case hour >= 5 && hour <= 8:
		obs.clouds = max(10, obs.clouds-20)
		obs.visKm = min(15, obs.visKm+2)
		obs.description = "morning " + obs.description
	case hour >= 18 && hour <= 20:
		obs.clouds = min(90, obs.clouds+10)
		obs.description = "evening " + obs.description
	}

	return obs
}
