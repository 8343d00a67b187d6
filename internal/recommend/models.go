package recommend

import (
	"time"

	"sunflight/internal/airports"
	"sunflight/internal/seating"
	"sunflight/internal/sunscan"
	"sunflight/internal/types"
	"sunflight/internal/weather"
)

// Request is a seat recommendation request.
type Request struct {
	DepartureAirport string              `json:"departure_airport" binding:"required"` // IATA code
	ArrivalAirport   string              `json:"arrival_airport" binding:"required"`   // IATA code
	DepartureDate    string              `json:"departure_date" binding:"required"`    // 2006-01-02, local
	DepartureTime    string              `json:"departure_time" binding:"required"`    // 15:04, local
	Airline          string              `json:"airline"`                              // optional IATA code
	SunPreference    types.SunPreference `json:"sun_preference" binding:"required"`
}

// Recommendation is the seat advice for one flight.
type Recommendation struct {
	SeatCode        string              `json:"seat_code"`
	SeatSide        seating.Side        `json:"seat_side"`
	Row             int                 `json:"row"`
	BestTime        time.Time           `json:"best_time"`
	SunEvent        types.SunPreference `json:"sun_event"`
	EventVisible    bool                `json:"event_visible"`
	QualityScore    float64             `json:"quality_score"` // 0-100
	FlightDirection string              `json:"flight_direction"`
	Weather         *weather.Conditions `json:"weather,omitempty"`
	Notes           []string            `json:"notes,omitempty"`
}

// Response is the full recommendation payload.
type Response struct {
	DepartureAirport    airports.Airport         `json:"departure_airport"`
	ArrivalAirport      airports.Airport         `json:"arrival_airport"`
	DepartureTime       time.Time                `json:"departure_time"` // UTC
	ArrivalTime         time.Time                `json:"arrival_time"`   // UTC
	FlightDurationHours float64                  `json:"flight_duration"`
	AircraftModel       string                   `json:"aircraft_model,omitempty"`
	Recommendation      Recommendation           `json:"recommendation"`
	SunEvents           []sunscan.SunEvent       `json:"sun_events,omitempty"`
	RoutePreview        []types.TrajectorySample `json:"route_preview"`
}
