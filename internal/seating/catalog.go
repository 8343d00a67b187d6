package seating

// Layout describes the cabin seat arrangement of an aircraft model.
type Layout struct {
	Name             string   `json:"name"`
	SeatingLayout    string   `json:"seating_layout"`
	WindowSeatsLeft  []string `json:"window_seats_left"`
	WindowSeatsRight []string `json:"window_seats_right"`
	AisleSeats       []string `json:"aisle_seats"`
	MiddleSeats      []string `json:"middle_seats"`
	TypicalAirlines  []string `json:"typical_airlines"`
}

// Static reference data. Read-only after process start; safe for concurrent
// readers.
var aircraftLayouts = map[string]Layout{
	"B737": {
		Name:             "Boeing 737",
		SeatingLayout:    "3-3",
		WindowSeatsLeft:  []string{"A"},
		WindowSeatsRight: []string{"F"},
		AisleSeats:       []string{"C", "D"},
		MiddleSeats:      []string{"B", "E"},
		TypicalAirlines:  []string{"Ryanair", "LOT", "Lufthansa"},
	},
	"A320": {
		Name:             "Airbus A320",
		SeatingLayout:    "3-3",
		WindowSeatsLeft:  []string{"A"},
		WindowSeatsRight: []string{"F"},
		AisleSeats:       []string{"C", "D"},
		MiddleSeats:      []string{"B", "E"},
		TypicalAirlines:  []string{"Wizz Air", "Lufthansa", "EasyJet"},
	},
	"B787": {
		Name:             "Boeing 787 Dreamliner",
		SeatingLayout:    "3-3-3",
		WindowSeatsLeft:  []string{"A"},
		WindowSeatsRight: []string{"K"},
		AisleSeats:       []string{"C", "D", "G", "H"},
		MiddleSeats:      []string{"B", "E", "F", "J"},
		TypicalAirlines:  []string{"LOT", "British Airways", "Qatar Airways"},
	},
	"A350": {
		Name:             "Airbus A350",
		SeatingLayout:    "3-3-3",
		WindowSeatsLeft:  []string{"A"},
		WindowSeatsRight: []string{"K"},
		AisleSeats:       []string{"C", "D", "G", "H"},
		MiddleSeats:      []string{"B", "E", "F", "J"},
		TypicalAirlines:  []string{"Lufthansa", "Qatar Airways", "Singapore Airlines"},
	},
}

// airlineFleets maps IATA airline codes to their typical fleets by haul class.
var airlineFleets = map[string]struct {
	shortHaul []string
	longHaul  []string
}{
	"LO": {shortHaul: []string{"B737", "E195"}, longHaul: []string{"B787"}},
	"LH": {shortHaul: []string{"A320", "A321"}, longHaul: []string{"A350", "B747"}},
	"FR": {shortHaul: []string{"B737"}, longHaul: nil},
	"W6": {shortHaul: []string{"A320", "A321"}, longHaul: nil},
}

const (
	// Flights over this distance are treated as long-haul.
	longHaulThresholdKm = 3000.0

	defaultLongHaul  = "B787"
	defaultShortHaul = "B737"
)

// LayoutFor returns the seating layout for an aircraft code.
func LayoutFor(aircraftCode string) (Layout, bool) {
	layout, ok := aircraftLayouts[aircraftCode]
	return layout, ok
}

// GuessAircraft infers a likely aircraft model from the airline and flight
// distance. Unknown airlines fall back to a fixed default per haul class.
func GuessAircraft(airlineCode string, distanceKm float64) string {
	longHaul := distanceKm > longHaulThresholdKm

	fleet, ok := airlineFleets[airlineCode]
	if ok {
		options := fleet.shortHaul
		if longHaul {
			options = fleet.longHaul
		}
		if len(options) > 0 {
			return options[0]
		}
	}

	if longHaul {
		return defaultLongHaul
	}
	return defaultShortHaul
}

// WindowSeats returns the window seat letters on the given cabin side.
func WindowSeats(aircraftCode string, side Side) []string {
	layout, ok := LayoutFor(aircraftCode)
	if !ok {
		// Narrow-body default for unknown models.
		if side == SideLeft {
			return []string{"A"}
		}
		return []string{"F"}
	}

	if side == SideLeft {
		return layout.WindowSeatsLeft
	}
	return layout.WindowSeatsRight
}
