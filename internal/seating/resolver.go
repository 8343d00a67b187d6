// Package seating derives the cabin side and seat that face the sun at the
// best viewing moment, and carries the static aircraft layout catalog.
package seating

import (
	"fmt"
	"math"

	"sunflight/internal/route"
	"sunflight/internal/solar"
	"sunflight/internal/types"
)

// Side is the cabin side seen from a seated passenger facing forward.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Assignment is a recommended seat. It is recomputed per request and never
// persisted.
type Assignment struct {
	Side Side   `json:"side"`
	Row  int    `json:"row"`
	Code string `json:"code"`
}

// Row heuristics: window rows ahead of the wing stay clear of engine and wing
// obstruction for a low forward sun, aft rows suit a trailing sun. Not tied
// to any real seat map.
const (
	rowSunrise = 8
	rowSunset  = 24
)

// Resolve determines which cabin side faces the sun at the best sample. The
// flight bearing is taken between the samples around bestIdx, clamped at the
// trajectory ends; angles measured clockwise from the heading fall on the
// right-hand side of the aircraft.
func Resolve(trajectory []types.TrajectorySample, bestIdx int, sun solar.Position, preference types.SunPreference, aircraftCode string) Assignment {
	bearing := route.BearingAt(trajectory, bestIdx)

	angleDiff := math.Mod(sun.AzimuthDeg-bearing, 360)
	if angleDiff < 0 {
		angleDiff += 360
	}

	side := SideLeft
	if angleDiff <= 180 {
		side = SideRight
	}

	row := rowSunset
	if preference == types.PreferSunrise {
		row = rowSunrise
	}

	letter := "A"
	if seats := WindowSeats(aircraftCode, side); len(seats) > 0 {
		letter = seats[0]
	}

	return Assignment{
		Side: side,
		Row:  row,
		Code: fmt.Sprintf("%d%s", row, letter),
	}
}
