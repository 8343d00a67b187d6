// Package airports provides the airport directory: an immutable lookup table
// built once at startup from the embedded dataset.
package airports

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

//go:embed airports.csv
var airportsCSV string

// ErrNotFound is returned when no airport matches the requested code.
var ErrNotFound = errors.New("airport not found")

// Airport describes one airport from the directory.
type Airport struct {
	Code      string  `json:"code"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

// Directory is a read-only airport lookup table. It is built once and safe
// for concurrent readers; nothing repopulates it after construction.
type Directory struct {
	byCode  map[string]Airport
	ordered []Airport
}

// NewDirectory parses the embedded airport dataset into a directory.
func NewDirectory() (*Directory, error) {
	reader := csv.NewReader(strings.NewReader(airportsCSV))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse airport data: %w", err)
	}
	if len(records) < 2 {
		return nil, errors.New("airport data is empty")
	}

	dir := &Directory{
		byCode:  make(map[string]Airport, len(records)-1),
		ordered: make([]Airport, 0, len(records)-1),
	}

	// Skip the header row.
	for _, rec := range records[1:] {
		if len(rec) != 7 {
			return nil, fmt.Errorf("malformed airport record: %v", rec)
		}
		lat, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("bad latitude for %s: %w", rec[0], err)
		}
		lon, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("bad longitude for %s: %w", rec[0], err)
		}

		airport := Airport{
			Code:      strings.ToUpper(rec[0]),
			Name:      rec[1],
			City:      rec[2],
			Country:   rec[3],
			Latitude:  lat,
			Longitude: lon,
			Timezone:  rec[6],
		}
		dir.byCode[airport.Code] = airport
		dir.ordered = append(dir.ordered, airport)
	}

	return dir, nil
}

// Lookup returns the airport with the given IATA code, case-insensitively.
func (d *Directory) Lookup(code string) (Airport, error) {
	airport, ok := d.byCode[strings.ToUpper(code)]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %s", ErrNotFound, code)
	}
	return airport, nil
}

// Search returns up to limit airports whose code, name or city contains the
// query, in dataset order.
func (d *Directory) Search(query string, limit int) []Airport {
	query = strings.ToLower(query)
	results := make([]Airport, 0, limit)

	for _, airport := range d.ordered {
		if strings.Contains(strings.ToLower(airport.Code), query) ||
			strings.Contains(strings.ToLower(airport.Name), query) ||
			strings.Contains(strings.ToLower(airport.City), query) {
			results = append(results, airport)
			if len(results) >= limit {
				break
			}
		}
	}

	return results
}
