package types

// GeoPoint is a position on the Earth's surface in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewGeoPoint(latitude, longitude float64) GeoPoint {
	return GeoPoint{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Valid reports whether the point lies inside the documented domain.
func (p GeoPoint) Valid() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 &&
		p.Longitude >= -180 && p.Longitude <= 180
}
