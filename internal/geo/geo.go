package geo

import (
	"errors"
	"math"
)

// EarthMeanRadiusMeters is the IUGG mean radius of the Earth
const EarthMeanRadiusMeters = 6371008.8

var (
	// ErrInvalidLatitude is returned when a latitude falls outside [-90, 90]
	ErrInvalidLatitude = errors.New("latitude must be between -90 and 90")

	// ErrInvalidLongitude is returned when a longitude falls outside [-180, 180]
	ErrInvalidLongitude = errors.New("longitude must be between -180 and 180")
)

// Coordinate is a point on the globe in decimal degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64
}

// Validate checks that the coordinate lies within the valid degree ranges
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return ErrInvalidLatitude
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidLongitude
	}
	return nil
}

// DistanceMeters returns the great-circle distance between a and b using the
// haversine formula. Inputs are not validated.
func DistanceMeters(a, b Coordinate) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h a hair past 1 for antipodal points
	if h > 1 {
		h = 1
	}

	return 2 * EarthMeanRadiusMeters * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
