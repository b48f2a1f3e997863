package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	points := []Coordinate{
		{Latitude: 46.5008485, Longitude: 7.7061998},
		{Latitude: 0, Longitude: 0},
		{Latitude: 90, Longitude: 180},
		{Latitude: -33.8567844, Longitude: 151.213108},
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := Coordinate{Latitude: 46.5008485, Longitude: 7.7061998}
	b := Coordinate{Latitude: 46.5012, Longitude: 7.7059}

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_KnownDistances(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "one degree of latitude",
			a:        Coordinate{Latitude: 0, Longitude: 0},
			b:        Coordinate{Latitude: 1, Longitude: 0},
			expected: EarthMeanRadiusMeters * math.Pi / 180,
			delta:    0.001,
		},
		{
			name:     "half the equator",
			a:        Coordinate{Latitude: 0, Longitude: 0},
			b:        Coordinate{Latitude: 0, Longitude: 180},
			expected: EarthMeanRadiusMeters * math.Pi,
			delta:    0.001,
		},
		{
			name:     "pole to pole",
			a:        Coordinate{Latitude: 90, Longitude: 0},
			b:        Coordinate{Latitude: -90, Longitude: 0},
			expected: EarthMeanRadiusMeters * math.Pi,
			delta:    0.001,
		},
		{
			name:     "a few meters apart",
			a:        Coordinate{Latitude: 46.5008485, Longitude: 7.7061998},
			b:        Coordinate{Latitude: 46.5008935, Longitude: 7.7061998},
			expected: 5.0,
			delta:    0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceMeters(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistanceMeters_NeverNegative(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 15 {
		for lon := -180.0; lon <= 180; lon += 30 {
			d := DistanceMeters(Coordinate{Latitude: 12.5, Longitude: -40}, Coordinate{Latitude: lat, Longitude: lon})
			assert.GreaterOrEqual(t, d, 0.0)
		}
	}
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name     string
		c        Coordinate
		expected error
	}{
		{name: "origin", c: Coordinate{}, expected: nil},
		{name: "corners", c: Coordinate{Latitude: -90, Longitude: 180}, expected: nil},
		{name: "latitude too high", c: Coordinate{Latitude: 90.1}, expected: ErrInvalidLatitude},
		{name: "latitude too low", c: Coordinate{Latitude: -90.1}, expected: ErrInvalidLatitude},
		{name: "longitude too high", c: Coordinate{Longitude: 180.5}, expected: ErrInvalidLongitude},
		{name: "longitude too low", c: Coordinate{Longitude: -181}, expected: ErrInvalidLongitude},
		{name: "nan latitude", c: Coordinate{Latitude: math.NaN()}, expected: ErrInvalidLatitude},
		{name: "nan longitude", c: Coordinate{Longitude: math.NaN()}, expected: ErrInvalidLongitude},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.c.Validate())
		})
	}
}
