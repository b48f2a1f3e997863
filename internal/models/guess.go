package models

import (
	"time"
)

// Guess is a confirmed, scored answer for one image within one session
type Guess struct {
	// ID is the unique identifier for the guess
	ID string `json:"id"`

	// SessionID is the session the guess was made in
	SessionID string `json:"sessionId"`

	// ImageID is the image that was guessed
	ImageID string `json:"imageId"`

	// Longitude is the guessed longitude
	Longitude float64 `json:"longitude"`

	// Latitude is the guessed latitude
	Latitude float64 `json:"latitude"`

	// ImageLongitude is the true longitude at the time of confirmation
	ImageLongitude float64 `json:"imageLongitude"`

	// ImageLatitude is the true latitude at the time of confirmation
	ImageLatitude float64 `json:"imageLatitude"`

	// Score is the number of points the guess earned
	Score int `json:"score"`

	// DistanceMeters is the great-circle distance to the true location
	DistanceMeters float64 `json:"distanceMeters"`

	// CreatedAt is when the guess was confirmed
	CreatedAt time.Time `json:"createdAt"`
}
