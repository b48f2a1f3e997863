package models

import (
	"time"
)

// DraftGuess is an unconfirmed candidate coordinate kept on the client
type DraftGuess struct {
	ID        string    `json:"id"`
	Longitude float64   `json:"longitude"`
	Latitude  float64   `json:"latitude"`
	CreatedAt time.Time `json:"createdAt"`
}
