package models

import (
	"time"
)

// GameSession is one playthrough of the image catalog
type GameSession struct {
	// ID is the unique identifier for this session
	ID string `json:"id"`

	// StartedAt is when the session was created
	StartedAt time.Time `json:"startedAt"`

	// EndedAt is when the session was ended, nil while it is active
	EndedAt *time.Time `json:"endedAt,omitempty"`
}

// Active reports whether the session has not been ended yet
func (s *GameSession) Active() bool {
	return s.EndedAt == nil
}

// SessionProgress counts the confirmed guesses of a session against the catalog
type SessionProgress struct {
	// SessionID is the session the counts belong to
	SessionID string `json:"sessionId"`

	// ImageCount is the number of images in the catalog
	ImageCount int `json:"imageCount"`

	// GuessCount is the number of confirmed guesses in the session
	GuessCount int `json:"guessCount"`
}

// Complete reports whether every image has been guessed. The comparison is
// >= so a catalog that shrinks mid-session still counts as finished.
func (p *SessionProgress) Complete() bool {
	return p.GuessCount >= p.ImageCount
}

// SummaryMeta holds the aggregates of a session summary
type SummaryMeta struct {
	GameStartedAt   time.Time  `json:"gameStartedAt"`
	GameEndedAt     *time.Time `json:"gameEndedAt,omitempty"`
	TotalScore      int        `json:"totalScore"`
	AverageDistance float64    `json:"averageDistance"`
}

// SessionSummary is every confirmed guess of a session with its totals
type SessionSummary struct {
	SessionID string      `json:"sessionId"`
	Guesses   []*Guess    `json:"guesses"`
	Meta      SummaryMeta `json:"meta"`
}
