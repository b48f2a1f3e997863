package messaging

import (
	"math/rand"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// ServiceConfig holds configuration for the messaging service
type ServiceConfig struct {
	// Rand picks among equivalent messages, seeded from the clock when nil
	Rand *rand.Rand
}

// GetGuessResultMessageInput contains parameters for a guess reaction
type GetGuessResultMessageInput struct {
	// Score the guess earned
	Score int

	// DistanceMeters from the guess to the answer
	DistanceMeters float64

	// PreferredTone overrides the tone picked from the score (optional)
	PreferredTone MessageTone
}

// GetGuessResultMessageOutput contains a guess reaction
type GetGuessResultMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetSummaryMessageInput contains parameters for a closing line
type GetSummaryMessageInput struct {
	TotalScore int
	GuessCount int
}

// GetSummaryMessageOutput contains a closing line
type GetSummaryMessageOutput struct {
	Message string
	Tone    MessageTone
}
