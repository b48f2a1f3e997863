package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/pinpoint/internal/scoring"
)

// service implements the Service interface
type service struct {
	// mu guards rand, which is not safe for concurrent use
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	var r *rand.Rand
	if config != nil {
		r = config.Rand
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &service{
		rand: r,
	}, nil
}

// pick returns a random index in [0, n)
func (s *service) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Intn(n)
}

// toneForScore maps a score onto the mood of the reaction
func toneForScore(score int) MessageTone {
	switch {
	case score >= scoring.MaxScore:
		return ToneCelebration
	case score >= 9:
		return ToneEncouraging
	case score > 0:
		return ToneNeutral
	default:
		return ToneFunny
	}
}

var guessTitles = map[MessageTone][]string{
	ToneCelebration: {
		"Bullseye!",
		"Dead on!",
		"Were you standing there?",
	},
	ToneEncouraging: {
		"So close!",
		"Great eye!",
		"Nearly there!",
	},
	ToneNeutral: {
		"Right area",
		"Not bad",
		"In the neighbourhood",
	},
	ToneFunny: {
		"Wrong postcode",
		"Scenic route",
		"Have you tried a map?",
	},
}

var guessMessages = map[MessageTone][]string{
	ToneCelebration: {
		"Pinpoint accuracy, just %s off.",
		"%s away. You could have thrown a stone at it.",
	},
	ToneEncouraging: {
		"Only %s away. Next one is yours.",
		"%s off. The locals would be proud.",
	},
	ToneNeutral: {
		"%s away. Points on the board.",
		"You were %s away.",
	},
	ToneFunny: {
		"%s away. Bold choice.",
		"Off by %s. The view is nice there too, probably.",
	},
}

// GetGuessResultMessage returns a reaction to a confirmed guess
func (s *service) GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if _, ok := guessMessages[tone]; !ok {
		tone = toneForScore(input.Score)
	}

	titles := guessTitles[tone]
	messages := guessMessages[tone]

	return &GetGuessResultMessageOutput{
		Title:   titles[s.pick(len(titles))],
		Message: fmt.Sprintf(messages[s.pick(len(messages))], FormatDistance(input.DistanceMeters)),
		Tone:    tone,
	}, nil
}

// GetSummaryMessage returns a closing line for a finished game
func (s *service) GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.GuessCount == 0 {
		return &GetSummaryMessageOutput{
			Message: "No guesses this time. The pictures will wait for you.",
			Tone:    ToneNeutral,
		}, nil
	}

	average := input.TotalScore / input.GuessCount
	tone := toneForScore(average)

	var messages []string
	switch tone {
	case ToneCelebration:
		messages = []string{
			"Flawless. Are you a satellite?",
			"Perfect round. Nothing left to prove.",
		}
	case ToneEncouraging:
		messages = []string{
			"A proper navigator. Go again?",
			"Strong round, you clearly know your way around.",
		}
	case ToneNeutral:
		messages = []string{
			"A respectable tour. Practice makes perfect.",
			"Some hits, some scenic detours.",
		}
	default:
		messages = []string{
			"Lost, but having fun. That counts.",
			"The compass was upside down, wasn't it?",
		}
	}

	return &GetSummaryMessageOutput{
		Message: messages[s.pick(len(messages))],
		Tone:    tone,
	}, nil
}

// FormatDistance prints metres below one kilometre and kilometres above
func FormatDistance(meters float64) string {
	if meters < 1000 {
		return fmt.Sprintf("%.0f m", meters)
	}
	return fmt.Sprintf("%.1f km", meters/1000)
}
