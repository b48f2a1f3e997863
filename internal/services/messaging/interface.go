package messaging

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetGuessResultMessage returns a reaction to a confirmed guess
	GetGuessResultMessage(ctx context.Context, input *GetGuessResultMessageInput) (*GetGuessResultMessageOutput, error)

	// GetSummaryMessage returns a closing line for a finished game
	GetSummaryMessage(ctx context.Context, input *GetSummaryMessageInput) (*GetSummaryMessageOutput, error)
}
