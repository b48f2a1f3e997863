package draft

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/pinpoint/internal/services/draft Service

import "context"

// Service keeps a few unconfirmed guesses per image on the client
type Service interface {
	// AddDraft appends a draft, evicting the oldest once MaxDraftsPerImage is reached
	AddDraft(ctx context.Context, input *AddDraftInput) (*AddDraftOutput, error)

	// GetDrafts returns the drafts for an image, oldest first
	GetDrafts(ctx context.Context, input *GetDraftsInput) (*GetDraftsOutput, error)

	// ClearSessionDrafts drops every draft of a session
	ClearSessionDrafts(ctx context.Context, input *ClearSessionDraftsInput) error
}
