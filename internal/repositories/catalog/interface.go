package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/pinpoint/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/pinpoint/internal/models"
)

// Repository provides the fixed, ordered set of images and their true locations
type Repository interface {
	// GetImageByID retrieves an image including its coordinates
	GetImageByID(ctx context.Context, input *GetImageByIDInput) (*models.Image, error)

	// GetAllImages lists every image in catalog order with the answers stripped
	GetAllImages(ctx context.Context, input *GetAllImagesInput) (*GetAllImagesOutput, error)

	// GetImageCount returns the number of images in the catalog
	GetImageCount(ctx context.Context, input *GetImageCountInput) (*GetImageCountOutput, error)
}
