package catalog

import "github.com/KirkDiggler/pinpoint/internal/models"

type GetImageByIDInput struct {
	ImageID string
}

type GetAllImagesInput struct {
}

type GetAllImagesOutput struct {
	Images []*models.AnonymousImage
}

type GetImageCountInput struct {
}

type GetImageCountOutput struct {
	Count int
}
