package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/KirkDiggler/pinpoint/internal/geo"
	"github.com/KirkDiggler/pinpoint/internal/models"
	"gopkg.in/yaml.v3"
)

// ErrImageNotFound is returned when no image has the requested ID
var ErrImageNotFound = errors.New("image not found")

// Config holds configuration for the static catalog
type Config struct {
	// Images in the order they are played
	Images []*models.Image
}

// catalogFile is the on-disk layout of a catalog
type catalogFile struct {
	Images []*models.Image `yaml:"images"`
}

// staticRepository serves a catalog that never changes after construction
type staticRepository struct {
	images []*models.Image
	byID   map[string]*models.Image
}

// NewStatic creates a catalog from an ordered list of images
func NewStatic(cfg *Config) (*staticRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	repo := &staticRepository{
		images: make([]*models.Image, 0, len(cfg.Images)),
		byID:   make(map[string]*models.Image, len(cfg.Images)),
	}

	for i, image := range cfg.Images {
		if image == nil || image.ID == "" {
			return nil, fmt.Errorf("image %d has no ID", i)
		}
		if _, exists := repo.byID[image.ID]; exists {
			return nil, fmt.Errorf("duplicate image ID %q", image.ID)
		}
		coordinate := geo.Coordinate{Latitude: image.Latitude, Longitude: image.Longitude}
		if err := coordinate.Validate(); err != nil {
			return nil, fmt.Errorf("image %q: %w", image.ID, err)
		}

		// Keep a private copy so callers cannot edit the truth
		stored := *image
		repo.images = append(repo.images, &stored)
		repo.byID[stored.ID] = &stored
	}

	return repo, nil
}

// LoadFile reads a YAML catalog of the form `images: [{id, url, name, latitude, longitude}]`
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	return &Config{Images: file.Images}, nil
}

// GetImageByID retrieves an image by ID
func (r *staticRepository) GetImageByID(ctx context.Context, input *GetImageByIDInput) (*models.Image, error) {
	if input == nil || input.ImageID == "" {
		return nil, errors.New("input and image ID cannot be empty")
	}

	image, ok := r.byID[input.ImageID]
	if !ok {
		return nil, ErrImageNotFound
	}

	copied := *image
	return &copied, nil
}

// GetAllImages lists the anonymous images in catalog order
func (r *staticRepository) GetAllImages(ctx context.Context, input *GetAllImagesInput) (*GetAllImagesOutput, error) {
	images := make([]*models.AnonymousImage, 0, len(r.images))
	for _, image := range r.images {
		images = append(images, image.Anonymous())
	}

	return &GetAllImagesOutput{
		Images: images,
	}, nil
}

// GetImageCount returns the number of images in the catalog
func (r *staticRepository) GetImageCount(ctx context.Context, input *GetImageCountInput) (*GetImageCountOutput, error) {
	return &GetImageCountOutput{
		Count: len(r.images),
	}, nil
}
