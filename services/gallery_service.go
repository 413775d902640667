package services

import (
	"context"
	"strings"
	"time"

	"suredoor/listing"
	"suredoor/models"
	"suredoor/storage"

	"github.com/google/uuid"
)

type GalleryQuery struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

// GalleryService handles business logic for gallery images
type GalleryService struct {
	repo   GalleryRepository
	images ImageRemover
}

func NewGalleryService(repo GalleryRepository, images ImageRemover) *GalleryService {
	return &GalleryService{repo: repo, images: images}
}

// List returns images newest first
func (gs *GalleryService) List(q GalleryQuery) ([]models.GalleryImage, error) {
	images, err := gs.repo.GetGalleryImages()
	if err != nil {
		return nil, err
	}

	return listing.Filter(images,
		func(g models.GalleryImage) bool { return listing.Contains(g.Title, q.Search) },
		func(g models.GalleryImage) bool { return listing.Category(g.Category, q.Category) },
	), nil
}

func (gs *GalleryService) Categories() ([]string, error) {
	return gs.repo.GetGalleryCategories()
}

// Create records an image; imageURL comes from an upload or from req.ImageURL
func (gs *GalleryService) Create(req models.GalleryImageRequest, imageURL string) (*models.GalleryImage, error) {
	if imageURL == "" {
		imageURL = strings.TrimSpace(req.ImageURL)
	}
	if imageURL == "" {
		return nil, ErrInvalidUpload
	}

	image := &models.GalleryImage{
		ID:          uuid.New().String(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    imageURL,
		Category:    strings.TrimSpace(req.Category),
		CreatedAt:   time.Now().UTC(),
	}

	if err := gs.repo.CreateGalleryImage(image); err != nil {
		return nil, err
	}
	return image, nil
}

// Delete removes the record and queues the stored object for removal
func (gs *GalleryService) Delete(ctx context.Context, id string) error {
	image, err := gs.repo.GetGalleryImageByID(id)
	if err != nil {
		return err
	}
	if image == nil {
		return ErrImageNotFound
	}

	if err := gs.repo.DeleteGalleryImage(id); err != nil {
		return err
	}

	releaseImage(ctx, gs.images, image.ImageURL, storage.BucketGallery)
	return nil
}
