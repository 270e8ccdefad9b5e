package gallery

import (
	"context"
	"errors"
	"mime/multipart"

	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type Service struct {
	images     GalleryRepositoryInterface
	properties PropertyGate
	store      ImageStore
}

func NewService(images GalleryRepositoryInterface, properties PropertyGate, store ImageStore) *Service {
	return &Service{images: images, properties: properties, store: store}
}

func (s *Service) ListByProperty(ctx context.Context, propertyID string, tag string) ([]domain.GalleryImage, error) {
	galleryTag := domain.GalleryTag(tag)
	if tag != "" && !galleryTag.Valid() {
		return nil, ErrInvalidTag
	}
	return s.images.ListByProperty(ctx, propertyID, galleryTag)
}

// Upload stores the files and records one gallery image per file.
// tags[i] categorizes files[i]; a missing or blank tag falls back to
// interior.
func (s *Service) Upload(ctx context.Context, propertyID string, files []*multipart.FileHeader, tags []string) ([]domain.GalleryImage, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}
	if _, err := s.properties.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	images := make([]domain.GalleryImage, 0, len(files))
	for i, fh := range files {
		tag := domain.TagInterior
		if i < len(tags) && tags[i] != "" {
			tag = domain.GalleryTag(tags[i])
			if !tag.Valid() {
				return nil, ErrInvalidTag
			}
		}

		url, err := s.store.SaveImage(fh, "gallery")
		if err != nil {
			return nil, err
		}

		images = append(images, domain.GalleryImage{
			PropertyID: propertyID,
			URL:        url,
			Tag:        tag,
		})
	}

	return s.images.CreateBatch(ctx, images)
}

func (s *Service) UpdateTag(ctx context.Context, imageID string, tag string) (*domain.GalleryImage, error) {
	galleryTag := domain.GalleryTag(tag)
	if !galleryTag.Valid() {
		return nil, ErrInvalidTag
	}

	if _, err := s.images.GetByID(ctx, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.images.UpdateTag(ctx, imageID, galleryTag)
}

func (s *Service) Delete(ctx context.Context, imageID string) error {
	if _, err := s.images.GetByID(ctx, imageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.images.Delete(ctx, imageID)
}
