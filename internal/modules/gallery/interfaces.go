package gallery

import (
	"context"
	"mime/multipart"

	"propertyhub/internal/domain"
)

type GalleryRepositoryInterface interface {
	CreateBatch(ctx context.Context, images []domain.GalleryImage) ([]domain.GalleryImage, error)
	ListByProperty(ctx context.Context, propertyID string, tag domain.GalleryTag) ([]domain.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	UpdateTag(ctx context.Context, id string, tag domain.GalleryTag) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
}

type PropertyGate interface {
	GetByID(ctx context.Context, id string) (*domain.Property, error)
}

type ImageStore interface {
	SaveImage(fh *multipart.FileHeader, subdir string) (string, error)
}
