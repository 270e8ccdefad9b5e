package property

import (
	"context"
	"mime/multipart"

	"propertyhub/internal/domain"
)

type PropertyRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	List(ctx context.Context) ([]domain.Property, error)
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
}

type GalleryCleaner interface {
	DeleteByProperty(ctx context.Context, propertyID string) error
}

// ImageStore saves uploaded files and returns their public URLs.
type ImageStore interface {
	SaveImage(fh *multipart.FileHeader, subdir string) (string, error)
}
