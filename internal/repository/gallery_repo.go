package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type GalleryRepository struct {
	db *gorm.DB
}

func NewGalleryRepository(db *gorm.DB) *GalleryRepository {
	return &GalleryRepository{db: db}
}

func (r *GalleryRepository) CreateBatch(ctx context.Context, images []domain.GalleryImage) ([]domain.GalleryImage, error) {
	for i := range images {
		if images[i].ID == "" {
			images[i].ID = uuid.NewString()
		}
	}
	if err := r.db.WithContext(ctx).Create(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (r *GalleryRepository) ListByProperty(ctx context.Context, propertyID string, tag domain.GalleryTag) ([]domain.GalleryImage, error) {
	q := r.db.WithContext(ctx).Where("property_id = ?", propertyID)
	if tag != "" {
		q = q.Where("tag = ?", tag)
	}
	var items []domain.GalleryImage
	if err := q.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GalleryRepository) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	var img domain.GalleryImage
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&img)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &img, nil
}

// UpdateTag changes the category of one image. The owning property is
// never touched.
func (r *GalleryRepository) UpdateTag(ctx context.Context, id string, tag domain.GalleryTag) (*domain.GalleryImage, error) {
	if err := r.db.WithContext(ctx).Model(&domain.GalleryImage{}).
		Where("id = ?", id).
		Update("tag", tag).Error; err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *GalleryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.GalleryImage{}).Error
}

func (r *GalleryRepository) DeleteByProperty(ctx context.Context, propertyID string) error {
	return r.db.WithContext(ctx).Where("property_id = ?", propertyID).Delete(&domain.GalleryImage{}).Error
}
