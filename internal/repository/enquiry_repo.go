package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type EnquiryRepository struct {
	db *gorm.DB
}

func NewEnquiryRepository(db *gorm.DB) *EnquiryRepository {
	return &EnquiryRepository{db: db}
}

type EnquiryFilter struct {
	Status     domain.EnquiryStatus
	PropertyID string
}

func (r *EnquiryRepository) Create(ctx context.Context, e *domain.EnquiryBooking) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *EnquiryRepository) List(ctx context.Context, f EnquiryFilter) ([]domain.EnquiryBooking, error) {
	q := r.db.WithContext(ctx).Preload("Property")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PropertyID != "" {
		q = q.Where("property_id = ?", f.PropertyID)
	}

	var items []domain.EnquiryBooking
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *EnquiryRepository) GetByID(ctx context.Context, id string) (*domain.EnquiryBooking, error) {
	var e domain.EnquiryBooking
	tx := r.db.WithContext(ctx).Preload("Property").Where("id = ?", id).First(&e)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

func (r *EnquiryRepository) Update(ctx context.Context, e *domain.EnquiryBooking) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) (*domain.EnquiryBooking, error) {
	tx := r.db.WithContext(ctx).Model(&domain.EnquiryBooking{}).
		Where("id = ?", id).
		Update("status", status)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *EnquiryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.EnquiryBooking{}).Error
}

// CountPending backs the dashboard badge for new enquiries.
func (r *EnquiryRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&domain.EnquiryBooking{}).
		Where("status = ?", domain.EnquiryPending).
		Count(&count)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return count, nil
}
