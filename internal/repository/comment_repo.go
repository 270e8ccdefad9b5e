package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

type CommentFilter struct {
	Status     domain.CommentStatus
	PropertyID string
}

func (r *CommentRepository) Create(ctx context.Context, cm *domain.Comment) error {
	if cm.ID == "" {
		cm.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(cm).Error
}

func (r *CommentRepository) List(ctx context.Context, f CommentFilter) ([]domain.Comment, error) {
	q := r.db.WithContext(ctx).
		Preload("Visitor").
		Preload("Property")
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.PropertyID != "" {
		q = q.Where("property_id = ?", f.PropertyID)
	}

	var items []domain.Comment
	if err := q.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	var cm domain.Comment
	tx := r.db.WithContext(ctx).
		Preload("Visitor").
		Preload("Property").
		Where("id = ?", id).
		First(&cm)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &cm, nil
}

// UpdateStatus writes the status unconditionally. Moderation may flip
// a comment back and forth, last write wins.
func (r *CommentRepository) UpdateStatus(ctx context.Context, id string, status domain.CommentStatus) (*domain.Comment, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Comment{}).
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

func (r *CommentRepository) SetReply(ctx context.Context, id string, reply string) (*domain.Comment, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Comment{}).
		Where("id = ?", id).
		Update("reply", reply)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Comment{}).Error
}
