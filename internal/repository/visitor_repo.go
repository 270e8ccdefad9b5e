package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type VisitorRepository struct {
	db *gorm.DB
}

func NewVisitorRepository(db *gorm.DB) *VisitorRepository {
	return &VisitorRepository{db: db}
}

func (r *VisitorRepository) Create(ctx context.Context, v *domain.Visitor) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	v.Email = strings.ToLower(strings.TrimSpace(v.Email))
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitorRepository) List(ctx context.Context) ([]domain.Visitor, error) {
	var items []domain.Visitor
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&items)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return items, nil
}

func (r *VisitorRepository) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	var v domain.Visitor
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&v)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &v, nil
}

func (r *VisitorRepository) Update(ctx context.Context, v *domain.Visitor) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VisitorRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Visitor{}).Error
}

// GetOrCreateByEmail resolves the visitor for a public submission,
// creating an unverified record on first contact.
func (r *VisitorRepository) GetOrCreateByEmail(ctx context.Context, name, email, mobile string) (*domain.Visitor, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var v domain.Visitor
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&v).Error
	if err == nil {
		return &v, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	v = domain.Visitor{
		ID:     uuid.NewString(),
		Name:   name,
		Email:  email,
		Mobile: mobile,
	}
	if err := r.db.WithContext(ctx).Create(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}
