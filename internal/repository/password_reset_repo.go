package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type PasswordResetRepository struct {
	db *gorm.DB
}

func NewPasswordResetRepository(db *gorm.DB) *PasswordResetRepository {
	return &PasswordResetRepository{db: db}
}

func (r *PasswordResetRepository) Create(ctx context.Context, pr *domain.PasswordReset) error {
	if pr.ID == "" {
		pr.ID = uuid.NewString()
	}
	pr.Email = strings.ToLower(strings.TrimSpace(pr.Email))
	return r.db.WithContext(ctx).Create(pr).Error
}

// GetActiveByEmail returns the newest unused, unexpired reset request
// for the address.
func (r *PasswordResetRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.PasswordReset, error) {
	var pr domain.PasswordReset
	tx := r.db.WithContext(ctx).
		Where("email = ? AND used_at IS NULL AND expires_at > ?",
			strings.ToLower(strings.TrimSpace(email)), time.Now()).
		Order("created_at DESC").
		First(&pr)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &pr, nil
}

func (r *PasswordResetRepository) MarkUsed(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&domain.PasswordReset{}).
		Where("id = ?", id).
		Update("used_at", now).Error
}

func (r *PasswordResetRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at <= ?", time.Now()).
		Delete(&domain.PasswordReset{}).Error
}
