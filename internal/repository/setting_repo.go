package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"propertyhub/internal/domain"
)

type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) List(ctx context.Context, category string) ([]domain.Setting, error) {
	q := r.db.WithContext(ctx)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var items []domain.Setting
	if err := q.Order("key ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *SettingRepository) Get(ctx context.Context, key string) (*domain.Setting, error) {
	var s domain.Setting
	tx := r.db.WithContext(ctx).Where("key = ?", key).First(&s)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &s, nil
}

// Upsert inserts or updates a setting by key. There is no delete path
// for settings.
func (r *SettingRepository) Upsert(ctx context.Context, s *domain.Setting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "category", "description", "updated_at"}),
	}).Create(s).Error
}

func (r *SettingRepository) BulkUpsert(ctx context.Context, settings []domain.Setting) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range settings {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "category", "description", "updated_at"}),
			}).Create(&settings[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
