package settings

import (
	"context"

	"propertyhub/internal/domain"
)

type SettingRepositoryInterface interface {
	List(ctx context.Context, category string) ([]domain.Setting, error)
	Get(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, s *domain.Setting) error
	BulkUpsert(ctx context.Context, settings []domain.Setting) error
}
