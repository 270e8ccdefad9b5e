package settings

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type Service struct {
	settings SettingRepositoryInterface
}

func NewService(settings SettingRepositoryInterface) *Service {
	return &Service{settings: settings}
}

func (s *Service) List(ctx context.Context, category string) ([]domain.Setting, error) {
	return s.settings.List(ctx, category)
}

func (s *Service) Get(ctx context.Context, key string) (*domain.Setting, error) {
	setting, err := s.settings.Get(ctx, key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return setting, nil
}

// BulkUpdate upserts every entry and returns the stored rows in
// request order.
func (s *Service) BulkUpdate(ctx context.Context, req BulkUpdateRequest) ([]domain.Setting, error) {
	items := make([]domain.Setting, 0, len(req.Settings))
	for _, in := range req.Settings {
		items = append(items, domain.Setting{
			Key:         in.Key,
			Value:       in.Value,
			Category:    in.Category,
			Description: in.Description,
		})
	}

	if err := s.settings.BulkUpsert(ctx, items); err != nil {
		return nil, err
	}

	out := make([]domain.Setting, 0, len(items))
	for _, item := range items {
		stored, err := s.settings.Get(ctx, item.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, *stored)
	}
	return out, nil
}

// UpdateByKey upserts a single setting. Category and description keep
// their stored values when the request leaves them empty.
func (s *Service) UpdateByKey(ctx context.Context, key string, req UpdateValueRequest) (*domain.Setting, error) {
	setting := domain.Setting{
		Key:         key,
		Value:       req.Value,
		Category:    req.Category,
		Description: req.Description,
	}

	if existing, err := s.settings.Get(ctx, key); err == nil {
		if setting.Category == "" {
			setting.Category = existing.Category
		}
		if setting.Description == "" {
			setting.Description = existing.Description
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.settings.Upsert(ctx, &setting); err != nil {
		return nil, err
	}
	return s.Get(ctx, key)
}
