package visitor

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"propertyhub/internal/domain"
)

type Service struct {
	visitors VisitorRepositoryInterface
}

func NewService(visitors VisitorRepositoryInterface) *Service {
	return &Service{visitors: visitors}
}

func (s *Service) List(ctx context.Context) ([]domain.Visitor, error) {
	return s.visitors.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Visitor, error) {
	v, err := s.visitors.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, req CreateVisitorRequest) (*domain.Visitor, error) {
	v := &domain.Visitor{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Verified: req.Verified,
	}
	if v.Verified {
		now := time.Now()
		v.VerifiedAt = &now
	}

	if err := s.visitors.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateVisitorRequest) (*domain.Visitor, error) {
	v, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		v.Name = *req.Name
	}
	if req.Email != nil {
		v.Email = *req.Email
	}
	if req.Mobile != nil {
		v.Mobile = *req.Mobile
	}
	if req.Verified != nil && *req.Verified != v.Verified {
		v.Verified = *req.Verified
		if v.Verified {
			now := time.Now()
			v.VerifiedAt = &now
		} else {
			v.VerifiedAt = nil
		}
	}

	if err := s.visitors.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.visitors.Delete(ctx, id)
}
