package visitor

import (
	"context"

	"propertyhub/internal/domain"
)

type VisitorRepositoryInterface interface {
	Create(ctx context.Context, v *domain.Visitor) error
	List(ctx context.Context) ([]domain.Visitor, error)
	GetByID(ctx context.Context, id string) (*domain.Visitor, error)
	Update(ctx context.Context, v *domain.Visitor) error
	Delete(ctx context.Context, id string) error
}
