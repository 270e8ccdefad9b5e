package booking

import (
	"context"

	"propertyhub/internal/domain"
	"propertyhub/internal/repository"
)

type EnquiryRepositoryInterface interface {
	Create(ctx context.Context, e *domain.EnquiryBooking) error
	List(ctx context.Context, f repository.EnquiryFilter) ([]domain.EnquiryBooking, error)
	GetByID(ctx context.Context, id string) (*domain.EnquiryBooking, error)
	Update(ctx context.Context, e *domain.EnquiryBooking) error
	UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) (*domain.EnquiryBooking, error)
	Delete(ctx context.Context, id string) error
	CountPending(ctx context.Context) (int64, error)
}

// EventSink receives entity-change notifications for the dashboard
// feed. A nil sink is allowed.
type EventSink interface {
	Publish(eventType string, payload any)
}
