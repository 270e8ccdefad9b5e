package comment

import (
	"context"

	"propertyhub/internal/domain"
	"propertyhub/internal/repository"
)

type CommentRepositoryInterface interface {
	Create(ctx context.Context, cm *domain.Comment) error
	List(ctx context.Context, f repository.CommentFilter) ([]domain.Comment, error)
	GetByID(ctx context.Context, id string) (*domain.Comment, error)
	UpdateStatus(ctx context.Context, id string, status domain.CommentStatus) (*domain.Comment, error)
	SetReply(ctx context.Context, id string, reply string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
}

type VisitorResolver interface {
	GetOrCreateByEmail(ctx context.Context, name, email, mobile string) (*domain.Visitor, error)
}

// EventSink receives entity-change notifications for the dashboard
// feed. A nil sink is allowed.
type EventSink interface {
	Publish(eventType string, payload any)
}
