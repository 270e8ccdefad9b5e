package comment

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"propertyhub/internal/domain"
	"propertyhub/internal/repository"
)

type Service struct {
	comments CommentRepositoryInterface
	visitors VisitorResolver
	events   EventSink
}

func NewService(comments CommentRepositoryInterface, visitors VisitorResolver, events EventSink) *Service {
	return &Service{comments: comments, visitors: visitors, events: events}
}

func (s *Service) List(ctx context.Context, status, propertyID string) ([]domain.Comment, error) {
	commentStatus := domain.CommentStatus(status)
	if status != "" {
		switch commentStatus {
		case domain.CommentPending, domain.CommentApproved, domain.CommentRejected:
		default:
			return nil, ErrInvalidStatus
		}
	}

	return s.comments.List(ctx, repository.CommentFilter{
		Status:     commentStatus,
		PropertyID: propertyID,
	})
}

// Create records a public visitor submission. The visitor is resolved
// by email, created unverified on first contact; the comment starts
// PENDING.
func (s *Service) Create(ctx context.Context, req CreateCommentRequest) (*domain.Comment, error) {
	if req.Rating != nil && (*req.Rating < 1 || *req.Rating > 5) {
		return nil, ErrInvalidRequest
	}

	visitor, err := s.visitors.GetOrCreateByEmail(ctx, req.Name, req.Email, req.Mobile)
	if err != nil {
		return nil, err
	}

	cm := &domain.Comment{
		PropertyID: req.PropertyID,
		VisitorID:  visitor.ID,
		Content:    req.Content,
		Rating:     req.Rating,
		Status:     domain.CommentPending,
	}

	if err := s.comments.Create(ctx, cm); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("comment.created", cm)
	}
	return cm, nil
}

// Approve and Reject write the status unconditionally; re-approving an
// approved comment or flipping a rejected one back is allowed.
func (s *Service) Approve(ctx context.Context, id string) (*domain.Comment, error) {
	return s.setStatus(ctx, id, domain.CommentApproved)
}

func (s *Service) Reject(ctx context.Context, id string) (*domain.Comment, error) {
	return s.setStatus(ctx, id, domain.CommentRejected)
}

func (s *Service) setStatus(ctx context.Context, id string, status domain.CommentStatus) (*domain.Comment, error) {
	cm, err := s.comments.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cm, nil
}

func (s *Service) Reply(ctx context.Context, id, reply string) (*domain.Comment, error) {
	if reply == "" {
		return nil, ErrInvalidRequest
	}

	cm, err := s.comments.SetReply(ctx, id, reply)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return cm, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.comments.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.comments.Delete(ctx, id)
}
