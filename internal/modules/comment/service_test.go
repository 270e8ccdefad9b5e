package comment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"propertyhub/internal/domain"
	"propertyhub/internal/repository"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, cm *domain.Comment) error {
	args := m.Called(ctx, cm)
	if cm != nil && cm.ID == "" {
		cm.ID = "c-1"
	}
	return args.Error(0)
}

func (m *MockCommentRepository) List(ctx context.Context, f repository.CommentFilter) ([]domain.Comment, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id string) (*domain.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateStatus(ctx context.Context, id string, status domain.CommentStatus) (*domain.Comment, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) SetReply(ctx context.Context, id string, reply string) (*domain.Comment, error) {
	args := m.Called(ctx, id, reply)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVisitorResolver struct {
	mock.Mock
}

func (m *MockVisitorResolver) GetOrCreateByEmail(ctx context.Context, name, email, mobile string) (*domain.Visitor, error) {
	args := m.Called(ctx, name, email, mobile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Visitor), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Publish(eventType string, payload any) {
	m.Called(eventType, payload)
}

func TestCreateResolvesVisitorAndPublishes(t *testing.T) {
	repo := new(MockCommentRepository)
	visitors := new(MockVisitorResolver)
	events := new(MockEventSink)
	svc := NewService(repo, visitors, events)

	visitors.On("GetOrCreateByEmail", mock.Anything, "Alice", "alice@example.com", "").
		Return(&domain.Visitor{ID: "v-1", Email: "alice@example.com"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil)
	events.On("Publish", "comment.created", mock.Anything).Return()

	rating := 4
	cm, err := svc.Create(context.Background(), CreateCommentRequest{
		PropertyID: "p-1",
		Name:       "Alice",
		Email:      "alice@example.com",
		Content:    "Great stay",
		Rating:     &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, "v-1", cm.VisitorID)
	assert.Equal(t, domain.CommentPending, cm.Status)

	repo.AssertExpectations(t)
	visitors.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	svc := NewService(new(MockCommentRepository), new(MockVisitorResolver), nil)

	rating := 6
	_, err := svc.Create(context.Background(), CreateCommentRequest{
		PropertyID: "p-1",
		Email:      "a@b.c",
		Content:    "x",
		Rating:     &rating,
	})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestRejectThenApproveLastWriteWins(t *testing.T) {
	repo := new(MockCommentRepository)
	svc := NewService(repo, new(MockVisitorResolver), nil)

	repo.On("UpdateStatus", mock.Anything, "c-1", domain.CommentRejected).
		Return(&domain.Comment{ID: "c-1", Status: domain.CommentRejected}, nil).Once()
	repo.On("UpdateStatus", mock.Anything, "c-1", domain.CommentApproved).
		Return(&domain.Comment{ID: "c-1", Status: domain.CommentApproved}, nil).Once()

	cm, err := svc.Reject(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CommentRejected, cm.Status)

	cm, err = svc.Approve(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, domain.CommentApproved, cm.Status)

	repo.AssertExpectations(t)
}

func TestApproveUnknownCommentReturnsNotFound(t *testing.T) {
	repo := new(MockCommentRepository)
	svc := NewService(repo, new(MockVisitorResolver), nil)

	repo.On("UpdateStatus", mock.Anything, "missing", domain.CommentApproved).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Approve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := NewService(new(MockCommentRepository), new(MockVisitorResolver), nil)

	_, err := svc.List(context.Background(), "SHOUTING", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestReplyRequiresText(t *testing.T) {
	svc := NewService(new(MockCommentRepository), new(MockVisitorResolver), nil)

	_, err := svc.Reply(context.Background(), "c-1", "")
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
