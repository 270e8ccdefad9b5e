package booking

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

type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) Create(ctx context.Context, e *domain.EnquiryBooking) error {
	args := m.Called(ctx, e)
	if e != nil && e.ID == "" {
		e.ID = "e-1"
	}
	return args.Error(0)
}

func (m *MockEnquiryRepository) List(ctx context.Context, f repository.EnquiryFilter) ([]domain.EnquiryBooking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EnquiryBooking), args.Error(1)
}

func (m *MockEnquiryRepository) GetByID(ctx context.Context, id string) (*domain.EnquiryBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnquiryBooking), args.Error(1)
}

func (m *MockEnquiryRepository) Update(ctx context.Context, e *domain.EnquiryBooking) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEnquiryRepository) UpdateStatus(ctx context.Context, id string, status domain.EnquiryStatus) (*domain.EnquiryBooking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnquiryBooking), args.Error(1)
}

func (m *MockEnquiryRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEnquiryRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Publish(eventType string, payload any) {
	m.Called(eventType, payload)
}

func TestCreateStartsPendingAndPublishes(t *testing.T) {
	repo := new(MockEnquiryRepository)
	events := new(MockEventSink)
	svc := NewService(repo, events)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.EnquiryBooking")).Return(nil)
	events.On("Publish", "enquiry.created", mock.Anything).Return()

	e, err := svc.Create(context.Background(), CreateEnquiryRequest{
		PropertyID:    "p-1",
		FirstName:     "Alice",
		Email:         "alice@example.com",
		ArrivalDate:   "2026-10-10",
		DepartureDate: "2026-10-14",
		Adults:        2,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryPending, e.Status)
	assert.Equal(t, "2026-10-10", e.ArrivalDate)

	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestConfirmPublishesEvent(t *testing.T) {
	repo := new(MockEnquiryRepository)
	events := new(MockEventSink)
	svc := NewService(repo, events)

	repo.On("UpdateStatus", mock.Anything, "e-1", domain.EnquiryConfirmed).
		Return(&domain.EnquiryBooking{ID: "e-1", Status: domain.EnquiryConfirmed}, nil)
	events.On("Publish", "booking.confirmed", mock.Anything).Return()

	e, err := svc.Confirm(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryConfirmed, e.Status)

	events.AssertExpectations(t)
}

func TestCancelPublishesEvent(t *testing.T) {
	repo := new(MockEnquiryRepository)
	events := new(MockEventSink)
	svc := NewService(repo, events)

	repo.On("UpdateStatus", mock.Anything, "e-1", domain.EnquiryCancelled).
		Return(&domain.EnquiryBooking{ID: "e-1", Status: domain.EnquiryCancelled}, nil)
	events.On("Publish", "booking.cancelled", mock.Anything).Return()

	e, err := svc.Cancel(context.Background(), "e-1")
	require.NoError(t, err)
	assert.Equal(t, domain.EnquiryCancelled, e.Status)

	events.AssertExpectations(t)
}

func TestConfirmUnknownEnquiryReturnsNotFound(t *testing.T) {
	repo := new(MockEnquiryRepository)
	svc := NewService(repo, nil)

	repo.On("UpdateStatus", mock.Anything, "missing", domain.EnquiryConfirmed).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Confirm(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := new(MockEnquiryRepository)
	svc := NewService(repo, nil)

	existing := &domain.EnquiryBooking{
		ID:            "e-1",
		FirstName:     "Alice",
		Email:         "alice@example.com",
		ArrivalDate:   "2026-10-10",
		DepartureDate: "2026-10-14",
		Status:        domain.EnquiryPending,
	}
	repo.On("GetByID", mock.Anything, "e-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*domain.EnquiryBooking")).Return(nil)

	arrival := "2026-11-01"
	e, err := svc.Update(context.Background(), "e-1", UpdateEnquiryRequest{ArrivalDate: &arrival})
	require.NoError(t, err)
	assert.Equal(t, "2026-11-01", e.ArrivalDate)
	assert.Equal(t, "Alice", e.FirstName)
	assert.Equal(t, "2026-10-14", e.DepartureDate)
}

func TestCountPending(t *testing.T) {
	repo := new(MockEnquiryRepository)
	svc := NewService(repo, nil)

	repo.On("CountPending", mock.Anything).Return(int64(7), nil)

	count, err := svc.CountPending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestListRejectsUnknownStatus(t *testing.T) {
	svc := NewService(new(MockEnquiryRepository), nil)

	_, err := svc.List(context.Background(), "MAYBE", "")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
