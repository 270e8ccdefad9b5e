package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"propertyhub/internal/domain"
	"propertyhub/internal/repository"
)

type Service struct {
	enquiries EnquiryRepositoryInterface
	events    EventSink
}

func NewService(enquiries EnquiryRepositoryInterface, events EventSink) *Service {
	return &Service{enquiries: enquiries, events: events}
}

func (s *Service) List(ctx context.Context, status, propertyID string) ([]domain.EnquiryBooking, error) {
	enquiryStatus := domain.EnquiryStatus(status)
	if status != "" {
		switch enquiryStatus {
		case domain.EnquiryPending, domain.EnquiryConfirmed, domain.EnquiryCancelled:
		default:
			return nil, ErrInvalidStatus
		}
	}

	return s.enquiries.List(ctx, repository.EnquiryFilter{
		Status:     enquiryStatus,
		PropertyID: propertyID,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.EnquiryBooking, error) {
	e, err := s.enquiries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Create records a public stay enquiry. Dates are kept verbatim, either
// ISO datetime or YYYY-MM-DD.
func (s *Service) Create(ctx context.Context, req CreateEnquiryRequest) (*domain.EnquiryBooking, error) {
	e := &domain.EnquiryBooking{
		PropertyID:    req.PropertyID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		Mobile:        req.Mobile,
		ArrivalDate:   req.ArrivalDate,
		DepartureDate: req.DepartureDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Message:       req.Message,
		Status:        domain.EnquiryPending,
	}

	if err := s.enquiries.Create(ctx, e); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.Publish("enquiry.created", e)
	}
	return e, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateEnquiryRequest) (*domain.EnquiryBooking, error) {
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		e.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		e.LastName = *req.LastName
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Mobile != nil {
		e.Mobile = *req.Mobile
	}
	if req.ArrivalDate != nil {
		e.ArrivalDate = *req.ArrivalDate
	}
	if req.DepartureDate != nil {
		e.DepartureDate = *req.DepartureDate
	}
	if req.Adults != nil {
		e.Adults = *req.Adults
	}
	if req.Children != nil {
		e.Children = *req.Children
	}
	if req.Message != nil {
		e.Message = *req.Message
	}
	if req.Status != nil {
		e.Status = domain.EnquiryStatus(*req.Status)
	}

	if err := s.enquiries.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Confirm(ctx context.Context, id string) (*domain.EnquiryBooking, error) {
	e, err := s.setStatus(ctx, id, domain.EnquiryConfirmed)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Publish("booking.confirmed", e)
	}
	return e, nil
}

func (s *Service) Cancel(ctx context.Context, id string) (*domain.EnquiryBooking, error) {
	e, err := s.setStatus(ctx, id, domain.EnquiryCancelled)
	if err != nil {
		return nil, err
	}
	if s.events != nil {
		s.events.Publish("booking.cancelled", e)
	}
	return e, nil
}

func (s *Service) setStatus(ctx context.Context, id string, status domain.EnquiryStatus) (*domain.EnquiryBooking, error) {
	e, err := s.enquiries.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.enquiries.Delete(ctx, id)
}

func (s *Service) CountPending(ctx context.Context) (int64, error) {
	return s.enquiries.CountPending(ctx)
}
