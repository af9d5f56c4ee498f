package service

import (
	"context"
	"fmt"

	"github.com/KianJanloo/burger-cafe-back/internal/domain"
)

// Status changes are unguarded: any valid status may follow any other.

type ReservationRepository interface {
	Repository[domain.Reservation]
	FindByDate(ctx context.Context, date domain.Date) ([]*domain.Reservation, error)
}

type ReservationService struct {
	*Resource[domain.Reservation, domain.CreateReservation, domain.UpdateReservation]
	repo ReservationRepository
}

func NewReservationService(repo ReservationRepository) *ReservationService {
	return &ReservationService{
		Resource: NewResource[domain.Reservation, domain.CreateReservation, domain.UpdateReservation](repo),
		repo:     repo,
	}
}

// Find lists reservations on date, or all of them when date is nil.
func (s *ReservationService) Find(ctx context.Context, date *domain.Date) ([]*domain.Reservation, error) {
	if date == nil {
		return s.List(ctx)
	}
	return s.repo.FindByDate(ctx, *date)
}

func (s *ReservationService) SetStatus(ctx context.Context, id int64, status domain.ReservationStatus) (*domain.Reservation, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(ctx, id, domain.UpdateReservation{Status: &status})
}

type ContactRepository interface {
	Repository[domain.ContactMessage]
	FindByStatus(ctx context.Context, status domain.ContactStatus) ([]*domain.ContactMessage, error)
}

type ContactService struct {
	*Resource[domain.ContactMessage, domain.CreateContactMessage, domain.UpdateContactMessage]
	repo ContactRepository
}

func NewContactService(repo ContactRepository) *ContactService {
	return &ContactService{
		Resource: NewResource[domain.ContactMessage, domain.CreateContactMessage, domain.UpdateContactMessage](repo),
		repo:     repo,
	}
}

func (s *ContactService) Find(ctx context.Context, status *domain.ContactStatus) ([]*domain.ContactMessage, error) {
	if status == nil {
		return s.List(ctx)
	}
	return s.repo.FindByStatus(ctx, *status)
}

func (s *ContactService) SetStatus(ctx context.Context, id int64, status domain.ContactStatus) (*domain.ContactMessage, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.Update(ctx, id, domain.UpdateContactMessage{Status: &status})
}
