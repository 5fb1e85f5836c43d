package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cabin-backend/models"
	"cabin-backend/utils"
)

// BookingService owns the reservation ledger and its status lifecycle.
// Every state-changing operation triggers a notification; a failed
// notification is logged and swallowed, never propagated.
type BookingService struct {
	repo   BookingRepository
	mailer Mailer
	log    *zap.Logger
}

func NewBookingService(repo BookingRepository, mailer Mailer, log *zap.Logger) *BookingService {
	return &BookingService{repo: repo, mailer: mailer, log: log}
}

// CreateBookingInput carries a guest's stay request.
type CreateBookingInput struct {
	GuestName  string
	GuestEmail string
	Phone      string
	StartDate  time.Time
	EndDate    time.Time
	Guests     int
}

// Create stores a new reservation request. Status is always forced to
// pending and CreatedAt stamped at call time. No overlap check is performed:
// multiple bookings may legally cover the same dates.
func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	start := normalizeDate(in.StartDate)
	end := normalizeDate(in.EndDate)
	if !start.Before(end) {
		return nil, models.ErrInvalidDateRange
	}
	if in.Guests < 1 {
		return nil, ErrInvalidGuestCount
	}

	booking := &models.Booking{
		ID:         uuid.NewString(),
		GuestName:  strings.TrimSpace(in.GuestName),
		GuestEmail: strings.TrimSpace(strings.ToLower(in.GuestEmail)),
		Phone:      strings.TrimSpace(in.Phone),
		StartDate:  start,
		EndDate:    end,
		Guests:     in.Guests,
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("booking created",
		zap.String("id", booking.ID), zap.String("guest", booking.GuestEmail))

	subject, body := requestReceivedEmail(booking)
	s.notify(ctx, booking.GuestEmail, subject, body)
	return booking, nil
}

// Approve transitions a pending booking to approved and notifies the guest,
// including a calendar link for the stay.
func (s *BookingService) Approve(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := booking.Approve(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("booking approved", zap.String("id", booking.ID))

	calendarURL := utils.GoogleCalendarURL(
		"Stay at "+propertyName,
		"Your approved cabin reservation.",
		propertyName,
		booking.StartDate, booking.EndDate,
	)
	subject, body := approvedEmail(booking, calendarURL)
	s.notify(ctx, booking.GuestEmail, subject, body)
	return booking, nil
}

// Reject transitions a pending booking to rejected and notifies the guest.
func (s *BookingService) Reject(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := booking.Reject(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("booking rejected", zap.String("id", booking.ID))

	subject, body := rejectedEmail(booking)
	s.notify(ctx, booking.GuestEmail, subject, body)
	return booking, nil
}

// ChangeDates edits the stay interval of any booking without touching its
// status, and notifies the guest. Admin operation.
func (s *BookingService) ChangeDates(ctx context.Context, id string, start, end time.Time) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := booking.ChangeDates(normalizeDate(start), normalizeDate(end)); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.log.Info("booking dates changed", zap.String("id", booking.ID))

	subject, body := datesUpdatedEmail(booking)
	s.notify(ctx, booking.GuestEmail, subject, body)
	return booking, nil
}

// GuestChangeDates is the owner-scoped variant of ChangeDates: the session
// email must match the booking's guest email.
func (s *BookingService) GuestChangeDates(ctx context.Context, guestEmail, id string, start, end time.Time) (*models.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(booking.GuestEmail, guestEmail) {
		return nil, ErrForbidden
	}
	return s.ChangeDates(ctx, id, start, end)
}

// GuestCancel removes the guest's own booking.
func (s *BookingService) GuestCancel(ctx context.Context, guestEmail, id string) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !strings.EqualFold(booking.GuestEmail, guestEmail) {
		return ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("booking cancelled by guest", zap.String("id", id))
	return nil
}

// Delete removes a booking outright. Admin operation; absent ids return
// models.ErrNotFound.
func (s *BookingService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("booking deleted", zap.String("id", id))
	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]models.Booking, error) {
	return s.repo.List(ctx)
}

// ListByEmail scopes a guest's view to their own bookings. This is the sole
// access-control boundary for guest-initiated reads.
func (s *BookingService) ListByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.repo.FindByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
}

func (s *BookingService) notify(ctx context.Context, to, subject, body string) {
	if err := s.mailer.Send(ctx, to, subject, body); err != nil {
		s.log.Warn("booking notification failed",
			zap.String("to", to), zap.String("subject", subject), zap.Error(err))
	}
}
