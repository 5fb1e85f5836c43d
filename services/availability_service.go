package services

import (
	"context"
	"time"

	"cabin-backend/models"
)

// AvailabilityService answers whether calendar dates are covered by
// bookings. All bookings count, regardless of status; nothing prevents two
// stays from covering the same date, so lookups are first-match in store
// order. Linear scan, fine for a single-property calendar.
type AvailabilityService struct {
	repo BookingRepository
}

func NewAvailabilityService(repo BookingRepository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// IsDateBooked reports whether any booking's inclusive [start, end] interval
// contains the date.
func (s *AvailabilityService) IsDateBooked(ctx context.Context, date time.Time) (bool, error) {
	booking, err := s.BookingForDate(ctx, date)
	if err != nil {
		return false, err
	}
	return booking != nil, nil
}

// BookingForDate returns the first booking covering the date, or nil when
// the date is free.
func (s *AvailabilityService) BookingForDate(ctx context.Context, date time.Time) (*models.Booking, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	day := normalizeDate(date)
	for i := range bookings {
		if bookings[i].Covers(day) {
			return &bookings[i], nil
		}
	}
	return nil, nil
}

// Month returns a booked flag for every day of the given month, keyed by
// ISO date string. One repository read, one pass per day.
func (s *AvailabilityService) Month(ctx context.Context, year int, month time.Month) (map[string]bool, error) {
	bookings, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	days := make(map[string]bool)
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		booked := false
		for i := range bookings {
			if bookings[i].Covers(d) {
				booked = true
				break
			}
		}
		days[d.Format("2006-01-02")] = booked
	}
	return days, nil
}
