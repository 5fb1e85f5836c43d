package models

import (
	"time"
)

// Booking statuses. A new booking always starts as pending; approved and
// rejected are terminal for status purposes, though admins may still edit
// dates on any booking.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Booking struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`
	GuestName  string    `gorm:"size:255;column:guest_name" json:"guest_name"`
	GuestEmail string    `gorm:"size:150;index;column:guest_email" json:"guest_email"`
	Phone      string    `gorm:"size:32" json:"phone"`
	StartDate  time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate    time.Time `gorm:"column:end_date" json:"end_date"`
	Guests     int       `gorm:"column:guests" json:"guests"`
	Status     string    `gorm:"size:16" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Approve moves a pending booking to approved.
func (b *Booking) Approve() error {
	if b.Status != StatusPending {
		return ErrInvalidTransition
	}
	b.Status = StatusApproved
	return nil
}

// Reject moves a pending booking to rejected.
func (b *Booking) Reject() error {
	if b.Status != StatusPending {
		return ErrInvalidTransition
	}
	b.Status = StatusRejected
	return nil
}

// ChangeDates replaces the stay interval without touching status.
// Allowed in any status: operators adjust approved stays too.
func (b *Booking) ChangeDates(start, end time.Time) error {
	if !start.Before(end) {
		return ErrInvalidDateRange
	}
	b.StartDate = start
	b.EndDate = end
	return nil
}

// Covers reports whether date falls inside the stay, inclusive of both ends.
func (b *Booking) Covers(date time.Time) bool {
	return !date.Before(b.StartDate) && !date.After(b.EndDate)
}
