package services

import "errors"

var (
	// ErrInvalidCredentials is returned when a login or password check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrLastAdmin is returned when deleting the sole remaining admin account.
	ErrLastAdmin = errors.New("cannot delete the last admin account")
	// ErrForbidden is returned when a guest touches a booking they do not own.
	ErrForbidden = errors.New("not allowed")
	// ErrInvalidGuestCount is returned when a booking has fewer than one guest.
	ErrInvalidGuestCount = errors.New("guest count must be at least 1")
	// ErrInvalidCategory is returned for an unknown article category.
	ErrInvalidCategory = errors.New("unknown article category")
)
