package models

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an email is already taken within a role population.
	ErrDuplicateEmail = errors.New("email already exists")
	// ErrInvalidTransition is returned when a booking status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrInvalidDateRange is returned when a booking's start date is not before its end date.
	ErrInvalidDateRange = errors.New("start date must be before end date")
)
