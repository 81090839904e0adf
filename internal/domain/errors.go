package domain

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrMemberNotFound  = errors.New("member not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrAlreadyBooked = errors.New("member already has an active booking for this session")
)

var (
	ErrSessionNotScheduled = errors.New("session is not in scheduled status")
	ErrSessionNotActive    = errors.New("session is already completed or cancelled")
	ErrSessionFull         = errors.New("session has no free spots")
	ErrBookingNotActive    = errors.New("booking is not active")
	ErrBookingNotBooked    = errors.New("booking is not in booked status")
)

var (
	ErrNoEntitlement = errors.New("no usable membership or credit pack")
)

var (
	ErrSessionStarted  = errors.New("session has already started")
	ErrCheckInTooEarly = errors.New("check-in window has not opened yet")
	ErrCheckInTooLate  = errors.New("check-in window has closed")
)

var (
	ErrValidation = errors.New("validation error")
)
