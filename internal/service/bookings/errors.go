package bookings

import "errors"

var (
	// ErrBookingNotFound is returned when a booking does not exist
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrPermissionDenied is returned when the actor lacks the required
	// role or ownership for the operation
	ErrPermissionDenied = errors.New("bookings: permission denied")

	// ErrInvalidStatus is returned for unknown or unsettable target statuses
	ErrInvalidStatus = errors.New("bookings: invalid booking status")

	// ErrInvalidTransition is returned when a booking is already in a
	// terminal state; APPROVED and REJECTED only admit deletion
	ErrInvalidTransition = errors.New("bookings: status transition not allowed")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal is returned for storage and other unclassified failures
	ErrInternal = errors.New("bookings: internal error")
)
