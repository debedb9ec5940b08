package get_room_schedule

import "errors"

var (
	// ErrRoomNotFound is returned when the room does not exist
	ErrRoomNotFound = errors.New("get_room_schedule: room not found")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("get_room_schedule: invalid input data")

	// ErrInternal is returned for storage and other unclassified failures
	ErrInternal = errors.New("get_room_schedule: internal error")
)
