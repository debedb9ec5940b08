package rooms

import "errors"

var (
	// ErrRoomNotFound is returned when a room does not exist
	ErrRoomNotFound = errors.New("rooms: room not found")

	// ErrDuplicateName is returned when the room name is already taken
	ErrDuplicateName = errors.New("rooms: room name already exists")

	// ErrPermissionDenied is returned when the actor is not an administrator
	ErrPermissionDenied = errors.New("rooms: permission denied")

	// ErrInvalidInput is returned for malformed input
	ErrInvalidInput = errors.New("rooms: invalid input data")

	// ErrInternal is returned for storage and other unclassified failures
	ErrInternal = errors.New("rooms: internal error")
)
