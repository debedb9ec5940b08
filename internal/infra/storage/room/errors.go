package room

import "errors"

var (
	// ErrRoomNotFound is returned when a room does not exist
	ErrRoomNotFound = errors.New("room.repository: room not found")

	// ErrDuplicateName is returned when a room name is already taken
	ErrDuplicateName = errors.New("room.repository: room name already exists")

	// ErrBuildQuery is returned when an SQL query cannot be built
	ErrBuildQuery = errors.New("room.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute
	ErrExecQuery = errors.New("room.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("room.repository: failed to scan row")
)
