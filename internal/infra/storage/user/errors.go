package user

import "errors"

var (
	// ErrUserNotFound is returned when a user does not exist
	ErrUserNotFound = errors.New("user.repository: user not found")

	// ErrDuplicateUser is returned when the email or CPF is already registered
	ErrDuplicateUser = errors.New("user.repository: email or cpf already exists")

	// ErrBuildQuery is returned when an SQL query cannot be built
	ErrBuildQuery = errors.New("user.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute
	ErrExecQuery = errors.New("user.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned
	ErrScanRow = errors.New("user.repository: failed to scan row")
)
