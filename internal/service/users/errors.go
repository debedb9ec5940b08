package users

import "errors"

var (
	// ErrUserNotFound - requested user does not exist.
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrDuplicateUser - email or CPF already registered.
	ErrDuplicateUser = errors.New("users.service: email or cpf already registered")

	// ErrPermissionDenied - actor's role does not allow the operation.
	ErrPermissionDenied = errors.New("users.service: permission denied")

	// ErrInvalidInput - request failed validation.
	ErrInvalidInput = errors.New("users.service: invalid input")

	// ErrInternal - unexpected repository failure.
	ErrInternal = errors.New("users.service: internal error")
)
