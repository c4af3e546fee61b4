package service

import "errors"

// Sentinel errors for handlers to map to HTTP status. Messages are
// caller-facing; anything else reaching a handler is an internal failure.
var (
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidStatus      = errors.New("status must be one of: todo, in_progress, done")
	ErrEmptyUpdate        = errors.New("send at least one of: title, status")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTaskNotFound       = errors.New("task not found")
	ErrUserNotFound       = errors.New("user not found")
)
