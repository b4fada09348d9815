package models

import "errors"

// Error taxonomy surfaced by the stores and the adjudication engine. All are
// local, recoverable conditions; handlers map them to HTTP status codes.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrDuplicatePrincipal = errors.New("principal already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)
