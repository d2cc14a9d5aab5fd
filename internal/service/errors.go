package service

import "errors"

// Service sentinels. Handlers map these onto HTTP statuses; wrap them with
// fmt.Errorf("%w: detail", ...) to add context without losing the mapping.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)
