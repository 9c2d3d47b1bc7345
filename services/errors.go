package services

import "errors"

// Sentinel errors returned by the services. Callers match them with errors.Is;
// the wrapped message carries the detail.
var (
	ErrProfileRequired    = errors.New("please complete your profile first")
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
)
