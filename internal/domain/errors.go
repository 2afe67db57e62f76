package domain

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrUnknownScheme  = errors.New("unknown payment scheme")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidRequest = errors.New("invalid request")
	ErrInvalidStatus  = errors.New("invalid account status")
	ErrAccountExists  = errors.New("account already exists")
)
