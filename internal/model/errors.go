package model

import "errors"

var (
	// ErrNotFound is returned by stores when no row matches.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail is returned when an insert trips the users.email
	// uniqueness constraint.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrInvalidToken covers every token failure: malformed, forged or
	// expired. Callers must not be able to tell which.
	ErrInvalidToken = errors.New("invalid token")
)
