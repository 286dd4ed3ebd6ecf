// Package common defines shared sentinel errors used across timediary
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Identity errors.
	ErrEmptyUsername     = errors.New("empty username")
	ErrDuplicateUsername = errors.New("username already taken")

	// Content errors.
	ErrEmptyContent    = errors.New("empty content")
	ErrUnauthenticated = errors.New("not logged in")
)
