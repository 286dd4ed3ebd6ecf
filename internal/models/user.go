// Package models defines the records persisted by timediary. JSON field
// names are part of the on-disk layout and must stay stable across releases.
package models

// User is an account identified by its username only. Created on first
// registration and immutable afterwards.
type User struct {
	// ID is an opaque unique identifier.
	ID string `json:"id"`

	// Username is unique across all users, compared case-sensitively.
	Username string `json:"username"`

	// Avatar is an optional image reference.
	Avatar string `json:"avatar,omitempty"`

	// CreatedAt is the registration date (date-only, e.g. "2024-01-01").
	CreatedAt string `json:"createdAt"`
}
