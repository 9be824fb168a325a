package domain

import "errors"

// Sentinel errors returned by services and repositories. The API layer maps
// these to HTTP status codes in a single place; nothing below the router
// should ever translate them.
var (
	// ErrValidation marks malformed or missing input (400).
	ErrValidation = errors.New("invalid input")

	// ErrUnauthorized marks a missing or invalid credential (401).
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden marks an authenticated requester that does not own the
	// target entity (403).
	ErrForbidden = errors.New("access forbidden")

	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUserExists marks a username uniqueness violation (409).
	ErrUserExists = errors.New("username already taken")

	// ErrPartialDelete marks a cascade that removed the dependent comments
	// but failed to remove the parent post. Surfaced distinctly (500) so
	// operators can reconcile.
	ErrPartialDelete = errors.New("cascade delete incomplete")

	// ErrUnavailable marks an unreachable downstream dependency (503).
	ErrUnavailable = errors.New("dependency unavailable")
)
