// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers. The HTTP layer maps them to
// status codes: ErrNotFound->404, ErrForbidden->403, ErrConflict->409,
// ErrInvariant->500.
var (
	// ErrNotFound indicates the referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrForbidden indicates an authorization denial for an existing entity.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict indicates a uniqueness violation (e.g., album already liked).
	ErrConflict = errors.New("conflict")

	// ErrInvariant indicates a write did not affect the expected number of rows.
	ErrInvariant = errors.New("invariant violation")
)
