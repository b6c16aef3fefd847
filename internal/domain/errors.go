package domain

import "errors"

// Sentinel errors for service and repository control flow. Callers match
// them with errors.Is and translate to HTTP status codes at the transport
// boundary.
var (
	// ErrNotFound indicates no link exists for the requested code
	ErrNotFound = errors.New("link not found")

	// ErrInvalidURL indicates the target URL is not an absolute http(s) URL
	ErrInvalidURL = errors.New("invalid URL")

	// ErrInvalidCode indicates a custom code outside [A-Za-z0-9]{6,8}
	ErrInvalidCode = errors.New("invalid code")

	// ErrCodeConflict indicates the store rejected an insert because the
	// code is already taken. The unique constraint is the source of truth;
	// any pre-insert existence check is advisory only.
	ErrCodeConflict = errors.New("code already exists")

	// ErrCodeSpaceExhausted indicates the allocator failed to find an
	// unused code within its attempt budget
	ErrCodeSpaceExhausted = errors.New("could not generate unique code")
)
