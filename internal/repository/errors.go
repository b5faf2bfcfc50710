// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver-specific errors. Handlers translate them into
// structured HTTP responses; raw storage errors never reach a public
// response body.
package repository

import "errors"

// ErrNotFound is returned when a lookup by id or public UUID matches no
// row. Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write cannot proceed because of
// conflicting state: a booking date inside an active closure block, a
// duplicate external transaction id, or a voucher whose usage limit was
// reached between quoting and redemption. Handlers should translate this
// into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// ErrInvalidTransition is returned when a status update attempts to move
// booking_status out of a terminal state (CANCELLED or COMPLETED).
// Handlers should translate this into an HTTP 409 response.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrForbidden is returned when the caller attempts an operation their
// role does not permit at the repository level. Handlers should translate
// this into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")
