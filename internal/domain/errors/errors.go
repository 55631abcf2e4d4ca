// Package errors defines the domain-level error values shared between the
// use case layer and the persistence adapters.
package errors

import "rebook/internal/errors"

// Not-found sentinels. The dispatcher and router treat several of these as
// terminal no-ops rather than failures; see the individual use cases.
var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrBrandNotFound       = errors.New("brand not found")
	ErrLocationNotFound    = errors.New("location not found")
	ErrStaffNotFound       = errors.New("staff not found")
)
