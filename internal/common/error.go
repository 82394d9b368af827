// Package common defines sentinel errors shared by the server and client
// layers of guestkeeper. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Local snapshot errors.
	ErrorMalformedSnapshot = errors.New("malformed snapshot")
)
