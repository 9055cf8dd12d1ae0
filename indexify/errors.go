package indexify

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrInvalidConfig is returned when a client is created without a service URL or namespace
	ErrInvalidConfig = errors.New("indexify: invalid configuration")

	// ErrTransport is returned when a request to the service fails for any reason:
	// connection error, non-2xx status, or an undecodable body
	ErrTransport = errors.New("indexify: transport failure")
)

// RequestError describes a failed request to the service.
type RequestError struct {
	Op         string // Operation that failed
	URL        string // Request URL
	StatusCode int    // HTTP status, zero if no response was received
	Err        error  // Underlying error
}

// Error implements the error interface
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s %s (status=%d): %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *RequestError) Unwrap() []error {
	return []error{ErrTransport, e.Err}
}
