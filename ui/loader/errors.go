package loader

import "errors"

// Loader package errors.
var (
	// ErrMissingNamespace indicates a client was requested without a namespace.
	ErrMissingNamespace = errors.New("loader: namespace is required")

	// ErrComputeGraphNotFound indicates the compute graph route parameter was empty.
	ErrComputeGraphNotFound = errors.New("loader: compute graph not found")
)
