package provider

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrUnknownProvider indicates the requested provider is not in the
	// registry.
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrInvalidRecord indicates a provider record failed validation.
	ErrInvalidRecord = errors.New("invalid provider record")
)
