package seed

import "errors"

// Errors returned by the importer
var (
	// ErrNoEndpoint indicates that no seed URL is configured
	ErrNoEndpoint = errors.New("no seed endpoint configured")

	// ErrUnexpectedStatus indicates a non-2xx response from the seed endpoint
	ErrUnexpectedStatus = errors.New("unexpected seed endpoint status")
)
