// filepath: internal/services/service_errors.go
package services

import "errors"

// Standard errors returned by the service layer.
var (
	// ErrSummaryUnavailable covers every reason the summary document cannot be served:
	// missing, unreadable, too large or not valid JSON.
	ErrSummaryUnavailable = errors.New("summary unavailable")
	ErrValidation         = errors.New("validation failed")
	// ErrStoreUnavailable means cleaning requests cannot be persisted or listed.
	ErrStoreUnavailable = errors.New("cleaning request store unavailable")
)
