// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"encoding/json"
	"solarapi/internal/models"
)

// Auditor defines the interface for recording state-changing events.
type Auditor interface {
	// Log records an event.
	// ctx: context to trace request IDs (if available)
	// action: what happened (e.g., "clean.request")
	// actor: who did it (remote address)
	// resource: what was affected (e.g., "CleanRequest:01J...")
	// details: structured metadata about the event
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}

// InfoService defines the interface for the info service.
type InfoService interface {
	GetInfo() models.Info
}

// SummaryService defines the interface for serving the edge summary document.
type SummaryService interface {
	// GetSummary reads the document fresh from disk and returns it as compact JSON.
	// Every failure wraps ErrSummaryUnavailable.
	GetSummary(ctx context.Context) (json.RawMessage, error)
}

// CleanService defines the interface for recording cleaning requests.
type CleanService interface {
	RequestCleaning(ctx context.Context, payload models.CleanRequestPayload) (*models.CleanRequest, error)
	GetCleanRequests(ctx context.Context, limit int) ([]models.CleanRequest, error)
}

// SummaryReader is the storage dependency of the summary service.
type SummaryReader interface {
	Path() string
	Read() ([]byte, error)
}

// CleanStore is the persistence dependency of the clean service.
type CleanStore interface {
	CreateCleanRequest(ctx context.Context, req *models.CleanRequest) error
	GetCleanRequests(ctx context.Context, limit int) ([]models.CleanRequest, error)
}
