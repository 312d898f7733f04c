// filepath: internal/api/handlers/main.go
package handlers

import (
	"solarapi/internal/services"
)

// Handlers holds the shared dependencies of the API handlers.
type Handlers struct {
	Info    services.InfoService
	Summary services.SummaryService
	Clean   services.CleanService
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	info services.InfoService,
	summary services.SummaryService,
	clean services.CleanService,
) *Handlers {
	return &Handlers{
		Info:    info,
		Summary: summary,
		Clean:   clean,
	}
}
