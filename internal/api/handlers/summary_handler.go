// filepath: internal/api/handlers/summary_handler.go
package handlers

import (
	"net/http"
)

// SummaryUnavailableMessage is returned for every failure to serve the summary.
const SummaryUnavailableMessage = "Edge summary not found. Run edge_run.py first."

// @Summary Get the edge summary
// @Description Returns the summary document written by the edge producer, re-read from disk on every call.
// @Tags Summary
// @Produce json
// @Success 200 {object} object
// @Failure 500 {object} ErrorResponse
// @Router /api/summary [get]
func (h *Handlers) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Summary.GetSummary(r.Context())
	if err != nil {
		// Missing and malformed documents share one client message.
		respondWithError(w, http.StatusInternalServerError, SummaryUnavailableMessage)
		return
	}
	respondWithRawJSON(w, http.StatusOK, summary)
}
