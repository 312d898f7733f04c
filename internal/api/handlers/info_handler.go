// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"
)

// @Summary Get service information
// @Description Retrieves the service name, software version and start time. This is a public endpoint.
// @Tags Info
// @Produce  json
// @Success 200 {object} models.Info
// @Router /api/info [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	info := h.Info.GetInfo()
	respondWithJSON(w, http.StatusOK, info)
}
