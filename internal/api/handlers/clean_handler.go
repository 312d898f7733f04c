// filepath: internal/api/handlers/clean_handler.go
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"solarapi/internal/logging"
	"solarapi/internal/models"
	"solarapi/internal/services"
	"strconv"
)

// maxCleanBodyBytes bounds the size of a cleaning request body.
const maxCleanBodyBytes = 64 << 10

// @Summary Request panel cleaning
// @Description Records a cleaning request for the given method (e.g. "robot", "whatsapp").
// @Tags Clean
// @Accept json
// @Produce json
// @Param request body models.CleanRequestPayload true "Cleaning request"
// @Success 200 {object} models.CleanResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/clean [post]
func (h *Handlers) RequestCleaning(w http.ResponseWriter, r *http.Request) {
	var payload models.CleanRequestPayload
	r.Body = http.MaxBytesReader(w, r.Body, maxCleanBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid cleaning request")
		return
	}

	req, err := h.Clean.RequestCleaning(r.Context(), payload)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Invalid cleaning request")
			return
		}
		logging.Log.Errorf("RequestCleaning: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to record cleaning request")
		return
	}

	respondWithJSON(w, http.StatusOK, models.CleanResponse{
		Status: fmt.Sprintf("Cleaning request sent to %s", req.Method),
	})
}

// @Summary List cleaning requests
// @Description Returns recorded cleaning requests, newest first.
// @Tags Clean
// @Produce json
// @Param limit query int false "Maximum number of requests (1-500, default 50)"
// @Success 200 {array} models.CleanRequest
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/clean [get]
func (h *Handlers) GetCleanRequests(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	requests, err := h.Clean.GetCleanRequests(r.Context(), limit)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			respondWithError(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		logging.Log.Errorf("GetCleanRequests: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to list cleaning requests")
		return
	}
	respondWithJSON(w, http.StatusOK, requests)
}
