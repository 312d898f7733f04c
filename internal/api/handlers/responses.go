// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"
	"solarapi/internal/logging"
)

// ErrorResponse is a standard format for API error messages.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, `{"error":"Failed to marshal JSON response"}`, http.StatusInternalServerError)
		return
	}
	respondWithRawJSON(w, code, response)
}

// respondWithRawJSON sends an already encoded JSON body unchanged.
func respondWithRawJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		logging.Log.Warnf("Failed to write response body: %v", err)
	}
}
