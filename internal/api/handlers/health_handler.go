// internal/api/handlers/health_handler.go
package handlers

import (
	"io"
	"net/http"
)

// HealthMessage is the fixed liveness body.
const HealthMessage = "Solar API is running"

// HealthCheck is a public endpoint to confirm the server is running.
// It does not touch the filesystem or the database.
//
// @Summary Liveness check
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Solar API is running"
// @Router / [get]
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, HealthMessage)
}
