// filepath: internal/models/models.go
package models

import "time"

// Info holds general information about the running service.
type Info struct {
	ServiceName string    `json:"service_name"`
	Version     string    `json:"version"`
	UptimeSince time.Time `json:"uptime_since"`
}

// CleanRequest is a recorded request to clean the solar panels.
type CleanRequest struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CleanRequestPayload is the body accepted by POST /api/clean.
type CleanRequestPayload struct {
	Method  string `json:"method"`
	Message string `json:"message,omitempty"`
}

// CleanResponse acknowledges a cleaning request.
type CleanResponse struct {
	Status string `json:"status"`
}

// HousekeepingReport summarizes one retention run.
type HousekeepingReport struct {
	Cutoff          time.Time `json:"cutoff"`
	RequestsDeleted int64     `json:"requests_deleted"`
	Message         string    `json:"message"`
}
