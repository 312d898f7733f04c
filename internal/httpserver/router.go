package httpserver

import (
	"net/http"
	"solarapi/internal/api/handlers"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"

	// Registers the OpenAPI document served under /swagger/.
	_ "solarapi/docs"
)

// SetupRouter configures the router for every public endpoint.
// Request IDs, access logging, panic recovery and CORS wrap the whole router,
// so unmatched routes and preflight requests are covered too.
func SetupRouter(h *handlers.Handlers) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// Health
	r.HandleFunc("/", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")

	// API
	r.HandleFunc("/api/summary", h.GetSummary).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.HandleFunc("/api/clean", h.GetCleanRequests).Methods("GET")
	r.HandleFunc("/api/clean", h.RequestCleaning).Methods("POST")

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	return requestIDMiddleware(accessLogMiddleware(recoveryMiddleware(corsMiddleware(r))))
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
