package httpserver

import (
	"net"
	"net/http"
	"solarapi/internal/logging"
	"solarapi/internal/services"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 128

// corsMiddleware allows cross-origin requests from any origin and answers
// preflight requests with 204.
func corsMiddleware(next http.Handler) http.Handler {
	return gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", RequestIDHeader}),
		gorillaHandlers.ExposedHeaders([]string{RequestIDHeader}),
		gorillaHandlers.MaxAge(600),
		gorillaHandlers.OptionStatusCode(http.StatusNoContent),
	)(next)
}

// recoveryMiddleware turns a handler panic into a 500 and logs it.
func recoveryMiddleware(next http.Handler) http.Handler {
	return gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(logging.Log),
		gorillaHandlers.PrintRecoveryStack(true),
	)(next)
}

// requestIDMiddleware tags every request with a ULID, keeping a sane incoming one.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = ulid.Make().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := services.WithRequestID(r.Context(), id)
		ctx = services.WithActor(ctx, clientIP(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// accessLogMiddleware writes one log line per request.
func accessLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		fields := logrus.Fields{
			"request_id":  services.RequestIDFromContext(r.Context()),
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rec.status,
			"bytes":       rec.bytes,
			"duration_ms": time.Since(start).Milliseconds(),
			"remote":      clientIP(r),
		}
		entry := logging.Log.WithFields(fields)
		if rec.status >= http.StatusInternalServerError {
			entry.Warn("request failed")
		} else {
			entry.Info("request handled")
		}
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
