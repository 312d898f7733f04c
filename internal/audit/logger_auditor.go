// filepath: internal/audit/logger_auditor.go
package audit

import (
	"context"
	"solarapi/internal/services"

	"github.com/sirupsen/logrus"
)

// Ensure LoggerAuditor implements services.Auditor
var _ services.Auditor = (*LoggerAuditor)(nil)

// LoggerAuditor is a simple implementation of Auditor that writes to a logrus logger.
type LoggerAuditor struct {
	enabled bool
	logger  *logrus.Logger
}

// NewLoggerAuditor creates a new instance of LoggerAuditor.
func NewLoggerAuditor(logger *logrus.Logger, enabled bool) *LoggerAuditor {
	return &LoggerAuditor{enabled: enabled, logger: logger}
}

// Log records an event if auditing is enabled.
func (a *LoggerAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	if !a.enabled {
		return
	}

	fields := logrus.Fields{
		"audit_action":   action,
		"audit_actor":    actor,
		"audit_resource": resource,
	}
	if id := services.RequestIDFromContext(ctx); id != "" {
		fields["request_id"] = id
	}

	// Range over nil map is safe in Go, so explicit nil check is not needed.
	for k, v := range details {
		fields["detail."+k] = v
	}

	// Log at INFO level with a specific prefix to make it easy to grep
	a.logger.WithFields(fields).Info("AUDIT EVENT")
}
