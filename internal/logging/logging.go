// internal/logging/logging.go
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init is called.
var Log = NewLogger("info", "json")

// Init replaces the process-wide logger with one configured for level and format.
func Init(level, format string) {
	Log = NewLogger(level, format)
}

// NewLogger creates a logger writing to stdout.
func NewLogger(level, format string) *logrus.Logger {
	return newLogger(os.Stdout, level, format)
}

func newLogger(out io.Writer, level, format string) *logrus.Logger {
	var log = logrus.New()

	// Structured logging unless text was requested explicitly.
	if strings.ToLower(format) == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(out)
	log.SetLevel(ParseLevel(level))
	return log
}

// ParseLevel maps a configured level name to a logrus level, defaulting to info.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}
