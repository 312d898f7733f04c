// filepath: internal/services/summary_service.go
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"solarapi/internal/logging"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

var _ SummaryService = (*summaryService)(nil)

// summaryService serves the edge summary without caching it.
type summaryService struct {
	reader SummaryReader
}

// NewSummaryService creates a new SummaryService reading through reader.
func NewSummaryService(reader SummaryReader) *summaryService {
	return &summaryService{reader: reader}
}

// GetSummary reads and validates the summary document on every call.
// Key order and number literals of the document are kept; only whitespace is removed.
func (s *summaryService) GetSummary(ctx context.Context) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}

	fields := logrus.Fields{"path": s.reader.Path()}

	data, err := s.reader.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Log.WithFields(fields).Warn("Edge summary is missing")
		} else {
			logging.Log.WithFields(fields).Errorf("Edge summary could not be read: %v", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}

	if !utf8.Valid(data) {
		logging.Log.WithFields(fields).Error("Edge summary is not valid UTF-8")
		return nil, fmt.Errorf("%w: invalid UTF-8 in %s", ErrSummaryUnavailable, s.reader.Path())
	}

	if !json.Valid(data) {
		logging.Log.WithFields(fields).Error("Edge summary is not valid JSON")
		return nil, fmt.Errorf("%w: malformed JSON in %s", ErrSummaryUnavailable, s.reader.Path())
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSummaryUnavailable, err)
	}

	logging.Log.WithFields(fields).Debugf("Served edge summary (%d bytes)", buf.Len())
	return json.RawMessage(buf.Bytes()), nil
}
