// filepath: internal/services/clean_service.go
package services

import (
	"context"
	"fmt"
	"solarapi/internal/logging"
	"solarapi/internal/models"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// DefaultCleanListLimit is used when no limit is given.
	DefaultCleanListLimit = 50
	// MaxCleanListLimit bounds a single listing.
	MaxCleanListLimit = 500
)

var _ CleanService = (*cleanService)(nil)

type cleanService struct {
	store   CleanStore
	auditor Auditor
	now     func() time.Time
}

// NewCleanService creates a new CleanService.
func NewCleanService(store CleanStore, auditor Auditor) *cleanService {
	return &cleanService{
		store:   store,
		auditor: auditor,
		now:     time.Now,
	}
}

// RequestCleaning validates and records a cleaning request.
func (s *cleanService) RequestCleaning(ctx context.Context, payload models.CleanRequestPayload) (*models.CleanRequest, error) {
	method := strings.TrimSpace(payload.Method)
	if method == "" {
		return nil, fmt.Errorf("%w: method is required", ErrValidation)
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		message = fmt.Sprintf("Cleaning required via %s", method)
	}

	now := s.now().UTC()
	req := &models.CleanRequest{
		ID:        ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String(),
		Method:    method,
		Message:   message,
		CreatedAt: now,
	}

	if err := s.store.CreateCleanRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to store cleaning request: %w", err)
	}

	logging.Log.Infof("Cleaning request: %s - %s", method, message)
	s.auditor.Log(ctx, "clean.request", actorFromContext(ctx), "CleanRequest:"+req.ID, map[string]interface{}{
		"method":  method,
		"message": message,
	})

	return req, nil
}

// GetCleanRequests returns the most recent cleaning requests, newest first.
func (s *cleanService) GetCleanRequests(ctx context.Context, limit int) ([]models.CleanRequest, error) {
	if limit == 0 {
		limit = DefaultCleanListLimit
	}
	if limit < 0 || limit > MaxCleanListLimit {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrValidation, MaxCleanListLimit)
	}
	return s.store.GetCleanRequests(ctx, limit)
}

type unavailableStore struct {
	cause error
}

// NewUnavailableCleanStore returns a CleanStore whose every call fails with
// ErrStoreUnavailable wrapping cause.
func NewUnavailableCleanStore(cause error) CleanStore {
	return &unavailableStore{cause: cause}
}

func (s *unavailableStore) CreateCleanRequest(ctx context.Context, req *models.CleanRequest) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, s.cause)
}

func (s *unavailableStore) GetCleanRequests(ctx context.Context, limit int) ([]models.CleanRequest, error) {
	return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, s.cause)
}
