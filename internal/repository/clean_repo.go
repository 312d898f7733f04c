// filepath: internal/repository/clean_repo.go
package repository

import (
	"context"
	"fmt"
	"solarapi/internal/models"
	"time"

	"github.com/Masterminds/squirrel"
)

// CreateCleanRequest stores a cleaning request.
func (s *Repository) CreateCleanRequest(ctx context.Context, req *models.CleanRequest) error {
	query := s.Builder.Insert("clean_requests").
		Columns("id", "method", "message", "created_at").
		Values(req.ID, req.Method, req.Message, req.CreatedAt.UnixNano())

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert query: %w", err)
	}
	if _, err := s.DB.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("failed to insert cleaning request: %w", err)
	}
	return nil
}

// GetCleanRequests returns up to limit cleaning requests, newest first.
func (s *Repository) GetCleanRequests(ctx context.Context, limit int) ([]models.CleanRequest, error) {
	query := s.Builder.Select("id", "method", "message", "created_at").
		From("clean_requests").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query cleaning requests: %w", err)
	}
	defer rows.Close()

	requests := []models.CleanRequest{}
	for rows.Next() {
		var req models.CleanRequest
		var createdAt int64
		if err := rows.Scan(&req.ID, &req.Method, &req.Message, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan cleaning request: %w", err)
		}
		req.CreatedAt = time.Unix(0, createdAt).UTC()
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// DeleteCleanRequestsBefore removes cleaning requests created before cutoff and
// returns how many rows were deleted.
func (s *Repository) DeleteCleanRequestsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := s.Builder.Delete("clean_requests").
		Where(squirrel.Lt{"created_at": cutoff.UnixNano()})

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}
	res, err := s.DB.ExecContext(ctx, sqlQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete cleaning requests: %w", err)
	}
	return res.RowsAffected()
}
