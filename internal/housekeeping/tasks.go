// filepath: internal/housekeeping/tasks.go
package housekeeping

import (
	"context"
	"fmt"
	"solarapi/internal/models"
	"time"
)

// Dependencies defines the required services for the housekeeping tasks.
type Dependencies struct {
	Store Pruner
}

// RunRetention deletes cleaning requests older than retention, measured from now.
// A zero retention keeps everything.
func RunRetention(ctx context.Context, deps Dependencies, retention time.Duration, now time.Time) (*models.HousekeepingReport, error) {
	if retention <= 0 {
		return &models.HousekeepingReport{Message: "Retention disabled, nothing to do."}, nil
	}

	cutoff := now.Add(-retention)
	deleted, err := deps.Store.DeleteCleanRequestsBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("retention cleanup failed: %w", err)
	}

	return &models.HousekeepingReport{
		Cutoff:          cutoff,
		RequestsDeleted: deleted,
		Message:         fmt.Sprintf("Housekeeping complete. %d cleaning requests older than %s deleted.", deleted, cutoff.Format(time.RFC3339)),
	}, nil
}
