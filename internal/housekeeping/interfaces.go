// filepath: internal/housekeeping/interfaces.go
package housekeeping

import (
	"context"
	"time"
)

// Pruner defines the storage method required by the housekeeping service.
// This decouples the retention logic from the concrete database implementation.
type Pruner interface {
	DeleteCleanRequestsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
