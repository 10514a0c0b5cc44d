package port

import (
	"context"
	"time"
)

// CleanupService purges resolved storage tasks past their retention
type CleanupService interface {
	CleanupResolvedTasks(ctx context.Context, cutoff time.Time) error
}
