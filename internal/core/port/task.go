package port

import (
	"context"
	"time"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/google/uuid"
)

// TaskRepository is an interface to define storage task state interactions
type TaskRepository interface {
	Create(ctx context.Context, task domain.StorageTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.StorageTask, error)
	MarkRunning(ctx context.Context, id uuid.UUID, attempts int) error
	MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, reason string) error
	MarkSucceeded(ctx context.Context, id uuid.UUID, result []byte) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// TaskPublisher hands a task envelope to the background substrate
type TaskPublisher interface {
	Publish(ctx context.Context, envelope domain.TaskEnvelope) error
}

// StorageGateway submits background storage operations and resolves their
// handles with a bounded busy-wait poll.
type StorageGateway interface {
	SubmitStore(ctx context.Context, key string, content []byte) (uuid.UUID, error)
	SubmitRetrieve(ctx context.Context, key string) (uuid.UUID, error)
	SubmitNotify(ctx context.Context, storageURL string) (uuid.UUID, error)
	Wait(ctx context.Context, taskID uuid.UUID, budget time.Duration) (domain.PollOutcome, error)
}
