// Package gateway submits background storage operations to the task substrate
// and resolves their handles with a bounded busy-wait poll.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"

	"github.com/google/uuid"
)

type storageGateway struct {
	uow       port.UnitOfWork
	publisher port.TaskPublisher
	taskCfg   config.TaskConfig
	logger    *slog.Logger
}

// NewStorageGateway creates a new storage gateway
func NewStorageGateway(uow port.UnitOfWork, publisher port.TaskPublisher, taskCfg config.TaskConfig, logger *slog.Logger) port.StorageGateway {
	return &storageGateway{
		uow:       uow,
		publisher: publisher,
		taskCfg:   taskCfg,
		logger:    logger,
	}
}

func (g *storageGateway) SubmitStore(ctx context.Context, key string, content []byte) (uuid.UUID, error) {
	return g.submit(ctx, domain.TaskKindStore, domain.StorePayload{Key: key, Content: content})
}

func (g *storageGateway) SubmitRetrieve(ctx context.Context, key string) (uuid.UUID, error) {
	return g.submit(ctx, domain.TaskKindRetrieve, domain.RetrievePayload{Key: key})
}

func (g *storageGateway) SubmitNotify(ctx context.Context, storageURL string) (uuid.UUID, error) {
	return g.submit(ctx, domain.TaskKindNotify, domain.NotifyPayload{StorageURL: storageURL})
}

// submit records the task as pending, then hands the envelope to the broker.
// The pending row must exist before the publish so the worker always finds it.
func (g *storageGateway) submit(ctx context.Context, kind domain.TaskKind, payload any) (uuid.UUID, error) {
	task, err := domain.NewStorageTask(kind, payload, g.taskCfg.MaxAttempts)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to build %s task: %w", kind, err)
	}

	if err := g.uow.TaskRepo().Create(ctx, task); err != nil {
		return uuid.Nil, fmt.Errorf("failed to create %s task: %w", kind, err)
	}

	if err := g.publisher.Publish(ctx, domain.TaskEnvelope{TaskID: task.ID}); err != nil {
		return uuid.Nil, fmt.Errorf("failed to publish %s task: %w", kind, err)
	}

	g.logger.Info("storage task submitted", "taskID", task.ID, "kind", kind)
	return task.ID, nil
}

// Wait samples the task state at a fixed interval until a terminal state is
// observed or the budget elapses. This is a busy-wait poll, not a push: up to
// one interval of added latency after actual completion is expected. On
// timeout the background operation is NOT cancelled and may still complete
// and write data later; the caller only learns "still pending".
func (g *storageGateway) Wait(ctx context.Context, taskID uuid.UUID, budget time.Duration) (domain.PollOutcome, error) {
	deadline := time.Now().Add(budget)

	for {
		task, err := g.uow.TaskRepo().FindByID(ctx, taskID)
		if err != nil {
			return domain.PollOutcome{}, fmt.Errorf("failed to poll task %s: %w", taskID, err)
		}

		switch task.State {
		case domain.TaskStateSucceeded:
			return domain.PollOutcome{Status: domain.PollSucceeded, Result: task.Result}, nil
		case domain.TaskStateFailed, domain.TaskStateCancelled:
			return domain.PollOutcome{Status: domain.PollFailed, Reason: task.Error}, nil
		}

		if time.Now().After(deadline) {
			g.logger.Warn("poll budget exhausted, abandoning task without cancellation",
				"taskID", taskID, "lastState", task.State, "budget", budget)
			return domain.PollOutcome{
				Status: domain.PollTimedOut,
				Reason: fmt.Sprintf("operation still %s, try again later", task.State),
			}, nil
		}

		select {
		case <-ctx.Done():
			return domain.PollOutcome{}, ctx.Err()
		case <-time.After(g.taskCfg.PollInterval):
		}
	}
}
