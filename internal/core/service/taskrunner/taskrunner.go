package taskrunner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"
)

// taskRunner executes storage tasks delivered off the queue. It owns the
// task's state transitions: pending -> running -> {succeeded, retrying, failed}.
// Only explicitly terminal storage errors short-circuit the retry loop;
// anything else is retried with exponential backoff until attempts run out.
type taskRunner struct {
	uow      port.UnitOfWork
	storage  port.ObjectStorage
	notifier port.Notifier
	taskCfg  config.TaskConfig
	logger   *slog.Logger
}

// NewTaskRunner creates the message handler for the background worker
func NewTaskRunner(
	uow port.UnitOfWork,
	storage port.ObjectStorage,
	notifier port.Notifier,
	taskCfg config.TaskConfig,
	logger *slog.Logger,
) port.MessageService {
	return &taskRunner{
		uow:      uow,
		storage:  storage,
		notifier: notifier,
		taskCfg:  taskCfg,
		logger:   logger,
	}
}

func (r *taskRunner) HandleMessage(ctx context.Context, data []byte) error {
	var envelope domain.TaskEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		// a poison message can never succeed, do not redeliver
		r.logger.Error("discarding undecodable task envelope", "error", err)
		return nil
	}

	task, err := r.uow.TaskRepo().FindByID(ctx, envelope.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			r.logger.Warn("task row missing for delivered envelope", "taskID", envelope.TaskID)
			return nil
		}
		return err
	}

	// redeliveries of already resolved tasks are no-ops
	if task.State.IsTerminal() {
		r.logger.Info("skipping resolved task", "taskID", task.ID, "state", task.State)
		return nil
	}

	return r.run(ctx, task)
}

func (r *taskRunner) run(ctx context.Context, task *domain.StorageTask) error {
	for attempt := task.Attempts + 1; attempt <= task.MaxAttempts; attempt++ {
		if err := r.uow.TaskRepo().MarkRunning(ctx, task.ID, attempt); err != nil {
			return err
		}

		result, execErr := r.execute(ctx, task)
		if execErr == nil {
			r.logger.Info("task succeeded", "taskID", task.ID, "kind", task.Kind, "attempt", attempt)
			return r.uow.TaskRepo().MarkSucceeded(ctx, task.ID, result)
		}

		if isTerminal(execErr) || attempt == task.MaxAttempts {
			r.logger.Error("task failed", "taskID", task.ID, "kind", task.Kind, "attempt", attempt, "error", execErr)
			return r.uow.TaskRepo().MarkFailed(ctx, task.ID, execErr.Error())
		}

		delay := r.backoff(attempt)
		r.logger.Warn("task attempt failed, retrying",
			"taskID", task.ID, "kind", task.Kind, "attempt", attempt, "delay", delay, "error", execErr)
		if err := r.uow.TaskRepo().MarkRetrying(ctx, task.ID, attempt, execErr.Error()); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return r.uow.TaskRepo().MarkFailed(ctx, task.ID, "attempts exhausted")
}

func (r *taskRunner) execute(ctx context.Context, task *domain.StorageTask) ([]byte, error) {
	switch task.Kind {
	case domain.TaskKindStore:
		var payload domain.StorePayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode store payload: %w", err)
		}
		if err := r.storage.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return nil, r.storage.Put(ctx, payload.Key, payload.Content)

	case domain.TaskKindRetrieve:
		var payload domain.RetrievePayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode retrieve payload: %w", err)
		}
		return r.storage.Get(ctx, payload.Key)

	case domain.TaskKindNotify:
		var payload domain.NotifyPayload
		if err := json.Unmarshal(task.Payload, &payload); err != nil {
			return nil, fmt.Errorf("decode notify payload: %w", err)
		}
		return nil, r.notifier.Notify(ctx, payload.StorageURL)

	default:
		return nil, fmt.Errorf("unknown task kind %q", task.Kind)
	}
}

// isTerminal reports errors that retrying cannot fix
func isTerminal(err error) bool {
	return errors.Is(err, domain.ErrStorageConflict) ||
		errors.Is(err, domain.ErrObjectNotFound) ||
		errors.Is(err, domain.ErrStorageAccessDenied)
}

// backoff doubles the base delay per attempt, capped, with jitter so
// concurrent workers do not retry in lockstep
func (r *taskRunner) backoff(attempt int) time.Duration {
	delay := r.taskCfg.RetryBaseDelay << (attempt - 1)
	if delay > r.taskCfg.RetryMaxDelay || delay <= 0 {
		delay = r.taskCfg.RetryMaxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(delay)/2 + 1))
	return delay + jitter
}
