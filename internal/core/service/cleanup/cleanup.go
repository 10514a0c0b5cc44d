package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/coliin8/book-explorer/internal/core/port"
)

type cleanupService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewCleanupService creates a new CleanupService
func NewCleanupService(uow port.UnitOfWork, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		uow:    uow,
		logger: logger,
	}
}

// CleanupResolvedTasks deletes succeeded, failed and cancelled task rows
// older than the cutoff. Pending and running rows are never touched.
func (s *cleanupService) CleanupResolvedTasks(ctx context.Context, cutoff time.Time) error {
	deleted, err := s.uow.TaskRepo().DeleteResolvedBefore(ctx, cutoff)
	if err != nil {
		s.logger.Error("failed to clean up resolved tasks", "error", err, "cutoff", cutoff)
		return err
	}
	if deleted > 0 {
		s.logger.Info("cleaned up resolved tasks", "deleted", deleted, "cutoff", cutoff)
	}
	return nil
}
