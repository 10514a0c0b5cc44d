package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"

	"github.com/google/uuid"
)

type sqlTaskRepository struct {
	db SQLQuerier
}

// NewSqlTaskRepository creates sqlTaskRepository that implements port.TaskRepository
func NewSqlTaskRepository(db SQLQuerier) port.TaskRepository {
	return &sqlTaskRepository{
		db: db,
	}
}

// Create inserts a pending task row
func (s *sqlTaskRepository) Create(ctx context.Context, task domain.StorageTask) error {
	query := `INSERT INTO storage_tasks (id, kind, state, payload, result, error, attempts, max_attempts, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	// payload goes over the wire as text so it lands in the jsonb column
	_, err := s.db.ExecContext(ctx, query,
		task.ID, task.Kind, task.State, string(task.Payload), task.Result,
		task.Error, task.Attempts, task.MaxAttempts, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting storage task: %w", err)
	}
	return nil
}

// FindByID finds by id
func (s *sqlTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.StorageTask, error) {
	query := `SELECT id, kind, state, payload, result, error, attempts, max_attempts, created_at, updated_at
              FROM storage_tasks
              WHERE id = $1`

	var dbTask dbStorageTask
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&dbTask.ID,
		&dbTask.Kind,
		&dbTask.State,
		&dbTask.Payload,
		&dbTask.Result,
		&dbTask.Error,
		&dbTask.Attempts,
		&dbTask.MaxAttempts,
		&dbTask.CreatedAt,
		&dbTask.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	return dbTask.ToDomain(), nil
}

// MarkRunning transitions a task to running and records the attempt number
func (s *sqlTaskRepository) MarkRunning(ctx context.Context, id uuid.UUID, attempts int) error {
	query := `UPDATE storage_tasks
              SET state = $1, attempts = $2, updated_at = now()
              WHERE id = $3`
	return s.mark(ctx, query, domain.TaskStateRunning, attempts, id)
}

// MarkRetrying records a failed attempt that will be retried
func (s *sqlTaskRepository) MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, reason string) error {
	query := `UPDATE storage_tasks
              SET state = $1, attempts = $2, error = $3, updated_at = now()
              WHERE id = $4`
	return s.mark(ctx, query, domain.TaskStateRetrying, attempts, reason, id)
}

// MarkSucceeded stores the result and resolves the task
func (s *sqlTaskRepository) MarkSucceeded(ctx context.Context, id uuid.UUID, result []byte) error {
	query := `UPDATE storage_tasks
              SET state = $1, result = $2, error = '', updated_at = now()
              WHERE id = $3`
	return s.mark(ctx, query, domain.TaskStateSucceeded, result, id)
}

// MarkFailed resolves the task with a failure reason
func (s *sqlTaskRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `UPDATE storage_tasks
              SET state = $1, error = $2, updated_at = now()
              WHERE id = $3`
	return s.mark(ctx, query, domain.TaskStateFailed, reason, id)
}

// DeleteResolvedBefore purges resolved tasks last updated before the cutoff
func (s *sqlTaskRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM storage_tasks
              WHERE state IN ($1, $2, $3) AND updated_at < $4`

	result, err := s.db.ExecContext(ctx, query,
		domain.TaskStateSucceeded, domain.TaskStateFailed, domain.TaskStateCancelled, cutoff)
	if err != nil {
		return 0, fmt.Errorf("error deleting resolved tasks: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error checking rows affected: %w", err)
	}
	return deleted, nil
}

func (s *sqlTaskRepository) mark(ctx context.Context, query string, args ...any) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating storage task: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// dbStorageTask represents a storage task in DB
type dbStorageTask struct {
	ID          uuid.UUID `db:"id"`
	Kind        string    `db:"kind"`
	State       string    `db:"state"`
	Payload     []byte    `db:"payload"`
	Result      []byte    `db:"result"`
	Error       string    `db:"error"`
	Attempts    int       `db:"attempts"`
	MaxAttempts int       `db:"max_attempts"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ToDomain converts to domain.StorageTask
func (t *dbStorageTask) ToDomain() *domain.StorageTask {
	return &domain.StorageTask{
		ID:          t.ID,
		Kind:        domain.TaskKind(t.Kind),
		State:       domain.TaskState(t.State),
		Payload:     t.Payload,
		Result:      t.Result,
		Error:       t.Error,
		Attempts:    t.Attempts,
		MaxAttempts: t.MaxAttempts,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
