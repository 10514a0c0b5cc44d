package cleanup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/coliin8/book-explorer/internal/adapters/repository"
	"github.com/coliin8/book-explorer/internal/core/service/cleanup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCleanupResolvedTasks(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := cleanup.NewCleanupService(mockUow, discardLogger())

	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	mockUow.GetTaskRepoMock().On("DeleteResolvedBefore", ctx, cutoff).Return(int64(3), nil)

	// Act
	err := service.CleanupResolvedTasks(ctx, cutoff)

	// Assert
	require.NoError(t, err)
	mockUow.GetTaskRepoMock().AssertExpectations(t)
}

func TestCleanupResolvedTasks_RepositoryError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := cleanup.NewCleanupService(mockUow, discardLogger())

	cutoff := time.Now().UTC()
	dbErr := errors.New("db unavailable")
	mockUow.GetTaskRepoMock().On("DeleteResolvedBefore", ctx, cutoff).Return(int64(0), dbErr)

	// Act
	err := service.CleanupResolvedTasks(ctx, cutoff)

	// Assert
	assert.ErrorIs(t, err, dbErr)
}
