package booklist_test

import (
	"context"
	"testing"

	"github.com/coliin8/book-explorer/internal/adapters/repository"
	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/service/booklist"
	"github.com/coliin8/book-explorer/internal/core/service/gateway"
	"github.com/coliin8/book-explorer/internal/core/service/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_ReturnsRecordAndRows(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, validation.NewMockValidator(), mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	mockUow.GetBookFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	mockGateway.On("SubmitRetrieve", ctx, record.StorageKey()).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.RetrieveWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollSucceeded, Result: []byte(validCSV)}, nil)

	// Act
	found, doc, err := service.Get(ctx, record.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, record, found)
	require.NotNil(t, doc)
	require.Len(t, doc.Rows, 1)
	assert.Equal(t, "Jane Doe", doc.Rows[0]["Book Author"])
}

func TestGet_RecordNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, validation.NewMockValidator(), mockGateway, testTaskCfg, discardLogger())

	id := uuid.New()
	mockUow.GetBookFileRepoMock().
		On("FindByID", ctx, id).
		Return((*domain.BookFile)(nil), domain.ErrBookFileNotFound)

	// Act
	found, doc, err := service.Get(ctx, id)

	// Assert
	assert.ErrorIs(t, err, domain.ErrBookFileNotFound)
	assert.Nil(t, found)
	assert.Nil(t, doc)
}

func TestGet_RetrieveTimeoutAdvisesRetry(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, validation.NewMockValidator(), mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	mockUow.GetBookFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	mockGateway.On("SubmitRetrieve", ctx, record.StorageKey()).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.RetrieveWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollTimedOut, Reason: "operation still pending, try again later"}, nil)

	// Act
	_, _, err := service.Get(ctx, record.ID)

	// Assert
	assert.ErrorIs(t, err, domain.ErrTaskResultUnavailable)
	assert.Contains(t, err.Error(), "try again later")
}

func TestGet_RetrieveFailed(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, validation.NewMockValidator(), mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	mockUow.GetBookFileRepoMock().On("FindByID", ctx, record.ID).Return(record, nil)
	mockGateway.On("SubmitRetrieve", ctx, record.StorageKey()).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.RetrieveWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollFailed, Reason: "object not found in storage"}, nil)

	// Act
	_, _, err := service.Get(ctx, record.ID)

	// Assert
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTaskResultUnavailable)
	assert.Contains(t, err.Error(), "object not found")
}

func TestList_DefaultsLimit(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := booklist.NewBookListService(mockUow, validation.NewMockValidator(), gateway.NewMockStorageGateway(), testTaskCfg, discardLogger())

	files := []domain.BookFile{*validRecord()}
	mockUow.GetBookFileRepoMock().On("List", ctx, 10, 0).Return(files, nil)

	// Act
	found, err := service.List(ctx, 0, -3)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, files, found)
}
