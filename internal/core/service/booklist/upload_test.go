package booklist_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/coliin8/book-explorer/internal/adapters/repository"
	"github.com/coliin8/book-explorer/internal/config"
	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/service/booklist"
	"github.com/coliin8/book-explorer/internal/core/service/gateway"
	"github.com/coliin8/book-explorer/internal/core/service/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTaskCfg = config.TaskConfig{
	PollInterval:       time.Millisecond,
	UploadWaitBudget:   3 * time.Second,
	RetrieveWaitBudget: 5 * time.Second,
	MaxAttempts:        5,
}

const validCSV = "Book Author,Book Title,Date Published,Publisher Name,Unique Identifer\n" +
	"Jane Doe,First Book,2001,Acme Press,1\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func validRecord() *domain.BookFile {
	return &domain.BookFile{
		ID:           uuid.New(),
		FileName:     "book-success.csv",
		StorageURL:   "http://localhost:9000/jc1976bucket/abc123.csv",
		MD5Checksum:  "3ec0c7f80abe671f09c2ecb0a7bb12ff",
		DateUploaded: time.Now().UTC(),
	}
}

func TestUpload_PersistedOnConfirmedStore(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	content := []byte(validCSV)
	taskID := uuid.New()

	mockValidator.
		On("Validate", ctx, "book-success.csv", content).
		Return(domain.ValidationSuccess(record), nil)
	mockGateway.
		On("SubmitStore", ctx, "abc123.csv", mock.Anything).
		Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.UploadWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollSucceeded}, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetBookFileRepoMock().On("Save", ctx, *record).Return(nil)
	mockGateway.
		On("SubmitNotify", ctx, record.StorageURL).
		Return(uuid.New(), nil).
		Once()

	// Act
	result, err := service.Upload(ctx, "book-success.csv", content)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatePersisted, result.State)
	assert.Equal(t, record, result.BookFile)
	mockGateway.AssertExpectations(t)
	mockGateway.AssertNumberOfCalls(t, "SubmitNotify", 1)
	mockUow.GetBookFileRepoMock().AssertExpectations(t)
}

func TestUpload_RejectedByValidation_NoStorageSubmission(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	failure := domain.ValidationFailure("failed to upload dupe.csv due to validation - file already been upload to system")
	mockValidator.On("Validate", ctx, "dupe.csv", mock.Anything).Return(failure, nil)

	// Act
	result, err := service.Upload(ctx, "dupe.csv", []byte(validCSV))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStateRejected, result.State)
	assert.Equal(t, domain.RejectKindValidation, result.RejectKind)
	assert.Contains(t, result.Message, "already been upload")
	mockGateway.AssertNotCalled(t, "SubmitStore", mock.Anything, mock.Anything, mock.Anything)
	mockGateway.AssertNotCalled(t, "SubmitNotify", mock.Anything, mock.Anything)
}

func TestUpload_StorageFailureRejects(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	mockValidator.On("Validate", ctx, mock.Anything, mock.Anything).Return(domain.ValidationSuccess(record), nil)
	mockGateway.On("SubmitStore", ctx, mock.Anything, mock.Anything).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.UploadWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollFailed, Reason: "storage conflict"}, nil)

	// Act
	result, err := service.Upload(ctx, "book-success.csv", []byte(validCSV))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStateRejected, result.State)
	assert.Equal(t, domain.RejectKindStorageFailed, result.RejectKind)
	assert.Equal(t, "storage conflict", result.Message)
	mockUow.GetBookFileRepoMock().AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockGateway.AssertNotCalled(t, "SubmitNotify", mock.Anything, mock.Anything)
}

func TestUpload_TimeoutRejectsDistinctFromFailure(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	mockValidator.On("Validate", ctx, mock.Anything, mock.Anything).Return(domain.ValidationSuccess(record), nil)
	mockGateway.On("SubmitStore", ctx, mock.Anything, mock.Anything).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.UploadWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollTimedOut, Reason: "operation still running, try again later"}, nil)

	// Act
	result, err := service.Upload(ctx, "book-success.csv", []byte(validCSV))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStateRejected, result.State)
	assert.Equal(t, domain.RejectKindStillPending, result.RejectKind)
	assert.Contains(t, result.Message, "try again later")
	mockUow.GetBookFileRepoMock().AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpload_HeaderOnlyContentRejected(t *testing.T) {
	// Arrange: passes header validation but has zero rows to encode
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	headerOnly := []byte("Book Author,Book Title,Date Published,Publisher Name,Unique Identifer\n")
	mockValidator.On("Validate", ctx, mock.Anything, mock.Anything).Return(domain.ValidationSuccess(record), nil)

	// Act
	result, err := service.Upload(ctx, "empty.csv", headerOnly)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStateRejected, result.State)
	assert.Equal(t, domain.RejectKindValidation, result.RejectKind)
	assert.Contains(t, result.Message, "no rows")
	mockGateway.AssertNotCalled(t, "SubmitStore", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpload_PersistFailureSurfacesError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	saveErr := errors.New("db error")
	mockValidator.On("Validate", ctx, mock.Anything, mock.Anything).Return(domain.ValidationSuccess(record), nil)
	mockGateway.On("SubmitStore", ctx, mock.Anything, mock.Anything).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.UploadWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollSucceeded}, nil)
	mockUow.GetBookFileRepoMock().On("Save", ctx, *record).Return(saveErr)
	mockUow.On("Execute", ctx, mock.Anything).Return(saveErr)

	// Act
	result, err := service.Upload(ctx, "book-success.csv", []byte(validCSV))

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, saveErr)
	assert.Empty(t, result.State)
	mockGateway.AssertNotCalled(t, "SubmitNotify", mock.Anything, mock.Anything)
}

func TestUpload_NotifySubmitFailureDoesNotAffectOutcome(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockValidator := validation.NewMockValidator()
	mockGateway := gateway.NewMockStorageGateway()
	service := booklist.NewBookListService(mockUow, mockValidator, mockGateway, testTaskCfg, discardLogger())

	record := validRecord()
	taskID := uuid.New()
	mockValidator.On("Validate", ctx, mock.Anything, mock.Anything).Return(domain.ValidationSuccess(record), nil)
	mockGateway.On("SubmitStore", ctx, mock.Anything, mock.Anything).Return(taskID, nil)
	mockGateway.
		On("Wait", ctx, taskID, testTaskCfg.UploadWaitBudget).
		Return(domain.PollOutcome{Status: domain.PollSucceeded}, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUow.GetBookFileRepoMock().On("Save", ctx, *record).Return(nil)
	mockGateway.
		On("SubmitNotify", ctx, record.StorageURL).
		Return(uuid.Nil, errors.New("nats unavailable"))

	// Act
	result, err := service.Upload(ctx, "book-success.csv", []byte(validCSV))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatePersisted, result.State)
}
