package repository

import (
	"context"
	"time"

	"github.com/coliin8/book-explorer/internal/core/domain"
	"github.com/coliin8/book-explorer/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBookFileRepository struct {
	mock.Mock
}

func NewMockBookFileRepository() *MockBookFileRepository {
	return &MockBookFileRepository{}
}

func (m *MockBookFileRepository) Save(ctx context.Context, file domain.BookFile) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockBookFileRepository) ExistsByChecksum(ctx context.Context, checksum string) (bool, error) {
	args := m.Called(ctx, checksum)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.BookFile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.BookFile), args.Error(1)
}

func (m *MockBookFileRepository) FindByStorageURL(ctx context.Context, storageURL string) (*domain.BookFile, error) {
	args := m.Called(ctx, storageURL)
	return args.Get(0).(*domain.BookFile), args.Error(1)
}

func (m *MockBookFileRepository) List(ctx context.Context, limit, offset int) ([]domain.BookFile, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.BookFile), args.Error(1)
}

type MockTaskRepository struct {
	mock.Mock
}

func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{}
}

func (m *MockTaskRepository) Create(ctx context.Context, task domain.StorageTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.StorageTask, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.StorageTask), args.Error(1)
}

func (m *MockTaskRepository) MarkRunning(ctx context.Context, id uuid.UUID, attempts int) error {
	args := m.Called(ctx, id, attempts)
	return args.Error(0)
}

func (m *MockTaskRepository) MarkRetrying(ctx context.Context, id uuid.UUID, attempts int, reason string) error {
	args := m.Called(ctx, id, attempts, reason)
	return args.Error(0)
}

func (m *MockTaskRepository) MarkSucceeded(ctx context.Context, id uuid.UUID, result []byte) error {
	args := m.Called(ctx, id, result)
	return args.Error(0)
}

func (m *MockTaskRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	args := m.Called(ctx, id, reason)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteResolvedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	bookFileRepo *MockBookFileRepository
	taskRepo     *MockTaskRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		bookFileRepo: &MockBookFileRepository{},
		taskRepo:     &MockTaskRepository{},
	}
}

func (m *MockUnitOfWork) BookFileRepo() port.BookFileRepository {
	return m.bookFileRepo
}

func (m *MockUnitOfWork) TaskRepo() port.TaskRepository {
	return m.taskRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetBookFileRepoMock() *MockBookFileRepository {
	return m.bookFileRepo
}

func (m *MockUnitOfWork) GetTaskRepoMock() *MockTaskRepository {
	return m.taskRepo
}
