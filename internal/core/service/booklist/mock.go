package booklist

import (
	"context"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBookListService is a mock implementation of port.BookListService
type MockBookListService struct {
	mock.Mock
}

// NewMockBookListService creates a new MockBookListService
func NewMockBookListService() *MockBookListService {
	return &MockBookListService{}
}

func (m *MockBookListService) Upload(ctx context.Context, fileName string, content []byte) (domain.UploadResult, error) {
	args := m.Called(ctx, fileName, content)
	return args.Get(0).(domain.UploadResult), args.Error(1)
}

func (m *MockBookListService) Get(ctx context.Context, id uuid.UUID) (*domain.BookFile, *domain.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.BookFile), args.Get(1).(*domain.Document), args.Error(2)
}

func (m *MockBookListService) List(ctx context.Context, limit, offset int) ([]domain.BookFile, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.BookFile), args.Error(1)
}
