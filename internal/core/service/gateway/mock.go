package gateway

import (
	"context"
	"time"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockStorageGateway is a mock implementation of port.StorageGateway
type MockStorageGateway struct {
	mock.Mock
}

// NewMockStorageGateway creates a new MockStorageGateway
func NewMockStorageGateway() *MockStorageGateway {
	return &MockStorageGateway{}
}

func (m *MockStorageGateway) SubmitStore(ctx context.Context, key string, content []byte) (uuid.UUID, error) {
	args := m.Called(ctx, key, content)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockStorageGateway) SubmitRetrieve(ctx context.Context, key string) (uuid.UUID, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockStorageGateway) SubmitNotify(ctx context.Context, storageURL string) (uuid.UUID, error) {
	args := m.Called(ctx, storageURL)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockStorageGateway) Wait(ctx context.Context, taskID uuid.UUID, budget time.Duration) (domain.PollOutcome, error) {
	args := m.Called(ctx, taskID, budget)
	return args.Get(0).(domain.PollOutcome), args.Error(1)
}
