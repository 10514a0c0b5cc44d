package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of port.ObjectStorage
type MockStorage struct {
	mock.Mock
}

// NewMockStorage creates a new MockStorage
func NewMockStorage() *MockStorage {
	return &MockStorage{}
}

func (m *MockStorage) EnsureBucket(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStorage) Put(ctx context.Context, key string, content []byte) error {
	args := m.Called(ctx, key, content)
	return args.Error(0)
}

func (m *MockStorage) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
