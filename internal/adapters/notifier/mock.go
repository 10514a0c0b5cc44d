package notifier

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock implementation of port.Notifier
type MockNotifier struct {
	mock.Mock
}

// NewMockNotifier creates a new MockNotifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Notify(ctx context.Context, storageURL string) error {
	args := m.Called(ctx, storageURL)
	return args.Error(0)
}
