package eventbroker

import (
	"context"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockTaskPublisher is a mock implementation of port.TaskPublisher
type MockTaskPublisher struct {
	mock.Mock
}

// NewMockTaskPublisher creates a new MockTaskPublisher
func NewMockTaskPublisher() *MockTaskPublisher {
	return &MockTaskPublisher{}
}

func (m *MockTaskPublisher) Publish(ctx context.Context, envelope domain.TaskEnvelope) error {
	args := m.Called(ctx, envelope)
	return args.Error(0)
}
