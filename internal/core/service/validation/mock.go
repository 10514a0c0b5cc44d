package validation

import (
	"context"

	"github.com/coliin8/book-explorer/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

// MockValidator is a mock implementation of port.Validator
type MockValidator struct {
	mock.Mock
}

// NewMockValidator creates a new MockValidator
func NewMockValidator() *MockValidator {
	return &MockValidator{}
}

func (m *MockValidator) Validate(ctx context.Context, fileName string, content []byte) (domain.ValidationOutcome, error) {
	args := m.Called(ctx, fileName, content)
	return args.Get(0).(domain.ValidationOutcome), args.Error(1)
}
