package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"resumely/internal/domain"
)

// MockProfileParser is a mock implementation of port.ProfileParser.
type MockProfileParser struct {
	mock.Mock
}

func (m *MockProfileParser) Parse(ctx context.Context, text string) (*domain.CanonicalProfile, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CanonicalProfile), args.Error(1)
}
