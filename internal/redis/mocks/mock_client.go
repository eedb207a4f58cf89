package mocks

import (
	"context"
	"encoding/json"

	"github.com/stretchr/testify/mock"
)

// MockClientInterface является моком для redis.ClientInterface интерфейса
type MockClientInterface struct {
	mock.Mock
}

// SaveProjection мок для SaveProjection
func (m *MockClientInterface) SaveProjection(ctx context.Context, cacheKey string, payload interface{}) error {
	args := m.Called(ctx, cacheKey, payload)
	return args.Error(0)
}

// GetProjection мок для GetProjection
func (m *MockClientInterface) GetProjection(ctx context.Context, cacheKey string) (json.RawMessage, error) {
	args := m.Called(ctx, cacheKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// InvalidateProjections мок для InvalidateProjections
func (m *MockClientInterface) InvalidateProjections(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close мок для Close
func (m *MockClientInterface) Close() error {
	args := m.Called()
	return args.Error(0)
}
