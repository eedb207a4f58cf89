package mocks

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/stretchr/testify/mock"

	"payments-intelligence-system/internal/models"
)

// MockLedgerService является моком для services.LedgerService интерфейса
type MockLedgerService struct {
	mock.Mock
}

// IngestFact мок для IngestFact
func (m *MockLedgerService) IngestFact(req *models.FactRequest) (*models.FactResponse, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FactResponse), args.Error(1)
}

// DeleteFact мок для DeleteFact
func (m *MockLedgerService) DeleteFact(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// GetFact мок для GetFact
func (m *MockLedgerService) GetFact(id int64) (*models.TransactionFact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionFact), args.Error(1)
}

// ListFacts мок для ListFacts
func (m *MockLedgerService) ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error) {
	args := m.Called(limit, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TransactionFact), args.Error(1)
}

// MockAnalyticsService является моком для services.AnalyticsService интерфейса
type MockAnalyticsService struct {
	mock.Mock
}

// Query мок для Query
func (m *MockAnalyticsService) Query(ctx context.Context, projection string, params url.Values) (json.RawMessage, error) {
	args := m.Called(ctx, projection, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

// Alerts мок для Alerts
func (m *MockAnalyticsService) Alerts(ctx context.Context, day, from, to string) ([]models.Alert, error) {
	args := m.Called(ctx, day, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Alert), args.Error(1)
}

// OverallKPIs мок для OverallKPIs
func (m *MockAnalyticsService) OverallKPIs(ctx context.Context) (*models.OverallKPIs, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.OverallKPIs), args.Error(1)
}

// InvalidateCache мок для InvalidateCache
func (m *MockAnalyticsService) InvalidateCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockFactReader является моком для services.FactReader интерфейса
type MockFactReader struct {
	mock.Mock
}

// ListActiveFacts мок для ListActiveFacts
func (m *MockFactReader) ListActiveFacts(ctx context.Context) ([]models.TransactionFact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionFact), args.Error(1)
}

// ListActiveFactsByDayRange мок для ListActiveFactsByDayRange
func (m *MockFactReader) ListActiveFactsByDayRange(ctx context.Context, from, to string) ([]models.TransactionFact, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TransactionFact), args.Error(1)
}
