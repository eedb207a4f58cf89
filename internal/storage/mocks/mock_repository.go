package mocks

import (
	"payments-intelligence-system/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockFactRepository является моком для storage.FactRepository интерфейса
type MockFactRepository struct {
	mock.Mock
}

// InsertFact мок для InsertFact
func (m *MockFactRepository) InsertFact(req *models.FactRequest) (int64, error) {
	args := m.Called(req)
	return args.Get(0).(int64), args.Error(1)
}

// SoftDeleteFact мок для SoftDeleteFact
func (m *MockFactRepository) SoftDeleteFact(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// GetFactByID мок для GetFactByID
func (m *MockFactRepository) GetFactByID(id int64) (*models.TransactionFact, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TransactionFact), args.Error(1)
}

// ListFacts мок для ListFacts
func (m *MockFactRepository) ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error) {
	args := m.Called(limit, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TransactionFact), args.Error(1)
}
