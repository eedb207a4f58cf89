package mocks

import (
	"github.com/stretchr/testify/mock"

	"payments-intelligence-system/internal/models"
)

// MockProducer является моком для kafka.Producer интерфейса
type MockProducer struct {
	mock.Mock
}

// SendFactEvent мок для SendFactEvent
func (m *MockProducer) SendFactEvent(event *models.KafkaFactEvent) error {
	args := m.Called(event)
	return args.Error(0)
}

// Close мок для Close
func (m *MockProducer) Close() error {
	args := m.Called()
	return args.Error(0)
}
