package kafka

import (
	"context"

	"payments-intelligence-system/internal/models"
)

// Producer определяет интерфейс для отправки событий леджера в Kafka
type Producer interface {
	SendFactEvent(event *models.KafkaFactEvent) error

	Close() error
}

// Consumer определяет интерфейс для чтения событий леджера из Kafka
type Consumer interface {
	Start(ctx context.Context) error

	Close() error
}
