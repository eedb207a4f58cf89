package analytics

import (
	"context"
	"log"
	"time"

	"payments-intelligence-system/internal/logger"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/services"
)

// processFactEvent обрабатывает событие изменения леджера из Kafka.
// Единственная реакция — сброс кэша проекций: следующий запрос
// пересчитает проекции от нового среза леджера.
func processFactEvent(event *models.KafkaFactEvent, svc services.AnalyticsService) error {
	log.Printf("Processing ledger event: %s (%s)", event.EventID, event.EventType)

	logger.LogEvent(logger.EventKafkaReceived, "analytics-service", "kafka", map[string]interface{}{
		"event_id":   event.EventID,
		"event_type": event.EventType,
		"fact_id":    event.Data.FactID,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := svc.InvalidateCache(ctx); err != nil {
		log.Printf("Error invalidating projection cache: %v", err)
		return err
	}

	return nil
}
