package services

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"payments-intelligence-system/internal/kafka"
	"payments-intelligence-system/internal/logger"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/storage"
)

// ErrFactNotFound возвращается при операции над несуществующим фактом
var ErrFactNotFound = errors.New("fact not found")

// LedgerServiceImpl реализует интерфейс LedgerService
type LedgerServiceImpl struct {
	repo     storage.FactRepository
	producer kafka.Producer
}

// NewLedgerService создает новый сервис леджера
func NewLedgerService(repo storage.FactRepository, producer kafka.Producer) LedgerService {
	return &LedgerServiceImpl{
		repo:     repo,
		producer: producer,
	}
}

// validateFact проверяет ограничения записи. Запись отклоняется
// целиком: при ошибке ни одна часть факта не попадает в леджер.
func validateFact(req *models.FactRequest) error {
	if _, err := time.Parse("2006-01-02", req.Day); err != nil {
		return &models.ValidationError{Field: "day", Message: "must be a calendar date in YYYY-MM-DD format"}
	}
	if req.Installments <= 0 {
		return &models.ValidationError{Field: "installments", Message: "must be a positive integer"}
	}
	if req.AmountTransacted < 0 {
		return &models.ValidationError{Field: "amount_transacted", Message: "must be non-negative"}
	}
	if req.QuantityTransactions < 0 {
		return &models.ValidationError{Field: "quantity_transactions", Message: "must be non-negative"}
	}
	if req.QuantityOfMerchants < 0 {
		return &models.ValidationError{Field: "quantity_of_merchants", Message: "must be non-negative"}
	}
	return nil
}

// IngestFact валидирует и загружает факт в леджер
func (s *LedgerServiceImpl) IngestFact(req *models.FactRequest) (*models.FactResponse, error) {
	if err := validateFact(req); err != nil {
		return nil, err
	}

	factID, err := s.repo.InsertFact(req)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventFactSaved, "ledger-service", "sqlite", map[string]interface{}{
		"fact_id": factID,
		"day":     req.Day,
		"entity":  req.Entity,
	})

	s.publishFactEvent("fact_loaded", factID, req.Day, req.Entity, req.Product, req.PaymentMethod, req.AmountTransacted, req.QuantityTransactions)

	return &models.FactResponse{
		FactID:  factID,
		Status:  "loaded",
		Message: "Fact accepted into the ledger",
	}, nil
}

// DeleteFact логически удаляет факт по идентификатору
func (s *LedgerServiceImpl) DeleteFact(id int64) error {
	fact, err := s.repo.GetFactByID(id)
	if err != nil {
		return err
	}
	if fact == nil {
		return ErrFactNotFound
	}

	// Повторное удаление — no-op на уровне хранилища,
	// но событие отправляется в любом случае: инвалидация кэша дешева
	if err := s.repo.SoftDeleteFact(id); err != nil {
		return err
	}

	logger.LogEvent(logger.EventFactDeleted, "ledger-service", "sqlite", map[string]interface{}{
		"fact_id": id,
		"day":     fact.Day,
	})

	s.publishFactEvent("fact_deleted", id, fact.Day, fact.Entity, fact.Product, fact.PaymentMethod, fact.AmountTransacted, fact.QuantityTransactions)

	return nil
}

// GetFact возвращает факт по идентификатору, включая удаленные
func (s *LedgerServiceImpl) GetFact(id int64) (*models.TransactionFact, error) {
	return s.repo.GetFactByID(id)
}

// ListFacts возвращает последние факты леджера
func (s *LedgerServiceImpl) ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error) {
	return s.repo.ListFacts(limit, includeDeleted)
}

// publishFactEvent отправляет событие изменения леджера в Kafka.
// Ошибка отправки не откатывает запись: факт уже в леджере,
// читающая сторона получит инвалидацию со следующим событием.
func (s *LedgerServiceImpl) publishFactEvent(eventType string, factID int64, day, entity, product, paymentMethod string, amount float64, quantity int64) {
	event := &models.KafkaFactEvent{
		EventID:   "evt_" + uuid.New().String(),
		EventType: eventType,
		Timestamp: time.Now(),
		Data: models.KafkaFactData{
			FactID:               factID,
			Day:                  day,
			Entity:               entity,
			Product:              product,
			PaymentMethod:        paymentMethod,
			AmountTransacted:     amount,
			QuantityTransactions: quantity,
		},
	}

	if err := s.producer.SendFactEvent(event); err != nil {
		log.Printf("Failed to publish %s event for fact %d: %v", eventType, factID, err)
		return
	}

	logger.LogEvent(logger.EventKafkaSent, "ledger-service", "kafka", map[string]interface{}{
		"event_id":   event.EventID,
		"event_type": eventType,
		"fact_id":    factID,
	})
}
