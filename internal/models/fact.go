package models

import (
	"time"
)

// TransactionFact представляет строку факта в леджере.
// Каждая строка — предагрегированная корзина (день × комбинация измерений),
// а не атомарная транзакция.
type TransactionFact struct {
	ID                   int64      `json:"id" db:"id"`
	Day                  string     `json:"day" db:"day"` // календарная дата YYYY-MM-DD
	Entity               string     `json:"entity" db:"entity"`
	Product              string     `json:"product" db:"product"`
	PriceTier            string     `json:"price_tier" db:"price_tier"`
	AnticipationMethod   string     `json:"anticipation_method" db:"anticipation_method"`
	PaymentMethod        string     `json:"payment_method" db:"payment_method"`
	Installments         int        `json:"installments" db:"installments"`
	AmountTransacted     float64    `json:"amount_transacted" db:"amount_transacted"`
	QuantityTransactions int64      `json:"quantity_transactions" db:"quantity_transactions"`
	QuantityOfMerchants  int64      `json:"quantity_of_merchants" db:"quantity_of_merchants"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`
	DeletedAt            *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

// IsDeleted сообщает, помечен ли факт как логически удаленный
func (f *TransactionFact) IsDeleted() bool {
	return f.DeletedAt != nil
}

// FactRequest представляет запрос на загрузку факта в леджер.
// Числовые ограничения (installments > 0, суммы и счетчики >= 0)
// проверяются сервисом, а не binding-тегами: ноль — допустимое значение мер.
type FactRequest struct {
	Day                  string  `json:"day" binding:"required"`
	Entity               string  `json:"entity" binding:"required"`
	Product              string  `json:"product" binding:"required"`
	PriceTier            string  `json:"price_tier"`
	AnticipationMethod   string  `json:"anticipation_method"`
	PaymentMethod        string  `json:"payment_method" binding:"required"`
	Installments         int     `json:"installments"`
	AmountTransacted     float64 `json:"amount_transacted"`
	QuantityTransactions int64   `json:"quantity_transactions"`
	QuantityOfMerchants  int64   `json:"quantity_of_merchants"`
}

// FactResponse представляет ответ на запрос загрузки факта
type FactResponse struct {
	FactID  int64  `json:"fact_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// KafkaFactEvent представляет событие изменения леджера в Kafka
type KafkaFactEvent struct {
	EventID   string        `json:"event_id"`
	EventType string        `json:"event_type"` // fact_loaded или fact_deleted
	Timestamp time.Time     `json:"timestamp"`
	Data      KafkaFactData `json:"data"`
}

// KafkaFactData представляет данные факта в событии Kafka
type KafkaFactData struct {
	FactID               int64   `json:"fact_id"`
	Day                  string  `json:"day"`
	Entity               string  `json:"entity"`
	Product              string  `json:"product"`
	PaymentMethod        string  `json:"payment_method"`
	AmountTransacted     float64 `json:"amount_transacted"`
	QuantityTransactions int64   `json:"quantity_transactions"`
}
