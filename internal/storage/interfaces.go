package storage

import (
	"payments-intelligence-system/internal/models"
)

// FactRepository определяет интерфейс для работы с фактами в леджере.
// Жесткое удаление не предусмотрено: аудиторский след постоянен.
type FactRepository interface {
	// InsertFact сохраняет факт в леджер и возвращает присвоенный id
	InsertFact(req *models.FactRequest) (int64, error)

	// SoftDeleteFact помечает факт удаленным; повторный вызов — no-op
	SoftDeleteFact(id int64) error

	// GetFactByID получает факт по id, включая логически удаленные
	GetFactByID(id int64) (*models.TransactionFact, error)

	// ListFacts получает факты из леджера; удаленные включаются только явно
	ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error)
}
