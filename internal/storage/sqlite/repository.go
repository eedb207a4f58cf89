package sqlite

import (
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/storage"
)

// Repository реализует интерфейс FactRepository для SQLite
type Repository struct {
	storage *SQLiteStorage
}

// NewRepository создает новый репозиторий SQLite
func NewRepository(storage *SQLiteStorage) storage.FactRepository {
	return &Repository{storage: storage}
}

// InsertFact сохраняет факт в леджер и возвращает присвоенный id
func (r *Repository) InsertFact(req *models.FactRequest) (int64, error) {
	return r.storage.InsertFact(req)
}

// SoftDeleteFact помечает факт удаленным; повторный вызов — no-op
func (r *Repository) SoftDeleteFact(id int64) error {
	return r.storage.SoftDeleteFact(id)
}

// GetFactByID получает факт по id, включая логически удаленные
func (r *Repository) GetFactByID(id int64) (*models.TransactionFact, error) {
	return r.storage.GetFactByID(id)
}

// ListFacts получает факты из леджера
func (r *Repository) ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error) {
	return r.storage.ListFacts(limit, includeDeleted)
}
