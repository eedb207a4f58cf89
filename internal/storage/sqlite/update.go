package sqlite

import (
	"time"
)

// SoftDeleteFact помечает факт удаленным. Меры при этом не меняются:
// строка остается в таблице для аудита, но выпадает из всех агрегаций.
// Повторное удаление — no-op, условие deleted_at IS NULL делает
// операцию идемпотентной.
func (s *SQLiteStorage) SoftDeleteFact(id int64) error {
	query := `
		UPDATE transactions
		SET deleted_at = CURRENT_TIMESTAMP,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL
	`

	return retryOperation(func() error {
		_, err := s.DB.Exec(query, id)
		return err
	}, 3, 50*time.Millisecond)
}
