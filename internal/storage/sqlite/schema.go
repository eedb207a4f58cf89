package sqlite

// initSchema инициализирует схему леджера.
// CHECK-ограничения дублируют валидацию сервиса: нарушенный факт
// не должен попасть в таблицу ни одним путем.
func (s *SQLiteStorage) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS transactions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		day TEXT NOT NULL,
		entity TEXT NOT NULL,
		product TEXT NOT NULL,
		price_tier TEXT NOT NULL DEFAULT '',
		anticipation_method TEXT NOT NULL DEFAULT '',
		payment_method TEXT NOT NULL,
		installments INTEGER NOT NULL CHECK (installments > 0),
		amount_transacted REAL NOT NULL CHECK (amount_transacted >= 0),
		quantity_transactions INTEGER NOT NULL CHECK (quantity_transactions >= 0),
		quantity_of_merchants INTEGER NOT NULL CHECK (quantity_of_merchants >= 0),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		deleted_at DATETIME
	);

	CREATE INDEX IF NOT EXISTS idx_day ON transactions(day);
	CREATE INDEX IF NOT EXISTS idx_partition ON transactions(entity, product, payment_method);
	CREATE INDEX IF NOT EXISTS idx_deleted_at ON transactions(deleted_at);
	`

	_, err := s.DB.Exec(query)
	return err
}
