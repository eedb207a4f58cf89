package sqlite

import (
	"database/sql"

	"payments-intelligence-system/internal/models"
)

const factColumns = `
	id, day, entity, product, price_tier, anticipation_method,
	payment_method, installments, amount_transacted,
	quantity_transactions, quantity_of_merchants,
	created_at, updated_at, deleted_at
`

func scanFact(row interface{ Scan(...any) error }) (*models.TransactionFact, error) {
	var f models.TransactionFact
	err := row.Scan(
		&f.ID, &f.Day, &f.Entity, &f.Product, &f.PriceTier, &f.AnticipationMethod,
		&f.PaymentMethod, &f.Installments, &f.AmountTransacted,
		&f.QuantityTransactions, &f.QuantityOfMerchants,
		&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFactByID получает факт по id, включая логически удаленные.
// Идентичность удаленного факта сохраняется для аудита.
func (s *SQLiteStorage) GetFactByID(id int64) (*models.TransactionFact, error) {
	query := `SELECT ` + factColumns + ` FROM transactions WHERE id = ?`

	fact, err := scanFact(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return fact, nil
}

// ListFacts получает факты из леджера. По умолчанию удаленные исключаются;
// includeDeleted нужен только для явных запросов истории.
func (s *SQLiteStorage) ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error) {
	query := `SELECT ` + factColumns + ` FROM transactions`
	if !includeDeleted {
		query += ` WHERE deleted_at IS NULL`
	}
	query += ` ORDER BY day DESC, id DESC LIMIT ?`

	rows, err := s.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []*models.TransactionFact
	for rows.Next() {
		fact, err := scanFact(rows)
		if err != nil {
			return nil, err
		}
		facts = append(facts, fact)
	}

	return facts, rows.Err()
}
