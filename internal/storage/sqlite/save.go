package sqlite

import (
	"time"

	"payments-intelligence-system/internal/models"
)

// InsertFact сохраняет факт в леджер и возвращает присвоенный id
func (s *SQLiteStorage) InsertFact(req *models.FactRequest) (int64, error) {
	query := `
		INSERT INTO transactions (
			day, entity, product, price_tier, anticipation_method,
			payment_method, installments, amount_transacted,
			quantity_transactions, quantity_of_merchants
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var id int64
	err := retryOperation(func() error {
		result, err := s.DB.Exec(
			query,
			req.Day, req.Entity, req.Product, req.PriceTier, req.AnticipationMethod,
			req.PaymentMethod, req.Installments, req.AmountTransacted,
			req.QuantityTransactions, req.QuantityOfMerchants,
		)
		if err != nil {
			return err
		}
		id, err = result.LastInsertId()
		return err
	}, 3, 50*time.Millisecond)

	return id, err
}
