package database

import (
	"context"

	"payments-intelligence-system/internal/models"
)

// Repository предоставляет читательский доступ к фактам леджера
// для построения проекций. Все выборки фильтруют deleted_at IS NULL:
// логически удаленный факт не участвует ни в одной агрегации.
type Repository struct {
	db *SQLiteDB
}

func NewRepository(db *SQLiteDB) *Repository {
	return &Repository{db: db}
}

const factColumns = `
	id, day, entity, product, price_tier, anticipation_method,
	payment_method, installments, amount_transacted,
	quantity_transactions, quantity_of_merchants,
	created_at, updated_at, deleted_at
`

// ListActiveFacts возвращает все неудаленные факты, упорядоченные по дню.
// Контекст пробрасывается в запрос: долгую выборку можно отменить.
func (r *Repository) ListActiveFacts(ctx context.Context) ([]models.TransactionFact, error) {
	query := `
		SELECT ` + factColumns + `
		FROM transactions
		WHERE deleted_at IS NULL
		ORDER BY day ASC, id ASC
	`

	return r.queryFacts(ctx, query)
}

// ListActiveFactsByDayRange возвращает неудаленные факты за диапазон дней
// [from, to] включительно (границы в формате YYYY-MM-DD)
func (r *Repository) ListActiveFactsByDayRange(ctx context.Context, from, to string) ([]models.TransactionFact, error) {
	query := `
		SELECT ` + factColumns + `
		FROM transactions
		WHERE deleted_at IS NULL AND day >= ? AND day <= ?
		ORDER BY day ASC, id ASC
	`

	return r.queryFacts(ctx, query, from, to)
}

func (r *Repository) queryFacts(ctx context.Context, query string, args ...any) ([]models.TransactionFact, error) {
	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []models.TransactionFact
	for rows.Next() {
		var f models.TransactionFact
		err := rows.Scan(
			&f.ID, &f.Day, &f.Entity, &f.Product, &f.PriceTier, &f.AnticipationMethod,
			&f.PaymentMethod, &f.Installments, &f.AmountTransacted,
			&f.QuantityTransactions, &f.QuantityOfMerchants,
			&f.CreatedAt, &f.UpdatedAt, &f.DeletedAt,
		)
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}

	return facts, rows.Err()
}
