package analytics

import (
	"sort"

	"payments-intelligence-system/internal/models"
)

type productKey struct {
	Product string
	Entity  string
}

type productAcc struct {
	tpv    float64
	txs    int64
	ticket ticketAccumulator
	days   map[string]struct{}
}

// BuildProductComparison строит проекцию сравнения продуктов:
// группы (product, entity) с долей от общего TPV и числом активных дней
func BuildProductComparison(facts []models.TransactionFact) []models.ProductComparisonRow {
	groups := make(map[productKey]*productAcc)
	var grandTotal float64

	for i := range facts {
		f := &facts[i]
		key := productKey{Product: f.Product, Entity: f.Entity}

		acc, ok := groups[key]
		if !ok {
			acc = &productAcc{days: make(map[string]struct{})}
			groups[key] = acc
		}
		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions
		acc.ticket.add(f.AmountTransacted, f.QuantityTransactions)
		acc.days[f.Day] = struct{}{}

		grandTotal += f.AmountTransacted
	}

	result := make([]models.ProductComparisonRow, 0, len(groups))
	for key, acc := range groups {
		result = append(result, models.ProductComparisonRow{
			Product:           key.Product,
			Entity:            key.Entity,
			TPV:               acc.tpv,
			TotalTransactions: acc.txs,
			AvgTicket:         acc.ticket.average(),
			TPVPctOfTotal:     pct(acc.tpv, grandTotal),
			DaysActive:        len(acc.days),
		})
	}

	// Контракт проекции: общий TPV по убыванию
	sort.Slice(result, func(i, j int) bool {
		if result[i].TPV != result[j].TPV {
			return result[i].TPV > result[j].TPV
		}
		if result[i].Product != result[j].Product {
			return result[i].Product < result[j].Product
		}
		return result[i].Entity < result[j].Entity
	})

	return result
}
