package analytics

import (
	"sort"

	"payments-intelligence-system/internal/models"
)

type anticipationKey struct {
	Entity             string
	AnticipationMethod string
}

type anticipationAcc struct {
	tpv float64
	txs int64
}

type entityTotals struct {
	tpv float64
	txs int64
}

// BuildAnticipationAnalysis строит проекцию по методам антиципации:
// доли считаются внутри entity, а не от общего итога
func BuildAnticipationAnalysis(facts []models.TransactionFact) []models.AnticipationRow {
	groups := make(map[anticipationKey]*anticipationAcc)
	totals := make(map[string]*entityTotals)

	for i := range facts {
		f := &facts[i]
		key := anticipationKey{Entity: f.Entity, AnticipationMethod: f.AnticipationMethod}

		acc, ok := groups[key]
		if !ok {
			acc = &anticipationAcc{}
			groups[key] = acc
		}
		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions

		total, ok := totals[f.Entity]
		if !ok {
			total = &entityTotals{}
			totals[f.Entity] = total
		}
		total.tpv += f.AmountTransacted
		total.txs += f.QuantityTransactions
	}

	result := make([]models.AnticipationRow, 0, len(groups))
	for key, acc := range groups {
		total := totals[key.Entity]
		result = append(result, models.AnticipationRow{
			Entity:                  key.Entity,
			AnticipationMethod:      key.AnticipationMethod,
			TPV:                     acc.tpv,
			TotalTransactions:       acc.txs,
			TPVPctByEntity:          pct(acc.tpv, total.tpv),
			TransactionsPctByEntity: pct(float64(acc.txs), float64(total.txs)),
		})
	}

	// По entity, внутри — крупнейшие методы первыми
	sort.Slice(result, func(i, j int) bool {
		if result[i].Entity != result[j].Entity {
			return result[i].Entity < result[j].Entity
		}
		if result[i].TPV != result[j].TPV {
			return result[i].TPV > result[j].TPV
		}
		return result[i].AnticipationMethod < result[j].AnticipationMethod
	})

	return result
}
