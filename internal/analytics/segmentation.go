package analytics

import (
	"sort"

	"payments-intelligence-system/internal/models"
)

type segmentationKey struct {
	Entity             string
	Product            string
	PaymentMethod      string
	PriceTier          string
	AnticipationMethod string
}

type segmentationAcc struct {
	tpv       float64
	txs       int64
	merchants int64
	ticket    ticketAccumulator
	days      map[string]struct{}
	firstDay  string
	lastDay   string
}

// BuildSegmentation строит проекцию сегментации: группы по пяти
// измерениям, период активности и доля каждой группы в общем TPV
func BuildSegmentation(facts []models.TransactionFact) []models.SegmentationRow {
	groups := make(map[segmentationKey]*segmentationAcc)
	var grandTotal float64

	for i := range facts {
		f := &facts[i]
		key := segmentationKey{
			Entity:             f.Entity,
			Product:            f.Product,
			PaymentMethod:      f.PaymentMethod,
			PriceTier:          f.PriceTier,
			AnticipationMethod: f.AnticipationMethod,
		}

		acc, ok := groups[key]
		if !ok {
			acc = &segmentationAcc{
				days:     make(map[string]struct{}),
				firstDay: f.Day,
				lastDay:  f.Day,
			}
			groups[key] = acc
		}

		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions
		acc.merchants += f.QuantityOfMerchants
		acc.ticket.add(f.AmountTransacted, f.QuantityTransactions)
		acc.days[f.Day] = struct{}{}
		if f.Day < acc.firstDay {
			acc.firstDay = f.Day
		}
		if f.Day > acc.lastDay {
			acc.lastDay = f.Day
		}

		grandTotal += f.AmountTransacted
	}

	result := make([]models.SegmentationRow, 0, len(groups))
	for key, acc := range groups {
		result = append(result, models.SegmentationRow{
			Entity:             key.Entity,
			Product:            key.Product,
			PaymentMethod:      key.PaymentMethod,
			PriceTier:          key.PriceTier,
			AnticipationMethod: key.AnticipationMethod,
			TPV:                acc.tpv,
			TotalTransactions:  acc.txs,
			TotalMerchants:     acc.merchants,
			AvgTicket:          acc.ticket.average(),
			DaysActive:         len(acc.days),
			FirstDay:           acc.firstDay,
			LastDay:            acc.lastDay,
			TPVPctOfTotal:      pct(acc.tpv, grandTotal),
		})
	}

	// Крупнейшие сегменты первыми
	sort.Slice(result, func(i, j int) bool {
		if result[i].TPV != result[j].TPV {
			return result[i].TPV > result[j].TPV
		}
		if result[i].Entity != result[j].Entity {
			return result[i].Entity < result[j].Entity
		}
		return result[i].Product < result[j].Product
	})

	return result
}
