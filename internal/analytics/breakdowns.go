package analytics

import (
	"sort"

	"payments-intelligence-system/internal/models"
)

// Категориальные разрезы по рассрочкам и ценовым уровням: группировка
// по своему измерению в контексте партиции (entity, product,
// payment_method) с долей от TPV партиции.

type installmentsKey struct {
	Installments int
	Partition    partitionKey
}

type breakdownAcc struct {
	tpv    float64
	txs    int64
	ticket ticketAccumulator
}

// BuildInstallmentsAnalysis строит проекцию по числу рассрочек
func BuildInstallmentsAnalysis(facts []models.TransactionFact) []models.InstallmentsRow {
	groups := make(map[installmentsKey]*breakdownAcc)
	partitionTotals := make(map[partitionKey]float64)

	for i := range facts {
		f := &facts[i]
		pk := partitionKey{Entity: f.Entity, Product: f.Product, PaymentMethod: f.PaymentMethod}
		key := installmentsKey{Installments: f.Installments, Partition: pk}

		acc, ok := groups[key]
		if !ok {
			acc = &breakdownAcc{}
			groups[key] = acc
		}
		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions
		acc.ticket.add(f.AmountTransacted, f.QuantityTransactions)

		partitionTotals[pk] += f.AmountTransacted
	}

	result := make([]models.InstallmentsRow, 0, len(groups))
	for key, acc := range groups {
		result = append(result, models.InstallmentsRow{
			Installments:      key.Installments,
			Entity:            key.Partition.Entity,
			Product:           key.Partition.Product,
			PaymentMethod:     key.Partition.PaymentMethod,
			TPV:               acc.tpv,
			TotalTransactions: acc.txs,
			AvgTicket:         acc.ticket.average(),
			TPVPct:            pct(acc.tpv, partitionTotals[key.Partition]),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		if a.Installments != b.Installments {
			return a.Installments < b.Installments
		}
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		return a.PaymentMethod < b.PaymentMethod
	})

	return result
}

type priceTierKey struct {
	PriceTier string
	Partition partitionKey
}

// BuildPriceTierAnalysis строит проекцию по ценовым уровням
func BuildPriceTierAnalysis(facts []models.TransactionFact) []models.PriceTierRow {
	groups := make(map[priceTierKey]*breakdownAcc)
	partitionTotals := make(map[partitionKey]float64)

	for i := range facts {
		f := &facts[i]
		pk := partitionKey{Entity: f.Entity, Product: f.Product, PaymentMethod: f.PaymentMethod}
		key := priceTierKey{PriceTier: f.PriceTier, Partition: pk}

		acc, ok := groups[key]
		if !ok {
			acc = &breakdownAcc{}
			groups[key] = acc
		}
		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions
		acc.ticket.add(f.AmountTransacted, f.QuantityTransactions)

		partitionTotals[pk] += f.AmountTransacted
	}

	result := make([]models.PriceTierRow, 0, len(groups))
	for key, acc := range groups {
		result = append(result, models.PriceTierRow{
			PriceTier:         key.PriceTier,
			Entity:            key.Partition.Entity,
			Product:           key.Partition.Product,
			PaymentMethod:     key.Partition.PaymentMethod,
			TPV:               acc.tpv,
			TotalTransactions: acc.txs,
			AvgTicket:         acc.ticket.average(),
			TPVPct:            pct(acc.tpv, partitionTotals[key.Partition]),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		if a.PriceTier != b.PriceTier {
			return a.PriceTier < b.PriceTier
		}
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		return a.PaymentMethod < b.PaymentMethod
	})

	return result
}
