package analytics

import (
	"sort"

	"payments-intelligence-system/internal/models"
)

type dailyKPIKey struct {
	Day                string
	Entity             string
	Product            string
	PaymentMethod      string
	PriceTier          string
	AnticipationMethod string
	Installments       int
}

type dailyKPIAcc struct {
	tpv       float64
	txs       int64
	merchants int64
	rows      int
	ticket    ticketAccumulator
	minAmount float64
	maxAmount float64
}

// BuildDailyKPIs строит проекцию дневных KPI: группировка по полному
// набору измерений с суммами, средним чеком, min/max и коэффициентами
// концентрации на мерчанта
func BuildDailyKPIs(facts []models.TransactionFact) []models.DailyKPIRow {
	groups := make(map[dailyKPIKey]*dailyKPIAcc)

	for i := range facts {
		f := &facts[i]
		key := dailyKPIKey{
			Day:                f.Day,
			Entity:             f.Entity,
			Product:            f.Product,
			PaymentMethod:      f.PaymentMethod,
			PriceTier:          f.PriceTier,
			AnticipationMethod: f.AnticipationMethod,
			Installments:       f.Installments,
		}

		acc, ok := groups[key]
		if !ok {
			acc = &dailyKPIAcc{minAmount: f.AmountTransacted, maxAmount: f.AmountTransacted}
			groups[key] = acc
		} else {
			if f.AmountTransacted < acc.minAmount {
				acc.minAmount = f.AmountTransacted
			}
			if f.AmountTransacted > acc.maxAmount {
				acc.maxAmount = f.AmountTransacted
			}
		}

		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions
		acc.merchants += f.QuantityOfMerchants
		acc.rows++
		acc.ticket.add(f.AmountTransacted, f.QuantityTransactions)
	}

	result := make([]models.DailyKPIRow, 0, len(groups))
	for key, acc := range groups {
		result = append(result, models.DailyKPIRow{
			Day:                     key.Day,
			Entity:                  key.Entity,
			Product:                 key.Product,
			PaymentMethod:           key.PaymentMethod,
			PriceTier:               key.PriceTier,
			AnticipationMethod:      key.AnticipationMethod,
			Installments:            key.Installments,
			TPV:                     acc.tpv,
			TotalTransactions:       acc.txs,
			TotalMerchants:          acc.merchants,
			TotalRows:               acc.rows,
			AverageTicket:           acc.ticket.average(),
			MinAmount:               acc.minAmount,
			MaxAmount:               acc.maxAmount,
			TPVPerMerchant:          ratio(acc.tpv, float64(acc.merchants)),
			TransactionsPerMerchant: ratio(float64(acc.txs), float64(acc.merchants)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Entity != b.Entity {
			return a.Entity < b.Entity
		}
		if a.Product != b.Product {
			return a.Product < b.Product
		}
		if a.PaymentMethod != b.PaymentMethod {
			return a.PaymentMethod < b.PaymentMethod
		}
		if a.PriceTier != b.PriceTier {
			return a.PriceTier < b.PriceTier
		}
		if a.AnticipationMethod != b.AnticipationMethod {
			return a.AnticipationMethod < b.AnticipationMethod
		}
		return a.Installments < b.Installments
	})

	return result
}

// BuildOverallKPIs строит сводные KPI по всему леджеру поверх
// проекции дневных KPI
func BuildOverallKPIs(facts []models.TransactionFact) *models.OverallKPIs {
	rows := BuildDailyKPIs(facts)

	kpis := &models.OverallKPIs{}
	var ticketSum float64
	var ticketCount int

	for i := range rows {
		r := &rows[i]
		kpis.TotalTPV += r.TPV
		kpis.TotalTransactions += r.TotalTransactions
		kpis.TotalMerchants += r.TotalMerchants
		if r.AverageTicket != nil {
			ticketSum += *r.AverageTicket
			ticketCount++
		}
		if r.Day > kpis.LastUpdate {
			kpis.LastUpdate = r.Day
		}
	}

	if ticketCount > 0 {
		kpis.AvgTicket = Float64Ptr(Round2(ticketSum / float64(ticketCount)))
	}
	kpis.TotalTPV = Round2(kpis.TotalTPV)

	return kpis
}
