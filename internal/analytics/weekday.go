package analytics

import (
	"sort"
	"time"

	"payments-intelligence-system/internal/models"
)

type weekdayKey struct {
	WeekdayNum int
	Partition  partitionKey
}

type weekdayAcc struct {
	tpv    float64
	txs    int64
	ticket ticketAccumulator
	days   map[string]struct{}
}

// BuildWeekdayAnalysis строит проекцию по дням недели.
// Нумерация 0=Sunday..6=Saturday совпадает с time.Weekday.
// Строки с нераспознаваемой датой пропускаются: формат дня
// гарантируется валидацией на границе записи.
func BuildWeekdayAnalysis(facts []models.TransactionFact) []models.WeekdayRow {
	groups := make(map[weekdayKey]*weekdayAcc)
	partitionTotals := make(map[partitionKey]float64)

	for i := range facts {
		f := &facts[i]
		day, err := time.Parse("2006-01-02", f.Day)
		if err != nil {
			continue
		}

		pk := partitionKey{Entity: f.Entity, Product: f.Product, PaymentMethod: f.PaymentMethod}
		key := weekdayKey{WeekdayNum: int(day.Weekday()), Partition: pk}

		acc, ok := groups[key]
		if !ok {
			acc = &weekdayAcc{days: make(map[string]struct{})}
			groups[key] = acc
		}

		acc.tpv += f.AmountTransacted
		acc.txs += f.QuantityTransactions
		acc.ticket.add(f.AmountTransacted, f.QuantityTransactions)
		acc.days[f.Day] = struct{}{}

		partitionTotals[pk] += f.AmountTransacted
	}

	result := make([]models.WeekdayRow, 0, len(groups))
	for key, acc := range groups {
		result = append(result, models.WeekdayRow{
			WeekdayNum:        key.WeekdayNum,
			Weekday:           time.Weekday(key.WeekdayNum).String(),
			Entity:            key.Partition.Entity,
			Product:           key.Partition.Product,
			PaymentMethod:     key.Partition.PaymentMethod,
			TPV:               acc.tpv,
			TotalTransactions: acc.txs,
			AvgTicket:         acc.ticket.average(),
			AvgDailyTPV:       ratio(acc.tpv, float64(len(acc.days))),
			TPVPct:            pct(acc.tpv, partitionTotals[key.Partition]),
		})
	}

	// Сортировка по порядковому номеру дня недели
	sort.Slice(result, func(i, j int) bool {
		a, b := &result[i], &result[j]
		if a.WeekdayNum != b.WeekdayNum {
			return a.WeekdayNum < b.WeekdayNum
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
