package analytics

import (
	"sort"

	"payments-intelligence-system/internal/models"
)

// Лаговые значения и скользящие средние считаются по порядковой позиции
// внутри партиции (entity, product, payment_method), упорядоченной по дню:
// лаг 7 — это «7 строк назад», а не «7 календарных дней назад». Пропуск
// дня в данных смещает окно, и это ожидаемое поведение.

type temporalCell struct {
	day    string
	tpv    float64
	txs    int64
	ticket ticketAccumulator
}

// BuildTemporalVariation строит проекцию временной вариации:
// лаги 1/7/30, абсолютные и процентные дельты, скользящие средние
// 7/14/30 по предшествующим строкам партиции
func BuildTemporalVariation(facts []models.TransactionFact) []models.TemporalVariationRow {
	// Сначала сводим факты в ячейки (день × партиция)
	partitions := make(map[partitionKey]map[string]*temporalCell)

	for i := range facts {
		f := &facts[i]
		pk := partitionKey{Entity: f.Entity, Product: f.Product, PaymentMethod: f.PaymentMethod}

		cells, ok := partitions[pk]
		if !ok {
			cells = make(map[string]*temporalCell)
			partitions[pk] = cells
		}

		cell, ok := cells[f.Day]
		if !ok {
			cell = &temporalCell{day: f.Day}
			cells[f.Day] = cell
		}
		cell.tpv += f.AmountTransacted
		cell.txs += f.QuantityTransactions
		cell.ticket.add(f.AmountTransacted, f.QuantityTransactions)
	}

	var result []models.TemporalVariationRow

	// Детерминированный порядок партиций
	keys := make([]partitionKey, 0, len(partitions))
	for pk := range partitions {
		keys = append(keys, pk)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	for _, pk := range keys {
		cells := partitions[pk]

		// Упорядоченная по дню последовательность значений партиции
		series := make([]*temporalCell, 0, len(cells))
		for _, cell := range cells {
			series = append(series, cell)
		}
		sort.Slice(series, func(i, j int) bool {
			return series[i].day < series[j].day
		})

		for i, cell := range series {
			row := models.TemporalVariationRow{
				Day:               cell.day,
				Entity:            pk.Entity,
				Product:           pk.Product,
				PaymentMethod:     pk.PaymentMethod,
				TPV:               cell.tpv,
				TotalTransactions: cell.txs,
				AvgTicket:         cell.ticket.average(),
			}

			row.TPVD1 = lagValue(series, i, 1)
			row.TPVD7 = lagValue(series, i, 7)
			row.TPVD30 = lagValue(series, i, 30)

			row.VarD1Abs = absDelta(cell.tpv, row.TPVD1)
			row.VarD1Pct = pctDelta(cell.tpv, row.TPVD1)
			row.VarD7Abs = absDelta(cell.tpv, row.TPVD7)
			row.VarD7Pct = pctDelta(cell.tpv, row.TPVD7)
			row.VarD30Abs = absDelta(cell.tpv, row.TPVD30)
			row.VarD30Pct = pctDelta(cell.tpv, row.TPVD30)

			row.Avg7D = trailingAverage(series, i, 7)
			row.Avg14D = trailingAverage(series, i, 14)
			row.Avg30D = trailingAverage(series, i, 30)

			row.VarVs14DPct = pctDelta(cell.tpv, row.Avg14D)

			result = append(result, row)
		}
	}

	return result
}

// lagValue возвращает TPV на lag позиций раньше в последовательности,
// nil если истории не хватает
func lagValue(series []*temporalCell, i, lag int) *float64 {
	if i < lag {
		return nil
	}
	return Float64Ptr(series[i-lag].tpv)
}

// absDelta возвращает абсолютное отклонение cur от prev
func absDelta(cur float64, prev *float64) *float64 {
	if prev == nil {
		return nil
	}
	return Float64Ptr(Round2(cur - *prev))
}

// trailingAverage возвращает среднее TPV по window строкам,
// непосредственно предшествующим позиции i (текущая строка не входит).
// При нехватке истории усредняются только доступные строки;
// nil только если предшествующих строк нет вовсе.
func trailingAverage(series []*temporalCell, i, window int) *float64 {
	if i == 0 {
		return nil
	}
	start := i - window
	if start < 0 {
		start = 0
	}

	var sum float64
	for j := start; j < i; j++ {
		sum += series[j].tpv
	}
	return Float64Ptr(Round2(sum / float64(i-start)))
}
