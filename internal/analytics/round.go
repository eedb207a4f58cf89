package analytics

import "math"

// Вся арифметика долей и коэффициентов следует двум правилам:
// округление стандартное (half away from zero, не банковское),
// деление на ноль дает nil, а не ошибку и не Inf.

// Round2 округляет до 2 знаков
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 округляет до 1 знака
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Float64Ptr возвращает указатель на значение
func Float64Ptr(v float64) *float64 {
	return &v
}

// ratio возвращает округленное частное num/den, nil при нулевом знаменателе
func ratio(num, den float64) *float64 {
	if den == 0 {
		return nil
	}
	return Float64Ptr(Round2(num / den))
}

// pct возвращает долю part от total в процентах, nil при нулевом total
func pct(part, total float64) *float64 {
	if total == 0 {
		return nil
	}
	return Float64Ptr(Round2(part / total * 100))
}

// pctDelta возвращает процентное отклонение cur от prev,
// nil если prev отсутствует или равен нулю
func pctDelta(cur float64, prev *float64) *float64 {
	if prev == nil || *prev == 0 {
		return nil
	}
	return Float64Ptr(Round2((cur - *prev) / *prev * 100))
}

// ticketAccumulator накапливает средний чек: среднее по строкам
// от amount/quantity, строки с нулевым количеством исключаются
// из среднего, а не считаются нулем
type ticketAccumulator struct {
	sum   float64
	count int
}

func (t *ticketAccumulator) add(amount float64, quantity int64) {
	if quantity == 0 {
		return
	}
	t.sum += amount / float64(quantity)
	t.count++
}

func (t *ticketAccumulator) average() *float64 {
	if t.count == 0 {
		return nil
	}
	return Float64Ptr(Round2(t.sum / float64(t.count)))
}
