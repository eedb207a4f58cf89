package analytics

import (
	"payments-intelligence-system/internal/models"
)

// Имена проекций — словарь запросов фасада
const (
	ProjectionDailyKPIs         = "daily_kpis"
	ProjectionSegmentation      = "segmentation"
	ProjectionTemporalVariation = "temporal_variation"
	ProjectionWeekday           = "weekday"
	ProjectionInstallments      = "installments"
	ProjectionPriceTier         = "price_tier"
	ProjectionAnticipation      = "anticipation"
	ProjectionProductComparison = "product_comparison"
)

var knownProjections = map[string]bool{
	ProjectionDailyKPIs:         true,
	ProjectionSegmentation:      true,
	ProjectionTemporalVariation: true,
	ProjectionWeekday:           true,
	ProjectionInstallments:      true,
	ProjectionPriceTier:         true,
	ProjectionAnticipation:      true,
	ProjectionProductComparison: true,
}

// filterParams — допустимые параметры запроса, единые для всех проекций:
// фильтры равенства по измерениям, границы по дню и лимит строк
var filterParams = map[string]bool{
	"entity":              true,
	"product":             true,
	"payment_method":      true,
	"price_tier":          true,
	"anticipation_method": true,
	"installments":        true,
	"day":                 true,
	"from":                true,
	"to":                  true,
	"limit":               true,
}

// Engine строит проекции — чистые функции от текущих неудаленных
// строк леджера. Состояния у движка нет, только режим валидации.
type Engine struct {
	strictFilters bool
}

// NewEngine создает движок агрегации
func NewEngine(strictFilters bool) *Engine {
	return &Engine{strictFilters: strictFilters}
}

// KnownProjection сообщает, входит ли имя в словарь проекций
func KnownProjection(name string) bool {
	return knownProjections[name]
}

// Build строит именованную проекцию по фактам с учетом фильтра.
// Результат — слайс строк соответствующего типа, отсортированный
// согласно контракту проекции.
func (e *Engine) Build(name string, facts []models.TransactionFact, filter *Filter) (interface{}, error) {
	limit := 0
	if filter != nil {
		limit = filter.Limit
	}

	// Временная проекция — особый случай: лаги и скользящие средние
	// требуют всей истории партиции, поэтому границы по дню применяются
	// к готовым строкам, а не к входным фактам. Иначе ячейка, суженная
	// до одного дня, теряла бы всю свою историю.
	if name == ProjectionTemporalVariation {
		rows := BuildTemporalVariation(applyFilter(facts, filter.withoutDayBounds()))
		return limitRows(filterTemporalRowsByDay(rows, filter), limit), nil
	}

	filtered := applyFilter(facts, filter)

	switch name {
	case ProjectionDailyKPIs:
		return limitRows(BuildDailyKPIs(filtered), limit), nil
	case ProjectionSegmentation:
		return limitRows(BuildSegmentation(filtered), limit), nil
	case ProjectionWeekday:
		return limitRows(BuildWeekdayAnalysis(filtered), limit), nil
	case ProjectionInstallments:
		return limitRows(BuildInstallmentsAnalysis(filtered), limit), nil
	case ProjectionPriceTier:
		return limitRows(BuildPriceTierAnalysis(filtered), limit), nil
	case ProjectionAnticipation:
		return limitRows(BuildAnticipationAnalysis(filtered), limit), nil
	case ProjectionProductComparison:
		return limitRows(BuildProductComparison(filtered), limit), nil
	default:
		return nil, &models.UnknownProjectionError{Name: name}
	}
}

func limitRows[T any](rows []T, limit int) []T {
	if limit > 0 && limit < len(rows) {
		return rows[:limit]
	}
	return rows
}

// filterTemporalRowsByDay сужает готовые строки временной проекции
// по границам дня из фильтра. Лаги строк при этом уже посчитаны
// по полной истории.
func filterTemporalRowsByDay(rows []models.TemporalVariationRow, filter *Filter) []models.TemporalVariationRow {
	if filter == nil || (filter.Day == "" && filter.FromDay == "" && filter.ToDay == "") {
		return rows
	}

	result := make([]models.TemporalVariationRow, 0, len(rows))
	for i := range rows {
		if filter.matchesDay(rows[i].Day) {
			result = append(result, rows[i])
		}
	}
	return result
}
