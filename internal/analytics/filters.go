package analytics

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"payments-intelligence-system/internal/models"
)

// Filter представляет набор фильтров равенства по категориальным
// колонкам проекции плюс границы по дню
type Filter struct {
	Entity             string
	Product            string
	PaymentMethod      string
	PriceTier          string
	AnticipationMethod string
	Installments       *int
	Day                string
	FromDay            string
	ToDay              string
	Limit              int
}

// Matches проверяет, проходит ли факт все заданные фильтры
func (f *Filter) Matches(fact *models.TransactionFact) bool {
	if f == nil {
		return true
	}
	if f.Entity != "" && fact.Entity != f.Entity {
		return false
	}
	if f.Product != "" && fact.Product != f.Product {
		return false
	}
	if f.PaymentMethod != "" && fact.PaymentMethod != f.PaymentMethod {
		return false
	}
	if f.PriceTier != "" && fact.PriceTier != f.PriceTier {
		return false
	}
	if f.AnticipationMethod != "" && fact.AnticipationMethod != f.AnticipationMethod {
		return false
	}
	if f.Installments != nil && fact.Installments != *f.Installments {
		return false
	}
	if f.Day != "" && fact.Day != f.Day {
		return false
	}
	if f.FromDay != "" && fact.Day < f.FromDay {
		return false
	}
	if f.ToDay != "" && fact.Day > f.ToDay {
		return false
	}
	return true
}

// matchesDay проверяет только границы по дню, без фильтров равенства
func (f *Filter) matchesDay(day string) bool {
	if f == nil {
		return true
	}
	if f.Day != "" && day != f.Day {
		return false
	}
	if f.FromDay != "" && day < f.FromDay {
		return false
	}
	if f.ToDay != "" && day > f.ToDay {
		return false
	}
	return true
}

// withoutDayBounds возвращает копию фильтра со снятыми границами по дню
func (f *Filter) withoutDayBounds() *Filter {
	if f == nil {
		return nil
	}
	clone := *f
	clone.Day, clone.FromDay, clone.ToDay = "", "", ""
	return &clone
}

// DayBounds возвращает замкнутый диапазон дней фильтра, если обе границы
// заданы. Точный день — диапазон из одного дня. Полузакрытый диапазон
// не возвращается: его нельзя спустить в выборку как пару границ.
func (f *Filter) DayBounds() (string, string, bool) {
	if f == nil {
		return "", "", false
	}
	if f.Day != "" {
		return f.Day, f.Day, true
	}
	if f.FromDay != "" && f.ToDay != "" {
		return f.FromDay, f.ToDay, true
	}
	return "", "", false
}

// CacheKey возвращает каноническое строковое представление фильтра
// для ключа кэша: одинаковые фильтры дают одинаковый ключ
func (f *Filter) CacheKey() string {
	if f == nil {
		return ""
	}
	parts := map[string]string{
		"entity":              f.Entity,
		"product":             f.Product,
		"payment_method":      f.PaymentMethod,
		"price_tier":          f.PriceTier,
		"anticipation_method": f.AnticipationMethod,
		"day":                 f.Day,
		"from":                f.FromDay,
		"to":                  f.ToDay,
	}
	if f.Installments != nil {
		parts["installments"] = strconv.Itoa(*f.Installments)
	}
	if f.Limit > 0 {
		parts["limit"] = strconv.Itoa(f.Limit)
	}

	keys := make([]string, 0, len(parts))
	for k, v := range parts {
		if v != "" {
			keys = append(keys, k+"="+v)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, "&")
}

// applyFilter возвращает факты, проходящие фильтр
func applyFilter(facts []models.TransactionFact, filter *Filter) []models.TransactionFact {
	if filter == nil {
		return facts
	}
	filtered := make([]models.TransactionFact, 0, len(facts))
	for i := range facts {
		if filter.Matches(&facts[i]) {
			filtered = append(filtered, facts[i])
		}
	}
	return filtered
}

// FilterFromParams разбирает query-параметры в Filter для заданной проекции.
// Неизвестная колонка фильтра дает InvalidFilterError с именем колонки,
// чтобы вызывающая сторона могла скорректировать запрос.
func (e *Engine) FilterFromParams(projection string, params url.Values) (*Filter, error) {
	if !knownProjections[projection] {
		return nil, &models.UnknownProjectionError{Name: projection}
	}

	filter := &Filter{}
	for key, values := range params {
		if len(values) == 0 {
			continue
		}
		value := values[0]

		if !filterParams[key] {
			return nil, &models.InvalidFilterError{Field: key}
		}

		switch key {
		case "entity":
			filter.Entity = value
		case "product":
			filter.Product = value
		case "payment_method":
			filter.PaymentMethod = value
		case "price_tier":
			filter.PriceTier = value
		case "anticipation_method":
			filter.AnticipationMethod = value
		case "installments":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, &models.InvalidFilterError{Field: key, Value: value}
			}
			filter.Installments = &n
		case "day":
			filter.Day = value
		case "from":
			filter.FromDay = value
		case "to":
			filter.ToDay = value
		case "limit":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return nil, &models.InvalidFilterError{Field: key, Value: value}
			}
			filter.Limit = n
		}
	}

	if e.strictFilters {
		if err := validateFilterValues(filter); err != nil {
			return nil, err
		}
	}

	return filter, nil
}

// validateFilterValues сверяет значения категориальных фильтров
// с известными доменами. entity — открытое множество, поэтому режим
// включается отдельным флагом конфигурации.
func validateFilterValues(f *Filter) error {
	checks := []struct {
		field  string
		value  string
		domain []string
	}{
		{"entity", f.Entity, models.KnownEntities},
		{"product", f.Product, models.KnownProducts},
		{"payment_method", f.PaymentMethod, models.KnownPaymentMethods},
		{"price_tier", f.PriceTier, models.KnownPriceTiers},
		{"anticipation_method", f.AnticipationMethod, models.KnownAnticipationMethods},
	}

	for _, c := range checks {
		if c.value == "" {
			continue
		}
		found := false
		for _, known := range c.domain {
			if c.value == known {
				found = true
				break
			}
		}
		if !found {
			return &models.InvalidFilterError{Field: c.field, Value: c.value}
		}
	}
	return nil
}

// partitionKey единый контекст партиционирования (entity, product,
// payment_method), используемый временными и категориальными проекциями
type partitionKey struct {
	Entity        string
	Product       string
	PaymentMethod string
}

func (k partitionKey) String() string {
	return fmt.Sprintf("%s|%s|%s", k.Entity, k.Product, k.PaymentMethod)
}
