package alerts

import (
	"fmt"
	"math"
	"sort"

	"payments-intelligence-system/internal/analytics"
	"payments-intelligence-system/internal/models"
)

// Пороги классификации. Правила проверяются строго по приоритету,
// срабатывает первое подошедшее.
const (
	CriticalDropThreshold  = -0.18 // отклонение от среднего за 14 строк
	HighDropThreshold      = -0.12
	MediumLagDropPct       = -10.0 // процентная дельта к лагу 7
	PositiveSpikeThreshold = 0.20
)

// Пороги фильтра всплытия. При текущих константах классификации фильтр
// избыточен (любая не-NORMAL ячейка его проходит) — избыточность
// сохранена намеренно как второй рубеж: при раздельной подстройке
// порогов расхождение должно ловиться тестом, а не молчать.
const (
	SurfaceDev14Threshold  = 0.12
	SurfaceD7PctThreshold  = 10.0
	SurfaceD30PctThreshold = 15.0
)

// Очки серьезности по уровням
const (
	ScoreCritical = 5
	ScoreHigh     = 4
	ScoreMedium   = 3
	ScorePositive = 2
	ScoreNormal   = 1
)

// Detector классифицирует ячейки временной вариации по уровням
// серьезности. Чистая детерминированная функция: никакого состояния,
// никакого чтения часов.
type Detector struct{}

// NewDetector создает детектор аномалий
func NewDetector() *Detector {
	return &Detector{}
}

// deviation14 возвращает относительное отклонение TPV от среднего
// за 14 строк; nil при отсутствующем или нулевом среднем —
// такая ячейка не классифицируется (NORMAL), а не падает с ошибкой
func deviation14(row *models.TemporalVariationRow) *float64 {
	if row.Avg14D == nil || *row.Avg14D == 0 {
		return nil
	}
	dev := (row.TPV - *row.Avg14D) / *row.Avg14D
	return &dev
}

// Classify возвращает уровень и очки серьезности для ячейки.
// Правила взаимоисключающие за счет порядка проверки.
func (d *Detector) Classify(row *models.TemporalVariationRow) (models.AlertLevel, int) {
	dev := deviation14(row)

	// 1. Критическое падение к среднему за 14 строк
	if dev != nil && *dev < CriticalDropThreshold {
		return models.AlertCritical, ScoreCritical
	}

	// 2. Значимое падение к среднему за 14 строк
	if dev != nil && *dev < HighDropThreshold {
		return models.AlertHigh, ScoreHigh
	}

	// 3. Падение к лагу 7: правило работает и без 14-дневной истории
	if row.VarD7Pct != nil && *row.VarD7Pct < MediumLagDropPct {
		return models.AlertMedium, ScoreMedium
	}

	// 4. Положительный всплеск
	if dev != nil && *dev > PositiveSpikeThreshold {
		return models.AlertPositive, ScorePositive
	}

	return models.AlertNormal, ScoreNormal
}

// isSurfaceable проверяет фильтр всплытия: хотя бы одно из отклонений
// должно превышать свой порог по модулю
func isSurfaceable(row *models.TemporalVariationRow, dev *float64) bool {
	if dev != nil && math.Abs(*dev) > SurfaceDev14Threshold {
		return true
	}
	if row.VarD7Pct != nil && math.Abs(*row.VarD7Pct) > SurfaceD7PctThreshold {
		return true
	}
	if row.VarD30Pct != nil && math.Abs(*row.VarD30Pct) > SurfaceD30PctThreshold {
		return true
	}
	return false
}

// alertMessage формирует текст оповещения для уровня, подставляя
// абсолютное отклонение с точностью 1 знак
func alertMessage(level models.AlertLevel, row *models.TemporalVariationRow, dev *float64) string {
	var devPct float64
	if dev != nil {
		devPct = analytics.Round1(math.Abs(*dev) * 100)
	}

	switch level {
	case models.AlertCritical:
		return fmt.Sprintf("TPV dropped %.1f%% below the 14-day average", devPct)
	case models.AlertHigh:
		return fmt.Sprintf("TPV is %.1f%% below the 14-day average", devPct)
	case models.AlertMedium:
		var lagPct float64
		if row.VarD7Pct != nil {
			lagPct = analytics.Round1(math.Abs(*row.VarD7Pct))
		}
		return fmt.Sprintf("TPV fell %.1f%% versus 7 periods back", lagPct)
	case models.AlertPositive:
		return fmt.Sprintf("TPV is %.1f%% above the 14-day average", devPct)
	default:
		return "TPV within normal range"
	}
}

// Evaluate возвращает запись оповещения для ячейки или nil,
// если ячейка не всплывает (NORMAL или не прошла фильтр)
func (d *Detector) Evaluate(row *models.TemporalVariationRow) *models.Alert {
	level, score := d.Classify(row)
	if level == models.AlertNormal {
		return nil
	}

	dev := deviation14(row)
	if !isSurfaceable(row, dev) {
		return nil
	}

	var devPct *float64
	if dev != nil {
		devPct = analytics.Float64Ptr(analytics.Round2(*dev * 100))
	}

	return &models.Alert{
		Day:           row.Day,
		Entity:        row.Entity,
		Product:       row.Product,
		PaymentMethod: row.PaymentMethod,
		TPV:           row.TPV,
		AlertLevel:    level,
		AlertMessage:  alertMessage(level, row, dev),
		SeverityScore: score,
		VarD7Pct:      row.VarD7Pct,
		VarVs14DPct:   devPct,
	}
}

// BuildAlerts строит ленту оповещений по строкам временной вариации.
// Порядок: очки серьезности по убыванию, затем TPV по убыванию,
// затем день по убыванию.
func (d *Detector) BuildAlerts(rows []models.TemporalVariationRow) []models.Alert {
	alerts := make([]models.Alert, 0)
	for i := range rows {
		if alert := d.Evaluate(&rows[i]); alert != nil {
			alerts = append(alerts, *alert)
		}
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].SeverityScore != alerts[j].SeverityScore {
			return alerts[i].SeverityScore > alerts[j].SeverityScore
		}
		if alerts[i].TPV != alerts[j].TPV {
			return alerts[i].TPV > alerts[j].TPV
		}
		return alerts[i].Day > alerts[j].Day
	})

	return alerts
}
