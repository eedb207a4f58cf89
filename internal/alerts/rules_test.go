package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

func fptr(v float64) *float64 {
	return &v
}

func cell(day string, tpv float64, avg14 *float64, varD7Pct *float64) models.TemporalVariationRow {
	return models.TemporalVariationRow{
		Day:           day,
		Entity:        "individual",
		Product:       "POS",
		PaymentMethod: "credit",
		TPV:           tpv,
		Avg14D:        avg14,
		VarD7Pct:      varD7Pct,
	}
}

func TestClassify_CriticalDrop(t *testing.T) {
	d := NewDetector()

	// Отклонение (100-130)/130 = -0.2308 < -0.18
	row := cell("2025-01-15", 100, fptr(130), nil)
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertCritical, level)
	assert.Equal(t, ScoreCritical, score)
}

func TestClassify_HighDrop(t *testing.T) {
	d := NewDetector()

	// Отклонение (85-100)/100 = -0.15: между -0.18 и -0.12
	row := cell("2025-01-15", 85, fptr(100), nil)
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertHigh, level)
	assert.Equal(t, ScoreHigh, score)
}

func TestClassify_MediumLagDrop(t *testing.T) {
	d := NewDetector()

	// Среднего за 14 строк нет, но падение к лагу 7 превышает порог
	row := cell("2025-01-15", 100, nil, fptr(-12.5))
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertMedium, level)
	assert.Equal(t, ScoreMedium, score)
}

func TestClassify_PositiveSpike(t *testing.T) {
	d := NewDetector()

	// Отклонение (130-100)/100 = +0.30 > 0.20
	row := cell("2025-01-15", 130, fptr(100), nil)
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertPositive, level)
	assert.Equal(t, ScorePositive, score)
}

func TestClassify_Normal(t *testing.T) {
	d := NewDetector()

	row := cell("2025-01-15", 102, fptr(100), fptr(1.0))
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertNormal, level)
	assert.Equal(t, ScoreNormal, score)
}

func TestClassify_NoHistory(t *testing.T) {
	d := NewDetector()

	// Без среднего за 14 строк и без лага 7 ячейка всегда NORMAL
	row := cell("2025-01-15", 100, nil, nil)
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertNormal, level)
	assert.Equal(t, ScoreNormal, score)
}

func TestClassify_ZeroAverageIsNormal(t *testing.T) {
	d := NewDetector()

	row := cell("2025-01-15", 100, fptr(0), nil)
	level, _ := d.Classify(&row)

	assert.Equal(t, models.AlertNormal, level)
}

func TestClassify_PriorityOrder(t *testing.T) {
	d := NewDetector()

	// Критическое падение к среднему и одновременно падение к лагу 7:
	// выигрывает правило с большим приоритетом
	row := cell("2025-01-15", 100, fptr(130), fptr(-50.0))
	level, score := d.Classify(&row)

	assert.Equal(t, models.AlertCritical, level)
	assert.Equal(t, ScoreCritical, score)
}

func TestEvaluate_CriticalMessage(t *testing.T) {
	d := NewDetector()

	// (100-130)/130 = -0.23077: в тексте отклонение с точностью 1 знак
	row := cell("2025-01-15", 100, fptr(130), nil)
	alert := d.Evaluate(&row)

	require.NotNil(t, alert)
	assert.Equal(t, models.AlertCritical, alert.AlertLevel)
	assert.Equal(t, 5, alert.SeverityScore)
	assert.Equal(t, "TPV dropped 23.1% below the 14-day average", alert.AlertMessage)
	require.NotNil(t, alert.VarVs14DPct)
	assert.InDelta(t, -23.08, *alert.VarVs14DPct, 0.001)
}

func TestEvaluate_NormalIsSuppressed(t *testing.T) {
	d := NewDetector()

	row := cell("2025-01-15", 100, fptr(100), nil)
	assert.Nil(t, d.Evaluate(&row))
}

func TestEvaluate_CopiesCellFields(t *testing.T) {
	d := NewDetector()

	row := cell("2025-02-01", 80, fptr(100), fptr(-11.0))
	alert := d.Evaluate(&row)

	require.NotNil(t, alert)
	assert.Equal(t, "2025-02-01", alert.Day)
	assert.Equal(t, "individual", alert.Entity)
	assert.Equal(t, "POS", alert.Product)
	assert.Equal(t, "credit", alert.PaymentMethod)
	assert.Equal(t, 80.0, alert.TPV)
	assert.Equal(t, fptr(-11.0), alert.VarD7Pct)
}

// Фильтр всплытия избыточен относительно классификации при текущих
// порогах: каждая не-NORMAL ячейка обязана его проходить. Тест ловит
// расхождение при раздельной подстройке констант.
func TestEvaluate_SurfacingCoversEveryNonNormalLevel(t *testing.T) {
	d := NewDetector()

	rows := []models.TemporalVariationRow{
		cell("2025-01-15", 100, fptr(130), nil),        // CRITICAL
		cell("2025-01-15", 85, fptr(100), nil),         // HIGH
		cell("2025-01-15", 100, nil, fptr(-12.5)),      // MEDIUM
		cell("2025-01-15", 130, fptr(100), nil),        // POSITIVE
	}

	for i := range rows {
		level, _ := d.Classify(&rows[i])
		require.NotEqual(t, models.AlertNormal, level)
		assert.NotNil(t, d.Evaluate(&rows[i]), "level %s must surface", level)
	}
}

func TestBuildAlerts_SortOrder(t *testing.T) {
	d := NewDetector()

	rows := []models.TemporalVariationRow{
		cell("2025-01-10", 130, fptr(100), nil),  // POSITIVE, score 2
		cell("2025-01-15", 100, fptr(130), nil),  // CRITICAL, score 5, tpv 100
		cell("2025-01-12", 200, fptr(260), nil),  // CRITICAL, score 5, tpv 200
		cell("2025-01-20", 85, fptr(100), nil),   // HIGH, score 4
	}

	alerts := d.BuildAlerts(rows)
	require.Len(t, alerts, 4)

	// Очки по убыванию, внутри — TPV по убыванию
	assert.Equal(t, 5, alerts[0].SeverityScore)
	assert.Equal(t, 200.0, alerts[0].TPV)
	assert.Equal(t, 5, alerts[1].SeverityScore)
	assert.Equal(t, 100.0, alerts[1].TPV)
	assert.Equal(t, 4, alerts[2].SeverityScore)
	assert.Equal(t, 2, alerts[3].SeverityScore)
}

func TestBuildAlerts_TieBrokenByDayDescending(t *testing.T) {
	d := NewDetector()

	a := cell("2025-01-10", 100, fptr(130), nil)
	b := cell("2025-01-20", 100, fptr(130), nil)

	alerts := d.BuildAlerts([]models.TemporalVariationRow{a, b})
	require.Len(t, alerts, 2)
	assert.Equal(t, "2025-01-20", alerts[0].Day)
	assert.Equal(t, "2025-01-10", alerts[1].Day)
}

func TestBuildAlerts_EmptyInput(t *testing.T) {
	d := NewDetector()

	alerts := d.BuildAlerts(nil)
	assert.NotNil(t, alerts)
	assert.Empty(t, alerts)
}
