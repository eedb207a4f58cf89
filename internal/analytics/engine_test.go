package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

// makeFact создает факт с заполненными измерениями для тестов пакета
func makeFact(day, entity, product, paymentMethod string, amount float64, txs, merchants int64) models.TransactionFact {
	return models.TransactionFact{
		Day:                  day,
		Entity:               entity,
		Product:              product,
		PaymentMethod:        paymentMethod,
		PriceTier:            "normal",
		AnticipationMethod:   "D0",
		Installments:         1,
		AmountTransacted:     amount,
		QuantityTransactions: txs,
		QuantityOfMerchants:  merchants,
	}
}

func sampleLedger() []models.TransactionFact {
	return []models.TransactionFact{
		makeFact("2025-01-01", "individual", "POS", "credit", 1000.0, 10, 5),
		makeFact("2025-01-02", "individual", "POS", "credit", 1200.0, 12, 5),
		makeFact("2025-01-02", "business", "TAP", "debit", 500.0, 4, 2),
		makeFact("2025-01-03", "business", "TAP", "debit", 700.0, 6, 2),
	}
}

func TestKnownProjection(t *testing.T) {
	for _, name := range []string{
		ProjectionDailyKPIs, ProjectionSegmentation, ProjectionTemporalVariation,
		ProjectionWeekday, ProjectionInstallments, ProjectionPriceTier,
		ProjectionAnticipation, ProjectionProductComparison,
	} {
		assert.True(t, KnownProjection(name), name)
	}

	assert.False(t, KnownProjection("quantum_flux"))
	assert.False(t, KnownProjection(""))
}

func TestBuild_UnknownProjection(t *testing.T) {
	engine := NewEngine(false)

	result, err := engine.Build("quantum_flux", sampleLedger(), nil)

	require.Error(t, err)
	assert.Nil(t, result)

	var unknownErr *models.UnknownProjectionError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "quantum_flux", unknownErr.Name)
}

func TestBuild_EveryProjectionReturnsRows(t *testing.T) {
	engine := NewEngine(false)
	facts := sampleLedger()

	for _, name := range []string{
		ProjectionDailyKPIs, ProjectionSegmentation, ProjectionTemporalVariation,
		ProjectionWeekday, ProjectionInstallments, ProjectionPriceTier,
		ProjectionAnticipation, ProjectionProductComparison,
	} {
		result, err := engine.Build(name, facts, nil)
		require.NoError(t, err, name)
		require.NotNil(t, result, name)
	}
}

func TestBuild_FilterNarrowsFacts(t *testing.T) {
	engine := NewEngine(false)

	result, err := engine.Build(ProjectionDailyKPIs, sampleLedger(), &Filter{Entity: "business"})
	require.NoError(t, err)

	rows := result.([]models.DailyKPIRow)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, "business", row.Entity)
	}
}

func TestBuild_LimitAppliedAfterSort(t *testing.T) {
	engine := NewEngine(false)

	result, err := engine.Build(ProjectionDailyKPIs, sampleLedger(), &Filter{Limit: 2})
	require.NoError(t, err)

	rows := result.([]models.DailyKPIRow)
	require.Len(t, rows, 2)
	// Лимит режет хвост уже отсортированного результата
	assert.Equal(t, "2025-01-01", rows[0].Day)
	assert.Equal(t, "2025-01-02", rows[1].Day)
}

func TestBuild_DayFilteredTemporalKeepsLagHistory(t *testing.T) {
	engine := NewEngine(false)

	// 20 подряд идущих дней одной партиции; запрос сужен до последнего дня
	result, err := engine.Build(ProjectionTemporalVariation, dailySeries(20, 100, 100), &Filter{Day: "2025-01-20"})
	require.NoError(t, err)

	rows := result.([]models.TemporalVariationRow)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "2025-01-20", row.Day)
	assert.Equal(t, 2000.0, row.TPV)

	// Лаги и скользящие средние посчитаны по полной истории партиции,
	// граница по дню срезает только выходные строки
	require.NotNil(t, row.TPVD1)
	assert.Equal(t, 1900.0, *row.TPVD1)
	require.NotNil(t, row.TPVD7)
	assert.Equal(t, 1300.0, *row.TPVD7)
	require.NotNil(t, row.Avg14D)
	assert.Equal(t, 1250.0, *row.Avg14D)
	require.NotNil(t, row.VarVs14DPct)
	assert.Equal(t, 60.0, *row.VarVs14DPct)
}

func TestBuild_DayRangeOnTemporalKeepsLagHistory(t *testing.T) {
	engine := NewEngine(false)

	filter := &Filter{FromDay: "2025-01-19", ToDay: "2025-01-20"}
	result, err := engine.Build(ProjectionTemporalVariation, dailySeries(20, 100, 100), filter)
	require.NoError(t, err)

	rows := result.([]models.TemporalVariationRow)
	require.Len(t, rows, 2)
	for _, row := range rows {
		require.NotNil(t, row.TPVD1, row.Day)
		require.NotNil(t, row.Avg7D, row.Day)
	}
}

func TestBuild_TemporalCategoricalFilterStillNarrowsFacts(t *testing.T) {
	engine := NewEngine(false)

	facts := dailySeries(3, 100, 100)
	facts = append(facts, makeFact("2025-01-03", "business", "TAP", "debit", 900.0, 1, 1))

	result, err := engine.Build(ProjectionTemporalVariation, facts, &Filter{Entity: "business"})
	require.NoError(t, err)

	rows := result.([]models.TemporalVariationRow)
	require.Len(t, rows, 1)
	assert.Equal(t, "business", rows[0].Entity)
}

func TestBuild_EmptyLedger(t *testing.T) {
	engine := NewEngine(false)

	result, err := engine.Build(ProjectionSegmentation, nil, nil)
	require.NoError(t, err)

	rows := result.([]models.SegmentationRow)
	assert.Empty(t, rows)
}
