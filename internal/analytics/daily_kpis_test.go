package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

func TestBuildDailyKPIs_GroupsByFullDimensionSet(t *testing.T) {
	facts := []models.TransactionFact{
		makeFact("2025-01-01", "individual", "POS", "credit", 100.0, 10, 5),
		makeFact("2025-01-01", "individual", "POS", "credit", 300.0, 10, 5),
	}

	rows := BuildDailyKPIs(facts)

	require.Len(t, rows, 1)
	row := rows[0]

	assert.Equal(t, 400.0, row.TPV)
	assert.Equal(t, int64(20), row.TotalTransactions)
	assert.Equal(t, int64(10), row.TotalMerchants)
	assert.Equal(t, 2, row.TotalRows)
	assert.Equal(t, 100.0, row.MinAmount)
	assert.Equal(t, 300.0, row.MaxAmount)

	// Средний чек — среднее построчных чеков: (100/10 + 300/10) / 2
	require.NotNil(t, row.AverageTicket)
	assert.Equal(t, 20.0, *row.AverageTicket)

	require.NotNil(t, row.TPVPerMerchant)
	assert.Equal(t, 40.0, *row.TPVPerMerchant)
	require.NotNil(t, row.TransactionsPerMerchant)
	assert.Equal(t, 2.0, *row.TransactionsPerMerchant)
}

func TestBuildDailyKPIs_DifferentInstallmentsSplitGroups(t *testing.T) {
	one := makeFact("2025-01-01", "individual", "POS", "credit", 100.0, 1, 1)
	twelve := makeFact("2025-01-01", "individual", "POS", "credit", 200.0, 1, 1)
	twelve.Installments = 12

	rows := BuildDailyKPIs([]models.TransactionFact{one, twelve})

	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Installments)
	assert.Equal(t, 12, rows[1].Installments)
}

func TestBuildDailyKPIs_ZeroDenominatorsGiveNil(t *testing.T) {
	fact := makeFact("2025-01-01", "individual", "POS", "credit", 100.0, 0, 0)

	rows := BuildDailyKPIs([]models.TransactionFact{fact})

	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].AverageTicket)
	assert.Nil(t, rows[0].TPVPerMerchant)
	assert.Nil(t, rows[0].TransactionsPerMerchant)
	assert.Equal(t, 100.0, rows[0].TPV)
}

func TestBuildDailyKPIs_SortedByDayThenDimensions(t *testing.T) {
	facts := []models.TransactionFact{
		makeFact("2025-01-03", "individual", "POS", "credit", 100.0, 1, 1),
		makeFact("2025-01-01", "business", "TAP", "debit", 100.0, 1, 1),
		makeFact("2025-01-01", "individual", "POS", "credit", 100.0, 1, 1),
	}

	rows := BuildDailyKPIs(facts)

	require.Len(t, rows, 3)
	assert.Equal(t, "2025-01-01", rows[0].Day)
	assert.Equal(t, "business", rows[0].Entity)
	assert.Equal(t, "2025-01-01", rows[1].Day)
	assert.Equal(t, "individual", rows[1].Entity)
	assert.Equal(t, "2025-01-03", rows[2].Day)
}

func TestBuildOverallKPIs(t *testing.T) {
	facts := []models.TransactionFact{
		makeFact("2025-01-01", "individual", "POS", "credit", 1000.0, 10, 5),
		makeFact("2025-01-02", "business", "TAP", "debit", 2000.0, 10, 5),
	}

	kpis := BuildOverallKPIs(facts)

	assert.Equal(t, 3000.0, kpis.TotalTPV)
	assert.Equal(t, int64(20), kpis.TotalTransactions)
	assert.Equal(t, int64(10), kpis.TotalMerchants)
	assert.Equal(t, "2025-01-02", kpis.LastUpdate)
	require.NotNil(t, kpis.AvgTicket)
	// Чеки групп 100 и 200, среднее 150
	assert.Equal(t, 150.0, *kpis.AvgTicket)
}

func TestBuildOverallKPIs_EmptyLedger(t *testing.T) {
	kpis := BuildOverallKPIs(nil)

	assert.Equal(t, 0.0, kpis.TotalTPV)
	assert.Nil(t, kpis.AvgTicket)
	assert.Equal(t, "", kpis.LastUpdate)
}
