package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

func TestBuildWeekdayAnalysis_NumberingMatchesTimeWeekday(t *testing.T) {
	// 2025-01-05 — воскресенье, 2025-01-06 — понедельник
	facts := []models.TransactionFact{
		makeFact("2025-01-06", "individual", "POS", "credit", 200.0, 2, 1),
		makeFact("2025-01-05", "individual", "POS", "credit", 100.0, 1, 1),
	}

	rows := BuildWeekdayAnalysis(facts)
	require.Len(t, rows, 2)

	assert.Equal(t, 0, rows[0].WeekdayNum)
	assert.Equal(t, "Sunday", rows[0].Weekday)
	assert.Equal(t, 100.0, rows[0].TPV)

	assert.Equal(t, 1, rows[1].WeekdayNum)
	assert.Equal(t, "Monday", rows[1].Weekday)
}

func TestBuildWeekdayAnalysis_AvgDailyTPVOverDistinctDays(t *testing.T) {
	// Два разных воскресенья плюс повтор одного дня
	facts := []models.TransactionFact{
		makeFact("2025-01-05", "individual", "POS", "credit", 100.0, 1, 1),
		makeFact("2025-01-05", "individual", "POS", "credit", 100.0, 1, 1),
		makeFact("2025-01-12", "individual", "POS", "credit", 200.0, 1, 1),
	}

	rows := BuildWeekdayAnalysis(facts)
	require.Len(t, rows, 1)

	assert.Equal(t, 400.0, rows[0].TPV)
	require.NotNil(t, rows[0].AvgDailyTPV)
	assert.Equal(t, 200.0, *rows[0].AvgDailyTPV)
}

func TestBuildWeekdayAnalysis_ShareWithinPartition(t *testing.T) {
	facts := []models.TransactionFact{
		makeFact("2025-01-05", "individual", "POS", "credit", 300.0, 1, 1),
		makeFact("2025-01-06", "individual", "POS", "credit", 100.0, 1, 1),
		// Чужая партиция не влияет на доли
		makeFact("2025-01-05", "business", "TAP", "debit", 9000.0, 1, 1),
	}

	rows := BuildWeekdayAnalysis(facts)

	var sunday *models.WeekdayRow
	for i := range rows {
		if rows[i].Entity == "individual" && rows[i].WeekdayNum == 0 {
			sunday = &rows[i]
		}
	}
	require.NotNil(t, sunday)
	require.NotNil(t, sunday.TPVPct)
	assert.Equal(t, 75.0, *sunday.TPVPct)
}

func TestBuildWeekdayAnalysis_SkipsUnparsableDay(t *testing.T) {
	bad := makeFact("not-a-date", "individual", "POS", "credit", 100.0, 1, 1)
	good := makeFact("2025-01-05", "individual", "POS", "credit", 100.0, 1, 1)

	rows := BuildWeekdayAnalysis([]models.TransactionFact{bad, good})

	require.Len(t, rows, 1)
	assert.Equal(t, "Sunday", rows[0].Weekday)
}
