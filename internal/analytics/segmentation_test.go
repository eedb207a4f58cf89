package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

func TestBuildSegmentation_SharesSumToHundred(t *testing.T) {
	facts := []models.TransactionFact{
		makeFact("2025-01-01", "individual", "POS", "credit", 750.0, 10, 5),
		makeFact("2025-01-02", "business", "TAP", "debit", 250.0, 5, 2),
	}

	rows := BuildSegmentation(facts)
	require.Len(t, rows, 2)

	var total float64
	for _, row := range rows {
		require.NotNil(t, row.TPVPctOfTotal)
		total += *row.TPVPctOfTotal
	}
	assert.InDelta(t, 100.0, total, 0.01)

	// Крупнейший сегмент первым
	assert.Equal(t, 750.0, rows[0].TPV)
	require.NotNil(t, rows[0].TPVPctOfTotal)
	assert.Equal(t, 75.0, *rows[0].TPVPctOfTotal)
}

func TestBuildSegmentation_ActivityPeriod(t *testing.T) {
	facts := []models.TransactionFact{
		makeFact("2025-01-05", "individual", "POS", "credit", 100.0, 1, 1),
		makeFact("2025-01-01", "individual", "POS", "credit", 100.0, 1, 1),
		makeFact("2025-01-05", "individual", "POS", "credit", 100.0, 1, 1),
		makeFact("2025-01-09", "individual", "POS", "credit", 100.0, 1, 1),
	}

	rows := BuildSegmentation(facts)
	require.Len(t, rows, 1)

	// Дни считаются как уникальные: 2025-01-05 встречается дважды
	assert.Equal(t, 3, rows[0].DaysActive)
	assert.Equal(t, "2025-01-01", rows[0].FirstDay)
	assert.Equal(t, "2025-01-09", rows[0].LastDay)
}

func TestBuildSegmentation_SplitsByEveryDimension(t *testing.T) {
	base := makeFact("2025-01-01", "individual", "POS", "credit", 100.0, 1, 1)
	premium := base
	premium.PriceTier = "premium"

	rows := BuildSegmentation([]models.TransactionFact{base, premium})

	assert.Len(t, rows, 2)
}
