package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

func TestBuildAnticipationAnalysis_SharesWithinEntity(t *testing.T) {
	d0 := makeFact("2025-01-01", "individual", "POS", "credit", 800.0, 8, 1)
	d30 := makeFact("2025-01-01", "individual", "POS", "credit", 200.0, 2, 1)
	d30.AnticipationMethod = "D30"
	// Доли другой entity считаются от ее собственного итога
	business := makeFact("2025-01-01", "business", "TAP", "debit", 5000.0, 10, 1)

	rows := BuildAnticipationAnalysis([]models.TransactionFact{d0, d30, business})
	require.Len(t, rows, 3)

	// business первым по алфавиту, его единственный метод занимает 100%
	assert.Equal(t, "business", rows[0].Entity)
	require.NotNil(t, rows[0].TPVPctByEntity)
	assert.Equal(t, 100.0, *rows[0].TPVPctByEntity)

	// Внутри individual крупнейший метод первым
	assert.Equal(t, "D0", rows[1].AnticipationMethod)
	require.NotNil(t, rows[1].TPVPctByEntity)
	assert.Equal(t, 80.0, *rows[1].TPVPctByEntity)
	require.NotNil(t, rows[1].TransactionsPctByEntity)
	assert.Equal(t, 80.0, *rows[1].TransactionsPctByEntity)

	assert.Equal(t, "D30", rows[2].AnticipationMethod)
	require.NotNil(t, rows[2].TPVPctByEntity)
	assert.Equal(t, 20.0, *rows[2].TPVPctByEntity)
}
