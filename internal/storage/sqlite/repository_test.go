package sqlite

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/config"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/storage"
)

func setupTestStorage(t *testing.T) (storage.FactRepository, func()) {
	// Создаем временный файл БД для тестов
	tmpFile := "test_ledger_" + time.Now().Format("20060102150405.000000000") + ".db"

	cfg := &config.Config{
		DB: config.DBConfig{
			DBPath: tmpFile,
		},
	}

	conn, err := NewConnection(cfg)
	require.NoError(t, err)

	repo := NewRepository(conn)

	cleanup := func() {
		conn.Close()
		os.Remove(tmpFile)
		os.Remove(tmpFile + "-wal")
		os.Remove(tmpFile + "-shm")
	}

	return repo, cleanup
}

func testFactRequest(day string) *models.FactRequest {
	return &models.FactRequest{
		Day:                  day,
		Entity:               "individual",
		Product:              "POS",
		PriceTier:            "normal",
		AnticipationMethod:   "D0",
		PaymentMethod:        "credit",
		Installments:         1,
		AmountTransacted:     1500.50,
		QuantityTransactions: 12,
		QuantityOfMerchants:  4,
	}
}

func TestInsertFact(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	id, err := repo.InsertFact(testFactRequest("2025-01-15"))
	require.NoError(t, err)
	require.Greater(t, id, int64(0))

	saved, err := repo.GetFactByID(id)
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "2025-01-15", saved.Day)
	assert.Equal(t, "individual", saved.Entity)
	assert.Equal(t, "POS", saved.Product)
	assert.Equal(t, "credit", saved.PaymentMethod)
	assert.Equal(t, 1, saved.Installments)
	assert.Equal(t, 1500.50, saved.AmountTransacted)
	assert.Equal(t, int64(12), saved.QuantityTransactions)
	assert.Equal(t, int64(4), saved.QuantityOfMerchants)
	assert.Nil(t, saved.DeletedAt)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestInsertFact_SequentialIDs(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	first, err := repo.InsertFact(testFactRequest("2025-01-01"))
	require.NoError(t, err)
	second, err := repo.InsertFact(testFactRequest("2025-01-02"))
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestGetFactByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	fact, err := repo.GetFactByID(9999)
	require.NoError(t, err)
	assert.Nil(t, fact)
}

func TestSoftDeleteFact(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	id, err := repo.InsertFact(testFactRequest("2025-01-15"))
	require.NoError(t, err)

	err = repo.SoftDeleteFact(id)
	require.NoError(t, err)

	// Идентичность факта сохраняется, метка удаления проставлена
	fact, err := repo.GetFactByID(id)
	require.NoError(t, err)
	require.NotNil(t, fact)
	require.NotNil(t, fact.DeletedAt)
	assert.Equal(t, "2025-01-15", fact.Day)
	assert.Equal(t, 1500.50, fact.AmountTransacted)
}

func TestSoftDeleteFact_Idempotent(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	id, err := repo.InsertFact(testFactRequest("2025-01-15"))
	require.NoError(t, err)

	require.NoError(t, repo.SoftDeleteFact(id))

	first, err := repo.GetFactByID(id)
	require.NoError(t, err)
	require.NotNil(t, first.DeletedAt)

	// Повторное удаление — no-op, метка не перезаписывается
	require.NoError(t, repo.SoftDeleteFact(id))

	second, err := repo.GetFactByID(id)
	require.NoError(t, err)
	require.NotNil(t, second.DeletedAt)
	assert.Equal(t, *first.DeletedAt, *second.DeletedAt)
}

func TestListFacts_ExcludesDeletedByDefault(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	kept, err := repo.InsertFact(testFactRequest("2025-01-01"))
	require.NoError(t, err)
	removed, err := repo.InsertFact(testFactRequest("2025-01-02"))
	require.NoError(t, err)

	require.NoError(t, repo.SoftDeleteFact(removed))

	facts, err := repo.ListFacts(100, false)
	require.NoError(t, err)
	require.Len(t, facts, 1)
	assert.Equal(t, kept, facts[0].ID)

	// С include_deleted история видна целиком
	all, err := repo.ListFacts(100, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestListFacts_OrderAndLimit(t *testing.T) {
	repo, cleanup := setupTestStorage(t)
	defer cleanup()

	for i := 1; i <= 5; i++ {
		_, err := repo.InsertFact(testFactRequest(fmt.Sprintf("2025-01-%02d", i)))
		require.NoError(t, err)
	}

	facts, err := repo.ListFacts(3, false)
	require.NoError(t, err)
	require.Len(t, facts, 3)

	// Свежие дни первыми
	assert.Equal(t, "2025-01-05", facts[0].Day)
	assert.Equal(t, "2025-01-04", facts[1].Day)
	assert.Equal(t, "2025-01-03", facts[2].Day)
}
