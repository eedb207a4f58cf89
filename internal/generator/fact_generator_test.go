package generator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payments-intelligence-system/internal/models"
)

func domainSet(domain []string) map[string]bool {
	set := make(map[string]bool, len(domain))
	for _, v := range domain {
		set[v] = true
	}
	return set
}

func TestNewFactGenerator(t *testing.T) {
	gen := NewFactGenerator()
	require.NotNil(t, gen)
	assert.NotNil(t, gen.rand)
}

func TestFactGenerator_GenerateFact(t *testing.T) {
	gen := NewFactGenerator()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	fact := gen.GenerateFact(day)
	require.NotNil(t, fact)

	assert.Equal(t, "2025-01-15", fact.Day)

	// Все измерения из известных доменов
	assert.True(t, domainSet(models.KnownEntities)[fact.Entity])
	assert.True(t, domainSet(models.KnownProducts)[fact.Product])
	assert.True(t, domainSet(models.KnownPaymentMethods)[fact.PaymentMethod])
	assert.True(t, domainSet(models.KnownPriceTiers)[fact.PriceTier])
	assert.True(t, domainSet(models.KnownAnticipationMethods)[fact.AnticipationMethod])

	// Меры проходят валидацию границы записи
	assert.Greater(t, fact.Installments, 0)
	assert.GreaterOrEqual(t, fact.AmountTransacted, 0.0)
	assert.Greater(t, fact.QuantityTransactions, int64(0))
	assert.Greater(t, fact.QuantityOfMerchants, int64(0))
}

func TestFactGenerator_InstallmentsOnlyForCredit(t *testing.T) {
	gen := NewFactGenerator()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 100; i++ {
		fact := gen.GenerateFact(day)
		if fact.PaymentMethod != "credit" {
			assert.Equal(t, 1, fact.Installments,
				"non-credit payment method %s must not carry installments", fact.PaymentMethod)
		} else {
			assert.GreaterOrEqual(t, fact.Installments, 1)
			assert.LessOrEqual(t, fact.Installments, 12)
		}
	}
}

func TestFactGenerator_AmountRounded(t *testing.T) {
	gen := NewFactGenerator()
	day := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 20; i++ {
		fact := gen.GenerateFact(day)
		rounded := gen.roundToTwoDecimals(fact.AmountTransacted)
		assert.Equal(t, rounded, fact.AmountTransacted)
	}
}

func TestFactGenerator_GenerateHistory(t *testing.T) {
	gen := NewFactGenerator()
	reference := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	facts := gen.GenerateHistory(reference, 30, 4)
	require.Len(t, facts, 120)

	// История начинается за 29 дней до опорной даты и заканчивается ею
	assert.Equal(t, "2025-01-02", facts[0].Day)
	assert.Equal(t, "2025-01-31", facts[len(facts)-1].Day)

	// Дни идут в неубывающем порядке
	for i := 1; i < len(facts); i++ {
		assert.GreaterOrEqual(t, facts[i].Day, facts[i-1].Day)
	}
}

func TestFactGenerator_GenerateHistory_DefaultsOnInvalidArgs(t *testing.T) {
	gen := NewFactGenerator()
	reference := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	facts := gen.GenerateHistory(reference, 0, -5)
	require.Len(t, facts, 1)
	assert.Equal(t, "2025-01-31", facts[0].Day)
}

func TestFactGenerator_RoundToTwoDecimals(t *testing.T) {
	gen := NewFactGenerator()

	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"HalfUp", 123.456, 123.46},
		{"HalfDown", 123.454, 123.45},
		{"Large", 1000000.123, 1000000.12},
		{"Small", 0.001, 0.00},
		{"Integer", 100.0, 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gen.roundToTwoDecimals(tt.input)
			assert.InDelta(t, tt.expected, result, 0.001)
		})
	}
}
