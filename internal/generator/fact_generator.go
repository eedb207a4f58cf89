package generator

import (
	"math"
	"math/rand"
	"time"

	"payments-intelligence-system/internal/models"
)

type FactGenerator struct {
	rand *rand.Rand
}

func NewFactGenerator() *FactGenerator {
	return &FactGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateFact генерирует факт для заданного календарного дня.
// Измерения берутся из известных доменов, меры — из правдоподобных
// диапазонов с выходной просадкой TPV.
func (g *FactGenerator) GenerateFact(day time.Time) *models.FactRequest {
	paymentMethod := g.pick(models.KnownPaymentMethods)

	fact := &models.FactRequest{
		Day:                day.Format("2006-01-02"),
		Entity:             g.pick(models.KnownEntities),
		Product:            g.pick(models.KnownProducts),
		PriceTier:          g.pick(models.KnownPriceTiers),
		AnticipationMethod: g.pick(models.KnownAnticipationMethods),
		PaymentMethod:      paymentMethod,
		Installments:       g.generateInstallments(paymentMethod),
	}

	merchants := 1 + g.rand.Int63n(50)
	txPerMerchant := 1 + g.rand.Int63n(20)
	quantity := merchants * txPerMerchant

	// Средний чек 50–550, оборот пропорционален числу транзакций
	avgTicket := 50.0 + g.rand.Float64()*500.0
	amount := avgTicket * float64(quantity)

	// Выходные заметно тише будних
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		amount *= 0.6
		quantity = int64(float64(quantity) * 0.6)
		if quantity == 0 {
			quantity = 1
		}
	}

	fact.AmountTransacted = g.roundToTwoDecimals(amount)
	fact.QuantityTransactions = quantity
	fact.QuantityOfMerchants = merchants

	return fact
}

// GenerateHistory генерирует факты за days дней, заканчивая reference.
// На каждый день приходится factsPerDay строк с разными комбинациями
// измерений — достаточно истории для лагов и скользящих средних.
func (g *FactGenerator) GenerateHistory(reference time.Time, days, factsPerDay int) []*models.FactRequest {
	if days <= 0 {
		days = 1
	}
	if factsPerDay <= 0 {
		factsPerDay = 1
	}

	facts := make([]*models.FactRequest, 0, days*factsPerDay)
	for offset := days - 1; offset >= 0; offset-- {
		day := reference.AddDate(0, 0, -offset)
		for i := 0; i < factsPerDay; i++ {
			facts = append(facts, g.GenerateFact(day))
		}
	}
	return facts
}

// generateInstallments подбирает число платежей: рассрочка есть
// только у кредитных операций
func (g *FactGenerator) generateInstallments(paymentMethod string) int {
	if paymentMethod != "credit" {
		return 1
	}
	// Большинство кредитных операций без рассрочки
	if g.rand.Float64() < 0.6 {
		return 1
	}
	return 2 + g.rand.Intn(11)
}

func (g *FactGenerator) pick(domain []string) string {
	return domain[g.rand.Intn(len(domain))]
}

// roundToTwoDecimals округляет число до 2 знаков после запятой
func (g *FactGenerator) roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
