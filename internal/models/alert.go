package models

// AlertLevel представляет уровень серьезности аномалии
type AlertLevel string

const (
	AlertCritical AlertLevel = "CRITICAL"
	AlertHigh     AlertLevel = "HIGH"
	AlertMedium   AlertLevel = "MEDIUM"
	AlertPositive AlertLevel = "POSITIVE"
	AlertNormal   AlertLevel = "NORMAL"
)

// Alert представляет запись оповещения по ячейке
// (день, entity, product, payment_method). Не персистится —
// пересчитывается при каждом запросе ленты оповещений.
type Alert struct {
	Day           string     `json:"day"`
	Entity        string     `json:"entity"`
	Product       string     `json:"product"`
	PaymentMethod string     `json:"payment_method"`
	TPV           float64    `json:"tpv"`
	AlertLevel    AlertLevel `json:"alert_level"`
	AlertMessage  string     `json:"alert_message"`
	SeverityScore int        `json:"severity_score"`
	VarD7Pct      *float64   `json:"var_d7_pct"`
	VarVs14DPct   *float64   `json:"var_vs_14d_pct"`
}
