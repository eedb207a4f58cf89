package models

// Поля-меры с делением (средний чек, доли, коэффициенты концентрации)
// объявлены как *float64: nil означает неопределенное значение
// (деление на ноль или отсутствие истории), а не ноль.

// DailyKPIRow представляет строку проекции дневных KPI
type DailyKPIRow struct {
	Day                     string   `json:"day"`
	Entity                  string   `json:"entity"`
	Product                 string   `json:"product"`
	PaymentMethod           string   `json:"payment_method"`
	PriceTier               string   `json:"price_tier"`
	AnticipationMethod      string   `json:"anticipation_method"`
	Installments            int      `json:"installments"`
	TPV                     float64  `json:"tpv"`
	TotalTransactions       int64    `json:"total_transactions"`
	TotalMerchants          int64    `json:"total_merchants"`
	TotalRows               int      `json:"total_rows"`
	AverageTicket           *float64 `json:"average_ticket"`
	MinAmount               float64  `json:"min_amount"`
	MaxAmount               float64  `json:"max_amount"`
	TPVPerMerchant          *float64 `json:"tpv_per_merchant"`
	TransactionsPerMerchant *float64 `json:"transactions_per_merchant"`
}

// SegmentationRow представляет строку проекции сегментации
type SegmentationRow struct {
	Entity             string   `json:"entity"`
	Product            string   `json:"product"`
	PaymentMethod      string   `json:"payment_method"`
	PriceTier          string   `json:"price_tier"`
	AnticipationMethod string   `json:"anticipation_method"`
	TPV                float64  `json:"tpv"`
	TotalTransactions  int64    `json:"total_transactions"`
	TotalMerchants     int64    `json:"total_merchants"`
	AvgTicket          *float64 `json:"avg_ticket"`
	DaysActive         int      `json:"days_active"`
	FirstDay           string   `json:"first_day"`
	LastDay            string   `json:"last_day"`
	TPVPctOfTotal      *float64 `json:"tpv_pct_of_total"`
}

// TemporalVariationRow представляет строку проекции временной вариации.
// Лаги считаются по порядковой позиции внутри партиции
// (entity, product, payment_method), упорядоченной по дню, а не по календарю.
type TemporalVariationRow struct {
	Day               string   `json:"day"`
	Entity            string   `json:"entity"`
	Product           string   `json:"product"`
	PaymentMethod     string   `json:"payment_method"`
	TPV               float64  `json:"tpv"`
	TotalTransactions int64    `json:"total_transactions"`
	AvgTicket         *float64 `json:"avg_ticket"`
	TPVD1             *float64 `json:"tpv_d1"`
	TPVD7             *float64 `json:"tpv_d7"`
	TPVD30            *float64 `json:"tpv_d30"`
	VarD1Abs          *float64 `json:"var_d1_abs"`
	VarD1Pct          *float64 `json:"var_d1_pct"`
	VarD7Abs          *float64 `json:"var_d7_abs"`
	VarD7Pct          *float64 `json:"var_d7_pct"`
	VarD30Abs         *float64 `json:"var_d30_abs"`
	VarD30Pct         *float64 `json:"var_d30_pct"`
	Avg7D             *float64 `json:"avg_7d"`
	Avg14D            *float64 `json:"avg_14d"`
	Avg30D            *float64 `json:"avg_30d"`
	VarVs14DPct       *float64 `json:"var_vs_14d_pct"`
}

// WeekdayRow представляет строку проекции по дням недели.
// Нумерация: 0 = Sunday .. 6 = Saturday.
type WeekdayRow struct {
	WeekdayNum        int      `json:"weekday_num"`
	Weekday           string   `json:"weekday"`
	Entity            string   `json:"entity"`
	Product           string   `json:"product"`
	PaymentMethod     string   `json:"payment_method"`
	TPV               float64  `json:"tpv"`
	TotalTransactions int64    `json:"total_transactions"`
	AvgTicket         *float64 `json:"avg_ticket"`
	AvgDailyTPV       *float64 `json:"avg_daily_tpv"`
	TPVPct            *float64 `json:"tpv_pct"`
}

// InstallmentsRow представляет строку проекции по числу рассрочек
type InstallmentsRow struct {
	Installments      int      `json:"installments"`
	Entity            string   `json:"entity"`
	Product           string   `json:"product"`
	PaymentMethod     string   `json:"payment_method"`
	TPV               float64  `json:"tpv"`
	TotalTransactions int64    `json:"total_transactions"`
	AvgTicket         *float64 `json:"avg_ticket"`
	TPVPct            *float64 `json:"tpv_pct"`
}

// PriceTierRow представляет строку проекции по ценовым уровням
type PriceTierRow struct {
	PriceTier         string   `json:"price_tier"`
	Entity            string   `json:"entity"`
	Product           string   `json:"product"`
	PaymentMethod     string   `json:"payment_method"`
	TPV               float64  `json:"tpv"`
	TotalTransactions int64    `json:"total_transactions"`
	AvgTicket         *float64 `json:"avg_ticket"`
	TPVPct            *float64 `json:"tpv_pct"`
}

// AnticipationRow представляет строку проекции по методам антиципации
type AnticipationRow struct {
	Entity                  string   `json:"entity"`
	AnticipationMethod      string   `json:"anticipation_method"`
	TPV                     float64  `json:"tpv"`
	TotalTransactions       int64    `json:"total_transactions"`
	TPVPctByEntity          *float64 `json:"tpv_pct_by_entity"`
	TransactionsPctByEntity *float64 `json:"transactions_pct_by_entity"`
}

// ProductComparisonRow представляет строку проекции сравнения продуктов
type ProductComparisonRow struct {
	Product           string   `json:"product"`
	Entity            string   `json:"entity"`
	TPV               float64  `json:"tpv"`
	TotalTransactions int64    `json:"total_transactions"`
	AvgTicket         *float64 `json:"avg_ticket"`
	TPVPctOfTotal     *float64 `json:"tpv_pct_of_total"`
	DaysActive        int      `json:"days_active"`
}

// OverallKPIs представляет сводные KPI по всему леджеру
type OverallKPIs struct {
	TotalTPV          float64  `json:"total_tpv"`
	TotalTransactions int64    `json:"total_transactions"`
	TotalMerchants    int64    `json:"total_merchants"`
	AvgTicket         *float64 `json:"avg_ticket"`
	LastUpdate        string   `json:"last_update"`
}
