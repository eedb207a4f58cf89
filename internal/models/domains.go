package models

// Известные категориальные домены леджера. entity — открытое множество
// сегментов (§ схема леджера), поэтому списки используются только
// генератором тестовых данных и опциональной строгой валидацией фильтров.
var (
	KnownEntities            = []string{"individual", "business"}
	KnownProducts            = []string{"POS", "TAP", "LINK", "BANKING"}
	KnownPaymentMethods      = []string{"credit", "debit", "pix"}
	KnownPriceTiers          = []string{"basic", "normal", "premium"}
	KnownAnticipationMethods = []string{"D0", "D1", "D30"}
)
