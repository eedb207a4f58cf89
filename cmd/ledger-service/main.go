package main

import "payments-intelligence-system/internal/bootstrap/ledger"

// @title Payments Intelligence System API
// @version 1.0
// @description Аналитика и обнаружение аномалий поверх леджера платежных фактов
// @host localhost:8080
// @BasePath /api/v1
func main() { ledger.StartLedgerService() }
