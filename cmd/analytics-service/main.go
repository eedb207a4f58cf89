package main

import "payments-intelligence-system/internal/bootstrap/analytics"

func main() { analytics.StartAnalyticsService() }
