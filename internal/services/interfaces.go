package services

import (
	"context"
	"encoding/json"
	"net/url"

	"payments-intelligence-system/internal/models"
)

// LedgerService определяет интерфейс границы записи леджера
type LedgerService interface {
	// IngestFact валидирует и загружает факт в леджер
	IngestFact(req *models.FactRequest) (*models.FactResponse, error)

	// DeleteFact логически удаляет факт. Повторное удаление идемпотентно.
	DeleteFact(id int64) error

	// GetFact возвращает факт по идентификатору, включая удаленные
	GetFact(id int64) (*models.TransactionFact, error)

	// ListFacts возвращает последние факты леджера
	ListFacts(limit int, includeDeleted bool) ([]*models.TransactionFact, error)
}

// AnalyticsService определяет интерфейс фасада запросов к проекциям
type AnalyticsService interface {
	// Query строит именованную проекцию с учетом фильтров запроса
	Query(ctx context.Context, projection string, params url.Values) (json.RawMessage, error)

	// Alerts возвращает ленту оповещений, опционально суженную по дню
	Alerts(ctx context.Context, day, from, to string) ([]models.Alert, error)

	// OverallKPIs возвращает сводные KPI по всему леджеру
	OverallKPIs(ctx context.Context) (*models.OverallKPIs, error)

	// InvalidateCache сбрасывает кэш проекций после изменения леджера
	InvalidateCache(ctx context.Context) error
}
