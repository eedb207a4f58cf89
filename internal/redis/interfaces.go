package redis

import (
	"context"
	"encoding/json"
)

// ClientInterface определяет интерфейс кэша проекций
// Это позволяет легко создавать моки для тестирования
// Реализуется типом Client
type ClientInterface interface {
	// SaveProjection сохраняет собранный ответ проекции
	SaveProjection(ctx context.Context, cacheKey string, payload interface{}) error

	// GetProjection получает закэшированный ответ, nil при промахе
	GetProjection(ctx context.Context, cacheKey string) (json.RawMessage, error)

	// InvalidateProjections удаляет все закэшированные проекции
	InvalidateProjections(ctx context.Context) error

	// Close закрывает соединение с Redis
	Close() error
}

// Убеждаемся, что Client реализует ClientInterface
var _ ClientInterface = (*Client)(nil)
