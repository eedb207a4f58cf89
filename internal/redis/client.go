package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"payments-intelligence-system/internal/config"
)

// Префикс всех ключей кэша проекций. Инвалидация работает
// сканированием по этому префиксу, поэтому все кэшируемые ответы
// обязаны жить под ним.
const projectionKeyPrefix = "projection:"

type Client struct {
	rdb *redisv9.Client
	ttl time.Duration
}

func NewClient(cfg *config.Config) (*Client, error) {
	rdb := redisv9.NewClient(&redisv9.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{
		rdb: rdb,
		ttl: time.Duration(cfg.Analytics.CacheTTLSeconds) * time.Second,
	}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// SaveProjection сохраняет собранный ответ проекции под ключом кэша.
// TTL берется из конфигурации, по умолчанию 300 секунд.
func (c *Client) SaveProjection(ctx context.Context, cacheKey string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal projection: %w", err)
	}

	return c.rdb.Set(ctx, projectionKeyPrefix+cacheKey, data, c.ttl).Err()
}

// GetProjection получает закэшированный ответ проекции.
// Возвращает nil без ошибки при промахе кэша.
func (c *Client) GetProjection(ctx context.Context, cacheKey string) (json.RawMessage, error) {
	data, err := c.rdb.Get(ctx, projectionKeyPrefix+cacheKey).Bytes()
	if err == redisv9.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get projection: %w", err)
	}

	return json.RawMessage(data), nil
}

// InvalidateProjections удаляет все закэшированные проекции.
// Вызывается при каждом событии изменения леджера: проекции
// зависят от всего набора фактов, выборочная инвалидация невозможна.
func (c *Client) InvalidateProjections(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, projectionKeyPrefix+"*", 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan projection keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete projection keys: %w", err)
	}

	return nil
}
