package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/url"

	"payments-intelligence-system/internal/alerts"
	"payments-intelligence-system/internal/analytics"
	"payments-intelligence-system/internal/logger"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/redis"
)

// FactReader определяет интерфейс чтения активного среза леджера.
// Реализуется репозиторием читающего пула database.Repository.
type FactReader interface {
	ListActiveFacts(ctx context.Context) ([]models.TransactionFact, error)
	ListActiveFactsByDayRange(ctx context.Context, from, to string) ([]models.TransactionFact, error)
}

// AnalyticsServiceImpl реализует интерфейс AnalyticsService.
// Проекции пересчитываются от актуального среза леджера на каждый
// промах кэша: производное состояние нигде не персистится.
type AnalyticsServiceImpl struct {
	reader   FactReader
	engine   *analytics.Engine
	detector *alerts.Detector
	cache    redis.ClientInterface // nil при недоступном Redis — работаем без кэша
}

// NewAnalyticsService создает новый сервис аналитики
func NewAnalyticsService(reader FactReader, engine *analytics.Engine, detector *alerts.Detector) AnalyticsService {
	return &AnalyticsServiceImpl{
		reader:   reader,
		engine:   engine,
		detector: detector,
	}
}

// NewAnalyticsServiceWithCache создает сервис аналитики с кэшем проекций
func NewAnalyticsServiceWithCache(reader FactReader, engine *analytics.Engine, detector *alerts.Detector, cache redis.ClientInterface) AnalyticsService {
	return &AnalyticsServiceImpl{
		reader:   reader,
		engine:   engine,
		detector: detector,
		cache:    cache,
	}
}

// mapQueryError переводит обрыв по дедлайну в доменную ошибку таймаута
func mapQueryError(err error, operation string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &models.TimeoutError{Operation: operation}
	}
	return err
}

// Query строит именованную проекцию с учетом фильтров запроса
func (s *AnalyticsServiceImpl) Query(ctx context.Context, projection string, params url.Values) (json.RawMessage, error) {
	filter, err := s.engine.FilterFromParams(projection, params)
	if err != nil {
		return nil, err
	}

	cacheKey := projection + ":" + filter.CacheKey()

	if s.cache != nil {
		cached, err := s.cache.GetProjection(ctx, cacheKey)
		if err != nil {
			log.Printf("Cache lookup failed for %s: %v", cacheKey, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	facts, err := s.loadFacts(ctx, projection, filter)
	if err != nil {
		return nil, mapQueryError(err, projection)
	}

	rows, err := s.engine.Build(projection, facts, filter)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}

	logger.LogEvent(logger.EventProjectionBuilt, "analytics-service", "engine", map[string]interface{}{
		"projection": projection,
		"facts":      len(facts),
	})

	if s.cache != nil {
		if err := s.cache.SaveProjection(ctx, cacheKey, json.RawMessage(data)); err != nil {
			log.Printf("Cache save failed for %s: %v", cacheKey, err)
		}
	}

	return data, nil
}

// loadFacts выбирает срез леджера под проекцию. Замкнутый диапазон дней
// спускается в выборку для всех проекций, кроме временной: ей нужна
// полная история партиции для лагов и скользящих средних, границы по дню
// движок применяет к уже посчитанным строкам.
func (s *AnalyticsServiceImpl) loadFacts(ctx context.Context, projection string, filter *analytics.Filter) ([]models.TransactionFact, error) {
	if projection != analytics.ProjectionTemporalVariation {
		if from, to, ok := filter.DayBounds(); ok {
			return s.reader.ListActiveFactsByDayRange(ctx, from, to)
		}
	}
	return s.reader.ListActiveFacts(ctx)
}

// Alerts возвращает ленту оповещений. Детектор работает поверх полной
// истории временной вариации: лаги и скользящие средние требуют всех
// предыдущих строк партиции, поэтому сужение по дню применяется
// к готовым оповещениям, а не к входным фактам.
func (s *AnalyticsServiceImpl) Alerts(ctx context.Context, day, from, to string) ([]models.Alert, error) {
	facts, err := s.reader.ListActiveFacts(ctx)
	if err != nil {
		return nil, mapQueryError(err, "alerts")
	}

	rows := analytics.BuildTemporalVariation(facts)
	all := s.detector.BuildAlerts(rows)

	result := make([]models.Alert, 0, len(all))
	for _, alert := range all {
		if day != "" && alert.Day != day {
			continue
		}
		if from != "" && alert.Day < from {
			continue
		}
		if to != "" && alert.Day > to {
			continue
		}
		result = append(result, alert)
	}

	logger.LogEvent(logger.EventAlertsEvaluated, "analytics-service", "detector", map[string]interface{}{
		"cells_evaluated": len(rows),
		"alerts_surfaced": len(result),
	})

	return result, nil
}

// OverallKPIs возвращает сводные KPI по всему леджеру
func (s *AnalyticsServiceImpl) OverallKPIs(ctx context.Context) (*models.OverallKPIs, error) {
	facts, err := s.reader.ListActiveFacts(ctx)
	if err != nil {
		return nil, mapQueryError(err, "kpis")
	}

	return analytics.BuildOverallKPIs(facts), nil
}

// InvalidateCache сбрасывает кэш проекций после изменения леджера
func (s *AnalyticsServiceImpl) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}

	if err := s.cache.InvalidateProjections(ctx); err != nil {
		return err
	}

	logger.LogEvent(logger.EventCacheInvalidated, "analytics-service", "redis", nil)
	return nil
}
