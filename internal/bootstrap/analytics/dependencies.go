package analytics

import (
	"log"

	"payments-intelligence-system/internal/alerts"
	engine "payments-intelligence-system/internal/analytics"
	"payments-intelligence-system/internal/config"
	"payments-intelligence-system/internal/database"
	"payments-intelligence-system/internal/kafka"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/redis"
	"payments-intelligence-system/internal/services"
)

// Dependencies содержит все зависимости для analytics service
type Dependencies struct {
	ReaderDB         *database.SQLiteDB
	ReaderRepo       *database.Repository
	RedisClient      *redis.Client
	Engine           *engine.Engine
	Detector         *alerts.Detector
	AnalyticsService services.AnalyticsService
	KafkaConsumer    kafka.Consumer
}

// InitializeDependencies инициализирует все зависимости для analytics service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация читающего пула SQLite: схему владеет сервис леджера
	readerDB, err := database.NewReaderDB(cfg)
	if err != nil {
		return nil, err
	}

	readerRepo := database.NewRepository(readerDB)

	// Инициализация Redis. Недоступный Redis не валит сервис:
	// проекции просто пересчитываются на каждый запрос.
	log.Println("Connecting to Redis...")
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis (projection cache disabled): %v", err)
		redisClient = nil
	} else {
		log.Println("Redis connection established")
	}

	projectionEngine := engine.NewEngine(cfg.Analytics.StrictFilters)
	detector := alerts.NewDetector()

	var analyticsService services.AnalyticsService
	if redisClient != nil {
		analyticsService = services.NewAnalyticsServiceWithCache(readerRepo, projectionEngine, detector, redisClient)
	} else {
		analyticsService = services.NewAnalyticsService(readerRepo, projectionEngine, detector)
	}

	// Настройка обработчика Kafka событий
	handler := func(event *models.KafkaFactEvent) error {
		return processFactEvent(event, analyticsService)
	}

	// Инициализация Kafka Consumer
	log.Println("Connecting to Kafka...")
	consumer, err := kafka.NewConsumer(cfg, handler)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka consumer connected successfully")

	return &Dependencies{
		ReaderDB:         readerDB,
		ReaderRepo:       readerRepo,
		RedisClient:      redisClient,
		Engine:           projectionEngine,
		Detector:         detector,
		AnalyticsService: analyticsService,
		KafkaConsumer:    consumer,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaConsumer != nil {
		if err := d.KafkaConsumer.Close(); err != nil {
			return err
		}
	}
	if d.RedisClient != nil {
		if err := d.RedisClient.Close(); err != nil {
			return err
		}
	}
	if d.ReaderDB != nil {
		if err := d.ReaderDB.Close(); err != nil {
			return err
		}
	}
	return nil
}
