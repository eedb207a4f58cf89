package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DB        DBConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Server    ServerConfig
	Analytics AnalyticsConfig
}

type DBConfig struct {
	DBPath string // Путь к файлу SQLite
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type KafkaConfig struct {
	Brokers         []string
	FactTopic       string
	ConsumerGroupID string
}

type ServerConfig struct {
	LedgerPort    int
	AnalyticsPort int
}

type AnalyticsConfig struct {
	CacheTTLSeconds     int  // TTL кэша проекций в Redis
	QueryTimeoutSeconds int  // Таймаут на построение проекции
	StrictFilters       bool // Валидация значений фильтров по известным доменам
}

func Load() *Config {
	// Загружаем .env файл, если он существует
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		DB: DBConfig{
			DBPath: getEnv("DB_PATH", "./data/operations.db"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Kafka: KafkaConfig{
			Brokers:         []string{getEnv("KAFKA_BROKERS", "localhost:9092")},
			FactTopic:       getEnv("KAFKA_FACT_TOPIC", "ledger.facts.loaded"),
			ConsumerGroupID: getEnv("KAFKA_CONSUMER_GROUP", "analytics-group"),
		},
		Server: ServerConfig{
			LedgerPort:    getEnvAsInt("LEDGER_SERVICE_PORT", 8080),
			AnalyticsPort: getEnvAsInt("ANALYTICS_SERVICE_PORT", 8081),
		},
		Analytics: AnalyticsConfig{
			CacheTTLSeconds:     getEnvAsInt("ANALYTICS_CACHE_TTL", 300),
			QueryTimeoutSeconds: getEnvAsInt("ANALYTICS_QUERY_TIMEOUT", 30),
			StrictFilters:       getEnvAsBool("ANALYTICS_STRICT_FILTERS", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
