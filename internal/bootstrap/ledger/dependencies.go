package ledger

import (
	"log"

	"payments-intelligence-system/internal/config"
	"payments-intelligence-system/internal/kafka"
	"payments-intelligence-system/internal/services"
	"payments-intelligence-system/internal/storage"
	"payments-intelligence-system/internal/storage/sqlite"
)

// Dependencies содержит все зависимости для ledger service
type Dependencies struct {
	StorageConn   *sqlite.SQLiteStorage
	StorageRepo   storage.FactRepository
	KafkaProducer kafka.Producer
	LedgerService services.LedgerService
}

// InitializeDependencies инициализирует все зависимости для ledger service
func InitializeDependencies(cfg *config.Config) (*Dependencies, error) {
	// Инициализация SQLite — единственный писатель леджера
	storageConn, err := sqlite.NewConnection(cfg)
	if err != nil {
		return nil, err
	}

	storageRepo := sqlite.NewRepository(storageConn)

	// Инициализация Kafka Producer
	log.Println("Connecting to Kafka...")
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, err
	}
	log.Println("Kafka producer connected successfully")

	// Создаем сервис леджера
	ledgerService := services.NewLedgerService(storageRepo, producer)

	return &Dependencies{
		StorageConn:   storageConn,
		StorageRepo:   storageRepo,
		KafkaProducer: producer,
		LedgerService: ledgerService,
	}, nil
}

// Close закрывает все соединения
func (d *Dependencies) Close() error {
	if d.KafkaProducer != nil {
		if err := d.KafkaProducer.Close(); err != nil {
			return err
		}
	}
	if d.StorageConn != nil {
		if err := d.StorageConn.Close(); err != nil {
			return err
		}
	}
	return nil
}
