package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "modernc.org/sqlite"

	"payments-intelligence-system/internal/config"
)

// SQLiteDB представляет читательский пул соединений с леджером.
// Запись идет через единственное соединение internal/storage/sqlite;
// здесь только чтение: WAL дает читателям снимок без блокировки писателя.
type SQLiteDB struct {
	DB *sql.DB
}

// NewReaderDB открывает читательский пул к файлу леджера
func NewReaderDB(cfg *config.Config) (*SQLiteDB, error) {
	dbPath := cfg.DB.DBPath
	if dbPath == "" {
		dbPath = "./data/operations.db"
	}

	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_foreign_keys=1", dbPath)

	log.Printf("Connecting to SQLite (reader pool): path=%s", dbPath)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Несколько читателей могут работать параллельно
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	log.Println("SQLite reader pool established")
	return &SQLiteDB{DB: db}, nil
}

// Close закрывает пул соединений
func (s *SQLiteDB) Close() error {
	return s.DB.Close()
}
