// Package db provides the PostgreSQL connection used by every store.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a GORM connection to the given PostgreSQL URL.
func Connect(dbURL string) (*gorm.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	logMode := logger.Silent
	if os.Getenv("LOG_LEVEL") == "debug" {
		logMode = logger.Info
	}

	conn, err := gorm.Open(
		postgres.New(postgres.Config{
			DSN:                  dbURL,
			PreferSimpleProtocol: true, // disables implicit prepared statement usage
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return conn, nil
}

// WaitForDatabase pings the database until it answers, retrying a bounded
// number of times with a fixed backoff. The process fails to start if the
// database never becomes ready.
func WaitForDatabase(conn *gorm.DB, maxRetries int, backoff time.Duration) error {
	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	for attempt := 1; ; attempt++ {
		err = sqlDB.Ping()
		if err == nil {
			if attempt > 1 {
				log.Printf("Database ready after %d attempts", attempt)
			}
			return nil
		}
		if attempt >= maxRetries {
			return fmt.Errorf("database not ready after %d attempts: %w", attempt, err)
		}
		log.Printf("Database not ready (attempt %d/%d): %v", attempt, maxRetries, err)
		time.Sleep(backoff)
	}
}
