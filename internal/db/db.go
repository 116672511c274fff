package db

import (
	"fmt"
	"log"

	"facilitywatch/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to postgres and migrates the tables the web client owns.
// Reports live behind the Report API; only liked flags are stored here.
func Open(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=facilitywatch port=5432 sslmode=disable TimeZone=Asia/Jakarta"
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Println("Database connection established")

	if err := Migrate(conn); err != nil {
		return nil, err
	}
	log.Println("Database migration completed")

	return conn, nil
}

// Migrate creates or updates the likes table.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(&models.Like{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	return nil
}
