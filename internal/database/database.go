package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/platefeed/backend/config"
	"github.com/platefeed/backend/internal/models"
)

// New opens the PostgreSQL connection and migrates the schema.
func New(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	// Log connection target (without password)
	log.Printf("Connecting to database at %s:%s as user %s", cfg.DBHost, cfg.DBPort, cfg.DBUser)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	log.Printf("Successfully connected to database")
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
	)
}
