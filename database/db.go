package database

import (
	"fmt"
	"log/slog" // use slog for structured logging

	"animevote/internal/config"
	"animevote/internal/http-api/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	gormLogLevel := gormlogger.Warn
	if cfg.IsDevelopment() {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Verify the connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db, logger); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Connected to the database successfully")
	return db, nil
}

func runMigrations(db *gorm.DB, logger *slog.Logger) error {
	// Order matters: votes reference users and animes.
	if err := db.AutoMigrate(
		&models.User{},
		&models.Genre{},
		&models.Anime{},
		&models.Vote{},
	); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("Database migrations applied successfully")
	return nil
}
