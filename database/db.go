package database

import (
	"fmt"
	"log/slog"

	"ratehub/internal/config"
	"ratehub/internal/httpapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres database and migrates the schema. The unique
// indexes declared on the models (users.username, users.email,
// categories.slug, genres.slug, reviews (title_id, author_id)) are the
// enforcement point for the uniqueness rules, so migration must run
// before the service takes traffic.
func Connect(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Genre{},
		&models.Title{},
		&models.Review{},
		&models.Comment{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logger.Info("connected to the database")
	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
