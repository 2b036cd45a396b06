// Package database opens the gorm connection for the configured driver and
// migrates the catalog schema.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"favorites/internal/models"
)

// Open connects to the database named by driver ("sqlite" or "postgres").
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		dialector = sqlite.Open(dsn)
	case "postgres":
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", driver, err)
	}
	return db, nil
}

// OpenInMemory opens a private in-memory SQLite database. Connections that
// share the same name see the same data.
func OpenInMemory(name string) (*gorm.DB, error) {
	return Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
}

// Migrate creates or updates the users, planets and characters tables and
// the favorite_planets/favorite_characters join tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Planet{}, &models.Character{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}
	return nil
}
