package database

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mailmind/core/internal/database/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Initialize creates and returns a database connection. The default DSN is
// an in-memory SQLite database; a file path may be supplied for durable
// operation.
func Initialize(dbPath string) (*gorm.DB, error) {
	// Ensure the directory exists for file-backed databases
	if !strings.HasPrefix(dbPath, "file::memory:") && dbPath != ":memory:" {
		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, err
	}

	if err := runMigrations(db); err != nil {
		return nil, err
	}

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// runMigrations runs all database migrations
func runMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Email{},
		&models.Prompt{},
		&models.Draft{},
		&models.ChatMessage{},
		&models.Log{},
	)
}
