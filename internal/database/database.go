package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/htx-labs/transcriber-api/internal/models"
	"github.com/htx-labs/transcriber-api/pkg/config"
	"github.com/spf13/viper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// Initialize creates a new database connection at the given path
func Initialize(dbPath string, verbose bool) (*DB, error) {
	// Ensure the database directory exists
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	logLevel := logger.Error
	if verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Surface driver-specific unique constraint failures as
		// gorm.ErrDuplicatedKey so callers can retry identity assignment
		TranslateError: true,
	}

	db, err := gorm.Open(sqlite.Open(dbPath), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &DB{DB: db}, nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}
	return nil
}

// InitializeWithMigrations opens the configured database and migrates the
// transcriptions schema. The database path is read from configuration.
func InitializeWithMigrations() (*DB, error) {
	if !config.IsInitialized() {
		if err := config.Init(); err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	}

	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		return nil, fmt.Errorf("database path is not configured")
	}

	db, err := Initialize(dbPath, viper.GetBool("database.verbose"))
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.Transcript{}); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
