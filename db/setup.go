package db

import (
	"fmt"
	"time"

	"github.com/monocle-dev/rentals/internal/logging"
	"github.com/monocle-dev/rentals/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Options struct {
	MaxOpenConns int
	MaxIdleConns int
	Logger       logging.Logger
}

func ConnectDatabase(dsn string, opts Options) (*gorm.DB, error) {
	return Open(postgres.Open(dsn), opts)
}

// Open configures gorm on top of an existing dialector. Every store call is a
// single statement, so the implicit write transaction is skipped. Driver
// errors are translated so key violations surface as gorm sentinels.
func Open(dialector gorm.Dialector, opts Options) (*gorm.DB, error) {
	config := &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
	}

	if opts.Logger != nil {
		config.Logger = NewGormLogger(opts.Logger, 200*time.Millisecond)
	}

	db, err := gorm.Open(dialector, config)

	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()

	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}

func MigrateDatabase(db *gorm.DB) error {
	models := []interface{}{
		&models.User{},
		&models.Product{},
	}

	migrator := db.Migrator()

	for _, model := range models {
		if !migrator.HasTable(model) {
			if err := db.AutoMigrate(model); err != nil {
				return err
			}
		}
	}

	return nil
}
