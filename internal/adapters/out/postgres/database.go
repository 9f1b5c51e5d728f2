package postgres

import (
	"context"
	"fmt"
	"time"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"driverapp/internal/adapters/out/postgres/accountrepo"
	"driverapp/internal/adapters/out/postgres/orderrepo"
)

// Open connects to postgres and checks the connection. Unique violations are
// translated to gorm.ErrDuplicatedKey.
func Open(ctx context.Context, dsn string, verbose bool) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Error)
	if verbose {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the accounts and orders tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&accountrepo.AccountDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}
