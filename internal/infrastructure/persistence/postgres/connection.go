// Package postgres implements the domain repositories on PostgreSQL via GORM.
package postgres

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/domain/models"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// Connect opens the database, configures the pool and runs migrations.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, errors.ErrDatabase.WithMessage("failed to open database").WithError(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.ErrDatabase.WithError(err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, errors.ErrDatabase.WithMessage("database ping failed").WithError(err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info(ctx, "database connected",
		logger.String("host", cfg.Host),
		logger.String("database", cfg.Name))

	return db, nil
}

// Migrate applies the schema for all persisted models.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Property{},
		&models.Space{},
		&models.Occupier{},
		&models.Vendor{},
		&models.Lease{},
		&models.Document{},
		&models.DocumentChunk{},
		&models.WorkOrder{},
	)
	if err != nil {
		return errors.ErrDatabase.WithMessage("migration failed").WithError(err)
	}
	return nil
}
