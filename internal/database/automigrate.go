package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"fair-api/internal/domain"
)

type modelInfo struct {
	model     interface{}
	tableName string
}

// models lists every table in dependency order. Join tables are created
// through the many2many tags on Booth and LearningRecord.
func models() []modelInfo {
	return []modelInfo{
		{&domain.Participant{}, "participants"},
		{&domain.GrowthKeyword{}, "growth_keywords"},
		{&domain.Booth{}, "booths"},
		{&domain.CheckIn{}, "check_ins"},
		{&domain.LearningRecord{}, "learning_records"},
		{&domain.Resonance{}, "resonances"},
		{&domain.CrowdSnapshot{}, "crowd_snapshots"},
	}
}

// AutoMigrate creates or updates every table in one call
func AutoMigrate(db *gorm.DB) error {
	all := models()
	list := make([]interface{}, 0, len(all))
	for _, m := range all {
		list = append(list, m.model)
	}

	if err := db.AutoMigrate(list...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}
	return nil
}

// SafeAutoMigrate migrates table by table, logging whether each table existed
func SafeAutoMigrate(db *gorm.DB, logger *zap.Logger) error {
	migrator := db.Migrator()
	all := models()

	logger.Info("Starting safe auto-migration", zap.Int("total_models", len(all)))

	for _, m := range all {
		tableExists := migrator.HasTable(m.model)

		if err := db.AutoMigrate(m.model); err != nil {
			logger.Error("Failed to migrate table",
				zap.String("table", m.tableName),
				zap.Bool("table_existed", tableExists),
				zap.Error(err),
			)
			return fmt.Errorf("failed to migrate table %s: %w", m.tableName, err)
		}

		logger.Debug("Migrated table",
			zap.String("table", m.tableName),
			zap.Bool("was_existing", tableExists),
		)
	}

	logger.Info("Safe auto-migration completed", zap.Int("tables_migrated", len(all)))
	return nil
}

// SafeAutoMigrateWithRetry runs SafeAutoMigrate up to maxRetries times with linear backoff
func SafeAutoMigrateWithRetry(db *gorm.DB, logger *zap.Logger, maxRetries int) error {
	var err error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = SafeAutoMigrate(db, logger)
		if err == nil {
			return nil
		}

		if attempt < maxRetries {
			backoff := time.Duration(attempt) * time.Second
			logger.Warn("Migration attempt failed, retrying",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Duration("backoff", backoff),
				zap.Error(err),
			)
			time.Sleep(backoff)
		}
	}

	logger.Error("Migration failed after all retry attempts",
		zap.Int("total_attempts", maxRetries),
		zap.Error(err),
	)
	return fmt.Errorf("migration failed after %d attempts: %w", maxRetries, err)
}
