package database

import (
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "metrics:query_start_time"

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

func startTimer(db *gorm.DB) {
	db.InstanceSet(queryStartKey, time.Now())
}

func stopTimer(recorder MetricsRecorder, operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		startTime, ok := db.InstanceGet(queryStartKey)
		if !ok {
			return
		}
		table := db.Statement.Table
		if table == "" {
			table = "unknown"
		}
		recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
	}
}

// RegisterMetricsCallbacks times every query, create, update and delete issued through db
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) error {
	cb := db.Callback()

	steps := []struct {
		register func(before, after func(*gorm.DB)) error
		op       string
	}{
		{func(before, after func(*gorm.DB)) error {
			if err := cb.Query().Before("gorm:query").Register("metrics:query_before", before); err != nil {
				return err
			}
			return cb.Query().After("gorm:query").Register("metrics:query_after", after)
		}, "select"},
		{func(before, after func(*gorm.DB)) error {
			if err := cb.Create().Before("gorm:create").Register("metrics:create_before", before); err != nil {
				return err
			}
			return cb.Create().After("gorm:create").Register("metrics:create_after", after)
		}, "insert"},
		{func(before, after func(*gorm.DB)) error {
			if err := cb.Update().Before("gorm:update").Register("metrics:update_before", before); err != nil {
				return err
			}
			return cb.Update().After("gorm:update").Register("metrics:update_after", after)
		}, "update"},
		{func(before, after func(*gorm.DB)) error {
			if err := cb.Delete().Before("gorm:delete").Register("metrics:delete_before", before); err != nil {
				return err
			}
			return cb.Delete().After("gorm:delete").Register("metrics:delete_after", after)
		}, "delete"},
	}

	for _, s := range steps {
		if err := s.register(startTimer, stopTimer(recorder, s.op)); err != nil {
			return err
		}
	}
	return nil
}

// StartDBStatsCollector pushes sql.DBStats to recorder every interval until done is closed
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder, interval time.Duration) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
