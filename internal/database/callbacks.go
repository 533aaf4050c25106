package database

import (
	"time"

	"gorm.io/gorm"
)

const queryStartKey = "boards:query_start"

// MetricsRecorder receives one observation per executed statement plus
// periodic pool snapshots. internal/metrics satisfies it.
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks hooks the recorder into gorm so every statement
// against the board tables is timed, failures included.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	instrument := func(op string) (before, after func(*gorm.DB)) {
		before = func(db *gorm.DB) {
			db.InstanceSet(queryStartKey, time.Now())
		}
		after = func(db *gorm.DB) {
			start, ok := db.InstanceGet(queryStartKey)
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(op, table, time.Since(start.(time.Time)), db.Error)
		}
		return before, after
	}

	queryBefore, queryAfter := instrument("select")
	db.Callback().Query().Before("gorm:query").Register("metrics:query_before", queryBefore)
	db.Callback().Query().After("gorm:query").Register("metrics:query_after", queryAfter)

	createBefore, createAfter := instrument("insert")
	db.Callback().Create().Before("gorm:create").Register("metrics:create_before", createBefore)
	db.Callback().Create().After("gorm:create").Register("metrics:create_after", createAfter)

	updateBefore, updateAfter := instrument("update")
	db.Callback().Update().Before("gorm:update").Register("metrics:update_before", updateBefore)
	db.Callback().Update().After("gorm:update").Register("metrics:update_after", updateAfter)

	deleteBefore, deleteAfter := instrument("delete")
	db.Callback().Delete().Before("gorm:delete").Register("metrics:delete_before", deleteBefore)
	db.Callback().Delete().After("gorm:delete").Register("metrics:delete_after", deleteAfter)
}

// StartDBStatsCollector snapshots the connection pool every 15 seconds until
// the returned channel is closed.
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
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
