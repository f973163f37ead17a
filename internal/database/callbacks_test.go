package database

import (
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"fair-api/internal/config"
	"fair-api/internal/domain"
)

type queryRecord struct {
	operation string
	table     string
	err       error
}

type mockMetricsRecorder struct {
	mu      sync.Mutex
	queries []queryRecord
	stats   []sql.DBStats
}

func (m *mockMetricsRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, queryRecord{operation: operation, table: table, err: err})
}

func (m *mockMetricsRecorder) UpdateDBStats(stats interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := stats.(sql.DBStats); ok {
		m.stats = append(m.stats, s)
	}
}

func (m *mockMetricsRecorder) reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = nil
}

func (m *mockMetricsRecorder) statsCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.stats)
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := New(Config{Driver: config.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, AutoMigrate(db))
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestRegisterMetricsCallbacks_CRUD(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	keyword := domain.GrowthKeyword{Name: "기획", SortOrder: 1, IsActive: true}
	require.NoError(t, db.Create(&keyword).Error)

	var loaded domain.GrowthKeyword
	require.NoError(t, db.First(&loaded, "id = ?", keyword.ID).Error)

	require.NoError(t, db.Model(&keyword).Update("sort_order", 2).Error)
	require.NoError(t, db.Delete(&keyword).Error)

	require.Len(t, recorder.queries, 4)
	for i, op := range []string{"insert", "select", "update", "delete"} {
		assert.Equal(t, op, recorder.queries[i].operation)
		assert.Equal(t, "growth_keywords", recorder.queries[i].table)
		assert.NoError(t, recorder.queries[i].err)
	}
}

func TestRegisterMetricsCallbacks_RecordsErrors(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}
	require.NoError(t, RegisterMetricsCallbacks(db, recorder))

	var missing domain.Booth
	err := db.First(&missing, "id = ?", uuid.New()).Error
	require.Error(t, err)

	require.Len(t, recorder.queries, 1)
	assert.Equal(t, "select", recorder.queries[0].operation)
	assert.Equal(t, "booths", recorder.queries[0].table)
	assert.Error(t, recorder.queries[0].err)

	recorder.reset()

	first := domain.GrowthKeyword{Name: "협업", IsActive: true}
	require.NoError(t, db.Create(&first).Error)
	dup := domain.GrowthKeyword{Name: "협업", IsActive: true}
	require.Error(t, db.Create(&dup).Error)

	require.Len(t, recorder.queries, 2)
	assert.Equal(t, "insert", recorder.queries[1].operation)
	assert.Error(t, recorder.queries[1].err)
}

func TestStartDBStatsCollector(t *testing.T) {
	db := setupTestDB(t)
	recorder := &mockMetricsRecorder{}

	done := StartDBStatsCollector(db, recorder, 10*time.Millisecond)
	defer close(done)

	assert.Eventually(t, func() bool {
		return recorder.statsCount() > 0
	}, time.Second, 10*time.Millisecond)
}
