package metrics

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func getTestMetrics() (*Metrics, *prometheus.Registry) {
	registry := prometheus.NewRegistry()
	return NewWithRegistry(registry, zap.NewNop()), registry
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, counter.Write(metric))
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	metric := &dto.Metric{}
	require.NoError(t, gauge.Write(metric))
	return metric.Gauge.GetValue()
}

func TestMetricNames_SnakeCaseWithHelp(t *testing.T) {
	m, registry := getTestMetrics()

	// Vec metrics only appear once a label set is touched
	m.RecordHTTPRequest("GET", "/api/v1/booths", 200, time.Millisecond)
	m.RecordDBQuery("select", "booths", time.Millisecond, errors.New("boom"))
	m.RecordLogin("PARTICIPANT")
	m.IncrementCheckInCreated("QR")
	m.RecordResonanceToggle("SUPPORT", true)
	m.RecordCrowdBroadcast(time.Millisecond, nil)
	m.SetBoothCheckIns("A001", 3)
	m.RecordRelayMessage("published")
	m.RecordRateLimited("/api/v1/auth/qr")

	families, err := registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)

	snake := regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	for _, mf := range families {
		assert.Regexp(t, snake, mf.GetName())
		assert.Contains(t, mf.GetName(), namespace+"_")
		assert.NotEmpty(t, mf.GetHelp(), "metric %s needs help text", mf.GetName())
	}
}

func TestRecordHTTPRequest_CategorizesAndNormalizes(t *testing.T) {
	m, _ := getTestMetrics()

	m.RecordHTTPRequest("GET", "/api/v1/booths/123e4567-e89b-12d3-a456-426614174000", 404, 10*time.Millisecond)
	m.RecordHTTPRequest("POST", "/api/v1/checkins/qr", 201, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/booths/{id}", "4xx")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("POST", "/api/v1/checkins/qr", "2xx")))
}

func TestCategorizeStatus(t *testing.T) {
	assert.Equal(t, "2xx", categorizeStatus(204))
	assert.Equal(t, "3xx", categorizeStatus(302))
	assert.Equal(t, "4xx", categorizeStatus(429))
	assert.Equal(t, "5xx", categorizeStatus(503))
	assert.Equal(t, "unknown", categorizeStatus(101))
}

func TestShouldSkipEndpoint(t *testing.T) {
	assert.True(t, ShouldSkipEndpoint("/metrics"))
	assert.True(t, ShouldSkipEndpoint("/health"))
	assert.True(t, ShouldSkipEndpoint("/api/v1/ws/crowd-status"))
	assert.False(t, ShouldSkipEndpoint("/api/v1/booths"))
}

func TestUpdateDBStats(t *testing.T) {
	m, _ := getTestMetrics()

	m.UpdateDBStats(sql.DBStats{MaxOpenConnections: 25, OpenConnections: 4, InUse: 1, Idle: 3, WaitCount: 7})
	m.UpdateDBStats(sql.DBStats{MaxOpenConnections: 25, OpenConnections: 4, InUse: 1, Idle: 3, WaitCount: 7})
	m.UpdateDBStats("not stats")

	assert.Equal(t, 4.0, getGaugeValue(t, m.DBConnectionsOpen))
	assert.Equal(t, 25.0, getGaugeValue(t, m.DBConnectionsMax))
	assert.Equal(t, 7.0, getGaugeValue(t, m.DBConnectionWaitTotal), "cumulative pool counters must not double count")
}

func TestRecordDBQuery_CountsErrors(t *testing.T) {
	m, _ := getTestMetrics()

	m.RecordDBQuery("SELECT", "check_ins", time.Millisecond, nil)
	m.RecordDBQuery("select", "check_ins", time.Millisecond, errors.New("timeout"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select", "check_ins")))
}

func TestBusinessCounters(t *testing.T) {
	m, _ := getTestMetrics()

	m.IncrementCheckInCreated("QR")
	m.IncrementCheckInCreated("QR")
	m.IncrementCheckInCreated("MANUAL")
	m.IncrementRecordCreated()
	m.RecordResonanceToggle("SUPPORT", true)
	m.RecordResonanceToggle("SUPPORT", false)
	m.SetTotals(3, 40, 120, 15)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CheckInCreatedTotal.WithLabelValues("QR")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckInCreatedTotal.WithLabelValues("MANUAL")))
	assert.Equal(t, 1.0, getCounterValue(t, m.RecordCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResonanceToggledTotal.WithLabelValues("SUPPORT", "added")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResonanceToggledTotal.WithLabelValues("SUPPORT", "removed")))
	assert.Equal(t, 3.0, getGaugeValue(t, m.BoothsActive))
	assert.Equal(t, 120.0, getGaugeValue(t, m.CheckInsTotal))
}

func TestRealtimeMetrics(t *testing.T) {
	m, _ := getTestMetrics()

	m.RecordCrowdBroadcast(5*time.Millisecond, nil)
	m.RecordCrowdBroadcast(5*time.Millisecond, errors.New("db down"))
	m.SetBoothCheckIns("A001", 12)
	m.SetWebSocketClients(4)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CrowdBroadcastsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CrowdBroadcastsTotal.WithLabelValues("error")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.CrowdBoothCheckIns.WithLabelValues("A001")))
	assert.Equal(t, 4.0, getGaugeValue(t, m.WebSocketClients))
}

func TestNilMetrics_NoPanic(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/", 200, time.Second)
		m.RecordDBQuery("select", "booths", time.Millisecond, nil)
		m.UpdateDBStats(sql.DBStats{})
		m.RecordLogin("ADMIN")
		m.IncrementCheckInCreated("QR")
		m.RecordCrowdBroadcast(time.Second, nil)
		m.SetWebSocketClients(1)
	})
}

func TestSafeExecute_RecoversPanics(t *testing.T) {
	m, _ := getTestMetrics()
	assert.NotPanics(t, func() {
		m.safeExecute("boom", func() { panic("label cardinality mismatch") })
	})
}
