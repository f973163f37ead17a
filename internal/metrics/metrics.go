package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	namespace = "fair_api"
)

// Metrics holds all application metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Database metrics
	DBConnectionsOpen        prometheus.Gauge
	DBConnectionsInUse       prometheus.Gauge
	DBConnectionsIdle        prometheus.Gauge
	DBConnectionsMax         prometheus.Gauge
	DBConnectionWaitTotal    prometheus.Gauge
	DBConnectionWaitDuration prometheus.Gauge
	DBQueryDuration          *prometheus.HistogramVec
	DBQueryErrors            *prometheus.CounterVec

	// Business metrics
	BoothsActive          prometheus.Gauge
	ParticipantsTotal     prometheus.Gauge
	CheckInsTotal         prometheus.Gauge
	LearningRecordsTotal  prometheus.Gauge
	LoginsTotal           *prometheus.CounterVec
	CheckInCreatedTotal   *prometheus.CounterVec
	RecordCreatedTotal    prometheus.Counter
	ResonanceToggledTotal *prometheus.CounterVec

	// Crowd status and realtime metrics
	CrowdBroadcastsTotal     *prometheus.CounterVec
	CrowdBroadcastDuration   prometheus.Histogram
	CrowdBoothCheckIns       *prometheus.GaugeVec
	WebSocketClients         prometheus.Gauge
	RelayMessagesTotal       *prometheus.CounterVec
	RateLimitRejectionsTotal *prometheus.CounterVec

	logger *zap.Logger
}

// New creates and registers all metrics with the default registry
func New(logger *zap.Logger) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, logger)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer, logger *zap.Logger) *Metrics {
	factory := promauto.With(registerer)

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),

		DBConnectionsOpen: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_open",
			Help:      "Current number of open database connections",
		}),
		DBConnectionsInUse: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_in_use",
			Help:      "Current number of in-use database connections",
		}),
		DBConnectionsIdle: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_idle",
			Help:      "Current number of idle database connections",
		}),
		DBConnectionsMax: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connections_max",
			Help:      "Maximum number of open database connections configured",
		}),
		DBConnectionWaitTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connection_wait_count",
			Help:      "Cumulative number of waits for a database connection as reported by the pool",
		}),
		DBConnectionWaitDuration: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "db_connection_wait_duration_seconds",
			Help:      "Cumulative time spent waiting for database connections as reported by the pool",
		}),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "db_query_duration_seconds",
				Help:      "Database query duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
			},
			[]string{"operation", "table"},
		),
		DBQueryErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "db_query_errors_total",
				Help:      "Total number of database query errors",
			},
			[]string{"operation", "table"},
		),

		BoothsActive: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "booths_active",
			Help:      "Number of active booths",
		}),
		ParticipantsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "participants_total",
			Help:      "Number of registered participants",
		}),
		CheckInsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "check_ins_total",
			Help:      "Number of stored check-ins",
		}),
		LearningRecordsTotal: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "learning_records_total",
			Help:      "Number of stored learning records",
		}),
		LoginsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "qr_logins_total",
				Help:      "Total number of successful QR authentications by role",
			},
			[]string{"role"},
		),
		CheckInCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "check_in_created_total",
				Help:      "Total number of check-in creation events by method",
			},
			[]string{"method"},
		),
		RecordCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "learning_record_created_total",
			Help:      "Total number of learning record creation events",
		}),
		ResonanceToggledTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resonance_toggled_total",
				Help:      "Total number of resonance toggles by type and result",
			},
			[]string{"type", "action"},
		),

		CrowdBroadcastsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "crowd_broadcasts_total",
				Help:      "Total number of crowd status broadcast ticks by outcome",
			},
			[]string{"status"},
		),
		CrowdBroadcastDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "crowd_broadcast_duration_seconds",
			Help:      "Time spent computing and publishing one crowd status broadcast",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		CrowdBoothCheckIns: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "crowd_booth_recent_check_ins",
				Help:      "Check-ins within the crowd window per booth at the last broadcast",
			},
			[]string{"booth_code"},
		),
		WebSocketClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "websocket_clients",
			Help:      "Currently connected crowd status websocket clients",
		}),
		RelayMessagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "relay_messages_total",
				Help:      "Crowd status messages passed through the redis relay by direction",
			},
			[]string{"direction"},
		),
		RateLimitRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_limit_rejections_total",
				Help:      "Requests rejected by the rate limiter by route",
			},
			[]string{"endpoint"},
		),

		logger: logger,
	}
}

// safeExecute wraps metric operations with panic recovery. A nil receiver is a no-op.
func (m *Metrics) safeExecute(operation string, fn func()) {
	if m == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("Panic in metrics operation",
				zap.String("operation", operation),
				zap.Any("panic", r),
			)
		}
	}()
	fn()
}
