package metrics

import "time"

// RecordCrowdBroadcast records one broadcaster tick
func (m *Metrics) RecordCrowdBroadcast(duration time.Duration, err error) {
	m.safeExecute("RecordCrowdBroadcast", func() {
		status := "success"
		if err != nil {
			status = "error"
		}
		m.CrowdBroadcastsTotal.WithLabelValues(status).Inc()
		m.CrowdBroadcastDuration.Observe(duration.Seconds())
	})
}

// SetBoothCheckIns publishes the windowed count for one booth
func (m *Metrics) SetBoothCheckIns(boothCode string, count int64) {
	m.safeExecute("SetBoothCheckIns", func() {
		m.CrowdBoothCheckIns.WithLabelValues(boothCode).Set(float64(count))
	})
}

func (m *Metrics) SetWebSocketClients(n int) {
	m.safeExecute("SetWebSocketClients", func() {
		m.WebSocketClients.Set(float64(n))
	})
}

// RecordRelayMessage counts relay traffic; direction is published, received or dropped
func (m *Metrics) RecordRelayMessage(direction string) {
	m.safeExecute("RecordRelayMessage", func() {
		m.RelayMessagesTotal.WithLabelValues(direction).Inc()
	})
}

func (m *Metrics) RecordRateLimited(endpoint string) {
	m.safeExecute("RecordRateLimited", func() {
		m.RateLimitRejectionsTotal.WithLabelValues(NormalizeEndpoint(endpoint)).Inc()
	})
}
