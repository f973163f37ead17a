package metrics

import (
	"regexp"
	"time"
)

var uuidPattern = regexp.MustCompile(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.safeExecute("RecordHTTPRequest", func() {
		status := categorizeStatus(statusCode)
		endpoint = NormalizeEndpoint(endpoint)
		m.HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
		m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	})
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// NormalizeEndpoint collapses raw IDs so unmatched paths do not explode label cardinality.
// /api/v1/booths/123e4567-e89b-12d3-a456-426614174000 -> /api/v1/booths/{id}
func NormalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return "unmatched"
	}
	return uuidPattern.ReplaceAllString(endpoint, "{id}")
}

// ShouldSkipEndpoint checks if endpoint should be excluded from metrics
func ShouldSkipEndpoint(path string) bool {
	switch path {
	case "/metrics", "/health", "/ready", "/api/v1/ws/crowd-status":
		return true
	}
	return false
}
