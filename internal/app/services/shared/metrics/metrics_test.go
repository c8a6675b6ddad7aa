package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("GET", "/api/patients", "200", 0.02)
	m.ObserveRequest("GET", "/api/patients", "200", 0.03)
	m.ObserveAuthEvent("login", "success")
	m.ObserveTranslation("passthrough", "success", 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[family.GetName()] += metric.GetCounter().GetValue()
			case metric.GetHistogram() != nil:
				values[family.GetName()] += float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}

	assert.Equal(t, float64(2), values["medadmin_http_requests_total"])
	assert.Equal(t, float64(2), values["medadmin_http_request_duration_seconds"])
	assert.Equal(t, float64(1), values["medadmin_auth_events_total"])
	assert.Equal(t, float64(3), values["medadmin_translation_texts_total"])
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.ObserveRequest("GET", "/", "200", 0.1)
	m.ObserveAuthEvent("login", "failure")
	m.ObserveTranslation("azure", "failure", 1)
}
