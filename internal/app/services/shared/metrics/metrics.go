package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTPMetrics exposes request counters and latency histograms for the API.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	authEvents      *prometheus.CounterVec
	translations    *prometheus.CounterVec
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medadmin",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "medadmin",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medadmin",
			Subsystem: "auth",
			Name:      "events_total",
			Help:      "Authentication events by type and outcome",
		}, []string{"event", "outcome"}),
		translations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medadmin",
			Subsystem: "translation",
			Name:      "texts_total",
			Help:      "Translated texts by provider and outcome",
		}, []string{"provider", "outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration, m.authEvents, m.translations)
	return m
}

func (m *HTTPMetrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *HTTPMetrics) ObserveAuthEvent(event, outcome string) {
	if m == nil {
		return
	}
	m.authEvents.WithLabelValues(event, outcome).Inc()
}

func (m *HTTPMetrics) ObserveTranslation(provider, outcome string, count int) {
	if m == nil {
		return
	}
	m.translations.WithLabelValues(provider, outcome).Add(float64(count))
}
