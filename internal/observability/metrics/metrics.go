package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat turn pipeline.
type ChatMetrics struct {
	turnsTotal        *prometheus.CounterVec
	guardrailTotal    *prometheus.CounterVec
	upstreamErrors    *prometheus.CounterVec
	completionLatency prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monica",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Total processed chat turns",
		}, []string{"outcome"}),
		guardrailTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monica",
			Subsystem: "chat",
			Name:      "guardrail_triggered_total",
			Help:      "Guardrail triggers by kind",
		}, []string{"kind"}),
		upstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "monica",
			Subsystem: "chat",
			Name:      "upstream_errors_total",
			Help:      "External provider failures",
		}, []string{"provider"}),
		completionLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "monica",
			Subsystem: "chat",
			Name:      "completion_latency_seconds",
			Help:      "Latency of completion provider calls",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.guardrailTotal, m.upstreamErrors, m.completionLatency)
	return m
}

func (m *ChatMetrics) ObserveTurn(outcome string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(outcome).Inc()
}

func (m *ChatMetrics) ObserveGuardrail(kind string) {
	if m == nil {
		return
	}
	m.guardrailTotal.WithLabelValues(kind).Inc()
}

func (m *ChatMetrics) ObserveUpstreamError(provider string) {
	if m == nil {
		return
	}
	m.upstreamErrors.WithLabelValues(provider).Inc()
}

func (m *ChatMetrics) ObserveCompletionLatency(seconds float64) {
	if m == nil {
		return
	}
	m.completionLatency.Observe(seconds)
}
