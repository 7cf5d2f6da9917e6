package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MikeSquared-Agency/CharMTI/internal/bank"
)

// Metrics groups the service's collectors. Construct with New so tests can
// register against a private registry.
type Metrics struct {
	ResultsComputed *prometheus.CounterVec
	AnswersSkipped  prometheus.Counter
	RequestDuration *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ResultsComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "charmti",
			Name:      "results_computed_total",
			Help:      "Results computed, by form length and resulting type.",
		}, []string{"form", "mbti_type", "charm_type"}),
		AnswersSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "charmti",
			Name:      "answers_skipped_total",
			Help:      "Answers that had no matching statement and were ignored.",
		}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "charmti",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
	reg.MustRegister(m.ResultsComputed, m.AnswersSkipped, m.RequestDuration)
	return m
}

// ObserveResult records one computed result. The form label is bucketed by
// bank.FormLabel.
func (m *Metrics) ObserveResult(questionCount int, mbti, charm string, skipped int) {
	m.ResultsComputed.WithLabelValues(bank.FormLabel(questionCount), mbti, charm).Inc()
	if skipped > 0 {
		m.AnswersSkipped.Add(float64(skipped))
	}
}

// ObserveRequest records one HTTP request's latency.
func (m *Metrics) ObserveRequest(route, method string, status int, seconds float64) {
	m.RequestDuration.WithLabelValues(route, method, strconv.Itoa(status)).Observe(seconds)
}
