package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveResult(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveResult(60, "INFP", "BD", 0)
	m.ObserveResult(60, "INFP", "BD", 2)
	m.ObserveResult(120, "ESTJ", "AC", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResultsComputed.WithLabelValues("60", "INFP", "BD")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResultsComputed.WithLabelValues("120", "ESTJ", "AC")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AnswersSkipped))
}

func TestObserveResult_BucketsUnknownForms(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	for n := 100000; n < 100050; n++ {
		m.ObserveResult(n, "INFP", "BD", 0)
	}
	m.ObserveResult(7, "INFP", "BD", 0)

	assert.Equal(t, 1, testutil.CollectAndCount(m.ResultsComputed))
	assert.Equal(t, 51.0, testutil.ToFloat64(m.ResultsComputed.WithLabelValues("other", "INFP", "BD")))
}

func TestObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("/api/v1/results", "POST", 200, 0.01)

	n, err := testutil.GatherAndCount(reg, "charmti_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) }, "duplicate registration should panic")
}
