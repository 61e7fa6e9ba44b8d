package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterCounter("requests_total", "Total requests")
	m.RegisterCounterVec("responses_total", "Responses by status", []string{"status"})

	m.IncCounter("requests_total")
	m.IncCounter("requests_total")
	m.IncCounter("unknown_total")
	m.IncCounterVec("responses_total", "200")
	m.IncCounterVec("responses_total", "400")
	m.IncCounterVec("responses_total", "400")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.counters["requests_total"]))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.counterVecs["responses_total"].WithLabelValues("200")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.counterVecs["responses_total"].WithLabelValues("400")))
}

func TestMetrics_GaugeAndHistogram(t *testing.T) {
	m := NewMetrics("test_service").(*Metrics)
	m.RegisterGauge("in_flight", "In flight requests")
	m.RegisterHistogram("duration_seconds", "Duration", []float64{0.1, 1})

	m.IncGauge("in_flight")
	m.IncGauge("in_flight")
	m.DecGauge("in_flight")
	m.ObserveHistogram("duration_seconds", 0.05)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.gauges["in_flight"]))

	families, err := m.GetRegistry().Gather()
	require.NoError(t, err)

	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["test_service_in_flight"])
	assert.True(t, names["test_service_duration_seconds"])
}
