package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func getCounterVecValue(cv *prometheus.CounterVec, labels ...string) float64 {
	c, err := cv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

func getHistogramCount(hv *prometheus.HistogramVec, labels ...string) uint64 {
	o, err := hv.GetMetricWithLabelValues(labels...)
	if err != nil {
		return 0
	}
	var m dto.Metric
	if err := o.(prometheus.Metric).Write(&m); err != nil {
		return 0
	}
	return m.GetHistogram().GetSampleCount()
}

func TestMetrics_SearchesTotal(t *testing.T) {
	for _, outcome := range []string{OutcomeResults, OutcomeEmpty, OutcomeError, OutcomeInvalid, OutcomeStale} {
		t.Run(outcome, func(t *testing.T) {
			before := getCounterVecValue(SearchesTotal, outcome)
			SearchesTotal.WithLabelValues(outcome).Inc()
			after := getCounterVecValue(SearchesTotal, outcome)

			if after != before+1 {
				t.Errorf("Expected %s counter to increment by 1, got diff %.0f", outcome, after-before)
			}
		})
	}
}

func TestMetrics_UpstreamRequestDuration(t *testing.T) {
	before := getHistogramCount(UpstreamRequestDuration, "200")
	UpstreamRequestDuration.WithLabelValues("200").Observe(0.25)
	after := getHistogramCount(UpstreamRequestDuration, "200")

	if after != before+1 {
		t.Errorf("Expected 1 new observation, got %d", after-before)
	}
}

func TestMetrics_NewHTTPServer(t *testing.T) {
	srv := NewHTTPServer("localhost", 9090)

	if srv.Addr != "localhost:9090" {
		t.Errorf("Expected address 'localhost:9090', got '%s'", srv.Addr)
	}

	if srv.Handler == nil {
		t.Error("Expected handler to be set")
	}
}

func TestMetrics_NewHTTPServer_DefaultPort(t *testing.T) {
	srv := NewHTTPServer("0.0.0.0", 0)

	if srv.Addr != "0.0.0.0:9090" {
		t.Errorf("Expected address '0.0.0.0:9090', got '%s'", srv.Addr)
	}
}
