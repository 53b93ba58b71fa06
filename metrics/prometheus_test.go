package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorderCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.IncCounter(EventBuild, map[string]string{"method": "CartaoCredito", "result": ResultOK})
	r.IncCounter(EventBuild, map[string]string{"method": "CartaoCredito", "result": ResultOK})
	r.IncCounter(EventBuild, map[string]string{"method": "CartaoCredito", "result": "InvalidExpiry"})

	ok := testutil.ToFloat64(r.events.WithLabelValues(EventBuild, "CartaoCredito", ResultOK))
	if ok != 2 {
		t.Fatalf("expected 2 successful builds, got %v", ok)
	}
	bad := testutil.ToFloat64(r.events.WithLabelValues(EventBuild, "CartaoCredito", "InvalidExpiry"))
	if bad != 1 {
		t.Fatalf("expected 1 failed build, got %v", bad)
	}
}

func TestPrometheusRecorderObservesLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewPrometheusRecorder(reg)

	r.ObserveLatency(EventCheckout, 150*time.Millisecond, map[string]string{"result": ResultOK})

	if n := testutil.CollectAndCount(r.latency, "moip_latency_seconds"); n != 1 {
		t.Fatalf("expected one latency series, got %d", n)
	}
}

func TestNewPrometheusRecorderUsesSeparateRegistries(t *testing.T) {
	// Two recorders on separate registries must not panic on duplicate registration.
	NewPrometheusRecorder(prometheus.NewRegistry())
	NewPrometheusRecorder(prometheus.NewRegistry())
}
