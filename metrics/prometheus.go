package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusRecorder counts events by method and result and observes operation latency.
type PrometheusRecorder struct {
	events  *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// NewPrometheusRecorder registers its collectors in reg. Pass a private registry in tests
// to avoid duplicate registration panics; nil means the default registerer.
func NewPrometheusRecorder(reg prometheus.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		events: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "moip",
				Name:      "events_total",
				Help:      "MoIP SDK events by payment method and result.",
			},
			[]string{"event", "method", "result"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "moip",
				Name:      "latency_seconds",
				Help:      "MoIP gateway call latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation", "result"},
		),
	}
}

func (p *PrometheusRecorder) IncCounter(name string, labels map[string]string) {
	p.events.With(prometheus.Labels{
		"event":  name,
		"method": labels["method"],
		"result": labels["result"],
	}).Inc()
}

func (p *PrometheusRecorder) ObserveLatency(name string, d time.Duration, labels map[string]string) {
	p.latency.With(prometheus.Labels{
		"operation": name,
		"result":    labels["result"],
	}).Observe(d.Seconds())
}
