// Package metrics exposes SDK counters and latencies through a small Recorder interface.
package metrics

import "time"

// Event names passed to a Recorder.
const (
	EventBuild    = "build"
	EventCheckout = "checkout"
	EventQuery    = "query"
)

// ResultOK labels a successful operation; failures are labelled with their error kind.
const ResultOK = "ok"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}

type NoopRecorder struct{}

func (NoopRecorder) IncCounter(string, map[string]string)                    {}
func (NoopRecorder) ObserveLatency(string, time.Duration, map[string]string) {}
