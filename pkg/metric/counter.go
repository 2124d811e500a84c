package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric exported by the shell.
const Namespace = "jot"

// IncrementalCounter counts occurrences, optionally split by label values.
type IncrementalCounter interface {
	Increment(val ...string)
}

// Counter is a prometheus-backed IncrementalCounter.
type Counter struct {
	Name string
	Help string

	vec *prometheus.CounterVec
}

func (c *Counter) Increment(val ...string) {
	c.vec.WithLabelValues(val...).Inc()
}

// NewCounter registers a counter named jot_<subsystem>_<name> with reg.
// A nil registerer yields a counter that is never exported.
func NewCounter(reg prometheus.Registerer, subsystem, name, help string, labels ...string) IncrementalCounter {
	counter := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	}, labels)

	if reg != nil {
		reg.MustRegister(counter)
	}

	return &Counter{
		Name: prometheus.BuildFQName(Namespace, subsystem, name),
		Help: help,
		vec:  counter,
	}
}

// Discard is an IncrementalCounter that records nothing.
var Discard IncrementalCounter = discard{}

type discard struct{}

func (discard) Increment(...string) {}

// HandlerFor returns an HTTP handler serving the metrics gathered by reg.
func HandlerFor(reg prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
