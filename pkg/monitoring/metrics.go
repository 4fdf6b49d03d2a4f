package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContextsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmesa_contexts_created_total",
		Help: "Number of native OSMesa contexts created.",
	})
	Binds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmesa_binds_total",
		Help: "Number of context-to-buffer bind operations.",
	})
	Unbinds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmesa_unbinds_total",
		Help: "Number of clear-current operations.",
	})
	UnbindFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "osmesa_unbind_failures_total",
		Help: "Clear-current operations rejected by the driver.",
	})
)
