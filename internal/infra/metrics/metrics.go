// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// CleanupMetrics counts the work done by the periodic credential-store sweep.
type CleanupMetrics struct {
	SweepsTotal        prometheus.Counter
	SweepErrorsTotal   prometheus.Counter
	UsersDeletedTotal  prometheus.Counter
	ResetTokensCleared prometheus.Counter
}

// NewCleanupMetrics registers the sweep collectors on the given registerer.
func NewCleanupMetrics(reg prometheus.Registerer) *CleanupMetrics {
	m := &CleanupMetrics{
		SweepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "homeroom_cleanup_sweeps_total",
			Help: "Number of cleanup sweeps executed.",
		}),
		SweepErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "homeroom_cleanup_sweep_errors_total",
			Help: "Number of cleanup sweeps that failed.",
		}),
		UsersDeletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "homeroom_cleanup_unverified_users_deleted_total",
			Help: "Number of stale unverified user rows deleted by sweeps.",
		}),
		ResetTokensCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "homeroom_cleanup_reset_tokens_cleared_total",
			Help: "Number of expired password reset tokens cleared by sweeps.",
		}),
	}

	reg.MustRegister(m.SweepsTotal, m.SweepErrorsTotal, m.UsersDeletedTotal, m.ResetTokensCleared)

	return m
}

// NewRegistry builds the process-wide Prometheus registry.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	return reg
}

// NewCleanupMetricsFromRegistry adapts NewCleanupMetrics for fx wiring.
func NewCleanupMetricsFromRegistry(reg *prometheus.Registry) *CleanupMetrics {
	return NewCleanupMetrics(reg)
}
