// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package search

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for search_runs_total.
const (
	resultFound   = "found"
	resultFailure = "failure"
	resultError   = "error"
)

// Metrics holds the Prometheus collectors updated by solvers.
//
// Description:
//
//	All collectors are labelled by solver name. A nil *Metrics is valid and
//	records nothing, so solvers built without metrics pay no cost.
//
// Thread Safety: Safe for concurrent use.
type Metrics struct {
	// RunsTotal counts completed Solve calls by solver and result
	// (found, failure, error).
	RunsTotal *prometheus.CounterVec

	// ExploredTotal counts nodes popped from the fringe.
	ExploredTotal *prometheus.CounterVec

	// PrunedTotal counts nodes discarded by the branch-and-bound rule.
	PrunedTotal *prometheus.CounterVec

	// BoundUpdatesTotal counts branch-and-bound bound changes.
	BoundUpdatesTotal *prometheus.CounterVec

	// RunDuration records Solve wall time in seconds.
	RunDuration *prometheus.HistogramVec
}

// NewMetrics creates the search collectors and registers them with reg.
//
// Inputs:
//   - reg: Registerer to use. Tests pass a fresh prometheus.NewRegistry().
//
// Outputs:
//   - *Metrics: The registered collectors. Never nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RunsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "search_runs_total",
			Help: "Total solver runs by result",
		}, []string{"solver", "result"}),
		ExploredTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "search_nodes_explored_total",
			Help: "Total nodes popped from the fringe",
		}, []string{"solver"}),
		PrunedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "search_nodes_pruned_total",
			Help: "Total nodes pruned by the branch-and-bound rule",
		}, []string{"solver"}),
		BoundUpdatesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "search_bound_updates_total",
			Help: "Total branch-and-bound bound updates",
		}, []string{"solver"}),
		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "search_run_duration_seconds",
			Help:    "Solver run duration",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1, 10},
		}, []string{"solver"}),
	}
}

var (
	defaultMetricsOnce sync.Once
	defaultMetrics     *Metrics
)

// DefaultMetrics returns collectors registered with the default Prometheus
// registry. Registration happens once.
//
// Thread Safety: Safe for concurrent use (sync.Once).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		defaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

func (m *Metrics) observeRun(solver string, explored, pruned int, found bool, err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	result := resultFailure
	switch {
	case err != nil:
		result = resultError
	case found:
		result = resultFound
	}
	m.RunsTotal.WithLabelValues(solver, result).Inc()
	m.ExploredTotal.WithLabelValues(solver).Add(float64(explored))
	if pruned > 0 {
		m.PrunedTotal.WithLabelValues(solver).Add(float64(pruned))
	}
	m.RunDuration.WithLabelValues(solver).Observe(elapsed.Seconds())
}

func (m *Metrics) boundUpdated(solver string) {
	if m == nil {
		return
	}
	m.BoundUpdatesTotal.WithLabelValues(solver).Inc()
}
