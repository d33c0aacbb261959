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
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_SolverRuns(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	dfs := NewDepthFirstSolver[string, int](&SolverConfig{Metrics: m})
	_, err := dfs.Solve(demoProblem())
	require.NoError(t, err)
	_, err = dfs.Solve(unreachableProblem())
	require.NoError(t, err)
	_, err = dfs.Solve(brokenProblem{demoProblem()})
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("DepthFirstSolver", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("DepthFirstSolver", "failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("DepthFirstSolver", "error")))
	// 4 + 3 + 1 popped nodes
	assert.Equal(t, 8.0, testutil.ToFloat64(m.ExploredTotal.WithLabelValues("DepthFirstSolver")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RunDuration))
}

func TestMetrics_BranchAndBound(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	config := DefaultBranchAndBoundConfig()
	config.Metrics = m
	_, err := NewBranchAndBound[string, int](config).Solve(demoProblem())
	require.NoError(t, err)

	assert.Equal(t, 16.0, testutil.ToFloat64(m.ExploredTotal.WithLabelValues("BranchAndBound")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.PrunedTotal.WithLabelValues("BranchAndBound")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BoundUpdatesTotal.WithLabelValues("BranchAndBound")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues("BranchAndBound", "found")))
	// bootstrap pops are only counted once, under the optimizer
	assert.Equal(t, 1, testutil.CollectAndCount(m.RunsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ExploredTotal))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observeRun("x", 1, 1, true, nil, time.Millisecond)
		m.boundUpdated("x")
	})
}

func TestDefaultMetrics(t *testing.T) {
	assert.Same(t, DefaultMetrics(), DefaultMetrics())
}
