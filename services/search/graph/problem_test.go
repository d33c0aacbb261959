// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianSearch/services/search"
)

func TestNewPathFindProblem(t *testing.T) {
	t.Run("requires frozen graph", func(t *testing.T) {
		_, err := NewPathFindProblem(NewDirectedGraph(2), 0, 1)
		assert.ErrorIs(t, err, ErrGraphNotFrozen)
	})

	t.Run("requires endpoints", func(t *testing.T) {
		g := NewDemoGraph()
		_, err := NewPathFindProblem(g, 0, 8)
		assert.ErrorIs(t, err, ErrNodeNotFound)
		_, err = NewPathFindProblem(g, -1, 7)
		assert.ErrorIs(t, err, ErrNodeNotFound)
	})

	t.Run("nil graph", func(t *testing.T) {
		_, err := NewPathFindProblem(nil, 0, 1)
		assert.ErrorIs(t, err, ErrNilGraph)
	})

	t.Run("goal test", func(t *testing.T) {
		p, err := NewPathFindProblem(NewDemoGraph(), DemoStart, DemoGoal)
		require.NoError(t, err)
		assert.Equal(t, 0, p.InitialState())
		assert.True(t, p.IsGoal(7))
		assert.False(t, p.IsGoal(6))
		assert.Same(t, p.Graph(), p.Graph())
	})
}

func TestPathFindProblem_Expand(t *testing.T) {
	p, err := NewPathFindProblem(NewDemoGraph(), DemoStart, DemoGoal)
	require.NoError(t, err)

	succ, err := p.Expand(0)
	require.NoError(t, err)
	require.Len(t, succ, 3)
	for i, want := range []int{1, 2, 3} {
		assert.Equal(t, want, succ[i].State)
		assert.Equal(t, Edge{From: 0, To: want, Weight: DemoEdges[i].Weight}, succ[i].Action)
	}

	leaf, err := p.Expand(7)
	require.NoError(t, err)
	assert.Empty(t, leaf)

	_, err = p.Expand(42)
	assert.ErrorIs(t, err, search.ErrUnknownState)
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestPathFindProblem_PathCost(t *testing.T) {
	p, err := NewPathFindProblem(NewDemoGraph(), DemoStart, DemoGoal)
	require.NoError(t, err)

	cost, err := p.PathCost(2, 3, Edge{From: 3, To: 5, Weight: 999}, 5)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cost, "weight comes from the graph")

	_, err = p.PathCost(0, 0, Edge{}, 7)
	assert.ErrorIs(t, err, search.ErrInvalidTransition)
}

func TestPathFindProblem_Solvers(t *testing.T) {
	p, err := NewPathFindProblem(NewDemoGraph(), DemoStart, DemoGoal)
	require.NoError(t, err)

	for _, kind := range search.SolverKinds() {
		t.Run(string(kind), func(t *testing.T) {
			s, err := search.NewSolver[Edge, int](kind, nil)
			require.NoError(t, err)

			result, err := s.Solve(p)
			require.NoError(t, err)
			require.False(t, result.IsFailure())
			assert.Equal(t, 3, result.Depth())

			states := result.States()
			assert.Equal(t, DemoStart, states[0])
			assert.Equal(t, DemoGoal, states[len(states)-1])

			sum := 0.0
			for i, e := range result.Actions() {
				assert.Equal(t, states[i], e.From)
				assert.Equal(t, states[i+1], e.To)
				sum += e.Weight
			}
			assert.Equal(t, sum, result.PathCost())

			if kind == search.KindBestFirst || kind == search.KindBranchAndBound {
				assert.Equal(t, 5.0, result.PathCost())
			}
		})
	}
}

func TestPathFindProblem_NoPath(t *testing.T) {
	p, err := NewPathFindProblem(NewDemoGraph(), DemoGoal, DemoStart)
	require.NoError(t, err)

	bnb := search.NewBranchAndBound[Edge, int](nil)
	result, err := bnb.Solve(p)
	require.NoError(t, err)
	assert.True(t, math.IsInf(result.PathCost(), 1))
	assert.Equal(t, 1, bnb.ExploredNodes())
}

func TestPathFindProblem_ConcurrentSolvers(t *testing.T) {
	p, err := NewPathFindProblem(NewDemoGraph(), DemoStart, DemoGoal)
	require.NoError(t, err)

	const workers = 8
	costs := make([]float64, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			result, err := search.NewBranchAndBound[Edge, int](nil).Solve(p)
			if err == nil {
				costs[i] = result.PathCost()
			}
		}(i)
	}
	wg.Wait()

	for _, c := range costs {
		assert.Equal(t, 5.0, c)
	}
}
