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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolverKind(t *testing.T) {
	for _, k := range SolverKinds() {
		got, err := ParseSolverKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseSolverKind("  Branch-And-Bound")
	require.NoError(t, err)
	assert.Equal(t, KindBranchAndBound, got)

	_, err = ParseSolverKind("a-star")
	assert.ErrorIs(t, err, ErrUnknownSolver)
}

func TestNewSolver(t *testing.T) {
	names := map[SolverKind]string{
		KindDepthFirst:     "DepthFirstSolver",
		KindBreadthFirst:   "BreadthFirstSolver",
		KindBestFirst:      "BestFirstSolver",
		KindBranchAndBound: "BranchAndBound",
	}
	for kind, name := range names {
		t.Run(string(kind), func(t *testing.T) {
			s, err := NewSolver[string, int](kind, nil)
			require.NoError(t, err)
			assert.Equal(t, name, s.Name())

			other, err := NewSolver[string, int](kind, nil)
			require.NoError(t, err)
			assert.NotSame(t, s, other)

			result, err := s.Solve(demoProblem())
			require.NoError(t, err)
			assert.Equal(t, 3, result.Depth())
		})
	}

	_, err := NewSolver[string, int]("hill-climbing", nil)
	assert.ErrorIs(t, err, ErrUnknownSolver)
}

func TestSolveError(t *testing.T) {
	err := newSolveError("BestFirstSolver", "Expand", ErrInvalidTransition)

	assert.Equal(t, "BestFirstSolver.Expand: "+ErrInvalidTransition.Error(), err.Error())
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}
