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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(f fringe[string, int]) []int {
	var out []int
	for f.Len() > 0 {
		out = append(out, f.Pop().State())
	}
	return out
}

func TestNewFringe(t *testing.T) {
	root := NewRootNode[string, int](0)
	nodes := []*Node[string, int]{
		newChildNode(root, "", 1, 5),
		newChildNode(root, "", 2, 1),
		newChildNode(root, "", 3, 3),
	}

	tests := []struct {
		strategy Strategy
		want     []int
	}{
		{StrategyStack, []int{3, 2, 1}},
		{StrategyQueue, []int{1, 2, 3}},
		{StrategyPriority, []int{2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.strategy.String(), func(t *testing.T) {
			f, err := newFringe[string, int](tt.strategy)
			require.NoError(t, err)
			for _, n := range nodes {
				f.Push(n)
			}
			assert.Equal(t, 3, f.Len())
			assert.Equal(t, tt.want, drain(f))
			assert.Zero(t, f.Len())
		})
	}

	t.Run("unknown strategy", func(t *testing.T) {
		_, err := newFringe[string, int](Strategy(17))
		assert.ErrorIs(t, err, ErrUnknownStrategy)
	})
}

func TestPriorityFringe_TieBreak(t *testing.T) {
	root := NewRootNode[string, int](0)
	shallow := newChildNode(root, "", 1, 4)
	deep := newChildNode(newChildNode(root, "", 9, 0), "", 2, 4)

	f, err := newFringe[string, int](StrategyPriority)
	require.NoError(t, err)

	f.Push(deep)
	f.Push(newChildNode(root, "", 3, 4))
	f.Push(shallow)

	// depth first, then insertion order among equal (cost, depth)
	assert.Equal(t, []int{3, 1, 2}, drain(f))
}

func TestQueueFringe_Interleaved(t *testing.T) {
	f, err := newFringe[string, int](StrategyQueue)
	require.NoError(t, err)

	var got []int
	for i := 0; i < 50; i++ {
		f.Push(NewRootNode[string, int](2 * i))
		f.Push(NewRootNode[string, int](2*i + 1))
		got = append(got, f.Pop().State())
	}
	got = append(got, drain(f)...)

	require.Len(t, got, 100)
	for i, v := range got {
		assert.Equal(t, i, v)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{StrategyStack, StrategyQueue, StrategyPriority} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStrategy(" Priority ")
	require.NoError(t, err)
	assert.Equal(t, StrategyPriority, got)

	_, err = ParseStrategy("random")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, "unknown", Strategy(-1).String())
}
