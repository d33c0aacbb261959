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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootNode(t *testing.T) {
	root := NewRootNode[string, int](4)

	assert.Equal(t, 4, root.State())
	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 0.0, root.PathCost())
	assert.Nil(t, root.Parent())
	assert.False(t, root.IsFailure())

	_, ok := root.Action()
	assert.False(t, ok, "root has no action")
}

func TestNewFailureNode(t *testing.T) {
	f := NewFailureNode[string, int](0)

	assert.True(t, f.IsFailure())
	assert.True(t, math.IsInf(f.PathCost(), 1))
	assert.Nil(t, f.Parent())
	assert.Equal(t, 0, f.Depth())
}

func TestNode_Expand(t *testing.T) {
	p := demoProblem()

	t.Run("builds one child per successor", func(t *testing.T) {
		root := NewRootNode[string, int](0)
		children, err := root.Expand(p)
		require.NoError(t, err)
		require.Len(t, children, 3)

		got := make([]NodeKey[int], len(children))
		for i, c := range children {
			got[i] = c.Key()
			assert.Same(t, root, c.Parent())
		}
		want := []NodeKey[int]{
			{State: 1, Depth: 1, PathCost: 1},
			{State: 2, Depth: 1, PathCost: 3},
			{State: 3, Depth: 1, PathCost: 2},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("children mismatch (-want +got):\n%s", diff)
		}

		action, ok := children[0].Action()
		assert.True(t, ok)
		assert.Equal(t, "0->1", action)
	})

	t.Run("accumulates cost and depth", func(t *testing.T) {
		n := NewRootNode[string, int](0)
		for _, next := range []int{3, 5, 7} {
			children, err := n.Expand(p)
			require.NoError(t, err)
			for _, c := range children {
				if c.State() == next {
					n = c
				}
			}
		}
		assert.Equal(t, 7, n.State())
		assert.Equal(t, 3, n.Depth())
		assert.Equal(t, 5.0, n.PathCost())
	})

	t.Run("leaf has no children", func(t *testing.T) {
		children, err := NewRootNode[string, int](7).Expand(p)
		require.NoError(t, err)
		assert.Empty(t, children)
	})

	t.Run("unknown state is an error", func(t *testing.T) {
		_, err := NewRootNode[string, int](42).Expand(p)
		assert.ErrorIs(t, err, ErrUnknownState)
	})

	t.Run("invalid transition is an error", func(t *testing.T) {
		_, err := NewRootNode[string, int](0).Expand(brokenProblem{p})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})
}

func TestNode_Path(t *testing.T) {
	root := NewRootNode[string, int](0)
	a := newChildNode(root, "0->1", 1, 1)
	b := newChildNode(a, "1->6", 6, 4)
	c := newChildNode(b, "6->7", 7, 5)

	path := c.Path()
	require.Len(t, path, 4)
	assert.Same(t, root, path[0])
	assert.Same(t, c, path[3])

	assert.Equal(t, []int{0, 1, 6, 7}, c.States())
	assert.Equal(t, []string{"0->1", "1->6", "6->7"}, c.Actions())
	assert.Equal(t, "0 -> 1 -> 6 -> 7", c.PathString())

	assert.Equal(t, []int{0}, root.States())
	assert.Empty(t, root.Actions())
}

func TestNode_SharedAncestors(t *testing.T) {
	root := NewRootNode[string, int](0)
	left := newChildNode(root, "0->1", 1, 1)
	right := newChildNode(root, "0->2", 2, 3)

	assert.Same(t, left.Path()[0], right.Path()[0])
	assert.Equal(t, 1, left.Depth())
	assert.Equal(t, 1, right.Depth())
}

func TestNode_Compare(t *testing.T) {
	root := NewRootNode[string, int](0)
	cheap := newChildNode(root, "", 1, 2)
	deep := newChildNode(newChildNode(root, "", 2, 1), "", 3, 2)
	costly := newChildNode(root, "", 4, 9)

	assert.Negative(t, cheap.Compare(costly))
	assert.Positive(t, costly.Compare(cheap))
	assert.Negative(t, cheap.Compare(deep), "equal cost breaks toward smaller depth")
	assert.Zero(t, cheap.Compare(newChildNode(root, "", 5, 2)))
	assert.Negative(t, costly.Compare(NewFailureNode[string, int](0)))
}

func TestNode_String(t *testing.T) {
	root := NewRootNode[string, int](0)
	n := newChildNode(newChildNode(root, "", 3, 2), "", 5, 4.5)

	assert.Equal(t, "cost:     4.50\tdepth:  2", n.String())
	assert.Equal(t, "cost:     4.50\tdepth:  2\t0 -> 3 -> 5", n.FullPathString())
}
