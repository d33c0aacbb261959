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
	"cmp"
	"fmt"
	"math"
	"strings"
)

// -----------------------------------------------------------------------------
// Node
// -----------------------------------------------------------------------------

// Node is a node in the search tree expanded from a problem.
//
// Description:
//
//	A node holds a state, the action that produced it, a pointer to its
//	parent, its depth and the cumulative cost of the path from the root.
//	Nodes only point upwards: many children may share one parent, and the
//	whole path can be rebuilt by walking parent pointers.
//
// Invariants:
//   - depth == parent.depth+1 when parent != nil, otherwise depth == 0
//   - pathCost comes from Problem.PathCost (0 for a root, +Inf for the
//     failure sentinel)
//
// Thread Safety: Immutable after creation, safe for concurrent reads.
type Node[A any, S comparable] struct {
	state     S
	parent    *Node[A, S]
	action    A
	hasAction bool
	depth     int
	pathCost  float64
}

// NodeKey is the composite identity of a node: state, depth and path cost.
//
// Two nodes reaching the same state along different routes have different
// keys unless both depth and cost match.
type NodeKey[S comparable] struct {
	State    S
	Depth    int
	PathCost float64
}

// NewRootNode returns the root of a search tree: depth 0, cost 0, no parent
// and no action.
func NewRootNode[A any, S comparable](state S) *Node[A, S] {
	return &Node[A, S]{state: state}
}

// NewFailureNode returns the failure sentinel: a parentless node with
// infinite cost. Solvers return it when no path to the goal exists.
func NewFailureNode[A any, S comparable](state S) *Node[A, S] {
	return &Node[A, S]{state: state, pathCost: math.Inf(1)}
}

func newChildNode[A any, S comparable](parent *Node[A, S], action A, state S, pathCost float64) *Node[A, S] {
	return &Node[A, S]{
		state:     state,
		parent:    parent,
		action:    action,
		hasAction: true,
		depth:     parent.depth + 1,
		pathCost:  pathCost,
	}
}

// State returns the state held in the node.
func (n *Node[A, S]) State() S {
	return n.state
}

// Action returns the action that produced this node. The boolean is false
// for roots and the failure sentinel, which have no action.
func (n *Node[A, S]) Action() (A, bool) {
	return n.action, n.hasAction
}

// Parent returns the parent node, or nil for a root.
func (n *Node[A, S]) Parent() *Node[A, S] {
	return n.parent
}

// Depth returns the number of transitions from the root.
func (n *Node[A, S]) Depth() int {
	return n.depth
}

// PathCost returns the total cost of the path from the root to this node.
func (n *Node[A, S]) PathCost() float64 {
	return n.pathCost
}

// IsFailure reports whether n is a failure sentinel (infinite cost).
func (n *Node[A, S]) IsFailure() bool {
	return math.IsInf(n.pathCost, 1)
}

// Key returns the composite (state, depth, pathCost) identity of the node.
func (n *Node[A, S]) Key() NodeKey[S] {
	return NodeKey[S]{State: n.state, Depth: n.depth, PathCost: n.pathCost}
}

// Compare orders nodes by path cost, then by depth, both ascending.
//
// Outputs:
//   - int: negative if n sorts before other, positive if after, 0 if equal.
func (n *Node[A, S]) Compare(other *Node[A, S]) int {
	if c := cmp.Compare(n.pathCost, other.pathCost); c != 0 {
		return c
	}
	return cmp.Compare(n.depth, other.depth)
}

// Expand generates the children of this node.
//
// Description:
//
//	Calls problem.Expand on the node's state and builds one child per
//	successor, with this node as parent and the cost computed by
//	problem.PathCost.
//
// Inputs:
//   - problem: The problem that defines successors and costs.
//
// Outputs:
//   - []*Node[A, S]: The children, in the order the problem produced them.
//   - error: Non-nil if the problem rejected the state or a transition.
func (n *Node[A, S]) Expand(problem Problem[A, S]) ([]*Node[A, S], error) {
	successors, err := problem.Expand(n.state)
	if err != nil {
		return nil, fmt.Errorf("expand state %v: %w", n.state, err)
	}

	children := make([]*Node[A, S], 0, len(successors))
	for _, s := range successors {
		cost, err := problem.PathCost(n.pathCost, n.state, s.Action, s.State)
		if err != nil {
			return nil, fmt.Errorf("path cost %v -> %v: %w", n.state, s.State, err)
		}
		children = append(children, newChildNode(n, s.Action, s.State, cost))
	}
	return children, nil
}

// Path returns the nodes from the root to this node, root first.
//
// Complexity: O(depth) time and space.
func (n *Node[A, S]) Path() []*Node[A, S] {
	path := make([]*Node[A, S], n.depth+1)
	for i, cur := n.depth, n; cur != nil; i, cur = i-1, cur.parent {
		path[i] = cur
	}
	return path
}

// States returns the states along the path from the root to this node.
func (n *Node[A, S]) States() []S {
	path := n.Path()
	states := make([]S, len(path))
	for i, p := range path {
		states[i] = p.state
	}
	return states
}

// Actions returns the actions along the path from the root to this node.
// The root contributes no action, so the result has Depth() elements.
func (n *Node[A, S]) Actions() []A {
	path := n.Path()
	actions := make([]A, 0, n.depth)
	for _, p := range path[1:] {
		actions = append(actions, p.action)
	}
	return actions
}

// PathString renders the states along the path, e.g. "0 -> 3 -> 5 -> 7".
func (n *Node[A, S]) PathString() string {
	var b strings.Builder
	for i, p := range n.Path() {
		if i > 0 {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, p.state)
	}
	return b.String()
}

// String renders the cost and depth of the node.
func (n *Node[A, S]) String() string {
	return fmt.Sprintf("cost: % 8.2f\tdepth: % 2d", n.pathCost, n.depth)
}

// FullPathString renders the cost, depth and path of the node.
func (n *Node[A, S]) FullPathString() string {
	return n.String() + "\t" + n.PathString()
}
