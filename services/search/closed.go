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

import "fmt"

// ClosedKeyPolicy selects what identifies an explored node in the closed set.
type ClosedKeyPolicy int

const (
	// ClosedKeyDefault lets each solver pick its own policy: ClosedByState
	// for GraphSolver and ClosedByNode for BranchAndBound.
	ClosedKeyDefault ClosedKeyPolicy = iota

	// ClosedByState treats a state as explored once any node holding it has
	// been popped.
	ClosedByState

	// ClosedByNode treats only the exact (state, depth, pathCost) triple as
	// explored, so the same state reached at another depth or cost is still
	// enqueued.
	ClosedByNode
)

// String returns the policy name.
func (p ClosedKeyPolicy) String() string {
	switch p {
	case ClosedKeyDefault:
		return "default"
	case ClosedByState:
		return "state"
	case ClosedByNode:
		return "node"
	default:
		return "unknown"
	}
}

// resolve replaces ClosedKeyDefault with fallback.
func (p ClosedKeyPolicy) resolve(fallback ClosedKeyPolicy) ClosedKeyPolicy {
	if p == ClosedKeyDefault {
		return fallback
	}
	return p
}

// closedSet records explored nodes for a single run.
//
// Thread Safety: NOT safe for concurrent use. Owned by one run.
type closedSet[A any, S comparable] struct {
	policy ClosedKeyPolicy
	states map[S]struct{}
	nodes  map[NodeKey[S]]struct{}
}

func newClosedSet[A any, S comparable](policy ClosedKeyPolicy) (*closedSet[A, S], error) {
	switch policy {
	case ClosedByState:
		return &closedSet[A, S]{policy: policy, states: make(map[S]struct{})}, nil
	case ClosedByNode:
		return &closedSet[A, S]{policy: policy, nodes: make(map[NodeKey[S]]struct{})}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownClosedKeyPolicy, int(policy))
	}
}

func (c *closedSet[A, S]) Add(n *Node[A, S]) {
	if c.policy == ClosedByState {
		c.states[n.state] = struct{}{}
		return
	}
	c.nodes[n.Key()] = struct{}{}
}

func (c *closedSet[A, S]) Contains(n *Node[A, S]) bool {
	if c.policy == ClosedByState {
		_, ok := c.states[n.state]
		return ok
	}
	_, ok := c.nodes[n.Key()]
	return ok
}

func (c *closedSet[A, S]) Len() int {
	if c.policy == ClosedByState {
		return len(c.states)
	}
	return len(c.nodes)
}
