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
	"container/heap"
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Strategy
// -----------------------------------------------------------------------------

// Strategy selects the order in which the fringe hands out nodes.
//
// The strategy is fixed when a solver is constructed and mapped to a
// concrete container once; the search loop never inspects the container.
type Strategy int

const (
	// StrategyStack pops the most recently added node first (depth-first).
	StrategyStack Strategy = iota

	// StrategyQueue pops the earliest added node first (breadth-first).
	StrategyQueue

	// StrategyPriority pops the node with the smallest (pathCost, depth)
	// first (best-first / uniform-cost).
	StrategyPriority
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyStack:
		return "stack"
	case StrategyQueue:
		return "queue"
	case StrategyPriority:
		return "priority"
	default:
		return "unknown"
	}
}

// ParseStrategy converts a strategy name to a Strategy.
//
// Accepts "stack", "queue" and "priority" (case-insensitive).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "stack":
		return StrategyStack, nil
	case "queue":
		return StrategyQueue, nil
	case "priority":
		return StrategyPriority, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// -----------------------------------------------------------------------------
// Fringe containers
// -----------------------------------------------------------------------------

// fringe is the open list of a single search run.
//
// Thread Safety: NOT safe for concurrent use. Owned by one run.
type fringe[A any, S comparable] interface {
	Push(n *Node[A, S])
	Pop() *Node[A, S]
	Len() int
}

// newFringe returns an empty container for the strategy.
func newFringe[A any, S comparable](strategy Strategy) (fringe[A, S], error) {
	switch strategy {
	case StrategyStack:
		return &stackFringe[A, S]{}, nil
	case StrategyQueue:
		return &queueFringe[A, S]{}, nil
	case StrategyPriority:
		return &priorityFringe[A, S]{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
}

// stackFringe is a LIFO fringe.
type stackFringe[A any, S comparable] struct {
	items []*Node[A, S]
}

func (f *stackFringe[A, S]) Push(n *Node[A, S]) { f.items = append(f.items, n) }

func (f *stackFringe[A, S]) Pop() *Node[A, S] {
	last := len(f.items) - 1
	n := f.items[last]
	f.items[last] = nil
	f.items = f.items[:last]
	return n
}

func (f *stackFringe[A, S]) Len() int { return len(f.items) }

// queueFringe is a FIFO fringe. head indexes the next node to pop; the
// consumed prefix is dropped once it outgrows the live part.
type queueFringe[A any, S comparable] struct {
	items []*Node[A, S]
	head  int
}

func (f *queueFringe[A, S]) Push(n *Node[A, S]) { f.items = append(f.items, n) }

func (f *queueFringe[A, S]) Pop() *Node[A, S] {
	n := f.items[f.head]
	f.items[f.head] = nil
	f.head++
	if f.head > len(f.items)/2 {
		f.items = append(f.items[:0], f.items[f.head:]...)
		f.head = 0
	}
	return n
}

func (f *queueFringe[A, S]) Len() int { return len(f.items) - f.head }

// priorityFringe pops nodes in (pathCost, depth) order. Nodes that compare
// equal come out in insertion order, which keeps runs reproducible.
type priorityFringe[A any, S comparable] struct {
	h   nodeHeap[A, S]
	seq uint64
}

func (f *priorityFringe[A, S]) Push(n *Node[A, S]) {
	heap.Push(&f.h, heapEntry[A, S]{node: n, seq: f.seq})
	f.seq++
}

func (f *priorityFringe[A, S]) Pop() *Node[A, S] {
	return heap.Pop(&f.h).(heapEntry[A, S]).node
}

func (f *priorityFringe[A, S]) Len() int { return f.h.Len() }

type heapEntry[A any, S comparable] struct {
	node *Node[A, S]
	seq  uint64
}

// nodeHeap implements heap.Interface.
type nodeHeap[A any, S comparable] []heapEntry[A, S]

func (h nodeHeap[A, S]) Len() int { return len(h) }

func (h nodeHeap[A, S]) Less(i, j int) bool {
	if c := h[i].node.Compare(h[j].node); c != 0 {
		return c < 0
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap[A, S]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap[A, S]) Push(x any) { *h = append(*h, x.(heapEntry[A, S])) }

func (h *nodeHeap[A, S]) Pop() any {
	old := *h
	last := len(old) - 1
	e := old[last]
	old[last] = heapEntry[A, S]{}
	*h = old[:last]
	return e
}
