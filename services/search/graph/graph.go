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
	"cmp"
	"fmt"
	"math"
	"slices"
)

// Edge is a weighted directed edge. It is also the action type of
// PathFindProblem.
type Edge struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// DirectedGraph is a weighted directed graph over integer vertices.
//
// Description:
//
//	Each vertex maps to its outgoing edges (successor -> weight). There is
//	at most one edge per ordered vertex pair; adding it again overwrites
//	the weight. Incoming edge counts are kept alongside.
//
// Thread Safety: See package documentation.
type DirectedGraph struct {
	adjacency map[int]map[int]float64
	inDegree  map[int]int
	edgeCount int
	frozen    bool
}

// NewDirectedGraph creates a graph with vertices 0..size-1 and no edges.
func NewDirectedGraph(size int) *DirectedGraph {
	g := &DirectedGraph{
		adjacency: make(map[int]map[int]float64, max(size, 0)),
		inDegree:  make(map[int]int, max(size, 0)),
	}
	for v := 0; v < size; v++ {
		g.adjacency[v] = make(map[int]float64)
		g.inDegree[v] = 0
	}
	return g
}

// AddVertex adds vertex v.
//
// Outputs:
//   - error: ErrDuplicateNode if v exists, ErrGraphFrozen after Freeze().
func (g *DirectedGraph) AddVertex(v int) error {
	if g.frozen {
		return ErrGraphFrozen
	}
	if _, ok := g.adjacency[v]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateNode, v)
	}
	g.adjacency[v] = make(map[int]float64)
	g.inDegree[v] = 0
	return nil
}

// AddEdge adds the edge from -> to with the given weight, replacing the
// weight of an existing edge between the same vertices.
//
// Outputs:
//   - error: ErrNodeNotFound if either vertex is missing, ErrInvalidWeight
//     for negative or non-finite weights, ErrGraphFrozen after Freeze().
func (g *DirectedGraph) AddEdge(from, to int, weight float64) error {
	if g.frozen {
		return ErrGraphFrozen
	}
	if !g.HasVertex(from) {
		return fmt.Errorf("%w: source %d", ErrNodeNotFound, from)
	}
	if !g.HasVertex(to) {
		return fmt.Errorf("%w: destination %d", ErrNodeNotFound, to)
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidWeight, weight)
	}

	out := g.adjacency[from]
	if _, exists := out[to]; !exists {
		g.inDegree[to]++
		g.edgeCount++
	}
	out[to] = weight
	return nil
}

// Freeze makes the graph read-only. Idempotent.
func (g *DirectedGraph) Freeze() {
	g.frozen = true
}

// Frozen reports whether Freeze() has been called.
func (g *DirectedGraph) Frozen() bool {
	return g.frozen
}

// HasVertex reports whether v is a vertex of the graph.
func (g *DirectedGraph) HasVertex(v int) bool {
	_, ok := g.adjacency[v]
	return ok
}

// EdgesFrom returns the edges leaving v ordered by destination vertex.
//
// The slice is a fresh copy; modifying it does not affect the graph.
func (g *DirectedGraph) EdgesFrom(v int) ([]Edge, error) {
	out, ok := g.adjacency[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, v)
	}
	edges := make([]Edge, 0, len(out))
	for to, w := range out {
		edges = append(edges, Edge{From: v, To: to, Weight: w})
	}
	slices.SortFunc(edges, func(a, b Edge) int { return cmp.Compare(a.To, b.To) })
	return edges, nil
}

// Successors returns the vertices reachable from v in one step, ascending.
func (g *DirectedGraph) Successors(v int) []int {
	out := g.adjacency[v]
	next := make([]int, 0, len(out))
	for to := range out {
		next = append(next, to)
	}
	slices.Sort(next)
	return next
}

// Weight returns the weight of the edge from -> to, if it exists.
func (g *DirectedGraph) Weight(from, to int) (float64, bool) {
	w, ok := g.adjacency[from][to]
	return w, ok
}

// OutDegree returns the number of edges leaving v (0 for unknown vertices).
func (g *DirectedGraph) OutDegree(v int) int {
	return len(g.adjacency[v])
}

// InDegree returns the number of edges entering v (0 for unknown vertices).
func (g *DirectedGraph) InDegree(v int) int {
	return g.inDegree[v]
}

// Size returns the number of vertices.
func (g *DirectedGraph) Size() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of edges.
func (g *DirectedGraph) EdgeCount() int {
	return g.edgeCount
}

// Vertices returns all vertices in ascending order.
func (g *DirectedGraph) Vertices() []int {
	vs := make([]int, 0, len(g.adjacency))
	for v := range g.adjacency {
		vs = append(vs, v)
	}
	slices.Sort(vs)
	return vs
}
