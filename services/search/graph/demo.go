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

// DemoEdges are the edges of the eight-vertex demonstration graph. The
// cheapest 0 -> 7 paths are 0 -> 1 -> 6 -> 7 and 0 -> 3 -> 5 -> 7, both of
// cost 5 and depth 3.
var DemoEdges = []Edge{
	{From: 0, To: 1, Weight: 1},
	{From: 0, To: 2, Weight: 3},
	{From: 0, To: 3, Weight: 2},
	{From: 1, To: 4, Weight: 5},
	{From: 1, To: 6, Weight: 3},
	{From: 2, To: 4, Weight: 4},
	{From: 2, To: 5, Weight: 3},
	{From: 3, To: 5, Weight: 2},
	{From: 3, To: 6, Weight: 7},
	{From: 4, To: 7, Weight: 4},
	{From: 5, To: 7, Weight: 1},
	{From: 6, To: 7, Weight: 1},
}

// Demo vertex count, start and goal.
const (
	DemoSize  = 8
	DemoStart = 0
	DemoGoal  = 7
)

// NewDemoGraph returns the frozen demonstration graph.
func NewDemoGraph() *DirectedGraph {
	g, err := Build(DemoSize, DemoEdges)
	if err != nil {
		panic("demo graph: " + err.Error())
	}
	return g
}

// Build creates a frozen graph with vertices 0..size-1 and the given edges.
func Build(size int, edges []Edge) (*DirectedGraph, error) {
	g := NewDirectedGraph(size)
	for _, e := range edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	g.Freeze()
	return g, nil
}
