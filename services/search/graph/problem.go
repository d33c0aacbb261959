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
	"fmt"

	"github.com/AleutianAI/AleutianSearch/services/search"
)

// PathFindProblem searches a frozen DirectedGraph for a path between two
// vertices. States are vertices and actions are the edges taken.
//
// Thread Safety: Immutable, safe for concurrent use.
type PathFindProblem struct {
	search.GoalProblem[int]
	graph *DirectedGraph
}

var _ search.Problem[Edge, int] = (*PathFindProblem)(nil)

// NewPathFindProblem creates a problem from vertex from to vertex to.
//
// Outputs:
//   - *PathFindProblem: The problem.
//   - error: ErrNilGraph, ErrGraphNotFrozen, or ErrNodeNotFound when an
//     endpoint is not in the graph.
func NewPathFindProblem(g *DirectedGraph, from, to int) (*PathFindProblem, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Frozen() {
		return nil, ErrGraphNotFrozen
	}
	if !g.HasVertex(from) {
		return nil, fmt.Errorf("%w: start %d", ErrNodeNotFound, from)
	}
	if !g.HasVertex(to) {
		return nil, fmt.Errorf("%w: goal %d", ErrNodeNotFound, to)
	}
	return &PathFindProblem{
		GoalProblem: search.NewGoalProblem(from, to),
		graph:       g,
	}, nil
}

// Graph returns the underlying graph.
func (p *PathFindProblem) Graph() *DirectedGraph {
	return p.graph
}

// Expand returns one successor per outgoing edge, by ascending destination.
func (p *PathFindProblem) Expand(state int) ([]search.Successor[Edge, int], error) {
	edges, err := p.graph.EdgesFrom(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", search.ErrUnknownState, err)
	}
	next := make([]search.Successor[Edge, int], len(edges))
	for i, e := range edges {
		next[i] = search.Successor[Edge, int]{Action: e, State: e.To}
	}
	return next, nil
}

// PathCost adds the weight of the edge from -> to to previousCost. The
// weight is read from the graph, not from the action.
func (p *PathFindProblem) PathCost(previousCost float64, from int, _ Edge, to int) (float64, error) {
	w, ok := p.graph.Weight(from, to)
	if !ok {
		return 0, fmt.Errorf("%w: no edge %d -> %d", search.ErrInvalidTransition, from, to)
	}
	return previousCost + w, nil
}
