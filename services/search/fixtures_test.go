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
	"fmt"
	"slices"
)

// weightedProblem is a small weighted digraph problem over int states.
// Actions are labels of the form "a->b".
type weightedProblem struct {
	GoalProblem[int]
	out map[int]map[int]float64
}

type wedge struct {
	from, to int
	w        float64
}

func newWeightedProblem(size, start, goal int, edges ...wedge) *weightedProblem {
	p := &weightedProblem{
		GoalProblem: NewGoalProblem(start, goal),
		out:         make(map[int]map[int]float64, size),
	}
	for v := 0; v < size; v++ {
		p.out[v] = make(map[int]float64)
	}
	for _, e := range edges {
		p.out[e.from][e.to] = e.w
	}
	return p
}

func (p *weightedProblem) Expand(state int) ([]Successor[string, int], error) {
	out, ok := p.out[state]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	next := make([]int, 0, len(out))
	for to := range out {
		next = append(next, to)
	}
	slices.Sort(next)
	succ := make([]Successor[string, int], len(next))
	for i, to := range next {
		succ[i] = Successor[string, int]{Action: fmt.Sprintf("%d->%d", state, to), State: to}
	}
	return succ, nil
}

func (p *weightedProblem) PathCost(prev float64, from int, _ string, to int) (float64, error) {
	w, ok := p.out[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %d -> %d", ErrInvalidTransition, from, to)
	}
	return prev + w, nil
}

// demoEdges is the eight-vertex scenario graph. Cheapest 0 -> 7 cost is 5.
var demoEdges = []wedge{
	{0, 1, 1}, {0, 2, 3}, {0, 3, 2},
	{1, 4, 5}, {1, 6, 3},
	{2, 4, 4}, {2, 5, 3},
	{3, 5, 2}, {3, 6, 7},
	{4, 7, 4},
	{5, 7, 1},
	{6, 7, 1},
}

func demoProblem() *weightedProblem {
	return newWeightedProblem(8, 0, 7, demoEdges...)
}

// unreachableProblem: 0 -> 1 -> 2, goal 3 has no incoming edge.
func unreachableProblem() *weightedProblem {
	return newWeightedProblem(4, 0, 3, wedge{0, 1, 1}, wedge{1, 2, 1})
}

// countingProblem counts goal tests, which every solver performs once per
// popped node that is not pruned.
type countingProblem struct {
	Problem[string, int]
	goalTests int
}

func (c *countingProblem) IsGoal(state int) bool {
	c.goalTests++
	return c.Problem.IsGoal(state)
}

// brokenProblem reports a transition that PathCost then rejects.
type brokenProblem struct {
	*weightedProblem
}

func (b brokenProblem) Expand(state int) ([]Successor[string, int], error) {
	succ, err := b.weightedProblem.Expand(state)
	if err != nil {
		return nil, err
	}
	return append(succ, Successor[string, int]{Action: "bogus", State: 99}), nil
}

// pathCostOf sums the edge weights along n's path.
func pathCostOf(p *weightedProblem, n *Node[string, int]) float64 {
	states := n.States()
	total := 0.0
	for i := 1; i < len(states); i++ {
		total += p.out[states[i-1]][states[i]]
	}
	return total
}

// isValidPath reports whether every consecutive pair on n's path is an edge.
func isValidPath(p *weightedProblem, n *Node[string, int]) bool {
	states := n.States()
	for i := 1; i < len(states); i++ {
		if _, ok := p.out[states[i-1]][states[i]]; !ok {
			return false
		}
	}
	return true
}
