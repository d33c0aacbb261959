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

// Successor is one outgoing transition of a state: the action taken and the
// state it leads to.
type Successor[A any, S comparable] struct {
	Action A
	State  S
}

// Problem defines a combinatorial search problem.
//
// Description:
//
//	A problem has an initial state and a goal test. Each state leads to
//	other states through actions, and every transition has a cost. Actions
//	are carried along for path reconstruction only and may be left as the
//	zero value when a problem does not need them.
//
//	Implementations must be immutable once constructed: the same Problem is
//	shared read-only by solvers running on different goroutines.
//
// Contract:
//   - Expand is deterministic for a fixed state and always terminates.
//   - PathCost is deterministic and never returns less than previousCost
//     (non-negative transition costs). Branch-and-bound relies on this.
//   - Expand and PathCost return an error only for malformed input (a state
//     outside the problem, a transition that does not exist). Such errors
//     abort the search.
type Problem[A any, S comparable] interface {
	// InitialState returns the state the search starts from.
	InitialState() S

	// IsGoal reports whether state is the goal.
	IsGoal(state S) bool

	// Expand returns all direct successors of state. May be empty.
	Expand(state S) ([]Successor[A, S], error)

	// PathCost returns the cumulative cost of reaching to from from via
	// action, given that reaching from cost previousCost.
	PathCost(previousCost float64, from S, action A, to S) (float64, error)
}

// GoalProblem captures a start and a goal state.
//
// Concrete problems embed it to get InitialState and an equality-based
// IsGoal, and provide Expand and PathCost themselves.
type GoalProblem[S comparable] struct {
	Start S
	Goal  S
}

// NewGoalProblem returns a GoalProblem for the given start and goal.
func NewGoalProblem[S comparable](start, goal S) GoalProblem[S] {
	return GoalProblem[S]{Start: start, Goal: goal}
}

// InitialState returns the start state.
func (g GoalProblem[S]) InitialState() S {
	return g.Start
}

// IsGoal reports whether state equals the goal state.
func (g GoalProblem[S]) IsGoal(state S) bool {
	return state == g.Goal
}
