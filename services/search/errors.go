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

import "errors"

// Sentinel errors for search operations.
//
// These describe programming or data errors. A search that simply finds no
// path is not an error: it returns the failure sentinel node instead.
var (
	// ErrInvalidTransition is returned by Problem.PathCost when the from/to
	// states are not connected by the given action.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrUnknownState is returned by Problem.Expand when the state does not
	// belong to the problem's state space.
	ErrUnknownState = errors.New("unknown state")

	// ErrUnknownStrategy is returned when a fringe strategy value is not one
	// of the defined Strategy constants.
	ErrUnknownStrategy = errors.New("unknown fringe strategy")

	// ErrUnknownSolver is returned when a solver kind name is not recognised.
	ErrUnknownSolver = errors.New("unknown solver kind")

	// ErrUnknownClosedKeyPolicy is returned for an undefined ClosedKeyPolicy.
	ErrUnknownClosedKeyPolicy = errors.New("unknown closed key policy")

	// ErrNilProblem is returned when Solve is called with a nil problem.
	ErrNilProblem = errors.New("problem must not be nil")

	// ErrNilSolver is returned when a branch-and-bound optimizer is built
	// around a nil local solver.
	ErrNilSolver = errors.New("local solver must not be nil")

	// ErrNilIncumbent is returned when a branch-and-bound optimizer is
	// seeded with a nil incumbent node.
	ErrNilIncumbent = errors.New("incumbent node must not be nil")
)

// SolveError wraps a fatal error raised while a solver was running.
//
// Description:
//
//	Carries the solver name and the operation that failed so that callers
//	running several solvers can tell which one aborted. The wrapped error is
//	reachable through errors.Is / errors.As.
type SolveError struct {
	Solver    string
	Operation string
	Err       error
}

func (e *SolveError) Error() string {
	return e.Solver + "." + e.Operation + ": " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *SolveError) Unwrap() error {
	return e.Err
}

func newSolveError(solver, op string, err error) *SolveError {
	return &SolveError{Solver: solver, Operation: op, Err: err}
}
