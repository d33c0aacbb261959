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
	"log/slog"
	"time"
)

// -----------------------------------------------------------------------------
// Contracts
// -----------------------------------------------------------------------------

// Solver finds a path from a problem's initial state to its goal.
//
// Description:
//
//	Solve runs synchronously to completion and returns a terminal node:
//	either a goal node, whose Path() is the solution, or the failure
//	sentinel (IsFailure() == true) when no path exists. The returned error
//	is reserved for malformed problems and misconfigured solvers.
//
// Thread Safety: NOT safe for concurrent use. A solver keeps per-run state
// (explored counter, bounds) without synchronization, so every concurrent
// run needs its own instance. The Problem may be shared.
type Solver[A any, S comparable] interface {
	// Name identifies the solver in logs, metrics and reports.
	Name() string

	// Solve searches problem and returns the terminal node.
	Solve(problem Problem[A, S]) (*Node[A, S], error)

	// ExploredNodes returns how many nodes were popped from the fringe
	// during the most recent Solve.
	ExploredNodes() int
}

// Optimizer is a Solver whose result is guaranteed to have minimal path
// cost. It adds no operations.
type Optimizer[A any, S comparable] interface {
	Solver[A, S]
	optimal()
}

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// SolverConfig configures a solver.
type SolverConfig struct {
	// Logger receives Debug-level run events. Default: slog.Default().
	Logger *slog.Logger

	// Metrics receives run counters. Default: nil (no metrics).
	Metrics *Metrics

	// ClosedKey selects the closed-set identity. Default: the solver's own
	// policy (ClosedByState for GraphSolver, ClosedByNode for BranchAndBound).
	ClosedKey ClosedKeyPolicy
}

// DefaultSolverConfig returns the default configuration.
func DefaultSolverConfig() *SolverConfig {
	return &SolverConfig{
		Logger:    slog.Default(),
		ClosedKey: ClosedKeyDefault,
	}
}

func (c *SolverConfig) logger(component string) *slog.Logger {
	l := c.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With(slog.String("component", component))
}

// -----------------------------------------------------------------------------
// GraphSolver
// -----------------------------------------------------------------------------

// GraphSolver is the generic uninformed search loop.
//
// Description:
//
//	The fringe strategy alone decides the traversal: a stack gives
//	depth-first search, a queue breadth-first search and a priority queue
//	on (pathCost, depth) best-first (uniform-cost) search. The first goal
//	node popped is returned, which is cost-optimal only for the priority
//	strategy and hop-optimal for the queue strategy.
//
//	Explored nodes go into a closed set and their children are not enqueued
//	again; nodes already waiting in the fringe are not checked, so a state
//	may be enqueued several times before it is first expanded.
//
// Thread Safety: NOT safe for concurrent use.
type GraphSolver[A any, S comparable] struct {
	name      string
	strategy  Strategy
	closedKey ClosedKeyPolicy
	logger    *slog.Logger
	metrics   *Metrics

	explored int
}

// NewGraphSolver creates a solver for the given fringe strategy.
//
// Inputs:
//   - strategy: Fringe ordering.
//   - config: Configuration. If nil, uses DefaultSolverConfig().
//
// Outputs:
//   - *GraphSolver[A, S]: The solver.
//   - error: Non-nil if strategy is not a defined Strategy.
func NewGraphSolver[A any, S comparable](strategy Strategy, config *SolverConfig) (*GraphSolver[A, S], error) {
	var name string
	switch strategy {
	case StrategyStack:
		name = "DepthFirstSolver"
	case StrategyQueue:
		name = "BreadthFirstSolver"
	case StrategyPriority:
		name = "BestFirstSolver"
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	return newGraphSolver[A, S](name, strategy, config), nil
}

// NewDepthFirstSolver returns a solver exploring with a stack.
func NewDepthFirstSolver[A any, S comparable](config *SolverConfig) *GraphSolver[A, S] {
	return newGraphSolver[A, S]("DepthFirstSolver", StrategyStack, config)
}

// NewBreadthFirstSolver returns a solver exploring with a queue.
func NewBreadthFirstSolver[A any, S comparable](config *SolverConfig) *GraphSolver[A, S] {
	return newGraphSolver[A, S]("BreadthFirstSolver", StrategyQueue, config)
}

// NewBestFirstSolver returns a solver exploring in (pathCost, depth) order.
func NewBestFirstSolver[A any, S comparable](config *SolverConfig) *GraphSolver[A, S] {
	return newGraphSolver[A, S]("BestFirstSolver", StrategyPriority, config)
}

func newGraphSolver[A any, S comparable](name string, strategy Strategy, config *SolverConfig) *GraphSolver[A, S] {
	if config == nil {
		config = DefaultSolverConfig()
	}
	return &GraphSolver[A, S]{
		name:      name,
		strategy:  strategy,
		closedKey: config.ClosedKey.resolve(ClosedByState),
		logger:    config.logger("graph_solver").With(slog.String("solver", name)),
		metrics:   config.Metrics,
	}
}

// Name returns the solver name.
func (s *GraphSolver[A, S]) Name() string {
	return s.name
}

// Strategy returns the fringe strategy.
func (s *GraphSolver[A, S]) Strategy() Strategy {
	return s.strategy
}

// ExploredNodes returns the number of nodes popped during the last Solve.
func (s *GraphSolver[A, S]) ExploredNodes() int {
	return s.explored
}

// Solve searches problem with the solver's fringe strategy.
//
// Outputs:
//   - *Node[A, S]: The first goal node popped, or the failure sentinel.
//   - error: Non-nil if the problem is nil or rejected a state or
//     transition. Wraps a *SolveError.
func (s *GraphSolver[A, S]) Solve(problem Problem[A, S]) (*Node[A, S], error) {
	if problem == nil {
		return nil, newSolveError(s.name, "Solve", ErrNilProblem)
	}

	s.explored = 0
	start := time.Now()
	s.logger.Debug("search started",
		slog.String("strategy", s.strategy.String()),
		slog.String("closed_key", s.closedKey.String()),
	)

	result, err := s.search(problem)

	elapsed := time.Since(start)
	s.metrics.observeRun(s.name, s.explored, 0, err == nil && !result.IsFailure(), err, elapsed)
	if err != nil {
		s.logger.Debug("search aborted",
			slog.Int("explored", s.explored),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	s.logger.Debug("search finished",
		slog.Int("explored", s.explored),
		slog.Bool("found", !result.IsFailure()),
		slog.Float64("cost", result.PathCost()),
		slog.Duration("duration", elapsed),
	)
	return result, nil
}

func (s *GraphSolver[A, S]) search(problem Problem[A, S]) (*Node[A, S], error) {
	open, err := newFringe[A, S](s.strategy)
	if err != nil {
		return nil, newSolveError(s.name, "Solve", err)
	}
	closed, err := newClosedSet[A, S](s.closedKey)
	if err != nil {
		return nil, newSolveError(s.name, "Solve", err)
	}

	open.Push(NewRootNode[A, S](problem.InitialState()))

	for open.Len() > 0 {
		node := open.Pop()
		closed.Add(node)
		s.explored++

		if problem.IsGoal(node.state) {
			return node, nil
		}

		children, err := node.Expand(problem)
		if err != nil {
			return nil, newSolveError(s.name, "Expand", err)
		}
		for _, child := range children {
			if !closed.Contains(child) {
				open.Push(child)
			}
		}
	}

	return NewFailureNode[A, S](problem.InitialState()), nil
}
