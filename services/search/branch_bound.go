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
	"log/slog"
	"math"
	"time"
)

// -----------------------------------------------------------------------------
// Branch and Bound
// -----------------------------------------------------------------------------

// BranchAndBoundConfig configures a BranchAndBound optimizer.
type BranchAndBoundConfig struct {
	SolverConfig

	// OnBoundUpdate is called every time the bound changes, with the old and
	// the new value. Within a run the bound only decreases. Default: nil.
	OnBoundUpdate func(previous, next float64)
}

// DefaultBranchAndBoundConfig returns the default configuration.
func DefaultBranchAndBoundConfig() *BranchAndBoundConfig {
	return &BranchAndBoundConfig{SolverConfig: *DefaultSolverConfig()}
}

type bootstrapKind int

const (
	bootstrapSolver bootstrapKind = iota
	bootstrapBound
	bootstrapIncumbent
)

// BranchAndBound is an optimizer that returns a minimum-cost path.
//
// Description:
//
//	Each Solve goes through three phases:
//
//	1. Bootstrap: obtain an initial bound from an explicit value, from an
//	   already solved node, or by running a local solver (depth-first by
//	   default) whose explored count is added to this optimizer's. When
//	   the bootstrap node has infinite cost the problem is unsolvable and
//	   Solve returns the failure sentinel without searching further.
//	2. Bounded search: pop nodes in (pathCost, depth) order. A node whose
//	   cost meets or exceeds the bound is dropped (still counted as
//	   explored). A goal node below the bound becomes the best solution and
//	   its cost the new bound. Other nodes are expanded, and only children
//	   strictly below the bound and not in the closed set are enqueued.
//	3. Terminal: return the best solution, or the failure sentinel if none
//	   was found or the bound is still infinite.
//
//	Costs must be non-decreasing along paths (non-negative transition
//	costs), otherwise pruning may discard the optimum.
//
// Thread Safety: NOT safe for concurrent use. Bound, best solution and
// counters are per-run state.
type BranchAndBound[A any, S comparable] struct {
	name          string
	kind          bootstrapKind
	local         Solver[A, S]
	initialBound  float64
	incumbent     *Node[A, S]
	closedKey     ClosedKeyPolicy
	logger        *slog.Logger
	metrics       *Metrics
	onBoundUpdate func(previous, next float64)

	// per-run state
	bound    float64
	best     *Node[A, S]
	solvable bool
	explored int
	pruned   int
}

// NewBranchAndBound creates an optimizer bootstrapped by a depth-first solver.
//
// Inputs:
//   - config: Configuration. If nil, uses DefaultBranchAndBoundConfig().
//     The local solver shares the logger. It records no metrics; its pops
//     are counted in the optimizer's own explored total.
//
// Outputs:
//   - *BranchAndBound[A, S]: The optimizer.
func NewBranchAndBound[A any, S comparable](config *BranchAndBoundConfig) *BranchAndBound[A, S] {
	if config == nil {
		config = DefaultBranchAndBoundConfig()
	}
	local := NewDepthFirstSolver[A, S](&SolverConfig{Logger: config.Logger})
	return NewBranchAndBoundWithSolver[A, S](local, config)
}

// NewBranchAndBoundWithSolver creates an optimizer whose initial bound is the
// cost of the path local finds. local is run at the start of every Solve and
// must not be used elsewhere concurrently.
func NewBranchAndBoundWithSolver[A any, S comparable](local Solver[A, S], config *BranchAndBoundConfig) *BranchAndBound[A, S] {
	b := newBranchAndBound[A, S](bootstrapSolver, config)
	b.local = local
	return b
}

// NewBranchAndBoundWithBound creates an optimizer with an explicit initial
// bound. Only paths strictly cheaper than bound can be returned; +Inf means
// no bound.
func NewBranchAndBoundWithBound[A any, S comparable](bound float64, config *BranchAndBoundConfig) *BranchAndBound[A, S] {
	b := newBranchAndBound[A, S](bootstrapBound, config)
	b.initialBound = bound
	return b
}

// NewBranchAndBoundWithIncumbent creates an optimizer seeded with an already
// solved node. Its cost becomes the initial bound and it is returned when no
// cheaper path exists. A failure sentinel marks the problem unsolvable.
func NewBranchAndBoundWithIncumbent[A any, S comparable](incumbent *Node[A, S], config *BranchAndBoundConfig) *BranchAndBound[A, S] {
	b := newBranchAndBound[A, S](bootstrapIncumbent, config)
	b.incumbent = incumbent
	return b
}

func newBranchAndBound[A any, S comparable](kind bootstrapKind, config *BranchAndBoundConfig) *BranchAndBound[A, S] {
	if config == nil {
		config = DefaultBranchAndBoundConfig()
	}
	const name = "BranchAndBound"
	return &BranchAndBound[A, S]{
		name:          name,
		kind:          kind,
		initialBound:  math.Inf(1),
		closedKey:     config.ClosedKey.resolve(ClosedByNode),
		logger:        config.logger("branch_and_bound").With(slog.String("solver", name)),
		metrics:       config.Metrics,
		onBoundUpdate: config.OnBoundUpdate,
		bound:         math.Inf(1),
		solvable:      true,
	}
}

func (b *BranchAndBound[A, S]) optimal() {}

// Name returns the solver name.
func (b *BranchAndBound[A, S]) Name() string {
	return b.name
}

// ExploredNodes returns the nodes popped during the last Solve, including
// those popped by the bootstrap solver.
func (b *BranchAndBound[A, S]) ExploredNodes() int {
	return b.explored
}

// PrunedNodes returns how many popped nodes the last Solve dropped because
// their cost reached the bound.
func (b *BranchAndBound[A, S]) PrunedNodes() int {
	return b.pruned
}

// Bound returns the current bound: +Inf before any solution is known.
func (b *BranchAndBound[A, S]) Bound() float64 {
	return b.bound
}

// Solvable reports whether the last bootstrap found a path.
func (b *BranchAndBound[A, S]) Solvable() bool {
	return b.solvable
}

// Solve returns a minimum-cost goal node or the failure sentinel.
//
// Outputs:
//   - *Node[A, S]: The optimal goal node, or the failure sentinel.
//   - error: Non-nil if the problem is nil, the optimizer is misconfigured
//     or the problem rejected a state or transition. Wraps a *SolveError.
func (b *BranchAndBound[A, S]) Solve(problem Problem[A, S]) (*Node[A, S], error) {
	if problem == nil {
		return nil, newSolveError(b.name, "Solve", ErrNilProblem)
	}

	b.bound = math.Inf(1)
	b.best = nil
	b.solvable = true
	b.explored = 0
	b.pruned = 0
	start := time.Now()

	result, err := b.run(problem)

	elapsed := time.Since(start)
	b.metrics.observeRun(b.name, b.explored, b.pruned, err == nil && !result.IsFailure(), err, elapsed)
	if err != nil {
		b.logger.Debug("search aborted",
			slog.Int("explored", b.explored),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	b.logger.Debug("search finished",
		slog.Int("explored", b.explored),
		slog.Int("pruned", b.pruned),
		slog.Bool("found", !result.IsFailure()),
		slog.Float64("cost", result.PathCost()),
		slog.Duration("duration", elapsed),
	)
	return result, nil
}

func (b *BranchAndBound[A, S]) run(problem Problem[A, S]) (*Node[A, S], error) {
	if err := b.bootstrap(problem); err != nil {
		return nil, err
	}
	if !b.solvable {
		b.logger.Debug("bootstrap found no path, skipping bounded search")
		return NewFailureNode[A, S](problem.InitialState()), nil
	}
	return b.boundedSearch(problem)
}

// bootstrap sets the initial bound and incumbent.
func (b *BranchAndBound[A, S]) bootstrap(problem Problem[A, S]) error {
	switch b.kind {
	case bootstrapBound:
		b.setBound(b.initialBound)
		return nil

	case bootstrapIncumbent:
		if b.incumbent == nil {
			return newSolveError(b.name, "bootstrap", ErrNilIncumbent)
		}
		b.adopt(b.incumbent)
		return nil

	default:
		if b.local == nil {
			return newSolveError(b.name, "bootstrap", ErrNilSolver)
		}
		node, err := b.local.Solve(problem)
		b.explored += b.local.ExploredNodes()
		if err != nil {
			return newSolveError(b.name, "bootstrap", err)
		}
		b.logger.Debug("bootstrap solved",
			slog.String("local_solver", b.local.Name()),
			slog.Int("explored", b.local.ExploredNodes()),
			slog.Float64("cost", node.PathCost()),
		)
		b.adopt(node)
		return nil
	}
}

// adopt takes node as the incumbent solution.
func (b *BranchAndBound[A, S]) adopt(node *Node[A, S]) {
	if node.IsFailure() {
		b.solvable = false
		return
	}
	b.best = node
	b.setBound(node.PathCost())
}

func (b *BranchAndBound[A, S]) setBound(next float64) {
	previous := b.bound
	if next == previous {
		return
	}
	b.bound = next
	b.metrics.boundUpdated(b.name)
	b.logger.Debug("bound updated",
		slog.Float64("previous", previous),
		slog.Float64("bound", next),
	)
	if b.onBoundUpdate != nil {
		b.onBoundUpdate(previous, next)
	}
}

func (b *BranchAndBound[A, S]) boundedSearch(problem Problem[A, S]) (*Node[A, S], error) {
	open, err := newFringe[A, S](StrategyPriority)
	if err != nil {
		return nil, newSolveError(b.name, "Solve", err)
	}
	closed, err := newClosedSet[A, S](b.closedKey)
	if err != nil {
		return nil, newSolveError(b.name, "Solve", err)
	}

	open.Push(NewRootNode[A, S](problem.InitialState()))

	for open.Len() > 0 {
		node := open.Pop()
		closed.Add(node)
		b.explored++

		// The bound may have dropped since the node was enqueued. Equal-cost
		// nodes are pruned too, so the incumbent wins a cost tie.
		if node.pathCost >= b.bound {
			b.pruned++
			continue
		}

		if problem.IsGoal(node.state) {
			b.best = node
			b.setBound(node.pathCost)
			continue
		}

		children, err := node.Expand(problem)
		if err != nil {
			return nil, newSolveError(b.name, "Expand", err)
		}
		for _, child := range children {
			if child.pathCost < b.bound && !closed.Contains(child) {
				open.Push(child)
			}
		}
	}

	if b.best == nil || math.IsInf(b.bound, 1) {
		return NewFailureNode[A, S](problem.InitialState()), nil
	}
	return b.best, nil
}
