// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package runner executes several solvers concurrently over one problem.
//
// Each solver runs on its own goroutine and must be a distinct instance,
// since solvers keep unsynchronized per-run state. The problem is shared
// read-only. Every run gets a UUID and an OpenTelemetry span per solver.
package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/AleutianAI/AleutianSearch/services/search"
)

// ErrSharedSolver is returned when the same solver instance is passed to Run
// more than once.
var ErrSharedSolver = errors.New("solver instance listed more than once")

// -----------------------------------------------------------------------------
// Result
// -----------------------------------------------------------------------------

// Result is the outcome of one solver.
type Result[A any, S comparable] struct {
	// RunID identifies the Run call that produced this result.
	RunID string

	// Solver is the solver name.
	Solver string

	// Node is the terminal node, nil if Err is set or the solver never ran.
	Node *search.Node[A, S]

	// Explored is the solver's explored node count.
	Explored int

	// Duration is the wall time of Solve.
	Duration time.Duration

	// Err is the solver error or, for solvers that never started, the
	// context error.
	Err error
}

// Found reports whether the solver returned a goal node.
func (r *Result[A, S]) Found() bool {
	return r.Err == nil && r.Node != nil && !r.Node.IsFailure()
}

// -----------------------------------------------------------------------------
// Runner
// -----------------------------------------------------------------------------

// Config configures a Runner.
type Config struct {
	// Logger receives run events. Default: slog.Default().
	Logger *slog.Logger

	// Tracer creates run spans. Default: otel.Tracer("search/runner").
	Tracer trace.Tracer

	// MaxConcurrency caps concurrently running solvers. Zero means no cap.
	MaxConcurrency int
}

// Stats contains runner execution statistics.
type Stats struct {
	Started   int
	Completed int
	Failed    int
}

// Runner runs solvers in goroutines over a shared problem.
//
// Description:
//
//	Run starts one goroutine per solver. A solver that returns an error
//	cancels the run context; solvers that have not started yet are skipped
//	and report the context error. Solvers already running finish, since
//	Solve cannot be interrupted.
//
// Thread Safety: Safe for concurrent use, provided no solver instance is
// passed to two concurrent Run calls.
type Runner[A any, S comparable] struct {
	problem        search.Problem[A, S]
	logger         *slog.Logger
	tracer         trace.Tracer
	maxConcurrency int

	mu    sync.Mutex
	stats Stats
}

// NewRunner creates a runner for problem.
//
// Inputs:
//   - problem: Shared read-only problem. Must not be nil.
//   - config: Configuration. If nil, uses defaults.
//
// Outputs:
//   - *Runner[A, S]: The runner.
//   - error: search.ErrNilProblem if problem is nil.
func NewRunner[A any, S comparable](problem search.Problem[A, S], config *Config) (*Runner[A, S], error) {
	if problem == nil {
		return nil, search.ErrNilProblem
	}
	if config == nil {
		config = &Config{}
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := config.Tracer
	if tracer == nil {
		tracer = otel.Tracer("search/runner")
	}
	return &Runner[A, S]{
		problem:        problem,
		logger:         logger.With(slog.String("component", "search_runner")),
		tracer:         tracer,
		maxConcurrency: config.MaxConcurrency,
	}, nil
}

// Run solves the problem with every solver concurrently.
//
// Inputs:
//   - ctx: Parent context for spans and cancellation of unstarted solvers.
//   - solvers: Distinct solver instances.
//
// Outputs:
//   - []*Result[A, S]: One result per solver, in input order. Always
//     returned once the solvers were accepted, even alongside an error.
//   - error: ErrSharedSolver or search.ErrNilSolver for bad input (no
//     results), otherwise the first solver error.
func (r *Runner[A, S]) Run(ctx context.Context, solvers ...search.Solver[A, S]) ([]*Result[A, S], error) {
	if err := checkDistinct(solvers); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	ctx, span := r.tracer.Start(ctx, "search.run",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.Int("solvers", len(solvers)),
		),
	)
	defer span.End()

	logger := r.logger.With(slog.String("run_id", runID))
	logger.Info("search run started", slog.Int("solvers", len(solvers)))
	start := time.Now()

	results := make([]*Result[A, S], len(solvers))
	g, gctx := errgroup.WithContext(ctx)
	if r.maxConcurrency > 0 {
		g.SetLimit(r.maxConcurrency)
	}
	for i, s := range solvers {
		results[i] = &Result[A, S]{RunID: runID, Solver: s.Name()}
		g.Go(func() error {
			return r.solve(gctx, logger, s, results[i])
		})
	}
	err := g.Wait()

	found := 0
	for _, res := range results {
		if res.Found() {
			found++
		}
	}
	span.SetAttributes(attribute.Int("found", found))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("search run failed",
			slog.Duration("duration", time.Since(start)),
			slog.String("error", err.Error()),
		)
		return results, err
	}
	logger.Info("search run completed",
		slog.Int("found", found),
		slog.Duration("duration", time.Since(start)),
	)
	return results, nil
}

// solve runs one solver and fills res.
func (r *Runner[A, S]) solve(ctx context.Context, logger *slog.Logger, s search.Solver[A, S], res *Result[A, S]) error {
	if err := ctx.Err(); err != nil {
		res.Err = err
		return nil
	}

	r.mu.Lock()
	r.stats.Started++
	r.mu.Unlock()

	_, span := r.tracer.Start(ctx, "search.solve."+res.Solver,
		trace.WithAttributes(
			attribute.String("solver", res.Solver),
			attribute.String("run_id", res.RunID),
		),
	)
	defer span.End()

	startTime := time.Now()
	node, err := s.Solve(r.problem)
	res.Duration = time.Since(startTime)
	res.Explored = s.ExploredNodes()
	res.Node = node
	res.Err = err

	span.SetAttributes(
		attribute.Int("explored", res.Explored),
		attribute.Int64("duration_us", res.Duration.Microseconds()),
		attribute.Bool("found", res.Found()),
	)
	if res.Found() {
		span.SetAttributes(
			attribute.Float64("path_cost", node.PathCost()),
			attribute.Int("path_depth", node.Depth()),
		)
	}

	r.mu.Lock()
	r.stats.Completed++
	if err != nil {
		r.stats.Failed++
	}
	r.mu.Unlock()

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("solver failed",
			slog.String("solver", res.Solver),
			slog.Duration("duration", res.Duration),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w", res.Solver, err)
	}
	logger.Debug("solver completed",
		slog.String("solver", res.Solver),
		slog.Int("explored", res.Explored),
		slog.Bool("found", res.Found()),
		slog.Duration("duration", res.Duration),
	)
	return nil
}

// Stats returns execution statistics accumulated over all runs.
func (r *Runner[A, S]) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stats
}

// checkDistinct rejects nil and repeated solver instances.
func checkDistinct[A any, S comparable](solvers []search.Solver[A, S]) error {
	for i, s := range solvers {
		if s == nil {
			return fmt.Errorf("solver %d: %w", i, search.ErrNilSolver)
		}
		for j := 0; j < i; j++ {
			if solvers[j] == s {
				return fmt.Errorf("%w: %s at positions %d and %d", ErrSharedSolver, s.Name(), j, i)
			}
		}
	}
	return nil
}

// -----------------------------------------------------------------------------
// Parallel Execution Helper
// -----------------------------------------------------------------------------

// RunKinds builds a fresh solver for each kind and runs them all.
//
// Inputs:
//   - ctx: Parent context.
//   - problem: Shared read-only problem.
//   - kinds: Solver kinds, in result order. A kind may repeat; each
//     occurrence gets its own instance.
//   - solverConfig: Solver configuration shared by all instances. If nil,
//     uses defaults. OnBoundUpdate must be safe for concurrent use.
//   - config: Runner configuration. If nil, uses defaults.
func RunKinds[A any, S comparable](ctx context.Context, problem search.Problem[A, S], kinds []search.SolverKind, solverConfig *search.BranchAndBoundConfig, config *Config) ([]*Result[A, S], error) {
	r, err := NewRunner(problem, config)
	if err != nil {
		return nil, err
	}
	solvers := make([]search.Solver[A, S], len(kinds))
	for i, kind := range kinds {
		s, err := search.NewSolver[A, S](kind, solverConfig)
		if err != nil {
			return nil, err
		}
		solvers[i] = s
	}
	return r.Run(ctx, solvers...)
}
