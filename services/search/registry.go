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
	"strings"
)

// SolverKind names a solver that can be built by NewSolver.
type SolverKind string

const (
	KindDepthFirst     SolverKind = "depth-first"
	KindBreadthFirst   SolverKind = "breadth-first"
	KindBestFirst      SolverKind = "best-first"
	KindBranchAndBound SolverKind = "branch-and-bound"
)

// SolverKinds returns every kind accepted by NewSolver, in report order.
func SolverKinds() []SolverKind {
	return []SolverKind{KindBestFirst, KindDepthFirst, KindBreadthFirst, KindBranchAndBound}
}

// ParseSolverKind converts a name such as "best-first" to a SolverKind.
func ParseSolverKind(name string) (SolverKind, error) {
	kind := SolverKind(strings.ToLower(strings.TrimSpace(name)))
	for _, k := range SolverKinds() {
		if k == kind {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSolver, name)
}

// NewSolver builds a fresh solver of the given kind.
//
// Inputs:
//   - kind: Which solver to build.
//   - config: Configuration. Graph solvers use the embedded SolverConfig.
//     If nil, defaults are used.
//
// Outputs:
//   - Solver[A, S]: A new instance, never shared with earlier calls.
//   - error: Non-nil if kind is unknown.
func NewSolver[A any, S comparable](kind SolverKind, config *BranchAndBoundConfig) (Solver[A, S], error) {
	if config == nil {
		config = DefaultBranchAndBoundConfig()
	}
	switch kind {
	case KindDepthFirst:
		return NewDepthFirstSolver[A, S](&config.SolverConfig), nil
	case KindBreadthFirst:
		return NewBreadthFirstSolver[A, S](&config.SolverConfig), nil
	case KindBestFirst:
		return NewBestFirstSolver[A, S](&config.SolverConfig), nil
	case KindBranchAndBound:
		return NewBranchAndBound[A, S](config), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, string(kind))
	}
}
