// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package graph provides a weighted directed graph and a path-finding
// problem over it for the search engine.
//
// # Lifecycle
//
//  1. Create with NewDirectedGraph(size)
//  2. Build with AddVertex() and AddEdge()
//  3. Call Freeze() to make the graph read-only
//  4. Wrap it with NewPathFindProblem() and hand it to solvers
//
// # Thread Safety
//
// DirectedGraph is NOT safe for concurrent use while it is being built.
// After Freeze() it is never mutated and may be read from any number of
// goroutines, which is what lets concurrent solvers share one problem.
package graph

import "errors"

// Sentinel errors for graph operations.
var (
	// ErrGraphFrozen is returned when attempting to modify a frozen graph.
	ErrGraphFrozen = errors.New("graph is frozen and cannot be modified")

	// ErrGraphNotFrozen is returned when a problem is built over a graph
	// that can still change.
	ErrGraphNotFrozen = errors.New("graph must be frozen before it is searched")

	// ErrNodeNotFound is returned when a vertex is not part of the graph.
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateNode is returned when adding a vertex that already exists.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrInvalidWeight is returned for negative, NaN or infinite edge weights.
	ErrInvalidWeight = errors.New("edge weight must be a finite non-negative number")

	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("graph must not be nil")
)
