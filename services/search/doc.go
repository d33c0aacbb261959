// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package search implements a generic combinatorial search engine.
//
// A Problem describes an implicit state graph: an initial state, a goal
// test, a successor function and a path cost. Solvers walk that graph and
// return the terminal Node of a start-to-goal path, or a failure sentinel
// with infinite cost when none exists.
//
// Architecture:
//
//	┌──────────────────────────────────────────────────────────────────┐
//	│                          Solver[A, S]                            │
//	├──────────────────────────────┬───────────────────────────────────┤
//	│ GraphSolver                  │ BranchAndBound (Optimizer)        │
//	│   fringe strategy:           │   bootstrap: bound / incumbent /  │
//	│   stack | queue | priority   │              local solver         │
//	│   closed set by state        │   priority fringe + pruning       │
//	│                              │   closed set by (state,depth,cost)│
//	└──────────────────────────────┴───────────────────────────────────┘
//	                 │                         │
//	                 ▼                         ▼
//	        Node[A, S] tree (parent pointers only, shared ancestors)
//
// Errors:
//
//	"No path" is a normal outcome and is returned as a node for which
//	IsFailure() is true. Errors are returned only for malformed problems
//	(unknown states, missing transitions) and misconfigured solvers, and
//	they end the run.
//
// Example Usage:
//
//	solver := search.NewBranchAndBound[graph.Edge, int](nil)
//	node, err := solver.Solve(problem)
//	if err != nil {
//	    return err
//	}
//	if node.IsFailure() {
//	    fmt.Println("no path")
//	}
//	fmt.Println(node.FullPathString(), solver.ExploredNodes())
package search
