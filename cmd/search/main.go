// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Command search runs path-finding solvers over a weighted directed graph
// and prints a comparison report.
//
// Usage:
//
//	search run                          # demo graph, all solvers
//	search run --config search.yaml     # graph and solvers from a file
//	search run --solver best-first --solver branch-and-bound --metrics
//	search run --trace stdout           # export spans to stderr
//	search validate --config search.yaml
//	search graph                        # vertex degree summary
//	search init search.yaml             # write the demo config
//
// Example output:
//
//	solving_strategy     explored_paths     path_depth    path_weight      result_path
//
//	BestFirstSolver               7                3       5.00               0 -> 1 -> 6 -> 7
//	DepthFirstSolver              4                3      10.00               0 -> 3 -> 6 -> 7
package main

import (
	"os"

	"github.com/AleutianAI/AleutianSearch/pkg/ux"
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ux.NewPrinter(rootCmd.ErrOrStderr()).Error(err.Error())
		os.Exit(1)
	}
}
