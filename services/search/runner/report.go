// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package runner

import (
	"fmt"
	"io"
)

// Report column names.
const (
	ColumnStrategy = "solving_strategy"
	ColumnExplored = "explored_paths"
	ColumnDepth    = "path_depth"
	ColumnCost     = "path_weight"
	ColumnPath     = "result_path"
)

// HeaderLine returns the report header.
func HeaderLine() string {
	return fmt.Sprintf("%-20s %-18s %-13s %-12s     %s",
		ColumnStrategy, ColumnExplored, ColumnDepth, ColumnCost, ColumnPath)
}

// ResultLine formats one result as a report row. Failed solvers show the
// error in the path column.
func ResultLine[A any, S comparable](r *Result[A, S]) string {
	if r.Err != nil || r.Node == nil {
		msg := "not run"
		if r.Err != nil {
			msg = "error: " + r.Err.Error()
		}
		return fmt.Sprintf("%-20s % 10d % 16s % 10s               %s",
			r.Solver, r.Explored, "-", "-", msg)
	}
	path := r.Node.PathString()
	if r.Node.IsFailure() {
		path = "no path"
	}
	return fmt.Sprintf("%-20s % 10d % 16d % 10.2f               %s",
		r.Solver, r.Explored, r.Node.Depth(), r.Node.PathCost(), path)
}

// WriteReport writes the header, a blank line and one row per result.
func WriteReport[A any, S comparable](w io.Writer, results []*Result[A, S]) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", HeaderLine()); err != nil {
		return err
	}
	for _, r := range results {
		if _, err := fmt.Fprintln(w, ResultLine(r)); err != nil {
			return err
		}
	}
	return nil
}
