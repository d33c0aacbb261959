// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianSearch/pkg/ux"
	"github.com/AleutianAI/AleutianSearch/services/search"
	"github.com/AleutianAI/AleutianSearch/services/search/graph"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and the problem it describes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			problem, err := cfg.BuildProblem()
			if err != nil {
				return err
			}
			reach, err := search.NewBreadthFirstSolver[graph.Edge, int](nil).Solve(problem)
			if err != nil {
				return err
			}

			out := ux.NewPrinter(cmd.OutOrStdout())
			out.Success(fmt.Sprintf(
				"config valid: %d vertices, %d edges, %d solvers, %d -> %d",
				cfg.Graph.Vertices, len(cfg.Graph.Edges), len(cfg.Solvers), cfg.Start, cfg.Goal))
			out.Muted("solvers: " + strings.Join(cfg.Solvers, ", "))
			if reach.IsFailure() {
				out.Warning(fmt.Sprintf("no path from %d to %d", cfg.Start, cfg.Goal))
			}
			return nil
		},
	}
}
