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
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianSearch/pkg/ux"
)

func newGraphCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Print the vertices of the configured graph with their degrees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.loadConfig(cmd)
			if err != nil {
				return err
			}
			g, err := cfg.BuildGraph()
			if err != nil {
				return err
			}

			out := ux.NewPrinter(cmd.OutOrStdout())
			out.Title(fmt.Sprintf("Graph: %d vertices, %d edges", g.Size(), g.EdgeCount()))
			out.Header(fmt.Sprintf("%-8s %-10s %-10s %s", "vertex", "out", "in", "successors"))
			for _, v := range g.Vertices() {
				edges, err := g.EdgesFrom(v)
				if err != nil {
					return err
				}
				succ := make([]string, 0, len(edges))
				for _, e := range edges {
					succ = append(succ, strconv.Itoa(e.To)+"("+strconv.FormatFloat(e.Weight, 'g', -1, 64)+")")
				}
				out.Line(fmt.Sprintf("%-8d %-10d %-10d %s", v, g.OutDegree(v), g.InDegree(v), strings.Join(succ, " ")))
			}
			return nil
		},
	}
}
