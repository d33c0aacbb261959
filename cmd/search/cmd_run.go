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
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianSearch/pkg/ux"
	"github.com/AleutianAI/AleutianSearch/services/search"
	"github.com/AleutianAI/AleutianSearch/services/search/graph"
	"github.com/AleutianAI/AleutianSearch/services/search/runner"
	"github.com/AleutianAI/AleutianSearch/services/search/telemetry"
)

type runOptions struct {
	*rootOptions
	solvers      []string
	start        int
	goal         int
	trace        string
	otlpEndpoint string
	metrics      bool
	parallel     int
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve the configured problem with every solver and print the report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.run(cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVarP(&opts.solvers, "solver", "s", nil,
		"solver to run, repeatable: depth-first, breadth-first, best-first, branch-and-bound")
	flags.IntVar(&opts.start, "start", 0, "start vertex (overrides config)")
	flags.IntVar(&opts.goal, "goal", 0, "goal vertex (overrides config)")
	flags.StringVar(&opts.trace, "trace", "", "trace exporter: none, stdout, otlp (overrides config)")
	flags.StringVar(&opts.otlpEndpoint, "otlp-endpoint", "", "OTLP gRPC endpoint host:port")
	flags.BoolVar(&opts.metrics, "metrics", false, "print Prometheus metrics after the report")
	flags.IntVar(&opts.parallel, "parallel", 0, "maximum solvers running at once (0 = all)")
	return cmd
}

func (o *runOptions) run(cmd *cobra.Command) error {
	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if len(o.solvers) > 0 {
		cfg.Solvers = o.solvers
	}
	if flags.Changed("start") {
		cfg.Start = o.start
	}
	if flags.Changed("goal") {
		cfg.Goal = o.goal
	}
	if o.trace != "" {
		cfg.Telemetry.TraceExporter = o.trace
	}
	if o.otlpEndpoint != "" {
		cfg.Telemetry.OTLPEndpoint = o.otlpEndpoint
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tcfg := telemetry.DefaultConfig()
	tcfg.TraceExporter = cfg.Telemetry.TraceExporter
	if cfg.Telemetry.OTLPEndpoint != "" {
		tcfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	}
	tcfg.Writer = cmd.ErrOrStderr()
	shutdown, err := telemetry.Init(ctx, tcfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(sctx); err != nil {
			logger.Warn("telemetry shutdown failed", "error", err.Error())
		}
	}()

	problem, err := cfg.BuildProblem()
	if err != nil {
		return err
	}
	kinds, err := cfg.SolverKinds()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	solverConfig := search.DefaultBranchAndBoundConfig()
	solverConfig.Logger = logger.Slog()
	solverConfig.Metrics = search.NewMetrics(reg)

	results, runErr := runner.RunKinds[graph.Edge, int](ctx, problem, kinds, solverConfig, &runner.Config{
		Logger:         logger.Slog(),
		MaxConcurrency: o.parallel,
	})

	out := ux.NewPrinter(cmd.OutOrStdout())
	out.Title(fmt.Sprintf("Searching %d -> %d over %d vertices", cfg.Start, cfg.Goal, cfg.Graph.Vertices))
	out.Header(runner.HeaderLine())
	out.Line("")
	cheapest := math.Inf(1)
	for _, r := range results {
		if r.Found() {
			cheapest = min(cheapest, r.Node.PathCost())
		}
	}
	for _, r := range results {
		if r.Found() && r.Node.PathCost() == cheapest {
			out.Highlight(runner.ResultLine(r))
			continue
		}
		out.Line(runner.ResultLine(r))
	}

	if o.metrics {
		if err := writeMetrics(out.Writer(), reg); err != nil {
			return err
		}
	}
	return runErr
}

// writeMetrics prints every gathered metric family in the text exposition
// format.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
