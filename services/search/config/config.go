// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads and validates search run configuration.
//
// A configuration names the graph to search, the start and goal vertices,
// the solvers to run and the logging and tracing settings of the CLI.
// Files are YAML; environment variables override logging and telemetry.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/AleutianSearch/services/search"
	"github.com/AleutianAI/AleutianSearch/services/search/graph"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid search config")

// Config is a complete run configuration.
//
// Thread Safety: Safe to read concurrently. Not safe to modify after creation.
type Config struct {
	// Graph is the weighted directed graph to search.
	Graph GraphConfig `json:"graph" yaml:"graph" validate:"required"`

	// Start is the initial vertex.
	Start int `json:"start" yaml:"start" validate:"gte=0"`

	// Goal is the goal vertex.
	Goal int `json:"goal" yaml:"goal" validate:"gte=0"`

	// Solvers lists the solver kinds to run, in report order.
	Solvers []string `json:"solvers" yaml:"solvers" validate:"required,min=1,dive,oneof=depth-first breadth-first best-first branch-and-bound"`

	// Logging contains logging settings.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Telemetry contains tracing settings.
	Telemetry TelemetryConfig `json:"telemetry" yaml:"telemetry"`
}

// GraphConfig describes a graph with vertices 0..Vertices-1.
type GraphConfig struct {
	Vertices int          `json:"vertices" yaml:"vertices" validate:"gte=1"`
	Edges    []EdgeConfig `json:"edges" yaml:"edges" validate:"dive"`
}

// EdgeConfig is one weighted edge.
type EdgeConfig struct {
	From   int     `json:"from" yaml:"from" validate:"gte=0"`
	To     int     `json:"to" yaml:"to" validate:"gte=0"`
	Weight float64 `json:"weight" yaml:"weight" validate:"gte=0"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error. Default: info.
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`

	// JSON switches console output to JSON.
	JSON bool `json:"json" yaml:"json"`

	// Dir enables a JSON log file in this directory when set.
	Dir string `json:"dir" yaml:"dir"`
}

// TelemetryConfig contains tracing settings.
type TelemetryConfig struct {
	// TraceExporter is one of none, stdout, otlp. Default: none.
	TraceExporter string `json:"trace_exporter" yaml:"trace_exporter" validate:"omitempty,oneof=none stdout otlp"`

	// OTLPEndpoint is the collector address (host:port) for the otlp exporter.
	OTLPEndpoint string `json:"otlp_endpoint" yaml:"otlp_endpoint" validate:"required_if=TraceExporter otlp"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the demonstration configuration: the eight-vertex demo
// graph searched from 0 to 7 by every solver.
func Default() *Config {
	edges := make([]EdgeConfig, len(graph.DemoEdges))
	for i, e := range graph.DemoEdges {
		edges[i] = EdgeConfig{From: e.From, To: e.To, Weight: e.Weight}
	}
	kinds := search.SolverKinds()
	solvers := make([]string, len(kinds))
	for i, k := range kinds {
		solvers[i] = string(k)
	}
	return &Config{
		Graph:   GraphConfig{Vertices: graph.DemoSize, Edges: edges},
		Start:   graph.DemoStart,
		Goal:    graph.DemoGoal,
		Solvers: solvers,
		Logging: LoggingConfig{Level: "info"},
		Telemetry: TelemetryConfig{
			TraceExporter: "none",
		},
	}
}

// Load reads, parses and validates the configuration at path, then applies
// environment overrides.
//
// Inputs:
//   - path: YAML file. An empty path loads Default().
//
// Outputs:
//   - *Config: The validated configuration.
//   - error: Non-nil if the file cannot be read or the config is invalid.
func Load(path string) (*Config, error) {
	var cfg *Config
	if path == "" {
		cfg = Default()
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		cfg, err = parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML into a Config and validates it. Unknown fields are
// rejected.
func Parse(data []byte) (*Config, error) {
	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides logging and telemetry from SEARCH_* variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SEARCH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("SEARCH_LOG_JSON"); v != "" {
		cfg.Logging.JSON = v == "true" || v == "1"
	}
	if v := os.Getenv("SEARCH_LOG_DIR"); v != "" {
		cfg.Logging.Dir = v
	}
	if v := os.Getenv("SEARCH_TRACE_EXPORTER"); v != "" {
		cfg.Telemetry.TraceExporter = strings.ToLower(v)
	}
	if v := os.Getenv("SEARCH_OTLP_ENDPOINT"); v != "" {
		cfg.Telemetry.OTLPEndpoint = v
	}
}

// Validate checks field constraints and that every vertex reference lies in
// 0..Graph.Vertices-1.
//
// Outputs:
//   - error: Wraps ErrInvalidConfig. Nil if the configuration is valid.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	n := c.Graph.Vertices
	if c.Start >= n {
		return fmt.Errorf("%w: start %d out of range [0,%d)", ErrInvalidConfig, c.Start, n)
	}
	if c.Goal >= n {
		return fmt.Errorf("%w: goal %d out of range [0,%d)", ErrInvalidConfig, c.Goal, n)
	}
	for i, e := range c.Graph.Edges {
		if e.From >= n || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d -> %d) out of range [0,%d)", ErrInvalidConfig, i, e.From, e.To, n)
		}
	}
	return nil
}

// SolverKinds returns the configured solvers as kinds.
func (c *Config) SolverKinds() ([]search.SolverKind, error) {
	kinds := make([]search.SolverKind, len(c.Solvers))
	for i, name := range c.Solvers {
		k, err := search.ParseSolverKind(name)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}

// BuildGraph returns the configured graph, frozen.
func (c *Config) BuildGraph() (*graph.DirectedGraph, error) {
	edges := make([]graph.Edge, len(c.Graph.Edges))
	for i, e := range c.Graph.Edges {
		edges[i] = graph.Edge{From: e.From, To: e.To, Weight: e.Weight}
	}
	g, err := graph.Build(c.Graph.Vertices, edges)
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	return g, nil
}

// BuildProblem returns the path-finding problem from Start to Goal.
func (c *Config) BuildProblem() (*graph.PathFindProblem, error) {
	g, err := c.BuildGraph()
	if err != nil {
		return nil, err
	}
	return graph.NewPathFindProblem(g, c.Start, c.Goal)
}

// WriteDefault writes Default() as YAML to path, creating parent directories.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
