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

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianSearch/pkg/logging"
	"github.com/AleutianAI/AleutianSearch/services/search/config"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	logLevel   string
	logJSON    bool
	logDir     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "search",
		Short: "Compare uninformed search strategies on a weighted directed graph",
		Long: `search runs depth-first, breadth-first, best-first and branch-and-bound
solvers concurrently over one graph and reports explored nodes, path depth,
path cost and the path each solver found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "YAML config file (default: built-in demo graph)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log JSON to stderr")
	flags.StringVar(&opts.logDir, "log-dir", "", "also write JSON logs to this directory")

	rootCmd.AddCommand(
		newRunCmd(opts),
		newValidateCmd(opts),
		newGraphCmd(opts),
		newInitCmd(),
	)
	return rootCmd
}

// loadConfig loads the configuration and applies logging flag overrides.
func (o *rootOptions) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.logLevel != "" {
		cfg.Logging.Level = o.logLevel
	}
	if cmd.Flags().Changed("log-json") {
		cfg.Logging.JSON = o.logJSON
	}
	if o.logDir != "" {
		cfg.Logging.Dir = o.logDir
	}
	return cfg, nil
}

// newLogger builds the command logger from cfg, writing to the command's
// error stream.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  cfg.Logging.Dir,
		Service: "search",
		JSON:    cfg.Logging.JSON,
		Writer:  cmd.ErrOrStderr(),
	})
}
