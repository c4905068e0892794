// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

// Package main provides the bmrules catalog tool. It lints phonetic rule
// catalogs for malformed lines and dumps parsed rules for inspection.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/leloulight/bmrules"
)

var (
	flagDir     string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "bmrules",
		Short:         "Beider-Morse phonetic rule catalog tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagDir, "dir", ".", "catalog directory")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newLintCmd(), newDumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if flagVerbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := config.Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: build logger:", err)
		os.Exit(1)
	}

	return logger
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <catalog>...",
		Short: "Parse catalogs and report malformed lines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			opts := bmrules.ParseOptions{Logger: logger}
			src := bmrules.NewFSSource(os.DirFS(flagDir))

			bad := 0
			for _, name := range args {
				rules, diags, err := parseCatalog(src, name, opts)
				if err != nil {
					return fmt.Errorf("lint %s: %w", name, err)
				}

				logger.Info("catalog parsed",
					zap.String("catalog", name),
					zap.Int("rules", len(rules)),
					zap.Int("skipped", len(diags)))

				for _, d := range diags {
					fmt.Fprintf(cmd.OutOrStdout(), "%s:%d: %s (%q)\n", d.Resource, d.Line, d.Reason, d.Raw)
				}

				bad += len(diags)
			}

			if bad > 0 {
				return fmt.Errorf("%d malformed line(s)", bad)
			}

			return nil
		},
	}
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <catalog>...",
		Short: "Print parsed rules of catalogs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()
			defer func() { _ = logger.Sync() }()

			opts := bmrules.ParseOptions{Logger: logger}
			src := bmrules.NewFSSource(os.DirFS(flagDir))

			sets := make([][]*bmrules.Rule, 0, len(args))
			for _, name := range args {
				rules, _, err := parseCatalog(src, name, opts)
				if err != nil {
					return fmt.Errorf("dump %s: %w", name, err)
				}

				sets = append(sets, rules)
			}

			for _, r := range bmrules.MergeRules(sets...) {
				langs := strings.Join(r.Languages().Slice(), ",")
				fmt.Fprintf(cmd.OutOrStdout(), "%-12q -> %-12q [%s %s]\n", r.Pattern(), r.Phoneme(), langs, r.Logical())
			}

			return nil
		},
	}
}

// parseCatalog parses one catalog, choosing the YAML parser for .yaml/.yml
// names and the plain text parser otherwise.
func parseCatalog(src bmrules.FSSource, name string, opts bmrules.ParseOptions) ([]*bmrules.Rule, []bmrules.Diagnostic, error) {
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		f, err := src.FS.Open(name)
		if err != nil {
			return nil, nil, err
		}
		defer func() { _ = f.Close() }()

		return bmrules.ParseRulesYAML(f, opts)
	}

	return bmrules.ParseRules(src, name, opts)
}
