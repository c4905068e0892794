// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// yamlCatalog is the richer YAML catalog document.
type yamlCatalog struct {
	Rules []yamlRule `yaml:"rules"`
}

// yamlRule is one rule entry of a YAML catalog. Unlike the plain text
// format it can carry the language set and the logical combinator.
type yamlRule struct {
	Pattern   string   `yaml:"pattern"`
	Left      string   `yaml:"left"`
	Right     string   `yaml:"right"`
	Phoneme   string   `yaml:"phoneme"`
	Languages []string `yaml:"languages"`
	Logical   string   `yaml:"logical"`
}

// ParseRulesYAML parses a YAML catalog into compiled rules.
//
// Entry order is preserved. Entries whose context expressions fail to
// compile are skipped and reported in the returned diagnostics, matching
// the text parser's tolerance; a YAML syntax error fails the whole parse.
func ParseRulesYAML(r io.Reader, opts ParseOptions) ([]*Rule, []Diagnostic, error) {
	opts.applyDefaults()

	var catalog yamlCatalog
	if err := yaml.NewDecoder(r).Decode(&catalog); err != nil {
		return nil, nil, fmt.Errorf("decode yaml catalog: %w", err)
	}

	rules := make([]*Rule, 0, len(catalog.Rules))
	var diags []Diagnostic

	for i, entry := range catalog.Rules {
		var langs LangSet
		if len(entry.Languages) > 0 {
			langs = NewLangSet(entry.Languages...)
		}

		rule, err := NewRule(entry.Pattern, entry.Left, entry.Right, entry.Phoneme, langs, Logical(entry.Logical))
		if err != nil {
			diag := Diagnostic{
				Resource: "yaml",
				Line:     i + 1,
				Raw:      entry.Pattern,
				Reason:   err.Error(),
			}
			diags = append(diags, diag)

			opts.Logger.Warn("skipping malformed catalog entry",
				zap.String("resource", diag.Resource),
				zap.Int("entry", diag.Line),
				zap.String("pattern", diag.Raw),
				zap.String("reason", diag.Reason))
			continue
		}

		rules = append(rules, rule)
	}

	return rules, diags, nil
}
