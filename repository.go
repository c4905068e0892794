// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import (
	"fmt"

	"go.uber.org/zap"
)

// ruleTypes is the fixed walk order of rule catalogs per name type.
var ruleTypes = []RuleType{RuleTypeRules, RuleTypeApprox, RuleTypeExact}

// RepositoryOptions configures repository construction.
type RepositoryOptions struct {
	// Logger receives structured warnings for skipped catalog lines.
	// Nil disables logging.
	Logger *zap.Logger
}

// Repository is the immutable rule table keyed by name type, rule type and
// language. It is built once and read-only afterwards; any number of
// readers may query it concurrently.
type Repository struct {
	rules map[NameType]map[RuleType]map[string][]*Rule
	diags []Diagnostic
}

// BuildRepository eagerly parses and compiles every catalog declared by the
// Languages registry: one per (name type, rule type, language), plus one
// under the synthetic "common" language for each non-primary rule type.
//
// A missing catalog resource or an include cycle fails the build.
// Malformed lines inside catalogs are skipped and collected; see
// Diagnostics.
func BuildRepository(src Source, languages Languages, opts RepositoryOptions) (*Repository, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	repo := &Repository{
		rules: make(map[NameType]map[RuleType]map[string][]*Rule, len(languages)),
	}

	parseOpts := ParseOptions{Logger: opts.Logger}

	for nameType, langs := range languages {
		if !nameType.valid() {
			return nil, fmt.Errorf("unsupported name type %q", nameType)
		}

		byRuleType := make(map[RuleType]map[string][]*Rule, len(ruleTypes))
		for _, ruleType := range ruleTypes {
			byLang := make(map[string][]*Rule, len(langs)+1)

			for _, lang := range langs {
				rules, diags, err := ParseRules(src, resourceName(nameType, ruleType, lang), parseOpts)
				if err != nil {
					return nil, fmt.Errorf("build %s/%s/%s: %w", nameType, ruleType, lang, err)
				}

				byLang[lang] = rules
				repo.diags = append(repo.diags, diags...)
			}

			if ruleType != RuleTypeRules {
				rules, diags, err := ParseRules(src, resourceName(nameType, ruleType, LangCommon), parseOpts)
				if err != nil {
					return nil, fmt.Errorf("build %s/%s/%s: %w", nameType, ruleType, LangCommon, err)
				}

				byLang[LangCommon] = rules
				repo.diags = append(repo.diags, diags...)
			}

			byRuleType[ruleType] = byLang
		}

		repo.rules[nameType] = byRuleType
	}

	return repo, nil
}

// Instance returns the ordered rule list for one exact key combination.
//
// The returned slice is shared repository state and must not be modified.
// An unpopulated key combination is a caller bug and fails with
// ErrUnknownRuleSet naming all three keys; a present-but-empty catalog is
// a valid empty result.
func (r *Repository) Instance(nameType NameType, ruleType RuleType, lang string) ([]*Rule, error) {
	if r == nil {
		return nil, ErrNilRepository
	}

	rules, ok := r.rules[nameType][ruleType][lang]
	if !ok {
		return nil, fmt.Errorf("%w for %s, %s, %s", ErrUnknownRuleSet, nameType, ruleType, lang)
	}

	return rules, nil
}

// InstanceForLanguages returns the rule list for a requested language set.
// A singleton set resolves to that language's catalog, anything else to
// the "any" wildcard catalog.
func (r *Repository) InstanceForLanguages(nameType NameType, ruleType RuleType, langs LangSet) ([]*Rule, error) {
	if len(langs) == 1 {
		for lang := range langs {
			return r.Instance(nameType, ruleType, lang)
		}
	}

	return r.Instance(nameType, ruleType, LangAny)
}

// Diagnostics returns the skipped-line diagnostics collected during build,
// in build walk order within each catalog.
func (r *Repository) Diagnostics() []Diagnostic {
	if r == nil {
		return nil
	}

	return r.diags
}
