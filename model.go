// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import "go.uber.org/zap"

// NameType is a supported category of names.
type NameType string

const (
	// NameTypeAshkenazi covers Ashkenazi family names.
	NameTypeAshkenazi NameType = "ash"
	// NameTypeGeneric covers generic names and words.
	NameTypeGeneric NameType = "gen"
	// NameTypeSephardic covers Sephardic family names.
	NameTypeSephardic NameType = "sep"
)

// RuleType is a supported category of rule catalogs.
type RuleType string

const (
	// RuleTypeApprox holds approximate-matching phoneme rules.
	RuleTypeApprox RuleType = "approx"
	// RuleTypeExact holds exact-matching phoneme rules.
	RuleTypeExact RuleType = "exact"
	// RuleTypeRules holds the primary transcription rules. It is the only
	// rule type without a synthetic "common" language catalog.
	RuleTypeRules RuleType = "rules"
)

// Logical is the combinator applied to a rule's language set.
type Logical string

// LogicalAll requires every rule language to be in the requested set.
// Any other value requires a non-empty intersection.
const LogicalAll Logical = "ALL"

const (
	// LangAny is the wildcard language key. A requested set containing it
	// bypasses language scoping, and multi-language repository lookups
	// fall back to catalogs stored under it.
	LangAny = "any"
	// LangCommon is the synthetic language key for catalogs shared by all
	// languages of a non-primary rule type.
	LangCommon = "common"
)

// LangSet is a set of language identifiers.
type LangSet map[string]struct{}

// NewLangSet builds a language set from identifiers.
func NewLangSet(langs ...string) LangSet {
	set := make(LangSet, len(langs))
	for _, lang := range langs {
		set[lang] = struct{}{}
	}

	return set
}

// Contains reports whether lang is in the set.
func (s LangSet) Contains(lang string) bool {
	_, ok := s[lang]
	return ok
}

// ContainsAll reports whether every language of other is in the set.
func (s LangSet) ContainsAll(other LangSet) bool {
	for lang := range other {
		if !s.Contains(lang) {
			return false
		}
	}

	return true
}

// Intersects reports whether the set shares at least one language with other.
func (s LangSet) Intersects(other LangSet) bool {
	for lang := range other {
		if s.Contains(lang) {
			return true
		}
	}

	return false
}

// Merge returns a new set holding the union of both sets.
func (s LangSet) Merge(other LangSet) LangSet {
	out := make(LangSet, len(s)+len(other))
	for lang := range s {
		out[lang] = struct{}{}
	}
	for lang := range other {
		out[lang] = struct{}{}
	}

	return out
}

// Slice returns the set contents as an unordered slice.
func (s LangSet) Slice() []string {
	out := make([]string, 0, len(s))
	for lang := range s {
		out = append(out, lang)
	}

	return out
}

// Languages declares the known languages for each name type. It is supplied
// by the caller (the language-detection collaborator owns the real registry)
// and drives which catalogs the repository build walks.
type Languages map[NameType][]string

// Diagnostic is one recoverable per-line catalog problem.
type Diagnostic struct {
	// Resource is the catalog name the line came from.
	Resource string `json:"resource" yaml:"resource"`
	// Line is the 1-based line number within the resource.
	Line int `json:"line" yaml:"line"`
	// Raw is the offending line as read.
	Raw string `json:"raw" yaml:"raw"`
	// Reason describes why the line was skipped.
	Reason string `json:"reason" yaml:"reason"`
}

// ParseOptions controls catalog parsing behavior.
type ParseOptions struct {
	// Logger receives structured warnings for skipped lines.
	// Nil disables logging.
	Logger *zap.Logger
}

// applyDefaults fills zero-valued options with defaults.
func (opts *ParseOptions) applyDefaults() {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
}

// valid reports whether name type value is supported.
func (n NameType) valid() bool {
	return n == NameTypeAshkenazi || n == NameTypeGeneric || n == NameTypeSephardic
}
