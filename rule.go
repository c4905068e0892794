// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import (
	"fmt"
	"regexp"
)

// Rule is one immutable phoneme rule.
//
// A rule fires at a position when its literal pattern matches there, the
// input before the pattern satisfies the left context, the input after the
// pattern satisfies the right context, and the requested language set
// satisfies the rule's language constraint.
type Rule struct {
	pattern  string
	phoneme  string
	lContext *regexp.Regexp
	rContext *regexp.Regexp
	langs    LangSet
	logical  Logical
}

// NewRule compiles one rule.
//
// lContext is anchored to end where the pattern begins, rContext to start
// where the pattern ends. Both use find semantics against the surrounding
// substring, so an empty context matches unconditionally.
func NewRule(pattern, lContext, rContext, phoneme string, langs LangSet, logical Logical) (*Rule, error) {
	left, err := regexp.Compile(lContext + "$")
	if err != nil {
		return nil, fmt.Errorf("%w: left %q: %v", ErrInvalidContext, lContext, err)
	}

	right, err := regexp.Compile("^" + rContext)
	if err != nil {
		return nil, fmt.Errorf("%w: right %q: %v", ErrInvalidContext, rContext, err)
	}

	return &Rule{
		pattern:  pattern,
		phoneme:  phoneme,
		lContext: left,
		rContext: right,
		langs:    langs,
		logical:  logical,
	}, nil
}

// Pattern returns the literal pattern that must match exactly.
func (r *Rule) Pattern() string {
	return r.pattern
}

// Phoneme returns the output produced when the rule fires.
func (r *Rule) Phoneme() string {
	return r.phoneme
}

// LeftContext returns the compiled left context, anchored to end where
// the pattern begins.
func (r *Rule) LeftContext() *regexp.Regexp {
	return r.lContext
}

// RightContext returns the compiled right context, anchored to start where
// the pattern ends.
func (r *Rule) RightContext() *regexp.Regexp {
	return r.rContext
}

// Languages returns the rule's language constraint set.
// An empty set means the rule applies to every language.
func (r *Rule) Languages() LangSet {
	return r.langs
}

// Logical returns the combinator applied to the language set.
func (r *Rule) Logical() Logical {
	return r.logical
}

// PatternAndContextMatches reports whether pattern and both contexts match
// input at position pos.
//
// A negative pos is a caller bug and returns ErrNegativePosition. A pattern
// running past the end of input is a normal non-match.
func (r *Rule) PatternAndContextMatches(input string, pos int) (bool, error) {
	if pos < 0 {
		return false, fmt.Errorf("%w: %d", ErrNegativePosition, pos)
	}

	end := pos + len(r.pattern)
	if end > len(input) {
		// Not enough room for the pattern.
		return false, nil
	}

	if input[pos:end] != r.pattern {
		return false, nil
	}

	if !r.rContext.MatchString(input[end:]) {
		return false, nil
	}

	return r.lContext.MatchString(input[:pos]), nil
}

// LanguageMatches reports whether the requested language set satisfies the
// rule's language constraint.
//
// A requested set containing LangAny and a rule with an empty language set
// both match unconditionally, regardless of the logical combinator.
func (r *Rule) LanguageMatches(requested LangSet) bool {
	if requested.Contains(LangAny) || len(r.langs) == 0 {
		return true
	}

	if r.logical == LogicalAll && !requested.ContainsAll(r.langs) {
		return false
	}

	return requested.Intersects(r.langs)
}
