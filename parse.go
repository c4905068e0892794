// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import (
	"bufio"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	cmtLine     = "//"
	extCmtStart = "/*"
	extCmtEnd   = "*/"
	hashInclude = "#include"
	doubleQuote = `"`
)

// ParseRules parses one named catalog from src into compiled rules.
//
// Semantics:
//   - "//" starts an end-of-line comment
//   - a line starting with "/*" opens multi-line comment mode, closed by
//     the first subsequent line ending with "*/"
//   - blank lines are skipped
//   - "#include <name>" splices the named catalog's rules in place
//   - a rule line is 4 whitespace-separated, optionally double-quoted
//     fields: pattern, left context, right context, phoneme
//
// Malformed lines are skipped and reported in the returned diagnostics;
// only an unreadable resource, an include cycle or a stream failure makes
// the parse fail. Rules parsed from the plain text format carry an empty
// language set and an empty logical combinator.
func ParseRules(src Source, name string, opts ParseOptions) ([]*Rule, []Diagnostic, error) {
	opts.applyDefaults()

	p := &parseState{
		src:    src,
		logger: opts.Logger,
		active: make(map[string]struct{}),
	}

	rules, err := p.parse(name)
	if err != nil {
		return nil, nil, err
	}

	return rules, p.diags, nil
}

// parseState tracks diagnostics and the active include chain of one parse.
type parseState struct {
	src    Source
	logger *zap.Logger
	diags  []Diagnostic
	// active holds catalog names on the current include chain. A name seen
	// twice on one chain is a cycle; repeat includes of an already finished
	// catalog stay legal.
	active map[string]struct{}
}

// parse parses one catalog, recursing into includes.
func (p *parseState) parse(name string) ([]*Rule, error) {
	if _, ok := p.active[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, name)
	}

	p.active[name] = struct{}{}
	defer delete(p.active, name)

	rc, err := p.src.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	s := bufio.NewScanner(rc)
	rules := make([]*Rule, 0, 16)
	inMultilineComment := false
	lineNo := 0

	for s.Scan() {
		lineNo++
		raw := strings.TrimRight(s.Text(), "\r")

		if inMultilineComment {
			if strings.HasSuffix(raw, extCmtEnd) {
				inMultilineComment = false
			}

			continue
		}

		// The opening line itself is never checked for the terminator.
		if strings.HasPrefix(raw, extCmtStart) {
			inMultilineComment = true
			continue
		}

		line := raw
		if i := strings.Index(line, cmtLine); i >= 0 {
			line = line[:i]
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, hashInclude) {
			incl := strings.TrimSpace(line[len(hashInclude):])
			if strings.ContainsAny(incl, " \t") {
				p.warn(name, lineNo, raw, "malformed include: embedded whitespace")
				continue
			}

			included, err := p.parse(incl)
			if err != nil {
				return nil, fmt.Errorf("include %q: %w", incl, err)
			}

			rules = append(rules, included...)
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 4 {
			p.warn(name, lineNo, raw, fmt.Sprintf("malformed rule: split into %d parts", len(parts)))
			continue
		}

		rule, err := NewRule(
			stripQuotes(parts[0]),
			stripQuotes(parts[1]),
			stripQuotes(parts[2]),
			stripQuotes(parts[3]),
			nil,
			"",
		)
		if err != nil {
			p.warn(name, lineNo, raw, err.Error())
			continue
		}

		rules = append(rules, rule)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", name, err)
	}

	return rules, nil
}

// warn records one skipped line.
func (p *parseState) warn(resource string, line int, raw string, reason string) {
	p.diags = append(p.diags, Diagnostic{
		Resource: resource,
		Line:     line,
		Raw:      raw,
		Reason:   reason,
	})

	p.logger.Warn("skipping malformed catalog line",
		zap.String("resource", resource),
		zap.Int("line", line),
		zap.String("raw", raw),
		zap.String("reason", reason))
}

// stripQuotes removes at most one leading and one trailing double quote.
// Embedded quotes are left untouched.
func stripQuotes(s string) string {
	s = strings.TrimPrefix(s, doubleQuote)
	return strings.TrimSuffix(s, doubleQuote)
}
