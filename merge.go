// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

// MergeRules merges rule lists preserving input order. Useful for
// combining a "common" catalog with a language-specific one.
func MergeRules(ruleSets ...[]*Rule) []*Rule {
	total := 0
	for _, set := range ruleSets {
		total += len(set)
	}

	out := make([]*Rule, 0, total)
	for _, set := range ruleSets {
		out = append(out, set...)
	}

	return out
}
