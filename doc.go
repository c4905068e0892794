// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

/*
Package bmrules implements the rule representation and matching engine used
by Beider-Morse style phonetic name encoding.

A rule pairs a literal pattern with a left-context and right-context
regular expression, an output phoneme, and a language-applicability
constraint. Rule catalogs are line-oriented UTF-8 text with end-of-line
and multi-line comments plus "#include" splicing; a richer YAML catalog
form can additionally carry language sets and the logical combinator.

Basic flow:
  - implement or pick a catalog Source (`FSSource`, `MapSource`)
  - parse one catalog (`ParseRules` / `ParseRulesYAML`)
  - or build the full repository over every name type, rule type and
    declared language (`BuildRepository`)
  - look rules up (`Repository.Instance` / `InstanceForLanguages`)
  - ask each rule for a decision (`PatternAndContextMatches`,
    `LanguageMatches`)

Rules and the built repository are immutable and safe for concurrent
readers. Malformed catalog lines are collected as structured diagnostics
and never abort a parse; missing catalog resources and include cycles do.
*/
package bmrules
