// SPDX-License-Identifier: MIT
// Copyright (c) 2026 leloulight
// Source: github.com/leloulight/bmrules

package bmrules

import (
	"sort"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFS() fstest.MapFS {
	return fstest.MapFS{
		"gen_rules_english.txt": {Data: []byte(`"ge" "" "" "gE"
"sch" "" "" "S"
`)},
		"gen_rules_french.txt": {Data: []byte(`"ch" "" "" "S"
`)},
		"gen_rules_any.txt": {Data: []byte(`"a" "" "" "a"
"b" "" "" "b"
`)},
		"gen_approx_english.txt": {Data: []byte(`#include gen_approx_common
"va" "" "$" "va"
`)},
		"gen_approx_french.txt": {Data: []byte("#include gen_approx_common\n")},
		"gen_approx_any.txt":    {Data: []byte("#include gen_approx_common\n")},
		"gen_approx_common.txt": {Data: []byte(`"h" "" "" ""
`)},
		"gen_exact_english.txt": {Data: []byte("")},
		"gen_exact_french.txt":  {Data: []byte("// nothing yet\n")},
		"gen_exact_any.txt":     {Data: []byte("")},
		"gen_exact_common.txt": {Data: []byte(`"H" "" "" "h"
`)},
	}
}

func testLanguages() Languages {
	return Languages{
		NameTypeGeneric: {"english", "french", LangAny},
	}
}

func TestBuildRepositoryInstance(t *testing.T) {
	t.Parallel()

	repo, err := BuildRepository(NewFSSource(catalogFS()), testLanguages(), RepositoryOptions{})
	require.NoError(t, err)
	assert.Empty(t, repo.Diagnostics())

	rules, err := repo.Instance(NameTypeGeneric, RuleTypeRules, "english")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "ge", rules[0].Pattern())
	assert.Equal(t, "sch", rules[1].Pattern())

	// Include is spliced before the file's own rules.
	rules, err = repo.Instance(NameTypeGeneric, RuleTypeApprox, "english")
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "h", rules[0].Pattern())
	assert.Equal(t, "va", rules[1].Pattern())

	// Non-primary rule types also get a synthetic common catalog.
	rules, err = repo.Instance(NameTypeGeneric, RuleTypeExact, LangCommon)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "H", rules[0].Pattern())

	// Present-but-empty catalogs are a valid empty result, not a failure.
	rules, err = repo.Instance(NameTypeGeneric, RuleTypeExact, "english")
	require.NoError(t, err)
	assert.Empty(t, rules)
}

func TestRepositoryUnknownKey(t *testing.T) {
	t.Parallel()

	repo, err := BuildRepository(NewFSSource(catalogFS()), testLanguages(), RepositoryOptions{})
	require.NoError(t, err)

	_, err = repo.Instance(NameTypeGeneric, RuleTypeRules, "german")
	require.ErrorIs(t, err, ErrUnknownRuleSet)
	assert.Contains(t, err.Error(), "gen, rules, german")

	// The primary rule type has no common catalog.
	_, err = repo.Instance(NameTypeGeneric, RuleTypeRules, LangCommon)
	require.ErrorIs(t, err, ErrUnknownRuleSet)

	_, err = repo.Instance(NameTypeAshkenazi, RuleTypeRules, "english")
	require.ErrorIs(t, err, ErrUnknownRuleSet)
}

func TestRepositoryInstanceForLanguages(t *testing.T) {
	t.Parallel()

	repo, err := BuildRepository(NewFSSource(catalogFS()), testLanguages(), RepositoryOptions{})
	require.NoError(t, err)

	// Singleton set resolves to that language.
	rules, err := repo.InstanceForLanguages(NameTypeGeneric, RuleTypeRules, NewLangSet("french"))
	require.NoError(t, err)
	require.Len(t, rules, 1)
	assert.Equal(t, "ch", rules[0].Pattern())

	// Multi-language sets fall back to the wildcard catalog.
	rules, err = repo.InstanceForLanguages(NameTypeGeneric, RuleTypeRules, NewLangSet("english", "french"))
	require.NoError(t, err)
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Pattern())

	// So does the empty set.
	rules, err = repo.InstanceForLanguages(NameTypeGeneric, RuleTypeRules, nil)
	require.NoError(t, err)
	assert.Len(t, rules, 2)
}

func TestBuildRepositoryMissingCatalog(t *testing.T) {
	t.Parallel()

	fsys := catalogFS()
	delete(fsys, "gen_exact_common.txt")

	_, err := BuildRepository(NewFSSource(fsys), testLanguages(), RepositoryOptions{})
	require.ErrorIs(t, err, ErrResourceNotFound)
}

func TestBuildRepositoryUnsupportedNameType(t *testing.T) {
	t.Parallel()

	_, err := BuildRepository(NewFSSource(catalogFS()), Languages{"bogus": {"english"}}, RepositoryOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported name type")
}

func TestBuildRepositoryCollectsDiagnostics(t *testing.T) {
	t.Parallel()

	fsys := catalogFS()
	fsys["gen_rules_english.txt"] = &fstest.MapFile{Data: []byte(`"ge" "" "" "gE"
"broken" "line"
`)}

	repo, err := BuildRepository(NewFSSource(fsys), testLanguages(), RepositoryOptions{})
	require.NoError(t, err)

	diags := repo.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "gen_rules_english", diags[0].Resource)
	assert.Equal(t, 2, diags[0].Line)

	rules, err := repo.Instance(NameTypeGeneric, RuleTypeRules, "english")
	require.NoError(t, err)
	assert.Len(t, rules, 1)
}

// ruleTuple is the comparable projection of one compiled rule.
type ruleTuple struct {
	Pattern string
	Left    string
	Right   string
	Phoneme string
	Langs   []string
	Logical Logical
}

func tupleOf(r *Rule) ruleTuple {
	langs := r.Languages().Slice()
	sort.Strings(langs)

	return ruleTuple{
		Pattern: r.Pattern(),
		Left:    r.LeftContext().String(),
		Right:   r.RightContext().String(),
		Phoneme: r.Phoneme(),
		Langs:   langs,
		Logical: r.Logical(),
	}
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	langs := testLanguages()

	first, err := BuildRepository(NewFSSource(catalogFS()), langs, RepositoryOptions{})
	require.NoError(t, err)

	second, err := BuildRepository(NewFSSource(catalogFS()), langs, RepositoryOptions{})
	require.NoError(t, err)

	for _, ruleType := range []RuleType{RuleTypeRules, RuleTypeApprox, RuleTypeExact} {
		keys := []string{"english", "french", LangAny}
		if ruleType != RuleTypeRules {
			keys = append(keys, LangCommon)
		}

		for _, lang := range keys {
			a, err := first.Instance(NameTypeGeneric, ruleType, lang)
			require.NoError(t, err)

			b, err := second.Instance(NameTypeGeneric, ruleType, lang)
			require.NoError(t, err)

			require.Len(t, b, len(a))
			for i := range a {
				if diff := cmp.Diff(tupleOf(a[i]), tupleOf(b[i])); diff != "" {
					t.Fatalf("%s/%s rule %d mismatch (-first +second):\n%s", ruleType, lang, i, diff)
				}
			}
		}
	}
}

func TestNilRepository(t *testing.T) {
	t.Parallel()

	var repo *Repository

	_, err := repo.Instance(NameTypeGeneric, RuleTypeRules, "english")
	require.ErrorIs(t, err, ErrNilRepository)
	assert.Nil(t, repo.Diagnostics())
}
