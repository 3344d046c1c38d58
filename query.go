package vlist

import (
	"strings"
	"sync"
	"unicode"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// fzf-backed query matching for FilterList.
//
// syntax:
//
//	"foo"    fuzzy subsequence match
//	"'foo"   exact substring match
//	"^foo"   prefix match
//	"foo$"   suffix match
//	"!foo"   negated match (combines with the above)
//	"a b"    AND — every space-separated term must match
//	"a | b"  OR  — at least one pipe-separated alternative must match

func init() {
	algo.Init("default")
}

// The matcher writes into its slab, so each Score call checks one out for
// the duration of the call rather than sharing a package-level one.
var slabPool = sync.Pool{
	New: func() any { return util.MakeSlab(100*1024, 2048) },
}

type termKind int

const (
	termFuzzy termKind = iota
	termExact
	termPrefix
	termSuffix
)

type queryTerm struct {
	runes         []rune
	kind          termKind
	negated       bool
	caseSensitive bool
}

// Query is a parsed filter expression: alternatives of AND-ed terms.
// Parse once, score many.
type Query struct {
	alternatives [][]queryTerm
}

// ParseQuery parses a raw query string.
func ParseQuery(raw string) Query {
	var q Query
	for _, alt := range strings.Split(raw, " | ") {
		var terms []queryTerm
		for _, tok := range strings.Fields(alt) {
			terms = append(terms, parseQueryTerm(tok))
		}
		if len(terms) > 0 {
			q.alternatives = append(q.alternatives, terms)
		}
	}
	return q
}

// Empty reports whether the query has no terms and matches everything.
func (q Query) Empty() bool { return len(q.alternatives) == 0 }

// Score scores a candidate against the query. Higher is better; ok is false
// when the candidate does not match at all. Safe for concurrent use.
func (q Query) Score(candidate string) (score int, ok bool) {
	if q.Empty() {
		return 0, true
	}
	slab := slabPool.Get().(*util.Slab)
	defer slabPool.Put(slab)
	chars := util.ToChars([]byte(candidate))
	best := -1
	for _, terms := range q.alternatives {
		total, matched := 0, true
		for i := range terms {
			s, m := terms[i].score(&chars, slab)
			if !m {
				matched = false
				break
			}
			total += s
		}
		if matched && total > best {
			best = total
			ok = true
		}
	}
	return best, ok
}

func parseQueryTerm(tok string) queryTerm {
	t := queryTerm{kind: termFuzzy}
	if len(tok) > 1 && tok[0] == '!' {
		t.negated = true
		tok = tok[1:]
	}
	switch {
	case len(tok) > 1 && tok[0] == '\'':
		t.kind = termExact
		tok = tok[1:]
	case len(tok) > 1 && tok[0] == '^':
		t.kind = termPrefix
		tok = tok[1:]
	case len(tok) > 1 && tok[len(tok)-1] == '$':
		t.kind = termSuffix
		tok = tok[:len(tok)-1]
	}
	// Smart case: a lowercase pattern matches case-insensitively.
	t.caseSensitive = strings.ContainsFunc(tok, unicode.IsUpper)
	if !t.caseSensitive {
		tok = strings.ToLower(tok)
	}
	t.runes = []rune(tok)
	return t
}

func (t *queryTerm) score(chars *util.Chars, slab *util.Slab) (int, bool) {
	match := algo.FuzzyMatchV2
	switch t.kind {
	case termExact:
		match = algo.ExactMatchNaive
	case termPrefix:
		match = algo.PrefixMatch
	case termSuffix:
		match = algo.SuffixMatch
	}
	result, _ := match(t.caseSensitive, false, true, chars, t.runes, false, slab)
	if t.negated {
		return 0, result.Start < 0
	}
	if result.Start < 0 {
		return 0, false
	}
	return result.Score, true
}
