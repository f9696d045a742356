package match

import (
	"github.com/bastiangx/righte/pkg/dictionary"
	"github.com/bastiangx/righte/pkg/pattern"
)

// TrieMatcher walks the pattern over the prefix index of a word list,
// keeping only the prefixes some listed word starts with.
type TrieMatcher struct {
	list *dictionary.WordList
}

// NewTrieMatcher returns a matcher over list.
func NewTrieMatcher(list *dictionary.WordList) *TrieMatcher {
	return &TrieMatcher{list: list}
}

// First returns the listed word of lowest rank that p spells exactly.
func (m *TrieMatcher) First(p pattern.Pattern) (Match, bool) {
	var best Match
	found := false
	for _, prefix := range m.advance([]string{""}, p) {
		rank, ok := m.list.Rank(prefix)
		if !ok {
			continue
		}
		if !found || rank < best.Rank {
			best, found = Match{Word: prefix, Rank: rank}, true
		}
	}
	return best, found
}

// advance returns every live prefix reachable from in by consuming p.
func (m *TrieMatcher) advance(in []string, p pattern.Pattern) []string {
	if len(in) == 0 {
		return nil
	}
	switch v := p.(type) {
	case pattern.Lit:
		c := byte(v)
		var out []string
		for _, s := range in {
			one := s + string(c)
			if !m.list.HasPrefix(one) {
				continue
			}
			out = append(out, one)
			if !pattern.IsVowel(c) {
				if two := one + string(c); m.list.HasPrefix(two) {
					out = append(out, two)
				}
			}
		}
		return dedupe(out)
	case pattern.Gap:
		one := m.extend(in, pattern.Vowels)
		two := m.extend(one, pattern.Vowels)
		return dedupe(in, one, two)
	case pattern.OptE:
		return dedupe(in, m.extend(in, "e"))
	case pattern.OptW:
		return dedupe(in, m.extend(in, pattern.Vowels+"w"))
	case pattern.Seq:
		cur := in
		for _, e := range v {
			cur = m.advance(cur, e)
			if len(cur) == 0 {
				return nil
			}
		}
		return cur
	case pattern.Alt:
		branches := make([][]string, 0, len(v))
		for _, e := range v {
			branches = append(branches, m.advance(in, e))
		}
		return dedupe(branches...)
	}
	return nil
}

// extend appends each letter of set to each prefix, keeping live ones.
func (m *TrieMatcher) extend(in []string, set string) []string {
	var out []string
	for _, s := range in {
		for i := 0; i < len(set); i++ {
			if next := s + set[i:i+1]; m.list.HasPrefix(next) {
				out = append(out, next)
			}
		}
	}
	return out
}

func dedupe(groups ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, g := range groups {
		for _, s := range g {
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}
