package theory

import (
	"github.com/bastiangx/righte/pkg/pattern"
)

// vowelsPattern spells a vowel cluster. "i" may also be "y"; in two
// letter clusters "u" may also be "w".
func vowelsPattern(vowels string) pattern.Pattern {
	elems := make([]pattern.Pattern, 0, len(vowels))
	for i := 0; i < len(vowels); i++ {
		c := vowels[i]
		switch {
		case c == 'i':
			elems = append(elems, pattern.NewAlt(pattern.Lit('i'), pattern.Lit('y')))
		case c == 'u' && len(vowels) > 1:
			elems = append(elems, pattern.NewAlt(pattern.Lit('u'), pattern.Lit('w')))
		default:
			elems = append(elems, pattern.Lit(c))
		}
	}
	return pattern.NewSeq(elems...)
}

// clustersPattern matches any of the clusters. A two letter cluster
// matches its letters in either order followed by an optional third vowel.
func clustersPattern(clusters []string) pattern.Pattern {
	choices := make([]pattern.Pattern, 0, len(clusters))
	for _, vc := range clusters {
		if len(vc) != 2 {
			choices = append(choices, vowelsPattern(vc))
			continue
		}
		choice := vowelsPattern(vc)
		if vc[0] != vc[1] {
			choice = pattern.NewAlt(choice, vowelsPattern(string([]byte{vc[1], vc[0]})))
		}
		choices = append(choices, pattern.NewSeq(choice, pattern.OptW{}))
	}
	return pattern.NewAlt(choices...)
}

// untuckPattern lets the "i" of a cluster sound after the right bank
// chord, as in "aty" written with AU and T. Clusters without "i" add
// nothing.
func untuckPattern(clusters []string, right pattern.Pattern) []pattern.Pattern {
	var out []pattern.Pattern
	for _, vc := range clusters {
		rest, ok := removeFirst(vc, 'i')
		if !ok {
			continue
		}
		elems := []pattern.Pattern{vowelsPattern(rest)}
		if len(vc) > 1 {
			elems = append(elems, pattern.OptW{})
		}
		elems = append(elems, right, vowelsPattern("i"))
		out = append(out, pattern.NewSeq(elems...))
	}
	return out
}

func removeFirst(s string, c byte) (string, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return s[:i] + s[i+1:], true
		}
	}
	return s, false
}
