/*
Package pattern is the spelling pattern language strokes compile into.

A pattern is a small tree of literals, sequences and alternations plus a
few theory specific matchers:

	Lit('l')   "l" or "ll" (consonants may double, vowels never do)
	Gap{}      zero, one or two of "aeiou"
	OptE{}     "" or "e"
	OptW{}     "" or one of "aeiouw"

Patterns are written in tables with a compact text syntax, see Parse.
Matching is always anchored: a pattern either spells a whole word or it
does not match it at all.
*/
package pattern

import "strings"

// Vowels are the letters a Gap may consume and that never double.
const Vowels = "aeiou"

// Pattern is one node of a spelling pattern.
type Pattern interface {
	pattern()
}

// Lit matches a single lowercase letter. Consonants also match a
// doubled copy of themselves.
type Lit byte

// Seq matches its elements one after another.
type Seq []Pattern

// Alt matches any one of its choices.
type Alt []Pattern

// Gap matches up to two vowels.
type Gap struct{}

// OptE optionally matches an "e".
type OptE struct{}

// OptW optionally matches one of "aeiouw".
type OptW struct{}

func (Lit) pattern()  {}
func (Seq) pattern()  {}
func (Alt) pattern()  {}
func (Gap) pattern()  {}
func (OptE) pattern() {}
func (OptW) pattern() {}

// IsVowel reports whether c is one of Vowels.
func IsVowel(c byte) bool {
	return strings.IndexByte(Vowels, c) >= 0
}

// Empty returns the pattern matching only the empty string.
func Empty() Pattern {
	return Seq{}
}

// Never returns the pattern that matches nothing.
func Never() Pattern {
	return Alt{}
}

// NewSeq builds a sequence, flattening nested sequences.
// A single element is returned as is.
func NewSeq(elems ...Pattern) Pattern {
	out := make(Seq, 0, len(elems))
	for _, e := range elems {
		if s, ok := e.(Seq); ok {
			out = append(out, s...)
			continue
		}
		out = append(out, e)
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// NewAlt builds an alternation, flattening nested alternations.
// A single choice is returned as is.
func NewAlt(choices ...Pattern) Pattern {
	out := make(Alt, 0, len(choices))
	for _, c := range choices {
		if a, ok := c.(Alt); ok {
			out = append(out, a...)
			continue
		}
		out = append(out, c)
	}
	if len(out) == 1 {
		return out[0]
	}
	return out
}

// Literal spells word letter by letter.
func Literal(word string) Pattern {
	elems := make([]Pattern, 0, len(word))
	for i := 0; i < len(word); i++ {
		elems = append(elems, Lit(word[i]))
	}
	return NewSeq(elems...)
}

// IsEmpty reports whether p is the empty sequence.
func IsEmpty(p Pattern) bool {
	s, ok := p.(Seq)
	return ok && len(s) == 0
}
