package pattern

import (
	"errors"
	"fmt"
)

// ErrSyntax is returned for malformed pattern text.
var ErrSyntax = errors.New("pattern syntax error")

// Parse compiles pattern text.
//
// Lowercase letters are literals, "|" separates alternatives, parentheses
// group, "!" is a Gap, "E" is OptE and "W" is OptW. An empty alternative
// is allowed, so "g(|h)" matches "g" and "gh".
func Parse(text string) (Pattern, error) {
	p, rest, err := parseAlt(text, 0)
	if err != nil {
		return nil, err
	}
	if rest != len(text) {
		return nil, fmt.Errorf("%w: unbalanced parentheses in %q", ErrSyntax, text)
	}
	return p, nil
}

// MustParse is Parse for table literals known to be valid.
func MustParse(text string) Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return p
}

// parseAlt reads until an unmatched ')' or the end of text and returns
// the index of that ')' (or len(text)).
func parseAlt(text string, i int) (Pattern, int, error) {
	var choices []Pattern
	current := []Pattern{}
	for i < len(text) {
		c := text[i]
		switch {
		case c == '(':
			inner, next, err := parseAlt(text, i+1)
			if err != nil {
				return nil, 0, err
			}
			if next >= len(text) {
				return nil, 0, fmt.Errorf("%w: missing ')' in %q", ErrSyntax, text)
			}
			current = append(current, inner)
			i = next + 1
		case c == '|':
			choices = append(choices, NewSeq(current...))
			current = []Pattern{}
			i++
		case c == ')':
			return NewAlt(append(choices, NewSeq(current...))...), i, nil
		case c == '!':
			current = append(current, Gap{})
			i++
		case c == 'E':
			current = append(current, OptE{})
			i++
		case c == 'W':
			current = append(current, OptW{})
			i++
		case c >= 'a' && c <= 'z':
			current = append(current, Lit(c))
			i++
		default:
			return nil, 0, fmt.Errorf("%w: unexpected %q at %d in %q", ErrSyntax, c, i, text)
		}
	}
	return NewAlt(append(choices, NewSeq(current...))...), i, nil
}
