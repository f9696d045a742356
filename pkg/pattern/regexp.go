package pattern

import (
	"fmt"
	"regexp"
	"strings"
)

// neverRE is an RE2 class no input can satisfy.
const neverRE = `[^\x00-\x{10FFFF}]`

// Regexp renders p as an anchored RE2 expression.
func Regexp(p Pattern) string {
	var b strings.Builder
	b.WriteString("^(?:")
	writeRE(&b, p)
	b.WriteString(")$")
	return b.String()
}

// Compile renders and compiles p.
func Compile(p Pattern) (*regexp.Regexp, error) {
	re, err := regexp.Compile(Regexp(p))
	if err != nil {
		return nil, fmt.Errorf("compile pattern: %w", err)
	}
	return re, nil
}

func writeRE(b *strings.Builder, p Pattern) {
	switch v := p.(type) {
	case Lit:
		b.WriteByte(byte(v))
		if !IsVowel(byte(v)) {
			b.WriteByte(byte(v))
			b.WriteByte('?')
		}
	case Gap:
		b.WriteString("[" + Vowels + "]{0,2}")
	case OptE:
		b.WriteString("e?")
	case OptW:
		b.WriteString("[" + Vowels + "w]?")
	case Seq:
		for _, e := range v {
			writeRE(b, e)
		}
	case Alt:
		if len(v) == 0 {
			b.WriteString(neverRE)
			return
		}
		b.WriteString("(?:")
		for i, c := range v {
			if i > 0 {
				b.WriteByte('|')
			}
			writeRE(b, c)
		}
		b.WriteByte(')')
	}
}

// String renders p back into table syntax. The table syntax cannot spell
// Never, which renders as "".
func String(p Pattern) string {
	var b strings.Builder
	writeText(&b, p)
	return b.String()
}

func writeText(b *strings.Builder, p Pattern) {
	switch v := p.(type) {
	case Lit:
		b.WriteByte(byte(v))
	case Gap:
		b.WriteByte('!')
	case OptE:
		b.WriteByte('E')
	case OptW:
		b.WriteByte('W')
	case Seq:
		for _, e := range v {
			if _, ok := e.(Alt); ok {
				b.WriteByte('(')
				writeText(b, e)
				b.WriteByte(')')
				continue
			}
			writeText(b, e)
		}
	case Alt:
		for i, c := range v {
			if i > 0 {
				b.WriteByte('|')
			}
			writeText(b, c)
		}
	}
}
