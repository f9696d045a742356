package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorsFlatten(t *testing.T) {
	assert.Equal(t, Lit('a'), NewAlt(Lit('a')))
	assert.Equal(t, Lit('a'), NewSeq(Lit('a')))
	assert.Equal(t, Alt{Lit('b'), Lit('c'), Lit('d')}, NewAlt(NewAlt(Lit('b'), Lit('c')), Lit('d')))
	assert.Equal(t, Seq{Lit('b'), Lit('c'), Lit('d')}, NewSeq(NewSeq(Lit('b'), Lit('c')), Lit('d')))
	assert.True(t, IsEmpty(NewSeq()))
	assert.False(t, IsEmpty(NewAlt()))
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		want Pattern
	}{
		{"a(b|c)", Seq{Lit('a'), Alt{Lit('b'), Lit('c')}}},
		{"g(|h)|h", Alt{Seq{Lit('g'), Alt{Seq{}, Lit('h')}}, Lit('h')}},
		{"p!l", Seq{Lit('p'), Gap{}, Lit('l')}},
		{"cE", Seq{Lit('c'), OptE{}}},
		{"W", OptW{}},
		{"", Seq{}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := Parse(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, text := range []string{"d)e", "(ab", "a1", "A"} {
		_, err := Parse(text)
		require.Error(t, err, text)
		assert.True(t, errors.Is(err, ErrSyntax), text)
	}
}

func TestRegexpSemantics(t *testing.T) {
	tests := []struct {
		text  string
		match []string
		miss  []string
	}{
		{"ab", []string{"ab", "abb"}, []string{"aab", "a", "abc"}},
		{"c!c", []string{"cc", "cac", "ceic", "ccc"}, []string{"couac", "cxc"}},
		{"cE", []string{"c", "ce"}, []string{"cee"}},
		{"cW", []string{"c", "ce", "cw"}, []string{"cf"}},
		{"h(e|a)l", []string{"hel", "hall"}, []string{"hol"}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			re, err := Compile(MustParse(tt.text))
			require.NoError(t, err)
			for _, w := range tt.match {
				assert.True(t, re.MatchString(w), "%s should match %s", tt.text, w)
			}
			for _, w := range tt.miss {
				assert.False(t, re.MatchString(w), "%s should not match %s", tt.text, w)
			}
		})
	}
}

func TestNeverMatches(t *testing.T) {
	re, err := Compile(NewSeq(Lit('a'), Never()))
	require.NoError(t, err)
	assert.False(t, re.MatchString("a"))
	assert.False(t, re.MatchString(""))
}

func TestStringRoundTrip(t *testing.T) {
	for _, text := range []string{"a(b|c)", "x|k!s", "(|c)tion|sion|cean", "c(|h|k)", "t!hr"} {
		p := MustParse(text)
		again, err := Parse(String(p))
		require.NoError(t, err)
		assert.Equal(t, Regexp(p), Regexp(again), text)
	}
}
