package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/righte/pkg/dictionary"
	"github.com/bastiangx/righte/pkg/pattern"
)

var testWords = []string{
	"the", "of", "and", "to", "in", "help", "hello", "hell", "different",
	"plover", "hall", "dell", "dial", "deal", "sing", "sign", "ding",
	"fell", "feel", "file", "filler", "bell", "ball", "bill", "tell",
	"all", "ill", "heel", "held", "he", "hello",
}

func matchers() map[string]Matcher {
	wl := dictionary.NewWordList(testWords)
	return map[string]Matcher{
		"trie": NewTrieMatcher(wl),
		"scan": NewScanMatcher(wl),
	}
}

func TestFirst(t *testing.T) {
	tests := []struct {
		text string
		want string
		rank int
	}{
		{"hel", "hell", 7},
		{"h!l", "hell", 7},
		{"h!lE", "hell", 7},
		{"h!l!", "hello", 6},
		{"d!f!r!n!t", "different", 8},
		{"p!l!v!rE", "plover", 9},
		{"d(i|e)W!l", "dell", 11},
		{"s!gn", "sign", 15},
		{"s(i|y)ng", "sing", 14},
		{"(b|f)!l", "fell", 17},
		{"he", "he", 29},
		{"", "", 0},
	}
	for name, m := range matchers() {
		for _, tt := range tests {
			t.Run(name+"/"+tt.text, func(t *testing.T) {
				got, ok := m.First(pattern.MustParse(tt.text))
				if tt.want == "" {
					assert.False(t, ok)
					return
				}
				require.True(t, ok)
				assert.Equal(t, tt.want, got.Word)
				assert.Equal(t, tt.rank, got.Rank)
			})
		}
	}
}

func TestNoMatch(t *testing.T) {
	for name, m := range matchers() {
		t.Run(name, func(t *testing.T) {
			for _, text := range []string{"x", "hel!x", "zz", "helpe"} {
				_, ok := m.First(pattern.MustParse(text))
				assert.False(t, ok, text)
			}
			_, ok := m.First(pattern.Never())
			assert.False(t, ok)
		})
	}
}

func TestListOrderDecides(t *testing.T) {
	p := pattern.MustParse("(b|t)!l")
	first := dictionary.NewWordList([]string{"tell", "bell", "ball"})
	second := dictionary.NewWordList([]string{"ball", "bell", "tell"})

	for _, build := range []func(*dictionary.WordList) Matcher{
		func(wl *dictionary.WordList) Matcher { return NewTrieMatcher(wl) },
		func(wl *dictionary.WordList) Matcher { return NewScanMatcher(wl) },
	} {
		got, ok := build(first).First(p)
		require.True(t, ok)
		assert.Equal(t, "tell", got.Word)

		got, ok = build(second).First(p)
		require.True(t, ok)
		assert.Equal(t, "ball", got.Word)
	}
}

func TestDoubledConsonants(t *testing.T) {
	wl := dictionary.NewWordList([]string{"lll", "ll", "l"})
	for name, m := range map[string]Matcher{"trie": NewTrieMatcher(wl), "scan": NewScanMatcher(wl)} {
		t.Run(name, func(t *testing.T) {
			got, ok := m.First(pattern.MustParse("ll"))
			require.True(t, ok)
			assert.Equal(t, "lll", got.Word)

			got, ok = m.First(pattern.MustParse("l"))
			require.True(t, ok)
			assert.Equal(t, "ll", got.Word)
		})
	}
}

func TestTrieAgreesWithScan(t *testing.T) {
	wl := dictionary.NewWordList(testWords)
	trie, scan := NewTrieMatcher(wl), NewScanMatcher(wl)
	for _, text := range []string{
		"h!l", "h!lE", "!l!", "!", "f!l!r", "(h|b|f|t)!l", "d!!l", "hW", "E", "W!lE",
		"(s|ex)!g(|h)|s!ing", "t!h!E", "a!d", "o!f",
	} {
		p := pattern.MustParse(text)
		want, wantOK := scan.First(p)
		got, gotOK := trie.First(p)
		assert.Equal(t, wantOK, gotOK, text)
		assert.Equal(t, want, got, text)
	}
}

func TestNew(t *testing.T) {
	wl := dictionary.NewWordList(testWords)
	assert.IsType(t, &ScanMatcher{}, New(StrategyScan, wl))
	assert.IsType(t, &TrieMatcher{}, New(StrategyTrie, wl))
	assert.IsType(t, &TrieMatcher{}, New("", wl))
}
