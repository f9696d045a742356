package lookup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/righte/pkg/match"
	"github.com/bastiangx/righte/pkg/pattern"
	"github.com/bastiangx/righte/pkg/theory"
)

func TestStitch(t *testing.T) {
	gap := "[aeiou]{0,2}"
	tests := []struct {
		name    string
		strokes []string
		want    string
		gaps    int
	}{
		// the empty + stroke must not add a second gap
		{"one gap across empty stroke", []string{"HEL", "+", "TK"}, "hh?ell?" + gap + "dd?e?", 1},
		{"no gap after closing vowel", []string{"HE", "TK"}, "hh?edd?e?", 0},
		{"no gap before opening vowel", []string{"HEL", "O"}, "hh?ell?oe?", 0},
		{"gap after whole stroke", []string{"KWR", "TK"}, "yy?ou" + gap + "dd?e?", 1},
	}

	c := theory.NewCompiler(theory.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags, err := c.CompileAll(tt.strokes)
			require.NoError(t, err)
			got := Stitch(frags, true).String()
			assert.Equal(t, "^(?:"+tt.want+")$", got)
			assert.Equal(t, tt.gaps, strings.Count(got, gap))
		})
	}
}

func TestStitchWithoutTrailingE(t *testing.T) {
	frags, err := theory.NewCompiler(theory.Default()).CompileAll([]string{"HE", "TK"})
	require.NoError(t, err)
	assert.Equal(t, "^(?:hh?edd?)$", Stitch(frags, false).String())
	assert.Equal(t, "^(?:)$", Stitch(nil, false).String())
}

func TestStitchMatchesEnginePattern(t *testing.T) {
	c := theory.NewCompiler(theory.Default())
	e := newEngine(match.StrategyTrie, engineWords)
	strokes := []string{"TK", "TP", "R", "-PBT"}

	frags, err := c.CompileAll(strokes)
	require.NoError(t, err)
	stitched, err := e.Pattern(strokes)
	require.NoError(t, err)
	assert.Equal(t, pattern.Regexp(Stitch(frags, true).Pattern), stitched.String())
}

func TestGreedyPrefersThreeStrokesOverTwo(t *testing.T) {
	// deaf spells TK/TP, differ needs the third stroke
	words := []string{"deaf", "differ"}
	for _, strategy := range []match.Strategy{match.StrategyTrie, match.StrategyScan} {
		t.Run(string(strategy), func(t *testing.T) {
			e := newEngine(strategy, words)

			res := e.Lookup([]string{"TK", "TP", "R"})
			assert.Equal(t, "differ", res.Text)
			require.Len(t, res.Segments, 1)
			assert.Equal(t, []string{"TK", "TP", "R"}, res.Segments[0].Strokes)

			assert.Equal(t, "deaf", e.Lookup([]string{"TK", "TP"}).Text)
		})
	}
}
