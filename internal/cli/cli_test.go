package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/righte/pkg/dictionary"
	"github.com/bastiangx/righte/pkg/lookup"
	"github.com/bastiangx/righte/pkg/match"
	"github.com/bastiangx/righte/pkg/theory"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newEngine() *lookup.Engine {
	wl := dictionary.NewWordList([]string{"hello", "hell", "different", "plover"})
	return lookup.New(theory.NewCompiler(theory.Default()), match.NewTrieMatcher(wl))
}

func TestSplitStrokes(t *testing.T) {
	assert.Equal(t, []string{"HEL", "O"}, SplitStrokes("HEL/O", "/"))
	assert.Equal(t, []string{"HEL", "O", "TK"}, SplitStrokes(" HEL//O  TK/ ", "/"))
	assert.Equal(t, []string{"HEL", "O"}, SplitStrokes("HEL O", " "))
	assert.Empty(t, SplitStrokes("//", "/"))
	// an unset separator must not split strokes into single keys
	assert.Equal(t, []string{"HEL", "O", "TK"}, SplitStrokes("HEL/O TK", ""))
}

func TestStart(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(newEngine(), "/", false)
	h.SetIO(strings.NewReader("HEL/O\n\nTK/TP/R/-PBT\nPHRO/SRER/*/HEL\n"), &out)
	require.NoError(t, h.Start())
	assert.Equal(t, "hello\ndifferent\nplover * hell\n", out.String())
	assert.Equal(t, 3, h.requestCount)
}

func TestVerbose(t *testing.T) {
	var out bytes.Buffer
	h := NewInputHandler(newEngine(), "", true)
	h.SetIO(strings.NewReader("HEL/O/*/TKPW\n"), &out)
	require.NoError(t, h.Start())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "hello * TKPW", lines[0])
	assert.Contains(t, lines[1], "hello")
	assert.Contains(t, lines[1], "HEL/O")
	assert.Contains(t, lines[2], "*")
	assert.Contains(t, lines[3], "no word")
}
