/*
Package lookup turns stroke sequences into words.

An Engine classifies every stroke, splits the input at strokes outside
the key layout, cuts each remaining run into words by greedy longest
match against the word list and joins the pieces into text.

Engines hold only read-only state and may be shared between goroutines.
*/
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/righte/pkg/match"
	"github.com/bastiangx/righte/pkg/theory"
)

// ErrUntranslatable is returned by Translate when strokes are left over.
var ErrUntranslatable = errors.New("strokes not translatable")

// PassThrough renders strokes the theory does not recognize.
type PassThrough interface {
	Render(stroke string) string
}

// PassThroughFunc adapts a function to PassThrough.
type PassThroughFunc func(stroke string) string

func (f PassThroughFunc) Render(stroke string) string { return f(stroke) }

// RawStroke renders a stroke as itself.
var RawStroke PassThrough = PassThroughFunc(func(stroke string) string { return stroke })

// Result is the outcome of a lookup.
type Result struct {
	Segments []Segment
	Text     string
	// Residue lists recognized strokes that no word absorbed.
	Residue []string
}

// Engine translates stroke sequences with one theory and one word list.
type Engine struct {
	compiler    *theory.Compiler
	matcher     match.Matcher
	passThrough PassThrough
	maxStrokes  int
}

// Option configures an Engine.
type Option func(*Engine)

// WithPassThrough sets how unrecognized strokes are rendered.
func WithPassThrough(p PassThrough) Option {
	return func(e *Engine) {
		if p != nil {
			e.passThrough = p
		}
	}
}

// WithMaxStrokes caps how many strokes one word may span; 0 means no cap.
func WithMaxStrokes(n int) Option {
	return func(e *Engine) {
		if n >= 0 {
			e.maxStrokes = n
		}
	}
}

// New returns an engine compiling with c and matching with m.
func New(c *theory.Compiler, m match.Matcher, opts ...Option) *Engine {
	e := &Engine{
		compiler:    c,
		matcher:     m,
		passThrough: RawStroke,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Lookup translates strokes. It never fails: strokes outside the key
// layout pass through and strokes no word absorbs are reported as residue.
func (e *Engine) Lookup(strokes []string) Result {
	var res Result
	var run []theory.Stroke
	flush := func() {
		if len(run) > 0 {
			res.Segments = append(res.Segments, e.segment(run)...)
			run = nil
		}
	}
	for _, raw := range strokes {
		s, err := theory.Classify(raw)
		if err != nil {
			flush()
			res.Segments = append(res.Segments, Segment{
				Kind:    SegmentPassThrough,
				Strokes: []string{raw},
				Text:    e.passThrough.Render(raw),
			})
			continue
		}
		run = append(run, s)
	}
	flush()

	pieces := make([]string, 0, len(res.Segments))
	for _, seg := range res.Segments {
		if seg.Kind == SegmentResidue {
			res.Residue = append(res.Residue, seg.Strokes...)
		}
		pieces = append(pieces, seg.Text)
	}
	res.Text = Join(pieces)
	return res
}

// Translate returns the text of strokes, or ErrUntranslatable when any
// recognized stroke is left over.
func (e *Engine) Translate(strokes []string) (string, error) {
	if len(strokes) == 0 {
		return "", fmt.Errorf("%w: no strokes", ErrUntranslatable)
	}
	res := e.Lookup(strokes)
	if len(res.Residue) > 0 {
		return res.Text, fmt.Errorf("%w: %s", ErrUntranslatable, strings.Join(res.Residue, "/"))
	}
	return res.Text, nil
}

// Pattern returns the stitched pattern of strokes taken as one word.
func (e *Engine) Pattern(strokes []string) (Stitched, error) {
	frags, err := e.compiler.CompileAll(strokes)
	if err != nil {
		return Stitched{}, err
	}
	return Stitch(frags, e.compiler.Theory().TrailingE), nil
}

// Join concatenates pieces with single spaces. A piece starting with
// "{^}" attaches to the one before it and a piece ending with "{^}"
// attaches to the one after it.
func Join(pieces []string) string {
	var b strings.Builder
	glue := false
	for _, p := range pieces {
		attachPrev := strings.HasPrefix(p, attachMark)
		attachNext := strings.HasSuffix(p, attachMark)
		text := strings.TrimPrefix(p, attachMark)
		if attachNext && len(p) > len(attachMark) {
			text = strings.TrimSuffix(text, attachMark)
		}
		if text == "" {
			glue = glue || attachNext
			continue
		}
		if b.Len() > 0 && !attachPrev && !glue {
			b.WriteByte(' ')
		}
		b.WriteString(text)
		glue = attachNext
	}
	return b.String()
}

const attachMark = "{^}"
