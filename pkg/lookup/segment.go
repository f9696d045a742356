package lookup

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/righte/pkg/theory"
)

// SegmentKind tells what a segment of a lookup stands for.
type SegmentKind int

const (
	// SegmentWord is a run of strokes translated to one word.
	SegmentWord SegmentKind = iota
	// SegmentResidue is a recognized stroke no word could absorb.
	SegmentResidue
	// SegmentPassThrough is a stroke outside the theory's key layout.
	SegmentPassThrough
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentWord:
		return "word"
	case SegmentResidue:
		return "residue"
	case SegmentPassThrough:
		return "pass-through"
	}
	return "unknown"
}

// Segment is one piece of a lookup result.
type Segment struct {
	Kind    SegmentKind
	Strokes []string
	// Text is the word, the raw residue stroke or the pass-through rendering.
	Text string
	// Rank is the list position of a word segment.
	Rank int
	// Pattern is the regexp a word segment was matched with.
	Pattern string
}

// segment splits a run of recognized strokes into words, greedily taking
// the longest prefix that compiles and matches. A stroke that fails even
// on its own is left as residue.
func (e *Engine) segment(run []theory.Stroke) []Segment {
	var out []Segment
	for i := 0; i < len(run); {
		n := len(run) - i
		if e.maxStrokes > 0 && n > e.maxStrokes {
			n = e.maxStrokes
		}
		matched := false
		for k := n; k >= 1; k-- {
			part := run[i : i+k]
			st, ok := e.stitch(part)
			if !ok {
				continue
			}
			m, ok := e.matcher.First(st.Pattern)
			if !ok {
				continue
			}
			out = append(out, Segment{
				Kind:    SegmentWord,
				Strokes: raws(part),
				Text:    m.Word,
				Rank:    m.Rank,
				Pattern: st.String(),
			})
			i += k
			matched = true
			break
		}
		if !matched {
			log.Debugf("No word for stroke %s", run[i].Raw)
			out = append(out, Segment{
				Kind:    SegmentResidue,
				Strokes: []string{run[i].Raw},
				Text:    run[i].Raw,
			})
			i++
		}
	}
	return out
}

// stitch compiles strokes as one word. Strokes that cannot appear at
// their position make the whole sequence fail.
func (e *Engine) stitch(strokes []theory.Stroke) (Stitched, bool) {
	frags := make([]theory.Fragment, 0, len(strokes))
	for j, s := range strokes {
		f, err := e.compiler.Compile(s, theory.Position{Index: j, Last: j == len(strokes)-1})
		if err != nil {
			return Stitched{}, false
		}
		frags = append(frags, f)
	}
	return Stitch(frags, e.compiler.Theory().TrailingE), true
}

func raws(strokes []theory.Stroke) []string {
	out := make([]string, len(strokes))
	for i, s := range strokes {
		out[i] = s.Raw
	}
	return out
}
