package lookup

import (
	"github.com/bastiangx/righte/pkg/pattern"
	"github.com/bastiangx/righte/pkg/theory"
)

// Stitched is the pattern spelled by a sequence of strokes.
type Stitched struct {
	Pattern pattern.Pattern
}

// String returns the anchored regular expression of the pattern.
func (s Stitched) String() string {
	return pattern.Regexp(s.Pattern)
}

// Stitch joins fragments in stroke order. A stroke opening on consonants
// that follows a stroke not closing on a vowel is preceded by a gap of
// up to two implied vowels. trailingE closes the word with an optional e.
func Stitch(frags []theory.Fragment, trailingE bool) Stitched {
	elems := make([]pattern.Pattern, 0, 2*len(frags)+1)
	closedOnVowel := true
	gapPending := false
	for i, f := range frags {
		if i > 0 && !closedOnVowel && f.OpensWithConsonant && !gapPending {
			elems = append(elems, pattern.Gap{})
			gapPending = true
		}
		if !pattern.IsEmpty(f.Pattern) {
			elems = append(elems, f.Pattern)
			gapPending = false
		}
		closedOnVowel = f.ClosesWithVowel
	}
	if trailingE {
		elems = append(elems, pattern.OptE{})
	}
	return Stitched{Pattern: pattern.NewSeq(elems...)}
}
