package theory

import (
	"strings"

	"github.com/bastiangx/righte/pkg/pattern"
)

// Position locates a stroke inside the sequence being stitched.
type Position struct {
	Index int
	Last  bool
}

// Fragment is the compiled form of one stroke.
//
// Left, Vowel and Right are the per bank patterns; Pattern is the whole
// stroke including the alternatives that span banks. A whole-stroke
// fragment only sets Pattern.
type Fragment struct {
	Stroke Stroke
	Left   pattern.Pattern
	Vowel  pattern.Pattern
	Right  pattern.Pattern

	Pattern pattern.Pattern
	// Whole is set for strokes spelled by the fragments table.
	Whole bool
	// OpensWithConsonant is set when the stroke does not start on a
	// chorded vowel.
	OpensWithConsonant bool
	// ClosesWithVowel is set when the stroke ends on a chorded vowel.
	ClosesWithVowel bool
}

// Compiler turns classified strokes into fragments.
type Compiler struct {
	theory *Theory
}

// NewCompiler returns a compiler over t.
func NewCompiler(t *Theory) *Compiler {
	return &Compiler{theory: t}
}

// Theory returns the tables the compiler reads.
func (c *Compiler) Theory() *Theory {
	return c.theory
}

// Compile builds the fragment of s at pos.
func (c *Compiler) Compile(s Stroke, pos Position) (Fragment, error) {
	if p, ok := c.theory.Fragment(s.String()); ok {
		return Fragment{
			Stroke:             s,
			Pattern:            p,
			Whole:              true,
			OpensWithConsonant: true,
		}, nil
	}

	if pos.Index > 0 && s.Left == "" && s.Vowel != "" && s.Right != "" {
		return Fragment{}, &CompileError{Stroke: s.Raw, Bank: BankVowel, Chord: s.Vowel,
			Reason: "vowel and right bank without left bank must start a word"}
	}
	if pos.Index > 0 && strings.Contains(s.Left, "+") && s.Left != "+" {
		return Fragment{}, &CompileError{Stroke: s.Raw, Bank: BankLeft, Chord: s.Left,
			Reason: "+ with other left bank keys must start a word"}
	}

	left, ok := c.theory.Left(s.Left)
	if !ok {
		return Fragment{}, &CompileError{Stroke: s.Raw, Bank: BankLeft, Chord: s.Left}
	}
	clusters, ok := c.theory.Vowels(s.Vowel)
	if !ok {
		return Fragment{}, &CompileError{Stroke: s.Raw, Bank: BankVowel, Chord: s.Vowel}
	}
	right, ok := c.theory.Right(s.Right)
	if !ok {
		return Fragment{}, &CompileError{Stroke: s.Raw, Bank: BankRight, Chord: s.Right}
	}
	vowel := clustersPattern(clusters)

	tails := []pattern.Pattern{pattern.NewSeq(vowel, right)}
	if pos.Last {
		tails = append(tails, untuckPattern(clusters, right)...)
	}
	if s.Vowel == "" && c.theory.ingChord != "" && s.Right == c.theory.ingChord {
		tails = append(tails, pattern.Literal("ing"))
	}

	return Fragment{
		Stroke:             s,
		Left:               left,
		Vowel:              vowel,
		Right:              right,
		Pattern:            pattern.NewSeq(left, pattern.NewAlt(tails...)),
		OpensWithConsonant: s.Left != "" || s.Vowel == "",
		ClosesWithVowel:    s.Vowel != "" && s.Right == "",
	}, nil
}

// CompileAll classifies and compiles a stroke sequence as one word.
func (c *Compiler) CompileAll(strokes []string) ([]Fragment, error) {
	frags := make([]Fragment, 0, len(strokes))
	for i, raw := range strokes {
		s, err := Classify(raw)
		if err != nil {
			return nil, err
		}
		frag, err := c.Compile(s, Position{Index: i, Last: i == len(strokes)-1})
		if err != nil {
			return nil, err
		}
		frags = append(frags, frag)
	}
	return frags, nil
}
