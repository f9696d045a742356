/*
Package theory holds the Right E key layout and turns single strokes into
spelling pattern fragments.

A Theory is built once from a Spec (the versioned table data) and is
read-only afterwards, so one value can serve any number of concurrent
lookups:

	t := theory.Default()
	c := theory.NewCompiler(t)
	s, _ := theory.Classify("HEL")
	frag, err := c.Compile(s, theory.Position{Index: 0, Last: true})

Classify errors match ErrUnrecognizedKey; Compile errors match ErrCompile.
*/
package theory

import (
	"fmt"
	"sort"

	"github.com/bastiangx/righte/pkg/pattern"
)

// Theory is a compiled, immutable set of chord tables.
type Theory struct {
	Name      string
	Version   int
	TrailingE bool

	left      map[string]pattern.Pattern
	right     map[string]pattern.Pattern
	vowels    map[string][]string
	fragments map[string]pattern.Pattern
	ingChord  string
}

// New validates spec and compiles its tables.
func New(spec Spec) (*Theory, error) {
	left, err := buildBank(LeftKeys, spec.Left)
	if err != nil {
		return nil, fmt.Errorf("left bank: %w", err)
	}
	right, err := buildBank(RightKeys, spec.Right)
	if err != nil {
		return nil, fmt.Errorf("right bank: %w", err)
	}
	if spec.Right.IngChord != "" && !canonical(RightKeys, spec.Right.IngChord) {
		return nil, fmt.Errorf("%w: ing chord %q is not a right bank chord", ErrInvalidTheory, spec.Right.IngChord)
	}

	vowels := make(map[string][]string, len(spec.Vowels))
	for chord, clusters := range spec.Vowels {
		if chord == "" || !canonical(VowelKeys, chord) {
			return nil, fmt.Errorf("%w: vowel chord %q is not in steno order %q", ErrInvalidTheory, chord, VowelKeys)
		}
		for _, vc := range clusters {
			for i := 0; i < len(vc); i++ {
				if !pattern.IsVowel(vc[i]) {
					return nil, fmt.Errorf("%w: vowel chord %s: %q is not a vowel", ErrInvalidTheory, chord, vc[i])
				}
			}
		}
		vowels[chord] = append([]string(nil), clusters...)
	}
	for i := 0; i < len(VowelKeys); i++ {
		if _, ok := vowels[VowelKeys[i:i+1]]; !ok {
			return nil, fmt.Errorf("%w: missing vowel entry for %c", ErrInvalidTheory, VowelKeys[i])
		}
	}

	fragments := make(map[string]pattern.Pattern, len(spec.Fragments))
	for raw, word := range spec.Fragments {
		s, err := Classify(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: fragment %q: %v", ErrInvalidTheory, raw, err)
		}
		p, err := pattern.Parse(word)
		if err != nil {
			return nil, fmt.Errorf("%w: fragment %q: %v", ErrInvalidTheory, raw, err)
		}
		fragments[s.String()] = p
	}

	return &Theory{
		Name:      spec.Name,
		Version:   spec.Version,
		TrailingE: spec.TrailingE,
		left:      left,
		right:     right,
		vowels:    vowels,
		fragments: fragments,
		ingChord:  spec.Right.IngChord,
	}, nil
}

func buildBank(order string, spec BankSpec) (map[string]pattern.Pattern, error) {
	table, err := compileColumns(order, spec.Columns)
	if err != nil {
		return nil, err
	}
	if spec.ExpandFR {
		expandFR(table)
	}
	for _, chord := range sortedKeys(spec.Replace) {
		if !canonical(order, chord) {
			return nil, fmt.Errorf("%w: replaced chord %q is not in steno order %q", ErrInvalidTheory, chord, order)
		}
		p, err := pattern.Parse(spec.Replace[chord])
		if err != nil {
			return nil, fmt.Errorf("%w: replaced chord %s: %v", ErrInvalidTheory, chord, err)
		}
		table.set(chord, p)
	}
	for _, chord := range sortedKeys(spec.Extra) {
		existing, ok := table.get(chord)
		if !ok {
			return nil, fmt.Errorf("%w: extra chord %q has no base entry", ErrInvalidTheory, chord)
		}
		p, err := pattern.Parse(spec.Extra[chord])
		if err != nil {
			return nil, fmt.Errorf("%w: extra chord %s: %v", ErrInvalidTheory, chord, err)
		}
		table.set(chord, pattern.NewAlt(existing, p))
	}
	return table.pats, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Left returns the pattern of a left bank chord.
func (t *Theory) Left(chord string) (pattern.Pattern, bool) {
	p, ok := t.left[chord]
	return p, ok
}

// Right returns the pattern of a right bank chord.
func (t *Theory) Right(chord string) (pattern.Pattern, bool) {
	p, ok := t.right[chord]
	return p, ok
}

// Vowels returns the vowel clusters of a vowel chord. The empty chord is
// the empty cluster.
func (t *Theory) Vowels(chord string) ([]string, bool) {
	if chord == "" {
		return []string{""}, true
	}
	vcs, ok := t.vowels[chord]
	return vcs, ok
}

// Fragment returns the whole-stroke spelling of a normalized stroke.
func (t *Theory) Fragment(stroke string) (pattern.Pattern, bool) {
	p, ok := t.fragments[stroke]
	return p, ok
}

// Stats reports table sizes.
func (t *Theory) Stats() map[string]int {
	return map[string]int{
		"leftChords":  len(t.left),
		"rightChords": len(t.right),
		"vowelChords": len(t.vowels),
		"fragments":   len(t.fragments),
	}
}
