package theory

import (
	"fmt"
	"strings"

	"github.com/bastiangx/righte/pkg/pattern"
)

// chordTable maps chords to patterns and remembers insertion order.
// Overwriting a chord keeps its original position.
type chordTable struct {
	order []string
	pats  map[string]pattern.Pattern
}

func newChordTable() *chordTable {
	return &chordTable{pats: make(map[string]pattern.Pattern)}
}

func (t *chordTable) set(chord string, p pattern.Pattern) {
	if _, ok := t.pats[chord]; !ok {
		t.order = append(t.order, chord)
	}
	t.pats[chord] = p
}

func (t *chordTable) get(chord string) (pattern.Pattern, bool) {
	p, ok := t.pats[chord]
	return p, ok
}

func (t *chordTable) update(other *chordTable) {
	for _, chord := range other.order {
		t.set(chord, other.pats[chord])
	}
}

// column is the chords of one column line and every key they span.
type column struct {
	keys   string
	chords *chordTable
}

// compileColumns expands column lines into every legal chord.
//
// A chord on a line combines with each chord of an earlier line whose key
// span it does not overlap, with a Gap between the two patterns. Later
// lines overwrite earlier ones, so when two decompositions spell the same
// chord the one reaching the rightmost column wins.
func compileColumns(order string, lines []string) (*chordTable, error) {
	var columns []column
	for _, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		chords := newChordTable()
		for _, field := range fields {
			chord, text, ok := strings.Cut(field, "=")
			if !ok || chord == "" {
				return nil, fmt.Errorf("%w: malformed chord %q", ErrInvalidTheory, field)
			}
			if !canonical(order, chord) {
				return nil, fmt.Errorf("%w: chord %q is not in steno order %q", ErrInvalidTheory, chord, order)
			}
			pat, err := pattern.Parse(text)
			if err != nil {
				return nil, fmt.Errorf("%w: chord %s: %v", ErrInvalidTheory, chord, err)
			}
			chords.set(chord, pat)
			for _, earlier := range columns {
				if strings.ContainsAny(chord, earlier.keys) {
					continue
				}
				for _, chord0 := range earlier.chords.order {
					chords.set(chord0+chord, pattern.NewSeq(earlier.chords.pats[chord0], pattern.Gap{}, pat))
				}
			}
		}
		columns = append(columns, column{keys: spannedKeys(order, chords), chords: chords})
	}

	table := newChordTable()
	table.set("", pattern.Empty())
	for _, c := range columns {
		table.update(c.chords)
	}
	return table, nil
}

func spannedKeys(order string, chords *chordTable) string {
	var set keySet
	for _, chord := range chords.order {
		for i := 0; i < len(chord); i++ {
			set.add(order, chord[i])
		}
	}
	return set.String(order)
}

// expandFR derives the F, R and FR forms of every right bank chord.
//
// F is f or v and may be s next to PBLGT. R is r, or l next to P or B,
// and may come after the rest of the chord. FR together can also be m or n.
func expandFR(table *chordTable) {
	base := append([]string(nil), table.order...)
	for _, chord := range base {
		pat := table.pats[chord]

		fPat := pattern.NewAlt(pattern.Lit('f'), pattern.Lit('v'))
		if chord == "Z" {
			fPat = pattern.NewAlt(pattern.Lit('v'), pattern.Lit('f'))
		}
		if strings.ContainsAny(chord, "PBLGT") {
			fPat = pattern.NewAlt(fPat, pattern.Lit('s'))
		}
		rPat := pattern.Pattern(pattern.Lit('r'))
		if strings.ContainsAny(chord, "PB") {
			rPat = pattern.NewAlt(pattern.Lit('r'), pattern.Lit('l'))
		}
		frPat := pattern.NewAlt(
			pattern.NewSeq(fPat, pattern.Gap{}, rPat),
			pattern.NewSeq(rPat, pattern.Gap{}, fPat),
		)
		core := keySubset(chord, "PBLG")
		if core != "PL" && core != "BG" {
			frPat = pattern.NewAlt(frPat, pattern.Lit('m'))
		}
		if core == "BG" {
			frPat = pattern.NewAlt(frPat, pattern.Lit('n'))
		}

		table.set("F"+chord, pattern.NewSeq(fPat, pattern.Gap{}, pat))
		table.set("R"+chord, pattern.NewAlt(
			pattern.NewSeq(rPat, pattern.Gap{}, pat),
			pattern.NewSeq(pat, pattern.Gap{}, pattern.Lit('r')),
		))
		table.set("FR"+chord, pattern.NewAlt(
			pattern.NewSeq(frPat, pattern.Gap{}, pat),
			pattern.NewSeq(fPat, pattern.Gap{}, pat, pattern.Gap{}, pattern.Lit('r')),
		))
	}
}

// keySubset returns the keys of chord that appear in keys, in chord order.
func keySubset(chord, keys string) string {
	var b strings.Builder
	for i := 0; i < len(chord); i++ {
		if strings.IndexByte(keys, chord[i]) >= 0 {
			b.WriteByte(chord[i])
		}
	}
	return b.String()
}
