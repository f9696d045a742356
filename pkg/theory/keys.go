package theory

import (
	"strings"
)

// Key banks in steno order. "+" is the continuation key at the far left.
const (
	LeftKeys  = "+STKPWHR"
	VowelKeys = "AOEU"
	RightKeys = "FRPBLGTSDZ"
)

// Bank names one of the three key groups.
type Bank int

const (
	BankLeft Bank = iota
	BankVowel
	BankRight
)

func (b Bank) String() string {
	switch b {
	case BankLeft:
		return "left"
	case BankVowel:
		return "vowel"
	case BankRight:
		return "right"
	}
	return "unknown"
}

// Stroke is one chord split into its banks. Each bank holds its keys in
// steno order without duplicates, so two strokes pressing the same keys
// compare equal.
type Stroke struct {
	Raw   string
	Left  string
	Vowel string
	Right string
}

// String returns the normalized steno notation of s.
func (s Stroke) String() string {
	var b strings.Builder
	b.WriteString(s.Left)
	b.WriteString(s.Vowel)
	if s.Vowel == "" && s.Right != "" {
		b.WriteByte('-')
	}
	b.WriteString(s.Right)
	return b.String()
}

// IsConsonantCluster reports whether s only uses the left bank.
func (s Stroke) IsConsonantCluster() bool {
	return s.Vowel == "" && s.Right == ""
}

// Classify partitions a stroke written in steno notation into banks.
//
// Keys before the first vowel or "-" belong to the left bank, keys after
// it to the right bank. Without a vowel or "-" every key must be a left
// bank key.
func Classify(raw string) (Stroke, error) {
	var left, vowel, right keySet
	bank := BankLeft
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '-':
			if bank == BankRight {
				return Stroke{}, &UnrecognizedKeyError{Stroke: raw, Key: c, Pos: i}
			}
			bank = BankRight
		case strings.IndexByte(VowelKeys, c) >= 0:
			if bank == BankRight {
				return Stroke{}, &UnrecognizedKeyError{Stroke: raw, Key: c, Pos: i}
			}
			bank = BankVowel
			vowel.add(VowelKeys, c)
		case bank == BankLeft && strings.IndexByte(LeftKeys, c) >= 0:
			left.add(LeftKeys, c)
		case bank != BankLeft && strings.IndexByte(RightKeys, c) >= 0:
			bank = BankRight
			right.add(RightKeys, c)
		default:
			return Stroke{}, &UnrecognizedKeyError{Stroke: raw, Key: c, Pos: i}
		}
	}
	s := Stroke{
		Raw:   raw,
		Left:  left.String(LeftKeys),
		Vowel: vowel.String(VowelKeys),
		Right: right.String(RightKeys),
	}
	if s.Left == "" && s.Vowel == "" && s.Right == "" {
		return Stroke{}, &UnrecognizedKeyError{Stroke: raw, Pos: -1}
	}
	return s, nil
}

// keySet is a bitmask over the positions of one bank.
type keySet uint16

func (k *keySet) add(order string, c byte) {
	*k |= 1 << strings.IndexByte(order, c)
}

func (k keySet) String(order string) string {
	var b strings.Builder
	for i := 0; i < len(order); i++ {
		if k&(1<<i) != 0 {
			b.WriteByte(order[i])
		}
	}
	return b.String()
}

// canonical reports whether chord only uses keys of order, each once and
// in steno order.
func canonical(order, chord string) bool {
	last := -1
	for i := 0; i < len(chord); i++ {
		pos := strings.IndexByte(order, chord[i])
		if pos <= last {
			return false
		}
		last = pos
	}
	return true
}
