// Package match finds the first word of a list that a stroke pattern spells.
package match

import "github.com/bastiangx/righte/pkg/pattern"

// Match is a word found in the list together with its rank.
type Match struct {
	Word string
	Rank int
}

// Matcher returns the lowest ranked word fully matching a pattern.
type Matcher interface {
	First(p pattern.Pattern) (Match, bool)
}

// Strategy names a Matcher implementation.
type Strategy string

const (
	StrategyTrie Strategy = "trie"
	StrategyScan Strategy = "scan"
)
