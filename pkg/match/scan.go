package match

import (
	"github.com/charmbracelet/log"

	"github.com/bastiangx/righte/pkg/dictionary"
	"github.com/bastiangx/righte/pkg/pattern"
)

// ScanMatcher tests the anchored regexp of a pattern against every word
// in list order. It is slower than TrieMatcher and serves as its reference.
type ScanMatcher struct {
	list *dictionary.WordList
}

// NewScanMatcher returns a matcher over list.
func NewScanMatcher(list *dictionary.WordList) *ScanMatcher {
	return &ScanMatcher{list: list}
}

func (m *ScanMatcher) First(p pattern.Pattern) (Match, bool) {
	re, err := pattern.Compile(p)
	if err != nil {
		log.Errorf("Failed to compile %q: %v", pattern.Regexp(p), err)
		return Match{}, false
	}
	var found Match
	ok := false
	m.list.Each(func(rank int, word string) bool {
		if re.MatchString(word) {
			found, ok = Match{Word: word, Rank: rank}, true
			return false
		}
		return true
	})
	return found, ok
}

var (
	_ Matcher = (*TrieMatcher)(nil)
	_ Matcher = (*ScanMatcher)(nil)
)

// New returns the matcher named by s, defaulting to the trie.
func New(s Strategy, list *dictionary.WordList) Matcher {
	if s == StrategyScan {
		return NewScanMatcher(list)
	}
	return NewTrieMatcher(list)
}
