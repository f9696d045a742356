/*
Package dictionary loads the frequency ordered word list matches are
drawn from.

The list keeps its file order exactly: the first word is the most
preferred and no re-sorting ever happens. Every word is indexed in a
patricia trie under its rank (its position in the list), which lets the
matcher walk prefixes instead of scanning the whole list.

A WordList is immutable once built; reloading produces a new one.
*/
package dictionary

import (
	"errors"

	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrEmptyWordList is returned when a source yields no usable words.
var ErrEmptyWordList = errors.New("word list is empty")

// WordList is an ordered, read-only list of spellings.
type WordList struct {
	words []string
	trie  *patricia.Trie
}

// NewWordList indexes words in the given order. A repeated word keeps
// the rank of its first occurrence.
func NewWordList(words []string) *WordList {
	wl := &WordList{
		words: make([]string, 0, len(words)),
		trie:  patricia.NewTrie(),
	}
	for _, w := range words {
		wl.words = append(wl.words, w)
		wl.trie.Insert(patricia.Prefix(w), len(wl.words)-1)
	}
	return wl
}

// Len returns the number of entries, repeats included.
func (wl *WordList) Len() int {
	return len(wl.words)
}

// Word returns the entry at rank i.
func (wl *WordList) Word(i int) string {
	return wl.words[i]
}

// Each calls fn for every entry in list order until fn returns false.
func (wl *WordList) Each(fn func(rank int, word string) bool) {
	for i, w := range wl.words {
		if !fn(i, w) {
			return
		}
	}
}

// Rank returns the position of word, or false if it is not listed.
func (wl *WordList) Rank(word string) (int, bool) {
	item := wl.trie.Get(patricia.Prefix(word))
	if item == nil {
		return 0, false
	}
	return item.(int), true
}

// HasPrefix reports whether any listed word starts with prefix.
func (wl *WordList) HasPrefix(prefix string) bool {
	return wl.trie.MatchSubtree(patricia.Prefix(prefix))
}
