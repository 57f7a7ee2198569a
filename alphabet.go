package lsys

import (
	"sort"
	"unicode"

	"github.com/emirpasic/gods/sets/hashset"
	"golang.org/x/text/unicode/rangetable"
)

// Alphabet is a set of distinct letters. Membership is informational: words
// are not required to stick to an alphabet, but clients may check them with
// Covers.
type Alphabet[L Letter] struct {
	set *hashset.Set
}

// NewAlphabet creates an alphabet from a list of letters. Duplicates are
// ignored.
func NewAlphabet[L Letter](letters ...L) *Alphabet[L] {
	a := &Alphabet[L]{set: hashset.New()}
	for _, l := range letters {
		a.set.Add(l)
	}
	return a
}

// AlphabetOf collects the letters of a word into an alphabet.
func AlphabetOf[L Letter](w Word[L]) *Alphabet[L] {
	return NewAlphabet(w.letters...)
}

// Add adds letters to a.
func (a *Alphabet[L]) Add(letters ...L) {
	a.lazyInit()
	for _, l := range letters {
		a.set.Add(l)
	}
}

// Contains is true if l is a member of a.
func (a *Alphabet[L]) Contains(l L) bool {
	if a == nil || a.set == nil {
		return false
	}
	return a.set.Contains(l)
}

// Size returns the number of letters in a.
func (a *Alphabet[L]) Size() int {
	if a == nil || a.set == nil {
		return 0
	}
	return a.set.Size()
}

// Letters returns the letters of a, ordered by their display form.
func (a *Alphabet[L]) Letters() []L {
	if a == nil || a.set == nil {
		return nil
	}
	values := a.set.Values()
	letters := make([]L, len(values))
	for i, v := range values {
		letters[i] = v.(L)
	}
	sort.Slice(letters, func(i, j int) bool {
		return LetterString(letters[i]) < LetterString(letters[j])
	})
	return letters
}

// Covers checks if every letter of w is a member of a. If not, it returns
// the position of the first foreign letter.
func (a *Alphabet[L]) Covers(w Word[L]) (int, bool) {
	for i, l := range w.letters {
		if !a.Contains(l) {
			return i, false
		}
	}
	return -1, true
}

// Disjoint is true if a and b share no letter.
func (a *Alphabet[L]) Disjoint(b *Alphabet[L]) bool {
	for _, l := range a.Letters() {
		if b.Contains(l) {
			return false
		}
	}
	return true
}

func (a *Alphabet[L]) lazyInit() {
	if a.set == nil {
		a.set = hashset.New()
	}
}

// RangeTable creates a Unicode range table for an alphabet of runes, suitable
// for fast membership tests with unicode.Is.
func RangeTable(a *Alphabet[rune]) *unicode.RangeTable {
	return rangetable.New(a.Letters()...)
}
