package lsys

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Letter is the type constraint for atomic symbols of an alphabet. Letters
// need nothing but equality; hashing comes for free with comparable types.
//
// Letters are displayed as themselves if they are runes or strings, by calling
// String() if they implement fmt.Stringer, and with fmt.Sprint otherwise.
type Letter interface {
	comparable
}

// Word is an ordered sequence of letters, possibly empty.
//
// Words are immutable values. Operations like Insert or Append return a new
// word and leave the receiver untouched, which makes it safe for words to
// share storage. The zero value is the empty word.
type Word[L Letter] struct {
	letters []L
}

// FromLetter creates a word of length 1.
func FromLetter[L Letter](l L) Word[L] {
	return Word[L]{letters: []L{l}}
}

// FromLetters creates a word from a sequence of letters. The letters are copied.
func FromLetters[L Letter](letters ...L) Word[L] {
	if len(letters) == 0 {
		return Word[L]{}
	}
	w := make([]L, len(letters))
	copy(w, letters)
	return Word[L]{letters: w}
}

// FromText creates a word over a character alphabet, where every rune of s
// is a letter.
func FromText(s string) Word[rune] {
	if s == "" {
		return Word[rune]{}
	}
	return Word[rune]{letters: []rune(s)}
}

// FromGraphemes creates a word over an alphabet of user perceived characters,
// i.e. every grapheme cluster of s is a letter. This is what clients want if
// symbols may carry combining marks or are composed emoji.
func FromGraphemes(s string) Word[string] {
	var letters []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		letters = append(letters, gr.Str())
	}
	return Word[string]{letters: letters}
}

// wrap creates a word from a slice without copying. Clients of wrap must not
// modify letters afterwards.
func wrap[L Letter](letters []L) Word[L] {
	return Word[L]{letters: letters[:len(letters):len(letters)]}
}

// Len returns the number of letters in w.
func (w Word[L]) Len() int {
	return len(w.letters)
}

// IsEmpty is true for words of length 0.
func (w Word[L]) IsEmpty() bool {
	return len(w.letters) == 0
}

// At returns the letter at position i.
func (w Word[L]) At(i int) (L, error) {
	if i < 0 || i >= len(w.letters) {
		var zero L
		return zero, indexError(i, len(w.letters))
	}
	return w.letters[i], nil
}

// Letters returns a copy of the letters of w.
func (w Word[L]) Letters() []L {
	l := make([]L, len(w.letters))
	copy(l, w.letters)
	return l
}

// Each calls f for every letter of w, in order, until f returns false.
func (w Word[L]) Each(f func(int, L) bool) {
	for i, l := range w.letters {
		if !f(i, l) {
			return
		}
	}
}

// Slice returns the subword of w in the range [from…to). The result shares
// storage with w.
func (w Word[L]) Slice(from, to int) (Word[L], error) {
	if to > len(w.letters) || to < 0 {
		return Word[L]{}, indexError(to, len(w.letters))
	}
	if from < 0 || from > to {
		return Word[L]{}, indexError(from, len(w.letters))
	}
	return Word[L]{letters: w.letters[from:to:to]}, nil
}

// HasPrefix is true if pattern is a prefix of w.
// The empty word is a prefix of every word.
func (w Word[L]) HasPrefix(pattern Word[L]) bool {
	return w.HasPrefixAt(0, pattern)
}

// HasPrefixAt is true if pattern is a prefix of the suffix of w starting at pos.
func (w Word[L]) HasPrefixAt(pos int, pattern Word[L]) bool {
	if pos < 0 || pos+len(pattern.letters) > len(w.letters) {
		return false
	}
	for i, l := range pattern.letters {
		if w.letters[pos+i] != l {
			return false
		}
	}
	return true
}

// Index returns the position of the first occurrence of sub within w, or -1.
// The empty word is never found.
func (w Word[L]) Index(sub Word[L]) int {
	if sub.IsEmpty() {
		return -1
	}
	for i := 0; i+len(sub.letters) <= len(w.letters); i++ {
		if w.HasPrefixAt(i, sub) {
			return i
		}
	}
	return -1
}

// Contains is true if sub occurs within w.
func (w Word[L]) Contains(sub Word[L]) bool {
	return w.Index(sub) >= 0
}

// Insert returns a new word with letter l inserted at index.
// index may be equal to Len(), which appends l.
func (w Word[L]) Insert(index int, l L) (Word[L], error) {
	if index < 0 || index > len(w.letters) {
		return w, indexError(index, len(w.letters))
	}
	letters := make([]L, 0, len(w.letters)+1)
	letters = append(letters, w.letters[:index]...)
	letters = append(letters, l)
	letters = append(letters, w.letters[index:]...)
	return Word[L]{letters: letters}, nil
}

// Remove returns a new word with the letter at index removed.
func (w Word[L]) Remove(index int) (Word[L], error) {
	if index < 0 || index >= len(w.letters) {
		return w, indexError(index, len(w.letters))
	}
	letters := make([]L, 0, len(w.letters)-1)
	letters = append(letters, w.letters[:index]...)
	letters = append(letters, w.letters[index+1:]...)
	return wrap(letters), nil
}

// SplitAt splits w into w[:index] and w[index:]. Both parts share storage with w.
func (w Word[L]) SplitAt(index int) (Word[L], Word[L], error) {
	if index < 0 || index > len(w.letters) {
		return w, Word[L]{}, indexError(index, len(w.letters))
	}
	return Word[L]{letters: w.letters[:index:index]}, Word[L]{letters: w.letters[index:]}, nil
}

// Append returns the concatenation of w and other.
func (w Word[L]) Append(other Word[L]) Word[L] {
	return Concat(w, other)
}

// Concat concatenates words into a single new word.
func Concat[L Letter](words ...Word[L]) Word[L] {
	n := 0
	for _, w := range words {
		n += len(w.letters)
	}
	if n == 0 {
		return Word[L]{}
	}
	letters := make([]L, 0, n)
	for _, w := range words {
		letters = append(letters, w.letters...)
	}
	return Word[L]{letters: letters}
}

// Equal compares two words by content.
func (w Word[L]) Equal(other Word[L]) bool {
	if len(w.letters) != len(other.letters) {
		return false
	}
	for i, l := range w.letters {
		if other.letters[i] != l {
			return false
		}
	}
	return true
}

// String renders the letters of w without separators.
func (w Word[L]) String() string {
	var sb strings.Builder
	for _, l := range w.letters {
		writeLetter(&sb, l)
	}
	return sb.String()
}

// LetterString returns the display form of a single letter.
func LetterString[L Letter](l L) string {
	var sb strings.Builder
	writeLetter(&sb, l)
	return sb.String()
}

func writeLetter[L Letter](sb *strings.Builder, l L) {
	switch x := any(l).(type) {
	case rune:
		sb.WriteRune(x)
	case byte:
		sb.WriteByte(x)
	case string:
		sb.WriteString(x)
	case fmt.Stringer:
		sb.WriteString(x.String())
	default:
		fmt.Fprint(sb, x)
	}
}

// --- Builder ---------------------------------------------------------------

// Builder collects letters to efficiently build a word of unknown length.
// The zero value is ready to use.
type Builder[L Letter] struct {
	letters []L
}

// Grow reserves space for n more letters.
func (b *Builder[L]) Grow(n int) {
	if cap(b.letters)-len(b.letters) < n {
		letters := make([]L, len(b.letters), len(b.letters)+n)
		copy(letters, b.letters)
		b.letters = letters
	}
}

// WriteLetter appends a single letter.
func (b *Builder[L]) WriteLetter(l L) {
	b.letters = append(b.letters, l)
}

// WriteWord appends all letters of w.
func (b *Builder[L]) WriteWord(w Word[L]) {
	b.letters = append(b.letters, w.letters...)
}

// Len returns the number of letters written so far.
func (b *Builder[L]) Len() int {
	return len(b.letters)
}

// Word returns the word built so far and resets the builder. Ownership of
// the letters passes to the word.
func (b *Builder[L]) Word() Word[L] {
	w := wrap(b.letters)
	b.letters = nil
	return w
}
