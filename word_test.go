package lsys

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type turn int

func (t turn) String() string {
	if t < 0 {
		return "-"
	}
	return "+"
}

func TestDisplay(t *testing.T) {
	numbers := FromLetters(1, 2, 3, 4, 5)
	chars := FromLetters('a', 'b', 'c', 'd', 'e')
	if numbers.String() != "12345" {
		t.Errorf("expected word of numbers to display as '12345', is '%s'", numbers)
	}
	if chars.String() != "abcde" {
		t.Errorf("expected word of chars to display as 'abcde', is '%s'", chars)
	}
	turns := FromLetters(turn(1), turn(-1), turn(-1))
	if turns.String() != "+--" {
		t.Errorf("expected Stringer letters to display as '+--', is '%s'", turns)
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, s := range []string{"", "F", "f--f--f", "F+F--F+F", "X→[F]"} {
		if w := FromText(s); w.String() != s {
			t.Errorf("expected round trip of '%s', have '%s'", s, w)
		}
	}
}

func TestGraphemes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	input := "éF🇩🇪"
	w := FromGraphemes(input)
	if w.Len() != 3 {
		t.Errorf("expected 3 grapheme letters, have %d", w.Len())
	}
	if w.String() != input {
		t.Errorf("expected grapheme word to display as input, is '%s'", w)
	}
	if FromText(input).Len() == w.Len() {
		t.Errorf("expected rune word to be longer than grapheme word")
	}
}

func TestEqualByContent(t *testing.T) {
	a := FromText("F+F")
	b := FromLetters('F', '+', 'F')
	c := Concat(FromLetter('F'), FromText("+F"))
	if !a.Equal(b) || !b.Equal(c) {
		t.Errorf("expected words '%s', '%s', '%s' to be equal", a, b, c)
	}
	if a.Equal(FromText("F+")) {
		t.Errorf("expected words of different length to differ")
	}
	var empty Word[rune]
	if !empty.Equal(FromText("")) {
		t.Errorf("expected zero word to equal empty text word")
	}
}

func TestSlice(t *testing.T) {
	w := FromText("F+F--F+F")
	s, err := w.Slice(2, 5)
	if err != nil {
		t.Fatal(err)
	}
	if s.String() != "F--" {
		t.Errorf("expected slice [2:5) to be 'F--', is '%s'", s)
	}
	if _, err = w.Slice(3, 9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected slice beyond length to fail, error is %v", err)
	}
	var ie *IndexError
	if !errors.As(err, &ie) || ie.Index != 9 || ie.Len != 8 {
		t.Errorf("expected IndexError{9, 8}, have %v", err)
	}
	if _, err = w.Slice(5, 4); err == nil {
		t.Errorf("expected inverted range to fail")
	}
	if s, err = w.Slice(8, 8); err != nil || !s.IsEmpty() {
		t.Errorf("expected empty slice at end of word, have '%s', %v", s, err)
	}
}

func TestInsertRemove(t *testing.T) {
	w := FromText("FF")
	v, err := w.Insert(1, '+')
	if err != nil || v.String() != "F+F" {
		t.Errorf("expected 'F+F' after insert, have '%s', %v", v, err)
	}
	if w.String() != "FF" {
		t.Errorf("insert must not change the receiver, is '%s'", w)
	}
	if v, err = v.Insert(3, '-'); err != nil || v.String() != "F+F-" {
		t.Errorf("expected insert at Len() to append, have '%s', %v", v, err)
	}
	if _, err = v.Insert(5, '-'); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected insert beyond Len() to fail, error is %v", err)
	}
	u, err := v.Remove(0)
	if err != nil || u.String() != "+F-" {
		t.Errorf("expected '+F-' after remove, have '%s', %v", u, err)
	}
	if _, err = u.Remove(3); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected remove at Len() to fail, error is %v", err)
	}
}

func TestSplitAt(t *testing.T) {
	w := FromText("F+F--F+F")
	head, tail, err := w.SplitAt(3)
	if err != nil {
		t.Fatal(err)
	}
	if head.String() != "F+F" || tail.String() != "--F+F" {
		t.Errorf("expected split into 'F+F' and '--F+F', have '%s' and '%s'", head, tail)
	}
	if !head.Append(tail).Equal(w) {
		t.Errorf("expected head+tail to equal original word")
	}
	// appending to head must not overwrite the shared storage of w
	_ = head.Append(FromText("XXXXX"))
	if w.String() != "F+F--F+F" {
		t.Errorf("append to a split part changed the original word: '%s'", w)
	}
	if _, _, err = w.SplitAt(9); !errors.Is(err, ErrIndexOutOfBounds) {
		t.Errorf("expected split beyond Len() to fail")
	}
	if head, tail, err = w.SplitAt(8); err != nil || !tail.IsEmpty() || !head.Equal(w) {
		t.Errorf("expected split at Len() to yield an empty tail")
	}
}

func TestPrefixAndContains(t *testing.T) {
	w := FromLetters(1, 2, 3, 4, 5)
	if !w.HasPrefix(FromLetters(1, 2)) {
		t.Errorf("expected [1 2] to be a prefix")
	}
	if w.HasPrefix(FromLetters(2)) {
		t.Errorf("expected [2] not to be a prefix")
	}
	if !w.HasPrefix(Word[int]{}) {
		t.Errorf("expected empty word to be a prefix of every word")
	}
	if !w.HasPrefixAt(3, FromLetters(4, 5)) || w.HasPrefixAt(4, FromLetters(5, 6)) {
		t.Errorf("HasPrefixAt misreports prefixes of suffixes")
	}
	if !w.Contains(FromLetters(3, 4)) || w.Contains(FromLetters(4, 3)) {
		t.Errorf("Contains misreports subwords")
	}
	if w.Index(FromLetters(5)) != 4 || w.Index(Word[int]{}) != -1 {
		t.Errorf("Index misreports positions")
	}
}

func TestBuilder(t *testing.T) {
	var b Builder[rune]
	b.Grow(8)
	b.WriteWord(FromText("F+"))
	b.WriteLetter('F')
	if b.Len() != 3 {
		t.Errorf("expected builder length 3, is %d", b.Len())
	}
	w := b.Word()
	if w.String() != "F+F" {
		t.Errorf("expected 'F+F' from builder, is '%s'", w)
	}
	if b.Len() != 0 {
		t.Errorf("expected builder to be reset after Word()")
	}
}

func ExampleWord() {
	w := FromText("F--F--F")
	w, _ = w.Insert(1, '+')
	head, tail, _ := w.SplitAt(4)
	fmt.Printf("%s | %s (%d letters)\n", head, tail, w.Len())
	// Output: F+-- | F--F (8 letters)
}
