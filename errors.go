package lsys

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfBounds flags an access to a word beyond its length.
// ErrEmptyKey is returned if a client tries to use an empty word as a pattern.
// ErrNoMatch is returned if no pattern matches at some position of a word.
var (
	ErrIndexOutOfBounds = errors.New("lsys: index out of bounds")
	ErrEmptyKey         = errors.New("lsys: empty pattern rejected")
	ErrNoMatch          = errors.New("lsys: no pattern matches")
)

// IndexError is returned for out-of-bounds accesses of words.
// It unwraps to ErrIndexOutOfBounds.
type IndexError struct {
	Index int // offending index
	Len   int // length of the word at the time of access
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("lsys: index %d out of bounds for word of length %d", e.Index, e.Len)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfBounds
}

// NoMatchError is returned by segmenting if no dictionary key is a prefix of
// the text at Position. It unwraps to ErrNoMatch.
type NoMatchError struct {
	Position int
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf("lsys: no pattern matches at position %d", e.Position)
}

func (e *NoMatchError) Unwrap() error {
	return ErrNoMatch
}

func indexError(index, length int) error {
	return &IndexError{Index: index, Len: length}
}
