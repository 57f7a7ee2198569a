/*
Package segment is about segmenting words into dictionary patterns.

BSD License

Copyright (c) 2017–23, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.


Typical Usage

Segmenter provides an interface similar to bufio.Scanner for reading data
such as a file of Unicode text.
Similar to Scanner's Scan() function, successive calls to a segmenter's
Next() method will step through the segments of a word.
Clients are able to get the letters of the segment by calling Word() or Text().

  dict := ...    // a dictionary.Dictionary of patterns
  segmenter := segment.NewSegmenter(dict)
  segmenter.Init(lsys.FromText("F+F--F+F"))
  for segmenter.Next() {
    // do something with segmenter.Word() or segmenter.Entry()
  }
  if err := segmenter.Err(); err != nil {
    // no pattern matched at some position
  }

Clients which need all-or-nothing semantics, i.e. want to know that a word
segments completely before acting on any of its segments, call Split instead.

How it works

At every position of the input word the segmenter walks the pattern trie of
the dictionary, letter by letter, as long as there are patterns starting with
the letters read. The last pattern seen during the walk is the longest one
(maximal munch) and becomes the next segment. The walk is bounded by the
length of the longest pattern, resulting in O(n·k) for a word of length n and
patterns of length ≤ k.

If no pattern is a prefix of the remaining input, segmenting stops with an
error of type *lsys.NoMatchError. Positions are never skipped silently.
*/
package segment

import (
	"errors"
	"strconv"
	"strings"

	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// A Segmenter receives a word and segments it into subwords which are
// patterns of a dictionary.
type Segmenter[L lsys.Letter, P any] struct {
	dict          *dictionary.Dictionary[L, P] // where we look up patterns
	text          lsys.Word[L]                 // word to segment
	pos           int                          // current position in text
	activeSegment lsys.Word[L]                 // the most recent segment
	activeEntry   dictionary.Entry[L, P]       // entry of the most recent segment
	start         int                          // start position of most recent segment
	err           error
	initialized   bool
}

// ErrNotInitialized is returned if a segmenter's Next-function is called without
// first setting an input word.
// ErrNoDictionary is returned if a segmenter has been created without a dictionary.
var (
	ErrNotInitialized = errors.New("segmenter not initialized; must call Init(...) first")
	ErrNoDictionary   = errors.New("segmenter has no dictionary")
)

// NewSegmenter creates a new Segmenter for patterns from dict.
//
// Before using newly created segmenters, clients will have to call Init(...)
// on them, i.e. initialize them for an input word.
func NewSegmenter[L lsys.Letter, P any](dict *dictionary.Dictionary[L, P]) *Segmenter[L, P] {
	return &Segmenter[L, P]{dict: dict}
}

// Init initializes a Segmenter with a word to segment.
// s is either a newly created segmenter to be initialized, or we may
// re-initialize a segmenter already in use.
func (s *Segmenter[L, P]) Init(text lsys.Word[L]) {
	s.text = text
	s.pos = 0
	s.start = 0
	s.activeSegment = lsys.Word[L]{}
	s.activeEntry = dictionary.Entry[L, P]{}
	s.err = nil
	s.initialized = true
}

// Err returns the first error that was encountered by the Segmenter.
// Reaching the end of the input word is not an error.
func (s *Segmenter[L, P]) Err() error {
	return s.err
}

// setErr records the first error encountered.
func (s *Segmenter[L, P]) setErr(err error) {
	if s.err == nil {
		s.err = err
	}
}

// Next advances the Segmenter to the next segment, which will then be available
// through the Word() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input or an error.
// After Next() returns false, the Err() method will return any error
// that occurred during segmenting.
func (s *Segmenter[L, P]) Next() bool {
	return s.next(s.text.Len())
}

// BoundedNext gets the next segment, but only if it starts before position bound.
//
// BoundedNext() advances the Segmenter to the next segment, which will then be available
// through the Word() or Text() method. It returns false when the segmenting
// stops, either by reaching the end of the input, reaching the bound, or if an
// error occurs. A segment starting before bound may extend beyond it.
//
// See also method `Next`.
func (s *Segmenter[L, P]) BoundedNext(bound int) bool {
	return s.next(bound)
}

func (s *Segmenter[L, P]) next(bound int) bool {
	if !s.initialized {
		s.setErr(ErrNotInitialized)
	}
	if s.dict == nil {
		s.setErr(ErrNoDictionary)
	}
	if s.err != nil || s.pos >= s.text.Len() || s.pos >= bound {
		s.activeSegment = lsys.Word[L]{}
		return false
	}
	length, entry := longestMatch(s.dict, s.text, s.pos)
	if length == 0 {
		CT().P("position", strconv.Itoa(s.pos)).Errorf("segmenter: no pattern matches")
		s.setErr(&lsys.NoMatchError{Position: s.pos})
		s.activeSegment = lsys.Word[L]{}
		return false
	}
	s.activeSegment, _ = s.text.Slice(s.pos, s.pos+length)
	s.activeEntry = entry
	s.start = s.pos
	s.pos += length
	CT().P("position", strconv.Itoa(s.start)).Debugf("Next() = \"%v\"", s.activeSegment)
	return true
}

// Word returns the most recent segment generated by a call to Next().
// The segment shares storage with the input word.
func (s *Segmenter[L, P]) Word() lsys.Word[L] {
	return s.activeSegment
}

// Text returns the display form of the most recent segment.
func (s *Segmenter[L, P]) Text() string {
	return s.activeSegment.String()
}

// Entry returns the dictionary entry of the most recent segment.
func (s *Segmenter[L, P]) Entry() dictionary.Entry[L, P] {
	return s.activeEntry
}

// Position returns the start position of the most recent segment within the
// input word.
func (s *Segmenter[L, P]) Position() int {
	return s.start
}

// longestMatch walks the pattern trie from position pos of text and returns
// the length of the longest pattern found, together with its entry.
// A length of 0 means that no pattern matches at pos.
func longestMatch[L lsys.Letter, P any](dict *dictionary.Dictionary[L, P], text lsys.Word[L],
	pos int) (int, dictionary.Entry[L, P]) {
	//
	var entry dictionary.Entry[L, P]
	longest := 0
	cursor := dict.Cursor()
	tail, err := text.Slice(pos, text.Len())
	if err != nil {
		return 0, entry
	}
	tail.Each(func(_ int, l L) bool {
		if !cursor.Advance(l) {
			return false
		}
		if e, ok := cursor.Entry(); ok {
			longest, entry = cursor.Depth(), e
		}
		return true
	})
	return longest, entry
}

// --- Complete segmentation -------------------------------------------------

// Segment is a subword of a segmented word, together with the dictionary
// entry of the pattern it matched.
type Segment[L lsys.Letter, P any] struct {
	Start int                    // position of the segment within the segmented word
	Word  lsys.Word[L]           // the subword
	Entry dictionary.Entry[L, P] // the entry of the matching pattern
}

// Split segments text completely. It either returns all segments, in order, or
// an error, but never a partial segmentation. The segments share storage with
// text.
//
// The empty word segments into no segments.
func Split[L lsys.Letter, P any](text lsys.Word[L], dict *dictionary.Dictionary[L, P]) ([]Segment[L, P], error) {
	if dict == nil {
		return nil, ErrNoDictionary
	}
	breaks := lsys.BorrowBreaks()
	defer breaks.Release()
	entries := make([]dictionary.Entry[L, P], 0, text.Len()/max(1, dict.MaxKeyLen()))
	pos := 0
	for pos < text.Len() {
		length, entry := longestMatch(dict, text, pos)
		if length == 0 {
			CT().P("position", strconv.Itoa(pos)).Errorf("segmenter: no pattern matches")
			return nil, &lsys.NoMatchError{Position: pos}
		}
		pos += length
		breaks.Add(pos)
		entries = append(entries, entry)
	}
	segments := make([]Segment[L, P], breaks.Len())
	for i := range segments {
		from, to := breaks.Segment(i)
		w, _ := text.Slice(from, to)
		segments[i] = Segment[L, P]{Start: from, Word: w, Entry: entries[i]}
	}
	printSegments(segments)
	return segments, nil
}

// Debugging helper. Print the segments to the debug log.
func printSegments[L lsys.Letter, P any](segments []Segment[L, P]) {
	if CT().GetTraceLevel() != tracing.LevelDebug {
		return
	}
	var sb strings.Builder
	sb.WriteString("segments #")
	sb.WriteString(strconv.Itoa(len(segments)))
	sb.WriteString(":")
	for i, seg := range segments {
		if i >= 64 {
			sb.WriteString(" …")
			break
		}
		sb.WriteString(" |")
		sb.WriteString(seg.Word.String())
	}
	sb.WriteString(" |")
	CT().Debugf("%s", sb.String())
}
