package dictionary

import (
	"fmt"

	"github.com/npillmayer/lsys"
)

// Action is the semantics of a pattern. Execute is called with the subword
// matched by the pattern and a payload owned by the caller. Actions of a word
// are executed strictly in textual order, each one seeing the payload as left
// by its predecessors.
type Action[L lsys.Letter, P any] interface {
	Execute(subword lsys.Word[L], payload P)
}

// ActionFunc is an adapter to use ordinary functions as actions.
type ActionFunc[L lsys.Letter, P any] func(subword lsys.Word[L], payload P)

// Execute calls f(subword, payload).
func (f ActionFunc[L, P]) Execute(subword lsys.Word[L], payload P) {
	f(subword, payload)
}

// Entry is the value stored for a pattern. Entries are small values and are
// copied in and out of a dictionary.
type Entry[L lsys.Letter, P any] struct {
	replacement    lsys.Word[L]
	hasReplacement bool
	action         Action[L, P]
}

// NewEntry creates an entry without replacement and without action.
func NewEntry[L lsys.Letter, P any]() Entry[L, P] {
	return Entry[L, P]{}
}

// WithReplacement returns a copy of e with replacement w. An empty w is a valid
// replacement: it deletes the pattern during rewriting.
func (e Entry[L, P]) WithReplacement(w lsys.Word[L]) Entry[L, P] {
	e.replacement = w
	e.hasReplacement = true
	return e
}

// WithAction returns a copy of e with action a.
func (e Entry[L, P]) WithAction(a Action[L, P]) Entry[L, P] {
	e.action = a
	return e
}

// WithFunc returns a copy of e with action f.
func (e Entry[L, P]) WithFunc(f func(lsys.Word[L], P)) Entry[L, P] {
	if f == nil {
		e.action = nil
		return e
	}
	return e.WithAction(ActionFunc[L, P](f))
}

// WithoutReplacement returns a copy of e without replacement.
func (e Entry[L, P]) WithoutReplacement() Entry[L, P] {
	e.replacement = lsys.Word[L]{}
	e.hasReplacement = false
	return e
}

// WithoutAction returns a copy of e without action.
func (e Entry[L, P]) WithoutAction() Entry[L, P] {
	e.action = nil
	return e
}

// Replacement returns the replacement word of e, if any.
func (e Entry[L, P]) Replacement() (lsys.Word[L], bool) {
	return e.replacement, e.hasReplacement
}

// Action returns the action of e, or nil.
func (e Entry[L, P]) Action() Action[L, P] {
	return e.action
}

func (e Entry[L, P]) String() string {
	r, a := "None", "None"
	if e.hasReplacement {
		r = e.replacement.String()
	}
	if e.action != nil {
		a = "Some"
	}
	return fmt.Sprintf("Entry{replacement: %s, action: %s}", r, a)
}
