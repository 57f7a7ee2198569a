package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
)

// Errors of grammar construction and validation.
var (
	ErrUnknownTerminal      = errors.New("production rules contain unknown terminals")
	ErrUnknownNonTerminal   = errors.New("production rules contain unknown non-terminals")
	ErrOverlappingAlphabets = errors.New("terminals and non-terminals overlap")
	ErrNotContextFree       = errors.New("grammar is not context-free")
)

// Side denotes one side of a production rule.
type Side int8

// Sides of a production rule.
const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "LHS"
	}
	return "RHS"
}

// Error is returned for rules which violate a grammar.
type Error[L lsys.Letter] struct {
	Rule   int  // index of the offending rule
	Side   Side // side of the rule which contains the offending letter
	Letter L    // the offending letter; zero for empty left hand sides
	err    error
}

func (e *Error[L]) Error() string {
	if errors.Is(e.err, lsys.ErrEmptyKey) {
		return fmt.Sprintf("rule #%d: empty %s", e.Rule, e.Side)
	}
	return fmt.Sprintf("rule #%d: %v: '%s' on %s", e.Rule, e.err, lsys.LetterString(e.Letter), e.Side)
}

// Unwrap returns one of ErrUnknownNonTerminal, ErrUnknownTerminal or
// lsys.ErrEmptyKey.
func (e *Error[L]) Unwrap() error {
	return e.err
}

// ProductionRule rewrites LHS into RHS.
type ProductionRule[L lsys.Letter] struct {
	LHS lsys.Word[L]
	RHS lsys.Word[L]
}

// Rule is a shortcut for creating production rules over characters.
func Rule(lhs, rhs string) ProductionRule[rune] {
	return ProductionRule[rune]{LHS: lsys.FromText(lhs), RHS: lsys.FromText(rhs)}
}

func (r ProductionRule[L]) String() string {
	return r.LHS.String() + " → " + r.RHS.String()
}

// Grammar is a pair of disjoint alphabets plus a list of production rules
// over them.
type Grammar[L lsys.Letter] struct {
	terminals    *lsys.Alphabet[L]
	nonTerminals *lsys.Alphabet[L]
	rules        []ProductionRule[L]
}

// New creates a grammar without any rules. It returns ErrOverlappingAlphabets
// if a letter is declared both as a terminal and as a non-terminal.
func New[L lsys.Letter](terminals, nonTerminals *lsys.Alphabet[L]) (*Grammar[L], error) {
	if terminals == nil {
		terminals = lsys.NewAlphabet[L]()
	}
	if nonTerminals == nil {
		nonTerminals = lsys.NewAlphabet[L]()
	}
	if !terminals.Disjoint(nonTerminals) {
		return nil, ErrOverlappingAlphabets
	}
	return &Grammar[L]{terminals: terminals, nonTerminals: nonTerminals}, nil
}

// Terminals returns the alphabet of terminals.
func (g *Grammar[L]) Terminals() *lsys.Alphabet[L] {
	return g.terminals
}

// NonTerminals returns the alphabet of non-terminals.
func (g *Grammar[L]) NonTerminals() *lsys.Alphabet[L] {
	return g.nonTerminals
}

// Rules returns the production rules of g.
func (g *Grammar[L]) Rules() []ProductionRule[L] {
	rules := make([]ProductionRule[L], len(g.rules))
	copy(rules, g.rules)
	return rules
}

// Validate checks rules, in order, against the alphabets of g. Left hand sides
// are checked before right hand sides. The first letter which is neither a
// terminal nor a non-terminal stops validation. It is reported as
// ErrUnknownNonTerminal if found on a left hand side, and as ErrUnknownTerminal
// otherwise. Left hand sides must not be empty.
//
// The returned error is of type *Error.
func (g *Grammar[L]) Validate(rules ...ProductionRule[L]) error {
	for i, r := range rules {
		if r.LHS.IsEmpty() {
			return g.violation(&Error[L]{Rule: i, Side: LeftSide, err: lsys.ErrEmptyKey})
		}
		if pos, ok := g.declared(r.LHS); !ok {
			l, _ := r.LHS.At(pos)
			return g.violation(&Error[L]{Rule: i, Side: LeftSide, Letter: l, err: ErrUnknownNonTerminal})
		}
		if pos, ok := g.declared(r.RHS); !ok {
			l, _ := r.RHS.At(pos)
			return g.violation(&Error[L]{Rule: i, Side: RightSide, Letter: l, err: ErrUnknownTerminal})
		}
	}
	return nil
}

func (g *Grammar[L]) violation(err *Error[L]) error {
	tracer().Errorf("grammar: %v", err)
	return err
}

// declared checks if all letters of w are declared. If not, it returns the
// position of the first undeclared letter.
func (g *Grammar[L]) declared(w lsys.Word[L]) (int, bool) {
	pos := -1
	w.Each(func(i int, l L) bool {
		if !g.terminals.Contains(l) && !g.nonTerminals.Contains(l) {
			pos = i
			return false
		}
		return true
	})
	return pos, pos < 0
}

// WithRules validates rules and returns a new grammar with the alphabets of g
// and rules appended to the rules of g. g is left unchanged.
func (g *Grammar[L]) WithRules(rules ...ProductionRule[L]) (*Grammar[L], error) {
	if err := g.Validate(rules...); err != nil {
		return nil, err
	}
	h := &Grammar[L]{
		terminals:    g.terminals,
		nonTerminals: g.nonTerminals,
		rules:        make([]ProductionRule[L], 0, len(g.rules)+len(rules)),
	}
	h.rules = append(h.rules, g.rules...)
	h.rules = append(h.rules, rules...)
	return h, nil
}

// IsContextFree is true if the left hand side of every rule consists of a
// single non-terminal.
func (g *Grammar[L]) IsContextFree() bool {
	for _, r := range g.rules {
		if r.LHS.Len() != 1 {
			return false
		}
		if l, _ := r.LHS.At(0); !g.nonTerminals.Contains(l) {
			return false
		}
	}
	return true
}

// NewDictionary creates a dictionary for rewriting words over the letters of
// g. Every declared letter is a pattern of its own, and every rule adds its
// left hand side as a pattern with the right hand side as replacement.
// Rules with equal left hand sides override each other, the last one wins.
func NewDictionary[L lsys.Letter, P any](g *Grammar[L]) (*dictionary.Dictionary[L, P], error) {
	d := dictionary.New[L, P]()
	for _, a := range []*lsys.Alphabet[L]{g.terminals, g.nonTerminals} {
		for _, l := range a.Letters() {
			if err := d.Insert(lsys.FromLetter(l), dictionary.NewEntry[L, P]()); err != nil {
				return nil, err
			}
		}
	}
	for _, r := range g.rules {
		e, _ := d.Get(r.LHS)
		if err := d.Insert(r.LHS, e.WithReplacement(r.RHS)); err != nil {
			return nil, err
		}
	}
	return d, nil
}
