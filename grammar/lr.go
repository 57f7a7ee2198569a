package grammar

import (
	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/lsys"
)

// Analysis exports a context-free grammar to the LR machinery of gorgo and
// returns the grammar analysis (FIRST and FOLLOW sets, see package lr).
// The first rule of g determines the start symbol.
//
// Terminals are named by their display form with a ':' prepended, and are
// numbered in the order of their display forms, starting at 1.
// Non-terminals are named by their display form. Rules with an empty right
// hand side become ε-rules.
//
// Grammars without rules, and grammars which are not context-free, result in
// ErrNotContextFree.
func (g *Grammar[L]) Analysis(name string) (*lr.LRAnalysis, error) {
	if len(g.rules) == 0 || !g.IsContextFree() {
		return nil, ErrNotContextFree
	}
	tokens := make(map[L]int, g.terminals.Size())
	for i, t := range g.terminals.Letters() {
		tokens[t] = i + 1
	}
	b := lr.NewGrammarBuilder(name)
	for _, r := range g.rules {
		lhs, _ := r.LHS.At(0)
		rb := b.LHS(lsys.LetterString(lhs))
		if r.RHS.IsEmpty() {
			rb.Epsilon()
			continue
		}
		r.RHS.Each(func(_ int, l L) bool {
			if tokval, ok := tokens[l]; ok {
				rb = rb.T(":"+lsys.LetterString(l), tokval)
			} else {
				rb = rb.N(lsys.LetterString(l))
			}
			return true
		})
		rb.End()
	}
	lrg, err := b.Grammar()
	if err != nil {
		tracer().Errorf("grammar: cannot export %s: %v", name, err)
		return nil, err
	}
	tracer().Debugf("grammar: exported %s with %d rules", name, len(g.rules))
	return lr.Analysis(lrg), nil
}
