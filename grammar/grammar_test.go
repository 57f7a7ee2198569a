package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/fractal"
	"github.com/npillmayer/lsys/internal/tracing"
)

func koch(t *testing.T) *Grammar[rune] {
	g, err := New(lsys.NewAlphabet('+', '-'), lsys.NewAlphabet('F'))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestOverlappingAlphabets(t *testing.T) {
	_, err := New(lsys.NewAlphabet('+', 'F'), lsys.NewAlphabet('F'))
	if !errors.Is(err, ErrOverlappingAlphabets) {
		t.Errorf("expected ErrOverlappingAlphabets, have %v", err)
	}
}

func TestValidRules(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	g := koch(t)
	if err := g.Validate(Rule("F", "F+F--F+F"), Rule("F+", "")); err != nil {
		t.Errorf("expected rules to be valid, have %v", err)
	}
}

func TestUnknownLetters(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	g := koch(t)
	err := g.Validate(Rule("F", "F+F"), Rule("F", "F+G"), Rule("X", "F"))
	var gerr *Error[rune]
	if !errors.As(err, &gerr) {
		t.Fatalf("expected grammar error, have %v", err)
	}
	if gerr.Rule != 1 || gerr.Side != RightSide || gerr.Letter != 'G' {
		t.Errorf("expected first violation at rule 1, RHS, 'G'; have %d, %s, '%c'",
			gerr.Rule, gerr.Side, gerr.Letter)
	}
	if !errors.Is(err, ErrUnknownTerminal) {
		t.Errorf("expected unknown letter on RHS to be reported as unknown terminal")
	}
	//
	err = g.Validate(Rule("XF", "G"))
	if !errors.As(err, &gerr) || gerr.Side != LeftSide || gerr.Letter != 'X' {
		t.Fatalf("expected violation on LHS for 'X', have %v", err)
	}
	if !errors.Is(err, ErrUnknownNonTerminal) {
		t.Errorf("expected unknown letter on LHS to be reported as unknown non-terminal")
	}
	t.Logf("error = %v", err)
}

func TestEmptyLHS(t *testing.T) {
	g := koch(t)
	err := g.Validate(Rule("", "F"))
	if !errors.Is(err, lsys.ErrEmptyKey) {
		t.Errorf("expected empty LHS to be rejected, have %v", err)
	}
}

func TestWithRules(t *testing.T) {
	g := koch(t)
	if _, err := g.WithRules(Rule("F", "F+Q")); err == nil {
		t.Errorf("expected invalid rules to be rejected")
	}
	h, err := g.WithRules(Rule("F", "F+F--F+F"))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Rules()) != 0 || len(h.Rules()) != 1 {
		t.Errorf("expected WithRules to leave receiver unchanged")
	}
	if !h.IsContextFree() {
		t.Errorf("expected Koch grammar to be context-free")
	}
	h, _ = h.WithRules(Rule("F+", "F"))
	if h.IsContextFree() {
		t.Errorf("expected rule with LHS 'F+' to be context-dependent")
	}
}

func TestNewDictionary(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	g, _ := koch(t).WithRules(Rule("F", "F+F--F+F"))
	d, err := NewDictionary[rune, any](g)
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 3 {
		t.Errorf("expected 3 patterns, have %d", d.Len())
	}
	f, _ := fractal.New(lsys.FromText("F--F--F"), d)
	w, err := f.Generation(1)
	if err != nil {
		t.Fatal(err)
	}
	if w.String() != "F+F--F+F--F+F--F+F--F+F--F+F" {
		t.Errorf("unexpected snowflake generation 1: '%s'", w)
	}
}

func TestAnalysis(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	g := koch(t)
	if _, err := g.Analysis("empty"); !errors.Is(err, ErrNotContextFree) {
		t.Errorf("expected grammar without rules to be rejected, have %v", err)
	}
	cf, _ := g.WithRules(Rule("F", "F+F--F+F"), Rule("F", ""))
	ga, err := cf.Analysis("Koch")
	if err != nil {
		t.Fatal(err)
	}
	if ga == nil || ga.Grammar() == nil {
		t.Errorf("expected grammar analysis for Koch grammar")
	}
	cs, _ := cf.WithRules(Rule("F+", "F"))
	if _, err = cs.Analysis("context"); !errors.Is(err, ErrNotContextFree) {
		t.Errorf("expected ErrNotContextFree, have %v", err)
	}
}
