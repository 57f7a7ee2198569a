package fractals

import (
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/lsys/fractal"
	"github.com/npillmayer/lsys/internal/tracing"
	"github.com/npillmayer/lsys/turtle"
)

func build(t *testing.T, name string) (System, *fractal.Fractal[rune, *turtle.Turtle]) {
	s, ok := Lookup(name)
	if !ok {
		t.Fatalf("system %s not in catalog", name)
	}
	f, err := s.Build(fractal.MaxDepth(6))
	if err != nil {
		t.Fatal(err)
	}
	return s, f
}

func TestCatalogGenerations(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	for _, name := range Names() {
		s, f := build(t, name)
		var pairs []string
		for _, p := range s.Productions {
			pairs = append(pairs, p.Pattern, p.Replacement)
		}
		substitute := strings.NewReplacer(pairs...)
		for depth := 1; depth <= 3; depth++ {
			prev, _ := f.Generation(depth - 1)
			w, err := f.Generation(depth)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if expected := substitute.Replace(prev.String()); w.String() != expected {
				t.Errorf("%s: generation %d is not a parallel substitution of its predecessor", name, depth)
			}
		}
	}
}

func TestLevyAndDragon(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	expectedLength := map[string][]int{
		"levy":   {1, 6, 16, 36},
		"dragon": {1, 6, 16, 36},
	}
	for name, lengths := range expectedLength {
		s, f := build(t, name)
		for depth, l := range lengths {
			w, _ := f.Generation(depth)
			if w.Len() != l {
				t.Errorf("%s: expected generation %d to have %d letters, has %d", name, depth, l, w.Len())
			}
		}
		// every generation stretches the curve by √2
		tt, err := s.Draw(f, 4)
		if err != nil {
			t.Fatal(err)
		}
		p := tt.Position()
		if math.Abs(p.X-4) > 1e-9 || math.Abs(p.Y) > 1e-9 {
			t.Errorf("%s: expected generation 4 to end at (4,0), ends at %v", name, p)
		}
	}
}

func TestPlantBranches(t *testing.T) {
	teardown := tracing.SetTestingLog(t)
	defer teardown()
	//
	s, f := build(t, "plant")
	tt, err := s.Draw(f, 3)
	if err != nil {
		t.Fatal(err)
	}
	if tt.StackDepth() != 0 {
		t.Errorf("expected branches to be balanced, %d states left on stack", tt.StackDepth())
	}
	if len(tt.Polylines()) < 2 {
		t.Errorf("expected branches to start new polylines")
	}
	lower, upper := tt.Bounds()
	if upper.Y <= lower.Y {
		t.Errorf("expected plant to grow upwards, bounds %v – %v", lower, upper)
	}
}

func TestCarpetJumps(t *testing.T) {
	s, f := build(t, "carpet")
	tt, err := s.Draw(f, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(tt.Polylines()) != 2 {
		t.Errorf("expected jump to split the drawing into 2 polylines, have %d", len(tt.Polylines()))
	}
}

func TestScaleFactor(t *testing.T) {
	for name, expected := range map[string]float64{
		"koch": 1.0 / 3,
		"levy": 1 / math.Sqrt2,
	} {
		_, f := build(t, name)
		factor, err := turtle.ScaleFactor(f.Dictionary(), f.Axiom())
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(factor-expected) > 1e-9 {
			t.Errorf("%s: expected scale factor %f, have %f", name, expected, factor)
		}
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("no-such-system"); ok {
		t.Errorf("expected lookup of unknown system to fail")
	}
	if len(Names()) != len(catalog) {
		t.Errorf("expected every system to be named")
	}
}
