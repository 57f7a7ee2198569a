/*
Package fractals is a catalog of classic L-systems over characters, ready to
be interpreted by a turtle.

All systems share a common vocabulary of letters:

	F, G, W   move forward, drawing a line
	J         move forward without drawing
	+         turn counterclockwise by the angle of the system
	-         turn clockwise by the angle of the system
	[         save the turtle's state
	]         restore the turtle's state

Other letters, like X in the plant system, carry no semantics and just steer
the rewriting.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–23 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fractals

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
	"github.com/npillmayer/lsys/fractal"
	"github.com/npillmayer/lsys/turtle"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Production is a rewriting rule of a system.
type Production struct {
	Pattern     string
	Replacement string
}

// System describes an L-system over characters.
type System struct {
	Name        string
	Axiom       string
	Productions []Production
	Angle       float64 // turning angle in degrees
	Heading     float64 // initial heading of the turtle in degrees
}

const drawing, moving = "FGW", "J"

var catalog = []System{
	{Name: "koch", Axiom: "F", Angle: 60, Productions: []Production{
		{"F", "F+F--F+F"},
	}},
	{Name: "snowflake", Axiom: "F--F--F", Angle: 60, Productions: []Production{
		{"F", "F+F--F+F"},
	}},
	{Name: "levy", Axiom: "F", Angle: 45, Productions: []Production{
		{"F", "+F--F+"},
	}},
	{Name: "dragon", Axiom: "F", Angle: 45, Productions: []Production{
		{"F", "+F--W+"},
		{"W", "-F++W-"},
	}},
	{Name: "carpet", Axiom: "F", Angle: 90, Productions: []Production{
		{"F", "F+F-F-FF-F-F-JF"},
		{"J", "JJJ"},
	}},
	{Name: "triangle", Axiom: "F--F--F", Angle: 60, Productions: []Production{
		{"F", "F--F--F--JJ"},
		{"J", "JJ"},
	}},
	{Name: "gosper", Axiom: "F", Angle: 60, Productions: []Production{
		{"F", "F+W++W-F--FF-W+"},
		{"W", "-F+WW++W+F--F-W"},
	}},
	{Name: "hilbert", Axiom: "A", Angle: 90, Productions: []Production{
		{"A", "+BF-AFA-FB+"},
		{"B", "-AF+BFB+FA-"},
		{"F", "FF"},
	}},
	{Name: "arrowhead", Axiom: "F", Angle: 60, Productions: []Production{
		{"F", "-W+F+W-"},
		{"W", "+F-W-F+"},
	}},
	{Name: "plant", Axiom: "X", Angle: 25, Heading: 90, Productions: []Production{
		{"X", "F+[[X]-X]-F[-FX]+X"},
		{"F", "FF"},
	}},
}

// Names returns the names of all systems in the catalog, sorted.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	sort.Strings(names)
	return names
}

// Lookup finds a system by name.
func Lookup(name string) (System, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return System{}, false
}

// Letters returns every letter used by s, in order of first appearance.
func (s System) Letters() []rune {
	seen := map[rune]bool{}
	var letters []rune
	collect := func(text string) {
		for _, r := range text {
			if !seen[r] {
				seen[r] = true
				letters = append(letters, r)
			}
		}
	}
	collect(s.Axiom)
	for _, p := range s.Productions {
		collect(p.Pattern)
		collect(p.Replacement)
	}
	return letters
}

// Dictionary creates a dictionary for s with turtle actions. Every letter of s
// is a pattern, and every production adds its replacement.
func (s System) Dictionary() (*dictionary.Dictionary[rune, *turtle.Turtle], error) {
	d := dictionary.New[rune, *turtle.Turtle]()
	for _, l := range s.Letters() {
		e := dictionary.NewEntry[rune, *turtle.Turtle]()
		switch {
		case strings.ContainsRune(drawing, l):
			e = e.WithAction(turtle.Draw[rune]())
		case strings.ContainsRune(moving, l):
			e = e.WithAction(turtle.Move[rune]())
		case l == '+':
			e = e.WithAction(turtle.Turn[rune](s.Angle))
		case l == '-':
			e = e.WithAction(turtle.Turn[rune](-s.Angle))
		case l == '[':
			e = e.WithAction(turtle.Save[rune]())
		case l == ']':
			e = e.WithAction(turtle.Restore[rune]())
		}
		if err := d.Insert(lsys.FromLetter(l), e); err != nil {
			return nil, err
		}
	}
	for _, p := range s.Productions {
		key := lsys.FromText(p.Pattern)
		e, _ := d.Get(key)
		if err := d.Insert(key, e.WithReplacement(lsys.FromText(p.Replacement))); err != nil {
			return nil, fmt.Errorf("system %s: %w", s.Name, err)
		}
	}
	return d, nil
}

// Build creates a fractal for s.
func (s System) Build(opts ...fractal.Option) (*fractal.Fractal[rune, *turtle.Turtle], error) {
	d, err := s.Dictionary()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("fractals: %s = %s", s.Name, d)
	return fractal.New(lsys.FromText(s.Axiom), d, opts...)
}

// Turtle creates a turtle with the initial heading of s.
func (s System) Turtle() *turtle.Turtle {
	return turtle.New(s.Heading)
}

// Draw interprets generation depth of f with a fresh turtle for s.
func (s System) Draw(f *fractal.Fractal[rune, *turtle.Turtle], depth int) (*turtle.Turtle, error) {
	t := s.Turtle()
	if err := f.ApplySemantics(depth, t); err != nil {
		return nil, err
	}
	return t, nil
}
