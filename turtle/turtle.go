/*
Package turtle interprets L-system words as turtle graphics.

A turtle is a payload for the actions of a dictionary (see package
dictionary). It has a position and a heading, draws polylines while moving
forward, may jump without drawing, and keeps a stack of saved states for
branching structures like plants.

	t := turtle.New(0)
	dict.Insert(lsys.FromText("F"), dictionary.NewEntry[rune, *turtle.Turtle]().
	    WithAction(turtle.Draw[rune]()))
	dict.Insert(lsys.FromText("+"), dictionary.NewEntry[rune, *turtle.Turtle]().
	    WithAction(turtle.Turn[rune](60)))
	...
	err := fractal.ApplySemantics(word, dict, t)
	lines := t.Polylines()

The turtle moves in unit steps in a mathematical coordinate system, i.e. with
the y-axis pointing upwards. Headings are measured in degrees, counterclockwise
from the positive x-axis.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–23 Norbert Pillmayer <norbert@pillmayer.com>
*/
package turtle

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Point is a position in the plane.
type Point struct {
	X, Y float64
}

// Norm is the distance of p from the origin.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f,%.3f)", p.X, p.Y)
}

type state struct {
	pos     Point
	heading float64 // radians
}

// Turtle is a drawing state machine.
type Turtle struct {
	state
	start     state
	polylines [][]Point
	stack     []state
}

// New creates a turtle at the origin, heading in direction heading (in degrees).
func New(heading float64) *Turtle {
	t := &Turtle{}
	t.start = state{heading: heading * math.Pi / 180}
	t.Clear()
	return t
}

// Clear resets t to its initial state and drops everything drawn.
func (t *Turtle) Clear() {
	t.state = t.start
	t.polylines = [][]Point{{t.pos}}
	t.stack = t.stack[:0]
}

// Position returns the current position of t.
func (t *Turtle) Position() Point {
	return t.pos
}

// Heading returns the current heading of t in degrees.
func (t *Turtle) Heading() float64 {
	return t.heading * 180 / math.Pi
}

// Forward moves t one step in the direction of its heading, drawing a line.
func (t *Turtle) Forward() {
	t.move()
	last := len(t.polylines) - 1
	t.polylines[last] = append(t.polylines[last], t.pos)
}

// Jump moves t one step in the direction of its heading without drawing.
func (t *Turtle) Jump() {
	t.move()
	t.lift()
}

func (t *Turtle) move() {
	t.pos.X += math.Cos(t.heading)
	t.pos.Y += math.Sin(t.heading)
}

// lift starts a new polyline at the current position. A polyline consisting
// of a start point only is re-used.
func (t *Turtle) lift() {
	last := len(t.polylines) - 1
	if len(t.polylines[last]) <= 1 {
		t.polylines[last] = []Point{t.pos}
		return
	}
	t.polylines = append(t.polylines, []Point{t.pos})
}

// Turn changes the heading of t by deg degrees, counterclockwise for deg > 0.
func (t *Turtle) Turn(deg float64) {
	t.heading += deg * math.Pi / 180
}

// Push saves the current position and heading of t.
func (t *Turtle) Push() {
	t.stack = append(t.stack, t.state)
}

// Pop restores the position and heading saved by the most recent call to Push.
// Drawing continues with a new polyline. Pop returns false if there is no
// saved state; t is unchanged then.
func (t *Turtle) Pop() bool {
	if len(t.stack) == 0 {
		tracer().Errorf("turtle: pop from empty state stack")
		return false
	}
	t.state = t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.lift()
	return true
}

// StackDepth returns the number of saved states.
func (t *Turtle) StackDepth() int {
	return len(t.stack)
}

// Polylines returns the lines drawn so far. Polylines without any line
// segment are omitted.
func (t *Turtle) Polylines() [][]Point {
	lines := make([][]Point, 0, len(t.polylines))
	for _, pl := range t.polylines {
		if len(pl) > 1 {
			lines = append(lines, pl)
		}
	}
	return lines
}

// Vertices returns the number of vertices of all polylines.
func (t *Turtle) Vertices() int {
	n := 0
	for _, pl := range t.Polylines() {
		n += len(pl)
	}
	return n
}

// Bounds returns the bounding box of all vertices drawn so far.
// For a turtle which has not drawn anything, both corners are its position.
func (t *Turtle) Bounds() (lower, upper Point) {
	lower, upper = t.pos, t.pos
	first := true
	for _, pl := range t.Polylines() {
		for _, p := range pl {
			if first {
				lower, upper = p, p
				first = false
				continue
			}
			lower.X, lower.Y = math.Min(lower.X, p.X), math.Min(lower.Y, p.Y)
			upper.X, upper.Y = math.Max(upper.X, p.X), math.Max(upper.Y, p.Y)
		}
	}
	return
}

// Center returns the mean of all vertices drawn so far. The second return
// value is false if nothing has been drawn.
func (t *Turtle) Center() (Point, bool) {
	var c Point
	n := 0
	for _, pl := range t.Polylines() {
		for _, p := range pl {
			c.X += p.X
			c.Y += p.Y
			n++
		}
	}
	if n == 0 {
		return c, false
	}
	return Point{X: c.X / float64(n), Y: c.Y / float64(n)}, true
}

// Transform returns the polylines drawn so far, moved by -offset and then
// scaled by factor. The turtle itself is not changed.
func (t *Turtle) Transform(offset Point, factor float64) [][]Point {
	lines := t.Polylines()
	out := make([][]Point, len(lines))
	for i, pl := range lines {
		out[i] = make([]Point, len(pl))
		for j, p := range pl {
			q := p.Sub(offset)
			out[i][j] = Point{X: q.X * factor, Y: q.Y * factor}
		}
	}
	return out
}

// Centered returns the polylines drawn so far, moved to have their center at
// the origin and scaled by factor.
func (t *Turtle) Centered(factor float64) [][]Point {
	c, _ := t.Center()
	return t.Transform(c, factor)
}
