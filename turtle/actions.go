package turtle

import (
	"github.com/npillmayer/lsys"
	"github.com/npillmayer/lsys/dictionary"
	"github.com/npillmayer/lsys/fractal"
)

// Draw returns an action which moves the turtle forward, drawing a line.
func Draw[L lsys.Letter]() dictionary.ActionFunc[L, *Turtle] {
	return func(_ lsys.Word[L], t *Turtle) { t.Forward() }
}

// Move returns an action which moves the turtle forward without drawing.
func Move[L lsys.Letter]() dictionary.ActionFunc[L, *Turtle] {
	return func(_ lsys.Word[L], t *Turtle) { t.Jump() }
}

// Turn returns an action which turns the turtle by deg degrees.
func Turn[L lsys.Letter](deg float64) dictionary.ActionFunc[L, *Turtle] {
	return func(_ lsys.Word[L], t *Turtle) { t.Turn(deg) }
}

// Save returns an action which pushes the turtle's state.
func Save[L lsys.Letter]() dictionary.ActionFunc[L, *Turtle] {
	return func(_ lsys.Word[L], t *Turtle) { t.Push() }
}

// Restore returns an action which pops the turtle's state.
func Restore[L lsys.Letter]() dictionary.ActionFunc[L, *Turtle] {
	return func(_ lsys.Word[L], t *Turtle) { t.Pop() }
}

// ScaleFactor computes the factor by which a drawing shrinks from one
// generation to the next, if every generation should span the same distance.
// It interprets the replacement of the pattern forward, starting from the
// origin, and returns 1/d for the distance d of the end point from the origin.
//
// If forward has no replacement, or its replacement returns to the origin,
// the factor is 1.
func ScaleFactor[L lsys.Letter](dict *dictionary.Dictionary[L, *Turtle], forward lsys.Word[L]) (float64, error) {
	e, ok := dict.Get(forward)
	if !ok {
		return 1, nil
	}
	r, ok := e.Replacement()
	if !ok {
		return 1, nil
	}
	t := New(0)
	if err := fractal.ApplySemantics(r, dict, t); err != nil {
		return 1, err
	}
	d := t.Position().Norm()
	if d < 1e-9 {
		return 1, nil
	}
	return 1 / d, nil
}
