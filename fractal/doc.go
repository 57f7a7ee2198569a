/*
Package fractal drives the generations of an L-system.

A fractal starts from an axiom, i.e. a start word, and a dictionary of patterns.
Every generation is computed from its predecessor by segmenting it into
dictionary patterns (see package segment) and replacing every pattern by its
replacement, if the dictionary entry has one. Patterns without replacement are
copied unchanged.

	dict := ...    // a dictionary with F -> F+F--F+F, + and -
	koch, err := fractal.New(lsys.FromText("F"), dict, fractal.MaxDepth(8))
	w, err := koch.Generation(3)

Generations are cached: asking for a depth already computed is O(1), asking
for a deeper one computes and caches every generation in between.

Interpreting a word means executing the actions of its patterns, from left to
right, against a payload owned by the caller (see ApplySemantics).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–23 Norbert Pillmayer <norbert@pillmayer.com>
*/
package fractal

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
