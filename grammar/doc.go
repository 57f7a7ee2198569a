/*
Package grammar checks production rules of an L-system against declared
alphabets of terminals and non-terminals.

A grammar is created from two disjoint alphabets. Production rules are
validated before they become part of a grammar: every letter on the left hand
side and on the right hand side of a rule has to be a declared letter.
Validation stops at the first unknown letter and reports the rule, the side
and the letter (see type Error).

Validated grammars may be turned into a dictionary for package fractal, or,
if they are context-free, be handed over to the LR machinery of
github.com/npillmayer/gorgo for further analysis.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–23 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
