/*
Package dictionary holds the patterns of an L-system together with their
replacements and semantic actions.

A dictionary maps non-empty words (patterns) to entries. An entry may carry a
replacement word, used when rewriting a generation into the next one, and an
action, executed when interpreting a generation. Either may be missing: a
pattern without replacement is copied unchanged into the next generation, a
pattern without action is skipped during interpretation.

Patterns are stored in a trie over letters. Lookups with Get are exact; walking
the trie letter by letter with a Cursor is how package segment finds the
longest pattern which is a prefix of some text.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–23 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dictionary

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
