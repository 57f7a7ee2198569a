/*
Package lsys is about rewriting words over an alphabet, as done by
Lindenmayer systems (L-systems) to generate fractal curves.

Description

An L-system starts with a word, called the axiom, and a set of production
rules. Each rule maps a pattern (a short word) to a replacement. In one
generation step every occurrence of a pattern within the current word is
replaced in parallel, producing the next generation. The classic example is
the Koch curve:

   axiom:  F
   rule:   F → F+F--F+F

which after one step yields "F+F--F+F" and after two steps a word of length 64.
Interpreting the letters of a generation as drawing commands (F = forward,
+ = turn left, - = turn right) draws the curve.

Rules may have patterns of more than one letter (context dependent systems).
Finding the patterns within a word therefore is a segmentation problem: the
word is broken into a sequence of subwords, where at every position the
longest pattern known to the dictionary wins ("maximal munch"). A position
where no pattern matches is an error; there is no silent skipping.

BSD License

Copyright (c) 2022–23, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Base package lsys provides the vocabulary: letters, words and alphabets.
Words are immutable values; operations which would change a word return a
new one. This lets generations of an L-system share storage without fear of
one of them being modified behind the back of the others.

The dictionary of patterns lives in sub-package dictionary, the segmenting
driver in sub-package segment, and the generation driver in sub-package fractal.
Sub-package grammar checks rule sets against declared alphabets.
Sub-packages turtle and fractals interpret words as drawings and hold a
catalog of well known curves. Sub-package luaaction lets clients script
pattern semantics in Lua.

Tracing

All packages trace to the schuko core tracer (gtrace.CoreTracer). Clients
may set its trace level to tracing.LevelDebug to follow segmenting and
rewriting step by step.
*/
package lsys

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
