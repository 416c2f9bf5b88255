/*
Package parser implements the OpMark parser.

Parsing is a single-pass, purely sequential pipeline: a line scanner
classifies raw input lines, a block builder groups lines into blocks
(resolving inline formatting per text chunk), and a document assembler
folds blocks into pages. Clients either pull marks one by one,

    p := parser.New(input)
    for m, ok := p.Next(); ok; m, ok = p.Next() {
        // consume mark
    }

or parse eagerly into a document:

    doc := parser.Parse(input)

The parser is total: no input can make it fail. Malformed constructs
degrade to literal text, blocks left open at end of input are flushed,
and diagnostics are reported as additive warnings which never change the
parse result. Parser instances hold no shared state, so independent
documents may be parsed concurrently.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'opmark.parser'.
func tracer() tracing.Trace {
	return tracing.Select("opmark.parser")
}
