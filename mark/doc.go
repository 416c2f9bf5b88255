/*
Package mark defines the document model for OpMark content.

OpMark is a lightweight markup language focused on presentation making.
A parsed document is a pure tree: a Document owns an ordered sequence of
Pages, a Page owns an ordered sequence of Blocks (headings, paragraphs,
lists, images, hyperlinks, code blocks, quotes, separators), and textual
blocks own trees of inline Spans carrying formatting (bold, italics,
code, small, strikethrough, underline). No back-references exist in the
model, making values trivially serializable and safe to share.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package mark

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'opmark.mark'.
func tracer() tracing.Trace {
	return tracing.Select("opmark.mark")
}
