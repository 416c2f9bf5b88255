package mark

import (
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// GraphemeCount returns the number of user-perceived characters of a text,
// as defined by Unicode Annex #29.
func GraphemeCount(text string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(text).Len()
}

// Width returns the monospace display width of a text in multiples of an
// em, respecting East Asian wide and narrow character classes (Unicode
// Annex #11). context may be nil, defaulting to a Latin context.
//
// Slide layouts use this to estimate how much horizontal space a run of
// plain text will occupy.
func Width(text string, context *uax11.Context) int {
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(text)
	width := 0
	l := gstr.Len()
	for i := 0; i < l; i++ {
		width += uax11.Width([]byte(gstr.Nth(i)), context)
	}
	return width
}

// SpanWidth measures the plain text content of a span sequence.
func SpanWidth(spans []Span, context *uax11.Context) int {
	return Width(PlainText(spans), context)
}
