package mark

import (
	"fmt"
	"strings"
)

// SpanKind classifies inline spans. Like BlockKind it is a closed set.
type SpanKind int8

// Span kinds.
const (
	SKPlain SpanKind = iota
	SKBold
	SKItalic
	SKCode
	SKSmall
	SKStrikethrough
	SKUnderline
	SKLink
	SKImage
)

func (sk SpanKind) String() string {
	switch sk {
	case SKPlain:
		return "plain"
	case SKBold:
		return "bold"
	case SKItalic:
		return "italic"
	case SKCode:
		return "code"
	case SKSmall:
		return "small"
	case SKStrikethrough:
		return "strikethrough"
	case SKUnderline:
		return "underline"
	case SKLink:
		return "link"
	case SKImage:
		return "image"
	}
	return "<illegal span kind>"
}

// Span is a run of text within a block, carrying zero or one formatting
// attribute. Formatted spans wrap a nested sequence of child spans; plain
// spans carry text.
//
// Spans partition the source text of their line losslessly: concatenating
// the plain text of all spans reproduces the line, with only delimiter
// markers stripped.
type Span struct {
	Kind     SpanKind
	Text     string // text content for SKPlain, alt text for SKImage
	Children []Span // nested spans for formatted kinds and SKLink
	URL      string // target for SKLink, source path for SKImage
}

// Plain creates a plain-text span.
func Plain(text string) Span {
	return Span{Kind: SKPlain, Text: text}
}

// Format wraps child spans in a formatted span of the given kind.
func Format(kind SpanKind, children ...Span) Span {
	return Span{Kind: kind, Children: children}
}

// PlainText returns the unformatted text content of the span, i.e. the
// concatenation of all nested plain text.
func (s Span) PlainText() string {
	switch s.Kind {
	case SKPlain, SKImage:
		return s.Text
	}
	var sb strings.Builder
	for _, c := range s.Children {
		sb.WriteString(c.PlainText())
	}
	return sb.String()
}

func (s Span) String() string {
	if s.Kind == SKPlain {
		return fmt.Sprintf("%q", s.Text)
	}
	return fmt.Sprintf("%s(%q)", s.Kind, s.PlainText())
}

// PlainText concatenates the plain text of a span sequence.
func PlainText(spans []Span) string {
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText())
	}
	return sb.String()
}
