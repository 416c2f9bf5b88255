package mark

import "strings"

// AlignHorizontal tells how an element aligns horizontally. Currently only
// images carry an alignment.
type AlignHorizontal int8

// Horizontal alignments.
const (
	AlignAuto AlignHorizontal = iota
	AlignLeft
	AlignRight
	AlignCenter
)

func (a AlignHorizontal) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	}
	return "auto"
}

// ImageStyle holds the presentation options of an image element, given as
// `![alt](src)<w50|center|https://…>`.
type ImageStyle struct {
	AlignH    AlignHorizontal
	Hyperlink string  // url the image links to, "" for none
	Width     float64 // 0 = natural width
	Height    float64 // 0 = natural height
}

// StyleSet is the set of formatting attributes active for a flat run of
// text. It is derived from the nesting of formatted spans and drives the
// styled-text adapter.
type StyleSet struct {
	Bold          bool
	Italic        bool
	Code          bool
	Small         bool
	Strikethrough bool
	Underline     bool
	Hyperlink     string
}

// With returns a copy of the set with the attribute for the given span
// kind switched on. Plain and image kinds leave the set unchanged.
func (set StyleSet) With(kind SpanKind) StyleSet {
	switch kind {
	case SKBold:
		set.Bold = true
	case SKItalic:
		set.Italic = true
	case SKCode:
		set.Code = true
	case SKSmall:
		set.Small = true
	case SKStrikethrough:
		set.Strikethrough = true
	case SKUnderline:
		set.Underline = true
	}
	return set
}

// IsPlain returns true if no formatting attribute is set.
func (set StyleSet) IsPlain() bool {
	return set == StyleSet{}
}

// String is part of interface cords.styled.Style.
func (set StyleSet) String() string {
	var attrs []string
	if set.Bold {
		attrs = append(attrs, "bold")
	}
	if set.Italic {
		attrs = append(attrs, "italic")
	}
	if set.Code {
		attrs = append(attrs, "code")
	}
	if set.Small {
		attrs = append(attrs, "small")
	}
	if set.Strikethrough {
		attrs = append(attrs, "strikethrough")
	}
	if set.Underline {
		attrs = append(attrs, "underline")
	}
	if set.Hyperlink != "" {
		attrs = append(attrs, "link="+set.Hyperlink)
	}
	if len(attrs) == 0 {
		return "<plain>"
	}
	return "<" + strings.Join(attrs, "|") + ">"
}
