package mark

import (
	"github.com/npillmayer/cords"
	sty "github.com/npillmayer/cords/styled"
)

// Recursive inline spans are convenient for structural clients, but
// renderers usually want flat runs of uniformly styled text. StyledText
// bridges the two views with a styled cord.

// StyledText flattens a tree of inline spans into a styled text. Nested
// formatting combines: a span inside bold inside italic yields a run with
// both attributes set.
func StyledText(spans []Span) (*sty.Text, error) {
	if len(spans) == 0 {
		return sty.TextFromCord(cords.Cord{}), nil
	}
	b := cords.NewBuilder()
	collectRuns(spans, StyleSet{}, b)
	text := sty.TextFromCord(b.Cord())
	err := text.Raw().EachLeaf(func(l cords.Leaf, pos uint64) error {
		leaf, ok := l.(*runLeaf)
		if !ok {
			tracer().Errorf("styled text over foreign cord leaf %T", l)
			return cords.ErrIllegalArguments
		}
		text.Style(leaf.style, pos, pos+l.Weight())
		return nil
	})
	if err != nil {
		return nil, err
	}
	return text, nil
}

// ForEachStyleRun applies f to each run of uniformly styled text, in text
// order.
func ForEachStyleRun(text *sty.Text, f func(run Run) error) error {
	return text.EachStyleRun(func(content string, style sty.Style, pos uint64) error {
		r := Run{
			Text:     content,
			Position: pos,
		}
		if set, ok := style.(StyleSet); ok {
			r.StyleSet = set
		}
		return f(r)
	})
}

// Run is a simple container type to hold a run of text with equal style.
type Run struct {
	Text     string
	Position uint64
	StyleSet StyleSet
}

func collectRuns(spans []Span, active StyleSet, b *cords.Builder) {
	for _, s := range spans {
		switch s.Kind {
		case SKPlain:
			appendRun(b, s.Text, active)
		case SKImage:
			appendRun(b, s.Text, active)
		case SKLink:
			linked := active
			linked.Hyperlink = s.URL
			collectRuns(s.Children, linked, b)
		default:
			collectRuns(s.Children, active.With(s.Kind), b)
		}
	}
}

func appendRun(b *cords.Builder, text string, style StyleSet) {
	if text == "" {
		return
	}
	leaf := &runLeaf{
		style:   style,
		length:  uint64(len(text)),
		content: text,
	}
	b.Append(leaf)
}

// Equals is part of interface cords.styled.Style, not intended for client
// usage.
func (set StyleSet) Equals(other sty.Style) bool {
	o, ok := other.(StyleSet)
	return ok && o == set
}

var _ sty.Style = StyleSet{}

// --- Cord leaves -----------------------------------------------------------

// runLeaf is the leaf type for cords built from inline spans.
// Not intended for client usage.
type runLeaf struct {
	style   StyleSet
	length  uint64
	content string
}

// Weight is part of interface cords.Leaf.
func (l runLeaf) Weight() uint64 {
	return l.length
}

// String is part of interface cords.Leaf.
func (l runLeaf) String() string {
	return l.content
}

// Split is part of interface cords.Leaf.
func (l runLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	left := &runLeaf{
		style:   l.style,
		length:  i,
		content: l.content[:i],
	}
	right := &runLeaf{
		style:   l.style,
		length:  l.length - i,
		content: l.content[i:],
	}
	return left, right
}

// Substring is part of interface cords.Leaf.
func (l runLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = runLeaf{}
