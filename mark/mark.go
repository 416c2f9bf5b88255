package mark

import (
	"fmt"
	"strings"
)

// Mark is a unit of parser output. The parser emits marks in source order:
// blocks, page breaks and transition boundaries. Clients either consume
// marks one by one or let the document assembler fold them into a Document.
type Mark interface {
	fmt.Stringer
	SourceLine() int // 1-based line number where the mark started
}

// BlockKind classifies blocks. The set of kinds is closed; a switch over
// all BK* constants is exhaustive.
type BlockKind int8

// Block kinds.
const (
	BKParagraph BlockKind = iota
	BKHeading
	BKList
	BKImage
	BKLink
	BKCodeBlock
	BKQuote
	BKSeparator
)

func (bk BlockKind) String() string {
	switch bk {
	case BKParagraph:
		return "paragraph"
	case BKHeading:
		return "heading"
	case BKList:
		return "list"
	case BKImage:
		return "image"
	case BKLink:
		return "link"
	case BKCodeBlock:
		return "code-block"
	case BKQuote:
		return "quote"
	case BKSeparator:
		return "separator"
	}
	return "<illegal block kind>"
}

// Block is a structural unit of a page. Every block belongs to exactly one
// page; blocks never span page boundaries.
type Block interface {
	Mark
	Kind() BlockKind
	TransitionOrder() int // order of the transition group the block shows up in
}

// BlockInfo carries the source position and transition annotation common to
// all block types. It is embedded by every concrete block.
type BlockInfo struct {
	Line       int // 1-based source line where the block starts
	Transition int // transition group order, 0 = visible from the start
}

// SourceLine is part of interface Mark.
func (info BlockInfo) SourceLine() int {
	return info.Line
}

// TransitionOrder is part of interface Block.
func (info BlockInfo) TransitionOrder() int {
	return info.Transition
}

// --- Page breaks -----------------------------------------------------------

// PageBreak signals a page boundary. It is emitted by the parser for every
// `---` line and produces no block of its own.
type PageBreak struct {
	Line int
}

// SourceLine is part of interface Mark.
func (pb PageBreak) SourceLine() int {
	return pb.Line
}

func (pb PageBreak) String() string {
	return "---"
}

// --- Blocks ----------------------------------------------------------------

// Heading is a single-line heading block. Level runs from 1 (top-level)
// to 5; deeper prefixes clamp to 5.
type Heading struct {
	BlockInfo
	Level   int
	Content []Span
}

// Kind is part of interface Block.
func (h Heading) Kind() BlockKind {
	return BKHeading
}

func (h Heading) String() string {
	return fmt.Sprintf("%s \"%s\"", strings.Repeat("#", h.Level), PlainText(h.Content))
}

// Paragraph groups contiguous plain-text lines into one block of running
// prose. Line boundaries inside the paragraph are preserved as newline
// spans.
type Paragraph struct {
	BlockInfo
	Content []Span
}

// Kind is part of interface Block.
func (p Paragraph) Kind() BlockKind {
	return BKParagraph
}

func (p Paragraph) String() string {
	return fmt.Sprintf("¶\"%s\"", PlainText(p.Content))
}

// ListItem is one entry of a List.
type ListItem struct {
	Content []Span
	Indent  int // indent level, 0–5, two spaces per level
	Number  int // 1-based ordinal for ordered lists, 0 for unordered
}

// List groups contiguous list-marker lines of the same kind. Switching the
// marker kind, a blank line or any non-list line closes a list.
type List struct {
	BlockInfo
	Ordered bool
	Items   []ListItem
}

// Kind is part of interface Block.
func (l List) Kind() BlockKind {
	return BKList
}

func (l List) String() string {
	var sb strings.Builder
	if l.Ordered {
		sb.WriteString("list[1.]")
	} else {
		sb.WriteString("list[-]")
	}
	for _, item := range l.Items {
		fmt.Fprintf(&sb, " (%s)", PlainText(item.Content))
	}
	return sb.String()
}

// Image is a standalone image block, `![alt](src)`, possibly carrying
// presentation options.
type Image struct {
	BlockInfo
	Alt   string
	Src   string
	Style ImageStyle
}

// Kind is part of interface Block.
func (img Image) Kind() BlockKind {
	return BKImage
}

func (img Image) String() string {
	return fmt.Sprintf("![%s](%s)", img.Alt, img.Src)
}

// Link is a standalone hyperlink block, `[label](url)`.
type Link struct {
	BlockInfo
	Label string
	URL   string
}

// Kind is part of interface Block.
func (l Link) Kind() BlockKind {
	return BKLink
}

func (l Link) String() string {
	return fmt.Sprintf("[%s](%s)", l.Label, l.URL)
}

// CodeBlock is a fenced block of verbatim text with an optional language
// tag.
type CodeBlock struct {
	BlockInfo
	Code     string
	Language string
}

// Kind is part of interface Block.
func (cb CodeBlock) Kind() BlockKind {
	return BKCodeBlock
}

func (cb CodeBlock) String() string {
	return fmt.Sprintf("code[%s](%d bytes)", cb.Language, len(cb.Code))
}

// Quote groups contiguous `> `-prefixed lines.
type Quote struct {
	BlockInfo
	Content []Span
}

// Kind is part of interface Block.
func (q Quote) Kind() BlockKind {
	return BKQuote
}

func (q Quote) String() string {
	return fmt.Sprintf(">\"%s\"", PlainText(q.Content))
}

// Separator is a horizontal (`----`) or vertical (`----v`) rule.
type Separator struct {
	BlockInfo
	Vertical bool
}

// Kind is part of interface Block.
func (s Separator) Kind() BlockKind {
	return BKSeparator
}

func (s Separator) String() string {
	if s.Vertical {
		return "----v"
	}
	return "----"
}

var _ Block = Heading{}
var _ Block = Paragraph{}
var _ Block = List{}
var _ Block = Image{}
var _ Block = Link{}
var _ Block = CodeBlock{}
var _ Block = Quote{}
var _ Block = Separator{}
var _ Mark = PageBreak{}

// --- Document and pages ----------------------------------------------------

// Page is a top-level grouping of blocks, separated by explicit page-break
// markers. A page with zero blocks is valid.
type Page struct {
	Blocks []Block
}

// MaxTransition returns the highest transition group order of any block on
// the page. A page without transition marks reports 0.
func (p Page) MaxTransition() (max int) {
	for _, b := range p.Blocks {
		if b.TransitionOrder() > max {
			max = b.TransitionOrder()
		}
	}
	return max
}

// Document is the result of a parse: an ordered, immutable sequence of
// pages. Documents hold no references back into the parser.
type Document struct {
	Pages []Page
}

// BlockCount returns the total number of blocks over all pages.
func (doc *Document) BlockCount() (n int) {
	for _, p := range doc.Pages {
		n += len(p.Blocks)
	}
	return n
}
