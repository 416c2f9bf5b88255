package parser

import (
	"io"
	"strings"

	"github.com/npillmayer/opmark/core"
	"github.com/npillmayer/opmark/mark"
)

// Parser parses one OpMark document. It is a pull-based iterator over the
// marks of the document; each instance is single-use. Independent
// instances share no state and may run concurrently.
type Parser struct {
	b        *builder
	warnings []Warning
}

// New creates a Parser for the OpMark text content of a document.
func New(text string) *Parser {
	return NewReader(strings.NewReader(text))
}

// NewReader creates a Parser reading OpMark content from r. The input is
// NFC-normalized.
func NewReader(r io.Reader) *Parser {
	p := &Parser{}
	p.b = newBuilder(newScanner(r), p.addWarning)
	return p
}

// Next returns the next mark of the document in source order, or false
// when the input is exhausted. Marks are blocks and page breaks; clients
// may stop consuming at any point.
func (p *Parser) Next() (mark.Mark, bool) {
	return p.b.next()
}

// Document drains the parser and assembles the marks into a document:
// it starts with one empty page, appends blocks to the current page and
// opens a new page on every page break, even if the current page is
// empty.
func (p *Parser) Document() *mark.Document {
	doc := &mark.Document{Pages: []mark.Page{{}}}
	for {
		m, ok := p.Next()
		if !ok {
			break
		}
		switch t := m.(type) {
		case mark.PageBreak:
			doc.Pages = append(doc.Pages, mark.Page{})
		case mark.Block:
			page := &doc.Pages[len(doc.Pages)-1]
			page.Blocks = append(page.Blocks, t)
		default:
			tracer().Errorf("parser emitted unknown mark %T, dropping it", m)
		}
	}
	tracer().Infof("assembled document with %d page(s)", len(doc.Pages))
	return doc
}

// Warnings returns the diagnostics collected so far. Warnings are
// additive: they never change the parse result.
func (p *Parser) Warnings() []Warning {
	return p.warnings
}

func (p *Parser) addWarning(lineno int, err error) {
	tracer().Infof("line %d: %s", lineno, core.UserMessage(err))
	p.warnings = append(p.warnings, Warning{Line: lineno, err: err})
}

// Parse parses an OpMark document eagerly.
func Parse(text string) *mark.Document {
	return New(text).Document()
}

// ParseReader parses an OpMark document from a reader.
func ParseReader(r io.Reader) *mark.Document {
	return NewReader(r).Document()
}

// --- Warnings --------------------------------------------------------------

// Warning is a diagnostic about a degraded construct.
type Warning struct {
	Line int // 1-based source line
	err  error
}

// Code returns the error code associated with the warning.
func (w Warning) Code() int {
	return core.Code(w.err)
}

// Message returns the user message of the warning.
func (w Warning) Message() string {
	return core.UserMessage(w.err)
}

// Unwrap exposes the underlying error.
func (w Warning) Unwrap() error {
	return w.err
}
