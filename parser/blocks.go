package parser

import (
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/opmark/core"
	"github.com/npillmayer/opmark/mark"
)

// builder is the block-building state machine. It consumes classified
// lines from the scanner and produces a stream of marks: blocks and page
// breaks, annotated with the transition group they belong to.
//
// States are implicit in the accumulation fields: an open paragraph, an
// open quote or an open list. At most one of them is active at a time.
// Structural lines close whatever is open; end of input flushes it, so no
// input can leave a block unterminated.
type builder struct {
	sc    *scanner
	warn  warnFunc
	queue []mark.Mark // completed marks not yet handed to the client
	eof   bool

	para      []mark.Span // open paragraph content
	paraLine  int
	quote     []mark.Span // open quote content
	quoteLine int
	list      *mark.List // open list

	counters      *treemap.Map // indent level → last ordinal of the open ordered context
	orderedIndent int          // indent level of the most recent ordered item

	transition int // transition group order for blocks being built
	nextOrder  int // order the next unnumbered `---t` receives
}

func newBuilder(sc *scanner, warn warnFunc) *builder {
	return &builder{
		sc:        sc,
		warn:      warn,
		counters:  treemap.NewWithIntComparator(),
		nextOrder: 1,
	}
}

// next returns the next completed mark, or false after end of input.
func (b *builder) next() (mark.Mark, bool) {
	for {
		if len(b.queue) > 0 {
			m := b.queue[0]
			b.queue = b.queue[1:]
			return m, true
		}
		if b.eof {
			return nil, false
		}
		ln, ok := b.sc.next()
		if !ok {
			b.eof = true
			b.closeAll()
			continue
		}
		b.dispatch(ln)
	}
}

func (b *builder) emit(m mark.Mark) {
	tracer().Debugf("emit %s", m)
	b.queue = append(b.queue, m)
}

func (b *builder) info(ln line) mark.BlockInfo {
	return mark.BlockInfo{Line: ln.no, Transition: b.transition}
}

func (b *builder) dispatch(ln line) {
	switch ln.kind {
	case lineBlank:
		b.closeAll()
		b.counters.Clear()
	case linePlain:
		b.closeQuote()
		b.closeList()
		if len(b.para) == 0 {
			b.paraLine = ln.no
		} else {
			b.para = append(b.para, mark.Plain("\n"))
		}
		b.para = append(b.para, resolveInline(ln.text, ln.no, b.warn)...)
	case lineHeading:
		b.closeAll()
		level := ln.level
		if level > 5 {
			level = 5
		}
		b.emit(mark.Heading{
			BlockInfo: b.info(ln),
			Level:     level,
			Content:   resolveInline(ln.text, ln.no, b.warn),
		})
	case lineQuote:
		b.closePara()
		b.closeList()
		if len(b.quote) == 0 {
			b.quoteLine = ln.no
		} else {
			b.quote = append(b.quote, mark.Plain("\n"))
		}
		b.quote = append(b.quote, resolveInline(ln.text, ln.no, b.warn)...)
	case lineUnordered:
		b.closePara()
		b.closeQuote()
		if b.list != nil && b.list.Ordered {
			b.closeList()
		}
		if b.list == nil {
			b.list = &mark.List{BlockInfo: b.info(ln)}
		}
		b.list.Items = append(b.list.Items, mark.ListItem{
			Content: resolveInline(ln.text, ln.no, b.warn),
			Indent:  ln.level,
		})
	case lineOrdered:
		b.closePara()
		b.closeQuote()
		if b.list != nil && !b.list.Ordered {
			b.closeList()
		}
		number := 1
		if b.list != nil && b.orderedIndent >= ln.level {
			if v, found := b.counters.Get(ln.level); found {
				number = v.(int) + 1
			}
		}
		if b.list == nil {
			b.list = &mark.List{BlockInfo: b.info(ln), Ordered: true}
		}
		b.counters.Put(ln.level, number)
		b.orderedIndent = ln.level
		b.list.Items = append(b.list.Items, mark.ListItem{
			Content: resolveInline(ln.text, ln.no, b.warn),
			Indent:  ln.level,
			Number:  number,
		})
	case lineImage:
		b.closeAll()
		img, _, ok := parseImageAtom(ln.text, ln.no, b.warn)
		if !ok { // scanner guarantees a well-formed atom
			b.emit(mark.Paragraph{
				BlockInfo: b.info(ln),
				Content:   []mark.Span{mark.Plain(ln.text)},
			})
			return
		}
		b.emit(mark.Image{
			BlockInfo: b.info(ln),
			Alt:       img.alt,
			Src:       img.src,
			Style:     img.style,
		})
	case lineLink:
		b.closeAll()
		label, url, _, ok := parseLinkAtom(ln.text)
		if !ok {
			b.emit(mark.Paragraph{
				BlockInfo: b.info(ln),
				Content:   []mark.Span{mark.Plain(ln.text)},
			})
			return
		}
		b.emit(mark.Link{BlockInfo: b.info(ln), Label: label, URL: url})
	case lineFence:
		b.closeAll()
		b.emit(b.gatherCodeBlock(ln))
	case linePageBreak:
		b.closeAll()
		b.counters.Clear()
		b.transition = 0
		b.nextOrder = 1
		b.emit(mark.PageBreak{Line: ln.no})
	case lineTransition:
		b.closeAll()
		order := ln.order
		if order < 0 {
			order = b.nextOrder
		}
		b.transition = order
		b.nextOrder = order + 1
	case lineTransitionEnd:
		b.closeAll()
		b.transition = 0
	case lineSeparatorH:
		b.closeAll()
		b.emit(mark.Separator{BlockInfo: b.info(ln)})
	case lineSeparatorV:
		b.closeAll()
		b.emit(mark.Separator{BlockInfo: b.info(ln), Vertical: true})
	}
}

// gatherCodeBlock collects verbatim lines up to the closing fence. A
// missing closing fence swallows the rest of the input, with a warning.
func (b *builder) gatherCodeBlock(open line) mark.CodeBlock {
	var lines []string
	for {
		ln, ok := b.sc.next()
		if !ok {
			b.eof = true
			if b.warn != nil {
				b.warn(open.no, core.Error(core.EMISSING, "code fence opened at line %d is never closed", open.no))
			}
			break
		}
		if ln.kind == lineFence {
			break
		}
		lines = append(lines, ln.raw)
	}
	return mark.CodeBlock{
		BlockInfo: b.info(open),
		Code:      strings.Join(lines, "\n"),
		Language:  open.text,
	}
}

// --- Closing open blocks ---------------------------------------------------

func (b *builder) closeAll() {
	b.closePara()
	b.closeQuote()
	b.closeList()
}

func (b *builder) closePara() {
	if len(b.para) == 0 {
		return
	}
	b.emit(mark.Paragraph{
		BlockInfo: mark.BlockInfo{Line: b.paraLine, Transition: b.transition},
		Content:   b.para,
	})
	b.para = nil
}

func (b *builder) closeQuote() {
	if len(b.quote) == 0 {
		return
	}
	b.emit(mark.Quote{
		BlockInfo: mark.BlockInfo{Line: b.quoteLine, Transition: b.transition},
		Content:   b.quote,
	})
	b.quote = nil
}

func (b *builder) closeList() {
	if b.list == nil {
		return
	}
	b.emit(*b.list)
	b.list = nil
	b.counters.Clear()
	b.orderedIndent = 0
}
