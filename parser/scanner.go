package parser

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lineKind classifies an input line. Classification is purely lexical and
// never looks beyond the current line. Every line classifies to at least
// linePlain, which makes the scanner total.
type lineKind int8

const (
	lineBlank lineKind = iota
	linePlain
	lineHeading
	lineUnordered
	lineOrdered
	lineQuote
	lineImage
	lineLink
	lineFence
	linePageBreak
	lineTransition
	lineTransitionEnd
	lineSeparatorH
	lineSeparatorV
)

// line is a classified input line.
type line struct {
	kind  lineKind
	no    int    // 1-based source line number
	raw   string // unmodified line content
	text  string // content with the structural prefix stripped
	level int    // heading level or list indent level
	order int    // explicit transition order, -1 for none
}

// scanner produces a lazy, single-pass sequence of classified lines.
// Input is NFC-normalized on the fly. Lines are read without a length
// cap, so no input can truncate the scan.
type scanner struct {
	input  *bufio.Reader
	lineno int
	eof    bool
}

func newScanner(r io.Reader) *scanner {
	return &scanner{input: bufio.NewReader(norm.NFC.Reader(r))}
}

// next returns the next classified line, or false at end of input.
func (sc *scanner) next() (line, bool) {
	if sc.eof {
		return line{}, false
	}
	raw, err := sc.input.ReadString('\n')
	if err != nil {
		sc.eof = true
		if raw == "" {
			return line{}, false
		}
	}
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	sc.lineno++
	ln := classify(raw, sc.lineno)
	tracer().Debugf("line %d: kind=%d %q", ln.no, ln.kind, ln.raw)
	return ln, true
}

// classify determines the kind of a raw input line. Leading/trailing
// whitespace is trimmed before classification, except that leading spaces
// determine the indent level of list items.
func classify(raw string, no int) line {
	ln := line{kind: linePlain, no: no, raw: raw, order: -1}
	trimmed := strings.TrimSpace(raw)
	ln.text = trimmed
	switch trimmed {
	case "":
		ln.kind = lineBlank
		return ln
	case "---":
		ln.kind = linePageBreak
		return ln
	case "t---":
		ln.kind = lineTransitionEnd
		return ln
	case "----":
		ln.kind = lineSeparatorH
		return ln
	case "----v":
		ln.kind = lineSeparatorV
		return ln
	}
	if rest, ok := strings.CutPrefix(trimmed, "---t"); ok {
		if rest == "" {
			ln.kind = lineTransition
			return ln
		}
		n, err := strconv.Atoi(rest)
		switch {
		case err == nil && n >= 0:
			ln.kind = lineTransition
			ln.order = n
		case errors.Is(err, strconv.ErrRange):
			ln.kind = lineTransition // order too large: keep the implicit one
		}
		return ln // e.g. `---tx`: plain text
	}
	if lang, ok := strings.CutPrefix(trimmed, "```"); ok {
		ln.kind = lineFence
		ln.text = lang
		return ln
	}
	if strings.HasPrefix(trimmed, "#") {
		level := 0
		for level < len(trimmed) && trimmed[level] == '#' {
			level++
		}
		if text, ok := strings.CutPrefix(trimmed[level:], " "); ok && text != "" {
			ln.kind = lineHeading
			ln.level = level
			ln.text = text
			return ln
		}
		return ln // hash prefix without title: plain text
	}
	if text, ok := strings.CutPrefix(trimmed, "> "); ok {
		ln.kind = lineQuote
		ln.text = text
		return ln
	}
	if strings.HasPrefix(trimmed, "![") {
		if _, n, ok := parseImageAtom(trimmed, no, nil); ok && n == len(trimmed) {
			ln.kind = lineImage
			return ln
		}
	}
	if strings.HasPrefix(trimmed, "[") {
		if _, _, n, ok := parseLinkAtom(trimmed); ok && n == len(trimmed) {
			ln.kind = lineLink
			return ln
		}
	}
	if text, ok := strings.CutPrefix(trimmed, "- "); ok {
		ln.kind = lineUnordered
		ln.level = indentLevel(raw)
		ln.text = text
		return ln
	}
	if text, ok := cutOrdinalPrefix(trimmed); ok {
		ln.kind = lineOrdered
		ln.level = indentLevel(raw)
		ln.text = text
		return ln
	}
	return ln
}

// indentLevel derives the list indent level from leading spaces, two
// spaces per level, capped at 5.
func indentLevel(raw string) int {
	spaces := 0
	for spaces < len(raw) && raw[spaces] == ' ' {
		spaces++
	}
	level := spaces / 2
	if level > 5 {
		level = 5
	}
	return level
}

// cutOrdinalPrefix strips an ordered-list marker (digits followed by a dot
// and a space) from s.
func cutOrdinalPrefix(s string) (string, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s, false
	}
	return strings.CutPrefix(s[i:], ". ")
}
