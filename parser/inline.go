package parser

import (
	"strconv"
	"strings"

	"github.com/npillmayer/opmark/core"
	"github.com/npillmayer/opmark/mark"
)

// Inline resolution scans one line of text left to right and produces a
// sequence of spans covering the line exactly once. Delimiter matching is
// greedy and leftmost: the first unmatched opener claims the nearest
// unescaped closer of the same type on the same line. An opener without a
// closer degrades to literal text.

// warnFunc receives additive diagnostics; may be nil.
type warnFunc func(lineno int, err error)

// specials are the characters which may start an inline construct.
const specials = "\\![<*`/$~_"

func delimKind(c byte) (mark.SpanKind, bool) {
	switch c {
	case '*':
		return mark.SKBold, true
	case '`':
		return mark.SKCode, true
	case '/':
		return mark.SKItalic, true
	case '$':
		return mark.SKSmall, true
	case '~':
		return mark.SKStrikethrough, true
	case '_':
		return mark.SKUnderline, true
	}
	return mark.SKPlain, false
}

// resolveInline resolves the inline content of one line of text.
func resolveInline(text string, lineno int, warn warnFunc) []mark.Span {
	var spans []mark.Span
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			spans = append(spans, mark.Plain(plain.String()))
			plain.Reset()
		}
	}
	i := 0
	for i < len(text) {
		next := strings.IndexAny(text[i:], specials)
		if next < 0 {
			plain.WriteString(text[i:])
			break
		}
		plain.WriteString(text[i : i+next])
		i += next
		c := text[i]
		switch c {
		case '\\': // escaped character is literal
			if i+1 < len(text) {
				plain.WriteByte(text[i+1])
				i += 2
			} else {
				plain.WriteByte(c)
				i++
			}
		case '!':
			if img, n, ok := parseImageAtom(text[i:], lineno, warn); ok {
				flush()
				spans = append(spans, img.span())
				i += n
			} else {
				plain.WriteByte(c)
				i++
			}
		case '[':
			if label, url, n, ok := parseLinkAtom(text[i:]); ok {
				flush()
				spans = append(spans, mark.Span{
					Kind:     mark.SKLink,
					URL:      url,
					Children: resolveInline(label, lineno, warn),
				})
				i += n
			} else {
				plain.WriteByte(c)
				i++
			}
		case '<':
			if url, n, ok := parseAutoLink(text[i:]); ok {
				flush()
				spans = append(spans, mark.Span{
					Kind:     mark.SKLink,
					URL:      url,
					Children: []mark.Span{mark.Plain(url)},
				})
				i += n
			} else {
				plain.WriteByte(c)
				i++
			}
		default:
			kind, _ := delimKind(c)
			j := findCloser(text, i+1, c)
			if j < 0 { // unterminated delimiter: keep the character
				plain.WriteByte(c)
				i++
				continue
			}
			flush()
			interior := text[i+1 : j]
			if kind == mark.SKCode { // code content stays verbatim
				spans = append(spans, mark.Format(mark.SKCode, mark.Plain(interior)))
			} else {
				spans = append(spans, mark.Span{
					Kind:     kind,
					Children: resolveInline(interior, lineno, warn),
				})
			}
			i = j + 1
		}
	}
	flush()
	return spans
}

// findCloser locates the next unescaped occurrence of c, or -1.
// Code delimiters do not honor escapes, code content is verbatim.
func findCloser(text string, from int, c byte) int {
	if c == '`' {
		if j := strings.IndexByte(text[from:], c); j >= 0 {
			return from + j
		}
		return -1
	}
	for j := from; j < len(text); j++ {
		if text[j] == '\\' {
			j++
			continue
		}
		if text[j] == c {
			return j
		}
	}
	return -1
}

// --- Atomic constructs -----------------------------------------------------

// imageAtom is a parsed `![alt](src)<options>` construct.
type imageAtom struct {
	alt   string
	src   string
	style mark.ImageStyle
}

func (img imageAtom) span() mark.Span {
	return mark.Span{Kind: mark.SKImage, Text: img.alt, URL: img.src}
}

// parseImageAtom parses an image construct at the start of s. It returns
// the consumed length. Malformed syntax returns ok=false and falls through
// to generic inline handling.
func parseImageAtom(s string, lineno int, warn warnFunc) (imageAtom, int, bool) {
	if !strings.HasPrefix(s, "![") {
		return imageAtom{}, 0, false
	}
	bracket := strings.IndexByte(s, ']')
	if bracket < 0 || bracket+1 >= len(s) || s[bracket+1] != '(' {
		return imageAtom{}, 0, false
	}
	paren := strings.IndexByte(s[bracket+2:], ')')
	if paren < 0 {
		return imageAtom{}, 0, false
	}
	parenEnd := bracket + 2 + paren
	img := imageAtom{
		alt: s[2:bracket],
		src: s[bracket+2 : parenEnd],
	}
	n := parenEnd + 1
	if n < len(s) && s[n] == '<' {
		if angle := strings.IndexByte(s[n:], '>'); angle > 0 {
			img.style = parseImageOptions(s[n+1:n+angle], lineno, warn)
			n += angle + 1
		}
	}
	return img, n, true
}

// parseLinkAtom parses a `[label](url)` construct at the start of s.
func parseLinkAtom(s string) (label, url string, n int, ok bool) {
	if !strings.HasPrefix(s, "[") {
		return "", "", 0, false
	}
	bracket := strings.IndexByte(s, ']')
	if bracket < 0 || bracket+1 >= len(s) || s[bracket+1] != '(' {
		return "", "", 0, false
	}
	paren := strings.IndexByte(s[bracket+2:], ')')
	if paren < 0 {
		return "", "", 0, false
	}
	parenEnd := bracket + 2 + paren
	return s[1:bracket], s[bracket+2 : parenEnd], parenEnd + 1, true
}

// parseAutoLink parses a bare `<url>` construct at the start of s.
func parseAutoLink(s string) (url string, n int, ok bool) {
	if !strings.HasPrefix(s, "<") {
		return "", 0, false
	}
	angle := strings.IndexByte(s, '>')
	if angle <= 1 {
		return "", 0, false
	}
	return s[1:angle], angle + 1, true
}

// parseImageOptions interprets the `<…>` option list of an image element.
// Options are separated by `|`: an alignment keyword, `w<width>`,
// `h<height>`, or a hyperlink target. A w/h option with a malformed number
// degrades to a hyperlink, as a warning.
func parseImageOptions(options string, lineno int, warn warnFunc) mark.ImageStyle {
	style := mark.ImageStyle{}
	for _, option := range strings.Split(options, "|") {
		switch option {
		case "":
			continue
		case "auto":
			style.AlignH = mark.AlignAuto
		case "left":
			style.AlignH = mark.AlignLeft
		case "right":
			style.AlignH = mark.AlignRight
		case "center":
			style.AlignH = mark.AlignCenter
		default:
			if strings.HasPrefix(option, "w") {
				if v, err := strconv.ParseFloat(option[1:], 64); err == nil {
					style.Width = v
					continue
				}
			} else if strings.HasPrefix(option, "h") {
				if v, err := strconv.ParseFloat(option[1:], 64); err == nil {
					style.Height = v
					continue
				}
			}
			if strings.HasPrefix(option, "w") || strings.HasPrefix(option, "h") {
				if warn != nil {
					warn(lineno, core.Error(core.EINVALID,
						"image option %q is not a number, treating it as a hyperlink", option))
				}
			}
			style.Hyperlink = option
		}
	}
	return style
}
