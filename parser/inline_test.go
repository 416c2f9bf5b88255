package parser

import (
	"testing"

	"github.com/npillmayer/opmark/mark"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestInlineSpanBoundaries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("*bold* and /italic/", 1, nil)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %v", len(spans), spans)
	}
	assert.Equal(t, mark.SKBold, spans[0].Kind)
	assert.Equal(t, "bold", spans[0].PlainText())
	assert.Equal(t, mark.Plain(" and "), spans[1])
	assert.Equal(t, mark.SKItalic, spans[2].Kind)
	assert.Equal(t, "italic", spans[2].PlainText())
}

func TestInlineUnterminatedDelimiter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("*no close", 1, nil)
	if len(spans) != 1 {
		t.Fatalf("expected a single span, got %d", len(spans))
	}
	if spans[0].Kind != mark.SKPlain || spans[0].Text != "*no close" {
		t.Errorf("expected literal plain text including the asterisk, got %v", spans[0])
	}
}

func TestInlineAllDelimiters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	input := "*b* `c` /i/ $s$ ~x~ _u_"
	spans := resolveInline(input, 1, nil)
	kinds := []mark.SpanKind{}
	for _, s := range spans {
		if s.Kind != mark.SKPlain {
			kinds = append(kinds, s.Kind)
		}
	}
	assert.Equal(t, []mark.SpanKind{mark.SKBold, mark.SKCode, mark.SKItalic,
		mark.SKSmall, mark.SKStrikethrough, mark.SKUnderline}, kinds)
	// losslessness: concatenated plain text is the input minus delimiters
	assert.Equal(t, "b c i s x u", mark.PlainText(spans))
}

func TestInlineNesting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("*/text/*", 1, nil)
	if len(spans) != 1 || spans[0].Kind != mark.SKBold {
		t.Fatalf("expected a single bold span, got %v", spans)
	}
	inner := spans[0].Children
	if len(inner) != 1 || inner[0].Kind != mark.SKItalic {
		t.Fatalf("expected italic nested inside bold, got %v", inner)
	}
	if got := spans[0].PlainText(); got != "text" {
		t.Errorf("expected plain text 'text', got %q", got)
	}
}

func TestInlineSameTypeReentrant(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	// `*a*b*c*` closes at the nearest match, left to right
	spans := resolveInline("*a*b*c*", 1, nil)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %v", len(spans), spans)
	}
	assert.Equal(t, mark.SKBold, spans[0].Kind)
	assert.Equal(t, "a", spans[0].PlainText())
	assert.Equal(t, mark.Plain("b"), spans[1])
	assert.Equal(t, mark.SKBold, spans[2].Kind)
	assert.Equal(t, "c", spans[2].PlainText())
}

func TestInlineCodeIsVerbatim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("`*not bold*`", 1, nil)
	if len(spans) != 1 || spans[0].Kind != mark.SKCode {
		t.Fatalf("expected a single code span, got %v", spans)
	}
	if got := spans[0].PlainText(); got != "*not bold*" {
		t.Errorf("code content should stay verbatim, got %q", got)
	}
}

func TestInlineEscape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline(`\*not bold\*`, 1, nil)
	if len(spans) != 1 || spans[0].Kind != mark.SKPlain {
		t.Fatalf("expected a single plain span, got %v", spans)
	}
	assert.Equal(t, "*not bold*", spans[0].Text)
}

func TestInlineLinkAtom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("see [Github](https://github.com/) now", 1, nil)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %v", len(spans), spans)
	}
	link := spans[1]
	assert.Equal(t, mark.SKLink, link.Kind)
	assert.Equal(t, "https://github.com/", link.URL)
	assert.Equal(t, "Github", link.PlainText())
}

func TestInlineAutoLink(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("see <https://github.com/> now", 1, nil)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %v", len(spans), spans)
	}
	link := spans[1]
	assert.Equal(t, mark.SKLink, link.Kind)
	assert.Equal(t, "https://github.com/", link.URL)
	assert.Equal(t, "https://github.com/", link.PlainText())
}

func TestInlineImageAtom(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("before ![alt](src.png) after", 1, nil)
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %v", len(spans), spans)
	}
	img := spans[1]
	assert.Equal(t, mark.SKImage, img.Kind)
	assert.Equal(t, "alt", img.Text)
	assert.Equal(t, "src.png", img.URL)
}

func TestInlineMalformedImageDegrades(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	spans := resolveInline("![alt](no closing paren", 1, nil)
	assert.Equal(t, "![alt](no closing paren", mark.PlainText(spans))
}

func TestImageOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	img, n, ok := parseImageAtom("![t](i.png)<w50|h120.5|center|https://x.y>", 1, nil)
	if !ok {
		t.Fatal("expected image atom to parse")
	}
	assert.Equal(t, len("![t](i.png)<w50|h120.5|center|https://x.y>"), n)
	assert.Equal(t, 50.0, img.style.Width)
	assert.Equal(t, 120.5, img.style.Height)
	assert.Equal(t, mark.AlignCenter, img.style.AlignH)
	assert.Equal(t, "https://x.y", img.style.Hyperlink)
}

func TestImageOptionMalformedNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	var warned int
	warn := func(lineno int, err error) { warned++ }
	img, _, ok := parseImageAtom("![t](i.png)<wax>", 7, warn)
	if !ok {
		t.Fatal("expected image atom to parse")
	}
	if img.style.Hyperlink != "wax" {
		t.Errorf("malformed width should degrade to a hyperlink, got %q", img.style.Hyperlink)
	}
	if warned != 1 {
		t.Errorf("expected exactly one warning, got %d", warned)
	}
}

func TestInlineLosslessness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	inputs := []struct {
		text  string
		plain string
	}{
		{"plain text", "plain text"},
		{"*bold* and /italic/", "bold and italic"},
		{"a $small$ ~gone~ _under_ b", "a small gone under b"},
		{"unmatched * stays", "unmatched * stays"},
		{"trailing opener ~", "trailing opener ~"},
		{"empty ** bold", "empty  bold"},
		{"[label](url) tail", "label tail"},
	}
	for _, input := range inputs {
		spans := resolveInline(input.text, 1, nil)
		if got := mark.PlainText(spans); got != input.plain {
			t.Errorf("plain text of %q is %q, expected %q", input.text, got, input.plain)
		}
	}
}
