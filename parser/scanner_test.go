package parser

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestScannerClassification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	cases := []struct {
		raw  string
		kind lineKind
	}{
		{"", lineBlank},
		{"   ", lineBlank},
		{"some prose", linePlain},
		{"# Title", lineHeading},
		{"### Title", lineHeading},
		{"#NoSpace", linePlain},
		{"# ", linePlain},
		{"- item", lineUnordered},
		{"1. item", lineOrdered},
		{"12. item", lineOrdered},
		{"1.item", linePlain},
		{"> quoted", lineQuote},
		{"---", linePageBreak},
		{"---t", lineTransition},
		{"---t3", lineTransition},
		{"---tx", linePlain},
		{"t---", lineTransitionEnd},
		{"----", lineSeparatorH},
		{"----v", lineSeparatorV},
		{"-----", linePlain},
		{"```go", lineFence},
		{"```", lineFence},
		{"![alt](src.png)", lineImage},
		{"![alt](src.png)<w50>", lineImage},
		{"![alt](src.png) tail", linePlain},
		{"[label](url)", lineLink},
		{"[label](url) tail", linePlain},
		{"[label] no url", linePlain},
	}
	for _, c := range cases {
		ln := classify(c.raw, 1)
		if ln.kind != c.kind {
			t.Errorf("line %q classified as %d, expected %d", c.raw, ln.kind, c.kind)
		}
	}
}

func TestScannerHeadingLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	ln := classify("### Title", 1)
	if ln.level != 3 {
		t.Errorf("expected heading level 3, got %d", ln.level)
	}
	if ln.text != "Title" {
		t.Errorf("expected heading text 'Title', got %q", ln.text)
	}
}

func TestScannerListIndent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	cases := []struct {
		raw   string
		level int
	}{
		{"- a", 0},
		{"  - a", 1},
		{"    - a", 2},
		{"            - a", 5}, // capped
	}
	for _, c := range cases {
		ln := classify(c.raw, 1)
		if ln.kind != lineUnordered {
			t.Errorf("line %q not classified as unordered item", c.raw)
			continue
		}
		if ln.level != c.level {
			t.Errorf("line %q has indent level %d, expected %d", c.raw, ln.level, c.level)
		}
	}
}

func TestScannerTransitionOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	if ln := classify("---t", 1); ln.order != -1 {
		t.Errorf("unnumbered transition should report order -1, got %d", ln.order)
	}
	if ln := classify("---t12", 1); ln.order != 12 {
		t.Errorf("expected explicit order 12, got %d", ln.order)
	}
	// a numeric order beyond the int range falls back to the implicit one
	ln := classify("---t99999999999999999999", 1)
	if ln.kind != lineTransition {
		t.Error("out-of-range order should still classify as a transition")
	}
	if ln.order != -1 {
		t.Errorf("out-of-range order should report -1, got %d", ln.order)
	}
}

func TestScannerIsLazyAndTotal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "opmark.parser")
	defer teardown()
	//
	sc := newScanner(strings.NewReader("a\nb\nc"))
	count := 0
	for {
		ln, ok := sc.next()
		if !ok {
			break
		}
		count++
		if ln.no != count {
			t.Errorf("expected line number %d, got %d", count, ln.no)
		}
	}
	if count != 3 {
		t.Errorf("expected 3 lines, got %d", count)
	}
	// empty input yields no lines at all
	sc = newScanner(strings.NewReader(""))
	if _, ok := sc.next(); ok {
		t.Error("empty input should not produce a line")
	}
}
